// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package posix resolves the running binary's display name for CLI usage
// strings, with [POSIX]-style behavior on every platform.
//
// GetExecutableName reduces os.Args[0] to a bare program name no matter
// which separator convention produced it, so usage output looks the same
// on [Unix-like] systems and Windows:
//
//   - "/usr/bin/myapp" reports "myapp"
//   - `C:\bin\myapp.exe` reports "myapp", even when the Windows-style
//     argv[0] shows up on a Unix host
//   - an empty argv reports "x509-cert-inspector"
//
// The cobra root command wires it directly:
//
//	rootCmd := &cobra.Command{
//	    Use:   posix.GetExecutableName(),
//	    Short: "TLS certificate inspector",
//	}
//
// [POSIX]: https://grokipedia.com/page/POSIX
// [Unix-like]: https://grokipedia.com/page/Unix-like
package posix

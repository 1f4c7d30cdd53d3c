// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package posix

import (
	"os"
	"path/filepath"
	"strings"
)

// fallbackName is reported when the process arguments carry no usable
// executable path.
const fallbackName = "x509-cert-inspector"

// GetExecutableName reports the bare name of the running binary for CLI
// usage strings: the directory prefix is stripped on either separator
// style and the Windows .exe suffix removed.
//
// Examples:
//   - "/usr/local/bin/myapp" reports "myapp"
//   - `C:\bin\myapp.exe` reports "myapp", also when argv[0] arrived in
//     Windows form on a Unix system
func GetExecutableName() string {
	// Only exotic exec wrappers start a process with no argv[0]
	if len(os.Args) == 0 || os.Args[0] == "" {
		return fallbackName
	}

	name := strings.TrimSuffix(lastPathComponent(os.Args[0]), ".exe")
	if name == "" {
		return fallbackName
	}
	return name
}

// lastPathComponent strips everything up to the last path separator.
// filepath.Base only understands the host separator, so foreign
// backslashes are handled explicitly afterwards.
func lastPathComponent(path string) string {
	name := filepath.Base(path)
	name = strings.TrimRight(name, `/\`)

	if i := strings.LastIndexAny(name, `/\`); i >= 0 {
		name = name[i+1:]
	}
	return name
}

// Copyright (c) 2026 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package main

import (
	"os"

	mcpserver "github.com/H0llyW00dzZ/tls-cert-inspector/src/mcp-server"
)

// version is stamped by ldflags on release builds.
var version string

// init backfills version from the server package so a plain `go build`
// still reports something sensible.
func init() {
	if version == "" {
		version = mcpserver.GetVersion()
	}
}

// main stays tiny on purpose, the command layer owns everything else 🤪
func main() {
	// The command layer already printed any error, only the exit code is left
	if err := mcpserver.RunCLI(version); err != nil {
		os.Exit(1)
	}
}

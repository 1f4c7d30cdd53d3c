// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package version pins the release version shared by the CLI and the MCP server.
package version

// Version is the release version baked into both binaries. Release builds
// override it at link time through ldflags.
var Version = "0.3.1"

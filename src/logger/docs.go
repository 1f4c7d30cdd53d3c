// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package logger carries the logging surface shared by the CLI and the MCP
// server. CLILogger prints human-readable lines, MCPLogger one JSON object
// per line; both are safe for concurrent use. MCPLogger assembles each JSON
// line in a pooled scratch buffer so sustained inspection runs keep
// allocation pressure flat.
//
// CLILogger splits streams: inspection output on stdout, diagnostics on
// stderr. That split is what keeps a piped field extraction byte-clean.
package logger

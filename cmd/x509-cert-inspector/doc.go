// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// x509-cert-inspector is a Model Context Protocol (MCP) server that exposes
// X.509 certificate metadata extraction to AI assistants and automation
// clients over stdio.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/tls-cert-inspector/cmd/x509-cert-inspector@latest
//
// # Usage
//
//	x509-cert-inspector [FLAGS]
//
// # Flags
//
//	--config        Path to MCP server configuration file (JSON or YAML)
//	--instructions  Display certificate inspection workflows and MCP server usage
//	--help          Show help information
//	--version       Show version information
//
// # Environment Variables
//
//	MCP_INSPECTOR_CONFIG_FILE  Path to configuration file (alternative to --config flag)
//
// # MCP Tools
//
// The server provides the following certificate operations:
//
//   - inspect_certificate: Summarize every extractable metadata field of a certificate
//   - get_certificate_field: Extract one field (serial, DER, validity, algorithms, fingerprints)
//   - lookup_dn_entry: Look up a distinguished-name entry by short name or dotted OID
//   - render_dn: Render a subject or issuer in oneline or RFC 2253 form
//   - fetch_peer_certificate: Retrieve and summarize the leaf certificate of a live TLS endpoint
//   - parse_openssl_version: Parse dotted library version strings into packed form
//   - filter_grease: Strip reserved GREASE placeholder pairs from hex-encoded TLS data
//   - get_resource_usage: Monitor server resource usage (memory, GC, system info)
//
// # MCP Resources
//
//   - config://template: Server configuration template
//   - version://info: Version and capabilities info
//   - docs://fields: Field and distinguished-name reference documentation
//
// # MCP Prompts
//
//   - certificate-inspection: Step-by-step certificate metadata inspection workflow
//   - peer-inspection: Live peer certificate inspection workflow
//   - extraction-troubleshooting: Troubleshoot overflow, lookup, and parsing issues
//
// # Examples
//
// Start MCP server with default configuration:
//
//	x509-cert-inspector
//
// Load custom configuration:
//
//	x509-cert-inspector --config /path/to/config.json
//
// Show certificate inspection workflows:
//
//	x509-cert-inspector --instructions
package main

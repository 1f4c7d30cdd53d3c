// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package mcpserver serves [X509] certificate metadata extraction over the
// Model Context Protocol ([MCP]).
//
// A builder assembles the server from tool, prompt, and resource
// definitions, wires configuration into the handlers that need it, and
// speaks the protocol over stdio. The tools cover whole-certificate
// summaries, single-field extraction, distinguished-name lookup and
// rendering, live peer fetching, version parsing, and GREASE filtering.
//
// [X509]: https://grokipedia.com/page/X.509
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
package mcpserver

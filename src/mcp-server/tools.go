// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
)

// createTools declares the whole tool surface in two buckets: plain tools,
// and tools whose handlers take the server configuration for defaults like
// buffer capacity and dial timeout. The builder binds the config at build
// time; the Role strings feed the instructions template.
//
// Tools without config: inspect_certificate, parse_openssl_version,
// filter_grease, get_resource_usage. With config: get_certificate_field,
// lookup_dn_entry, render_dn, fetch_peer_certificate.
func createTools() ([]ToolDefinition, []ToolDefinitionWithConfig) {
	tools := []ToolDefinition{
		{
			Tool: mcp.NewTool("inspect_certificate",
				mcp.WithDescription("Summarize X509 certificate metadata from a certificate file or base64-encoded certificate data"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path or base64-encoded certificate data"),
				),
				mcp.WithString("format",
					mcp.Description("Output format: 'markdown' or 'json' (default: markdown)"),
					mcp.DefaultString("markdown"),
				),
			),
			Handler: handleInspectCertificate,
			Role:    "summarizer",
		},
		{
			Tool: mcp.NewTool("parse_openssl_version",
				mcp.WithDescription("Parse a dotted OpenSSL-style version string into its packed numeric form"),
				mcp.WithString("version",
					mcp.Required(),
					mcp.Description("Version string to parse (e.g., '1.0.2u' or '3.0.8-beta1')"),
				),
			),
			Handler: handleParseOpenSSLVersion,
			Role:    "versionParser",
		},
		{
			Tool: mcp.NewTool("filter_grease",
				mcp.WithDescription("Filter reserved GREASE placeholder pairs out of hex-encoded TLS data"),
				mcp.WithString("data",
					mcp.Required(),
					mcp.Description("Hex-encoded byte string to filter"),
				),
			),
			Handler: handleFilterGrease,
			Role:    "greaseFilter",
		},
		{
			Tool: mcp.NewTool("get_resource_usage",
				mcp.WithDescription("Report the inspector's own memory, GC, and runtime statistics"),
				mcp.WithBoolean("detailed",
					mcp.Description("Add allocation totals, malloc/free counters, and GC pause times (default: false)"),
					mcp.DefaultBool(false),
				),
				mcp.WithString("format",
					mcp.Description("Report format: 'json' or 'markdown' (default: 'json')"),
					mcp.DefaultString("json"),
				),
			),
			Handler: handleGetResourceUsage,
			Role:    "resourceMonitor",
		},
	}

	toolsWithConfig := []ToolDefinitionWithConfig{
		{
			Tool: mcp.NewTool("get_certificate_field",
				mcp.WithDescription("Extract a single X509 certificate field into a bounded buffer"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path or base64-encoded certificate data"),
				),
				mcp.WithString("field",
					mcp.Required(),
					mcp.Description("Field to extract: 'serial', 'der', 'notbefore', 'notafter', 'keyalg', 'sigalg', 'sha1', or 'sha256'"),
				),
				mcp.WithString("encoding",
					mcp.Description("Encoding for binary fields: 'hex' or 'base64' (default: hex)"),
					mcp.DefaultString("hex"),
				),
				mcp.WithNumber("max_bytes",
					mcp.Description("Extraction buffer capacity in bytes (default: configured bufferSize)"),
					mcp.DefaultNumber(0),
				),
			),
			Handler: handleGetCertificateField,
			Role:    "fieldExtractor",
		},
		{
			Tool: mcp.NewTool("lookup_dn_entry",
				mcp.WithDescription("Look up a distinguished name attribute by name and occurrence"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path or base64-encoded certificate data"),
				),
				mcp.WithString("name",
					mcp.Required(),
					mcp.Description("Attribute short name (e.g., 'CN') or dotted OID (e.g., '2.5.4.10')"),
				),
				mcp.WithNumber("position",
					mcp.Description("Occurrence to return; negative counts from the end (default: 0)"),
					mcp.DefaultNumber(0),
				),
				mcp.WithString("source",
					mcp.Description("Name to search: 'subject' or 'issuer' (default: subject)"),
					mcp.DefaultString("subject"),
				),
				mcp.WithNumber("max_bytes",
					mcp.Description("Extraction buffer capacity in bytes (default: configured bufferSize)"),
					mcp.DefaultNumber(0),
				),
			),
			Handler: handleLookupDNEntry,
			Role:    "dnLookup",
		},
		{
			Tool: mcp.NewTool("render_dn",
				mcp.WithDescription("Render a full distinguished name in oneline or RFC 2253 form"),
				mcp.WithString("certificate",
					mcp.Required(),
					mcp.Description("Certificate file path or base64-encoded certificate data"),
				),
				mcp.WithString("style",
					mcp.Description("Rendering style: 'oneline' or 'rfc2253' (default: oneline)"),
					mcp.DefaultString("oneline"),
				),
				mcp.WithString("source",
					mcp.Description("Name to render: 'subject' or 'issuer' (default: subject)"),
					mcp.DefaultString("subject"),
				),
				mcp.WithNumber("max_bytes",
					mcp.Description("Render buffer capacity in bytes (default: configured bufferSize)"),
					mcp.DefaultNumber(0),
				),
			),
			Handler: handleRenderDN,
			Role:    "dnRenderer",
		},
		{
			Tool: mcp.NewTool("fetch_peer_certificate",
				mcp.WithDescription("Fetch the leaf certificate presented by a live TLS endpoint"),
				mcp.WithString("hostname",
					mcp.Required(),
					mcp.Description("Remote hostname to connect to"),
				),
				mcp.WithNumber("port",
					mcp.Description("Port number (default: 443)"),
					mcp.DefaultNumber(443),
				),
				mcp.WithBoolean("include_chain",
					mcp.Description("Return the full presented chain as a PEM bundle instead of just the leaf (default: false)"),
					mcp.DefaultBool(false),
				),
			),
			Handler: handleFetchPeerCertificate,
			Role:    "peerFetcher",
		},
	}

	return tools, toolsWithConfig
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/mcp-server/templates"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/version"
	"github.com/mark3labs/mcp-go/mcp"
)

// jsonResource marshals payload as indented JSON and wraps it in a single
// resource content item under the given URI.
func jsonResource(uri string, payload any) ([]mcp.ResourceContents, error) {
	jsonData, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal %s resource: %w", uri, err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(jsonData),
		},
	}, nil
}

// handleConfigResource serves the configuration template resource.
// The returned JSON shows the structure loadConfig expects, filled with the
// built-in defaults for bufferSize and timeoutSeconds, so a client can copy
// it as a starting point for MCP_INSPECTOR_CONFIG_FILE.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP resource read request for config://template
//
// Returns:
//   - A single JSON content item with the template
//   - An error if JSON marshaling fails
func handleConfigResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	return jsonResource("config://template", map[string]any{
		"defaults": map[string]any{
			"bufferSize":     defaultBufferSize,
			"timeoutSeconds": defaultTimeoutSeconds,
		},
	})
}

// handleVersionResource serves the version information resource.
// The payload identifies the server and reports the registered tools,
// resources, and prompts from the capability snapshot that Build records,
// along with the certificate input formats the tools accept.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP resource read request for version://info
//
// Returns:
//   - A single JSON content item with version and capability metadata
//   - An error if JSON marshaling fails
func handleVersionResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	caps := currentCapabilities()

	return jsonResource("version://info", map[string]any{
		"name":    "TLS Certificate Inspector",
		"version": version.Version,
		"type":    "MCP Server",
		"capabilities": map[string]any{
			"tools":     caps.tools,
			"resources": caps.resources,
			"prompts":   caps.prompts,
		},
		"supportedFormats": []string{"pem", "der", "pkcs7"},
	})
}

// handleFieldDocsResource serves the certificate field reference resource
// from the embedded templates. The document describes each extractable
// field name, its value shape, and the buffer overflow semantics.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP resource read request for docs://fields
//
// Returns:
//   - A single markdown content item with the field reference
//   - An error if the embedded file cannot be read
func handleFieldDocsResource(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	content, err := templates.MagicEmbed.ReadFile("field-reference.md")
	if err != nil {
		return nil, fmt.Errorf("failed to read field reference template: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      "docs://fields",
			MIMEType: "text/markdown",
			Text:     string(content),
		},
	}, nil
}

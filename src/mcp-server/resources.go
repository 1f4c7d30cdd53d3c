// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// createResources creates all static MCP resource definitions with their handlers.
//
// Returns:
//   - A slice of server.ServerResource ready for registration via the ServerBuilder
//
// The function defines the following resources:
//   - config://template: Example configuration showing the expected structure
//   - version://info: Server version and capability information
//   - docs://fields: Reference documentation for the extractable certificate fields
//
// Resources provide static or semi-static content to MCP clients, complementing
// the tools which perform actual certificate inspection operations.
func createResources() []server.ServerResource {
	return []server.ServerResource{
		{
			Resource: mcp.NewResource(
				"config://template",
				"Configuration Template",
				mcp.WithResourceDescription("Example configuration file showing the expected structure and default values"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleConfigResource,
		},
		{
			Resource: mcp.NewResource(
				"version://info",
				"Server Version Information",
				mcp.WithResourceDescription("Server version, type, and capability information"),
				mcp.WithMIMEType("application/json"),
			),
			Handler: handleVersionResource,
		},
		{
			Resource: mcp.NewResource(
				"docs://fields",
				"Certificate Field Reference",
				mcp.WithResourceDescription("Reference documentation for the extractable certificate fields and name rendering styles"),
				mcp.WithMIMEType("text/markdown"),
			),
			Handler: handleFieldDocsResource,
		},
	}
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ToolHandler is the signature [MCP] tool handlers implement. It receives
// the tool call request and returns the tool result or an error.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ToolHandler = func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error)

// ToolHandlerWithConfig extends ToolHandler with the server Config, for
// tools that fall back to configured defaults such as the extraction buffer
// capacity or the peer dial timeout.
type ToolHandlerWithConfig func(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error)

// ResourceHandler is the signature resource read handlers implement.
// A handler may return multiple content items for one URI.
type ResourceHandler = func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error)

// PromptHandler is the signature prompt handlers implement for the guided
// inspection workflows.
type PromptHandler = func(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error)

// ToolDefinition pairs an MCP tool schema with its handler.
//
// Fields:
//   - Tool: Tool schema with name, description, and input parameters
//   - Handler: Implementation invoked for calls to this tool
//   - Role: Stable capability name that instruction templates use to refer
//     to the tool, so renaming a tool does not silently break the rendered
//     guidance
type ToolDefinition struct {
	Tool    mcp.Tool
	Handler ToolHandler
	Role    string
}

// ToolDefinitionWithConfig pairs an MCP tool schema with a handler that
// receives the server Config in addition to the request.
//
// Fields:
//   - Tool: Tool schema with name, description, and input parameters
//   - Handler: Implementation invoked with the server Config
//   - Role: Stable capability name for instruction templates, as in
//     ToolDefinition
type ToolDefinitionWithConfig struct {
	Tool    mcp.Tool
	Handler ToolHandlerWithConfig
	Role    string
}

// ServerDependencies holds everything needed to create the MCP server.
//
// Fields:
//   - Config: Server configuration with default buffer and timeout settings
//   - Embed: Embedded filesystem for templates, consumed by the CLI
//     framework when it renders help text
//   - Version: Server version string for identification
//   - Tools: Tool definitions without configuration requirements
//   - ToolsWithConfig: Tool definitions that need configuration access
//   - Resources: Static and dynamic resources provided by the server
//   - Prompts: Predefined prompts for guided workflows
//   - Instructions: Rendered instruction text sent to clients during
//     initialization
//   - PopulateCache: Whether Build records the capability snapshot that the
//     version resource reports from
type ServerDependencies struct {
	Config          *Config
	Embed           templates.EmbedFS
	Version         string
	Tools           []ToolDefinition
	ToolsWithConfig []ToolDefinitionWithConfig
	Resources       []server.ServerResource
	Prompts         []server.ServerPrompt
	Instructions    string
	PopulateCache   bool
}

// ServerBuilder assembles the [MCP] server through a fluent interface.
// Chain the With* methods to configure dependencies, then call Build.
//
// Example:
//
//	builder := NewServerBuilder().
//	    WithConfig(config).
//	    WithVersion("1.0.0").
//	    WithDefaultTools()
//	server, err := builder.Build()
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
type ServerBuilder struct{ deps ServerDependencies }

// NewServerBuilder returns an empty builder ready for configuration.
func NewServerBuilder() *ServerBuilder { return &ServerBuilder{} }

// WithConfig sets the server configuration handed to config-aware tools.
// A nil config is valid; handlers then apply their built-in defaults.
func (b *ServerBuilder) WithConfig(config *Config) *ServerBuilder {
	b.deps.Config = config
	return b
}

// WithVersion sets the version string reported by the server and its
// version resource.
func (b *ServerBuilder) WithVersion(version string) *ServerBuilder {
	b.deps.Version = version
	return b
}

// WithTools adds tool definitions that do not need configuration access.
func (b *ServerBuilder) WithTools(tools ...ToolDefinition) *ServerBuilder {
	b.deps.Tools = append(b.deps.Tools, tools...)
	return b
}

// WithToolsWithConfig adds tool definitions whose handlers receive the
// server Config for buffer capacities and dial timeouts.
func (b *ServerBuilder) WithToolsWithConfig(tools ...ToolDefinitionWithConfig) *ServerBuilder {
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, tools...)
	return b
}

// WithResources adds resources readable by clients through URIs such as
// "version://info" or "docs://fields".
func (b *ServerBuilder) WithResources(resources ...server.ServerResource) *ServerBuilder {
	b.deps.Resources = append(b.deps.Resources, resources...)
	return b
}

// WithPrompts adds predefined prompts for guided workflows like
// certificate inspection or live peer audits.
func (b *ServerBuilder) WithPrompts(prompts ...server.ServerPrompt) *ServerBuilder {
	b.deps.Prompts = append(b.deps.Prompts, prompts...)
	return b
}

// WithInstructions sets the instruction text sent to MCP clients during
// initialization, typically rendered by loadInstructions.
func (b *ServerBuilder) WithInstructions(instructions string) *ServerBuilder {
	b.deps.Instructions = instructions
	return b
}

// WithPopulate enables recording the capability snapshot during Build.
// The snapshot backs the version resource, which reports the registered
// tools, resources, and prompts without re-walking the definitions on
// every read.
func (b *ServerBuilder) WithPopulate() *ServerBuilder {
	b.deps.PopulateCache = true
	return b
}

// WithDefaultTools registers the standard certificate inspection tools
// from createTools.
//
// Returns:
//   - The ServerBuilder instance for method chaining
//
// This covers metadata summaries, single-field extraction, DN lookup and
// rendering, version string parsing, GREASE filtering, live peer fetching,
// and resource usage reporting. Tools land in the regular list or the
// with-config list as appropriate.
func (b *ServerBuilder) WithDefaultTools() *ServerBuilder {
	tools, toolsWithConfig := createTools()
	b.deps.Tools = append(b.deps.Tools, tools...)
	b.deps.ToolsWithConfig = append(b.deps.ToolsWithConfig, toolsWithConfig...)
	return b
}

// wrapConfigHandler adapts a config-aware handler to the plain tool
// handler signature by closing over the server configuration.
func wrapConfigHandler(handler ToolHandlerWithConfig, config *Config) ToolHandler {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		return handler(ctx, request, config)
	}
}

// Build creates the [MCP] server from the configured dependencies.
//
// Returns:
//   - A pointer to the configured MCPServer instance
//   - An error if server creation fails
//
// Build registers all tools, resources, and prompts, attaches the
// instruction text when present, and records the capability snapshot when
// WithPopulate was used. The returned server handles MCP protocol
// communication and routes requests to the registered handlers.
//
// [MCP]: https://modelcontextprotocol.io/docs/getting-started/intro
func (b *ServerBuilder) Build() (*server.MCPServer, error) {
	opts := []server.ServerOption{
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, true),
		server.WithPromptCapabilities(true),
	}
	if b.deps.Instructions != "" {
		opts = append(opts, server.WithInstructions(b.deps.Instructions))
	}

	s := server.NewMCPServer(
		"TLS Certificate Inspector",
		b.deps.Version,
		opts...,
	)

	for _, tool := range b.deps.Tools {
		s.AddTool(tool.Tool, tool.Handler)
	}
	for _, tool := range b.deps.ToolsWithConfig {
		s.AddTool(tool.Tool, wrapConfigHandler(tool.Handler, b.deps.Config))
	}
	for _, resource := range b.deps.Resources {
		s.AddResource(resource.Resource, resource.Handler)
	}
	for _, prompt := range b.deps.Prompts {
		s.AddPrompt(prompt.Prompt, prompt.Handler)
	}

	if b.deps.PopulateCache {
		recordCapabilities(currentCapabilities(), b.deps.Tools, b.deps.ToolsWithConfig, b.deps.Prompts, b.deps.Resources)
	}

	return s, nil
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"fmt"
	"maps"
	"slices"
	"strings"
	"sync"
	"text/template"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/mcp-server/templates"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// toolInfo is one tool entry in the rendered instruction text.
//
// Fields:
//   - Name: Tool name as registered with the MCP server
//   - Description: One-line description from the tool schema
//   - Params: Comma-separated parameter names from the input schema,
//     sorted so the rendered text is stable between runs
type toolInfo struct {
	Name        string
	Description string
	Params      string
}

// instructionData is the data the instructions template renders from.
//
// Fields:
//   - Tools: Every registered tool in registration order
//   - ToolRoles: Capability role to tool name, so the template refers to a
//     tool by what it does and a rename does not silently break the guidance
type instructionData struct {
	Tools     []toolInfo
	ToolRoles map[string]string
}

// describeTool flattens a tool schema into the template entry shape.
func describeTool(tool mcp.Tool) toolInfo {
	return toolInfo{
		Name:        string(tool.Name),
		Description: tool.Description,
		Params:      strings.Join(slices.Sorted(maps.Keys(tool.InputSchema.Properties)), ", "),
	}
}

// loadInstructions renders the server instruction text from the embedded
// instructions template. The template receives every registered tool plus
// the role map, so the guidance tracks the actual tool surface instead of
// hardcoding names.
//
// Parameters:
//   - tools: Tool definitions registered without configuration access
//   - toolsWithConfig: Tool definitions that receive the server Config
//
// Returns:
//   - string: The rendered instruction text sent to clients during initialization
//   - error: If the template cannot be read, parsed, or executed
//
// TODO: Split required and optional parameters in the rendered tool list
// once the template grows a per-tool usage section.
func loadInstructions(tools []ToolDefinition, toolsWithConfig []ToolDefinitionWithConfig) (string, error) {
	raw, err := templates.MagicEmbed.ReadFile("inspector_instructions.md")
	if err != nil {
		return "", fmt.Errorf("failed to load MCP server instructions template: %w", err)
	}

	data := instructionData{
		Tools:     make([]toolInfo, 0, len(tools)+len(toolsWithConfig)),
		ToolRoles: make(map[string]string, len(tools)+len(toolsWithConfig)),
	}
	for _, def := range tools {
		data.Tools = append(data.Tools, describeTool(def.Tool))
		if def.Role != "" {
			data.ToolRoles[def.Role] = string(def.Tool.Name)
		}
	}
	for _, def := range toolsWithConfig {
		data.Tools = append(data.Tools, describeTool(def.Tool))
		if def.Role != "" {
			data.ToolRoles[def.Role] = string(def.Tool.Name)
		}
	}

	tmpl, err := template.New("instructions").Parse(string(raw))
	if err != nil {
		return "", fmt.Errorf("failed to parse instructions template: %w", err)
	}

	var rendered strings.Builder
	if err := tmpl.Execute(&rendered, data); err != nil {
		return "", fmt.Errorf("failed to execute instructions template: %w", err)
	}

	return rendered.String(), nil
}

// capabilitySnapshot holds the metadata the version resource reports for
// the registered server surface. Build fills it once through
// recordCapabilities; resource reads only ever see the completed snapshot.
type capabilitySnapshot struct {
	tools     []map[string]any
	prompts   []map[string]any
	resources []map[string]any
}

var (
	capabilities     *capabilitySnapshot
	capabilitiesOnce sync.Once
)

// currentCapabilities returns the shared capability snapshot, creating an
// empty one on first use. Servers built without WithPopulate report empty
// capability lists.
func currentCapabilities() *capabilitySnapshot {
	capabilitiesOnce.Do(func() {
		capabilities = &capabilitySnapshot{}
	})
	return capabilities
}

// recordCapabilities fills the snapshot from the registered definitions.
// Both tool lists land in one merged list because the version resource does
// not distinguish config-aware tools from plain ones.
func recordCapabilities(snap *capabilitySnapshot, tools []ToolDefinition, toolsWithConfig []ToolDefinitionWithConfig, prompts []server.ServerPrompt, resources []server.ServerResource) {
	snap.tools = make([]map[string]any, 0, len(tools)+len(toolsWithConfig))
	for _, def := range tools {
		snap.tools = append(snap.tools, toolMetadata(def.Tool))
	}
	for _, def := range toolsWithConfig {
		snap.tools = append(snap.tools, toolMetadata(def.Tool))
	}

	snap.prompts = make([]map[string]any, 0, len(prompts))
	for _, prompt := range prompts {
		snap.prompts = append(snap.prompts, promptMetadata(prompt.Prompt))
	}

	snap.resources = make([]map[string]any, 0, len(resources))
	for _, resource := range resources {
		snap.resources = append(snap.resources, resourceMetadata(resource.Resource))
	}
}

// toolMetadata reports the fields the version resource exposes per tool.
// The parameter list mirrors what the instruction text renders, so clients
// see the same surface in both places.
func toolMetadata(tool mcp.Tool) map[string]any {
	return map[string]any{
		"name":        tool.Name,
		"description": tool.Description,
		"parameters":  slices.Sorted(maps.Keys(tool.InputSchema.Properties)),
	}
}

// promptMetadata reports name, description, and the argument schema per prompt.
func promptMetadata(prompt mcp.Prompt) map[string]any {
	metadata := map[string]any{
		"name":        prompt.Name,
		"description": prompt.Description,
	}
	if len(prompt.Arguments) == 0 {
		return metadata
	}

	args := make([]map[string]any, 0, len(prompt.Arguments))
	for _, arg := range prompt.Arguments {
		args = append(args, map[string]any{
			"name":        arg.Name,
			"description": arg.Description,
			"required":    arg.Required,
		})
	}
	metadata["arguments"] = args

	return metadata
}

// resourceMetadata reports URI, name, description, and MIME type per resource.
func resourceMetadata(resource mcp.Resource) map[string]any {
	return map[string]any{
		"uri":         resource.URI,
		"name":        resource.Name,
		"description": resource.Description,
		"mimeType":    resource.MIMEType,
	}
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package templates embeds the markdown templates the inspector ships with:
// the certificate field reference, the CLI help text, and the MCP server
// instructions. [MagicEmbed] exposes them through the [EmbedFS] interface
// so server components read templates the same way tests fake them.
//
// Example:
//
//	import "github.com/H0llyW00dzZ/tls-cert-inspector/src/mcp-server/templates"
//
//	content, err := templates.MagicEmbed.ReadFile("field-reference.md")
//	if err != nil {
//		return fmt.Errorf("failed to read field reference: %w", err)
//	}
package templates

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// assistantText wraps text as an assistant-role prompt message.
func assistantText(text string) mcp.PromptMessage {
	return mcp.NewPromptMessage(mcp.RoleAssistant, mcp.NewTextContent(text))
}

// userText wraps text as a user-role prompt message.
func userText(text string) mcp.PromptMessage {
	return mcp.NewPromptMessage(mcp.RoleUser, mcp.NewTextContent(text))
}

// createPrompts declares the guided workflows the server offers alongside
// its tools: whole-certificate inspection, live peer inspection, and a
// troubleshooting guide for the extraction error cases.
func createPrompts() []server.ServerPrompt {
	return []server.ServerPrompt{
		{
			Prompt: mcp.NewPrompt("certificate-inspection",
				mcp.WithPromptDescription("Comprehensive certificate metadata inspection workflow"),
				mcp.WithArgument("certificate_path",
					mcp.ArgumentDescription("Path to certificate file or base64-encoded certificate data"),
				),
			),
			Handler: handleCertificateInspectionPrompt,
		},
		{
			Prompt: mcp.NewPrompt("peer-inspection",
				mcp.WithPromptDescription("Inspect the certificate presented by a live TLS endpoint"),
				mcp.WithArgument("hostname",
					mcp.ArgumentDescription("Target hostname to inspect"),
				),
				mcp.WithArgument("port",
					mcp.ArgumentDescription("Port number (default: 443)"),
				),
			),
			Handler: handlePeerInspectionPrompt,
		},
		{
			Prompt: mcp.NewPrompt("extraction-troubleshooting",
				mcp.WithPromptDescription("Troubleshoot common field extraction and name lookup problems"),
				mcp.WithArgument("issue_type",
					mcp.ArgumentDescription("Type of issue: 'overflow', 'notfound', 'dn', 'version'"),
				),
				mcp.WithArgument("certificate_path",
					mcp.ArgumentDescription("Path to certificate file or base64-encoded certificate data (for overflow/notfound/dn issues)"),
				),
			),
			Handler: handleExtractionTroubleshootingPrompt,
		},
	}
}

// handleCertificateInspectionPrompt walks a client through summarizing a
// certificate, extracting single fields, and rendering its names.
func handleCertificateInspectionPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	certPath := request.Params.Arguments["certificate_path"]

	messages := []mcp.PromptMessage{
		assistantText(fmt.Sprintf(`I'll help you inspect the metadata of the certificate: %s

Let's start with the full summary:`, certPath)),
		userText(`1. First, let's get a complete overview of every extractable field.`),
		userText(`Use the "inspect_certificate" tool to see the serial, validity window, algorithms, fingerprints, and both name forms at a glance.`),
		userText(`2. Next, extract the specific fields you need in their exact wire form.`),
		userText(`Use the "get_certificate_field" tool for single fields (serial, der, notbefore, notafter, keyalg, sigalg, sha1, sha256) and the "lookup_dn_entry" tool for individual subject or issuer attributes.`),
		userText(`3. Render the distinguished names in the style your tooling expects.`),
		userText(`Use the "render_dn" tool with style 'oneline' for the compact legacy form or 'rfc2253' for the escaped standard form.`),
		assistantText(`4. Interpret the extracted values and flag anything unusual, such as deprecated signature algorithms or a validity window that has already closed.`),
	}

	return mcp.NewGetPromptResult(
		"Certificate Metadata Inspection Workflow",
		messages,
	), nil
}

// handlePeerInspectionPrompt walks a client through capturing and then
// dissecting the certificate a live endpoint presents.
func handlePeerInspectionPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	hostname := request.Params.Arguments["hostname"]
	port := request.Params.Arguments["port"]
	if port == "" {
		port = "443"
	}

	messages := []mcp.PromptMessage{
		assistantText(fmt.Sprintf(`I'll inspect the certificate presented by %s:%s.`, hostname, port)),
		userText(`1. First, capture the leaf certificate from the live endpoint.`),
		userText(`Use the "fetch_peer_certificate" tool to connect and retrieve the certificate the server presents, summarized alongside its PEM encoding.`),
		userText(`2. Dig into individual fields of the captured certificate.`),
		userText(`Pass the returned PEM (base64-encoded) to the "get_certificate_field", "lookup_dn_entry", or "render_dn" tools for targeted extraction.`),
		assistantText(`3. Evaluate what the peer presented.`),
		assistantText(`Points to evaluate:
• Does the subject match the hostname you dialed?
• Is the validity window current?
• Are the signature and key algorithms still considered safe?
• Do the fingerprints match what you have pinned elsewhere?`),
	}

	return mcp.NewGetPromptResult(
		"Live Peer Certificate Inspection",
		messages,
	), nil
}

// handleExtractionTroubleshootingPrompt explains the extraction failure
// modes and how to get past them, one issue type per guide.
func handleExtractionTroubleshootingPrompt(ctx context.Context, request mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	issueType := request.Params.Arguments["issue_type"]
	certPath := request.Params.Arguments["certificate_path"]

	var messages []mcp.PromptMessage

	switch issueType {
	case "overflow":
		messages = []mcp.PromptMessage{
			assistantText(fmt.Sprintf(`Troubleshooting buffer overflow errors for: %s`, certPath)),
			assistantText(`Extraction is all-or-nothing: a field that does not fit the buffer reports an overflow instead of returning a truncated value. Common causes:
• max_bytes set below the field size (the DER encoding of a whole certificate is usually several kilobytes)
• A configured bufferSize default that is too small for 'der' extractions
• A oneline name render of a certificate with very long attribute values`),
			userText(`Retry the tool call with a larger max_bytes value, or raise the bufferSize default in the server configuration.`),
		}
	case "notfound":
		messages = []mcp.PromptMessage{
			assistantText(fmt.Sprintf(`Troubleshooting missing field errors for: %s`, certPath)),
			assistantText(`A not-present error means the certificate genuinely lacks the requested data. Common causes:
• A validity timestamp outside the supported year range
• A signature or key algorithm the parser does not recognize
• A DN attribute name that does not occur at the requested position
• A raw TBSCertificate that no longer parses`),
			userText(`Use the "inspect_certificate" tool to see which fields the certificate carries before extracting them individually.`),
		}
	case "dn":
		messages = []mcp.PromptMessage{
			assistantText(fmt.Sprintf(`Troubleshooting distinguished name lookups for: %s`, certPath)),
			assistantText(`Common DN lookup issues:
• Attribute short names match case-insensitively ('CN' and 'cn' are the same)
• Attribute types outside the short-name table must be addressed by dotted OID
• position counts matching entries only; negative positions count from the end
• Multi-valued RDNs keep all members in stored order`),
			userText(`Use the "render_dn" tool with style 'rfc2253' to see every attribute the name carries, then retry the "lookup_dn_entry" call.`),
		}
	case "version":
		messages = []mcp.PromptMessage{
			assistantText(`Troubleshooting version string parsing.`),
			assistantText(`The parser follows the dotted OpenSSL grammar:
• major.minor.fix with major 0-15 and minor/fix 0-255
• Optional letter patch suffix ('1.0.2u') packing to a release
• '-beta<n>' suffixes with n up to 14
• Any other '-' suffix marking a dev build`),
			userText(`Use the "parse_openssl_version" tool to see the unpacked fields and the packed hex form.`),
		}
	default:
		messages = []mcp.PromptMessage{
			assistantText(`Please specify a valid issue type: 'overflow', 'notfound', 'dn', or 'version'.`),
		}
	}

	return mcp.NewGetPromptResult(
		"Extraction Troubleshooting Guide",
		messages,
	), nil
}

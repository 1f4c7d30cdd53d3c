// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package mcpserver

import (
	"context"
	"crypto/x509"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/helper/bounded"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/sslversion"
	tlsgrease "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/tls/grease"
	tlspeer "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/tls/peer"
	x509certs "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/certs"
	x509metadata "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/metadata"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
)

// fieldExtractors maps field parameter values to their extractors. Binary
// fields are encoded per the encoding parameter; text fields return verbatim.
var fieldExtractors = map[string]struct {
	binary  bool
	extract func(*x509.Certificate, x509metadata.Sink) x509metadata.Status
}{
	"serial":    {true, x509metadata.SerialNumber},
	"der":       {true, x509metadata.DEREncoding},
	"notbefore": {false, x509metadata.NotBefore},
	"notafter":  {false, x509metadata.NotAfter},
	"keyalg":    {false, x509metadata.PublicKeyAlgorithm},
	"sigalg":    {false, x509metadata.SignatureAlgorithm},
	"sha1":      {true, x509metadata.SHA1Fingerprint},
	"sha256":    {true, x509metadata.SHA256Fingerprint},
}

// readCertificateArgument extracts the "certificate" parameter from a tool
// request and decodes it into a parsed certificate.
//
// Parameters:
//   - request: MCP tool call request carrying the certificate parameter
//
// Returns:
//   - The decoded certificate when input was readable and parseable
//   - A non-nil error result describing the failure otherwise
//
// The parameter is tried as a file path first, then as base64-encoded
// certificate data, matching the input convention of all certificate tools.
func readCertificateArgument(request mcp.CallToolRequest) (*x509.Certificate, *mcp.CallToolResult) {
	certInput, err := request.RequireString("certificate")
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("certificate parameter required: %v", err))
	}

	// Read certificate data
	var certData []byte

	// Try to read as file first
	if fileData, err := os.ReadFile(certInput); err == nil {
		certData = fileData
	} else {
		// Try to decode as base64
		if decoded, err := base64.StdEncoding.DecodeString(certInput); err == nil {
			certData = decoded
		} else {
			return nil, mcp.NewToolResultError("failed to read certificate: not a valid file path or base64 data")
		}
	}

	cert, err := x509certs.New().Decode(certData)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("failed to decode certificate: %v", err))
	}

	return cert, nil
}

// parseDNSource parses the subject or issuer name selected by the source
// parameter into its attribute entries.
//
// Parameters:
//   - cert: Certificate whose name is parsed
//   - source: Name selector, "subject" or "issuer" (case-insensitive)
//
// Returns:
//   - The parsed name when the selector is known and the DER parses
//   - A non-nil error result describing the failure otherwise
func parseDNSource(cert *x509.Certificate, source string) (*x509metadata.Name, *mcp.CallToolResult) {
	var raw []byte
	switch strings.ToLower(source) {
	case "", "subject":
		raw = cert.RawSubject
	case "issuer":
		raw = cert.RawIssuer
	default:
		return nil, mcp.NewToolResultError(fmt.Sprintf("unknown source %q, supported: subject, issuer", source))
	}

	name, err := x509metadata.ParseName(raw)
	if err != nil {
		return nil, mcp.NewToolResultError(fmt.Sprintf("failed to parse name: %v", err))
	}
	return name, nil
}

// extractionCapacity resolves the buffer capacity for one extraction from
// the max_bytes parameter, falling back to the configured default when the
// parameter is absent or non-positive.
func extractionCapacity(request mcp.CallToolRequest, config *Config) int {
	if maxBytes := request.GetInt("max_bytes", 0); maxBytes > 0 {
		return maxBytes
	}
	return config.Defaults.BufferSize
}

// handleInspectCertificate summarizes every extractable metadata field of a
// certificate from a file path or base64-encoded certificate data.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP tool call request containing certificate input and format options
//
// Returns:
//   - The tool execution result containing the certificate summary
//   - An error if certificate processing fails
//
// The function supports markdown table output for display and JSON output
// for programmatic processing. Fields absent from the certificate stay
// empty rather than failing the whole summary.
func handleInspectCertificate(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cert, errResult := readCertificateArgument(request)
	if errResult != nil {
		return errResult, nil
	}

	format := request.GetString("format", "markdown")

	summary := x509metadata.Summarize(cert)

	switch format {
	case "json":
		jsonData, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("failed to encode summary: %v", err)), nil
		}
		return mcp.NewToolResultText(string(jsonData)), nil
	case "markdown":
		return mcp.NewToolResultText(renderCertificateTable(summary)), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported format '%s', supported formats: markdown, json", format)), nil
	}
}

// handleParseOpenSSLVersion parses a dotted OpenSSL-style version string into
// its packed numeric form.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP tool call request containing the version string
//
// Returns:
//   - The tool execution result containing the unpacked fields and packed form as JSON
//   - An error if processing fails
//
// The packed form follows the classic nibble layout
// (major<<28 | minor<<20 | fix<<12 | patch<<4 | status) used by library
// version comparisons.
func handleParseOpenSSLVersion(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	versionInput, err := request.RequireString("version")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("version parameter required: %v", err)), nil
	}

	v, ok := sslversion.Parse(versionInput)
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("version string did not parse: %q", versionInput)), nil
	}

	packed := v.Pack()
	jsonData, err := json.MarshalIndent(struct {
		Input   string `json:"input"`
		Packed  string `json:"packed"`
		Major   uint32 `json:"major"`
		Minor   uint32 `json:"minor"`
		Fix     uint32 `json:"fix"`
		Patch   uint32 `json:"patch"`
		Status  uint32 `json:"status"`
		Display string `json:"display"`
	}{versionInput, fmt.Sprintf("0x%08x", packed), v.Major, v.Minor, v.Fix, v.Patch & 0xff, v.Status & 0xf, v.String()}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleFilterGrease strips reserved GREASE placeholder pairs out of
// hex-encoded TLS data such as a captured extension or cipher suite list.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP tool call request containing the hex-encoded data
//
// Returns:
//   - The tool execution result containing the filtered data and byte counts as JSON
//   - An error if processing fails
//
// The output buffer is sized to the input, so filtering never truncates:
// dropped bytes are exactly the reserved pairs.
func handleFilterGrease(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	dataInput, err := request.RequireString("data")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("data parameter required: %v", err)), nil
	}

	src, err := hex.DecodeString(dataInput)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to decode hex input: %v", err)), nil
	}

	sink := bounded.New(len(src))
	written := tlsgrease.Filter(sink, src)

	jsonData, err := json.MarshalIndent(struct {
		Filtered    string `json:"filtered"`
		InputBytes  int    `json:"input_bytes"`
		OutputBytes int    `json:"output_bytes"`
	}{hex.EncodeToString(sink.Bytes()), len(src), written}, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to encode result: %v", err)), nil
	}

	return mcp.NewToolResultText(string(jsonData)), nil
}

// handleGetResourceUsage reports the server's own runtime statistics.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP tool call request carrying the detailed and format flags
//
// Returns:
//   - The tool execution result with the usage report
//   - An error only on protocol-level failures
//
// Formats other than markdown render as JSON. JSON reports are attached
// twice, as rendered text and as structured content, so clients can read
// them without reparsing.
func handleGetResourceUsage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	data := CollectResourceUsage(request.GetBool("detailed", false))

	if request.GetString("format", "json") == "markdown" {
		return mcp.NewToolResultText(FormatResourceUsageAsMarkdown(data)), nil
	}

	rendered, err := FormatResourceUsageAsJSON(data)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("failed to format resource usage: %v", err)), nil
	}

	var structured map[string]any
	if err := json.Unmarshal([]byte(rendered), &structured); err != nil {
		return mcp.NewToolResultText(rendered), nil
	}
	return &mcp.CallToolResult{
		Content:           []mcp.Content{mcp.NewTextContent(rendered)},
		StructuredContent: structured,
	}, nil
}

// handleGetCertificateField extracts a single certificate field into a
// bounded buffer and returns it in the requested encoding.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP tool call request containing certificate, field, encoding, and max_bytes
//   - config: Server configuration providing the default buffer capacity
//
// Returns:
//   - The tool execution result containing the extracted field value
//   - An error if certificate processing fails
//
// Extraction is all-or-nothing: a field that does not fit the buffer
// reports an overflow error naming the capacity instead of returning a
// truncated value. Binary fields honor the encoding parameter; text fields
// return verbatim.
func handleGetCertificateField(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	cert, errResult := readCertificateArgument(request)
	if errResult != nil {
		return errResult, nil
	}

	fieldName, err := request.RequireString("field")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("field parameter required: %v", err)), nil
	}

	encoding := request.GetString("encoding", "hex")
	capacity := extractionCapacity(request, config)

	ext, ok := fieldExtractors[strings.ToLower(fieldName)]
	if !ok {
		return mcp.NewToolResultError(fmt.Sprintf("unknown field %q, supported: serial, der, notbefore, notafter, keyalg, sigalg, sha1, sha256", fieldName)), nil
	}

	sink := bounded.New(capacity)
	switch ext.extract(cert, sink) {
	case x509metadata.Overflow:
		return mcp.NewToolResultError(fmt.Sprintf("field %q needs more than %d bytes, raise max_bytes", fieldName, capacity)), nil
	case x509metadata.NotFound:
		return mcp.NewToolResultError(fmt.Sprintf("field %q not present in certificate", fieldName)), nil
	}

	if !ext.binary {
		return mcp.NewToolResultText(sink.String()), nil
	}

	switch encoding {
	case "hex":
		return mcp.NewToolResultText(hex.EncodeToString(sink.Bytes())), nil
	case "base64":
		return mcp.NewToolResultText(base64.StdEncoding.EncodeToString(sink.Bytes())), nil
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unknown encoding %q, supported: hex, base64", encoding)), nil
	}
}

// handleLookupDNEntry finds a distinguished name attribute by name and
// occurrence and returns its raw value.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP tool call request containing certificate, name, position, source, and max_bytes
//   - config: Server configuration providing the default buffer capacity
//
// Returns:
//   - The tool execution result containing the attribute value
//   - An error if certificate processing fails
//
// The name parameter matches short names ("CN") case-insensitively and
// falls back to dotted OIDs for attribute types outside the short-name
// table. Position 0 is the first match in stored order; negative positions
// count from the end.
func handleLookupDNEntry(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	cert, errResult := readCertificateArgument(request)
	if errResult != nil {
		return errResult, nil
	}

	entryName, err := request.RequireString("name")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("name parameter required: %v", err)), nil
	}

	position := request.GetInt("position", 0)
	source := request.GetString("source", "subject")
	capacity := extractionCapacity(request, config)

	name, errResult := parseDNSource(cert, source)
	if errResult != nil {
		return errResult, nil
	}

	sink := bounded.New(capacity)
	switch name.EntryValue(entryName, position, sink) {
	case x509metadata.Overflow:
		return mcp.NewToolResultError(fmt.Sprintf("entry %q needs more than %d bytes, raise max_bytes", entryName, capacity)), nil
	case x509metadata.NotFound:
		return mcp.NewToolResultError(fmt.Sprintf("entry %q at position %d not present in %s", entryName, position, strings.ToLower(source))), nil
	}

	return mcp.NewToolResultText(sink.String()), nil
}

// handleRenderDN renders a certificate's subject or issuer name in oneline
// or RFC 2253 form.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP tool call request containing certificate, style, source, and max_bytes
//   - config: Server configuration providing the default buffer capacity
//
// Returns:
//   - The tool execution result containing the rendered name
//   - An error if certificate processing fails
//
// The oneline style is all-or-nothing at entry granularity and reports an
// overflow error when the name does not fit. The RFC 2253 style truncates
// to the buffer instead, so its output may be a cut prefix of a very large
// name.
func handleRenderDN(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	cert, errResult := readCertificateArgument(request)
	if errResult != nil {
		return errResult, nil
	}

	style := request.GetString("style", "oneline")
	source := request.GetString("source", "subject")
	capacity := extractionCapacity(request, config)

	name, errResult := parseDNSource(cert, source)
	if errResult != nil {
		return errResult, nil
	}

	sink := bounded.New(capacity)
	switch style {
	case "oneline":
		switch name.Oneline(sink) {
		case x509metadata.Overflow:
			return mcp.NewToolResultError(fmt.Sprintf("oneline form needs more than %d bytes, raise max_bytes", capacity)), nil
		case x509metadata.NotFound:
			return mcp.NewToolResultError(fmt.Sprintf("%s has no entries", strings.ToLower(source))), nil
		}
	case "rfc2253":
		name.Render(x509metadata.RenderRFC2253, sink)
	default:
		return mcp.NewToolResultError(fmt.Sprintf("unsupported style '%s', supported styles: oneline, rfc2253", style)), nil
	}

	return mcp.NewToolResultText(sink.String()), nil
}

// handleFetchPeerCertificate connects to a live TLS endpoint and summarizes
// the leaf certificate it presents. With include_chain the PEM section
// carries every certificate the peer sent, leaf first, instead of just
// the leaf.
//
// Parameters:
//   - ctx: Context for cancellation and timeout handling
//   - request: MCP tool call request containing hostname, port, include_chain
//   - config: Server configuration providing the dial timeout
//
// Returns:
//   - The tool execution result containing the peer summary and PEM output
//   - An error if connection or certificate retrieval fails
//
// The handshake runs without verification because the inspector reads
// peers it does not trust; the captured certificates outlive the closed
// connection.
func handleFetchPeerCertificate(ctx context.Context, request mcp.CallToolRequest, config *Config) (*mcp.CallToolResult, error) {
	hostname, err := request.RequireString("hostname")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("hostname parameter required: %v", err)), nil
	}

	port := request.GetInt("port", 443)
	addr := net.JoinHostPort(hostname, strconv.Itoa(port))

	session, err := tlspeer.Dial(ctx, addr, tlspeer.Config{
		Timeout: time.Duration(config.Defaults.Timeout) * time.Second,
	})
	if err != nil {
		return mcp.NewToolResultError(err.Error()), nil
	}

	handle := session.PeerCertificate()
	if handle == nil {
		return mcp.NewToolResultError(fmt.Sprintf("peer %s presented no certificate", addr)), nil
	}
	cert := handle.Certificate()
	handle.Release()

	codec := x509certs.New()
	pemData := codec.EncodePEM(cert)
	if request.GetBool("include_chain", false) {
		if chain := session.PresentedChain(); len(chain) > 0 {
			pemData = codec.EncodeBundlePEM(chain)
		}
	}

	result := fmt.Sprintf("Peer certificate for %s:\n\n", addr)
	result += renderCertificateTable(x509metadata.Summarize(cert))
	result += "\n" + string(pemData)

	return mcp.NewToolResultText(result), nil
}

// renderCertificateTable lays a certificate summary out as a two-column
// markdown table for MCP clients that render markdown.
func renderCertificateTable(summary x509metadata.Summary) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf,
		tablewriter.WithRenderer(renderer.NewMarkdown(tw.Rendition{Streaming: true})),
	)
	table.Header([]string{"Field", "Value"})

	rows := [][]string{
		{"Serial", summary.Serial},
		{"Subject", summary.Subject},
		{"Subject (RFC 2253)", summary.SubjectRFC2253},
		{"Issuer", summary.Issuer},
		{"Issuer (RFC 2253)", summary.IssuerRFC2253},
		{"Not Before", summary.NotBefore},
		{"Not After", summary.NotAfter},
		{"Key Algorithm", summary.KeyAlgorithm},
		{"Signature Algorithm", summary.SignatureAlgorithm},
		{"SHA-1 Fingerprint", summary.SHA1},
		{"SHA-256 Fingerprint", summary.SHA256},
		{"DER Size", fmt.Sprintf("%d bytes", summary.DERBytes)},
	}

	table.Bulk(rows)
	table.Render()
	return buf.String()
}

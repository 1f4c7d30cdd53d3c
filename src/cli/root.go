// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli

import (
	"context"
	"crypto/x509"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/helper/bounded"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/sslversion"
	tlsgrease "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/tls/grease"
	tlspeer "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/tls/peer"
	x509certs "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/certs"
	x509metadata "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/metadata"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/logger"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

var (
	connectAddr  string
	fieldName    string
	dnEntry      string
	dnPos        int
	dnSource     string
	dnOneline    bool
	dnFormat     string
	versionInput string
	greaseInput  string
	bufferSize   int
	outputFile   string
	jsonOutput   bool
	dialTimeout  time.Duration
)

// OperationPerformed reports whether an inspection was dispatched, as
// opposed to Cobra handling --help or --version itself. The cmd wrappers
// read it to decide whether a completion message makes sense.
var OperationPerformed bool

// OperationPerformedSuccessfully reports whether the dispatched
// inspection finished without error.
var OperationPerformedSuccessfully bool

var (
	// ErrInputRequired indicates neither a certificate file nor --connect was given.
	ErrInputRequired = errors.New("cli: certificate input required, pass a file or --connect")
	// ErrUnknownField indicates an unrecognized --field name.
	ErrUnknownField = errors.New("cli: unknown field name")
	// ErrUnknownSource indicates a --dn source other than subject or issuer.
	ErrUnknownSource = errors.New("cli: name source must be subject or issuer")
	// ErrUnknownFormat indicates an unrecognized --dn-format style.
	ErrUnknownFormat = errors.New("cli: unknown render format, want rfc2253")
	// ErrNotFound indicates the certificate does not carry the requested data.
	ErrNotFound = errors.New("cli: requested data not present in certificate")
	// ErrBufferTooSmall indicates the extraction result would not fit the output buffer.
	ErrBufferTooSmall = errors.New("cli: output buffer too small, raise --buffer-size")
	// ErrVersionSyntax indicates --parse-version input that does not follow the dotted grammar.
	ErrVersionSyntax = errors.New("cli: version string did not parse")
	// ErrNoPeerCertificate indicates the remote peer completed the handshake without a certificate.
	ErrNoPeerCertificate = errors.New("cli: peer presented no certificate")
)

// fields maps --field names to their extractors. Binary fields print as
// hex and write raw bytes to --output; text fields print verbatim.
var fields = map[string]struct {
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

// Execute runs the root command and returns its error instead of exiting,
// so the cmd wrappers own process lifecycle and signal handling.
func Execute(ctx context.Context, version string, log logger.Logger) error {
	OperationPerformed = false
	OperationPerformedSuccessfully = false

	rootCmd := &cobra.Command{
		Use:     "tls-cert-inspector [CERTIFICATE_FILE]",
		Short:   "TLS certificate metadata inspector",
		Version: version,
		Args:    cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return execInspect(cmd.Context(), args, log)
		},
	}

	rootCmd.Flags().StringVarP(&connectAddr, "connect", "c", "", "inspect the certificate of a remote peer (host:port) instead of a file")
	rootCmd.Flags().StringVarP(&fieldName, "field", "f", "", "extract one field: serial|der|notbefore|notafter|keyalg|sigalg|sha1|sha256")
	rootCmd.Flags().StringVar(&dnEntry, "dn-entry", "", "look up one distinguished-name entry by short name or dotted OID")
	rootCmd.Flags().IntVar(&dnPos, "dn-pos", 0, "entry occurrence for --dn-entry, negative counts from the end")
	rootCmd.Flags().StringVar(&dnSource, "dn", "subject", "name to read: subject or issuer")
	rootCmd.Flags().BoolVar(&dnOneline, "dn-oneline", false, "print the selected name in oneline form")
	rootCmd.Flags().StringVar(&dnFormat, "dn-format", "", "print the selected name in a formatted style (rfc2253)")
	rootCmd.Flags().StringVar(&versionInput, "parse-version", "", "parse a dotted library version string and print its packed form")
	rootCmd.Flags().StringVar(&greaseInput, "filter-grease", "", "strip reserved placeholder pairs from hex-encoded extension data")
	rootCmd.Flags().IntVarP(&bufferSize, "buffer-size", "b", 16384, "output buffer capacity in bytes")
	rootCmd.Flags().StringVarP(&outputFile, "output", "o", "", "write raw result bytes to OUTPUT_FILE (default: print)")
	rootCmd.Flags().BoolVar(&jsonOutput, "json", false, "machine-readable output")
	rootCmd.Flags().DurationVarP(&dialTimeout, "timeout", "t", 15*time.Second, "dial timeout for --connect")

	return rootCmd.ExecuteContext(ctx)
}

// execInspect records that an inspection ran and dispatches it.
func execInspect(ctx context.Context, args []string, log logger.Logger) error {
	OperationPerformed = true

	if err := runInspection(ctx, args, log); err != nil {
		return err
	}

	OperationPerformedSuccessfully = true
	return nil
}

// runInspection routes the flag combination to one operation. Utility
// modes come first because they need no certificate input.
func runInspection(ctx context.Context, args []string, log logger.Logger) error {
	if versionInput != "" {
		return execParseVersion(log)
	}
	if greaseInput != "" {
		return execFilterGrease(log)
	}

	cert, err := loadCertificate(ctx, args)
	if err != nil {
		return err
	}

	switch {
	case fieldName != "":
		return execField(cert, log)
	case dnEntry != "":
		return execDNEntry(cert, log)
	case dnOneline || dnFormat != "":
		return execDNRender(cert, log)
	default:
		return execSummary(cert, log)
	}
}

// loadCertificate obtains the certificate under inspection, from a live
// peer when --connect is set, otherwise from the file argument.
func loadCertificate(ctx context.Context, args []string) (*x509.Certificate, error) {
	if connectAddr != "" {
		session, err := tlspeer.Dial(ctx, connectAddr, tlspeer.Config{Timeout: dialTimeout})
		if err != nil {
			return nil, err
		}

		handle := session.PeerCertificate()
		if handle == nil {
			return nil, fmt.Errorf("peer %s: %w", connectAddr, ErrNoPeerCertificate)
		}
		cert := handle.Certificate()
		handle.Release()
		return cert, nil
	}

	if len(args) == 0 {
		return nil, ErrInputRequired
	}

	certData, err := os.ReadFile(args[0])
	if err != nil {
		return nil, fmt.Errorf("failed to read input file: %w", err)
	}

	// Bundle decoding tolerates key and CSR blocks travelling in the same
	// file; a chain file inspects its first certificate, like openssl x509
	certs, err := x509certs.New().DecodeBundle(certData)
	if err != nil {
		return nil, fmt.Errorf("failed to decode certificate: %w", err)
	}
	return certs[0], nil
}

func execField(cert *x509.Certificate, log logger.Logger) error {
	ext, ok := fields[strings.ToLower(fieldName)]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownField, fieldName)
	}

	sink := bounded.New(bufferSize)
	switch ext.extract(cert, sink) {
	case x509metadata.Overflow:
		return fmt.Errorf("%w: field %q needs more than %d bytes", ErrBufferTooSmall, fieldName, bufferSize)
	case x509metadata.NotFound:
		return fmt.Errorf("%w: %q", ErrNotFound, fieldName)
	}

	return writeOrEmit(log, strings.ToLower(fieldName), sink.Bytes(), ext.binary)
}

func execDNEntry(cert *x509.Certificate, log logger.Logger) error {
	name, err := parseNameSource(cert)
	if err != nil {
		return err
	}

	sink := bounded.New(bufferSize)
	switch name.EntryValue(dnEntry, dnPos, sink) {
	case x509metadata.Overflow:
		return fmt.Errorf("%w: entry %q needs more than %d bytes", ErrBufferTooSmall, dnEntry, bufferSize)
	case x509metadata.NotFound:
		return fmt.Errorf("%w: entry %q at position %d", ErrNotFound, dnEntry, dnPos)
	}

	return writeOrEmit(log, dnEntry, sink.Bytes(), false)
}

func execDNRender(cert *x509.Certificate, log logger.Logger) error {
	name, err := parseNameSource(cert)
	if err != nil {
		return err
	}

	sink := bounded.New(bufferSize)
	if dnOneline {
		switch name.Oneline(sink) {
		case x509metadata.Overflow:
			return fmt.Errorf("%w: oneline form needs more than %d bytes", ErrBufferTooSmall, bufferSize)
		case x509metadata.NotFound:
			return fmt.Errorf("%w: name has no entries", ErrNotFound)
		}
	} else if name.Render(dnFormat, sink) == x509metadata.NotFound {
		// Render truncates instead of overflowing, so the only failure
		// left is an unrecognized format.
		return fmt.Errorf("%w: %q", ErrUnknownFormat, dnFormat)
	}

	return writeOrEmit(log, strings.ToLower(dnSource), sink.Bytes(), false)
}

func execSummary(cert *x509.Certificate, log logger.Logger) error {
	summary := x509metadata.Summarize(cert)

	if jsonOutput {
		out, err := json.MarshalIndent(summary, "", "  ")
		if err != nil {
			return fmt.Errorf("failed to encode summary: %w", err)
		}
		log.Println(string(out))
		return nil
	}

	log.Printf("%s", renderSummaryTable(summary))
	return nil
}

func execParseVersion(log logger.Logger) error {
	v, ok := sslversion.Parse(versionInput)
	if !ok {
		return fmt.Errorf("%w: %q", ErrVersionSyntax, versionInput)
	}

	packed := v.Pack()
	if jsonOutput {
		out, err := json.Marshal(struct {
			Input  string `json:"input"`
			Packed string `json:"packed"`
			Major  uint32 `json:"major"`
			Minor  uint32 `json:"minor"`
			Fix    uint32 `json:"fix"`
			Patch  uint32 `json:"patch"`
			Status uint32 `json:"status"`
		}{versionInput, fmt.Sprintf("0x%08x", packed), v.Major, v.Minor, v.Fix, v.Patch & 0xff, v.Status & 0xf})
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		log.Println(string(out))
		return nil
	}

	log.Printf("%s -> 0x%08x (%s)", versionInput, packed, v)
	return nil
}

func execFilterGrease(log logger.Logger) error {
	src, err := hex.DecodeString(greaseInput)
	if err != nil {
		return fmt.Errorf("failed to decode hex input: %w", err)
	}

	sink := bounded.New(bufferSize)
	tlsgrease.Filter(sink, src)

	return writeOrEmit(log, "filtered", sink.Bytes(), true)
}

// parseNameSource parses the subject or issuer selected by --dn.
func parseNameSource(cert *x509.Certificate) (*x509metadata.Name, error) {
	var raw []byte
	switch strings.ToLower(dnSource) {
	case "", "subject":
		raw = cert.RawSubject
	case "issuer":
		raw = cert.RawIssuer
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownSource, dnSource)
	}

	name, err := x509metadata.ParseName(raw)
	if err != nil {
		return nil, fmt.Errorf("failed to parse name: %w", err)
	}
	return name, nil
}

// inspectionResult is the machine-readable shape of a single extraction.
type inspectionResult struct {
	Field string `json:"field"`
	Value string `json:"value"`
}

// writeOrEmit sends extracted bytes where the flags direct them: raw to
// --output, otherwise hex for binary fields or text for string fields.
func writeOrEmit(log logger.Logger, field string, data []byte, binary bool) error {
	if outputFile != "" {
		if err := os.WriteFile(outputFile, data, 0644); err != nil {
			return fmt.Errorf("failed to write output file: %w", err)
		}
		return nil
	}

	display := string(data)
	if binary {
		display = hex.EncodeToString(data)
	}

	if jsonOutput {
		out, err := json.Marshal(inspectionResult{Field: field, Value: display})
		if err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
		log.Println(string(out))
		return nil
	}

	log.Println(display)
	return nil
}

// renderSummaryTable lays the summary out as a two-column table for
// terminal display.
func renderSummaryTable(summary x509metadata.Summary) string {
	var buf strings.Builder
	table := tablewriter.NewTable(&buf)
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

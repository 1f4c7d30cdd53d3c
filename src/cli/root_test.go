// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package cli_test

import (
	"bytes"
	"context"
	"crypto/ecdsa"
	"crypto/ed25519"
	"crypto/elliptic"
	"crypto/rand"
	"crypto/sha256"
	"crypto/tls"
	"crypto/x509"
	"crypto/x509/pkix"
	"encoding/hex"
	"encoding/json"
	"math/big"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/cli"
	x509certs "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/certs"
	"github.com/H0llyW00dzZ/tls-cert-inspector/src/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const version = "1.3.3.7-testing"

var (
	fixtureOnce sync.Once
	fixtureErr  error
	fixtureCert *x509.Certificate
	fixtureKey  *ecdsa.PrivateKey
	fixturePEM  []byte
)

// testCert returns a self-signed leaf with known metadata: serial
// 0xCAFE (whose DER form carries a sign-padding byte), an EC P-256 key,
// and UTCTime validity bounds.
func testCert(t *testing.T) (*x509.Certificate, []byte) {
	t.Helper()

	fixtureOnce.Do(func() {
		key, err := ecdsa.GenerateKey(elliptic.P256(), rand.Reader)
		if err != nil {
			fixtureErr = err
			return
		}

		template := &x509.Certificate{
			SerialNumber: big.NewInt(0xCAFE),
			Subject: pkix.Name{
				CommonName:   "cli test leaf",
				Organization: []string{"Inspector CLI"},
				Country:      []string{"DE"},
			},
			NotBefore: time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC),
			NotAfter:  time.Date(2035, 6, 1, 0, 0, 0, 0, time.UTC),
		}
		der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
		if err != nil {
			fixtureErr = err
			return
		}

		cert, err := x509.ParseCertificate(der)
		if err != nil {
			fixtureErr = err
			return
		}

		fixtureCert = cert
		fixtureKey = key
		fixturePEM = x509certs.New().EncodePEM(cert)
	})
	require.NoError(t, fixtureErr, "failed to build test certificate")

	return fixtureCert, fixturePEM
}

// writeCertFile drops the fixture certificate into a temp file and
// returns its path.
func writeCertFile(t *testing.T) string {
	t.Helper()

	_, pemData := testCert(t)
	path := filepath.Join(t.TempDir(), "leaf.pem")
	require.NoError(t, os.WriteFile(path, pemData, 0644))
	return path
}

// runCLI executes the root command with the given arguments and captures
// both logger streams.
func runCLI(t *testing.T, args ...string) (stdout string, err error) {
	t.Helper()

	oldArgs := os.Args
	os.Args = append([]string{"tls-cert-inspector"}, args...)
	defer func() { os.Args = oldArgs }()

	var out, errOut bytes.Buffer
	log := logger.NewCLILogger()
	log.SetOutput(&out)
	log.SetErrorOutput(&errOut)

	err = cli.Execute(context.Background(), version, log)
	return out.String(), err
}

func TestExecute_Summary(t *testing.T) {
	cert, _ := testCert(t)
	path := writeCertFile(t)

	out, err := runCLI(t, path)
	require.NoError(t, err)

	assert.True(t, cli.OperationPerformed)
	assert.True(t, cli.OperationPerformedSuccessfully)

	assert.Contains(t, out, "00cafe", "expected the padded serial in the summary table")
	assert.Contains(t, out, "cli test leaf")
	assert.Contains(t, out, "250601000000Z")
	assert.Contains(t, out, "ECDSA-SHA256")

	sum := sha256.Sum256(cert.Raw)
	assert.Contains(t, out, hex.EncodeToString(sum[:]))
}

func TestExecute_SummaryJSON(t *testing.T) {
	path := writeCertFile(t)

	out, err := runCLI(t, path, "--json")
	require.NoError(t, err)

	var summary map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &summary), "summary output should be JSON")

	assert.Equal(t, "00cafe", summary["serial"])
	assert.Equal(t, "/C=DE/O=Inspector CLI/CN=cli test leaf", summary["subject"])
	assert.Equal(t, "CN=cli test leaf,O=Inspector CLI,C=DE", summary["subject_rfc2253"])
	assert.Equal(t, summary["subject"], summary["issuer"], "self-signed, issuer matches subject")
	assert.Equal(t, "EC256", summary["key_algorithm"])
	assert.NotZero(t, summary["der_bytes"])
}

func TestExecute_Field(t *testing.T) {
	cert, _ := testCert(t)
	path := writeCertFile(t)

	sum := sha256.Sum256(cert.Raw)

	tests := []struct {
		name  string
		field string
		want  string
	}{
		{name: "Serial Keeps Wire Padding", field: "serial", want: "00cafe"},
		{name: "Not Before As UTCTime Text", field: "notbefore", want: "250601000000Z"},
		{name: "Not After As UTCTime Text", field: "notafter", want: "350601000000Z"},
		{name: "Key Algorithm", field: "keyalg", want: "EC256"},
		{name: "Signature Algorithm", field: "sigalg", want: "ECDSA-SHA256"},
		{name: "SHA-256 Fingerprint", field: "sha256", want: hex.EncodeToString(sum[:])},
		{name: "Full DER As Hex", field: "der", want: hex.EncodeToString(cert.Raw)},
		{name: "Field Name Is Case Insensitive", field: "SERIAL", want: "00cafe"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, path, "-f", tt.field)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}
}

func TestExecute_FieldJSON(t *testing.T) {
	path := writeCertFile(t)

	out, err := runCLI(t, path, "-f", "serial", "--json")
	require.NoError(t, err)

	var result map[string]string
	require.NoError(t, json.Unmarshal([]byte(out), &result))
	assert.Equal(t, "serial", result["field"])
	assert.Equal(t, "00cafe", result["value"])
}

func TestExecute_FieldToFile(t *testing.T) {
	cert, _ := testCert(t)
	path := writeCertFile(t)
	outPath := filepath.Join(t.TempDir(), "leaf.der")

	out, err := runCLI(t, path, "-f", "der", "-o", outPath)
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(out), "raw output goes to the file, not the terminal")

	written, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Equal(t, cert.Raw, written, "expected verbatim DER bytes on disk")
}

func TestExecute_FieldErrors(t *testing.T) {
	path := writeCertFile(t)

	t.Run("Unknown Field Name", func(t *testing.T) {
		_, err := runCLI(t, path, "-f", "pubkey")
		require.ErrorIs(t, err, cli.ErrUnknownField)
	})

	t.Run("Buffer Too Small Suggests The Flag", func(t *testing.T) {
		_, err := runCLI(t, path, "-f", "sha256", "-b", "4")
		require.ErrorIs(t, err, cli.ErrBufferTooSmall)
		assert.Contains(t, err.Error(), "--buffer-size")
	})

	t.Run("Absent Field Reports Not Found", func(t *testing.T) {
		// An Ed25519 key is outside the RSA/EC/DSA families the key
		// algorithm descriptor understands.
		pub, priv, err := ed25519.GenerateKey(rand.Reader)
		require.NoError(t, err)

		template := &x509.Certificate{
			SerialNumber: big.NewInt(7),
			Subject:      pkix.Name{CommonName: "ed leaf"},
			NotBefore:    time.Now().Add(-time.Hour),
			NotAfter:     time.Now().Add(time.Hour),
		}
		der, err := x509.CreateCertificate(rand.Reader, template, template, pub, priv)
		require.NoError(t, err)
		cert, err := x509.ParseCertificate(der)
		require.NoError(t, err)

		edPath := filepath.Join(t.TempDir(), "ed.pem")
		require.NoError(t, os.WriteFile(edPath, x509certs.New().EncodePEM(cert), 0644))

		_, runErr := runCLI(t, edPath, "-f", "keyalg")
		require.ErrorIs(t, runErr, cli.ErrNotFound)
		assert.False(t, cli.OperationPerformedSuccessfully)
	})
}

func TestExecute_DNEntry(t *testing.T) {
	path := writeCertFile(t)

	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "Common Name", args: []string{"--dn-entry", "CN"}, want: "cli test leaf"},
		{name: "Lookup Is Case Insensitive", args: []string{"--dn-entry", "cn"}, want: "cli test leaf"},
		{name: "Dotted OID Form", args: []string{"--dn-entry", "2.5.4.10"}, want: "Inspector CLI"},
		{name: "Reverse Occurrence", args: []string{"--dn-entry", "C", "--dn-pos", "-1"}, want: "DE"},
		{name: "Issuer Source", args: []string{"--dn-entry", "O", "--dn", "issuer"}, want: "Inspector CLI"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, err := runCLI(t, append([]string{path}, tt.args...)...)
			require.NoError(t, err)
			assert.Equal(t, tt.want, strings.TrimSpace(out))
		})
	}

	t.Run("Absent Entry Reports Not Found", func(t *testing.T) {
		_, err := runCLI(t, path, "--dn-entry", "OU")
		require.ErrorIs(t, err, cli.ErrNotFound)
	})

	t.Run("Unknown Source Is Rejected", func(t *testing.T) {
		_, err := runCLI(t, path, "--dn-entry", "CN", "--dn", "peer")
		require.ErrorIs(t, err, cli.ErrUnknownSource)
	})
}

func TestExecute_DNRender(t *testing.T) {
	path := writeCertFile(t)

	t.Run("Oneline Subject", func(t *testing.T) {
		out, err := runCLI(t, path, "--dn-oneline")
		require.NoError(t, err)
		assert.Equal(t, "/C=DE/O=Inspector CLI/CN=cli test leaf", strings.TrimSpace(out))
	})

	t.Run("Oneline Issuer Matches For Self-Signed", func(t *testing.T) {
		out, err := runCLI(t, path, "--dn-oneline", "--dn", "issuer")
		require.NoError(t, err)
		assert.Equal(t, "/C=DE/O=Inspector CLI/CN=cli test leaf", strings.TrimSpace(out))
	})

	t.Run("RFC 2253 Reverses The Sequence", func(t *testing.T) {
		out, err := runCLI(t, path, "--dn-format", "rfc2253")
		require.NoError(t, err)
		assert.Equal(t, "CN=cli test leaf,O=Inspector CLI,C=DE", strings.TrimSpace(out))
	})

	t.Run("Unknown Format Is Rejected", func(t *testing.T) {
		_, err := runCLI(t, path, "--dn-format", "x500")
		require.ErrorIs(t, err, cli.ErrUnknownFormat)
	})
}

func TestExecute_ParseVersion(t *testing.T) {
	t.Run("Release With Letter Patch", func(t *testing.T) {
		out, err := runCLI(t, "--parse-version", "1.0.2u")
		require.NoError(t, err)
		assert.Contains(t, out, "0x1000215f")
	})

	t.Run("Beta Build", func(t *testing.T) {
		out, err := runCLI(t, "--parse-version", "3.0.0-beta2")
		require.NoError(t, err)
		assert.Contains(t, out, "0x30000002")
	})

	t.Run("JSON Fields", func(t *testing.T) {
		out, err := runCLI(t, "--parse-version", "1.0.2u", "--json")
		require.NoError(t, err)

		var result map[string]any
		require.NoError(t, json.Unmarshal([]byte(out), &result))
		assert.Equal(t, "0x1000215f", result["packed"])
		assert.Equal(t, float64(1), result["major"])
		assert.Equal(t, float64(0), result["minor"])
		assert.Equal(t, float64(2), result["fix"])
		assert.Equal(t, float64(21), result["patch"])
	})

	t.Run("Grammar Violation", func(t *testing.T) {
		_, err := runCLI(t, "--parse-version", "abc")
		require.ErrorIs(t, err, cli.ErrVersionSyntax)
	})

	t.Run("Needs No Certificate Input", func(t *testing.T) {
		_, err := runCLI(t, "--parse-version", "3.0.0")
		require.NoError(t, err)
	})
}

func TestExecute_FilterGrease(t *testing.T) {
	t.Run("Strips Reserved Pairs", func(t *testing.T) {
		out, err := runCLI(t, "--filter-grease", "0a0a01021a1a")
		require.NoError(t, err)
		assert.Equal(t, "0102", strings.TrimSpace(out))
	})

	t.Run("Keeps The Odd Trailing Byte", func(t *testing.T) {
		out, err := runCLI(t, "--filter-grease", "0a0a05")
		require.NoError(t, err)
		assert.Equal(t, "05", strings.TrimSpace(out))
	})

	t.Run("Rejects Bad Hex", func(t *testing.T) {
		_, err := runCLI(t, "--filter-grease", "zz")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "hex")
	})
}

func TestExecute_InputErrors(t *testing.T) {
	t.Run("No Input", func(t *testing.T) {
		_, err := runCLI(t)
		require.ErrorIs(t, err, cli.ErrInputRequired)
		assert.True(t, cli.OperationPerformed)
		assert.False(t, cli.OperationPerformedSuccessfully)
	})

	t.Run("Invalid File", func(t *testing.T) {
		tmpFile := filepath.Join(t.TempDir(), "invalid.cer")
		require.NoError(t, os.WriteFile(tmpFile, []byte("invalid data"), 0644))

		_, err := runCLI(t, tmpFile)
		require.Error(t, err)
	})

	t.Run("Non-Existent File", func(t *testing.T) {
		_, err := runCLI(t, filepath.Join(t.TempDir(), "missing.cer"))
		require.Error(t, err)
	})
}

func TestExecute_Connect(t *testing.T) {
	cert, _ := testCert(t)

	ln, err := tls.Listen("tcp", "127.0.0.1:0", &tls.Config{
		Certificates: []tls.Certificate{{
			Certificate: [][]byte{cert.Raw},
			PrivateKey:  fixtureKey,
		}},
	})
	require.NoError(t, err)
	defer ln.Close()

	go func() {
		for {
			conn, err := ln.Accept()
			if err != nil {
				return
			}
			conn.(*tls.Conn).Handshake()
			conn.Close()
		}
	}()

	out, err := runCLI(t, "-c", ln.Addr().String(), "-f", "serial", "-t", "5s")
	require.NoError(t, err)
	assert.Equal(t, "00cafe", strings.TrimSpace(out))

	_, err = runCLI(t, "-c", "127.0.0.1:1", "-t", "500ms")
	require.Error(t, err, "expected a dial error against a closed port")
}

func TestExecute_Version(t *testing.T) {
	_, err := runCLI(t, "--version")
	require.NoError(t, err)
	assert.False(t, cli.OperationPerformed, "--version is handled before any inspection runs")
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509metadata_test

import (
	"crypto/sha1"
	"crypto/sha256"
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"

	x509metadata "github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/x509/metadata"
)

func TestSummarize(t *testing.T) {
	cert := testRSACert(t)
	s := x509metadata.Summarize(cert)

	assert.Equal(t, "00deadbeef", s.Serial)
	assert.Equal(t, "/C=GB/O=Inspector Test/CN=metadata test leaf", s.Subject)
	assert.Equal(t, "CN=metadata test leaf,O=Inspector Test,C=GB", s.SubjectRFC2253)
	assert.Equal(t, s.Subject, s.Issuer, "self-signed fixture: issuer mirrors subject")
	assert.Equal(t, s.SubjectRFC2253, s.IssuerRFC2253)
	assert.Equal(t, "250102150405Z", s.NotBefore)
	assert.Equal(t, "491231235959Z", s.NotAfter)
	assert.Equal(t, "RSA2048", s.KeyAlgorithm)
	assert.Equal(t, "SHA256-RSA", s.SignatureAlgorithm)
	assert.Equal(t, len(cert.Raw), s.DERBytes)

	sum1 := sha1.Sum(cert.Raw)
	assert.Equal(t, hex.EncodeToString(sum1[:]), s.SHA1)
	sum256 := sha256.Sum256(cert.Raw)
	assert.Equal(t, hex.EncodeToString(sum256[:]), s.SHA256)
}

func TestSummarizeAbsentFieldsStayEmpty(t *testing.T) {
	cert := testECCert(t)
	s := x509metadata.Summarize(cert)

	assert.Equal(t, "520315121314Z", s.NotBefore)
	assert.Empty(t, s.NotAfter, "year 2100 fails the century check")
	assert.Equal(t, "EC256", s.KeyAlgorithm)

	ed := x509metadata.Summarize(testEdCert(t))
	assert.Empty(t, ed.KeyAlgorithm, "Ed25519 has no descriptor")
	assert.Equal(t, "Ed25519", ed.SignatureAlgorithm)
}

func TestSummarizeNilCertificate(t *testing.T) {
	assert.Equal(t, x509metadata.Summary{}, x509metadata.Summarize(nil))
}

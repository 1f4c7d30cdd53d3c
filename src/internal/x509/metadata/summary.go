// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509metadata

import (
	"crypto/x509"
	"encoding/hex"

	"github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/helper/bounded"
)

// Summary captures every extractable field of one certificate in
// display form for the rendering front-ends. Binary fields are
// lowercase hex; fields the extractors report absent stay empty.
type Summary struct {
	Serial             string `json:"serial,omitempty"`
	Subject            string `json:"subject,omitempty"`
	SubjectRFC2253     string `json:"subject_rfc2253,omitempty"`
	Issuer             string `json:"issuer,omitempty"`
	IssuerRFC2253      string `json:"issuer_rfc2253,omitempty"`
	NotBefore          string `json:"not_before,omitempty"`
	NotAfter           string `json:"not_after,omitempty"`
	KeyAlgorithm       string `json:"key_algorithm,omitempty"`
	SignatureAlgorithm string `json:"signature_algorithm,omitempty"`
	SHA1               string `json:"sha1_fingerprint,omitempty"`
	SHA256             string `json:"sha256_fingerprint,omitempty"`
	DERBytes           int    `json:"der_bytes"`
}

// Summarize runs every extractor over the certificate and collects the
// results in display form. Sinks start small and are grown and retried
// on [Overflow], the intended consumption pattern for the bounded
// extractors; absent fields stay empty rather than failing the whole
// summary.
func Summarize(cert *x509.Certificate) Summary {
	var s Summary
	if cert == nil {
		return s
	}

	if data, st := extract(func(sink Sink) Status { return SerialNumber(cert, sink) }); st == Found {
		s.Serial = hex.EncodeToString(data)
	}
	if data, st := extract(func(sink Sink) Status { return NotBefore(cert, sink) }); st == Found {
		s.NotBefore = string(data)
	}
	if data, st := extract(func(sink Sink) Status { return NotAfter(cert, sink) }); st == Found {
		s.NotAfter = string(data)
	}
	if data, st := extract(func(sink Sink) Status { return PublicKeyAlgorithm(cert, sink) }); st == Found {
		s.KeyAlgorithm = string(data)
	}
	if data, st := extract(func(sink Sink) Status { return SignatureAlgorithm(cert, sink) }); st == Found {
		s.SignatureAlgorithm = string(data)
	}
	if data, st := extract(func(sink Sink) Status { return SHA1Fingerprint(cert, sink) }); st == Found {
		s.SHA1 = hex.EncodeToString(data)
	}
	if data, st := extract(func(sink Sink) Status { return SHA256Fingerprint(cert, sink) }); st == Found {
		s.SHA256 = hex.EncodeToString(data)
	}

	s.Subject, s.SubjectRFC2253 = renderedName(cert.RawSubject)
	s.Issuer, s.IssuerRFC2253 = renderedName(cert.RawIssuer)
	s.DERBytes = len(cert.Raw)

	return s
}

// extract runs fn against a growing sink until the result fits and
// returns the appended bytes with their status. The size ceiling only
// guards against a runaway loop; no certificate field approaches it.
func extract(fn func(Sink) Status) ([]byte, Status) {
	for capacity := 64; capacity <= 1<<20; capacity *= 2 {
		buf := bounded.New(capacity)
		st := fn(buf)
		if st == Overflow {
			continue
		}
		return append([]byte(nil), buf.Bytes()...), st
	}
	return nil, Overflow
}

// renderedName serializes one raw DN in both display forms.
func renderedName(raw []byte) (oneline, rfc2253 string) {
	name, err := ParseName(raw)
	if err != nil {
		return "", ""
	}

	if data, st := extract(name.Oneline); st == Found {
		oneline = string(data)
	}

	// Escaping expands at most eightfold, so one sink sized to the
	// worst case keeps the truncating renderer from ever cutting.
	sink := bounded.New(8*len(raw) + 64)
	if name.Render(RenderRFC2253, sink) == Found && sink.Len() > 0 {
		rfc2253 = sink.String()
	}
	return oneline, rfc2253
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509metadata

import "crypto/x509"

// TimeFormat identifies the wire encoding of a validity timestamp. The
// values are the ASN.1 universal tag numbers, so an unrecognized tag
// carries through the TBS walk unchanged and lands in [WriteTime]'s
// default case.
type TimeFormat uint8

const (
	// UTCTime is the two-digit-year encoding (ASN.1 tag 23).
	UTCTime TimeFormat = 23
	// GeneralizedTime is the four-digit-year encoding (ASN.1 tag 24).
	GeneralizedTime TimeFormat = 24
)

// RawTime is one undecoded validity timestamp: the string bytes exactly
// as encoded, plus the tag they were read under.
type RawTime struct {
	Format TimeFormat
	Value  []byte
}

// WriteTime normalizes one ASN.1 validity timestamp into the sink so
// both encodings come out in the same two-digit-year shape
// ("YYMMDDHHMMSSZ").
//
// A GeneralizedTime value is accepted only for years 2000-2099: it must
// be at least 12 bytes long with a literal "20" century prefix, and the
// prefix is stripped on copy. A UTCTime value must be at least 10 bytes
// with a first digit below '5', the legacy pivot that reads two-digit
// years 50-99 as pre-2000 and rejects them. The pivot misreads years
// from 2050 on; it is kept verbatim for compatibility with consumers of
// the normalized form.
//
// Returns:
//   - Status: [NotFound] for a wrong tag, a short value, or a failed
//     prefix check; [Overflow] when the normalized bytes do not fit;
//     [Found] otherwise
func WriteTime(t RawTime, sink Sink) Status {
	switch t.Format {
	case GeneralizedTime:
		if len(t.Value) < 12 {
			return NotFound
		}
		if t.Value[0] != '2' || t.Value[1] != '0' {
			return NotFound
		}
		if !sink.TryAppend(t.Value[2:]) {
			return Overflow
		}
		return Found

	case UTCTime:
		if len(t.Value) < 10 {
			return NotFound
		}
		if t.Value[0] >= '5' {
			return NotFound
		}
		if !sink.TryAppend(t.Value) {
			return Overflow
		}
		return Found
	}

	return NotFound
}

// NotBefore extracts the start of the validity window in normalized
// form. See [WriteTime] for the format rules.
func NotBefore(cert *x509.Certificate, sink Sink) Status {
	if cert == nil {
		return NotFound
	}
	fields, ok := parseTBS(cert.RawTBSCertificate)
	if !ok {
		return NotFound
	}
	return WriteTime(fields.notBefore, sink)
}

// NotAfter extracts the end of the validity window in normalized form.
// See [WriteTime] for the format rules.
func NotAfter(cert *x509.Certificate, sink Sink) Status {
	if cert == nil {
		return NotFound
	}
	fields, ok := parseTBS(cert.RawTBSCertificate)
	if !ok {
		return NotFound
	}
	return WriteTime(fields.notAfter, sink)
}

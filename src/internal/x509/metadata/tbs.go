// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509metadata

import (
	"golang.org/x/crypto/cryptobyte"
	cryptobyte_asn1 "golang.org/x/crypto/cryptobyte/asn1"
)

// tbsFields holds the wire-level fields recovered from a TBSCertificate
// that Go's certificate parser normalizes away.
type tbsFields struct {
	// serial is the DER INTEGER contents octets, sign padding included.
	serial []byte

	notBefore RawTime
	notAfter  RawTime
}

// parseTBS re-walks the raw TBSCertificate up to the validity sequence.
// The input comes from an already-parsed certificate, so failures here
// mean the raw bytes were tampered with or truncated after parsing;
// callers treat that as the field being absent.
func parseTBS(raw []byte) (tbsFields, bool) {
	var fields tbsFields

	input := cryptobyte.String(raw)
	var tbs cryptobyte.String
	if !input.ReadASN1(&tbs, cryptobyte_asn1.SEQUENCE) {
		return fields, false
	}

	// version [0] EXPLICIT INTEGER OPTIONAL
	if !tbs.SkipOptionalASN1(cryptobyte_asn1.Tag(0).Constructed().ContextSpecific()) {
		return fields, false
	}

	var serial cryptobyte.String
	if !tbs.ReadASN1(&serial, cryptobyte_asn1.INTEGER) {
		return fields, false
	}
	fields.serial = serial

	// signature AlgorithmIdentifier, issuer Name
	if !tbs.SkipASN1(cryptobyte_asn1.SEQUENCE) || !tbs.SkipASN1(cryptobyte_asn1.SEQUENCE) {
		return fields, false
	}

	var validity cryptobyte.String
	if !tbs.ReadASN1(&validity, cryptobyte_asn1.SEQUENCE) {
		return fields, false
	}

	var ok bool
	if fields.notBefore, ok = readRawTime(&validity); !ok {
		return fields, false
	}
	if fields.notAfter, ok = readRawTime(&validity); !ok {
		return fields, false
	}

	return fields, true
}

// readRawTime reads one validity timestamp without decoding it. The tag
// is kept as-is so unsupported encodings surface in [WriteTime]'s switch
// rather than failing the walk.
func readRawTime(validity *cryptobyte.String) (RawTime, bool) {
	var body cryptobyte.String
	var tag cryptobyte_asn1.Tag
	if !validity.ReadAnyASN1(&body, &tag) {
		return RawTime{}, false
	}
	return RawTime{Format: TimeFormat(tag), Value: body}, true
}

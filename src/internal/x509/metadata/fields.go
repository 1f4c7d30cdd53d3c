// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509metadata

import (
	"crypto/sha1"
	"crypto/sha256"
	"crypto/x509"
)

// SerialNumber copies the serial exactly as it sits on the wire: the
// contents octets of the DER INTEGER, including the sign-padding byte
// Go's parser strips when it builds a big.Int.
//
// Returns:
//   - Status: [NotFound] when the certificate is nil or its raw
//     TBSCertificate no longer walks; [Overflow] when the serial does
//     not fit, with nothing written; [Found] otherwise
func SerialNumber(cert *x509.Certificate, sink Sink) Status {
	if cert == nil {
		return NotFound
	}
	fields, ok := parseTBS(cert.RawTBSCertificate)
	if !ok || len(fields.serial) == 0 {
		return NotFound
	}
	if !sink.TryAppend(fields.serial) {
		return Overflow
	}
	return Found
}

// DEREncoding copies the certificate's full DER encoding verbatim. The
// required length is known up front, so a capacity shortfall reports
// [Overflow] before any byte is written.
func DEREncoding(cert *x509.Certificate, sink Sink) Status {
	if cert == nil || len(cert.Raw) == 0 {
		return NotFound
	}
	if !sink.TryAppend(cert.Raw) {
		return Overflow
	}
	return Found
}

// SHA1Fingerprint writes the binary SHA-1 digest of the DER encoding,
// the legacy fingerprint most tooling still prints.
func SHA1Fingerprint(cert *x509.Certificate, sink Sink) Status {
	if cert == nil || len(cert.Raw) == 0 {
		return NotFound
	}
	sum := sha1.Sum(cert.Raw)
	if !sink.TryAppend(sum[:]) {
		return Overflow
	}
	return Found
}

// SHA256Fingerprint writes the binary SHA-256 digest of the DER encoding.
func SHA256Fingerprint(cert *x509.Certificate, sink Sink) Status {
	if cert == nil || len(cert.Raw) == 0 {
		return NotFound
	}
	sum := sha256.Sum256(cert.Raw)
	if !sink.TryAppend(sum[:]) {
		return Overflow
	}
	return Found
}

// SignatureAlgorithm writes the textual name of the certificate's
// signature algorithm ("SHA256-RSA", "ECDSA-SHA384", ...).
//
// Returns:
//   - Status: [NotFound] when the algorithm is unknown to the parser;
//     [Overflow] when the name does not fit; [Found] otherwise
func SignatureAlgorithm(cert *x509.Certificate, sink Sink) Status {
	if cert == nil || cert.SignatureAlgorithm == x509.UnknownSignatureAlgorithm {
		return NotFound
	}
	if !sink.TryAppendString(cert.SignatureAlgorithm.String()) {
		return Overflow
	}
	return Found
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509metadata

import (
	"crypto/dsa"
	"crypto/ecdsa"
	"crypto/rsa"
	"crypto/x509"
	"strconv"
)

// PublicKeyAlgorithm writes a short family-and-size descriptor of the
// certificate's public key: "RSA2048", "EC256", "DSA1024". The bit
// length is the RSA modulus size, the EC curve size, or the DSA prime
// size respectively.
//
// Returns:
//   - Status: [NotFound] for any other key family (Ed25519 included)
//     and also when the formatted text does not fit, since this
//     operation formats as it writes and never pre-computes a length;
//     [Found] otherwise
func PublicKeyAlgorithm(cert *x509.Certificate, sink Sink) Status {
	if cert == nil {
		return NotFound
	}

	var family string
	var bits int
	switch key := cert.PublicKey.(type) {
	case *rsa.PublicKey:
		family, bits = "RSA", key.N.BitLen()
	case *ecdsa.PublicKey:
		family, bits = "EC", key.Curve.Params().BitSize
	case *dsa.PublicKey:
		family, bits = "DSA", key.P.BitLen()
	default:
		return NotFound
	}

	var scratch [16]byte
	text := append(scratch[:0], family...)
	text = strconv.AppendInt(text, int64(bits), 10)

	if !sink.TryAppend(text) {
		return NotFound
	}
	return Found
}

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509metadata extracts wire-level metadata from parsed [X.509]
// certificates into caller-owned, capacity-bounded sinks. It provides
// capabilities to:
//   - Copy the serial number and full DER encoding byte-for-byte as they
//     appear on the wire.
//   - Normalize the two ASN.1 validity-time encodings into a single
//     two-digit-year textual form.
//   - Look up, render, and serialize distinguished-name entries by short
//     name, position, or [RFC2253] grammar.
//   - Describe the public key and signature algorithms and fingerprint
//     the certificate.
//
// Every extractor reports a tri-state [Status] instead of an error:
// absence, success, and capacity shortfall are all ordinary outcomes the
// caller routes on. Extractors never allocate or resize the output
// storage; the sink's capacity is the caller's decision, and a failed
// extraction leaves the sink exactly as it was.
//
// Raw fields come from re-walking the certificate's TBSCertificate with
// [cryptobyte], since Go's parser normalizes away the wire details
// (serial sign padding, validity tag and contents) that this package
// promises to preserve.
//
// [X.509]: https://grokipedia.com/page/X.509
// [RFC2253]: https://datatracker.ietf.org/doc/html/rfc2253
// [cryptobyte]: https://pkg.go.dev/golang.org/x/crypto/cryptobyte
package x509metadata

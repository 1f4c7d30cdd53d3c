// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
// Use of this source code is governed by a BSD 3-Clause
// license that can be found in the LICENSE file.

// tls-cert-inspector is a command-line tool for extracting and rendering
// X.509 certificate metadata from local files and live TLS peers.
//
// # Installation
//
// Install with Go 1.25.5 or later:
//
//	go install github.com/H0llyW00dzZ/tls-cert-inspector/cmd/tls-cert-inspector@latest
//
// # Usage
//
//	tls-cert-inspector [CERTIFICATE_FILE] [FLAGS]
//
// # Flags
//
//	-c, --connect        Inspect the certificate of a remote peer (host:port) instead of a file
//	-f, --field          Extract one field: serial|der|notbefore|notafter|keyalg|sigalg|sha1|sha256
//	    --dn-entry       Look up one distinguished-name entry by short name or dotted OID
//	    --dn-pos         Entry occurrence for --dn-entry, negative counts from the end
//	    --dn             Name to read: subject or issuer (default: subject)
//	    --dn-oneline     Print the selected name in oneline form
//	    --dn-format      Print the selected name in a formatted style (rfc2253)
//	    --parse-version  Parse a dotted library version string and print its packed form
//	    --filter-grease  Strip reserved placeholder pairs from hex-encoded extension data
//	-b, --buffer-size    Output buffer capacity in bytes (default: 16384)
//	-o, --output         Destination file (default: stdout)
//	    --json           Emit machine-readable JSON output
//	-t, --timeout        Dial timeout for --connect (default: 15s)
//
// # Examples
//
// Summarize every extractable field of a certificate:
//
//	tls-cert-inspector cert.pem
//
// Extract a single field:
//
//	tls-cert-inspector cert.pem --field sha256
//
// Look up the second organizational unit of the issuer:
//
//	tls-cert-inspector cert.pem --dn issuer --dn-entry OU --dn-pos 1
//
// Render the subject in RFC 2253 form:
//
//	tls-cert-inspector cert.pem --dn-format rfc2253
//
// Inspect a live peer:
//
//	tls-cert-inspector --connect www.google.com:443 --json
//
// Parse an OpenSSL-style version string:
//
//	tls-cert-inspector --parse-version 1.0.2k
//
// Verify a field against OpenSSL:
//
//	openssl x509 -in cert.pem -noout -fingerprint -sha256
package main

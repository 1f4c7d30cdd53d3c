// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package x509certs turns raw certificate input into [X.509] certificates
// and back. A Codec accepts [PEM] blocks, bare DER, and [PKCS7] containers,
// in both single-certificate and bundle form. The inspector front-ends use
// it to load the certificate under inspection and to emit certificates
// fetched from live peers.
//
// [X.509]: https://grokipedia.com/page/X.509
// [PKCS7]: https://grokipedia.com/page/PKCS_7
// [PEM]: https://grokipedia.com/page/PEM#privacy-enhanced-mail
package x509certs

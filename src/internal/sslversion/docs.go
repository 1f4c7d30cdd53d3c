// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package sslversion parses dotted TLS library version strings of the
// form used by OpenSSL release names ("0.9.8zh", "1.0.2u", "3.0.0-beta2")
// into a packed 32-bit integer that orders correctly under plain numeric
// comparison.
//
// The packed layout, most significant to least significant, is
// major (4 bits), minor (8), fix (8), patch (8), status (4). A final
// release carries status 15, numbered betas carry 1-14, and development
// builds carry 0, so "3.0.0-dev" < "3.0.0-beta2" < "3.0.0" holds on the
// packed values.
package sslversion

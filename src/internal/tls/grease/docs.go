// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package tlsgrease strips [GREASE] placeholder values from raw TLS
// extension-value lists. GREASE values are reserved 16-bit codepoints of
// the form 0xXAXA that clients inject into handshakes to keep peers
// tolerant of unknown values; they carry no meaning and must be excluded
// before extension lists are compared or fingerprinted.
//
// The filter operates on raw byte sequences with no framing: bytes are
// consumed in consecutive pairs, reserved pairs are dropped, everything
// else is copied verbatim into a caller-owned bounded sink.
//
// [GREASE]: https://grokipedia.com/page/GREASE_(networking)
package tlsgrease

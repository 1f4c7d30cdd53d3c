// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlsgrease

// Sink is the minimal bounded-buffer surface the filter writes into.
// Appends are all-or-nothing: a false return means the bytes did not fit
// and the sink is unchanged.
//
// [github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/helper/bounded.Buffer]
// satisfies this interface.
type Sink interface {
	// TryAppend appends p only when it fits in the remaining capacity.
	TryAppend(p []byte) bool
	// TryAppendByte appends a single byte only when one fits.
	TryAppendByte(b byte) bool
}

// IsReserved reports whether the byte pair (b0, b1) is a GREASE
// placeholder: both bytes equal with a low nibble of 0xA, covering the
// sixteen reserved codepoints 0x0A0A, 0x1A1A, ... 0xFAFA.
func IsReserved(b0, b1 byte) bool {
	return b0 == b1 && b0&0x0f == 0x0a
}

// Filter copies src into dst in consecutive byte pairs, dropping every
// reserved placeholder pair and keeping all others verbatim. A trailing
// unpaired byte is exempt from the placeholder test and copied as-is.
//
// Capacity exhaustion is not an error: the first pair (or trailing byte)
// that does not fit ends the walk and the remaining input is silently
// dropped. Pairs are never split across the capacity boundary.
//
// Returns:
//   - int: The number of bytes appended to dst
func Filter(dst Sink, src []byte) int {
	written := 0

	i := 0
	for ; i+1 < len(src); i += 2 {
		if IsReserved(src[i], src[i+1]) {
			continue
		}
		if !dst.TryAppend(src[i : i+2]) {
			return written
		}
		written += 2
	}
	if i < len(src) && dst.TryAppendByte(src[i]) {
		written++
	}

	return written
}

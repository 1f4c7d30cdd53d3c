// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package x509metadata

// Status classifies the outcome of a bounded extraction. The three
// outcomes are ordinary control flow, not errors: callers skip the field
// on [NotFound] and may grow the sink and retry on [Overflow].
type Status int

const (
	// NotFound means the requested field is absent or unsupported.
	// Nothing was written to the sink.
	NotFound Status = iota

	// Found means the field's bytes were appended to the sink.
	Found

	// Overflow means the field exists but exceeds the sink's remaining
	// capacity. Nothing was written beyond what the operation documents
	// (most leave the sink untouched; oneline keeps prior entries).
	Overflow
)

// String returns a short lower-case label for logs and tool output.
func (s Status) String() string {
	switch s {
	case NotFound:
		return "not found"
	case Found:
		return "found"
	case Overflow:
		return "overflow"
	}
	return "unknown"
}

// Sink is the bounded, caller-owned destination every extractor writes
// into. The Try appends are all-or-nothing: a false return means the
// bytes did not fit and the sink is unchanged, which is how extractors
// detect [Overflow] without duplicating capacity arithmetic.
//
// AppendTruncated exists for exactly one caller, the delegated RFC 2253
// rendering, which is allowed to cut its output at the capacity boundary.
//
// [github.com/H0llyW00dzZ/tls-cert-inspector/src/internal/helper/bounded.Buffer]
// is the concrete implementation.
type Sink interface {
	// Len reports the number of bytes appended so far.
	Len() int
	// Cap reports the fixed total capacity.
	Cap() int
	// Free reports the remaining capacity.
	Free() int
	// TryAppend appends p only when it fits.
	TryAppend(p []byte) bool
	// TryAppendByte appends a single byte only when one fits.
	TryAppendByte(b byte) bool
	// TryAppendString appends s only when it fits.
	TryAppendString(s string) bool
	// AppendTruncated appends as much of p as fits and reports how much.
	AppendTruncated(p []byte) int
}

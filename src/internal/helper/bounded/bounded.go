// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package bounded

// Buffer is a fixed-capacity byte sink. The capacity is set once at
// construction and never grows; the logical length never exceeds it.
//
// All TryAppend* methods are all-or-nothing: when the data does not fit
// into the remaining capacity, nothing is written and the length is left
// exactly as it was. AppendTruncated is the single escape hatch for
// renderers that accept truncated output.
//
// Thread Safety: a Buffer is not safe for concurrent use; give each
// goroutine its own Buffer.
type Buffer struct {
	storage []byte
	used    int
}

// New returns a Buffer backed by freshly allocated storage of the given
// capacity. A negative capacity is treated as zero.
func New(capacity int) *Buffer {
	if capacity < 0 {
		capacity = 0
	}
	return &Buffer{storage: make([]byte, capacity)}
}

// Wrap returns a Buffer backed by caller-owned storage. The capacity is
// len(storage); the Buffer writes into that memory and never reallocates,
// so the caller keeps ownership and lifetime of the bytes.
func Wrap(storage []byte) *Buffer {
	return &Buffer{storage: storage}
}

// Cap returns the fixed capacity.
func (b *Buffer) Cap() int { return len(b.storage) }

// Len returns the current logical length.
func (b *Buffer) Len() int { return b.used }

// Free returns the remaining capacity.
func (b *Buffer) Free() int { return len(b.storage) - b.used }

// TryAppend appends p in full, or not at all.
//
// Returns:
//   - true: p was appended and Len grew by len(p)
//   - false: p does not fit; the buffer is unchanged
func (b *Buffer) TryAppend(p []byte) bool {
	if len(p) > b.Free() {
		return false
	}
	copy(b.storage[b.used:], p)
	b.used += len(p)
	return true
}

// TryAppendByte appends a single byte, or nothing.
func (b *Buffer) TryAppendByte(c byte) bool {
	if b.Free() < 1 {
		return false
	}
	b.storage[b.used] = c
	b.used++
	return true
}

// TryAppendString appends s in full, or not at all.
func (b *Buffer) TryAppendString(s string) bool {
	if len(s) > b.Free() {
		return false
	}
	copy(b.storage[b.used:], s)
	b.used += len(s)
	return true
}

// AppendTruncated appends as much of p as fits and returns the number of
// bytes written. Unlike the TryAppend* methods this may leave a partial
// copy of p in the buffer; it exists for delegated renderers whose
// contract allows truncation.
func (b *Buffer) AppendTruncated(p []byte) int {
	n := copy(b.storage[b.used:], p)
	b.used += n
	return n
}

// Bytes returns the written portion of the storage. The slice aliases the
// buffer's memory and stays valid until the next append or Reset.
func (b *Buffer) Bytes() []byte { return b.storage[:b.used] }

// String returns the written portion as a string copy.
func (b *Buffer) String() string { return string(b.storage[:b.used]) }

// Reset sets the logical length back to zero without touching capacity
// or storage ownership.
func (b *Buffer) Reset() { b.used = 0 }

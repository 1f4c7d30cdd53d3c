// Copyright (c) 2024 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package gc

import (
	"io"

	"github.com/valyala/bytebufferpool"
)

// Buffer is a reusable, growable byte buffer. It mirrors the method set of
// [bytebufferpool.ByteBuffer] so callers stay decoupled from the library.
//
// Buffers grow on demand and serve as scratch space only; results are
// copied into caller-owned storage before the buffer goes back to the pool,
// never handed out directly.
type Buffer interface {
	// Appending writes.
	Write(p []byte) (int, error)
	WriteString(s string) (int, error)
	WriteByte(c byte) error
	ReadFrom(r io.Reader) (int64, error)

	// Content replacement.
	Set(p []byte)
	SetString(s string)
	Reset()

	// Readout.
	WriteTo(w io.Writer) (int64, error)
	Bytes() []byte
	String() string
	Len() int
}

// Pool hands out Buffers and takes them back for reuse.
//
// Implementations must be safe for concurrent use by multiple goroutines.
type Pool interface {
	Get() Buffer
	Put(b Buffer)
}

// bufferPool adapts [bytebufferpool.Pool] to the Pool interface. The zero
// value is ready to use.
type bufferPool struct{ inner bytebufferpool.Pool }

var _ Pool = (*bufferPool)(nil)

func (p *bufferPool) Get() Buffer { return p.inner.Get() }

// Put releases the buffer for reuse. Buffers of foreign Buffer
// implementations are dropped; the pool can only recycle its own.
func (p *bufferPool) Put(b Buffer) {
	if bb, ok := b.(*bytebufferpool.ByteBuffer); ok {
		p.inner.Put(bb)
	}
}

// Default is the shared buffer pool for rendering and output assembly.
//
// The usual shape, here rendering a distinguished name before the bounded
// copy into the caller's fixed-capacity output buffer:
//
//	scratch := gc.Default.Get()
//	defer gc.Default.Put(scratch)
//
//	renderName(scratch, name)
//	out.AppendTruncated(scratch.Bytes())
//
// Put resets the buffer before pooling it, so scratch content never leaks
// into the next Get.
var Default Pool = new(bufferPool)

// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlspeer

import (
	"crypto/x509"
	"sync/atomic"
)

// Handle is a reference-counted view of one peer certificate. The count
// models shared ownership across sessions and callers; the certificate
// memory itself stays with the garbage collector. A handle whose last
// referent has released it reads as empty.
type Handle struct {
	cert *x509.Certificate
	refs atomic.Int64
}

// NewHandle wraps cert with an initial reference count of one. A nil
// certificate yields a nil handle.
func NewHandle(cert *x509.Certificate) *Handle {
	if cert == nil {
		return nil
	}
	h := &Handle{cert: cert}
	h.refs.Store(1)
	return h
}

// Retain adds a referent and returns the handle so call sites can hand
// it straight to the new owner.
func (h *Handle) Retain() *Handle {
	if h == nil {
		return nil
	}
	h.refs.Add(1)
	return h
}

// Release drops one referent and reports how many remain. Extra
// releases clamp at zero instead of corrupting the count.
func (h *Handle) Release() int64 {
	if h == nil {
		return 0
	}
	if n := h.refs.Add(-1); n > 0 {
		return n
	}
	h.refs.Store(0)
	return 0
}

// Certificate returns the wrapped certificate, or nil once every
// referent has released the handle.
func (h *Handle) Certificate() *x509.Certificate {
	if h == nil || h.refs.Load() <= 0 {
		return nil
	}
	return h.cert
}

// Refs reports the current referent count.
func (h *Handle) Refs() int64 {
	if h == nil {
		return 0
	}
	return h.refs.Load()
}

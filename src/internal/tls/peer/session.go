// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlspeer

import (
	"crypto/tls"
	"crypto/x509"
	"sync/atomic"
)

// Session pairs a completed handshake's connection state with the
// out-of-band certificate slot a verification callback may have filled.
// The zero-value-like session from [NewSession] is safe to share between
// the handshake goroutine (writing through [Session.CaptureHook] and
// [Session.BindState]) and later readers.
type Session struct {
	state   atomic.Pointer[tls.ConnectionState]
	stashed atomic.Pointer[Handle]
}

// NewSession returns an empty session ready to receive a verification
// callback's stash and, once the handshake completes, its state.
func NewSession() *Session {
	return &Session{}
}

// BindState attaches the completed handshake's connection state.
func (s *Session) BindState(state tls.ConnectionState) {
	s.state.Store(&state)
}

// State returns the bound connection state and whether one was bound.
func (s *Session) State() (tls.ConnectionState, bool) {
	state := s.state.Load()
	if state == nil {
		return tls.ConnectionState{}, false
	}
	return *state, true
}

// StashVerifiedPeer records a certificate reference obtained outside
// the handshake accessor, typically from inside a verification
// callback. The stash keeps the handle's original reference;
// [Session.PeerCertificate] adds one per caller it resolves through it.
func (s *Session) StashVerifiedPeer(h *Handle) {
	s.stashed.Store(h)
}

// StashedPeer returns the out-of-band reference, if any.
func (s *Session) StashedPeer() *Handle {
	return s.stashed.Load()
}

// CaptureHook returns a callback for [tls.Config.VerifyPeerCertificate]
// that stashes the peer's leaf on the session as the handshake verifies
// it. The hook only observes; it never rejects the handshake.
func (s *Session) CaptureHook() func(rawCerts [][]byte, verifiedChains [][]*x509.Certificate) error {
	return func(rawCerts [][]byte, _ [][]*x509.Certificate) error {
		if len(rawCerts) == 0 {
			return nil
		}
		// The TLS stack already parsed this leaf to get here, so a
		// failure is unreachable in practice and not worth aborting
		// the handshake over.
		cert, err := x509.ParseCertificate(rawCerts[0])
		if err != nil {
			return nil
		}
		s.StashVerifiedPeer(NewHandle(cert))
		return nil
	}
}

// PeerCertificate resolves the peer's leaf certificate. The handshake
// accessor wins: when the bound connection state carries peer
// certificates, the first comes back in a fresh handle owned by the
// caller. Otherwise a stashed reference is shared, with its count
// raised by one. Returns nil when both channels are empty.
func (s *Session) PeerCertificate() *Handle {
	if state := s.state.Load(); state != nil && len(state.PeerCertificates) > 0 {
		return NewHandle(state.PeerCertificates[0])
	}
	return s.stashed.Load().Retain()
}

// PresentedChain returns every certificate the peer sent during the
// handshake, leaf first, or nil before a state is bound. The slice
// aliases the bound state and must not be mutated.
func (s *Session) PresentedChain() []*x509.Certificate {
	if state := s.state.Load(); state != nil {
		return state.PeerCertificates
	}
	return nil
}

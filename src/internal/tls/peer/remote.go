// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

package tlspeer

import (
	"context"
	"crypto/tls"
	"fmt"
	"net"
	"time"
)

// Config controls how [Dial] reaches a peer.
type Config struct {
	// Timeout bounds the connect plus handshake. Zero means no limit
	// beyond whatever deadline the context carries.
	Timeout time.Duration

	// TLS optionally seeds the handshake configuration. Dial clones it
	// and installs its own verification hook; certificate checking
	// stays off because the inspector reads peers it does not trust.
	TLS *tls.Config
}

// Dial connects to addr ("host:port"), completes a TLS handshake, and
// returns a session with both resolution channels populated: the bound
// connection state and the verification-hook stash. The connection
// itself is closed before returning; the session's certificates remain
// valid after that.
func Dial(ctx context.Context, addr string, cfg Config) (*Session, error) {
	session := NewSession()

	tlsConfig := &tls.Config{}
	if cfg.TLS != nil {
		tlsConfig = cfg.TLS.Clone()
	}
	// We just want to read the peer's certificates, not to trust them
	tlsConfig.InsecureSkipVerify = true
	tlsConfig.VerifyPeerCertificate = session.CaptureHook()

	dialer := &net.Dialer{Timeout: cfg.Timeout}
	if deadline, ok := ctx.Deadline(); ok {
		dialer.Deadline = deadline
	}

	conn, err := tls.DialWithDialer(dialer, "tcp", addr, tlsConfig)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	defer conn.Close()

	select {
	case <-ctx.Done():
		return nil, ctx.Err()
	default:
	}

	session.BindState(conn.ConnectionState())
	return session, nil
}

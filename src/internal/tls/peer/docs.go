// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package tlspeer resolves the certificate a TLS peer presented, with
// shared ownership made explicit. A [Session] carries two resolution
// channels: the handshake-level accessor (the connection state's peer
// list) and an out-of-band slot a verification callback fills while the
// handshake is still running. Resolution prefers the handshake channel
// and falls back to the stash, raising the stashed [Handle]'s reference
// count for each caller that obtains it.
//
// [Dial] is the convenience front door: it connects, completes the
// handshake with verification disabled (the inspector reads peers it
// does not trust), and returns a session with both channels populated.
package tlspeer

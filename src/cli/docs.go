// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cli implements the Cobra command tree of the certificate
// metadata inspector. A certificate is read from a file or fetched from
// a live TLS peer, then single fields, distinguished-name entries, and
// rendered name forms are extracted into fixed-capacity buffers. Utility
// modes parse dotted library version strings and filter reserved
// placeholder values out of TLS extension data. Results are printed as a
// summary table, plain text, raw bytes, or JSON through the logger
// package, which also carries error reporting. Blocking work such as the
// peer fetch takes a context and stops on cancellation.
package cli

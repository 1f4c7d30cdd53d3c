// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package gc pools scratch byte buffers behind a small interface so the
// rest of the codebase never imports [bytebufferpool] directly.
//
// The distinguished-name renderers and the logger assemble variable-length
// text here before copying it into fixed-capacity output buffers or onto
// the log stream. Recycling that scratch space keeps allocation pressure
// flat when many certificates are inspected back to back.
//
// [bytebufferpool]: https://github.com/valyala/bytebufferpool
package gc

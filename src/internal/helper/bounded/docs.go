// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package bounded provides a fixed-capacity byte buffer for extraction
// results where the caller owns the output storage and its size.
//
// Certificate metadata extractors write into a caller-supplied buffer and
// must never write past its capacity or leave a half-written field behind
// on failure. [Buffer] enforces both: appends are all-or-nothing, and the
// capacity is fixed at construction. Use [New] when the package should
// allocate the storage, or [Wrap] to write into memory the caller already
// owns.
package bounded

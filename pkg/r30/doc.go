// Copyright 2026 The R30 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package r30 implements the R30 hash, a 256-bit digest built on the
// Rule 30 elementary cellular automaton.
//
// The message is consumed in 32-byte blocks. The final block is zero
// padded and carries the total message length as a trailing 8-byte
// big-endian integer; if fewer than 8 padding bytes are free, the length
// moves to one extra all-zero block. Each block is combined with the
// running 32-byte chain state by XOR, compressed, and the compression
// output is folded back into the state by XOR (feed-forward chaining),
// so the digest depends on every block in order and on the message
// length.
//
// The compression function seeds a one-dimensional binary automaton
// with the 264-bit key (block plus a 0x01 terminator) centered in a
// fixed 2688-cell array, runs 2360 synchronous Rule 30 generations over
// a 64-bit word-packed representation, discards 1848 warm-up rows, and
// collects the center-column value of every second remaining row into
// the 256 output bits.
//
// Two implementations are provided:
//
// reference.RefHasher is optimized for code simplicity and meant as a
// reference implementation that is simple to audit.
//
// Hasher is optimized for speed, using a word-packed cell array and a
// light-cone bounded update window, and implements the standard
// hash.Hash interface.
//
// The running length counter is 64 bits wide and wraps silently, so
// digests of streams of 2^64 bytes or more are unspecified. R30 is an
// experimental construction and carries no cryptographic security
// claim.
package r30

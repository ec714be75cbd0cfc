// Copyright 2026 The R30 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package r30

import (
	"encoding/binary"
	"hash"
)

var _ hash.Hash = (*Hasher)(nil)

// Hasher is a reusable streaming R30 hasher.
//
// It buffers writes into 32-byte blocks and folds every full block into
// the chain state immediately, so memory use is independent of message
// length. Sum and Digest finalize a copy of the state, leaving the
// Hasher usable for further writes, as with the standard library
// hashes.
//
// The same Hasher instance must not be used concurrently. Independent
// instances are fully isolated and safe to use in parallel; the
// automaton scratch array is owned per instance.
type Hasher struct {
	state [Size]byte       // running chain state, all zero initially
	block [BlockSize]byte  // currently open block
	fill  int              // bytes written to the open block
	total uint64           // message length counter, wraps at 2^64
	cells [numWords]uint64 // automaton scratch
	out   [Size]byte       // compression output scratch
}

// New creates a reusable R30 hasher.
func New() *Hasher {
	return &Hasher{}
}

// Size returns the digest size of the hash.
func (h *Hasher) Size() int {
	return Size
}

// BlockSize returns the hash block size.
func (h *Hasher) BlockSize() int {
	return BlockSize
}

// Reset prepares the Hasher for hashing a new message.
func (h *Hasher) Reset() {
	h.state = [Size]byte{}
	h.block = [BlockSize]byte{}
	h.fill = 0
	h.total = 0
}

// Write adds message bytes to the hash. It never fails.
func (h *Hasher) Write(p []byte) (int, error) {
	n := len(p)
	h.total += uint64(n)
	for len(p) > 0 {
		c := copy(h.block[h.fill:], p)
		h.fill += c
		p = p[c:]
		if h.fill == BlockSize {
			h.chain(&h.state, &h.block)
			h.fill = 0
		}
	}
	return n, nil
}

// Sum appends the digest of the message written so far to b.
func (h *Hasher) Sum(b []byte) []byte {
	d := h.Digest()
	return append(b, d[:]...)
}

// Digest returns the digest of the message written so far.
func (h *Hasher) Digest() Digest {
	state := h.state
	var block [BlockSize]byte
	copy(block[:], h.block[:h.fill])
	if BlockSize-h.fill >= 8 {
		// the length fits next to the content; this block is
		// terminal
		binary.BigEndian.PutUint64(block[BlockSize-8:], h.total)
		h.chain(&state, &block)
		return Digest(state)
	}
	// not enough padding left for the length: close the content
	// block zero padded and give the length to one extra all-zero
	// block
	h.chain(&state, &block)
	block = [BlockSize]byte{}
	binary.BigEndian.PutUint64(block[BlockSize-8:], h.total)
	h.chain(&state, &block)
	return Digest(state)
}

// chain folds one block into the chain state: the block is combined
// with the state by XOR, compressed, and the compression output is
// XORed back into the state. The block is consumed.
func (h *Hasher) chain(state *[Size]byte, block *[BlockSize]byte) {
	for i := range block {
		block[i] ^= state[i]
	}
	compress(&h.cells, block, &h.out)
	for i := range state {
		state[i] ^= h.out[i]
	}
}

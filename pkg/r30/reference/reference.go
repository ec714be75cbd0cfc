// Copyright 2026 The R30 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package reference is a simple nonconcurrent reference implementation
// of the R30 hash. It favors obviousness over speed: the automaton is a
// cell-per-byte slice updated over the full array each generation, with
// no bit packing and no light-cone windowing. It is used by tests to
// cross-check the optimized implementation.
package reference

import (
	"encoding/binary"
)

const (
	hashSize  = 32
	blockSize = 32

	keyBytes  = blockSize + 1
	keyBits   = keyBytes * 8
	hashBits  = hashSize * 8
	skipRows  = keyBits * 7
	totalRows = skipRows + hashBits*2
	numCells  = (2 + keyBits + skipRows + hashBits*2 + 63) / 64 * 64
	cellsMid  = numCells / 2
	keyStart  = (numCells - keyBits) / 2
)

// RefHasher is the non-optimized easy-to-read reference implementation
// of the R30 hash.
type RefHasher struct {
	cells []byte
	next  []byte
}

// NewRefHasher creates a reference R30 hasher.
func NewRefHasher() *RefHasher {
	return &RefHasher{
		cells: make([]byte, numCells),
		next:  make([]byte, numCells),
	}
}

// Hash returns the 32-byte R30 digest of data.
func (rh *RefHasher) Hash(data []byte) []byte {
	state := make([]byte, hashSize)
	total := uint64(len(data))
	for final := false; !final; {
		block := make([]byte, blockSize)
		n := copy(block, data)
		data = data[n:]
		if n < blockSize && blockSize-n >= 8 {
			binary.BigEndian.PutUint64(block[blockSize-8:], total)
			final = true
		}
		// a full block keeps the loop going, so an exact-multiple
		// message still ends in a terminal length block; 25..31
		// content bytes leave the block zero padded only and the
		// next iteration produces the all-zero length block
		for i := range block {
			block[i] ^= state[i]
		}
		out := rh.compress(block)
		for i := range state {
			state[i] ^= out[i]
		}
	}
	return state
}

// compress seeds the automaton with block plus the 0x01 terminator and
// collects 256 center-column bits, exactly as described in the package
// documentation of pkg/r30.
func (rh *RefHasher) compress(block []byte) []byte {
	cells := rh.cells
	for i := range cells {
		cells[i] = 0
	}
	key := make([]byte, keyBytes)
	copy(key, block)
	key[blockSize] = 0x01
	for i, b := range key {
		for j := 0; j < 8; j++ {
			cells[keyStart+i*8+j] = b >> (7 - j) & 1
		}
	}
	out := make([]byte, hashSize)
	bitCount := 0
	for row := 0; row < totalRows; row++ {
		mid := cells[cellsMid]
		next := rh.next
		for c := 0; c < numCells; c++ {
			var left, right byte
			if c > 0 {
				left = cells[c-1]
			}
			if c < numCells-1 {
				right = cells[c+1]
			}
			next[c] = left ^ (cells[c] | right)
		}
		cells, rh.next = next, cells
		if row >= skipRows && row%2 == 1 {
			if mid == 1 {
				out[bitCount>>3] |= 1 << (7 - bitCount%8)
			}
			bitCount++
		}
	}
	rh.cells = cells
	return out
}

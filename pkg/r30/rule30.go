// Copyright 2026 The R30 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package r30

// Automaton geometry. All sizes derive from the block width and the
// digest width, never from message content.
const (
	keyBytes = BlockSize + 1 // block plus the 0x01 terminator
	keyBits  = keyBytes * 8
	hashBits = Size * 8

	// skipRows generations are discarded while the seed diffuses
	// across the array; after that every second row contributes one
	// center-column bit.
	skipRows  = keyBits * 7
	totalRows = skipRows + hashBits*2

	// The cell array is sized to hold the key plus the widest light
	// cone reachable within totalRows, rounded up to whole 64-bit
	// words.
	numWords = (2 + keyBits + skipRows + hashBits*2 + 63) / 64
	numCells = numWords * 64

	cellsMid = numCells / 2
	keyStart = (numCells - keyBits) / 2

	midWord  = cellsMid / 64
	midShift = 63 - cellsMid%64
)

// compress runs totalRows Rule 30 generations over the cell array
// seeded with block and the terminator byte, and writes the 256 sampled
// center-column bits to out. cells is caller-provided scratch of
// numWords words; it is cleared here, so any prior content is fine.
//
// Pure with respect to block: two calls with equal blocks yield equal
// output regardless of scratch history.
func compress(cells *[numWords]uint64, block *[BlockSize]byte, out *[Size]byte) {
	for i := range cells {
		cells[i] = 0
	}
	for i := 0; i < keyBytes; i++ {
		b := uint64(0x01)
		if i < BlockSize {
			b = uint64(block[i])
		}
		for j := 0; j < 8; j++ {
			bit := b >> (7 - j) & 1
			idx := keyStart + i*8 + j
			cells[idx>>6] |= bit << (63 - idx%64)
		}
	}
	*out = [Size]byte{}
	bitCount := 0
	for row := 0; row < totalRows; row++ {
		// The update window tracks the forward light cone of the
		// seed while it grows, then the shrinking backward cone of
		// the remaining center-column samples. Cells outside the
		// window cannot reach the center column in the rows left.
		width := row * 2
		if width > totalRows-2 {
			width = totalRows - (row*2)%totalRows + 2
		} else {
			width += keyBits
		}
		half := width/2 + 2
		start := (cellsMid - half) >> 6
		end := (cellsMid + half + 63) >> 6

		// sample before the update; the output bit is the cell
		// value entering the row, not leaving it
		mid := cells[midWord] >> midShift & 1

		var carryLeft uint64
		for i := start; i < end; i++ {
			w := cells[i]
			var carryRight uint64
			if i < numWords-1 {
				carryRight = cells[i+1] >> 63
			}
			// neighbor views of the current generation, with
			// the adjacent word's edge bit threaded across the
			// word boundary; the array ends read as zero
			cellRight := w<<1 | carryRight
			cellLeft := w>>1 | carryLeft
			carryLeft = w << 63
			cells[i] = cellLeft ^ (w | cellRight)
		}
		if row < skipRows {
			continue
		}
		if row%2 == 1 {
			if mid == 1 {
				out[bitCount>>3] |= 1 << (7 - bitCount%8)
			}
			bitCount++
		}
	}
}

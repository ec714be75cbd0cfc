// Copyright 2026 The R30 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package r30

import (
	"bytes"
	"encoding/hex"
	"fmt"

	"golang.org/x/text/encoding"
)

const (
	// Size is the length of an R30 digest in bytes.
	Size = 32
	// BlockSize is the length of a message block in bytes.
	BlockSize = 32
)

// Digest represents a 256-bit R30 hash value.
type Digest [Size]byte

// Hex returns the digest as a lowercase hexadecimal string.
func (d Digest) Hex() string {
	return hex.EncodeToString(d[:])
}

// String implements the fmt.Stringer interface.
func (d Digest) String() string {
	return d.Hex()
}

// Bytes returns the digest as a byte slice.
func (d Digest) Bytes() []byte {
	return d[:]
}

// Equal reports whether the two digests are the same.
func (d Digest) Equal(o Digest) bool {
	return bytes.Equal(d[:], o[:])
}

// ParseHex makes a digest from a hexadecimal string representation.
func ParseHex(s string) (Digest, error) {
	var d Digest
	b, err := hex.DecodeString(s)
	if err != nil {
		return Digest{}, err
	}
	if len(b) != Size {
		return Digest{}, fmt.Errorf("invalid digest length %v", len(b))
	}
	copy(d[:], b)
	return d, nil
}

// MustParseHex makes a digest from a hexadecimal string representation,
// panicking if the string is not a valid digest. Intended for tests and
// static initialization.
func MustParseHex(s string) Digest {
	d, err := ParseHex(s)
	if err != nil {
		panic(err)
	}
	return d
}

// Sum256 returns the R30 digest of the data.
func Sum256(data []byte) Digest {
	h := New()
	_, _ = h.Write(data)
	return h.Digest()
}

// SumText encodes text with the given character encoding and returns
// the R30 digest of the encoded bytes.
func SumText(text string, enc encoding.Encoding) (Digest, error) {
	b, err := enc.NewEncoder().Bytes([]byte(text))
	if err != nil {
		return Digest{}, fmt.Errorf("encode text: %w", err)
	}
	return Sum256(b), nil
}

// SumString returns the lowercase hexadecimal R30 digest of the text in
// its native (UTF-8) byte encoding.
func SumString(text string) string {
	return Sum256([]byte(text)).Hex()
}

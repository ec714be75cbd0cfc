// Copyright 2026 The R30 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package r30

import (
	"fmt"
	"io"
)

// SumReader returns the R30 digest of everything readable from r.
//
// The stream is consumed to EOF; a read fault aborts immediately and is
// reported wrapped in ErrSourceRead together with the underlying cause.
// An empty stream is a valid message.
func SumReader(r io.Reader) (Digest, error) {
	h := New()
	if _, err := io.Copy(h, r); err != nil {
		return Digest{}, fmt.Errorf("%w: %w", ErrSourceRead, err)
	}
	return h.Digest(), nil
}

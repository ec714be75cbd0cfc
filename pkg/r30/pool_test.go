// Copyright 2026 The R30 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package r30_test

import (
	"testing"

	"github.com/cellhash/r30/pkg/r30"
)

// a hasher returned dirty must come back from the pool reset
func TestPoolReset(t *testing.T) {
	pool := r30.NewPool(1)
	h := pool.Get()
	if _, err := h.Write(pattern(48)); err != nil {
		t.Fatal(err)
	}
	pool.Put(h)

	h = pool.Get()
	defer pool.Put(h)
	if got, exp := h.Digest(), r30.Sum256(nil); !got.Equal(exp) {
		t.Fatalf("pooled hasher not reset. expected %v, got %v", exp, got)
	}
}

func TestPoolCapacity(t *testing.T) {
	pool := r30.NewPool(4)
	if pool.Capacity() != 4 {
		t.Fatalf("expected capacity 4, got %d", pool.Capacity())
	}
	// all hashers can be held at once without blocking
	var hs []*r30.Hasher
	for i := 0; i < 4; i++ {
		hs = append(hs, pool.Get())
	}
	for _, h := range hs {
		pool.Put(h)
	}
}

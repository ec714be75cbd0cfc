// Copyright 2026 The R30 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package r30pool provides easy access to R30 hashers managed in a
// shared resource pool.
package r30pool

import (
	"github.com/cellhash/r30/pkg/r30"
)

const capacity = 8

var instance *r30.Pool

func init() {
	instance = r30.NewPool(capacity)
}

// Get an R30 hasher instance.
// Instances are reset before being returned to the caller.
func Get() *r30.Hasher {
	return instance.Get()
}

// Put an R30 hasher back into the pool.
func Put(h *r30.Hasher) {
	instance.Put(h)
}

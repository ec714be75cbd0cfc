// Copyright 2026 The R30 Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package r30

// Pool provides a fixed pool of hashers for amortised allocation of the
// automaton scratch arrays under concurrent load. A hasher popped from
// the pool is guaranteed to be in a clean state ready for a new
// message.
type Pool struct {
	c        chan *Hasher
	capacity int
}

// NewPool creates a hasher pool with the given capacity. Get blocks
// while all hashers are handed out, which bounds concurrency at
// capacity.
func NewPool(capacity int) *Pool {
	p := &Pool{
		c:        make(chan *Hasher, capacity),
		capacity: capacity,
	}
	for i := 0; i < capacity; i++ {
		p.c <- New()
	}
	return p
}

// Capacity returns the pool capacity.
func (p *Pool) Capacity() int {
	return p.capacity
}

// Get returns a hasher from the pool, reset and ready for use.
func (p *Pool) Get() *Hasher {
	h := <-p.c
	h.Reset()
	return h
}

// Put is called after use to return the hasher to the pool.
func (p *Pool) Put(h *Hasher) {
	p.c <- h
}

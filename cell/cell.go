// SPDX-License-Identifier: MIT

// Package cell provides a mutex-guarded value cell for shared-mutability
// payloads.
//
// pintree handles expose payloads by value, so a payload that must be
// mutated in place through many handle copies needs its own
// synchronization. Cell is the smallest such wrapper: one RWMutex, one
// value. Store a *Cell[V] as the node payload and every handle copy
// reaches the same guarded value:
//
//	pt := pintree.New[*cell.Cell[int]]()
//	n := pt.Node(cell.New(1))
//	n.Value().Set(2) // visible through every copy of n
//
// All methods are safe for concurrent use. A Cell must not be copied
// after first use; pass *Cell around.
package cell

import "sync"

// Cell is a guarded value. The zero Cell holds the zero V and is ready
// to use.
type Cell[V any] struct {
	mu sync.RWMutex
	v  V
}

// New returns a Cell holding v.
//
// Complexity: O(1)
func New[V any](v V) *Cell[V] {
	return &Cell[V]{v: v}
}

// Get returns a copy of the current value.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (c *Cell[V]) Get() V {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.v
}

// Set replaces the current value.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1)
func (c *Cell[V]) Set(v V) {
	c.mu.Lock()
	c.v = v
	c.mu.Unlock()
}

// Swap replaces the current value and returns the previous one in a
// single critical section.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1)
func (c *Cell[V]) Swap(v V) V {
	c.mu.Lock()
	defer c.mu.Unlock()

	prev := c.v
	c.v = v

	return prev
}

// With runs fn with exclusive access to the value in place. The lock is
// released on every exit path, including a panic inside fn, so a
// panicking accessor cannot poison the cell for other goroutines.
// fn must not retain the pointer after returning.
// Thread-safe: acquires a write lock.
func (c *Cell[V]) With(fn func(*V)) {
	c.mu.Lock()
	defer c.mu.Unlock()

	fn(&c.v)
}

// SPDX-License-Identifier: MIT

// Package pintree: thread-safe Tree method implementations.
//
// A Tree keeps three structures under one sync.RWMutex: the node registry
// (a set of handles) and two mirrored edge indexes, children[parent] and
// parents[child]. Every mutation updates both indexes inside the same
// critical section, so readers never observe an edge in only one
// direction. All mutations acquire the write lock; queries acquire the
// read lock.

package pintree

import (
	"fmt"
	"sync"
)

// Tree is a registry of nodes and of directed parent/child edges between
// them. It imposes no shape: multiple parents, cycles, and self-loops are
// all legal. Create one with New; the zero Tree is not usable.
//
// All methods are safe for concurrent use.
type Tree[T any] struct {
	mu  sync.RWMutex // guards nodes, children, parents, edgeCount
	cfg config       // immutable after New

	// nodes is the registry of every handle known to this tree,
	// including isolated ones.
	nodes map[Node[T]]struct{}

	// children[p] is the set of direct children of p.
	// parents[c] is the set of direct parents of c.
	// Invariant: c is in children[p] exactly when p is in parents[c].
	// Rows are created lazily and removed when they empty out.
	children map[Node[T]]map[Node[T]]struct{}
	parents  map[Node[T]]map[Node[T]]struct{}

	// edgeCount tracks the number of recorded edges; a self-loop is one.
	edgeCount int
}

// New creates an empty Tree with the given options.
// By default a node may have any number of parents; see WithSingleParent.
//
// Complexity: O(1)
func New[T any](opts ...Option) *Tree[T] {
	t := &Tree[T]{
		nodes:    make(map[Node[T]]struct{}),
		children: make(map[Node[T]]map[Node[T]]struct{}),
		parents:  make(map[Node[T]]map[Node[T]]struct{}),
	}
	// Apply options
	for _, opt := range opts {
		opt(&t.cfg)
	}

	return t
}

// Node allocates a new node holding v, registers it, and returns the
// handle. The node starts isolated: no parents, no children.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1)
func (t *Tree[T]) Node(v T) Node[T] {
	n := NewNode(v)

	t.mu.Lock()
	t.nodes[n] = struct{}{}
	t.mu.Unlock()

	return n
}

// Adopt registers an externally created handle (see NewNode) with this
// tree. Reports true if the node was newly registered, false if it was
// already present. Returns ErrNilNode for the zero handle.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1)
func (t *Tree[T]) Adopt(n Node[T]) (bool, error) {
	if n.IsZero() {
		return false, ErrNilNode
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.nodes[n]; exists {
		return false, nil
	}
	t.nodes[n] = struct{}{}

	return true, nil
}

// Has reports whether n is registered with this tree.
// The zero handle is never registered.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (t *Tree[T]) Has(n Node[T]) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.nodes[n]

	return ok
}

// SetParent records parent as a direct parent of child, updating both
// indexes. Unregistered handles are adopted automatically. Reports true
// if the edge was newly recorded; re-recording an existing edge is a
// no-op returning false. Self-loops (child == parent) and edges that
// close cycles are recorded like any other edge.
//
// Under WithSingleParent, any existing parent edge of child is severed
// from both indexes before the new edge is recorded.
//
// Returns ErrNilNode if either handle is zero. Both handles must belong
// to this tree's node population; handles minted for another tree are
// not detected.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1)
func (t *Tree[T]) SetParent(child, parent Node[T]) (bool, error) {
	// 1) Input validation
	if child.IsZero() || parent.IsZero() {
		return false, ErrNilNode
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	// 2) Existing edge: idempotent no-op
	if _, dup := t.children[parent][child]; dup {
		return false, nil
	}

	// 3) Auto-register both endpoints
	t.nodes[child] = struct{}{}
	t.nodes[parent] = struct{}{}

	// 4) Single-parent discipline: sever the previous parent edge first
	if t.cfg.singleParent {
		for prev := range t.parents[child] {
			t.sever(child, prev)
		}
	}

	// 5) Record the edge in both indexes
	t.childRow(parent)[child] = struct{}{}
	t.parentRow(child)[parent] = struct{}{}
	t.edgeCount++

	return true, nil
}

// RemoveParent deletes the parent edge between child and parent from both
// indexes. Reports true if an edge was removed; removing an absent edge
// is a no-op returning false. Neither node is unregistered.
// Returns ErrNilNode if either handle is zero.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1)
func (t *Tree[T]) RemoveParent(child, parent Node[T]) (bool, error) {
	if child.IsZero() || parent.IsZero() {
		return false, ErrNilNode
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	return t.sever(child, parent), nil
}

// IsParent reports whether a is recorded as a direct parent of b.
// Unregistered, foreign, or zero handles report false.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (t *Tree[T]) IsParent(a, b Node[T]) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.parents[b][a]

	return ok
}

// IsChild reports whether a is recorded as a direct child of b.
// Equivalent to IsParent(b, a) by the index agreement invariant.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (t *Tree[T]) IsChild(a, b Node[T]) bool {
	t.mu.RLock()
	defer t.mu.RUnlock()

	_, ok := t.children[b][a]

	return ok
}

// ParentsOf returns a snapshot of the direct parents of n, in no
// particular order. Nodes with no parents, unknown handles, and the zero
// handle all yield an empty result, never an error. The snapshot does not
// track later mutations.
// Thread-safe: acquires a read lock.
//
// Complexity: O(d) where d is the parent count of n.
func (t *Tree[T]) ParentsOf(n Node[T]) []Node[T] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return snapshot(t.parents[n])
}

// ChildrenOf returns a snapshot of the direct children of n, in no
// particular order. Same absence policy as ParentsOf.
// Thread-safe: acquires a read lock.
//
// Complexity: O(d) where d is the child count of n.
func (t *Tree[T]) ChildrenOf(n Node[T]) []Node[T] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return snapshot(t.children[n])
}

// Remove unregisters n and severs every edge it participates in, as
// parent and as child, keeping both indexes in agreement. Reports true if
// n was registered. The handle itself stays valid; only this tree's
// bookkeeping is dropped, and n may be adopted again later.
// Returns ErrNilNode for the zero handle.
// Thread-safe: acquires a write lock.
//
// Complexity: O(deg(n)) where deg(n) counts edges incident to n.
func (t *Tree[T]) Remove(n Node[T]) (bool, error) {
	if n.IsZero() {
		return false, ErrNilNode
	}
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, exists := t.nodes[n]; !exists {
		return false, nil
	}
	// Sever edges where n is the child, then edges where n is the parent.
	// A self-loop is gone after the first pass and skipped by the second.
	for p := range t.parents[n] {
		t.sever(n, p)
	}
	for c := range t.children[n] {
		t.sever(c, n)
	}
	delete(t.nodes, n)

	return true, nil
}

// Nodes returns a snapshot of every registered handle, in no particular
// order.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V)
func (t *Tree[T]) Nodes() []Node[T] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return snapshot(t.nodes)
}

// NodeCount returns the number of registered nodes.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (t *Tree[T]) NodeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return len(t.nodes)
}

// EdgeCount returns the number of recorded parent/child edges.
// A self-loop counts as one edge.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (t *Tree[T]) EdgeCount() int {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return t.edgeCount
}

// Stats returns a read-only snapshot of the tree's counts and
// configuration flags.
// Thread-safe: acquires a read lock.
//
// Complexity: O(1)
func (t *Tree[T]) Stats() Stats {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return Stats{
		NodeCount:    len(t.nodes),
		EdgeCount:    t.edgeCount,
		SingleParent: t.cfg.singleParent,
	}
}

// String renders a short diagnostic summary of the tree.
// Thread-safe: acquires a read lock.
func (t *Tree[T]) String() string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	return fmt.Sprintf("Tree(nodes=%d, edges=%d)", len(t.nodes), t.edgeCount)
}

// Clear drops every node and edge, resetting the tree to its initial
// empty state. Options set at construction are preserved.
// Thread-safe: acquires a write lock.
//
// Complexity: O(1) (old maps are left to the garbage collector)
func (t *Tree[T]) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.nodes = make(map[Node[T]]struct{})
	t.children = make(map[Node[T]]map[Node[T]]struct{})
	t.parents = make(map[Node[T]]map[Node[T]]struct{})
	t.edgeCount = 0
}

// Clone returns a new Tree with the same options, the same registered
// nodes, and a copy of both edge indexes. Node handles are shared, so the
// clone sees the same payload storage; the edge records themselves are
// independent and may diverge after cloning.
// Thread-safe: acquires a read lock.
//
// Complexity: O(V + E)
func (t *Tree[T]) Clone() *Tree[T] {
	t.mu.RLock()
	defer t.mu.RUnlock()

	c := &Tree[T]{
		cfg:       t.cfg,
		nodes:     make(map[Node[T]]struct{}, len(t.nodes)),
		children:  make(map[Node[T]]map[Node[T]]struct{}, len(t.children)),
		parents:   make(map[Node[T]]map[Node[T]]struct{}, len(t.parents)),
		edgeCount: t.edgeCount,
	}
	for n := range t.nodes {
		c.nodes[n] = struct{}{}
	}
	for p, row := range t.children {
		c.children[p] = copyRow(row)
	}
	for ch, row := range t.parents {
		c.parents[ch] = copyRow(row)
	}

	return c
}

// Internal helper methods:
////////////////////

// childRow returns the children set of parent, creating it if absent.
// Caller must hold the write lock.
func (t *Tree[T]) childRow(parent Node[T]) map[Node[T]]struct{} {
	row, ok := t.children[parent]
	if !ok {
		row = make(map[Node[T]]struct{})
		t.children[parent] = row
	}

	return row
}

// parentRow returns the parents set of child, creating it if absent.
// Caller must hold the write lock.
func (t *Tree[T]) parentRow(child Node[T]) map[Node[T]]struct{} {
	row, ok := t.parents[child]
	if !ok {
		row = make(map[Node[T]]struct{})
		t.parents[child] = row
	}

	return row
}

// sever removes the child→parent edge from both indexes, dropping rows
// that empty out, and adjusts edgeCount. Reports whether an edge existed.
// Caller must hold the write lock.
func (t *Tree[T]) sever(child, parent Node[T]) bool {
	row, ok := t.children[parent]
	if !ok {
		return false
	}
	if _, ok = row[child]; !ok {
		return false
	}
	delete(row, child)
	if len(row) == 0 {
		delete(t.children, parent)
	}
	if up := t.parents[child]; up != nil {
		delete(up, parent)
		if len(up) == 0 {
			delete(t.parents, child)
		}
	}
	t.edgeCount--

	return true
}

// snapshot copies the keys of a set into a fresh slice.
func snapshot[T any](set map[Node[T]]struct{}) []Node[T] {
	if len(set) == 0 {
		return nil
	}
	out := make([]Node[T], 0, len(set))
	for n := range set {
		out = append(out, n)
	}

	return out
}

// copyRow duplicates one index row.
func copyRow[T any](row map[Node[T]]struct{}) map[Node[T]]struct{} {
	dst := make(map[Node[T]]struct{}, len(row))
	for n := range row {
		dst[n] = struct{}{}
	}

	return dst
}

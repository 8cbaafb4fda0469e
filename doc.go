// SPDX-License-Identifier: MIT

// Package pintree provides address-stable, shared-ownership nodes and a
// thread-safe registry of parent/child relations between them.
//
// A Node[T] is a small, copyable handle to heap-allocated payload storage.
// Copying a handle never copies the payload; every copy refers to the same
// storage, and two handles compare equal exactly when they share it. Node
// identity is derived from the storage address, never from the payload
// value, so two nodes holding equal payloads remain distinct map keys.
//
// A Tree[T] records directed parent/child edges between nodes in two
// mirrored indexes (children by parent, parents by child) that are kept in
// agreement under a single lock. Despite the name, a Tree is not restricted
// to tree shapes: nodes may have many parents, edges may form cycles, and
// self-loops are legal. Structural discipline, if any, belongs to the
// caller (or to WithSingleParent).
//
// Why pintree?
//
//   - Identity-keyed graphs: use nodes directly as map keys, no string IDs.
//   - Stable handles: re-parenting, cycles, and removal never invalidate a
//     Node or its ID token.
//   - One lock, two indexes: IsParent/IsChild are O(1) in both directions
//     and never observe a half-updated edge.
//   - Payload freedom: T is yours. For shared in-place mutation, use an
//     interior-mutability payload such as *cell.Cell[V].
//
// Configuration Options (Option):
//
//	– WithSingleParent()
//	    Limits every node to at most one parent. SetParent then severs the
//	    previous parent edge, in both indexes, before recording the new one.
//	    Default is multi-parent.
//
// Core Methods:
//
//	// Node lifecycle
//	NewNode(v T) Node[T]                  // O(1), tree-independent
//	(Tree) Node(v T) Node[T]              // O(1), create + register
//	(Tree) Adopt(n Node[T]) (bool, error) // O(1), register existing handle
//	(Tree) Has(n Node[T]) bool            // O(1)
//	(Tree) Remove(n Node[T]) (bool, error)// O(deg(n)), drops node + edges
//
//	// Edge lifecycle
//	(Tree) SetParent(child, parent Node[T]) (bool, error)    // O(1)
//	(Tree) RemoveParent(child, parent Node[T]) (bool, error) // O(1)
//
//	// Query
//	(Tree) IsParent(a, b Node[T]) bool    // O(1): a is a parent of b
//	(Tree) IsChild(a, b Node[T]) bool     // O(1): a is a child of b
//	(Tree) ParentsOf(n Node[T]) []Node[T] // O(deg), snapshot, unordered
//	(Tree) ChildrenOf(n Node[T]) []Node[T]// O(deg), snapshot, unordered
//	(Tree) Nodes() []Node[T]              // O(V), snapshot, unordered
//
//	// Counts & maintenance
//	(Tree) NodeCount() int // O(1)
//	(Tree) EdgeCount() int // O(1)
//	(Tree) Stats() Stats   // O(1)
//	(Tree) Clear()         // O(1): reset registry+indexes, preserve options
//	(Tree) Clone() *Tree[T]// O(V+E): copy indexes, share node handles
//
// Errors:
//
//	ErrNilNode – zero Node handle passed to a mutating operation
//
// Queries never fail: asking about unregistered, foreign, or zero handles
// reports "no relation" (false or an empty snapshot).
//
// Concurrency: every Tree method is safe for concurrent use. Mutations take
// a write lock, queries a read lock, and both indexes live under the same
// lock. Payload access is not mediated by the Tree; payloads shared across
// goroutines must synchronize themselves (see package cell).
//
// Lifetime: storage is reclaimed by the garbage collector once no handle,
// ID token, or tree index refers to it. Cyclic structures are collected
// like any other garbage. Dropping a Tree releases its registry and both
// indexes at once; nodes survive for as long as external handles do.
package pintree

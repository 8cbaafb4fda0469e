// SPDX-License-Identifier: MIT

// Package pintree: Node handles and identity tokens.
//
// A Node[T] is a value-type handle wrapping a private pointer to the
// node's heap storage. Handles are comparable: a == b exactly when both
// refer to the same storage. Because comparison and hashing never touch
// the payload, Node works as a map key for any T, including
// non-comparable payload types.
package pintree

import "fmt"

// box is the heap storage behind a Node. It never moves and is never
// reused while any Node or ID still points into it.
type box[T any] struct {
	// ident keeps every box at least one byte long, so two distinct
	// nodes never share an address even when T is zero-sized. Its
	// address doubles as the node's identity token.
	ident byte

	// value is the payload, written once by NewNode.
	value T
}

// Node is a copyable handle to one payload allocation.
//
// The zero Node refers to nothing; IsZero reports it, queries treat it as
// "no relation", and mutating operations reject it with ErrNilNode.
// Copies of a non-zero Node are interchangeable forever: equality, ID, and
// Value all behave identically across copies.
type Node[T any] struct {
	b *box[T]
}

// ID is an opaque identity token for a Node, independent of the payload
// type. IDs are comparable and usable as map or set keys; two IDs are
// equal exactly when their Nodes share storage. Holding an ID keeps the
// node's storage alive, so a live ID can never refer to a recycled node.
//
// The zero ID is the identity of the zero Node.
type ID struct {
	p *byte
}

// NewNode allocates storage for v and returns the first handle to it.
// The handle is not registered with any Tree; pass it to Tree.Adopt or
// Tree.SetParent (which registers automatically), or use Tree.Node to
// create and register in one step.
//
// Complexity: O(1)
func NewNode[T any](v T) Node[T] {
	return Node[T]{b: &box[T]{value: v}}
}

// Value returns the node's payload.
// The payload is returned by value: plain payloads are effectively
// immutable after creation, and shared in-place mutation is available by
// choosing a payload with interior mutability (a pointer, or *cell.Cell).
// Returns the zero T for the zero Node.
//
// Complexity: O(1)
func (n Node[T]) Value() T {
	if n.b == nil {
		var zero T

		return zero
	}

	return n.b.value
}

// ID returns the node's identity token. The token is stable for the
// node's entire lifetime and is never shared with another node while any
// handle or ID to this one is held.
//
// Complexity: O(1)
func (n Node[T]) ID() ID {
	if n.b == nil {
		return ID{}
	}

	return ID{p: &n.b.ident}
}

// IsZero reports whether n is the zero handle (refers to no storage).
//
// Complexity: O(1)
func (n Node[T]) IsZero() bool {
	return n.b == nil
}

// String renders the node as "Node(<payload>)" for diagnostics.
// The zero handle renders as "Node(<nil>)".
func (n Node[T]) String() string {
	if n.b == nil {
		return "Node(<nil>)"
	}

	return fmt.Sprintf("Node(%v)", n.b.value)
}

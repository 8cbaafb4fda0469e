// SPDX-License-Identifier: MIT

// Package pintree_test verifies Node handle semantics: allocation
// identity, copy behavior, zero values, and map-key usage.
package pintree_test

import (
	"testing"

	"github.com/katalvlaran/pintree"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestNode_CopiesShareIdentity ensures every copy of a handle refers to
// the same storage: equal handles, equal IDs, same payload.
func TestNode_CopiesShareIdentity(t *testing.T) {
	a := pintree.NewNode(42)
	b := a // plain value copy

	assert.True(t, a == b, "copies must compare equal")
	assert.Equal(t, a.ID(), b.ID(), "copies must share the identity token")
	assert.Equal(t, 42, b.Value())
}

// TestNode_EqualPayloadsDistinctIdentity ensures identity never leaks
// from the payload: two nodes holding equal values stay distinct.
func TestNode_EqualPayloadsDistinctIdentity(t *testing.T) {
	a := pintree.NewNode(7)
	b := pintree.NewNode(7)

	assert.False(t, a == b, "distinct allocations must not compare equal")
	assert.True(t, a.ID() != b.ID(), "identity tokens must differ")

	// Both usable as distinct map keys despite equal payloads.
	seen := map[pintree.Node[int]]string{a: "first", b: "second"}
	require.Len(t, seen, 2)
	assert.Equal(t, "first", seen[a])
	assert.Equal(t, "second", seen[b])
}

// TestNode_ZeroSizedPayload ensures identity survives even when the
// payload occupies no memory at all.
func TestNode_ZeroSizedPayload(t *testing.T) {
	a := pintree.NewNode(struct{}{})
	b := pintree.NewNode(struct{}{})

	assert.False(t, a == b)
	assert.True(t, a.ID() != b.ID())
}

// TestNode_ZeroHandle covers the zero value: IsZero, zero ID, zero
// payload, diagnostic rendering.
func TestNode_ZeroHandle(t *testing.T) {
	var n pintree.Node[int]

	assert.True(t, n.IsZero())
	assert.Equal(t, pintree.ID{}, n.ID(), "zero handle carries the zero ID")
	assert.Equal(t, 0, n.Value())
	assert.Equal(t, "Node(<nil>)", n.String())

	created := pintree.NewNode(0)
	assert.False(t, created.IsZero())
	assert.NotEqual(t, pintree.ID{}, created.ID())
}

// TestNode_ValueIsCopy ensures plain payloads are read by value: local
// mutation of the returned copy never reaches the node's storage.
func TestNode_ValueIsCopy(t *testing.T) {
	type point struct{ X, Y int }

	n := pintree.NewNode(point{X: 1, Y: 2})
	v := n.Value()
	v.X = 99

	assert.Equal(t, point{X: 1, Y: 2}, n.Value())
}

// TestNode_NonComparablePayload ensures handles work as map keys even
// when the payload type itself cannot be compared.
func TestNode_NonComparablePayload(t *testing.T) {
	a := pintree.NewNode([]string{"left"})
	b := pintree.NewNode([]string{"right"})

	index := map[pintree.Node[[]string]]int{a: 1, b: 2}
	require.Len(t, index, 2)
	assert.Equal(t, 1, index[a])
	assert.Equal(t, []string{"right"}, b.Value())
}

// TestNodeID_AsMapKey ensures the type-independent ID token behaves as a
// stable set key.
func TestNodeID_AsMapKey(t *testing.T) {
	a := pintree.NewNode("a")
	b := pintree.NewNode("b")

	byID := map[pintree.ID]string{
		a.ID(): a.Value(),
		b.ID(): b.Value(),
	}
	require.Len(t, byID, 2)
	assert.Equal(t, "a", byID[a.ID()])

	// The token stays stable across repeated derivations.
	assert.Equal(t, a.ID(), a.ID())
}

// TestNode_String covers the diagnostic form for a live handle.
func TestNode_String(t *testing.T) {
	assert.Equal(t, "Node(5)", pintree.NewNode(5).String())
	assert.Equal(t, "Node(root)", pintree.NewNode("root").String())
}

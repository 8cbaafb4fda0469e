// SPDX-License-Identifier: MIT

// Package pintree: sentinel errors, construction options, and the Stats
// snapshot type.
//
// This file declares everything a caller needs before touching a Tree:
// the error it can get back, the Option set accepted by New, and the
// read-only Stats value returned by Tree.Stats. Node and Tree themselves
// live in node.go and tree.go.
//
// Errors:
//
//	ErrNilNode - zero Node handle passed to a mutating operation.
package pintree

import "errors"

// Sentinel errors for tree operations. Compare with errors.Is.
var (
	// ErrNilNode indicates a zero-value Node handle was passed to a
	// mutating operation (SetParent, RemoveParent, Adopt, Remove).
	// Queries tolerate zero handles and report no relation instead.
	ErrNilNode = errors.New("pintree: nil node handle")
)

// Option configures behavior of a Tree before creation.
// Options apply at New time and are immutable afterwards; Clear preserves
// them and Clone carries them over.
type Option func(*config)

// config holds construction-time settings, shared by every instantiation
// of Tree so that Option stays free of type parameters.
type config struct {
	singleParent bool // at most one parent per node
}

// WithSingleParent limits every node to at most one parent.
// When set, SetParent(child, parent) first severs child's existing parent
// edge (from both indexes) before recording the new one, so re-parenting
// is a single call. Default is multi-parent.
func WithSingleParent() Option {
	return func(c *config) { c.singleParent = true }
}

// Stats is a read-only snapshot of a Tree's size and configuration,
// suitable for diagnostics and test assertions.
type Stats struct {
	// NodeCount is the number of registered nodes.
	NodeCount int

	// EdgeCount is the number of recorded parent/child edges.
	// A self-loop counts as one edge.
	EdgeCount int

	// SingleParent reports whether the tree was built with WithSingleParent.
	SingleParent bool
}

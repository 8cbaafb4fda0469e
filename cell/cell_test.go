// SPDX-License-Identifier: MIT

// Package cell_test verifies the guarded value cell: access semantics,
// panic safety, and concurrent mutation.
package cell_test

import (
	"sync"
	"testing"

	"github.com/katalvlaran/pintree/cell"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCell_ZeroValue ensures the zero Cell is ready to use.
func TestCell_ZeroValue(t *testing.T) {
	var c cell.Cell[int]

	assert.Equal(t, 0, c.Get())
	c.Set(5)
	assert.Equal(t, 5, c.Get())
}

// TestCell_NewGetSet covers the constructor round trip.
func TestCell_NewGetSet(t *testing.T) {
	c := cell.New("draft")
	assert.Equal(t, "draft", c.Get())

	c.Set("published")
	assert.Equal(t, "published", c.Get())
}

// TestCell_Swap returns the previous value in one critical section.
func TestCell_Swap(t *testing.T) {
	c := cell.New(1)

	prev := c.Swap(2)
	assert.Equal(t, 1, prev)
	assert.Equal(t, 2, c.Get())
}

// TestCell_With mutates the value in place.
func TestCell_With(t *testing.T) {
	c := cell.New([]int{1, 2})

	c.With(func(v *[]int) {
		*v = append(*v, 3)
	})
	assert.Equal(t, []int{1, 2, 3}, c.Get())
}

// TestCell_WithReleasesOnPanic ensures a panicking accessor leaves the
// cell usable: the follow-up Get would deadlock if the lock leaked.
func TestCell_WithReleasesOnPanic(t *testing.T) {
	c := cell.New(7)

	require.Panics(t, func() {
		c.With(func(*int) { panic("boom") })
	})
	assert.Equal(t, 7, c.Get())
	c.Set(8)
	assert.Equal(t, 8, c.Get())
}

// TestCell_ConcurrentWith ensures no increment is lost under concurrent
// in-place mutation.
func TestCell_ConcurrentWith(t *testing.T) {
	c := cell.New(0)
	const workers = 200
	var wg sync.WaitGroup
	wg.Add(workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer wg.Done()
			c.With(func(v *int) { *v++ })
		}()
	}
	wg.Wait()

	require.Equal(t, workers, c.Get())
}

// TestCell_ConcurrentReaders mixes readers with one writer; readers must
// only ever observe complete values.
func TestCell_ConcurrentReaders(t *testing.T) {
	c := cell.New(1)
	const readers = 100
	var wg sync.WaitGroup
	wg.Add(readers + 1)

	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			c.Set(i)
		}
	}()
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			v := c.Get()
			require.GreaterOrEqual(t, v, 0)
		}()
	}

	wg.Wait()
}

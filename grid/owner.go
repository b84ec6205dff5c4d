// SPDX-License-Identifier: MIT

// Package grid - ownership wrappers.
//
// Purpose:
//   - Let kernels and callers treat a grid identically whether it is held
//     directly or through an owner: Unique (exclusive, movable), Shared
//     (copyable handle) or Counted (explicit reference count with a release hook).
//   - Every capability is implemented once, on forward[T], and embedded.
//
// After release:
//   - Once a Unique is taken from or a Counted reaches zero, Size() is zero,
//     Get reports false and Set reports ErrReleased. Unchecked calls are
//     undefined (they dereference the released grid).
//   - Zero-value wrappers (including a zero Shared) behave as released.

package grid

import (
	"image"
	"sync/atomic"
)

// forward delegates every capability to g. A nil *forward is released.
type forward[T any] struct {
	g Surface[T]
}

func (f *forward[T]) released() bool { return f == nil || f.g == nil }

// Size forwards Sized; zero once released so no position is trusted.
func (f *forward[T]) Size() image.Point {
	if f.released() {
		return image.Point{}
	}
	return f.g.Size()
}

// Get forwards Reader.
func (f *forward[T]) Get(p image.Point) (T, bool) {
	if f.released() {
		var zero T
		return zero, false
	}
	return f.g.Get(p)
}

// GetUnchecked forwards UncheckedReader.
func (f *forward[T]) GetUnchecked(p image.Point) T { return f.g.GetUnchecked(p) }

// Set forwards Writer.
func (f *forward[T]) Set(p image.Point, v T) error {
	if f.released() {
		return ErrReleased
	}
	return f.g.Set(p, v)
}

// SetUnchecked forwards UncheckedWriter.
func (f *forward[T]) SetUnchecked(p image.Point, v T) { f.g.SetUnchecked(p, v) }

// Unique is the exclusive owner of a grid.
type Unique[T any] struct {
	forward[T]
}

var _ Surface[int] = (*Unique[int])(nil)

// NewUnique takes exclusive ownership of g. The caller must stop using g directly.
func NewUnique[T any](g Surface[T]) *Unique[T] {
	return &Unique[T]{forward[T]{g: g}}
}

// Take moves the grid out, leaving the Unique empty. A second Take returns nil.
func (u *Unique[T]) Take() Surface[T] {
	g := u.g
	u.g = nil
	return g
}

// Shared is a copyable handle; every copy refers to the same grid.
// It adds no synchronisation: concurrent writers are the caller's concern.
type Shared[T any] struct {
	*forward[T]
}

var _ Surface[int] = Shared[int]{}

// NewShared wraps g in a shared handle.
func NewShared[T any](g Surface[T]) Shared[T] {
	return Shared[T]{&forward[T]{g: g}}
}

// Share returns another handle to the same grid.
func (s Shared[T]) Share() Shared[T] { return s }

// Same reports whether two handles refer to the same shared cell.
func (s Shared[T]) Same(o Shared[T]) bool { return s.forward == o.forward }

// Counted owns a grid through an explicit reference count. When the last
// reference is released, onRelease (if any) receives the grid, e.g. to return
// its store to a pool.
type Counted[T any] struct {
	forward[T]
	refs      atomic.Int64
	onRelease func(Surface[T])
}

var _ Surface[int] = (*Counted[int])(nil)

// NewCounted wraps g with a reference count of one.
func NewCounted[T any](g Surface[T], onRelease func(Surface[T])) *Counted[T] {
	c := &Counted[T]{forward: forward[T]{g: g}, onRelease: onRelease}
	c.refs.Store(1)
	return c
}

// Retain adds a reference and returns c for chaining.
func (c *Counted[T]) Retain() *Counted[T] {
	c.refs.Add(1)
	return c
}

// Refs returns the current reference count.
func (c *Counted[T]) Refs() int64 { return c.refs.Load() }

// Release drops a reference. It reports true when this call released the grid.
// Releasing past zero is a no-op returning false.
func (c *Counted[T]) Release() bool {
	for {
		n := c.refs.Load()
		if n <= 0 {
			return false
		}
		if c.refs.CompareAndSwap(n, n-1) {
			if n > 1 {
				return false
			}
			break
		}
	}
	g := c.g
	c.g = nil
	if c.onRelease != nil && g != nil {
		c.onRelease(g)
	}
	return true
}

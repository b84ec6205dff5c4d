// SPDX-License-Identifier: MIT

// Package grid - conversions.
//
// Ownership:
//   - Every conversion takes its source by value and treats it as consumed:
//     the caller must not read or write the source afterwards. Go cannot
//     enforce the move, so code that still needs the original wraps it in
//     Shared first and passes a Share() of it.
//
// Lazy vs eager:
//   - Map, MapReader, MapSurface, Scale, Window and NewBlended compute on
//     every access and never materialise a copy. They chain: each accepts
//     the grid the previous one returned.
//   - Migrate and MigrateBits copy eagerly into a freshly owned backend.

package grid

import (
	"fmt"
	"image"
	"log/slog"
)

const (
	ctxMigrate     = "Migrate"
	ctxMigrateBits = "MigrateBits"
	ctxScale       = "Scale"
	ctxWindow      = "Window"
)

// Mapped is a read-only view computing f(src) on every read.
type Mapped[S, T any] struct {
	src TrustedReader[S]
	f   func(S) T
}

var _ TrustedReader[int] = (*Mapped[string, int])(nil)

// Map consumes g and returns a lazy view whose elements are f(g's elements).
func Map[S, T any](g TrustedReader[S], f func(S) T) *Mapped[S, T] {
	return &Mapped[S, T]{src: g, f: f}
}

// Size forwards the source extent.
func (m *Mapped[S, T]) Size() image.Point { return m.src.Size() }

// Get maps the source element at p.
func (m *Mapped[S, T]) Get(p image.Point) (T, bool) {
	v, ok := m.src.Get(p)
	if !ok {
		var zero T
		return zero, false
	}
	return m.f(v), true
}

// GetUnchecked maps the source element at p; p must be valid.
func (m *Mapped[S, T]) GetUnchecked(p image.Point) T {
	return m.f(m.src.GetUnchecked(p))
}

// MappedReader is Mapped over a grid without a known extent.
type MappedReader[S, T any] struct {
	src Reader[S]
	f   func(S) T
}

var _ Reader[int] = (*MappedReader[string, int])(nil)

// MapReader consumes g and returns a lazy checked-read view.
func MapReader[S, T any](g Reader[S], f func(S) T) *MappedReader[S, T] {
	return &MappedReader[S, T]{src: g, f: f}
}

// Get maps the source element at p.
func (m *MappedReader[S, T]) Get(p image.Point) (T, bool) {
	v, ok := m.src.Get(p)
	if !ok {
		var zero T
		return zero, false
	}
	return m.f(v), true
}

// MappedSurface maps reads through get and writes through put.
type MappedSurface[S, T any] struct {
	src Surface[S]
	get func(S) T
	put func(T) S
}

var _ Surface[int] = (*MappedSurface[string, int])(nil)

// MapSurface consumes g and returns a read-write view: reads yield get(s),
// writes store put(t).
func MapSurface[S, T any](g Surface[S], get func(S) T, put func(T) S) *MappedSurface[S, T] {
	return &MappedSurface[S, T]{src: g, get: get, put: put}
}

// Size forwards the source extent.
func (m *MappedSurface[S, T]) Size() image.Point { return m.src.Size() }

// Get maps the source element at p.
func (m *MappedSurface[S, T]) Get(p image.Point) (T, bool) {
	v, ok := m.src.Get(p)
	if !ok {
		var zero T
		return zero, false
	}
	return m.get(v), true
}

// GetUnchecked maps the source element at p; p must be valid.
func (m *MappedSurface[S, T]) GetUnchecked(p image.Point) T {
	return m.get(m.src.GetUnchecked(p))
}

// Set stores put(v) at p, or returns ErrOutOfBounds.
func (m *MappedSurface[S, T]) Set(p image.Point, v T) error {
	return m.src.Set(p, m.put(v))
}

// SetUnchecked stores put(v) at p; p must be valid.
func (m *MappedSurface[S, T]) SetUnchecked(p image.Point, v T) {
	m.src.SetUnchecked(p, m.put(v))
}

// Scaled is a read-only view enlarging a grid by an integer factor: every
// source element covers a k×k block. Reading it equals ScaledBlit into a
// buffer k times larger, without the buffer.
type Scaled[T any] struct {
	src TrustedReader[T]
	k   int
}

var _ TrustedReader[int] = (*Scaled[int])(nil)

// Scale consumes g and returns a lazy k-times enlargement of it.
//
// Errors:
//   - ErrNilGrid for a nil grid.
//   - ErrInvalidSize for k < 1.
func Scale[T any](g TrustedReader[T], k int) (*Scaled[T], error) {
	if IsNil(g) {
		return nil, rectErrorf(ctxScale, image.Rectangle{}, ErrNilGrid)
	}
	if k < 1 {
		return nil, fmt.Errorf("grid.%s(k=%d): %w", ctxScale, k, ErrInvalidSize)
	}
	return &Scaled[T]{src: g, k: k}, nil
}

// Factor returns the enlargement factor.
func (s *Scaled[T]) Factor() int { return s.k }

// Size is the source extent times the factor.
func (s *Scaled[T]) Size() image.Point { return s.src.Size().Mul(s.k) }

// Get reads the source element covering p, or reports false outside the extent.
func (s *Scaled[T]) Get(p image.Point) (T, bool) {
	if !Contains(s, p) {
		var zero T
		return zero, false
	}
	return s.src.Get(p.Div(s.k))
}

// GetUnchecked reads the source element covering p; p must be valid.
func (s *Scaled[T]) GetUnchecked(p image.Point) T {
	return s.src.GetUnchecked(p.Div(s.k))
}

// Windowed is a window over any surface. Positions are local: (0,0) is the
// window's top-left corner. Unlike View it does not need a Buffer.
type Windowed[T any] struct {
	src  Surface[T]
	rect image.Rectangle // window in source coordinates
}

var _ Surface[int] = (*Windowed[int])(nil)

// Window consumes g and returns a read-write window over r. Writes land in g.
//
// Errors:
//   - ErrNilGrid for a nil grid.
//   - ErrOutOfBounds if r does not fit g (empty windows are legal).
func Window[T any](g Surface[T], r image.Rectangle) (*Windowed[T], error) {
	if IsNil(g) {
		return nil, rectErrorf(ctxWindow, r, ErrNilGrid)
	}
	if !Fits(g, r) {
		return nil, rectErrorf(ctxWindow, r, ErrOutOfBounds)
	}
	if r.Empty() {
		r = image.Rectangle{Min: r.Min, Max: r.Min}
	}
	return &Windowed[T]{src: g, rect: r}, nil
}

// Size returns the window extent.
func (w *Windowed[T]) Size() image.Point { return w.rect.Size() }

// Rect returns the window in source coordinates.
func (w *Windowed[T]) Rect() image.Rectangle { return w.rect }

// Get reads local position p, or reports false outside the window.
func (w *Windowed[T]) Get(p image.Point) (T, bool) {
	if !Contains(w, p) {
		var zero T
		return zero, false
	}
	return w.src.Get(p.Add(w.rect.Min))
}

// GetUnchecked reads local position p; p must be inside the window.
func (w *Windowed[T]) GetUnchecked(p image.Point) T {
	return w.src.GetUnchecked(p.Add(w.rect.Min))
}

// Set writes local position p through to the source, or returns ErrOutOfBounds.
func (w *Windowed[T]) Set(p image.Point, v T) error {
	if !Contains(w, p) {
		return ErrOutOfBounds
	}
	return w.src.Set(p.Add(w.rect.Min), v)
}

// SetUnchecked writes local position p; p must be inside the window.
func (w *Windowed[T]) SetUnchecked(p image.Point, v T) {
	w.src.SetUnchecked(p.Add(w.rect.Min), v)
}

// Blended is a write-through wrapper: every write stores f(current, written)
// instead of the written value. Reads pass through unchanged. Kernels that
// write through it (Fill, Blit, FillFrom...) therefore blend.
type Blended[T any] struct {
	src Surface[T]
	f   func(dst, src T) T
}

var _ Surface[int] = (*Blended[int])(nil)

// NewBlended wraps g so that writes combine with the stored element through f.
func NewBlended[T any](g Surface[T], f func(dst, src T) T) *Blended[T] {
	return &Blended[T]{src: g, f: f}
}

// Size forwards the source extent.
func (b *Blended[T]) Size() image.Point { return b.src.Size() }

// Get forwards Reader.
func (b *Blended[T]) Get(p image.Point) (T, bool) { return b.src.Get(p) }

// GetUnchecked forwards UncheckedReader.
func (b *Blended[T]) GetUnchecked(p image.Point) T { return b.src.GetUnchecked(p) }

// Set stores f(current, v) at p, or returns ErrOutOfBounds.
func (b *Blended[T]) Set(p image.Point, v T) error {
	cur, ok := b.src.Get(p)
	if !ok {
		return ErrOutOfBounds
	}
	return b.src.Set(p, b.f(cur, v))
}

// SetUnchecked stores f(current, v) at p; p must be valid.
func (b *Blended[T]) SetUnchecked(p image.Point, v T) {
	b.src.SetUnchecked(p, b.f(b.src.GetUnchecked(p), v))
}

// Migrate consumes src and copies it into a new owned Buffer, optionally with
// a different layout. Typical use: turn a borrowed FromSlice view or a lazy
// Mapped view into independent storage.
//
// Errors:
//   - ErrNilGrid for a nil source.
//
// Complexity: O(W*H) time and space.
func Migrate[T any](src TrustedReader[T], opts ...Option) (*Buffer[T], error) {
	if IsNil(src) {
		return nil, rectErrorf(ctxMigrate, image.Rectangle{}, ErrNilGrid)
	}
	dst, err := New[T](src.Size(), opts...)
	if err != nil {
		return nil, err
	}
	BlitUnchecked[T](dst, Bounds(src), src, Bounds(src))
	if debugEnabled() {
		Logger().Debug("grid: migrated", slog.String("op", ctxMigrate), slog.String("size", src.Size().String()))
	}
	return dst, nil
}

// MigrateBits consumes src and packs it into a new owned Bits grid.
//
// Errors:
//   - ErrNilGrid for a nil source.
func MigrateBits(src TrustedReader[bool], opts ...Option) (*Bits, error) {
	if IsNil(src) {
		return nil, rectErrorf(ctxMigrateBits, image.Rectangle{}, ErrNilGrid)
	}
	dst, err := NewBits(src.Size(), opts...)
	if err != nil {
		return nil, err
	}
	BlitUnchecked[bool](dst, Bounds(src), src, Bounds(src))
	return dst, nil
}

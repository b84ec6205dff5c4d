// SPDX-License-Identifier: MIT

// Package grid - Buffer storage (flat store + layout) & safe accessors.
//
// Purpose:
//   - Provide a generic 2D buffer over a one-dimensional store whose ordering is
//     an injected layout.Layout (row-major by default).
//   - Guarantee safety at the checked surface: Get/Set report instead of panicking.
//   - Support borrowed stores (FromSlice), owned stores (New) and generated stores
//     (FromFunc) behind the same type.
//   - Support no-copy windows (View) and raw byte fills (FillSolidUnchecked).
//
// Complexity quicksheet:
//   - New/FromFunc: O(W*H); FromSlice: O(1); Get/Set: O(1) + layout; View: O(1).

package grid

import (
	"fmt"
	"image"
	"log/slog"
	"strings"
	"unsafe"

	"github.com/katalvlaran/lvgrid/layout"
)

// ---------- context tags ----------

const (
	ctxNew       = "New"
	ctxFromSlice = "FromSlice"
	ctxFromFunc  = "FromFunc"
	ctxFromRows  = "FromRows"
	ctxView      = "Buffer.View"
)

// ---------- formatting literals ----------

const (
	_fmtRowOpen  = "["
	_fmtRowClose = "]\n"
	_fmtSep      = ", "
)

// Buffer is a fixed-extent grid backed by a flat slice.
//   - size is the extent (W, H), never changed after construction.
//   - data holds at least W*H elements; position p lives at layout.Index(p, size).
//   - owned is false when the store was supplied by the caller (FromSlice).
type Buffer[T any] struct {
	size   image.Point
	data   []T
	layout layout.Layout
	owned  bool
}

// Compile-time assertions for capability and fmt.Stringer conformance.
var (
	_ Surface[int]  = (*Buffer[int])(nil)
	_ SolidFiller   = (*Buffer[int])(nil)
	_ fmt.Stringer  = (*Buffer[int])(nil)
	_ Surface[bool] = (*Buffer[bool])(nil)
)

// New allocates an owned, zero-filled buffer of the given extent.
//
// Errors:
//   - ErrInvalidSize if either dimension is negative.
//
// Complexity: O(W*H) time and space.
func New[T any](size image.Point, opts ...Option) (*Buffer[T], error) {
	if err := validateSize(ctxNew, size); err != nil {
		return nil, err
	}
	o := gatherOptions(opts...)
	b := &Buffer[T]{
		size:   size,
		data:   make([]T, layout.Len(size)),
		layout: o.layout,
		owned:  true,
	}
	if debugEnabled() {
		Logger().Debug("grid: buffer allocated", slog.Int("w", size.X), slog.Int("h", size.Y))
	}
	return b, nil
}

// FromSlice builds a buffer over a caller-owned store without copying.
// A fixed-size array is passed as arr[:]. Writes through the buffer are
// visible in data; the buffer must not outlive the store's intended lifetime.
//
// Errors:
//   - ErrInvalidSize for negative dimensions.
//   - ErrCapacity if len(data) < W*H; no grid is produced.
//
// Complexity: O(1).
func FromSlice[T any](size image.Point, data []T, opts ...Option) (*Buffer[T], error) {
	if err := validateSize(ctxFromSlice, size); err != nil {
		return nil, err
	}
	if need := layout.Len(size); len(data) < need {
		Logger().Warn("grid: store too small",
			slog.String("op", ctxFromSlice), slog.Int("need", need), slog.Int("have", len(data)))
		return nil, sizeErrorf(ctxFromSlice, size, len(data), ErrCapacity)
	}
	o := gatherOptions(opts...)
	return &Buffer[T]{size: size, data: data, layout: o.layout}, nil
}

// FromFunc allocates an owned buffer and initialises every position with gen,
// called once per position in row-major order.
//
// Errors:
//   - ErrInvalidSize for negative dimensions.
//
// Complexity: O(W*H) calls of gen.
func FromFunc[T any](size image.Point, gen func(p image.Point) T, opts ...Option) (*Buffer[T], error) {
	if gen == nil {
		return nil, sizeErrorf(ctxFromFunc, size, 0, ErrNilGrid)
	}
	b, err := New[T](size, opts...)
	if err != nil {
		return nil, err
	}
	var p image.Point
	for p.Y = 0; p.Y < size.Y; p.Y++ {
		for p.X = 0; p.X < size.X; p.X++ {
			b.data[b.layout.IndexUnchecked(p, size)] = gen(p)
		}
	}
	return b, nil
}

// FromRows copies a rectangular [][]T (rows[y][x]) into an owned buffer.
// An empty slice, or rows of length zero, yields a zero-area buffer.
//
// Errors:
//   - ErrSizeMismatch if rows differ in length.
func FromRows[T any](rows [][]T, opts ...Option) (*Buffer[T], error) {
	size := image.Point{Y: len(rows)}
	if len(rows) > 0 {
		size.X = len(rows[0])
	}
	for y, row := range rows {
		if len(row) != size.X {
			return nil, sizeErrorf(ctxFromRows, size, y, ErrSizeMismatch)
		}
	}
	return FromFunc(size, func(p image.Point) T { return rows[p.Y][p.X] }, opts...)
}

// Size returns the extent. Complexity: O(1).
func (b *Buffer[T]) Size() image.Point { return b.size }

// Layout returns the storage ordering.
func (b *Buffer[T]) Layout() layout.Layout { return b.layout }

// Owned reports whether the store was allocated by the buffer itself.
func (b *Buffer[T]) Owned() bool { return b.owned }

// Data exposes the backing store in layout order. Only the first W*H
// elements belong to the grid.
func (b *Buffer[T]) Data() []T { return b.data }

// Get returns the element at p, or false if p is outside the extent.
func (b *Buffer[T]) Get(p image.Point) (T, bool) {
	i, ok := b.layout.Index(p, b.size)
	if !ok {
		var zero T
		return zero, false
	}
	return b.data[i], true
}

// GetUnchecked returns the element at p; p must be inside the extent.
func (b *Buffer[T]) GetUnchecked(p image.Point) T {
	return b.data[b.layout.IndexUnchecked(p, b.size)]
}

// Ref returns a pointer to the stored element at p, or false if p is outside.
// The pointer aliases the store: writes through it are writes to the grid.
func (b *Buffer[T]) Ref(p image.Point) (*T, bool) {
	i, ok := b.layout.Index(p, b.size)
	if !ok {
		return nil, false
	}
	return &b.data[i], true
}

// RefUnchecked is Ref without validation; p must be inside the extent.
func (b *Buffer[T]) RefUnchecked(p image.Point) *T {
	return &b.data[b.layout.IndexUnchecked(p, b.size)]
}

// Set stores v at p, or returns ErrOutOfBounds leaving the grid untouched.
func (b *Buffer[T]) Set(p image.Point, v T) error {
	i, ok := b.layout.Index(p, b.size)
	if !ok {
		return ErrOutOfBounds
	}
	b.data[i] = v
	return nil
}

// SetUnchecked stores v at p; p must be inside the extent.
func (b *Buffer[T]) SetUnchecked(p image.Point, v T) {
	b.data[b.layout.IndexUnchecked(p, b.size)] = v
}

// row returns the contiguous store span for [x0, x1) of row y.
// Valid only for row-major buffers and in-extent arguments.
func (b *Buffer[T]) row(y, x0, x1 int) []T {
	base := y * b.size.X
	return b.data[base+x0 : base+x1]
}

// PlainData reports whether T holds no pointers, strings, slices, maps,
// channels, funcs or interfaces. The answer is cached per type.
func (b *Buffer[T]) PlainData() bool { return plainData[T]() }

// FillSolidUnchecked overwrites the memory of every element in r with the
// byte c, bypassing element construction. PlainData must be true and r must
// fit the extent.
func (b *Buffer[T]) FillSolidUnchecked(r image.Rectangle, c byte) {
	if r.Empty() || elemSize[T]() == 0 {
		return
	}
	if layout.IsRowMajor(b.layout) {
		for y := r.Min.Y; y < r.Max.Y; y++ {
			memset(asBytes(b.row(y, r.Min.X, r.Max.X)), c)
		}
		return
	}
	var p image.Point
	for p.Y = r.Min.Y; p.Y < r.Max.Y; p.Y++ {
		for p.X = r.Min.X; p.X < r.Max.X; p.X++ {
			i := b.layout.IndexUnchecked(p, b.size)
			memset(asBytes(b.data[i:i+1]), c)
		}
	}
}

// View creates a no-copy window over r. Writes through the view land in b.
//
// Errors:
//   - ErrOutOfBounds if r does not fit the extent (empty windows are legal).
//
// Complexity: O(1).
func (b *Buffer[T]) View(r image.Rectangle) (*View[T], error) {
	if !Fits(b, r) {
		return nil, rectErrorf(ctxView, r, ErrOutOfBounds)
	}
	if r.Empty() {
		r = image.Rectangle{Min: r.Min, Max: r.Min}
	}
	return &View[T]{base: b, rect: r}, nil
}

// String renders rows top to bottom for diagnostics; not for hot paths.
func (b *Buffer[T]) String() string {
	var sb strings.Builder
	var p image.Point
	for p.Y = 0; p.Y < b.size.Y; p.Y++ {
		sb.WriteString(_fmtRowOpen)
		for p.X = 0; p.X < b.size.X; p.X++ {
			fmt.Fprintf(&sb, "%v", b.GetUnchecked(p))
			if p.X+1 < b.size.X {
				sb.WriteString(_fmtSep)
			}
		}
		sb.WriteString(_fmtRowClose)
	}
	return sb.String()
}

// ---------- raw memory helpers ----------

func elemSize[T any]() uintptr {
	var zero T
	return unsafe.Sizeof(zero)
}

// asBytes reinterprets the memory of s as bytes.
func asBytes[T any](s []T) []byte {
	if len(s) == 0 {
		return nil
	}
	return unsafe.Slice((*byte)(unsafe.Pointer(unsafe.SliceData(s))), uintptr(len(s))*elemSize[T]())
}

// memset fills bs with c by doubling copies.
func memset(bs []byte, c byte) {
	if len(bs) == 0 {
		return
	}
	bs[0] = c
	for n := 1; n < len(bs); n *= 2 {
		copy(bs[n:], bs[:n])
	}
}

// SPDX-License-Identifier: MIT
// Package: grid
//
// Purpose:
//   - Single source of truth for the rectangle and size checks shared by all
//     kernels and constructors.
//   - Checks are pure and allocate nothing on success.

package grid

import (
	"image"
	"reflect"
	"sync"

	"github.com/katalvlaran/lvgrid/layout"
)

// validateSize rejects negative extents.
func validateSize(op string, size image.Point) error {
	if size.X < 0 || size.Y < 0 {
		return sizeErrorf(op, size, 0, ErrInvalidSize)
	}
	return nil
}

// IsNil reports whether g is a nil interface or an interface holding a nil
// pointer, map, slice or func. Adapter packages use it to reject typed-nil grids.
func IsNil(g any) bool {
	if g == nil {
		return true
	}
	v := reflect.ValueOf(g)
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func:
		return v.IsNil()
	}
	return false
}

// checkRect validates r against g for a checked kernel.
//
// Behavior:
//   - nil grid → ErrNilGrid.
//   - g implements Sized: r must be empty or inside Bounds(g), else
//     ErrOutOfBounds; trusted=true so the kernel may use unchecked access.
//   - otherwise: trusted=false, the kernel must probe each position.
//
// Complexity: O(1).
func checkRect(op string, g any, r image.Rectangle) (trusted bool, err error) {
	if IsNil(g) {
		return false, rectErrorf(op, r, ErrNilGrid)
	}
	s, ok := g.(Sized)
	if !ok {
		return false, nil
	}
	if !Fits(s, r) {
		return false, rectErrorf(op, r, ErrOutOfBounds)
	}
	return true, nil
}

// sameSize reports whether two rectangles can be paired element-for-element.
// Two empty rectangles always pair.
func sameSize(a, b image.Rectangle) bool {
	if a.Empty() || b.Empty() {
		return a.Empty() && b.Empty()
	}
	return a.Dx() == b.Dx() && a.Dy() == b.Dy()
}

// rowMajorBuffer returns g as a row-major *Buffer[T] when possible so kernels
// can work on contiguous row spans.
func rowMajorBuffer[T any](g any) (*Buffer[T], bool) {
	b, ok := g.(*Buffer[T])
	if !ok || b == nil || !layout.IsRowMajor(b.layout) {
		return nil, false
	}
	return b, true
}

// plainKinds caches plainType results per element type.
var plainKinds sync.Map // reflect.Type → bool

// plainData reports whether T's memory may be overwritten with an arbitrary
// byte pattern: no pointers, strings, slices, maps, channels, funcs or
// interfaces anywhere inside it.
func plainData[T any]() bool {
	t := reflect.TypeFor[T]()
	if v, ok := plainKinds.Load(t); ok {
		return v.(bool)
	}
	ok := plainType(t)
	plainKinds.Store(t, ok)
	return ok
}

func plainType(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Pointer, reflect.String, reflect.Slice, reflect.Map, reflect.Chan,
		reflect.Func, reflect.Interface, reflect.UnsafePointer:
		return false
	case reflect.Array:
		return t.Len() == 0 || plainType(t.Elem())
	case reflect.Struct:
		for i := range t.NumField() {
			if !plainType(t.Field(i).Type) {
				return false
			}
		}
	}
	return true
}

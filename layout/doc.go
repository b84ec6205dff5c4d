// Package layout maps 2D grid positions to linear storage offsets.
//
// What:
//
//   - Layout is a stateless strategy: Index(p, size) gives the offset of p inside
//     an extent of the given size, Point(i, size) gives it back.
//   - RowMajor (y*W + x) and ColumnMajor (x*H + y) are the built-in orderings.
//   - Serpentine walks rows in alternating direction and shows how a custom
//     ordering plugs in without touching any storage or kernel code.
//
// Contract:
//
//   - Every Layout is a bijection between the positions of the extent and
//     [0, W*H). It depends only on (p, size), never on the element type.
//   - Index reports false iff p lies outside size.
//   - IndexUnchecked assumes p lies inside size. Its result is unspecified
//     otherwise: it may alias another element or fall outside the store.
//
// Complexity:
//
//   - All built-in Index/IndexUnchecked/Point calls are O(1) and allocation free.
package layout

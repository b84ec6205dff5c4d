// Package grid provides capability interfaces for 2D grids of elements,
// storage backends that implement them, and bulk kernels written once
// against those interfaces.
//
// What:
//
//   - Capabilities: Reader/Writer (bounds-checked), UncheckedReader/
//     UncheckedWriter (caller-validated), and Sized (trusted extent).
//   - Kernels: Cells (row-major element streams), Fill, FillFunc, FillFrom,
//     FillSolid, Blit, Copy, ScaledBlit (nearest neighbor) and Blend, with
//     the stock combine functions BlendClear, BlendSource, BlendDestination. Each has an
//     ...Unchecked twin for callers that already validated their rectangles.
//   - Backends: Buffer[T] (flat store + layout.Layout), Bits (one element
//     per bit), View[T] (no-copy window).
//   - Ownership: Unique, Shared and Counted forward every capability to the
//     grid they hold.
//   - Conversion: Map/MapReader/MapSurface (lazy element transforms),
//     Scale/Window/NewBlended (lazy geometry and write transforms) and
//     Migrate/MigrateBits (eager copy into an owned backend).
//
// Geometry:
//
//   - Positions and sizes are image.Point, rectangles are image.Rectangle
//     (half-open). A rectangle is valid for a grid iff it is empty or lies
//     inside image.Rect(0, 0, W, H).
//
// Checked vs unchecked:
//
//   - Checked entry points never read or write out of bounds. On a Sized grid
//     they validate the whole rectangle first and touch nothing on failure;
//     on a grid without a known extent they probe each position and stop at
//     the first rejected one, leaving earlier writes in place.
//   - Unchecked entry points perform no validation. Passing a position or
//     rectangle outside the extent is undefined: it may panic, alias another
//     element or corrupt the store.
//
// Errors:
//
//   - ErrOutOfBounds: a position or rectangle outside the grid.
//   - ErrCapacity: backing store smaller than the requested extent.
//   - ErrStreamUnderrun: FillFrom's stream ended before the rectangle was full.
//   - ErrSizeMismatch: source and destination rectangles are incompatible.
//   - ErrNotPlainData: FillSolid over elements that hold pointers.
//   - ErrInvalidSize, ErrReleased, ErrNilGrid: see errors.go.
//
// Concurrency:
//
//   - Nothing here is safe for concurrent mutation; callers serialise writers.
package grid

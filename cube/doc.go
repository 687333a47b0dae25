// Package cube lays six Hilbert-curve sides out on the surface of a die and
// catalogs the regions (dots and white areas) that tile each side.
//
// What:
//
//   - Layout fixes the curve order p, the side length 2^p and the order in
//     which the closed train visits the sides: 1, 2, 4, 6, 5, 3.
//   - ToGlobal / ToLocal translate between per-side (local) and cube-wide
//     (global) coordinates. Side i is offset by i·SideLength on both axes.
//   - RegionSquares turns a set of global cells into global square indices
//     along the train.
//   - Catalog is the immutable table of dot and white-area regions, keyed by
//     side and name, built once in global coordinates.
//
// Die layout (curve start at top left of side 1, end at bottom right of side 3):
//
//	 ┌────┬────┐
//	 │ 1  │ 2  │
//	 └────┼────┼────┐
//	      │ 4  │ 6  │
//	      └────┼────┼────┐
//	           │ 5  │ 3  │
//	           └────┴────┘
//
// Sides 1, 4, 5 are Type1 (the curve leaves through the right edge); sides
// 2, 6, 3 are Type2 (it leaves through the bottom edge). Opposite sides sum
// to seven pips.
//
// Errors:
//
//   - ErrInvalidOrder: curve order rejected by the hilbert package.
//   - ErrUnsupportedOrder: no catalog data for the layout's order.
//   - ErrInvalidSide: side index or side ID outside the die.
//   - ErrInvalidCoordinate: a negative coordinate.
//   - ErrInvalidRegion: an empty region or one spanning several sides.
//   - ErrUnknownRegion: no catalog region with the requested name.
//   - ErrCatalogData: the authored catalog data violates its invariants.
package cube

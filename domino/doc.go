// SPDX-License-Identifier: MIT
// Package domino classifies the squares of a region into full and half
// dominoes and tallies them into count tables.
//
// A domino is full with respect to a region when both of its squares lie in
// the region, and half when only one does. Extract walks a region's squares
// in ascending order; for every square not yet used it looks up the partner
// square on the closed train and emits either a full Pair (sorted face
// values) or a half domino (a single face value):
//
//	squares:   41   42 43   124  126 127 ...
//	partners:  40   43 42   123  125 128 ...
//	           half full    half half full
//
// Guarantee: 2·len(Full) + len(Half) == len(squares).
//
// Count tables hold one counter for each of the 28 unordered face-value pairs
// and each of the 7 face values, so every key is present and zero by default.
// Tables add component-wise (Merge), which makes aggregation over many regions
// a commutative, associative fold; Aggregate runs regions in parallel and
// folds the per-region tables once at the end.
//
// Errors:
//
//   - ErrSquareOutOfRange: a square is not on the train.
//   - ErrDuplicateSquare: a region lists the same square twice.
package domino

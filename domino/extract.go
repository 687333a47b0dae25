// SPDX-License-Identifier: MIT
package domino

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/metaphysics/train"
)

// Extract splits the region's squares into full and half dominoes.
// Squares are visited in ascending order regardless of input order, so the
// result is reproducible. The input slice is not modified.
//
// Returns ErrSquareOutOfRange for a square outside tr and
// ErrDuplicateSquare when a square appears twice.
// Complexity: O(k log k) for k squares.
func Extract(tr *train.Train, squares []int) (Extraction, error) {
	in := make(map[int]bool, len(squares))
	for _, s := range squares {
		if !tr.Contains(s) {
			return Extraction{}, fmt.Errorf("Extract: square %d of %d: %w", s, tr.Len(), ErrSquareOutOfRange)
		}
		if in[s] {
			return Extraction{}, fmt.Errorf("Extract: square %d: %w", s, ErrDuplicateSquare)
		}
		in[s] = true
	}
	ordered := slices.Clone(squares)
	slices.Sort(ordered)

	var ex Extraction
	used := make(map[int]bool, len(squares))
	for _, s := range ordered {
		if used[s] {
			continue
		}
		used[s] = true
		p := tr.Partner(s)
		if in[p] && !used[p] {
			used[p] = true
			ex.Full = append(ex.Full, NewPair(train.FaceValue(s), train.FaceValue(p)))
			continue
		}
		ex.Half = append(ex.Half, train.FaceValue(s))
	}

	return ex, nil
}

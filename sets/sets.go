// SPDX-License-Identifier: MIT
package sets

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/metaphysics/domino"
	"github.com/katalvlaran/metaphysics/train"
)

var (
	// ErrInvalidInput indicates a negative count in a count table.
	ErrInvalidInput = errors.New("sets: counts must be non-negative")
	// ErrTooFewSets indicates a set count too small for the demand.
	ErrTooFewSets = errors.New("sets: not enough domino sets")
)

// Set is the inventory of one domino set: one domino per listed pair.
type Set struct {
	Pairs []domino.Pair
}

// Standard returns the double-six set of 28 dominoes.
func Standard() Set {
	return Set{Pairs: domino.Pairs()}
}

// HalvesPerValue counts, per face value, the halves in one set carrying it.
func (s Set) HalvesPerValue() [train.FaceValues]int {
	var h [train.FaceValues]int
	for _, p := range s.Pairs {
		h[p.Low]++
		h[p.High]++
	}

	return h
}

// MinSets returns the fewest standard sets that supply every full domino in
// t plus enough spare halves for every half domino in t.
// Returns ErrInvalidInput if any count is negative.
// Complexity: O(28 + 7·k) where k is the number of sets added in step 3.
func MinSets(t domino.CountTable) (int, error) {
	if err := validate(t); err != nil {
		return 0, err
	}
	perSet := Standard().HalvesPerValue()

	n := t.MaxFull()
	leftover := leftovers(n, t)
	for v := 0; v < train.FaceValues; v++ {
		for t.Half[v] > leftover[v] {
			n++
			for w := range leftover {
				leftover[w] += perSet[w]
			}
		}
	}

	return n, nil
}

// Leftovers returns the spare halves per face value when n sets cover the
// full dominoes of t.
// Returns ErrInvalidInput for negative counts and ErrTooFewSets when
// n < t.MaxFull().
func Leftovers(n int, t domino.CountTable) ([train.FaceValues]int, error) {
	if err := validate(t); err != nil {
		return [train.FaceValues]int{}, err
	}
	if m := t.MaxFull(); n < m {
		return [train.FaceValues]int{}, fmt.Errorf("Leftovers(%d): need at least %d: %w", n, m, ErrTooFewSets)
	}

	return leftovers(n, t), nil
}

func leftovers(n int, t domino.CountTable) [train.FaceValues]int {
	var out [train.FaceValues]int
	for _, p := range domino.Pairs() {
		spare := n - t.FullCount(p)
		out[p.Low] += spare
		out[p.High] += spare
	}

	return out
}

func validate(t domino.CountTable) error {
	for i, c := range t.Full {
		if c < 0 {
			return fmt.Errorf("full[%s] = %d: %w", domino.Pairs()[i], c, ErrInvalidInput)
		}
	}
	for v, c := range t.Half {
		if c < 0 {
			return fmt.Errorf("half[%d] = %d: %w", v, c, ErrInvalidInput)
		}
	}

	return nil
}

// SPDX-License-Identifier: MIT
package sets

import (
	"fmt"

	"github.com/katalvlaran/metaphysics/domino"
	"github.com/katalvlaran/metaphysics/train"
)

// Cut is one spare domino split in two; Use lists the face values of the
// halves that go into the tiling (one or two entries).
type Cut struct {
	Pair domino.Pair `json:"pair" yaml:"pair"`
	Use  []int       `json:"use" yaml:"use"`
}

// CutList chooses spare dominoes from n sets to supply the half dominoes of t.
// Spares whose halves are both needed are cut first, then spares with one
// needed half. Returns ErrTooFewSets when n sets cannot cover t.
// Complexity: O(28 + Σ half).
func CutList(n int, t domino.CountTable) ([]Cut, error) {
	if _, err := Leftovers(n, t); err != nil {
		return nil, err
	}
	pairs := domino.Pairs()
	spare := make([]int, len(pairs))
	for i, p := range pairs {
		spare[i] = n - t.FullCount(p)
	}
	need := t.Half

	var cuts []Cut
	// Both halves used.
	for i, p := range pairs {
		a, b := p.Low, p.High
		for spare[i] > 0 {
			if p.IsDouble() && need[a] < 2 {
				break
			}
			if !p.IsDouble() && (need[a] == 0 || need[b] == 0) {
				break
			}
			need[a]--
			need[b]--
			spare[i]--
			cuts = append(cuts, Cut{Pair: p, Use: []int{a, b}})
		}
	}
	// One half used. After the first pass no spare has both values needed.
	for i, p := range pairs {
		for spare[i] > 0 && (need[p.Low] > 0 || need[p.High] > 0) {
			v := p.Low
			if need[v] == 0 {
				v = p.High
			}
			need[v]--
			spare[i]--
			cuts = append(cuts, Cut{Pair: p, Use: []int{v}})
		}
	}

	for v := 0; v < train.FaceValues; v++ {
		if need[v] > 0 {
			return nil, fmt.Errorf("CutList(%d): %d halves of %d unsupplied: %w", n, need[v], v, ErrTooFewSets)
		}
	}

	return cuts, nil
}

// SPDX-License-Identifier: MIT
package domino

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/metaphysics/train"
)

var (
	// ErrSquareOutOfRange indicates a square index outside the train.
	ErrSquareOutOfRange = errors.New("domino: square out of range")
	// ErrDuplicateSquare indicates a square listed twice in one region.
	ErrDuplicateSquare = errors.New("domino: duplicate square in region")
)

// NumPairs is the number of unordered face-value pairs (i, j), 0 ≤ i ≤ j ≤ 6.
const NumPairs = train.FaceValues * (train.FaceValues + 1) / 2

// Pair is the unordered face-value pair of a domino, Low ≤ High.
type Pair struct {
	Low  int `json:"low" yaml:"low"`
	High int `json:"high" yaml:"high"`
}

// NewPair returns the pair {a, b} with its values sorted.
func NewPair(a, b int) Pair {
	if a > b {
		a, b = b, a
	}
	return Pair{Low: a, High: b}
}

// Index returns the position of p in Pairs().
// Precondition: 0 ≤ Low ≤ High ≤ 6.
func (p Pair) Index() int {
	const n = train.FaceValues
	return p.Low*n - p.Low*(p.Low-1)/2 + (p.High - p.Low)
}

// IsDouble reports whether both halves carry the same value.
func (p Pair) IsDouble() bool { return p.Low == p.High }

// String implements fmt.Stringer as "low|high".
func (p Pair) String() string { return fmt.Sprintf("%d|%d", p.Low, p.High) }

// Pairs returns all 28 pairs in canonical order:
// 0|0, 0|1, …, 0|6, 1|1, …, 6|6.
func Pairs() []Pair {
	out := make([]Pair, 0, NumPairs)
	for a := 0; a < train.FaceValues; a++ {
		for b := a; b < train.FaceValues; b++ {
			out = append(out, Pair{Low: a, High: b})
		}
	}

	return out
}

// Extraction lists the dominoes that make up one region, in ascending order
// of their first square.
type Extraction struct {
	Full []Pair `json:"full" yaml:"full"`
	Half []int  `json:"half" yaml:"half"`
}

// Squares returns how many squares the extraction covers.
func (e Extraction) Squares() int { return 2*len(e.Full) + len(e.Half) }

// CountTable counts full dominoes by pair and half dominoes by face value.
// The zero value is an empty table with every key present.
type CountTable struct {
	Full [NumPairs]int         `json:"full" yaml:"full"`
	Half [train.FaceValues]int `json:"half" yaml:"half"`
}

// FullCount returns the number of full p dominoes.
func (t CountTable) FullCount(p Pair) int { return t.Full[p.Index()] }

// MaxFull returns the largest full-domino count over all pairs.
func (t CountTable) MaxFull() int {
	m := 0
	for _, c := range t.Full {
		m = max(m, c)
	}

	return m
}

// Squares returns how many squares the counted dominoes cover.
func (t CountTable) Squares() int {
	n := 0
	for _, c := range t.Full {
		n += 2 * c
	}
	for _, c := range t.Half {
		n += c
	}

	return n
}

package train

import (
	"errors"
	"fmt"
)

// Sentinel errors for train operations.
var (
	// ErrInvalidLength indicates a train length that is not a positive even number.
	ErrInvalidLength = errors.New("train: length must be positive and even")
	// ErrNegativeSquare indicates a negative square index.
	ErrNegativeSquare = errors.New("train: square must be non-negative")
	// ErrInvalidRange indicates an empty or inverted [from, to) range.
	ErrInvalidRange = errors.New("train: invalid square range")
)

const (
	// FaceValues is the number of distinct face values, 0 through 6.
	FaceValues = 7
	// SquaresPerDomino is the number of squares one domino covers.
	SquaresPerDomino = 2
	// SquaresPerTerm is the number of squares one product term spans.
	SquaresPerTerm = 4
)

// Domino returns the 1-based domino covering square s.
func Domino(s int) int {
	return (s+1)/SquaresPerDomino + 1
}

// Term returns the 1-based product term square s belongs to.
func Term(s int) int {
	return (s+1)/SquaresPerTerm + 1
}

// FaceValue returns the pips on square s.
func FaceValue(s int) int {
	t := Term(s)
	switch (s + 1) % SquaresPerTerm {
	case 0:
		return (2*t - 1) % FaceValues
	case 1, 2:
		return (2*t + (t-1)/FaceValues) % FaceValues
	default:
		return (2*t + 1) % FaceValues
	}
}

// Entry is one row of the train listing.
type Entry struct {
	Square    int `json:"square" yaml:"square"`
	Domino    int `json:"domino" yaml:"domino"`
	Term      int `json:"term" yaml:"term"`
	FaceValue int `json:"face_value" yaml:"face_value"`
}

// Entries lists squares in [from, to).
// Returns ErrNegativeSquare if from < 0 and ErrInvalidRange if to <= from.
// Complexity: O(to−from).
func Entries(from, to int) ([]Entry, error) {
	if from < 0 {
		return nil, fmt.Errorf("Entries(%d,%d): %w", from, to, ErrNegativeSquare)
	}
	if to <= from {
		return nil, fmt.Errorf("Entries(%d,%d): %w", from, to, ErrInvalidRange)
	}
	out := make([]Entry, 0, to-from)
	for s := from; s < to; s++ {
		out = append(out, Entry{Square: s, Domino: Domino(s), Term: Term(s), FaceValue: FaceValue(s)})
	}

	return out, nil
}

// Train is a closed train of a fixed, even number of squares.
type Train struct {
	length int
}

// New returns a closed train of length squares.
// Returns ErrInvalidLength unless length is positive and even.
func New(length int) (*Train, error) {
	if length < SquaresPerDomino || length%SquaresPerDomino != 0 {
		return nil, fmt.Errorf("New(%d): %w", length, ErrInvalidLength)
	}

	return &Train{length: length}, nil
}

// Len returns the number of squares on the train.
func (t *Train) Len() int { return t.length }

// Contains reports whether s is a square of the train.
func (t *Train) Contains(s int) bool { return s >= 0 && s < t.length }

// Partner returns the other square of the domino covering s.
// The first and last squares are halves of the same domino.
// Precondition: t.Contains(s).
func (t *Train) Partner(s int) int {
	switch s {
	case 0:
		return t.length - 1
	case t.length - 1:
		return 0
	}
	if Domino(s-1) == Domino(s) {
		return s - 1
	}

	return s + 1
}

// FaceValueCounts tallies how often each face value occurs on the train.
// Complexity: O(L).
func (t *Train) FaceValueCounts() [FaceValues]int {
	var counts [FaceValues]int
	for s := 0; s < t.length; s++ {
		counts[FaceValue(s)]++
	}

	return counts
}

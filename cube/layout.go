package cube

import (
	"fmt"
	"slices"

	"github.com/katalvlaran/metaphysics/hilbert"
	"github.com/katalvlaran/metaphysics/train"
)

// Layout places one Hilbert curve of a fixed order on each side of the die.
// It is immutable once built and safe for concurrent use.
type Layout struct {
	curve          *hilbert.Curve
	sideLength     int
	squaresPerSide int
}

// NewLayout returns the layout for curve order p.
// Returns ErrInvalidOrder (wrapping hilbert.ErrInvalidOrder) for p < 1.
func NewLayout(order int) (*Layout, error) {
	c, err := hilbert.New(order)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidOrder, err)
	}

	return &Layout{
		curve:          c,
		sideLength:     c.SideLength(),
		squaresPerSide: c.Length(),
	}, nil
}

// Order returns the curve order p.
func (l *Layout) Order() int { return l.curve.Order() }

// SideLength returns 2^p.
func (l *Layout) SideLength() int { return l.sideLength }

// SquaresPerSide returns 4^p.
func (l *Layout) SquaresPerSide() int { return l.squaresPerSide }

// TotalSquares returns the length of the closed train over all six sides.
func (l *Layout) TotalSquares() int { return NumSides * l.squaresPerSide }

// Curve returns the per-side curve.
func (l *Layout) Curve() *hilbert.Curve { return l.curve }

// Train returns the closed train covering the die.
func (l *Layout) Train() *train.Train {
	// TotalSquares is 6·4^p, always positive and even.
	tr, _ := train.New(l.TotalSquares())
	return tr
}

// Sides returns the sides in train order.
func (l *Layout) Sides() []Side {
	return slices.Clone(trainOrder[:])
}

// Side returns the side with the given pip count.
func (l *Layout) Side(id SideID) (Side, error) {
	for _, s := range trainOrder {
		if s.ID == id {
			return s, nil
		}
	}

	return Side{}, fmt.Errorf("Side(%d): %w", int(id), ErrInvalidSide)
}

// SideAt returns the side at train position index.
func (l *Layout) SideAt(index int) (Side, error) {
	if index < 0 || index >= NumSides {
		return Side{}, fmt.Errorf("SideAt(%d): %w", index, ErrInvalidSide)
	}

	return trainOrder[index], nil
}

// ToGlobal translates local cells of the side at sideIndex into global
// coordinates. The result never shares storage with cells.
// Complexity: O(k).
func (l *Layout) ToGlobal(cells []Coordinate, sideIndex int) ([]Coordinate, error) {
	if sideIndex < 0 || sideIndex >= NumSides {
		return nil, fmt.Errorf("ToGlobal(side %d): %w", sideIndex, ErrInvalidSide)
	}
	offset := sideIndex * l.sideLength
	out := make([]Coordinate, len(cells))
	for i, c := range cells {
		if c.X < 0 || c.Y < 0 || c.X >= l.sideLength || c.Y >= l.sideLength {
			return nil, fmt.Errorf("ToGlobal(%d,%d): %w", c.X, c.Y, ErrInvalidRegion)
		}
		out[i] = Coordinate{X: c.X + offset, Y: c.Y + offset}
	}

	return out, nil
}

// ToLocal reduces a global cell to its side's local frame.
func (l *Layout) ToLocal(c Coordinate) Coordinate {
	return Coordinate{X: c.X % l.sideLength, Y: c.Y % l.sideLength}
}

// SideIndexOf returns the train position of the side holding global cell c.
// Returns ErrInvalidCoordinate for negative cells and ErrInvalidRegion when
// the axes disagree or fall beyond the last side.
func (l *Layout) SideIndexOf(c Coordinate) (int, error) {
	if c.X < 0 || c.Y < 0 {
		return 0, fmt.Errorf("SideIndexOf(%d,%d): %w", c.X, c.Y, ErrInvalidCoordinate)
	}
	i := c.X / l.sideLength
	if c.Y/l.sideLength != i || i >= NumSides {
		return 0, fmt.Errorf("SideIndexOf(%d,%d): %w", c.X, c.Y, ErrInvalidRegion)
	}

	return i, nil
}

// RegionSquares returns the global squares covered by the global cells, in
// input order. Every cell must lie on the same side.
// Complexity: O(k·p).
func (l *Layout) RegionSquares(cells []Coordinate) ([]int, error) {
	if len(cells) == 0 {
		return nil, fmt.Errorf("RegionSquares: empty: %w", ErrInvalidRegion)
	}
	side, err := l.SideIndexOf(cells[0])
	if err != nil {
		return nil, err
	}
	pts := make([]hilbert.Point, len(cells))
	for i, c := range cells {
		ci, err := l.SideIndexOf(c)
		if err != nil {
			return nil, err
		}
		if ci != side {
			return nil, fmt.Errorf("RegionSquares: cell (%d,%d) on side index %d, want %d: %w",
				c.X, c.Y, ci, side, ErrInvalidRegion)
		}
		local := l.ToLocal(c)
		pts[i] = hilbert.Point{X: local.X, Y: local.Y}
	}
	ds, err := l.curve.Distances(pts)
	if err != nil {
		return nil, fmt.Errorf("RegionSquares: %w", err)
	}
	offset := side * l.squaresPerSide
	for i := range ds {
		ds[i] += offset
	}

	return ds, nil
}

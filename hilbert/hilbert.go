package hilbert

import "fmt"

// New returns the curve of the given order.
// Returns ErrInvalidOrder when order < 1 or order > MaxOrder.
func New(order int) (*Curve, error) {
	if order < 1 || order > MaxOrder {
		return nil, fmt.Errorf("New(%d): %w", order, ErrInvalidOrder)
	}
	side := 1 << order

	return &Curve{order: order, side: side, length: side * side}, nil
}

// Order returns p.
func (c *Curve) Order() int { return c.order }

// SideLength returns 2^p, the number of cells along one axis.
func (c *Curve) SideLength() int { return c.side }

// Length returns 4^p, the number of cells visited by the curve.
func (c *Curve) Length() int { return c.length }

// InGrid reports whether pt lies within the grid.
// Complexity: O(1).
func (c *Curve) InGrid(pt Point) bool {
	return pt.X >= 0 && pt.X < c.side && pt.Y >= 0 && pt.Y < c.side
}

// Distance returns the position of pt along the curve.
// Returns ErrPointOutOfGrid if pt is outside the grid.
// Complexity: O(p).
func (c *Curve) Distance(pt Point) (int, error) {
	if !c.InGrid(pt) {
		return 0, fmt.Errorf("Distance(%d,%d): %w", pt.X, pt.Y, ErrPointOutOfGrid)
	}
	x := [Dimensions]int{pt.X, pt.Y}

	// Inverse undo of the excess work done by the forward transform.
	for q := 1 << (c.order - 1); q > 1; q >>= 1 {
		p := q - 1
		for i := 0; i < Dimensions; i++ {
			if x[i]&q != 0 {
				x[0] ^= p
			} else {
				t := (x[0] ^ x[i]) & p
				x[0] ^= t
				x[i] ^= t
			}
		}
	}
	// Gray encode.
	for i := 1; i < Dimensions; i++ {
		x[i] ^= x[i-1]
	}
	t := 0
	for q := 1 << (c.order - 1); q > 1; q >>= 1 {
		if x[Dimensions-1]&q != 0 {
			t ^= q - 1
		}
	}
	for i := range x {
		x[i] ^= t
	}

	return c.interleave(x), nil
}

// Point returns the cell at distance d along the curve.
// Returns ErrDistanceOutOfRange if d is outside [0, Length()).
// Complexity: O(p).
func (c *Curve) Point(d int) (Point, error) {
	if d < 0 || d >= c.length {
		return Point{}, fmt.Errorf("Point(%d): %w", d, ErrDistanceOutOfRange)
	}
	x := c.deinterleave(d)

	// Gray decode by H ^ (H/2).
	t := x[Dimensions-1] >> 1
	for i := Dimensions - 1; i > 0; i-- {
		x[i] ^= x[i-1]
	}
	x[0] ^= t
	// Undo excess work.
	for q := 2; q != c.side; q <<= 1 {
		p := q - 1
		for i := Dimensions - 1; i >= 0; i-- {
			if x[i]&q != 0 {
				x[0] ^= p
			} else {
				t := (x[0] ^ x[i]) & p
				x[0] ^= t
				x[i] ^= t
			}
		}
	}

	return Point{X: x[0], Y: x[1]}, nil
}

// Distances converts a batch of points, preserving input order.
// The first out-of-grid point aborts the batch; no partial result is returned.
// Complexity: O(k·p).
func (c *Curve) Distances(pts []Point) ([]int, error) {
	out := make([]int, len(pts))
	for i, pt := range pts {
		d, err := c.Distance(pt)
		if err != nil {
			return nil, fmt.Errorf("Distances[%d]: %w", i, err)
		}
		out[i] = d
	}

	return out, nil
}

// Points converts a batch of distances, preserving input order.
// Complexity: O(k·p).
func (c *Curve) Points(ds []int) ([]Point, error) {
	out := make([]Point, len(ds))
	for i, d := range ds {
		pt, err := c.Point(d)
		if err != nil {
			return nil, fmt.Errorf("Points[%d]: %w", i, err)
		}
		out[i] = pt
	}

	return out, nil
}

// interleave packs the transposed form into a distance, most significant bit
// level first, dimension 0 before dimension 1 within a level.
func (c *Curve) interleave(x [Dimensions]int) int {
	h := 0
	for b := c.order - 1; b >= 0; b-- {
		for i := 0; i < Dimensions; i++ {
			h = h<<1 | (x[i]>>b)&1
		}
	}

	return h
}

// deinterleave is the inverse of interleave.
func (c *Curve) deinterleave(h int) [Dimensions]int {
	var x [Dimensions]int
	bits := c.order * Dimensions
	for k := 0; k < bits; k++ {
		bit := (h >> (bits - 1 - k)) & 1
		x[k%Dimensions] |= bit << (c.order - 1 - k/Dimensions)
	}

	return x
}

package hilbert

import "errors"

// Sentinel errors for hilbert operations.
var (
	// ErrInvalidOrder indicates the curve order is not in [1, MaxOrder].
	ErrInvalidOrder = errors.New("hilbert: order must be in [1, MaxOrder]")
	// ErrPointOutOfGrid indicates a coordinate outside the 2^p × 2^p grid.
	ErrPointOutOfGrid = errors.New("hilbert: point outside grid")
	// ErrDistanceOutOfRange indicates a distance outside [0, 4^p).
	ErrDistanceOutOfRange = errors.New("hilbert: distance out of range")
)

// Dimensions is the number of spatial dimensions handled by Curve.
const Dimensions = 2

// MaxOrder bounds p so that every distance fits in a signed 32-bit int.
const MaxOrder = 15

// Point is a cell of the grid. X and Y are in [0, 2^p).
type Point struct {
	X, Y int
}

// Curve is a Hilbert curve of a fixed order in two dimensions.
// It holds no mutable state and is safe for concurrent use.
type Curve struct {
	order  int
	side   int // 2^order
	length int // side^2
}

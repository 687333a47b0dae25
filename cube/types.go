package cube

import (
	"fmt"
	"slices"
)

// NumSides is the number of sides of the die.
const NumSides = 6

// PipSum is the pip total of any two opposite sides.
const PipSum = 7

// SideID names a side by its pip count, 1 through 6.
type SideID int

// Opposite returns the side across the die.
func (id SideID) Opposite() SideID { return PipSum - id }

// Valid reports whether id names a side of the die.
func (id SideID) Valid() bool { return id >= 1 && id <= NumSides }

// String implements fmt.Stringer.
func (id SideID) String() string { return fmt.Sprintf("Side %d", int(id)) }

// Orientation is the tiling type of a side's local curve.
type Orientation int

const (
	// Type1 curves start top left and end top right.
	Type1 Orientation = iota + 1
	// Type2 curves start top left and end bottom left.
	Type2
)

// String implements fmt.Stringer.
func (o Orientation) String() string {
	switch o {
	case Type1:
		return "type1"
	case Type2:
		return "type2"
	default:
		return fmt.Sprintf("Orientation(%d)", int(o))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (o Orientation) MarshalText() ([]byte, error) { return []byte(o.String()), nil }

// Side is one face of the die in train order.
type Side struct {
	ID          SideID      `json:"id" yaml:"id"`
	Index       int         `json:"index" yaml:"index"` // position along the train, 0..5
	Orientation Orientation `json:"orientation" yaml:"orientation"`
}

// trainOrder lists the sides in the order the closed curve visits them.
var trainOrder = [NumSides]Side{
	{ID: 1, Index: 0, Orientation: Type1},
	{ID: 2, Index: 1, Orientation: Type2},
	{ID: 4, Index: 2, Orientation: Type1},
	{ID: 6, Index: 3, Orientation: Type2},
	{ID: 5, Index: 4, Orientation: Type1},
	{ID: 3, Index: 5, Orientation: Type2},
}

// Coordinate is a cell position, local to a side or global to the die.
type Coordinate struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// Kind distinguishes dots from white areas.
type Kind int

const (
	// KindDot is a pip.
	KindDot Kind = iota + 1
	// KindWhiteArea is a side's cells minus its dots.
	KindWhiteArea
)

// String implements fmt.Stringer.
func (k Kind) String() string {
	switch k {
	case KindDot:
		return "dot"
	case KindWhiteArea:
		return "white"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// MarshalText implements encoding.TextMarshaler.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Region is a named set of cells on one side, in global coordinates, along
// with the global squares those cells occupy in ascending order.
type Region struct {
	Name    string       `json:"name" yaml:"name"`
	Side    SideID       `json:"side" yaml:"side"`
	Kind    Kind         `json:"kind" yaml:"kind"`
	Cells   []Coordinate `json:"cells" yaml:"cells"`
	Squares []int        `json:"squares" yaml:"squares"`
}

// Clone returns a deep copy of r.
func (r Region) Clone() Region {
	r.Cells = slices.Clone(r.Cells)
	r.Squares = slices.Clone(r.Squares)

	return r
}

package cube

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestComponents verifies 4-connectivity grouping; diagonals do not connect.
func TestComponents(t *testing.T) {
	cases := []struct {
		name  string
		cells []Coordinate
		want  int
	}{
		{"Empty", nil, 0},
		{"Single", []Coordinate{{0, 0}}, 1},
		{"Row", []Coordinate{{0, 0}, {1, 0}, {2, 0}}, 1},
		{"Diagonal", []Coordinate{{0, 0}, {1, 1}}, 2},
		{"Pip", authored[4].pip, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Len(t, components(tc.cells), tc.want)
		})
	}
}

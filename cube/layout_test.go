package cube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metaphysics/cube"
	"github.com/katalvlaran/metaphysics/hilbert"
)

func mustLayout(t *testing.T) *cube.Layout {
	t.Helper()
	l, err := cube.NewLayout(cube.DefaultOrder)
	require.NoError(t, err)
	return l
}

// TestNewLayout_Sizes checks the derived parameters at p=4.
func TestNewLayout_Sizes(t *testing.T) {
	l := mustLayout(t)
	assert.Equal(t, 4, l.Order())
	assert.Equal(t, 16, l.SideLength())
	assert.Equal(t, 256, l.SquaresPerSide())
	assert.Equal(t, 1536, l.TotalSquares())
	assert.Equal(t, 1536, l.Train().Len())
}

// TestNewLayout_InvalidOrder verifies both the cube and hilbert sentinels surface.
func TestNewLayout_InvalidOrder(t *testing.T) {
	_, err := cube.NewLayout(0)
	assert.ErrorIs(t, err, cube.ErrInvalidOrder)
	assert.ErrorIs(t, err, hilbert.ErrInvalidOrder)
}

// TestSides_OppositesSumToSeven verifies the physical dice rule and train order.
func TestSides_OppositesSumToSeven(t *testing.T) {
	l := mustLayout(t)
	sides := l.Sides()
	require.Len(t, sides, cube.NumSides)

	ids := make([]cube.SideID, len(sides))
	for i, s := range sides {
		ids[i] = s.ID
		assert.Equal(t, i, s.Index)
		assert.Equal(t, cube.PipSum, int(s.ID)+int(s.ID.Opposite()))
		opp, err := l.Side(s.ID.Opposite())
		require.NoError(t, err)
		assert.Equal(t, s.ID, opp.ID.Opposite())
	}
	assert.Equal(t, []cube.SideID{1, 2, 4, 6, 5, 3}, ids)

	_, err := l.Side(7)
	assert.ErrorIs(t, err, cube.ErrInvalidSide)
	_, err = l.SideAt(6)
	assert.ErrorIs(t, err, cube.ErrInvalidSide)
}

// TestSides_OrientationAlternates pins the tiling type of each side.
func TestSides_OrientationAlternates(t *testing.T) {
	l := mustLayout(t)
	for _, s := range l.Sides() {
		want := cube.Type1
		if s.Index%2 == 1 {
			want = cube.Type2
		}
		assert.Equal(t, want, s.Orientation, "%s", s.ID)
	}
}

// TestToGlobal_DeepCopy verifies translation and that the input is untouched.
func TestToGlobal_DeepCopy(t *testing.T) {
	l := mustLayout(t)
	local := []cube.Coordinate{{X: 0, Y: 0}, {X: 15, Y: 3}}

	global, err := l.ToGlobal(local, 2)
	require.NoError(t, err)
	assert.Equal(t, []cube.Coordinate{{X: 32, Y: 32}, {X: 47, Y: 35}}, global)

	global[0].X = 999
	assert.Equal(t, 0, local[0].X, "ToGlobal must not alias its input")

	for _, c := range global[1:] {
		assert.Equal(t, local[1], l.ToLocal(c))
	}

	_, err = l.ToGlobal(local, 6)
	assert.ErrorIs(t, err, cube.ErrInvalidSide)
	_, err = l.ToGlobal([]cube.Coordinate{{X: 16, Y: 0}}, 0)
	assert.ErrorIs(t, err, cube.ErrInvalidRegion)
}

// TestSideIndexOf covers valid and malformed cells.
func TestSideIndexOf(t *testing.T) {
	l := mustLayout(t)

	i, err := l.SideIndexOf(cube.Coordinate{X: 90, Y: 95})
	require.NoError(t, err)
	assert.Equal(t, 5, i)

	_, err = l.SideIndexOf(cube.Coordinate{X: -1, Y: 0})
	assert.ErrorIs(t, err, cube.ErrInvalidCoordinate)
	_, err = l.SideIndexOf(cube.Coordinate{X: 0, Y: 16})
	assert.ErrorIs(t, err, cube.ErrInvalidRegion)
	_, err = l.SideIndexOf(cube.Coordinate{X: 96, Y: 96})
	assert.ErrorIs(t, err, cube.ErrInvalidRegion)
}

// TestRegionSquares maps cells on side index 1 and rejects mixed regions.
func TestRegionSquares(t *testing.T) {
	l := mustLayout(t)

	got, err := l.RegionSquares([]cube.Coordinate{{X: 31, Y: 16}, {X: 16, Y: 16}})
	require.NoError(t, err)
	assert.Equal(t, []int{256 + 255, 256}, got, "input order is preserved")

	_, err = l.RegionSquares(nil)
	assert.ErrorIs(t, err, cube.ErrInvalidRegion)

	_, err = l.RegionSquares([]cube.Coordinate{{X: 0, Y: 0}, {X: 16, Y: 16}})
	assert.ErrorIs(t, err, cube.ErrInvalidRegion)
}

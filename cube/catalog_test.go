package cube_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metaphysics/cube"
)

func mustCatalog(t *testing.T) *cube.Catalog {
	t.Helper()
	c, err := cube.Default()
	require.NoError(t, err)
	return c
}

// TestDefault_Shared verifies the default catalog is built once.
func TestDefault_Shared(t *testing.T) {
	a := mustCatalog(t)
	b := mustCatalog(t)
	assert.Same(t, a, b)
}

// TestNewCatalog_UnsupportedOrder verifies catalog data exists only for p=4.
func TestNewCatalog_UnsupportedOrder(t *testing.T) {
	l, err := cube.NewLayout(3)
	require.NoError(t, err)
	_, err = cube.NewCatalog(l)
	assert.ErrorIs(t, err, cube.ErrUnsupportedOrder)
}

// TestCatalog_DotsMatchPips verifies each side carries as many dots as pips.
func TestCatalog_DotsMatchPips(t *testing.T) {
	c := mustCatalog(t)
	assert.Len(t, c.Dots(), 21)
	assert.Len(t, c.WhiteAreas(), cube.NumSides)
	assert.Len(t, c.Regions(), 27)

	for _, s := range c.Layout().Sides() {
		regions, err := c.SideRegions(s.ID)
		require.NoError(t, err)
		dots := 0
		for _, r := range regions {
			if r.Kind == cube.KindDot {
				dots++
			}
		}
		assert.Equal(t, int(s.ID), dots, "%s", s.ID)
	}

	_, err := c.SideRegions(0)
	assert.ErrorIs(t, err, cube.ErrInvalidSide)
}

// TestCatalog_Partition verifies that regions tile every square exactly once
// and that each side's dots and white area partition its cells.
func TestCatalog_Partition(t *testing.T) {
	c := mustCatalog(t)
	l := c.Layout()

	seen := make([]int, l.TotalSquares())
	perSide := make(map[cube.SideID]int)
	for _, r := range c.Regions() {
		require.Len(t, r.Squares, len(r.Cells), "region %s", r.Name)
		perSide[r.Side] += len(r.Cells)
		for i, s := range r.Squares {
			seen[s]++
			if i > 0 {
				require.Less(t, r.Squares[i-1], s, "squares ascending in %s", r.Name)
			}
		}
	}
	for s, n := range seen {
		require.Equal(t, 1, n, "square %d", s)
	}
	for id, n := range perSide {
		assert.Equal(t, l.SquaresPerSide(), n, "%s", id)
	}
}

// TestCatalog_Dot1A pins the squares of the single pip on side 1.
func TestCatalog_Dot1A(t *testing.T) {
	c := mustCatalog(t)

	r, err := c.Region(1, "1A")
	require.NoError(t, err)
	assert.Equal(t, cube.KindDot, r.Kind)
	assert.Equal(t, []int{41, 42, 43, 124, 126, 127, 128, 129, 131, 212, 213, 214}, r.Squares)

	r2, err := c.Lookup("2A")
	require.NoError(t, err)
	assert.Equal(t, cube.SideID(2), r2.Side)
	assert.Equal(t, []int{330, 331, 337, 338, 344, 347, 348, 349, 350, 351, 352, 355}, r2.Squares)
	assert.Contains(t, r2.Cells, cube.Coordinate{X: 17, Y: 28}, "2A is stored in global coordinates")
}

// TestCatalog_LookupsReturnCopies verifies callers cannot mutate the catalog.
func TestCatalog_LookupsReturnCopies(t *testing.T) {
	c := mustCatalog(t)

	r, err := c.Lookup("W1")
	require.NoError(t, err)
	require.Equal(t, cube.KindWhiteArea, r.Kind)
	r.Cells[0] = cube.Coordinate{X: -5, Y: -5}
	r.Squares[0] = -5

	again, err := c.Lookup("W1")
	require.NoError(t, err)
	assert.NotEqual(t, r.Cells[0], again.Cells[0])
	assert.NotEqual(t, r.Squares[0], again.Squares[0])
}

// TestCatalog_Unknown verifies lookups for missing regions.
func TestCatalog_Unknown(t *testing.T) {
	c := mustCatalog(t)
	_, err := c.Lookup("7A")
	assert.ErrorIs(t, err, cube.ErrUnknownRegion)
	_, err = c.Region(2, "1A")
	assert.ErrorIs(t, err, cube.ErrUnknownRegion)
	assert.Equal(t, "W3", cube.WhiteAreaName(3))
	assert.Equal(t, []string{"1A", "W1", "2A", "2B", "W2"}, c.Names()[:5])
}

package domino_test

import (
	"context"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metaphysics/cube"
	"github.com/katalvlaran/metaphysics/domino"
)

func squaresOf(regions []cube.Region) [][]int {
	out := make([][]int, len(regions))
	for i, r := range regions {
		out[i] = r.Squares
	}
	return out
}

// TestTally_AllKeysPresent verifies an empty extraction yields an all-zero table.
func TestTally_AllKeysPresent(t *testing.T) {
	tbl := domino.Tally(domino.Extraction{})
	assert.Equal(t, domino.CountTable{}, tbl)
	for _, p := range domino.Pairs() {
		assert.Zero(t, tbl.FullCount(p))
	}
	assert.Zero(t, tbl.MaxFull())
}

// TestAggregate_Dots pins the totals over all 21 dots.
func TestAggregate_Dots(t *testing.T) {
	cat, err := cube.Default()
	require.NoError(t, err)

	got, err := domino.Aggregate(context.Background(), cat.Layout().Train(), squaresOf(cat.Dots()))
	require.NoError(t, err)

	want := domino.CountTable{
		Full: [domino.NumPairs]int{
			1, 4, 3, 3, 3, 2, 4,
			3, 3, 4, 3, 1, 3,
			1, 3, 5, 5, 3,
			3, 3, 5, 1,
			1, 3, 3,
			2, 3,
			3,
		},
		Half: [7]int{13, 14, 11, 12, 13, 17, 10},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Aggregate(dots) mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, 21*12, got.Squares())
	assert.Equal(t, 5, got.MaxFull())
}

// TestAggregate_WhiteAreas pins the half counts and size over all white areas.
func TestAggregate_WhiteAreas(t *testing.T) {
	cat, err := cube.Default()
	require.NoError(t, err)

	got, err := domino.Aggregate(context.Background(), cat.Layout().Train(), squaresOf(cat.WhiteAreas()))
	require.NoError(t, err)
	assert.Equal(t, [7]int{15, 12, 14, 14, 17, 16, 14}, got.Half)
	assert.Equal(t, 27, got.MaxFull())
	assert.Equal(t, 1536-21*12, got.Squares())
}

// TestAggregate_MergeIsFold verifies aggregate([A,B]) == merge(aggregate([A]), aggregate([B]))
// and that the worker bound does not change the result.
func TestAggregate_MergeIsFold(t *testing.T) {
	cat, err := cube.Default()
	require.NoError(t, err)
	tr := cat.Layout().Train()
	ctx := context.Background()
	regions := squaresOf(cat.Regions())

	all, err := domino.Aggregate(ctx, tr, regions, domino.WithWorkers(4))
	require.NoError(t, err)
	seq, err := domino.Aggregate(ctx, tr, regions, domino.WithWorkers(1))
	require.NoError(t, err)
	assert.Equal(t, seq, all)

	parts := make([]domino.CountTable, 0, len(regions))
	for _, sq := range regions {
		one, err := domino.Aggregate(ctx, tr, [][]int{sq})
		require.NoError(t, err)
		parts = append(parts, one)
	}
	assert.Equal(t, all, domino.Merge(parts...))
	assert.Equal(t, domino.Merge(parts[1], parts[0]), domino.Merge(parts[0], parts[1]))
	assert.Equal(t, cubeLength, all.Squares())
}

// TestAggregate_Errors verifies bad regions and cancellation abort the fold.
func TestAggregate_Errors(t *testing.T) {
	tr := mustTrain(t)

	_, err := domino.Aggregate(context.Background(), tr, [][]int{{1, 2}, {cubeLength + 3}})
	assert.ErrorIs(t, err, domino.ErrSquareOutOfRange)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = domino.Aggregate(ctx, tr, [][]int{{1, 2}})
	assert.ErrorIs(t, err, context.Canceled)

	got, err := domino.Aggregate(context.Background(), tr, nil)
	require.NoError(t, err)
	assert.Equal(t, domino.CountTable{}, got)
}

// TestWithWorkers_Panics verifies option validation.
func TestWithWorkers_Panics(t *testing.T) {
	assert.Panics(t, func() { domino.WithWorkers(0) })
}

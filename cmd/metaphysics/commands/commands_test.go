package commands

import (
	"bytes"
	"encoding/json"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/metaphysics/cube"
	"github.com/katalvlaran/metaphysics/report"
	"github.com/katalvlaran/metaphysics/train"
)

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(io.Discard)
	root.SetArgs(args)
	err := root.Execute()

	return out.String(), err
}

func TestTrainCmd_JSON(t *testing.T) {
	out, err := run(t, "train", "--from", "0", "--to", "4", "--format", "json")
	require.NoError(t, err)

	var got struct {
		Entries         []train.Entry         `json:"entries"`
		FaceValueCounts [train.FaceValues]int `json:"face_value_counts"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got.Entries, 4)
	for i, e := range got.Entries {
		assert.Equal(t, i, e.Square)
		assert.Equal(t, train.Domino(i), e.Domino)
		assert.Equal(t, train.FaceValue(i), e.FaceValue)
	}
	assert.Equal(t, [train.FaceValues]int{220, 218, 220, 220, 220, 218, 220}, got.FaceValueCounts)
}

func TestSquaresCmd(t *testing.T) {
	out, err := run(t, "squares", "1A", "--format", "json")
	require.NoError(t, err)

	var got map[string][]int
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []int{41, 42, 43, 124, 126, 127, 128, 129, 131, 212, 213, 214}, got["1A"])
}

func TestDominoesCmd_UnknownRegion(t *testing.T) {
	_, err := run(t, "dominoes", "9Z")
	require.ErrorIs(t, err, cube.ErrUnknownRegion)
}

func TestSetsCmd(t *testing.T) {
	cases := map[string]int{"dots": 5, "white": 27, "all": 30}
	for group, want := range cases {
		t.Run(group, func(t *testing.T) {
			out, err := run(t, "sets", "--group", group, "--format", "json")
			require.NoError(t, err)

			var got report.GroupSummary
			require.NoError(t, json.Unmarshal([]byte(out), &got))
			assert.Equal(t, want, got.MinSets)
		})
	}
}

func TestSetsCmd_UnknownGroup(t *testing.T) {
	_, err := run(t, "sets", "--group", "black")
	require.ErrorIs(t, err, report.ErrUnknownGroup)
}

func TestReportCmd_Text(t *testing.T) {
	out, err := run(t, "report", "--no-color")
	require.NoError(t, err)
	assert.Contains(t, out, "Die of order 4: 1536 squares, sides of 16")
	assert.Contains(t, out, "minimum sets: 5")
	assert.Contains(t, out, "minimum sets: 30")
}

func TestRoot_InvalidFormat(t *testing.T) {
	_, err := run(t, "report", "--format", "xml")
	require.Error(t, err)
}

package commands

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/metaphysics/config"
	"github.com/katalvlaran/metaphysics/report"
	"github.com/katalvlaran/metaphysics/sets"
	"github.com/katalvlaran/metaphysics/train"
)

// Face value colours, indexed by pip count.
var faceColors = [train.FaceValues]lipgloss.Color{"12", "15", "10", "11", "13", "14", "9"}

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	cellStyle   = lipgloss.NewStyle().Padding(0, 1)
	titleStyle  = lipgloss.NewStyle().Bold(true).Underline(true)
)

// emit writes v in cfg.Format when it is json or yaml and reports whether it did.
func emit(w io.Writer, v any) (bool, error) {
	if cfg.Format == config.FormatText {
		return false, nil
	}
	out, err := report.Marshal(v, cfg.Format)
	if err != nil {
		return true, err
	}
	_, err = fmt.Fprintln(w, strings.TrimRight(string(out), "\n"))

	return true, err
}

func title(w io.Writer, s string) {
	if cfg.Color {
		s = titleStyle.Render(s)
	}
	fmt.Fprintln(w, s)
}

// newTable returns a bordered table; valueCols marks columns holding face
// values, which are coloured when colour is enabled.
func newTable(headers []string, rows [][]string, valueCols ...int) *table.Table {
	colored := make(map[int]bool, len(valueCols))
	for _, c := range valueCols {
		colored[c] = true
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			if !cfg.Color || !colored[col] || row < 0 || row >= len(rows) {
				return cellStyle
			}
			v, err := strconv.Atoi(rows[row][col])
			if err != nil || v < 0 || v >= train.FaceValues {
				return cellStyle
			}

			return cellStyle.Foreground(faceColors[v])
		})
}

func renderEntries(w io.Writer, entries []train.Entry) {
	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			strconv.Itoa(e.Square),
			strconv.Itoa(e.Domino),
			strconv.Itoa(e.Term),
			strconv.Itoa(e.FaceValue),
		}
	}
	fmt.Fprintln(w, newTable([]string{"Square", "Domino", "Term", "Value"}, rows, 3).Render())
}

func renderValueCounts(w io.Writer, label string, counts [train.FaceValues]int) {
	headers := make([]string, 0, train.FaceValues+1)
	row := make([]string, 0, train.FaceValues+1)
	headers = append(headers, "")
	row = append(row, label)
	for v, n := range counts {
		headers = append(headers, strconv.Itoa(v))
		row = append(row, strconv.Itoa(n))
	}
	fmt.Fprintln(w, newTable(headers, [][]string{row}).Render())
}

// renderFull draws the 7x7 lower triangle of full domino counts; cell (i, j)
// with j <= i holds the count of j|i.
func renderFull(w io.Writer, c report.Counts) {
	grid := [train.FaceValues][train.FaceValues]int{}
	for _, pc := range c.Full {
		grid[pc.Pair.High][pc.Pair.Low] = pc.Count
	}
	headers := []string{""}
	for v := 0; v < train.FaceValues; v++ {
		headers = append(headers, strconv.Itoa(v))
	}
	rows := make([][]string, train.FaceValues)
	for i := range rows {
		rows[i] = make([]string, train.FaceValues+1)
		rows[i][0] = strconv.Itoa(i)
		for j := 0; j <= i; j++ {
			rows[i][j+1] = strconv.Itoa(grid[i][j])
		}
	}
	fmt.Fprintln(w, newTable(headers, rows, 0).Render())
}

func renderCounts(w io.Writer, c report.Counts) {
	title(w, "Full dominoes")
	renderFull(w, c)
	title(w, "Half dominoes")
	renderValueCounts(w, "halves", c.Half)
}

func renderRegion(w io.Writer, r report.Region) {
	title(w, fmt.Sprintf("%s (%s, %s)", r.Name, r.Side, r.Kind))
	full := make([]string, len(r.Dominoes.Full))
	for i, p := range r.Dominoes.Full {
		full[i] = p.String()
	}
	half := make([]string, len(r.Dominoes.Half))
	for i, v := range r.Dominoes.Half {
		half[i] = strconv.Itoa(v)
	}
	fmt.Fprintf(w, "squares: %v\n", r.Squares)
	fmt.Fprintf(w, "full:    [%s]\n", strings.Join(full, " "))
	fmt.Fprintf(w, "half:    [%s]\n", strings.Join(half, " "))
	renderCounts(w, r.Counts)
}

func renderCuts(w io.Writer, cuts []sets.Cut) {
	rows := make([][]string, len(cuts))
	for i, c := range cuts {
		use := make([]string, len(c.Use))
		for j, v := range c.Use {
			use[j] = strconv.Itoa(v)
		}
		rows[i] = []string{c.Pair.String(), strings.Join(use, ", ")}
	}
	fmt.Fprintln(w, newTable([]string{"Cut", "Use"}, rows).Render())
}

func renderGroup(w io.Writer, g report.GroupSummary) {
	title(w, fmt.Sprintf("Group %s: %d regions", g.Group, len(g.Regions)))
	renderCounts(w, g.Counts)
	fmt.Fprintf(w, "minimum sets: %d\n", g.MinSets)
	renderValueCounts(w, "leftover", g.Leftovers)
	if len(g.Cuts) > 0 {
		title(w, "Cut list")
		renderCuts(w, g.Cuts)
	}
}

func renderSummary(w io.Writer, s report.Summary) {
	title(w, fmt.Sprintf("Die of order %d: %d squares, sides of %d", s.Order, s.TotalSquares, s.SideLength))
	rows := make([][]string, len(s.Sides))
	for i, side := range s.Sides {
		rows[i] = []string{strconv.Itoa(side.Index), side.ID.String(), side.Orientation.String()}
	}
	fmt.Fprintln(w, newTable([]string{"Index", "Side", "Orientation"}, rows).Render())
	title(w, "Face values along the train")
	renderValueCounts(w, "squares", s.FaceValueCounts)
	for _, g := range s.Groups {
		renderGroup(w, g)
	}
}

package report

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/metaphysics/cube"
	"github.com/katalvlaran/metaphysics/domino"
	"github.com/katalvlaran/metaphysics/sets"
	"github.com/katalvlaran/metaphysics/train"
)

var (
	// ErrUnknownGroup indicates a group name other than dots, white or all.
	ErrUnknownGroup = errors.New("report: unknown region group")
	// ErrUnknownFormat indicates a serialisation format other than json or yaml.
	ErrUnknownFormat = errors.New("report: unknown format")
)

// Group selects a collection of catalog regions.
type Group string

// Region groups.
const (
	GroupDots  Group = "dots"
	GroupWhite Group = "white"
	GroupAll   Group = "all"
)

// Groups lists the groups in report order.
func Groups() []Group { return []Group{GroupDots, GroupWhite, GroupAll} }

// PairCount is one row of a full-domino count table.
type PairCount struct {
	Pair  domino.Pair `json:"pair" yaml:"pair"`
	Count int         `json:"count" yaml:"count"`
}

// Counts is a count table with every pair spelled out.
type Counts struct {
	Full []PairCount           `json:"full" yaml:"full"`
	Half [train.FaceValues]int `json:"half" yaml:"half"`
}

// NewCounts expands t into one row per pair, in canonical pair order.
func NewCounts(t domino.CountTable) Counts {
	pairs := domino.Pairs()
	out := Counts{Full: make([]PairCount, len(pairs)), Half: t.Half}
	for i, p := range pairs {
		out.Full[i] = PairCount{Pair: p, Count: t.Full[i]}
	}

	return out
}

// Region describes one catalog region.
type Region struct {
	Name     string            `json:"name" yaml:"name"`
	Side     cube.SideID       `json:"side" yaml:"side"`
	Kind     cube.Kind         `json:"kind" yaml:"kind"`
	Squares  []int             `json:"squares" yaml:"squares"`
	Dominoes domino.Extraction `json:"dominoes" yaml:"dominoes"`
	Counts   Counts            `json:"counts" yaml:"counts"`
}

// GroupSummary describes the demand of a region group.
type GroupSummary struct {
	Group     Group                 `json:"group" yaml:"group"`
	Regions   []string              `json:"regions" yaml:"regions"`
	Counts    Counts                `json:"counts" yaml:"counts"`
	MinSets   int                   `json:"min_sets" yaml:"min_sets"`
	Leftovers [train.FaceValues]int `json:"leftovers" yaml:"leftovers"`
	Cuts      []sets.Cut            `json:"cuts" yaml:"cuts"`
}

// Summary is the full report for one catalog.
type Summary struct {
	Order           int                   `json:"order" yaml:"order"`
	SideLength      int                   `json:"side_length" yaml:"side_length"`
	TotalSquares    int                   `json:"total_squares" yaml:"total_squares"`
	Sides           []cube.Side           `json:"sides" yaml:"sides"`
	FaceValueCounts [train.FaceValues]int `json:"face_value_counts" yaml:"face_value_counts"`
	Regions         []Region              `json:"regions" yaml:"regions"`
	Groups          []GroupSummary        `json:"groups" yaml:"groups"`
}

// ForRegion reports the catalog region with the given name.
func ForRegion(cat *cube.Catalog, name string) (Region, error) {
	r, err := cat.Lookup(name)
	if err != nil {
		return Region{}, err
	}

	return describe(cat.Layout().Train(), r)
}

func describe(tr *train.Train, r cube.Region) (Region, error) {
	ex, err := domino.Extract(tr, r.Squares)
	if err != nil {
		return Region{}, fmt.Errorf("region %s: %w", r.Name, err)
	}

	return Region{
		Name:     r.Name,
		Side:     r.Side,
		Kind:     r.Kind,
		Squares:  r.Squares,
		Dominoes: ex,
		Counts:   NewCounts(domino.Tally(ex)),
	}, nil
}

// Members returns the catalog regions of group g.
func Members(cat *cube.Catalog, g Group) ([]cube.Region, error) {
	switch g {
	case GroupDots:
		return cat.Dots(), nil
	case GroupWhite:
		return cat.WhiteAreas(), nil
	case GroupAll:
		return cat.Regions(), nil
	default:
		return nil, fmt.Errorf("%q: %w", string(g), ErrUnknownGroup)
	}
}

// ForGroup aggregates group g and solves for its minimum set count and cuts.
func ForGroup(ctx context.Context, cat *cube.Catalog, g Group, opts ...domino.Option) (GroupSummary, error) {
	regions, err := Members(cat, g)
	if err != nil {
		return GroupSummary{}, err
	}
	names := make([]string, len(regions))
	squares := make([][]int, len(regions))
	for i, r := range regions {
		names[i] = r.Name
		squares[i] = r.Squares
	}

	ct, err := domino.Aggregate(ctx, cat.Layout().Train(), squares, opts...)
	if err != nil {
		return GroupSummary{}, fmt.Errorf("group %s: %w", g, err)
	}
	n, err := sets.MinSets(ct)
	if err != nil {
		return GroupSummary{}, fmt.Errorf("group %s: %w", g, err)
	}
	left, err := sets.Leftovers(n, ct)
	if err != nil {
		return GroupSummary{}, fmt.Errorf("group %s: %w", g, err)
	}
	cuts, err := sets.CutList(n, ct)
	if err != nil {
		return GroupSummary{}, fmt.Errorf("group %s: %w", g, err)
	}

	return GroupSummary{
		Group:     g,
		Regions:   names,
		Counts:    NewCounts(ct),
		MinSets:   n,
		Leftovers: left,
		Cuts:      cuts,
	}, nil
}

// Build reports every region and every group of cat.
func Build(ctx context.Context, cat *cube.Catalog, opts ...domino.Option) (Summary, error) {
	l := cat.Layout()
	tr := l.Train()
	s := Summary{
		Order:           l.Order(),
		SideLength:      l.SideLength(),
		TotalSquares:    l.TotalSquares(),
		Sides:           l.Sides(),
		FaceValueCounts: tr.FaceValueCounts(),
	}
	for _, r := range cat.Regions() {
		rr, err := describe(tr, r)
		if err != nil {
			return Summary{}, err
		}
		s.Regions = append(s.Regions, rr)
	}
	for _, g := range Groups() {
		gs, err := ForGroup(ctx, cat, g, opts...)
		if err != nil {
			return Summary{}, err
		}
		s.Groups = append(s.Groups, gs)
	}

	return s, nil
}

// Marshal serialises v as "json" (indented) or "yaml".
func Marshal(v any, format string) ([]byte, error) {
	switch format {
	case "json":
		return json.MarshalIndent(v, "", "  ")
	case "yaml":
		return yaml.Marshal(v)
	default:
		return nil, fmt.Errorf("Marshal(%q): %w", format, ErrUnknownFormat)
	}
}

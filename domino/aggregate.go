// SPDX-License-Identifier: MIT
package domino

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/metaphysics/train"
)

// Tally counts the dominoes of one extraction.
// Complexity: O(len(Full)+len(Half)).
func Tally(e Extraction) CountTable {
	var t CountTable
	for _, p := range e.Full {
		t.Full[p.Index()]++
	}
	for _, v := range e.Half {
		t.Half[v]++
	}

	return t
}

// Merge adds tables component-wise.
// Complexity: O(35·len(tables)).
func Merge(tables ...CountTable) CountTable {
	var sum CountTable
	for _, t := range tables {
		for i, c := range t.Full {
			sum.Full[i] += c
		}
		for v, c := range t.Half {
			sum.Half[v] += c
		}
	}

	return sum
}

// Aggregate extracts every region and returns the summed count table.
// Regions are independent: they are processed concurrently, at most
// Options.Workers at a time, and their tables are folded once all finish.
// Any extraction error, or ctx cancellation, aborts the whole aggregation.
// Complexity: O(Σ kᵢ log kᵢ) work.
func Aggregate(ctx context.Context, tr *train.Train, regions [][]int, opts ...Option) (CountTable, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}

	tables := make([]CountTable, len(regions))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(cfg.Workers)
	for i, squares := range regions {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ex, err := Extract(tr, squares)
			if err != nil {
				return fmt.Errorf("region %d: %w", i, err)
			}
			tables[i] = Tally(ex)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return CountTable{}, fmt.Errorf("Aggregate: %w", err)
	}

	return Merge(tables...), nil
}

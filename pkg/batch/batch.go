// Package batch scores choices concurrently with a bounded number of
// workers. Results are identical to the sequential functions in package
// process: scores are written by choice index and ordered afterwards
// with the same rules.
package batch

import (
	"context"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/standardbeagle/fuzzymatch/internal/debug"
	"github.com/standardbeagle/fuzzymatch/pkg/process"
)

// chunksPerWorker splits work finer than the worker count so that slow
// chunks do not leave other workers idle.
const chunksPerWorker = 4

// DefaultWorkers leaves one CPU free, with a minimum of one worker.
func DefaultWorkers() int {
	return max(1, runtime.NumCPU()-1)
}

// Extractor runs process-style extraction over large choice lists.
// It holds no per-call state and is safe for concurrent use.
type Extractor struct {
	workers   int
	processor process.Processor
	scorer    process.Scorer
}

// New creates an Extractor. A workers value below one uses
// DefaultWorkers; a nil scorer uses process.DefaultScorer.
func New(workers int, processor process.Processor, scorer process.Scorer) *Extractor {
	if workers < 1 {
		workers = DefaultWorkers()
	}
	if scorer == nil {
		scorer = process.DefaultScorer
	}
	return &Extractor{
		workers:   workers,
		processor: processor,
		scorer:    scorer,
	}
}

// Workers returns the concurrency limit.
func (e *Extractor) Workers() int {
	return e.workers
}

// Score scores every choice against query, in input order. It returns
// the context error if ctx is cancelled before all choices are scored.
func (e *Extractor) Score(ctx context.Context, query string, choices []string) ([]process.Match, error) {
	if len(choices) == 0 {
		return nil, ctx.Err()
	}

	processed := process.ProcessQuery(query, e.processor)
	matches := make([]process.Match, len(choices))

	chunk := chunkSize(len(choices), e.workers)
	debug.LogBatch("scoring %d choices in chunks of %d with %d workers\n", len(choices), chunk, e.workers)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for start := 0; start < len(choices); start += chunk {
		start := start
		end := min(start+chunk, len(choices))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := ctx.Err(); err != nil {
					return err
				}
				choice := choices[i]
				if e.processor != nil {
					choice = e.processor(choice)
				}
				matches[i] = process.Match{
					Choice: choices[i],
					Index:  i,
					Score:  e.scorer(processed, choice),
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		debug.LogBatch("scoring stopped: %v\n", err)
		return nil, err
	}
	return matches, nil
}

// ExtractWithoutOrder is the concurrent form of process.ExtractWithoutOrder.
func (e *Extractor) ExtractWithoutOrder(ctx context.Context, query string, choices []string, cutoff int) ([]process.Match, error) {
	matches, err := e.Score(ctx, query, choices)
	if err != nil {
		return nil, err
	}
	return process.Filter(matches, cutoff), nil
}

// ExtractOne is the concurrent form of process.ExtractOne.
func (e *Extractor) ExtractOne(ctx context.Context, query string, choices []string, cutoff int) (process.Match, bool, error) {
	matches, err := e.Score(ctx, query, choices)
	if err != nil {
		return process.Match{}, false, err
	}
	best, ok := process.Best(matches, cutoff)
	return best, ok, nil
}

// Extract is the concurrent form of process.Extract.
func (e *Extractor) Extract(ctx context.Context, query string, choices []string, limit int) ([]process.Match, error) {
	if limit <= 0 {
		return []process.Match{}, nil
	}
	matches, err := e.Score(ctx, query, choices)
	if err != nil {
		return nil, err
	}
	return process.Top(matches, limit), nil
}

// ExtractBests is the concurrent form of process.ExtractBests.
func (e *Extractor) ExtractBests(ctx context.Context, query string, choices []string, cutoff, limit int) ([]process.Match, error) {
	if limit <= 0 {
		return []process.Match{}, nil
	}
	matches, err := e.ExtractWithoutOrder(ctx, query, choices, cutoff)
	if err != nil {
		return nil, err
	}
	return process.Top(matches, limit), nil
}

// ExtractEach runs ExtractOne for every query against the same choices,
// one query per worker. The returned flags report, per query, whether a
// match above cutoff was found.
func (e *Extractor) ExtractEach(ctx context.Context, queries, choices []string, cutoff int) ([]process.Match, []bool, error) {
	best := make([]process.Match, len(queries))
	found := make([]bool, len(queries))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workers)

	for qi, query := range queries {
		qi, query := qi, query
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			processed := process.ProcessQuery(query, e.processor)
			for i, choice := range choices {
				if i%64 == 0 {
					if err := ctx.Err(); err != nil {
						return err
					}
				}
				if e.processor != nil {
					choice = e.processor(choice)
				}
				score := e.scorer(processed, choice)
				if score > cutoff && (!found[qi] || score > best[qi].Score) {
					best[qi] = process.Match{Choice: choices[i], Index: i, Score: score}
					found[qi] = true
				}
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, nil, err
	}
	return best, found, nil
}

func chunkSize(n, workers int) int {
	chunks := workers * chunksPerWorker
	return max(1, (n+chunks-1)/chunks)
}

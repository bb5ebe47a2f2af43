// internal/pipeline/pipeline.go
package pipeline

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"primerscan/internal/engine"
	"primerscan/internal/errs"
	"primerscan/internal/metrics"
	"primerscan/internal/runutil"
	"primerscan/internal/sequence"
)

// Config controls one dispatch.
type Config struct {
	Threads int                // worker goroutines (0 = all CPUs)
	Metrics *metrics.Collector // optional
}

// Result holds the hits of one contig, ordered by primer submission order
// and then by start offset, plus the units that failed.
type Result struct {
	Hits     []engine.Hit
	Failures []*errs.UnitError
}

type outcome struct {
	hits []engine.Hit
	err  error
}

// Dispatch runs m once per primer against contig on a pool of at most
// cfg.Threads workers and blocks until every submitted unit is finished.
// prog (may be nil) gets Start(len(primers)) and one Done per unit.
//
// A failing or panicking unit is recorded in Result.Failures and never
// stops its siblings. The only returned error is context cancellation.
func Dispatch(
	ctx context.Context,
	cfg Config,
	contig sequence.Record,
	primers []sequence.Record,
	m Matcher,
	prog Progress,
) (Result, error) {
	if prog != nil {
		prog.Start(len(primers))
	}
	if len(primers) == 0 {
		return Result{}, nil
	}
	threads := runutil.EffectiveThreads(cfg.Threads, len(primers))

	// One slot per primer; each index is written by exactly one worker.
	slots := make([]outcome, len(primers))
	jobs := make(chan int, threads*2)

	var wg sync.WaitGroup
	wg.Add(threads)
	for w := 0; w < threads; w++ {
		go func() {
			defer wg.Done()
			for i := range jobs {
				began := time.Now()
				hits, err := runUnit(m, contig, primers[i])
				slots[i] = outcome{hits: hits, err: err}
				cfg.Metrics.ObserveUnit(time.Since(began), len(hits), err == nil)
				if prog != nil {
					prog.Done()
				}
			}
		}()
	}

	// Feed work
feed:
	for i := range primers {
		select {
		case <-ctx.Done():
			break feed
		case jobs <- i:
		}
	}
	close(jobs)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return Result{}, err
	}

	var res Result
	n := 0
	for _, s := range slots {
		n += len(s.hits)
	}
	res.Hits = make([]engine.Hit, 0, n)
	for i, s := range slots {
		if s.err != nil {
			res.Failures = append(res.Failures, &errs.UnitError{
				Contig: contig.Name, Primer: primers[i].Name, Index: i, Err: s.err,
			})
			continue
		}
		res.Hits = append(res.Hits, s.hits...)
	}
	return res, nil
}

// runUnit converts a panic inside the matcher into a unit error.
func runUnit(m Matcher, contig, primer sequence.Record) (hits []engine.Hit, err error) {
	defer func() {
		if r := recover(); r != nil {
			hits, err = nil, fmt.Errorf("panic: %v", r)
		}
	}()
	hits, err = m.MatchAndBuild(contig, primer)
	if err != nil {
		return nil, err
	}
	slices.SortStableFunc(hits, func(a, b engine.Hit) int { return cmp.Compare(a.Start, b.Start) })
	return hits, nil
}

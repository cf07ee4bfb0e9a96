// internal/pipeline/pipeline.go
package pipeline

import (
	"context"
	"fmt"
	"sync"

	"seqstats/internal/normalize"
	"seqstats/internal/perr"
	"seqstats/internal/stats"
)

// Analyzer is the minimal capability the pipeline needs. *memo.Analyzer
// satisfies it, as does any fake in tests.
type Analyzer interface {
	Analyze(seq string, window int) *stats.Metrics
}

// AnalyzerFunc adapts a plain function such as stats.Analyze.
type AnalyzerFunc func(seq string, window int) *stats.Metrics

func (f AnalyzerFunc) Analyze(seq string, window int) *stats.Metrics { return f(seq, window) }

// Config controls the worker pool.
type Config struct {
	Threads int // number of worker goroutines (>=1)
	Window  int // sliding-window GC width passed to the analyzer
}

// Job is one raw input to normalize and analyze.
type Job struct {
	ID     string
	Source string // input path, "-" for stdin, empty for inline sequences
	Raw    []byte
}

// Result is the outcome of one Job. Err is non-nil (perr.ErrEmptySequence)
// when nothing survived normalization; Metrics is nil in that case.
type Result struct {
	Index   int
	Job     Job
	Clean   normalize.Result
	Metrics *stats.Metrics
	Err     error
}

// Run normalizes and analyzes jobs on cfg.Threads workers and calls visit for
// every result in job order. It returns the first error returned by visit, or
// the context error if ctx is cancelled first.
func Run(
	ctx context.Context,
	cfg Config,
	jobs []Job,
	an Analyzer,
	visit func(Result) error,
) error {
	if cfg.Threads < 1 {
		cfg.Threads = 1
	}
	if cfg.Threads > len(jobs) && len(jobs) > 0 {
		cfg.Threads = len(jobs)
	}

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	in := make(chan int, cfg.Threads*2)
	results := make(chan Result, cfg.Threads*2)

	// Workers
	var wg sync.WaitGroup
	wg.Add(cfg.Threads)
	for w := 0; w < cfg.Threads; w++ {
		go func() {
			defer wg.Done()
			for {
				select {
				case <-ctx.Done():
					return
				case i, ok := <-in:
					if !ok {
						return
					}
					r := process(i, jobs[i], cfg.Window, an)
					select {
					case results <- r:
					case <-ctx.Done():
						return
					}
				}
			}
		}()
	}

	// Collector: reorder by index so output is independent of scheduling.
	var (
		cerr error
		cwg  sync.WaitGroup
	)
	cwg.Add(1)
	go func() {
		defer cwg.Done()
		pending := make(map[int]Result)
		next := 0
		for r := range results {
			if cerr != nil {
				continue
			}
			pending[r.Index] = r
			for {
				p, ok := pending[next]
				if !ok {
					break
				}
				delete(pending, next)
				next++
				if err := visit(p); err != nil {
					cerr = err
					cancel()
					break
				}
			}
		}
	}()

	// Feed work
feed:
	for i := range jobs {
		select {
		case <-ctx.Done():
			break feed
		case in <- i:
		}
	}

	close(in)
	wg.Wait()
	close(results)
	cwg.Wait()

	if cerr != nil {
		return cerr
	}
	return ctx.Err()
}

func process(i int, j Job, window int, an Analyzer) Result {
	clean := normalize.Report(string(j.Raw))
	r := Result{Index: i, Job: j, Clean: clean}
	if clean.Sequence == "" {
		r.Err = fmt.Errorf("%s: %w", j.ID, perr.ErrEmptySequence)
		return r
	}
	r.Metrics = an.Analyze(clean.Sequence, window)
	return r
}

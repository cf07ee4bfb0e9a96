// Package cmdutil glues the pipeline to a front end's visitor and sink.
package cmdutil

import (
	"context"

	"seqstats/internal/pipeline"
)

// Tally counts what RunStream did with the pipeline's results.
type Tally struct {
	Kept    int // visited and sent
	Skipped int // rejected by the visitor
}

// RunStream runs the pipeline, maps every result through visit and hands
// kept outputs to send in job order. The first visit or send error stops
// the run and is returned.
func RunStream[T any](
	ctx context.Context,
	cfg pipeline.Config,
	jobs []pipeline.Job,
	an pipeline.Analyzer,
	visit func(pipeline.Result) (bool, T, error),
	send func(T) error,
) (Tally, error) {
	var t Tally
	err := pipeline.Run(ctx, cfg, jobs, an, func(r pipeline.Result) error {
		keep, out, err := visit(r)
		if err != nil {
			return err
		}
		if !keep {
			t.Skipped++
			return nil
		}
		if err := send(out); err != nil {
			return err
		}
		t.Kept++
		return nil
	})
	return t, err
}

// internal/appcore/core.go
package appcore

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"seqstats/internal/cmdutil"
	"seqstats/internal/logger"
	"seqstats/internal/memo"
	"seqstats/internal/pipeline"
	"seqstats/internal/runutil"
	"seqstats/internal/writers"
)

// Exit codes.
const (
	ExitOK        = 0
	ExitEmpty     = 1 // a sequence was empty after cleaning
	ExitUsage     = 2
	ExitOutput    = 3
	ExitCancelled = 130
)

var errWriterStopped = errors.New("output writer stopped")

type Options struct {
	Window  int
	Threads int
	Cache   int // 0 disables memoization
}

type VisitorFunc[T any] func(pipeline.Result) (keep bool, out T, err error)

type WriterFactory[T any] interface {
	Start(out io.Writer, bufSize int) (chan<- T, <-chan error)
}

// Run analyzes jobs and streams the visitor's outputs into the writer.
// Empty sequences are reported on stderr and turn the exit code into
// ExitEmpty once everything else has been written.
func Run[T any](
	parent context.Context,
	stdout, stderr io.Writer,
	log *logger.Logger,
	o Options,
	jobs []pipeline.Job,
	visit VisitorFunc[T],
	wf WriterFactory[T],
) int {
	outw := bufio.NewWriter(stdout)

	thr := runutil.EffectiveThreads(o.Threads, len(jobs))

	an := memo.Disabled()
	if o.Cache > 0 {
		an = memo.New(o.Cache)
	}

	inCh, writeErr := wf.Start(outw, thr*4)

	// A writer may stop early (e.g. a closed pipe); relay its result so
	// senders never block on a consumer that is gone.
	werrCh := make(chan error, 1)
	writerDone := make(chan struct{})
	go func() {
		werrCh <- <-writeErr
		close(writerDone)
	}()

	ctx, cancel := context.WithCancel(parent)
	defer cancel()

	empty := 0
	tally, runErr := cmdutil.RunStream[T](
		ctx,
		pipeline.Config{Threads: thr, Window: o.Window},
		jobs,
		an,
		func(r pipeline.Result) (bool, T, error) {
			if r.Err != nil {
				empty++
				fmt.Fprintln(stderr, "error:", r.Err)
				var zero T
				return false, zero, nil
			}
			return visit(r)
		},
		func(x T) error {
			select {
			case inCh <- x:
				return nil
			case <-writerDone:
				return errWriterStopped
			case <-ctx.Done():
				return ctx.Err()
			}
		},
	)

	close(inCh)

	if an != nil {
		st := an.Stats()
		log.Debug().Int64("hits", st.Hits).Int64("misses", st.Misses).Int("size", st.Size).Msg("analysis cache")
	}
	log.Debug().Int("reports", tally.Kept).Int("skipped", tally.Skipped).Int("empty", empty).Int("threads", thr).Msg("run finished")

	if werr := <-werrCh; writers.IsBrokenPipe(werr) {
		return ExitOK
	} else if werr != nil {
		fmt.Fprintln(stderr, werr)
		return ExitOutput
	}
	if e := outw.Flush(); writers.IsBrokenPipe(e) {
		return ExitOK
	} else if e != nil {
		fmt.Fprintln(stderr, e)
		return ExitOutput
	}

	if runErr != nil {
		if errors.Is(runErr, context.Canceled) {
			return ExitCancelled
		}
		fmt.Fprintln(stderr, runErr)
		return ExitOutput
	}
	if empty > 0 {
		return ExitEmpty
	}
	return ExitOK
}

package pipeline

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"testing"

	"seqstats/internal/perr"
	"seqstats/internal/stats"
)

// Compile-time check: the engine entry point satisfies the contract.
var _ Analyzer = AnalyzerFunc(stats.Analyze)

type countingAnalyzer struct{ n atomic.Int64 }

func (c *countingAnalyzer) Analyze(seq string, window int) *stats.Metrics {
	c.n.Add(1)
	return stats.Analyze(seq, window)
}

func makeJobs(n int) []Job {
	jobs := make([]Job, n)
	for i := range jobs {
		jobs[i] = Job{ID: fmt.Sprintf("r%d", i), Raw: []byte(fmt.Sprintf(">r%d\nACGT%s\n", i, "GGCC"[:i%4]))}
	}
	return jobs
}

func TestRun_OrderedAcrossThreads(t *testing.T) {
	jobs := makeJobs(50)
	for _, threads := range []int{1, 4, 16} {
		var got []string
		an := &countingAnalyzer{}
		err := Run(context.Background(), Config{Threads: threads, Window: 2}, jobs, an, func(r Result) error {
			if r.Err != nil {
				t.Fatalf("unexpected err: %v", r.Err)
			}
			got = append(got, r.Job.ID)
			if r.Metrics.Window.Width != 2 {
				t.Fatalf("window not forwarded")
			}
			return nil
		})
		if err != nil {
			t.Fatalf("threads=%d: %v", threads, err)
		}
		if len(got) != len(jobs) || an.n.Load() != int64(len(jobs)) {
			t.Fatalf("threads=%d: visited %d, analyzed %d", threads, len(got), an.n.Load())
		}
		for i, id := range got {
			if id != jobs[i].ID {
				t.Fatalf("threads=%d: out of order at %d: %s", threads, i, id)
			}
		}
	}
}

func TestRun_EmptySequenceIsPerJob(t *testing.T) {
	jobs := []Job{
		{ID: "ok", Raw: []byte("ACGT")},
		{ID: "junk", Raw: []byte("1234 !!")},
	}
	var res []Result
	err := Run(context.Background(), Config{Threads: 2}, jobs, AnalyzerFunc(stats.Analyze), func(r Result) error {
		res = append(res, r)
		return nil
	})
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	if res[0].Err != nil || res[0].Metrics.Length != 4 {
		t.Fatalf("first job: %+v", res[0])
	}
	if !errors.Is(res[1].Err, perr.ErrEmptySequence) || res[1].Metrics != nil {
		t.Fatalf("second job should be empty: %+v", res[1])
	}
	if res[1].Clean.Dropped != 6 {
		t.Fatalf("dropped = %d", res[1].Clean.Dropped)
	}
}

func TestRun_VisitErrorStops(t *testing.T) {
	stop := errors.New("stop")
	n := 0
	err := Run(context.Background(), Config{Threads: 3}, makeJobs(40), AnalyzerFunc(stats.Analyze), func(Result) error {
		n++
		if n == 5 {
			return stop
		}
		return nil
	})
	if !errors.Is(err, stop) || n != 5 {
		t.Fatalf("err=%v n=%d", err, n)
	}
}

func TestRun_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err := Run(ctx, Config{Threads: 2}, makeJobs(10), AnalyzerFunc(stats.Analyze), func(Result) error { return nil })
	if !errors.Is(err, context.Canceled) {
		t.Fatalf("want context.Canceled, got %v", err)
	}
}

func TestRun_NoJobs(t *testing.T) {
	if err := Run(context.Background(), Config{}, nil, AnalyzerFunc(stats.Analyze), func(Result) error {
		t.Fatal("visit called")
		return nil
	}); err != nil {
		t.Fatalf("err: %v", err)
	}
}

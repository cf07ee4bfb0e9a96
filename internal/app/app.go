// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"seqstats/internal/appcore"
	"seqstats/internal/cli"
	"seqstats/internal/clibase"
	"seqstats/internal/fasta"
	"seqstats/internal/logger"
	"seqstats/internal/output"
	"seqstats/internal/pipeline"
	"seqstats/internal/version"
	"seqstats/internal/visitors"
	"seqstats/internal/writers"
)

const name = "seqstats"

// InlineID names a sequence given with --seq.
const InlineID = "inline"

// flushOr flushes w and maps the outcome onto an exit code.
func flushOr(w *bufio.Writer, stderr io.Writer, code int) int {
	if e := w.Flush(); writers.IsBrokenPipe(e) {
		return appcore.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitOutput
	}
	return code
}

func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet(name)
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		_, _ = cli.ParseArgs(fs, []string{"-h"})
		fs.SetOutput(outw)
		fs.Usage()
		return flushOr(outw, stderr, appcore.ExitOK)
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flushOr(outw, stderr, appcore.ExitOK)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			cli.PrintExamples(outw, name)
			return flushOr(outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flushOr(outw, stderr, appcore.ExitUsage)
	}

	if opts.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flushOr(outw, stderr, appcore.ExitOK)
	}

	level := opts.LogLevel
	if opts.Quiet {
		level = "error"
	}
	log := logger.New(logger.Options{Level: level, Writer: stderr, NoColor: true, Component: "cli"})

	jobs, err := loadJobs(parent, opts)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return appcore.ExitCancelled
		}
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}
	log.Debug().Int("jobs", len(jobs)).Int("window", opts.Window).Str("output", opts.Output).Msg("starting analysis")

	writer := appcore.NewReportWriterFactory(opts.Output, opts.Header, opts.Wrap)
	visit := visitors.Reporter{
		Log:        &log,
		Window:     opts.Window,
		SkewWindow: opts.SkewWindow,
		MaxPoints:  opts.MaxPoints,
		NeedSkew:   writer.NeedSkew(),
	}
	return appcore.Run[output.Report](parent, stdout, stderr, &log,
		appcore.Options{Window: opts.Window, Threads: opts.Threads, Cache: opts.Cache},
		jobs, visit.Visit, writer)
}

// loadJobs turns the inline sequence or the input files into jobs.
func loadJobs(ctx context.Context, opts cli.Options) ([]pipeline.Job, error) {
	if opts.Seq != "" {
		return []pipeline.Job{{ID: InlineID, Raw: []byte(opts.Seq)}}, nil
	}
	var jobs []pipeline.Job
	for _, path := range opts.Files {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if opts.SplitRecords {
			recs, err := fasta.ReadRecords(ctx, path)
			if err != nil {
				return nil, err
			}
			for _, r := range recs {
				jobs = append(jobs, pipeline.Job{ID: r.ID, Source: path, Raw: r.Seq})
			}
			continue
		}
		rec, err := fasta.ReadAll(path)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, pipeline.Job{ID: rec.ID, Source: path, Raw: rec.Seq})
	}
	return jobs, nil
}

func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}

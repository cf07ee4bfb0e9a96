// Package serverapp is the seqstats-server entry point: flags, config
// loading, the optional report archive and the HTTP server lifecycle.
package serverapp

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"seqstats/internal/appcore"
	"seqstats/internal/clibase"
	"seqstats/internal/cliutil"
	"seqstats/internal/config"
	"seqstats/internal/logger"
	"seqstats/internal/server"
	"seqstats/internal/store"
	"seqstats/internal/version"
	"seqstats/internal/writers"
)

const name = "seqstats-server"

// Options holds the server flags. Zero values leave the configuration
// untouched.
type Options struct {
	clibase.Common

	Config    string
	Host      string
	Port      int
	Store     string
	LogFormat string
}

// NewFlagSet returns the server FlagSet with custom usage.
func NewFlagSet(o *Options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.Register(fs, &o.Common, "info")
	fs.StringVar(&o.Config, "config", "", "YAML configuration file")
	fs.StringVar(&o.Config, "c", "", "alias of --config")
	fs.StringVar(&o.Host, "host", "", "listen host (overrides config)")
	fs.IntVar(&o.Port, "port", 0, "listen port (overrides config)")
	fs.StringVar(&o.Store, "store", "", "SQLite report archive path (overrides config)")
	fs.StringVar(&o.LogFormat, "log-format", "", "json | console (overrides config)")

	clibase.UsageCommon(fs, name, "DNA sequence statistics over HTTP", func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "Usage: %s [options]\n", name)
		fmt.Fprintln(out, "\nServer:")
		fmt.Fprintln(out, "  -c, --config string         YAML configuration file")
		fmt.Fprintln(out, "      --host string           Listen host (overrides config)")
		fmt.Fprintln(out, "      --port int              Listen port (overrides config)")
		fmt.Fprintln(out, "      --store string          SQLite report archive path (overrides config)")
		fmt.Fprintln(out, "      --log-format string     json | console (overrides config)")
		fmt.Fprintf(out, "\nEnvironment: %s* variables override the file (e.g. %sPORT).\n", config.EnvPrefix, config.EnvPrefix)
	})
	return fs
}

// ParseArgs parses argv. Positional arguments are rejected.
func ParseArgs(fs *flag.FlagSet, o *Options, argv []string) (set map[string]bool, err error) {
	flagArgs, pos := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return nil, err
	}
	if o.Examples {
		return nil, clibase.ErrPrintedAndExitOK
	}
	if o.Version {
		return nil, nil
	}
	if len(pos) > 0 {
		return nil, fmt.Errorf("unexpected argument %q", pos[0])
	}
	if err := clibase.Validate(&o.Common); err != nil {
		return nil, err
	}
	if o.Port < 0 {
		return nil, errors.New("--port must be ≥ 0")
	}
	set = map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })
	return set, nil
}

// Resolve loads the configuration file and environment, then applies the
// flags that were given explicitly.
func Resolve(o Options, set map[string]bool) (*config.Config, error) {
	cfg, err := config.Load(o.Config)
	if err != nil {
		return nil, err
	}
	if o.Host != "" {
		cfg.Server.Host = o.Host
	}
	if o.Port > 0 {
		cfg.Server.Port = o.Port
	}
	if o.Store != "" {
		cfg.Store.Path = o.Store
	}
	if o.LogFormat != "" {
		cfg.Log.Format = o.LogFormat
	}
	if set["log-level"] {
		cfg.Log.Level = o.LogLevel
	}
	if o.Quiet {
		cfg.Log.Level = "error"
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}
	return cfg, nil
}

var examples = []clibase.Example{
	{Doc: "listen on port 8080 with defaults", Cmd: "{name} --port 8080"},
	{Doc: "config file plus a report archive", Cmd: "{name} -c seqstats.yaml --store reports.db"},
	{Doc: "human-readable logs", Cmd: config.EnvPrefix + "LOG_FORMAT=console {name}"},
	{Doc: "analyze a sequence", Cmd: `curl -s localhost:8080/v1/analyze -d '{"sequence":"ATGCGCTAGC","window":4}'`},
	{Doc: "download the CSV report", Cmd: `curl -s localhost:8080/v1/export/csv -d '{"sequence":"ATGC"}' -o dna_stats_report.csv`},
}

func printExamples(out io.Writer) { clibase.PrintExamples(out, name, examples) }

func RunContext(ctx context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	var o Options
	fs := NewFlagSet(&o)
	fs.SetOutput(io.Discard)

	set, err := ParseArgs(fs, &o, argv)
	if err != nil {
		switch {
		case errors.Is(err, flag.ErrHelp):
			fs.SetOutput(outw)
			fs.Usage()
			return flush(outw, stderr, appcore.ExitOK)
		case errors.Is(err, clibase.ErrPrintedAndExitOK):
			printExamples(outw)
			return flush(outw, stderr, appcore.ExitOK)
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(outw)
		fs.Usage()
		return flush(outw, stderr, appcore.ExitUsage)
	}
	if o.Version {
		_, _ = fmt.Fprintf(outw, "%s version %s\n", name, version.Version)
		return flush(outw, stderr, appcore.ExitOK)
	}

	cfg, err := Resolve(o, set)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return appcore.ExitUsage
	}

	log := logger.New(logger.Options{
		Level:     cfg.Log.Level,
		Format:    cfg.Log.Format,
		Writer:    stderr,
		Service:   name,
		NoColor:   stderr != os.Stderr,
		Timestamp: true,
	})

	var reports server.Reports
	if cfg.Store.Path != "" {
		st, err := store.Open(context.WithoutCancel(ctx), cfg.Store.Path, store.WithLogger(log))
		if err != nil {
			log.Error().Err(err).Str("path", cfg.Store.Path).Msg("store open failed")
			return appcore.ExitOutput
		}
		defer func() {
			if err := st.Close(); err != nil {
				log.Error().Err(err).Msg("failed to close store")
			}
		}()
		reports = st
		log.Info().Str("path", cfg.Store.Path).Msg("report archive enabled")
	}

	srv := server.New(*cfg, log, reports)
	if err := srv.Run(ctx); err != nil {
		log.Error().Err(err).Msg("http server stopped")
		return appcore.ExitOutput
	}
	return appcore.ExitOK
}

func flush(w *bufio.Writer, stderr io.Writer, code int) int {
	if e := w.Flush(); writers.IsBrokenPipe(e) {
		return appcore.ExitOK
	} else if e != nil {
		_, _ = fmt.Fprintln(stderr, e)
		return appcore.ExitOutput
	}
	return code
}

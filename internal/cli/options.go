// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"seqstats/internal/clibase"
	"seqstats/internal/cliutil"
	"seqstats/internal/output"
)

// Options holds all seqstats flags and arguments.
type Options struct {
	clibase.Common

	// Input
	Seq          string   // inline sequence; conflicts with files
	Files        []string // FASTA/plain files, "-" for stdin
	SplitRecords bool

	// Analysis
	Window     int
	SkewWindow int
	Threads    int
	Cache      int

	// Output
	Output    string
	Wrap      int
	MaxPoints int
	Header    bool // true unless --no-header
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	clibase.UsageCommon(fs, name, "DNA sequence statistics", func(out io.Writer, def func(string) string) {
		fmt.Fprintf(out, "Usage: %s [options] [file.fa[.gz] ... | -]\n", name)

		fmt.Fprintln(out, "\nInput:")
		fmt.Fprintln(out, "  -S, --seq string            Analyze an inline sequence instead of files")
		fmt.Fprintf(out, "      --split-records         Analyze each FASTA record separately [%s]\n", def("split-records"))

		fmt.Fprintln(out, "\nAnalysis:")
		fmt.Fprintf(out, "  -w, --window int            Sliding-window GC width in bp (0=off) [%s]\n", def("window"))
		fmt.Fprintf(out, "      --skew-window int       GC-skew profile window in bp [%s]\n", def("skew-window"))
		fmt.Fprintf(out, "  -t, --threads int           Worker threads (0=all CPUs) [%s]\n", def("threads"))
		fmt.Fprintf(out, "      --cache int             Memoize up to N analyses (0=off) [%s]\n", def("cache"))

		fmt.Fprintln(out, "\nOutput:")
		fmt.Fprintf(out, "  -o, --output string         %s [%s]\n", strings.Join(output.Formats, " | "), def("output"))
		fmt.Fprintf(out, "      --wrap int              FASTA line width (0=single line) [%s]\n", def("wrap"))
		fmt.Fprintf(out, "      --max-points int        Downsample skew output to at most N points (0=all) [%s]\n", def("max-points"))
		fmt.Fprintf(out, "      --no-header             Suppress table header lines [%s]\n", def("no-header"))
	})
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
// Positionals may be interleaved with flags.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	clibase.Register(fs, &opt.Common, "warn")

	fs.StringVar(&opt.Seq, "seq", "", "inline sequence")
	fs.StringVar(&opt.Seq, "S", "", "alias of --seq")
	fs.BoolVar(&opt.SplitRecords, "split-records", false, "analyze each FASTA record separately [false]")

	fs.IntVar(&opt.Window, "window", 0, "sliding-window GC width (0=off) [0]")
	fs.IntVar(&opt.Window, "w", 0, "alias of --window")
	fs.IntVar(&opt.SkewWindow, "skew-window", 201, "GC-skew profile window [201]")
	fs.IntVar(&opt.Threads, "threads", 0, "worker threads (0=all CPUs) [0]")
	fs.IntVar(&opt.Threads, "t", 0, "alias of --threads")
	fs.IntVar(&opt.Cache, "cache", 0, "memoize up to N analyses (0=off) [0]")

	fs.StringVar(&opt.Output, "output", output.FormatText, "output format [text]")
	fs.StringVar(&opt.Output, "o", output.FormatText, "alias of --output")
	fs.IntVar(&opt.Wrap, "wrap", 60, "FASTA line width (0=single line) [60]")
	fs.IntVar(&opt.MaxPoints, "max-points", 0, "downsample skew output (0=all) [0]")
	noHeader := false
	fs.BoolVar(&noHeader, "no-header", false, "suppress table header lines [false]")

	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	flagArgs, posArgs := cliutil.SplitFlagsAndPositionals(fs, argv)
	if err := fs.Parse(flagArgs); err != nil {
		return opt, err
	}
	if help {
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}
	if opt.Examples {
		return opt, clibase.ErrPrintedAndExitOK
	}
	opt.Header = !noHeader

	files, err := cliutil.ExpandPositionals(posArgs)
	if err != nil {
		return opt, err
	}
	opt.Files = files
	return opt, Validate(&opt)
}

// Validate applies the seqstats invariants.
func Validate(o *Options) error {
	if err := clibase.Validate(&o.Common); err != nil {
		return err
	}
	switch {
	case o.Seq != "" && len(o.Files) > 0:
		return errors.New("--seq conflicts with input files")
	case o.Seq == "" && len(o.Files) == 0:
		return errors.New("provide --seq or at least one input file ('-' for stdin)")
	case o.Seq != "" && o.SplitRecords:
		return errors.New("--split-records applies to input files only")
	}
	for _, nn := range []struct {
		name string
		v    int
	}{
		{"window", o.Window}, {"skew-window", o.SkewWindow}, {"threads", o.Threads},
		{"cache", o.Cache}, {"wrap", o.Wrap}, {"max-points", o.MaxPoints},
	} {
		if err := clibase.NonNegative(nn.name, nn.v); err != nil {
			return err
		}
	}
	for _, f := range output.Formats {
		if o.Output == f {
			return nil
		}
	}
	return fmt.Errorf("invalid --output %q", o.Output)
}

// Examples is the quickstart shown by --examples.
var Examples = []clibase.Example{
	{Doc: "summary of an inline sequence", Cmd: "{name} -S ATGCGCTAGC"},
	{Doc: "100 bp sliding-window GC over a gzipped genome", Cmd: "{name} -w 100 genome.fa.gz"},
	{Doc: "one JSON line per FASTA record", Cmd: "{name} --split-records -o jsonl contigs.fa"},
	{Doc: "every FASTA file in a directory", Cmd: "{name} -o json assemblies/"},
	{Doc: "downloadable CSV report", Cmd: "{name} -o csv genome.fa > dna_stats_report.csv"},
	{Doc: "GC-skew profile from stdin, charting-sized", Cmd: "cat reads.txt | {name} -o skew --skew-window 501 --max-points 2000 -"},
}

// PrintExamples writes the quickstart shown by --examples.
func PrintExamples(out io.Writer, name string) { clibase.PrintExamples(out, name, Examples) }

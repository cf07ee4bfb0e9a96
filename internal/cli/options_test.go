// internal/cli/options_test.go
package cli

import (
	"bytes"
	"errors"
	"flag"
	"strings"
	"testing"

	"seqstats/internal/clibase"
)

func newFS() *flag.FlagSet { return flag.NewFlagSet("test", flag.ContinueOnError) }

func mustParse(t *testing.T, args ...string) Options {
	t.Helper()
	opts, err := ParseArgs(newFS(), args)
	if err != nil {
		t.Fatalf("parse err: %v", err)
	}
	return opts
}

func TestDefaults(t *testing.T) {
	o := mustParse(t, "-S", "ACGT")
	if o.Window != 0 || o.SkewWindow != 201 || o.Output != "text" || o.Wrap != 60 || !o.Header || o.LogLevel != "warn" {
		t.Fatalf("defaults: %+v", o)
	}
}

func TestInterleavedPositionals(t *testing.T) {
	o := mustParse(t, "a.fa", "-w", "50", "-", "--no-header", "--", "-b.fa")
	if len(o.Files) != 3 || o.Files[0] != "a.fa" || o.Files[1] != "-" || o.Files[2] != "-b.fa" {
		t.Fatalf("files = %v", o.Files)
	}
	if o.Window != 50 || o.Header {
		t.Fatalf("flags: %+v", o)
	}
}

func TestErrors(t *testing.T) {
	cases := []struct {
		name string
		args []string
		want string
	}{
		{"no input", []string{"-w", "5"}, "provide --seq"},
		{"conflict", []string{"-S", "AC", "x.fa"}, "conflicts"},
		{"split inline", []string{"-S", "AC", "--split-records"}, "--split-records"},
		{"neg window", []string{"-S", "AC", "-w", "-1"}, "--window must be"},
		{"bad output", []string{"-S", "AC", "-o", "xml"}, "invalid --output"},
		{"bad level", []string{"-S", "AC", "--log-level", "loud"}, "invalid --log-level"},
		{"no glob match", []string{"/nonexistent/*.fa"}, "no input matched"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseArgs(newFS(), tc.args)
			if err == nil || !strings.Contains(err.Error(), tc.want) {
				t.Fatalf("want error containing %q, got %v", tc.want, err)
			}
		})
	}
}

func TestHelpVersionExamples(t *testing.T) {
	if _, err := ParseArgs(newFS(), []string{"-h"}); !errors.Is(err, flag.ErrHelp) {
		t.Fatalf("-h: %v", err)
	}
	if o, err := ParseArgs(newFS(), []string{"--version"}); err != nil || !o.Version {
		t.Fatalf("--version: %v %+v", err, o)
	}
	if _, err := ParseArgs(newFS(), []string{"--examples"}); !errors.Is(err, clibase.ErrPrintedAndExitOK) {
		t.Fatalf("--examples: %v", err)
	}
}

func TestUsageMentionsEveryFormat(t *testing.T) {
	fs := NewFlagSet("seqstats")
	var buf bytes.Buffer
	fs.SetOutput(&buf)
	_, _ = ParseArgs(fs, []string{"-h"})
	fs.Usage()
	out := buf.String()
	for _, want := range []string{"seqstats – DNA sequence statistics", "--skew-window int", "jsonl", "--log-level"} {
		if !strings.Contains(out, want) {
			t.Fatalf("usage missing %q:\n%s", want, out)
		}
	}
}

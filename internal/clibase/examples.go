package clibase

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// ErrPrintedAndExitOK is returned by ParseArgs when the caller requested examples.
// Apps should catch this and exit 0 after printing examples.
var ErrPrintedAndExitOK = errors.New("examples requested")

// Example is one quickstart entry: what it does and the command line.
type Example struct {
	Doc, Cmd string
}

// PrintExamples writes a quickstart list for name followed by a pointer to
// --help. "{name}" in Cmd is replaced by the tool name.
func PrintExamples(out io.Writer, name string, examples []Example) {
	if out == nil {
		return
	}
	_, _ = fmt.Fprintf(out, "%s quickstart\n", name)
	for _, ex := range examples {
		_, _ = fmt.Fprintf(out, "\n  # %s\n  %s\n", ex.Doc, strings.ReplaceAll(ex.Cmd, "{name}", name))
	}
	_, _ = fmt.Fprintln(out, "\nTip: run with --help for all flags.")
}

// internal/writers/registry.go
package writers

import (
	"fmt"
	"io"
	"sort"

	"seqstats/internal/output"
)

// Options carries the presentation knobs shared by all formats.
type Options struct {
	Header bool // table header lines (TSV formats)
	Wrap   int  // FASTA line width; 0 = single line
}

// Func writes a batch of reports in one format.
type Func func(w io.Writer, list []output.Report, opt Options) error

// Writer registry (format → handler). Register in init() blocks.
var Writers = map[string]Func{}

// Register is idempotent last-wins.
func Register(format string, fn Func) { Writers[format] = fn }

// Known lists registered formats, sorted.
func Known() []string {
	out := make([]string, 0, len(Writers))
	for k := range Writers {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// Write dispatches to the writer registered for format.
func Write(format string, w io.Writer, list []output.Report, opt Options) error {
	fn, ok := Writers[format]
	if !ok {
		return fmt.Errorf("unknown report format %q (no writer registered)", format)
	}
	return fn(w, list, opt)
}

func init() {
	Register(output.FormatText, func(w io.Writer, list []output.Report, _ Options) error {
		return output.WriteText(w, list)
	})
	Register(output.FormatJSON, func(w io.Writer, list []output.Report, _ Options) error {
		return output.WriteJSON(w, list)
	})
	Register(output.FormatJSONL, writeJSONL)
	Register(output.FormatCSV, func(w io.Writer, list []output.Report, _ Options) error {
		return output.WriteCSVReports(w, list)
	})
	Register(output.FormatDinuc, func(w io.Writer, list []output.Report, opt Options) error {
		return output.WriteDinucTSV(w, list, opt.Header)
	})
	Register(output.FormatWindows, func(w io.Writer, list []output.Report, opt Options) error {
		return output.WriteWindowsTSV(w, list, opt.Header)
	})
	Register(output.FormatSkew, func(w io.Writer, list []output.Report, opt Options) error {
		return output.WriteSkewTSV(w, list, opt.Header)
	})
	Register(output.FormatFASTA, func(w io.Writer, list []output.Report, opt Options) error {
		return output.WriteFASTAReports(w, list, opt.Wrap)
	})
}

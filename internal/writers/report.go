package writers

import (
	"io"

	"seqstats/internal/output"
)

// StartReportWriter spins up a writer goroutine for reports. JSONL streams
// each report as it arrives; every other format buffers the batch and
// dispatches through the registry once the input channel is closed.
func StartReportWriter(out io.Writer, format string, opt Options, bufSize int) (chan<- output.Report, <-chan error) {
	if format == output.FormatJSONL {
		return StartJSONLWriter(out, bufSize)
	}
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan output.Report, bufSize)
	errCh := make(chan error, 1)

	go func() {
		var buf []output.Report
		for r := range in {
			buf = append(buf, r)
		}
		errCh <- Write(format, out, buf, opt)
	}()

	return in, errCh
}

package appcore

import (
	"io"

	"seqstats/internal/output"
	"seqstats/internal/runutil"
	"seqstats/internal/writers"
)

// ---------------- Report writer ----------------

type ReportWriterFactory struct {
	Format string
	Header bool
	Wrap   int
}

func NewReportWriterFactory(format string, header bool, wrap int) ReportWriterFactory {
	return ReportWriterFactory{Format: format, Header: header, Wrap: wrap}
}

func (w ReportWriterFactory) NeedSkew() bool { return runutil.NeedSkew(w.Format) }

func (w ReportWriterFactory) Start(out io.Writer, bufSize int) (chan<- output.Report, <-chan error) {
	return writers.StartReportWriter(out, w.Format, writers.Options{Header: w.Header, Wrap: w.Wrap}, bufSize)
}

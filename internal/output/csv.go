package output

import (
	"encoding/csv"
	"fmt"
	"io"
)

// WriteCSVReport writes the downloadable report: a "# Metrics" section, a
// "# Dinucleotide frequencies" section (header only when the sequence has no
// valid pairs) and, when a window series exists, "# Sliding window GC".
func WriteCSVReport(w io.Writer, r Report) error {
	m := r.Metrics
	cw := csv.NewWriter(w)
	section := func(title string) error {
		cw.Flush()
		if err := cw.Error(); err != nil {
			return err
		}
		_, err := io.WriteString(w, title)
		return err
	}

	if err := section("# Metrics\n"); err != nil {
		return err
	}
	_ = cw.Write([]string{"Metric", "Value"})
	for _, row := range MetricRows(m) {
		_ = cw.Write([]string{row.Name, row.Value})
	}

	if err := section("\n# Dinucleotide frequencies\n"); err != nil {
		return err
	}
	_ = cw.Write([]string{"Dinucleotide", "Count", "Frequency"})
	if m.Dinucleotides.Total > 0 {
		for _, d := range DinucRows(m) {
			_ = cw.Write([]string{d.Dinucleotide, itoa(d.Count), shortest(d.Frequency)})
		}
	}

	if m.Window.Count() > 0 {
		if err := section("\n# Sliding window GC\n"); err != nil {
			return err
		}
		_ = cw.Write([]string{"Start", "End", "GC_percent"})
		for _, wr := range WindowRows(m) {
			_ = cw.Write([]string{itoa(wr.Start), itoa(wr.End), fixed(wr.GC, 4)})
		}
	}
	cw.Flush()
	return cw.Error()
}

// WriteCSVReports writes one report per sequence. A single report is written
// exactly as WriteCSVReport; several are each preceded by a
// "# Sequence: <id>" line and separated by a blank line.
func WriteCSVReports(w io.Writer, list []Report) error {
	if len(list) == 1 {
		return WriteCSVReport(w, list[0])
	}
	for i, r := range list {
		sep := ""
		if i > 0 {
			sep = "\n"
		}
		if _, err := fmt.Fprintf(w, "%s# Sequence: %s\n", sep, r.ID); err != nil {
			return err
		}
		if err := WriteCSVReport(w, r); err != nil {
			return err
		}
	}
	return nil
}

// WriteDinucTSV writes the 16-row dinucleotide table of every report.
func WriteDinucTSV(w io.Writer, list []Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, DinucHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		for _, d := range DinucRows(r.Metrics) {
			if _, err := fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.ID, d.Dinucleotide, d.Count, fixed(d.Frequency, 6)); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteWindowsTSV writes the sliding-window GC series of every report.
func WriteWindowsTSV(w io.Writer, list []Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, WindowsHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		for _, wr := range WindowRows(r.Metrics) {
			if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", r.ID, wr.Start, wr.End, fixed(wr.GC, 4)); err != nil {
				return err
			}
		}
	}
	return nil
}

// WriteSkewTSV writes the GC-skew profile of every report. Reports without a
// computed profile contribute nothing.
func WriteSkewTSV(w io.Writer, list []Report, header bool) error {
	if header {
		if _, err := fmt.Fprintln(w, SkewHeader); err != nil {
			return err
		}
	}
	for _, r := range list {
		for _, p := range r.Skew {
			if _, err := fmt.Fprintf(w, "%s\t%d\t%s\n", r.ID, p.Position, fixed(p.Skew, 6)); err != nil {
				return err
			}
		}
	}
	return nil
}

// internal/output/text.go
package output

import (
	"bufio"
	"io"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"seqstats/internal/stats"
)

// WriteText prints a human-readable summary per report. Counts use
// thousands separators; the cleaned sequence is previewed up to PreviewLen
// symbols.
func WriteText(w io.Writer, list []Report) error {
	bw := bufio.NewWriter(w)
	p := message.NewPrinter(language.English)
	for i, r := range list {
		if i > 0 {
			p.Fprintln(bw)
		}
		writeSummary(p, bw, r)
	}
	return bw.Flush()
}

func writeSummary(p *message.Printer, w io.Writer, r Report) {
	m := r.Metrics
	c := m.Counts

	if r.Source != "" && r.Source != r.ID {
		p.Fprintf(w, "Sequence: %s (%s)\n", r.ID, r.Source)
	} else {
		p.Fprintf(w, "Sequence: %s\n", r.ID)
	}
	p.Fprintf(w, "Length:   %d bp\n", m.Length)
	if r.Dropped > 0 {
		p.Fprintf(w, "Dropped:  %d non-nucleotide characters\n", r.Dropped)
	}

	p.Fprintln(w, "\nComposition")
	for i := 0; i < len(stats.Bases); i++ {
		b := stats.Bases[i]
		var pct float64
		switch b {
		case 'A':
			pct = m.Percent.A
		case 'T':
			pct = m.Percent.T
		case 'G':
			pct = m.Percent.G
		case 'C':
			pct = m.Percent.C
		case 'N':
			pct = m.Percent.N
		}
		p.Fprintf(w, "  %c  %12d  %6.2f%%\n", b, c.Of(b), pct)
	}

	p.Fprintln(w, "\nMetrics")
	p.Fprintf(w, "  GC content       %.2f%%\n", m.GCPercent)
	p.Fprintf(w, "  AT content       %.2f%%\n", m.ATPercent)
	p.Fprintf(w, "  GC skew          %.4f\n", m.GCSkew)
	p.Fprintf(w, "  AT skew          %.4f\n", m.ATSkew)
	p.Fprintf(w, "  Shannon entropy  %.3f bits\n", m.Entropy)
	if m.Tm.Defined {
		p.Fprintf(w, "  Tm (%s)  %.1f °C\n", m.TmMethod, m.Tm.Value)
	} else {
		p.Fprintln(w, "  Tm               NA")
	}
	p.Fprintf(w, "  CpG observed     %d\n", m.CpG.Observed)
	p.Fprintf(w, "  CpG O/E          %s\n", m.CpG.OE.Format(3))
	p.Fprintf(w, "  Longest run      %d (%s)\n", m.Runs.Longest, baseName(m.Runs.Base))
	p.Fprintf(w, "  Longest A/T/G/C  %d / %d / %d / %d\n", m.Runs.A, m.Runs.T, m.Runs.G, m.Runs.C)

	if m.Window.Width > 0 {
		p.Fprintf(w, "\nSliding window GC (%d bp)\n", m.Window.Width)
		if m.Window.Count() == 0 {
			p.Fprintln(w, "  window wider than sequence; no windows")
		} else {
			p.Fprintf(w, "  windows  %d\n", m.Window.Count())
			p.Fprintf(w, "  avg      %s%%\n", m.Window.Avg.Format(2))
			p.Fprintf(w, "  min      %s%%\n", m.Window.Min.Format(2))
			p.Fprintf(w, "  max      %s%%\n", m.Window.Max.Format(2))
		}
	}

	p.Fprintln(w, "\nPreview")
	preview := r.Sequence
	if len(preview) > PreviewLen {
		preview = preview[:PreviewLen] + "..."
	}
	p.Fprintf(w, "  %s\n", preview)
}

// internal/output/rows.go
package output

import (
	"strconv"

	"seqstats/internal/stats"
)

// Row is one (metric, value) pair of the metrics table.
type Row struct {
	Name  string
	Value string
}

type DinucRow struct {
	Dinucleotide string
	Count        int
	Frequency    float64
}

type WindowRow struct {
	Start, End int // 1-based inclusive
	GC         float64
}

func itoa(n int) string { return strconv.Itoa(n) }

func fixed(v float64, prec int) string { return strconv.FormatFloat(v, 'f', prec, 64) }

// shortest renders v without trailing zeros or exponent.
func shortest(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) }

func orNA(s string) string {
	if s == "" {
		return "NA"
	}
	return s
}

func baseName(b byte) string {
	if b == 0 {
		return "NA"
	}
	return string(b)
}

// MetricRows flattens m into the metrics table, in report order.
func MetricRows(m *stats.Metrics) []Row {
	c, p := m.Counts, m.Percent
	rows := []Row{
		{"Length_bp", itoa(m.Length)},
		{"A_count", itoa(c.A)},
		{"T_count", itoa(c.T)},
		{"G_count", itoa(c.G)},
		{"C_count", itoa(c.C)},
		{"N_count", itoa(c.N)},
		{"A_percent", fixed(p.A, 4)},
		{"T_percent", fixed(p.T, 4)},
		{"G_percent", fixed(p.G, 4)},
		{"C_percent", fixed(p.C, 4)},
		{"N_percent", fixed(p.N, 4)},
		{"GC_percent", fixed(m.GCPercent, 4)},
		{"AT_percent", fixed(m.ATPercent, 4)},
		{"GC_skew", fixed(m.GCSkew, 6)},
		{"AT_skew", fixed(m.ATSkew, 6)},
		{"Shannon_entropy", fixed(m.Entropy, 6)},
		{"Tm_approx", m.Tm.String()},
		{"Tm_method", orNA(m.TmMethod)},
		{"CpG_observed", itoa(m.CpG.Observed)},
		{"CpG_expected", m.CpG.Expected.Format(6)},
		{"CpG_OE", m.CpG.OE.Format(6)},
		{"LongestRun", itoa(m.Runs.Longest)},
		{"LongestRun_base", baseName(m.Runs.Base)},
	}
	for i := 0; i < len(stats.Bases); i++ {
		b := stats.Bases[i]
		rows = append(rows, Row{"Longest" + string(b), itoa(m.Runs.Of(b))})
	}
	rows = append(rows,
		Row{"Window_bp", itoa(m.Window.Width)},
		Row{"Window_count", itoa(m.Window.Count())},
		Row{"WindowGC_avg", m.Window.Avg.Format(4)},
		Row{"WindowGC_min", m.Window.Min.Format(4)},
		Row{"WindowGC_max", m.Window.Max.Format(4)},
	)
	return rows
}

// DinucRows returns all 16 dinucleotides in lexical order.
func DinucRows(m *stats.Metrics) []DinucRow {
	t := m.Dinucleotides
	out := make([]DinucRow, len(stats.DinucKeys))
	for i, k := range stats.DinucKeys {
		out[i] = DinucRow{Dinucleotide: k, Count: t.Counts[i], Frequency: t.Freq(i)}
	}
	return out
}

// WindowRows returns the sliding-window GC series with 1-based inclusive
// coordinates.
func WindowRows(m *stats.Metrics) []WindowRow {
	out := make([]WindowRow, 0, m.Window.Count())
	for i, gc := range m.Window.GC {
		s, e := m.Window.Bounds(i)
		out = append(out, WindowRow{Start: s, End: e, GC: gc})
	}
	return out
}

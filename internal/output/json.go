// internal/output/json.go
package output

import (
	"io"

	"seqstats/internal/jsonutil"
	"seqstats/internal/stats"
	"seqstats/pkg/api"
)

// ToAPIReport converts a Report to the stable wire schema (v1).
func ToAPIReport(r Report) api.ReportV1 {
	m := r.Metrics
	c, p := m.Counts, m.Percent
	v := api.ReportV1{
		SequenceID: r.ID,
		Source:     r.Source,
		Length:     m.Length,
		Counts:     api.CountsV1{A: c.A, T: c.T, G: c.G, C: c.C, N: c.N, Total: c.Total},
		Percent:    api.PercentV1{A: p.A, T: p.T, G: p.G, C: p.C, N: p.N},
		GCPercent:  m.GCPercent,
		ATPercent:  m.ATPercent,
		GCSkew:     m.GCSkew,
		ATSkew:     m.ATSkew,
		Entropy:    m.Entropy,
		Tm:         m.Tm.Ptr(),
		TmMethod:   m.TmMethod,
		CpG: api.CpGV1{
			Observed: m.CpG.Observed,
			Expected: m.CpG.Expected.Ptr(),
			OE:       m.CpG.OE.Ptr(),
		},
		LongestRun: api.RunV1{Length: m.Runs.Longest},
		Runs:       api.RunsV1{A: m.Runs.A, T: m.Runs.T, G: m.Runs.G, C: m.Runs.C, N: m.Runs.N},
		Window: api.WindowV1{
			Width: m.Window.Width,
			GC:    append(make([]float64, 0, m.Window.Count()), m.Window.GC...),
			Avg:   m.Window.Avg.Ptr(),
			Min:   m.Window.Min.Ptr(),
			Max:   m.Window.Max.Ptr(),
		},
		Dinucs:  make([]api.DinucV1, 0, len(stats.DinucKeys)),
		Dropped: r.Dropped,
	}
	if m.Runs.Base != 0 {
		v.LongestRun.Base = string(m.Runs.Base)
	}
	for _, d := range DinucRows(m) {
		v.Dinucs = append(v.Dinucs, api.DinucV1{Dinucleotide: d.Dinucleotide, Count: d.Count, Frequency: d.Frequency})
	}
	if r.Skew != nil {
		v.SkewWindow = r.SkewWindow
		v.Skew = make([]api.SkewPointV1, len(r.Skew))
		for i, sp := range r.Skew {
			v.Skew[i] = api.SkewPointV1{Position: sp.Position, Skew: sp.Skew}
		}
	}
	return v
}

func toAPIReports(list []Report) []api.ReportV1 {
	out := make([]api.ReportV1, 0, len(list))
	for _, r := range list {
		out = append(out, ToAPIReport(r))
	}
	return out
}

// WriteJSON writes a single report as an object and anything else as an
// array, indented.
func WriteJSON(w io.Writer, list []Report) error {
	if len(list) == 1 {
		return jsonutil.EncodePretty(w, ToAPIReport(list[0]))
	}
	return jsonutil.EncodePretty(w, toAPIReports(list))
}

package stats

// Metrics is the full statistics bundle for one canonical sequence. It is
// built by Analyze and never mutated afterwards; callers that share a
// *Metrics (see package memo) must treat it as read-only.
type Metrics struct {
	Length int

	Counts  BaseCounts
	Percent BasePercents

	GCPercent float64 // over A+T+G+C
	ATPercent float64 // over A+T+G+C
	GCSkew    float64
	ATSkew    float64

	Entropy float64 // bits, A/T/G/C only

	Tm       Maybe
	TmMethod string

	CpG CpGStats

	Runs Runs

	Window WindowStats

	Dinucleotides DinucTable
}

// Empty reports whether the analyzed sequence had no symbols.
func (m *Metrics) Empty() bool { return m.Length == 0 }

// Analyze computes every metric for seq. window is the sliding-window GC
// width; 0 (or anything wider than seq) leaves the window series empty.
//
// seq must be canonical (see normalize.Sequence). An empty seq yields zero
// composition, entropy 0 and NA for Tm and CpG.
func Analyze(seq string, window int) *Metrics {
	c := Count(seq)
	tm, method := MeltingTemp(c)
	return &Metrics{
		Length:        len(seq),
		Counts:        c,
		Percent:       Percents(c),
		GCPercent:     GCContent(c),
		ATPercent:     ATContent(c),
		GCSkew:        GCSkew(c),
		ATSkew:        ATSkew(c),
		Entropy:       Entropy(c),
		Tm:            tm,
		TmMethod:      method,
		CpG:           CpG(seq, c),
		Runs:          LongestRuns(seq),
		Window:        SlidingGC(seq, window),
		Dinucleotides: Dinucleotides(seq),
	}
}

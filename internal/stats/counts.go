package stats

// Bases lists the canonical symbols in report order.
const Bases = "ATGCN"

// BaseCounts tallies each canonical symbol. Total is A+T+G+C+N.
type BaseCounts struct {
	A, T, G, C, N int
	Total         int
}

// ACGT returns the number of unambiguous bases.
func (c BaseCounts) ACGT() int { return c.A + c.T + c.G + c.C }

// Of returns the count for one symbol (0 for anything non-canonical).
func (c BaseCounts) Of(b byte) int {
	switch b {
	case 'A':
		return c.A
	case 'T':
		return c.T
	case 'G':
		return c.G
	case 'C':
		return c.C
	case 'N':
		return c.N
	}
	return 0
}

// Count tallies seq in one pass. Non-canonical bytes are ignored, so Total
// equals len(seq) for canonical input.
func Count(seq string) BaseCounts {
	var c BaseCounts
	for i := 0; i < len(seq); i++ {
		switch seq[i] {
		case 'A':
			c.A++
		case 'T':
			c.T++
		case 'G':
			c.G++
		case 'C':
			c.C++
		case 'N':
			c.N++
		}
	}
	c.Total = c.A + c.T + c.G + c.C + c.N
	return c
}

// BasePercents holds per-symbol percentages over the full length (N included).
type BasePercents struct {
	A, T, G, C, N float64
}

// Percents divides each count by Total. All zero for an empty sequence.
func Percents(c BaseCounts) BasePercents {
	if c.Total == 0 {
		return BasePercents{}
	}
	n := float64(c.Total)
	return BasePercents{
		A: float64(c.A) / n * 100,
		T: float64(c.T) / n * 100,
		G: float64(c.G) / n * 100,
		C: float64(c.C) / n * 100,
		N: float64(c.N) / n * 100,
	}
}

// GCContent is (G+C)/(A+T+G+C)*100; N is excluded from the denominator.
// Returns 0 when there are no unambiguous bases.
func GCContent(c BaseCounts) float64 {
	return percent(c.G+c.C, c.ACGT())
}

// ATContent is (A+T)/(A+T+G+C)*100, 0 when there are no unambiguous bases.
func ATContent(c BaseCounts) float64 {
	return percent(c.A+c.T, c.ACGT())
}

// GCSkew is (G-C)/(G+C), 0 when G+C is 0.
func GCSkew(c BaseCounts) float64 { return skew(c.G, c.C) }

// ATSkew is (A-T)/(A+T), 0 when A+T is 0.
func ATSkew(c BaseCounts) float64 { return skew(c.A, c.T) }

func percent(num, den int) float64 {
	if den == 0 {
		return 0
	}
	return float64(num) / float64(den) * 100
}

func skew(x, y int) float64 {
	d := x + y
	if d == 0 {
		return 0
	}
	return float64(x-y) / float64(d)
}

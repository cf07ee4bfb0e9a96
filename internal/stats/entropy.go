package stats

import "math"

// Entropy returns the mono-nucleotide Shannon entropy in bits over A/T/G/C.
// N is excluded from both numerator and denominator; an empty or all-N
// sequence yields 0. The result lies in [0, 2].
func Entropy(c BaseCounts) float64 {
	total := c.ACGT()
	if total == 0 {
		return 0
	}
	h := 0.0
	for _, n := range [...]int{c.A, c.T, c.G, c.C} {
		if n == 0 {
			continue
		}
		p := float64(n) / float64(total)
		h -= p * math.Log2(p)
	}
	return h
}

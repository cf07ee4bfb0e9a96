package stats

// cpgEpsilon floors the expected CpG count so O/E never divides by zero.
const cpgEpsilon = 1e-12

// CpGStats reports observed vs expected CpG dinucleotides.
type CpGStats struct {
	Observed int
	Expected Maybe
	OE       Maybe
}

// CountCpG counts every position i where seq[i]=='C' and seq[i+1]=='G'.
// Overlapping occurrences are all counted.
func CountCpG(seq string) int {
	n := 0
	for i := 0; i+1 < len(seq); i++ {
		if seq[i] == 'C' && seq[i+1] == 'G' {
			n++
		}
	}
	return n
}

// CpG computes the CpG observed/expected ratio.
//
//	expected = C*G / max(length-1, 1)
//	O/E      = observed / expected
//
// Expected and O/E are NA when length <= 1, when there are no A/T/G/C bases,
// or when C or G is absent (the expectation is zero).
func CpG(seq string, c BaseCounts) CpGStats {
	st := CpGStats{Observed: CountCpG(seq)}
	if c.Total <= 1 || c.ACGT() == 0 || c.C == 0 || c.G == 0 {
		return st
	}
	pairs := c.Total - 1
	if pairs < 1 {
		pairs = 1
	}
	exp := float64(c.C) * float64(c.G) / float64(pairs)
	if exp < cpgEpsilon {
		exp = cpgEpsilon
	}
	st.Expected = Some(exp)
	st.OE = Some(float64(st.Observed) / exp)
	return st
}

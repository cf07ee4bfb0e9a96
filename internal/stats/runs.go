package stats

// Runs holds the longest homopolymer run per symbol and overall.
type Runs struct {
	A, T, G, C, N int

	// Longest run of any symbol; Base is the symbol of the first such run
	// (0 for an empty sequence).
	Longest int
	Base    byte
}

// Of returns the longest run for one symbol.
func (r Runs) Of(b byte) int {
	switch b {
	case 'A':
		return r.A
	case 'T':
		return r.T
	case 'G':
		return r.G
	case 'C':
		return r.C
	case 'N':
		return r.N
	}
	return 0
}

func (r *Runs) observe(b byte, n int) {
	var p *int
	switch b {
	case 'A':
		p = &r.A
	case 'T':
		p = &r.T
	case 'G':
		p = &r.G
	case 'C':
		p = &r.C
	case 'N':
		p = &r.N
	}
	if p != nil && n > *p {
		*p = n
	}
	if n > r.Longest {
		r.Longest = n
		r.Base = b
	}
}

// LongestRuns scans seq once and records every maximal run.
func LongestRuns(seq string) Runs {
	var r Runs
	for i := 0; i < len(seq); {
		j := i + 1
		for j < len(seq) && seq[j] == seq[i] {
			j++
		}
		r.observe(seq[i], j-i)
		i = j
	}
	return r
}

// LongestRun returns the longest run of base in seq (0 if absent).
func LongestRun(seq string, base byte) int {
	best, cur := 0, 0
	for i := 0; i < len(seq); i++ {
		if seq[i] != base {
			cur = 0
			continue
		}
		cur++
		if cur > best {
			best = cur
		}
	}
	return best
}

package stats

const dinucAlphabet = "ACGT"

// DinucKeys lists the 16 dinucleotides in lexical order (AA, AC, ... TT).
var DinucKeys = func() [16]string {
	var k [16]string
	for i := 0; i < 16; i++ {
		k[i] = string([]byte{dinucAlphabet[i/4], dinucAlphabet[i%4]})
	}
	return k
}()

// DinucTable counts overlapping dinucleotides over {A,C,G,T}. Counts is
// indexed like DinucKeys. Pairs touching N are not counted at all.
type DinucTable struct {
	Counts [16]int
	Total  int
}

func dinucIndex(b byte) int {
	switch b {
	case 'A':
		return 0
	case 'C':
		return 1
	case 'G':
		return 2
	case 'T':
		return 3
	}
	return -1
}

// Dinucleotides counts every adjacent pair seq[i]seq[i+1] with both symbols
// in {A,C,G,T}.
func Dinucleotides(seq string) DinucTable {
	var t DinucTable
	for i := 0; i+1 < len(seq); i++ {
		a, b := dinucIndex(seq[i]), dinucIndex(seq[i+1])
		if a < 0 || b < 0 {
			continue
		}
		t.Counts[a*4+b]++
		t.Total++
	}
	return t
}

// Count returns the count for a two-letter key such as "CG" (0 for
// anything outside the 16 valid keys).
func (t DinucTable) Count(key string) int {
	if len(key) != 2 {
		return 0
	}
	a, b := dinucIndex(key[0]), dinucIndex(key[1])
	if a < 0 || b < 0 {
		return 0
	}
	return t.Counts[a*4+b]
}

// Freq returns count/Total for entry i, 0 when there are no valid pairs.
func (t DinucTable) Freq(i int) float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Counts[i]) / float64(t.Total)
}

// Frequency is Freq by key.
func (t DinucTable) Frequency(key string) float64 {
	if t.Total == 0 {
		return 0
	}
	return float64(t.Count(key)) / float64(t.Total)
}

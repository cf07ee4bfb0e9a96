package stats

import (
	"math"
	"testing"
)

func almost(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

func TestCount_SumsToLength(t *testing.T) {
	for _, s := range []string{"", "A", "ATGCN", "NNNN", "ATGCGCTAGCNNAT", "GGGGGGCCCCC"} {
		c := Count(s)
		if c.A+c.T+c.G+c.C+c.N != len(s) || c.Total != len(s) {
			t.Fatalf("%q: counts %+v do not sum to %d", s, c, len(s))
		}
	}
}

func TestComposition_ATGCGCTAGC(t *testing.T) {
	c := Count("ATGCGCTAGC")
	if c.Total != 10 || c.A != 2 || c.T != 2 || c.G != 3 || c.C != 3 || c.N != 0 {
		t.Fatalf("unexpected counts: %+v", c)
	}
	if got := GCContent(c); !almost(got, 60) {
		t.Fatalf("GC%% = %v, want 60", got)
	}
	if got := ATContent(c); !almost(got, 40) {
		t.Fatalf("AT%% = %v, want 40", got)
	}
}

func TestGCATContent_Bounds(t *testing.T) {
	cases := []struct {
		seq      string
		equalSum bool
	}{
		{"ATGC", true},
		{"GGGG", true},
		{"ATGCNN", true}, // N excluded from both denominators
		{"GNNNNA", true},
	}
	for _, tc := range cases {
		c := Count(tc.seq)
		gc, at := GCContent(c), ATContent(c)
		if gc < 0 || gc > 100 || at < 0 || at > 100 {
			t.Fatalf("%q: out of range gc=%v at=%v", tc.seq, gc, at)
		}
		if gc+at > 100+1e-9 {
			t.Fatalf("%q: gc+at=%v > 100", tc.seq, gc+at)
		}
		if tc.equalSum && !almost(gc+at, 100) {
			t.Fatalf("%q: gc+at=%v, want 100", tc.seq, gc+at)
		}
	}
}

func TestZeroDenominators(t *testing.T) {
	c := Count("NNNN")
	if GCContent(c) != 0 || ATContent(c) != 0 {
		t.Fatalf("all-N content should be 0")
	}
	if GCSkew(c) != 0 || ATSkew(c) != 0 {
		t.Fatalf("skew with zero denominator should be 0")
	}
	p := Percents(Count(""))
	if p != (BasePercents{}) {
		t.Fatalf("empty percents should be zero: %+v", p)
	}
}

func TestSkews(t *testing.T) {
	c := Count("GGGCAATT")
	if got := GCSkew(c); !almost(got, 0.5) {
		t.Fatalf("GC skew = %v, want 0.5", got)
	}
	if got := ATSkew(c); !almost(got, 0) {
		t.Fatalf("AT skew = %v, want 0", got)
	}
	if got := ATSkew(Count("AAAT")); !almost(got, 0.5) {
		t.Fatalf("AT skew = %v, want 0.5", got)
	}
}

func TestPercents_OverLength(t *testing.T) {
	p := Percents(Count("AANN"))
	if !almost(p.A, 50) || !almost(p.N, 50) || p.G != 0 {
		t.Fatalf("unexpected percents: %+v", p)
	}
}

func TestEntropy(t *testing.T) {
	cases := []struct {
		seq  string
		want float64
	}{
		{"", 0},
		{"NNNN", 0},
		{"AAAA", 0},
		{"AAAANNNN", 0},
		{"ACGT", 2},
		{"AACC", 1},
		{"ACGTNNNN", 2},
	}
	for _, tc := range cases {
		if got := Entropy(Count(tc.seq)); !almost(got, tc.want) {
			t.Fatalf("Entropy(%q) = %v, want %v", tc.seq, got, tc.want)
		}
	}
}

func TestEntropy_BoundedAndZeroOnlyForSingleBase(t *testing.T) {
	for _, s := range []string{"A", "AT", "ATTTTT", "GCGCGA", "ATGCGCTAGC", "CCCCCCG"} {
		h := Entropy(Count(s))
		if h < 0 || h > 2+1e-12 {
			t.Fatalf("%q: entropy %v out of [0,2]", s, h)
		}
		single := len(s) > 0 && LongestRun(s, s[0]) == len(s)
		if (h == 0) != single {
			t.Fatalf("%q: entropy %v, single-base=%v", s, h, single)
		}
	}
}

func TestMeltingTemp(t *testing.T) {
	tm, method := MeltingTemp(Count("AAAA"))
	if v, ok := tm.Get(); !ok || v != 8 || method != TmWallace {
		t.Fatalf("AAAA: got %v %q, want 8 wallace", tm, method)
	}
	tm, _ = MeltingTemp(Count("ATGCATGCATGCAT")) // 14 bp: still Wallace
	if v, _ := tm.Get(); v != 2*8+4*6 {
		t.Fatalf("14bp Wallace = %v, want %d", v, 2*8+4*6)
	}
	seq := "ATGCATGCATGCATGCATGC" // 20 bp, GC=10
	tm, method = MeltingTemp(Count(seq))
	want := 64.9 + 41*(10-16.4)/20
	if v, _ := tm.Get(); !almost(v, want) || method != TmGCCorrected {
		t.Fatalf("20bp: got %v %q, want %v gc-corrected", tm, method, want)
	}
	tm, method = MeltingTemp(Count(""))
	if tm.Defined || method != "" {
		t.Fatalf("empty sequence Tm should be NA, got %v %q", tm, method)
	}
	if tm, _ := MeltingTemp(Count("NNN")); !tm.Defined || tm.Value != 0 {
		t.Fatalf("all-N Tm should be computable as 0, got %v", tm)
	}
}

package stats

import (
	"strings"
	"testing"
)

// naiveWindows rescans every window from scratch.
func naiveWindows(seq string, w int) []float64 {
	var out []float64
	for s := 0; w > 0 && s+w <= len(seq); s++ {
		c := Count(seq[s : s+w])
		out = append(out, GCContent(c))
	}
	return out
}

func collect(seq string, w int) (starts []int, vals []float64) {
	for s, v := range GCWindows(seq, w) {
		starts = append(starts, s)
		vals = append(vals, v)
	}
	return
}

func TestGCWindows_MatchesRescan(t *testing.T) {
	seqs := []string{
		"ATGCGCTAGCATTTGGCCNNAGCTAGCTAGGCGC",
		"NNNNNNNN",
		"GCGCGCGCGCATATATAT",
		"A",
	}
	for _, seq := range seqs {
		for w := 1; w <= len(seq); w++ {
			starts, got := collect(seq, w)
			want := naiveWindows(seq, w)
			if len(got) != len(want) {
				t.Fatalf("%q w=%d: %d windows, want %d", seq, w, len(got), len(want))
			}
			for i := range got {
				if got[i] != want[i] { // bit-identical, not approximate
					t.Fatalf("%q w=%d window %d: %v != %v", seq, w, i, got[i], want[i])
				}
				if starts[i] != i+1 {
					t.Fatalf("start %d, want %d", starts[i], i+1)
				}
			}
		}
	}
}

func TestGCWindows_Count(t *testing.T) {
	seq := strings.Repeat("ATGCG", 4) // length 20
	cases := []struct{ w, want int }{
		{0, 0}, {-3, 0}, {1, 20}, {5, 16}, {20, 1}, {21, 0},
	}
	for _, tc := range cases {
		_, vals := collect(seq, tc.w)
		if len(vals) != tc.want {
			t.Fatalf("w=%d: %d windows, want %d", tc.w, len(vals), tc.want)
		}
		if WindowCount(len(seq), tc.w) != tc.want {
			t.Fatalf("WindowCount(%d,%d) mismatch", len(seq), tc.w)
		}
		for _, v := range vals {
			if v < 0 || v > 100 {
				t.Fatalf("w=%d: value %v out of range", tc.w, v)
			}
		}
	}
}

func TestGCWindows_FullWidthEqualsGlobal(t *testing.T) {
	seq := "ATGCGCTAGCNNAT"
	_, vals := collect(seq, len(seq))
	if len(vals) != 1 || vals[0] != GCContent(Count(seq)) {
		t.Fatalf("full-width window %v != global GC %v", vals, GCContent(Count(seq)))
	}
}

func TestGCWindows_Restartable(t *testing.T) {
	it := GCWindows("GGCCAATTGC", 3)
	var a, b []float64
	for _, v := range it {
		a = append(a, v)
	}
	for _, v := range it {
		b = append(b, v)
	}
	if len(a) != 8 || len(a) != len(b) {
		t.Fatalf("lengths %d / %d", len(a), len(b))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("second pass differs at %d", i)
		}
	}
	// early break must not disturb a later full pass
	for range it {
		break
	}
	n := 0
	for range it {
		n++
	}
	if n != 8 {
		t.Fatalf("after early break got %d windows", n)
	}
}

func TestSlidingGC_Summary(t *testing.T) {
	ws := SlidingGC("GGAA", 2) // windows: GG=100, GA=50, AA=0
	if ws.Count() != 3 {
		t.Fatalf("want 3 windows, got %d", ws.Count())
	}
	if ws.Avg.Or(-1) != 50 || ws.Min.Or(-1) != 0 || ws.Max.Or(-1) != 100 {
		t.Fatalf("summary avg=%v min=%v max=%v", ws.Avg, ws.Min, ws.Max)
	}
	if s, e := ws.Bounds(2); s != 3 || e != 4 {
		t.Fatalf("Bounds(2) = %d,%d want 3,4", s, e)
	}
	empty := SlidingGC("GGAA", 5)
	if empty.Count() != 0 || empty.Avg.Defined || empty.Min.Defined || empty.Max.Defined {
		t.Fatalf("too-wide window should be empty with NA summaries: %+v", empty)
	}
	off := SlidingGC("GGAA", 0)
	if off.Count() != 0 || off.Avg.Defined {
		t.Fatalf("window 0 should disable the series")
	}
}

// naiveSkew mirrors the centred-window definition directly.
func naiveSkew(seq string, window int) []float64 {
	half := window / 2
	out := make([]float64, len(seq))
	for i := range seq {
		start := max(0, i-half)
		end := min(len(seq), i+half+1)
		out[i] = GCSkew(Count(seq[start:end]))
	}
	return out
}

func TestGCSkewProfile_MatchesDefinition(t *testing.T) {
	seq := "GGGCCCATATGCGCNNGGGAAACCCTTTG"
	for _, w := range []int{0, 1, 2, 3, 5, 10, 201} {
		want := naiveSkew(seq, w)
		i := 0
		for pos, v := range GCSkewProfile(seq, w) {
			if pos != i+1 {
				t.Fatalf("w=%d: position %d, want %d", w, pos, i+1)
			}
			if !almost(v, want[i]) {
				t.Fatalf("w=%d pos=%d: skew %v, want %v", w, pos, v, want[i])
			}
			i++
		}
		if i != len(seq) {
			t.Fatalf("w=%d: %d points, want %d", w, i, len(seq))
		}
	}
}

func TestGCSkewProfile_EmptyAndNoGC(t *testing.T) {
	n := 0
	for range GCSkewProfile("", 10) {
		n++
	}
	if n != 0 {
		t.Fatalf("empty sequence should yield nothing")
	}
	for _, v := range GCSkewProfile("ATATNN", 3) {
		if v != 0 {
			t.Fatalf("no G/C: skew %v, want 0", v)
		}
	}
}

func TestGCSkewProfile_Restartable(t *testing.T) {
	seq := "GGGCCATTGCGCNNAGGC"
	want := naiveSkew(seq, 5)
	it := GCSkewProfile(seq, 5)

	pass := func() {
		t.Helper()
		i := 0
		for pos, v := range it {
			if pos != i+1 || !almost(v, want[i]) {
				t.Fatalf("point %d: (%d, %v), want (%d, %v)", i, pos, v, i+1, want[i])
			}
			i++
		}
		if i != len(seq) {
			t.Fatalf("%d points, want %d", i, len(seq))
		}
	}
	pass()
	pass()
	// early break must not disturb a later full pass
	for pos := range it {
		if pos == 3 {
			break
		}
	}
	pass()
}

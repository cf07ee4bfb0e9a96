package memo

import (
	"fmt"
	"sync"
	"testing"

	"seqstats/internal/stats"
)

func TestAnalyze_CachedEqualsFresh(t *testing.T) {
	a := New(4)
	seq := "ATGCGCTAGCNNATGCGC"
	first := a.Analyze(seq, 5)
	second := a.Analyze(seq, 5)
	if first != second {
		t.Fatalf("second call should be served from cache")
	}
	fresh := stats.Analyze(seq, 5)
	if first.GCPercent != fresh.GCPercent || first.Entropy != fresh.Entropy ||
		first.CpG != fresh.CpG || first.Dinucleotides != fresh.Dinucleotides ||
		len(first.Window.GC) != len(fresh.Window.GC) {
		t.Fatalf("cached result differs from fresh computation")
	}
	for i := range fresh.Window.GC {
		if first.Window.GC[i] != fresh.Window.GC[i] {
			t.Fatalf("window %d differs", i)
		}
	}
	st := a.Stats()
	if st.Hits != 1 || st.Misses != 1 || st.Size != 1 {
		t.Fatalf("stats = %+v", st)
	}
}

func TestAnalyze_WindowIsPartOfKey(t *testing.T) {
	a := New(4)
	m1 := a.Analyze("ACGTACGT", 2)
	m2 := a.Analyze("ACGTACGT", 3)
	if m1 == m2 || m1.Window.Width != 2 || m2.Window.Width != 3 {
		t.Fatalf("different windows must not share an entry")
	}
}

func TestLRU_Evicts(t *testing.T) {
	a := New(2)
	a.Analyze("AAAA", 0)
	a.Analyze("CCCC", 0)
	a.Analyze("AAAA", 0) // refresh AAAA
	a.Analyze("GGGG", 0) // evicts CCCC
	if st := a.Stats(); st.Size != 2 {
		t.Fatalf("size = %d, want 2", st.Size)
	}
	before := a.Stats().Misses
	a.Analyze("AAAA", 0)
	if a.Stats().Misses != before {
		t.Fatalf("AAAA should still be cached")
	}
	a.Analyze("CCCC", 0)
	if a.Stats().Misses != before+1 {
		t.Fatalf("CCCC should have been evicted")
	}
}

func TestDisabled(t *testing.T) {
	a := Disabled()
	m := a.Analyze("ACGT", 0)
	if m == nil || m.Length != 4 {
		t.Fatalf("pass-through analyzer returned %+v", m)
	}
	if a.Stats() != (Stats{}) {
		t.Fatalf("disabled analyzer should report zero stats")
	}
}

func TestConcurrentUse(t *testing.T) {
	a := New(8)
	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(g int) {
			defer wg.Done()
			for i := 0; i < 50; i++ {
				seq := fmt.Sprintf("ACGT%s", string("ACGTN"[(g+i)%5]))
				if m := a.Analyze(seq, 2); m.Length != 5 {
					t.Errorf("length %d", m.Length)
					return
				}
			}
		}(g)
	}
	wg.Wait()
	if st := a.Stats(); st.Size > 8 || st.Hits+st.Misses != 400 {
		t.Fatalf("stats = %+v", st)
	}
}

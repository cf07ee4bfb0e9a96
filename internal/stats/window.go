package stats

import "iter"

// WindowStats summarizes sliding-window GC content. GC[i] is the GC% of the
// window starting at 1-based position i+1. An empty series (window disabled
// or wider than the sequence) has NA summaries.
type WindowStats struct {
	Width int
	GC    []float64

	Avg, Min, Max Maybe
}

// Count returns the number of windows.
func (w WindowStats) Count() int { return len(w.GC) }

// Bounds returns the 1-based inclusive coordinates of window i.
func (w WindowStats) Bounds(i int) (start, end int) {
	return i + 1, i + w.Width
}

// All yields (start, GC%) pairs in order. Restartable.
func (w WindowStats) All() iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		for i, v := range w.GC {
			if !yield(i+1, v) {
				return
			}
		}
	}
}

// WindowCount is the number of full windows of width w over n symbols:
// n-w+1 for 1 <= w <= n, else 0.
func WindowCount(n, w int) int {
	if w <= 0 || w > n {
		return 0
	}
	return n - w + 1
}

// GCWindows yields (1-based start, GC%) for every contiguous window of width
// w. Each window's GC% is (G+C)/(A+T+G+C)*100 over that window, 0 when the
// window holds only N. Counts slide in O(1) per step; values are identical to
// rescanning each window. Yields nothing when w <= 0 or w > len(seq).
//
// The returned sequence holds no state between iterations; ranging over it
// again recomputes from the start.
func GCWindows(seq string, w int) iter.Seq2[int, float64] {
	return func(yield func(int, float64) bool) {
		if WindowCount(len(seq), w) == 0 {
			return
		}
		gc, acgt := 0, 0
		add := func(b byte, d int) {
			switch b {
			case 'G', 'C':
				gc += d
				acgt += d
			case 'A', 'T':
				acgt += d
			}
		}
		for i := 0; i < w; i++ {
			add(seq[i], +1)
		}
		if !yield(1, percent(gc, acgt)) {
			return
		}
		for s := 1; s+w <= len(seq); s++ {
			add(seq[s-1], -1)
			add(seq[s+w-1], +1)
			if !yield(s+1, percent(gc, acgt)) {
				return
			}
		}
	}
}

// SlidingGC materializes GCWindows and its average, minimum and maximum.
func SlidingGC(seq string, w int) WindowStats {
	ws := WindowStats{Width: w}
	if w < 0 {
		ws.Width = 0
	}
	n := WindowCount(len(seq), w)
	if n == 0 {
		return ws
	}
	ws.GC = make([]float64, 0, n)
	sum := 0.0
	lo, hi := 0.0, 0.0
	for _, v := range GCWindows(seq, w) {
		if len(ws.GC) == 0 || v < lo {
			lo = v
		}
		if len(ws.GC) == 0 || v > hi {
			hi = v
		}
		sum += v
		ws.GC = append(ws.GC, v)
	}
	ws.Avg = Some(sum / float64(len(ws.GC)))
	ws.Min = Some(lo)
	ws.Max = Some(hi)
	return ws
}

// GCSkewProfile yields (1-based position, skew) for every base. The skew at
// position i is (G-C)/(G+C) over the centred window [i-h, i+h] with
// h = window/2, clipped at the sequence ends (the window shrinks; it never
// wraps or pads). Windows without G or C have skew 0. A window <= 1 gives a
// per-base profile.
//
// Like GCWindows, the sequence is lazy and restartable.
func GCSkewProfile(seq string, window int) iter.Seq2[int, float64] {
	half := window / 2
	if half < 0 {
		half = 0
	}
	return func(yield func(int, float64) bool) {
		n := len(seq)
		g, c := 0, 0
		lo, hi := 0, 0 // current window is seq[lo:hi]
		for i := 0; i < n; i++ {
			start := max(0, i-half)
			end := min(n, i+half+1)
			for hi < end {
				switch seq[hi] {
				case 'G':
					g++
				case 'C':
					c++
				}
				hi++
			}
			for lo < start {
				switch seq[lo] {
				case 'G':
					g--
				case 'C':
					c--
				}
				lo++
			}
			if !yield(i+1, skew(g, c)) {
				return
			}
		}
	}
}

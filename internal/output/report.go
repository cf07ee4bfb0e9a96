package output

import (
	"seqstats/internal/stats"
)

// Report is one analyzed sequence ready for rendering.
type Report struct {
	ID       string // sequence/record name
	Source   string // input path; empty for inline input
	Sequence string // canonical sequence
	Dropped  int    // characters discarded while cleaning

	Metrics *stats.Metrics

	// Optional GC-skew profile; nil unless requested.
	SkewWindow int
	Skew       []SkewPoint
}

// SkewPoint is one value of the centred GC-skew profile.
type SkewPoint struct {
	Position int // 1-based
	Skew     float64
}

// SkewPoints materializes stats.GCSkewProfile.
func SkewPoints(seq string, window int) []SkewPoint {
	out := make([]SkewPoint, 0, len(seq))
	for pos, v := range stats.GCSkewProfile(seq, window) {
		out = append(out, SkewPoint{Position: pos, Skew: v})
	}
	return out
}

// Downsample keeps every (len/limit)-th point when pts holds more than limit
// points. limit <= 0 keeps everything. A downsampled result is a new slice
// that starts with the first point.
func Downsample[T any](pts []T, limit int) []T {
	if limit <= 0 || len(pts) <= limit {
		return pts
	}
	step := len(pts) / limit
	if step < 1 {
		step = 1
	}
	out := make([]T, 0, len(pts)/step+1)
	for i := 0; i < len(pts); i += step {
		out = append(out, pts[i])
	}
	return out
}

// WithSkew returns r with its skew profile computed and downsampled.
func (r Report) WithSkew(window, maxPoints int) Report {
	r.SkewWindow = window
	r.Skew = Downsample(SkewPoints(r.Sequence, window), maxPoints)
	return r
}

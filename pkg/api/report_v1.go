// pkg/api/report_v1.go
package api

// ReportV1 is the stable JSON/JSONL schema for one analyzed sequence.
// Keep fields, names, and types stable. Add new fields only with ",omitempty".
// Undefined ratios (NA) are encoded as null.
type ReportV1 struct {
	ID         string `json:"id,omitempty"` // archive ID, set once stored
	SequenceID string `json:"sequence_id"`
	Source     string `json:"source,omitempty"`
	Length     int    `json:"length"`

	Counts    CountsV1  `json:"counts"`
	Percent   PercentV1 `json:"percent"`
	GCPercent float64   `json:"gc_percent"`
	ATPercent float64   `json:"at_percent"`
	GCSkew    float64   `json:"gc_skew"`
	ATSkew    float64   `json:"at_skew"`
	Entropy   float64   `json:"entropy"`

	Tm       *float64 `json:"tm"`
	TmMethod string   `json:"tm_method,omitempty"` // "wallace" | "gc-corrected"

	CpG        CpGV1         `json:"cpg"`
	LongestRun RunV1         `json:"longest_run"`
	Runs       RunsV1        `json:"runs"`
	Window     WindowV1      `json:"window"`
	Dinucs     []DinucV1     `json:"dinucleotides"`
	SkewWindow int           `json:"skew_window,omitempty"`
	Skew       []SkewPointV1 `json:"skew,omitempty"`

	Dropped int `json:"dropped,omitempty"` // characters discarded by cleaning
}

type CountsV1 struct {
	A     int `json:"A"`
	T     int `json:"T"`
	G     int `json:"G"`
	C     int `json:"C"`
	N     int `json:"N"`
	Total int `json:"total"`
}

type PercentV1 struct {
	A float64 `json:"A"`
	T float64 `json:"T"`
	G float64 `json:"G"`
	C float64 `json:"C"`
	N float64 `json:"N"`
}

type CpGV1 struct {
	Observed int      `json:"observed"`
	Expected *float64 `json:"expected"`
	OE       *float64 `json:"oe"`
}

type RunV1 struct {
	Length int    `json:"length"`
	Base   string `json:"base,omitempty"`
}

type RunsV1 struct {
	A int `json:"A"`
	T int `json:"T"`
	G int `json:"G"`
	C int `json:"C"`
	N int `json:"N"`
}

// WindowV1 is the sliding-window GC series; GC[i] belongs to the window
// starting at 1-based position i+1.
type WindowV1 struct {
	Width int       `json:"width"`
	GC    []float64 `json:"gc"`
	Avg   *float64  `json:"avg"`
	Min   *float64  `json:"min"`
	Max   *float64  `json:"max"`
}

type DinucV1 struct {
	Dinucleotide string  `json:"dinucleotide"`
	Count        int     `json:"count"`
	Frequency    float64 `json:"frequency"`
}

type SkewPointV1 struct {
	Position int     `json:"position"`
	Skew     float64 `json:"skew"`
}

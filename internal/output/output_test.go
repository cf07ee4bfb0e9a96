package output

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"seqstats/internal/stats"
	"seqstats/pkg/api"
)

func report(id, seq string, window int) Report {
	return Report{ID: id, Sequence: seq, Metrics: stats.Analyze(seq, window)}
}

func TestFormats_Stable(t *testing.T) {
	if FormatText != "text" || FormatJSON != "json" || FormatJSONL != "jsonl" || FormatFASTA != "fasta" ||
		FormatCSV != "csv" || FormatDinuc != "dinuc" || FormatWindows != "windows" || FormatSkew != "skew" {
		t.Fatalf("output format constants changed")
	}
	if len(Formats) != 8 {
		t.Fatalf("Formats = %v", Formats)
	}
}

func TestMetricRows(t *testing.T) {
	rows := MetricRows(stats.Analyze("ATGCGCTAGC", 0))
	got := map[string]string{}
	for _, r := range rows {
		got[r.Name] = r.Value
	}
	want := map[string]string{
		"Length_bp":       "10",
		"A_count":         "2",
		"G_count":         "3",
		"GC_percent":      "60.0000",
		"AT_percent":      "40.0000",
		"Tm_approx":       "32",
		"Tm_method":       "wallace",
		"LongestRun_base": "A",
		"LongestA":        "1",
		"Window_bp":       "0",
		"WindowGC_avg":    "NA",
	}
	for k, v := range want {
		if got[k] != v {
			t.Errorf("%s = %q, want %q", k, got[k], v)
		}
	}
	if rows[0].Name != "Length_bp" {
		t.Fatalf("first row should be Length_bp, got %s", rows[0].Name)
	}
}

func TestMetricRows_NA(t *testing.T) {
	rows := MetricRows(stats.Analyze("AAAA", 0))
	for _, r := range rows {
		switch r.Name {
		case "CpG_OE", "CpG_expected":
			if r.Value != "NA" {
				t.Fatalf("%s = %q, want NA", r.Name, r.Value)
			}
		case "Tm_approx":
			if r.Value != "8" {
				t.Fatalf("Tm = %q", r.Value)
			}
		}
	}
}

func TestWindowRows_Bounds(t *testing.T) {
	rows := WindowRows(stats.Analyze("GGGGAAAAAA", 4))
	if len(rows) != 7 {
		t.Fatalf("rows = %d", len(rows))
	}
	if rows[0].Start != 1 || rows[0].End != 4 || rows[0].GC != 100 {
		t.Fatalf("first window %+v", rows[0])
	}
	if last := rows[6]; last.Start != 7 || last.End != 10 || last.GC != 0 {
		t.Fatalf("last window %+v", last)
	}
}

func TestWriteCSVReport_Layout(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSVReport(&buf, report("s", "CGCGCGCG", 4)); err != nil {
		t.Fatalf("csv: %v", err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "# Metrics\nMetric,Value\nLength_bp,8\n") {
		t.Fatalf("metrics section:\n%s", out)
	}
	for _, want := range []string{
		"\n\n# Dinucleotide frequencies\nDinucleotide,Count,Frequency\nAA,0,0\n",
		"CG,4,0.5714285714285714\n",
		"GC,3,0.42857142857142855\n",
		"\n\n# Sliding window GC\nStart,End,GC_percent\n1,4,100.0000\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

func TestWriteCSVReport_NoPairsNoWindows(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSVReport(&buf, report("s", "NNNN", 0)); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasSuffix(out, "# Dinucleotide frequencies\nDinucleotide,Count,Frequency\n") {
		t.Fatalf("dinucleotide section should be header-only:\n%s", out)
	}
	if strings.Contains(out, "Sliding window") {
		t.Fatalf("no window section expected")
	}
}

func TestWriteCSVReports_Multi(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSVReports(&buf, []Report{report("a", "ACGT", 0), report("b", "GGCC", 0)}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.HasPrefix(out, "# Sequence: a\n# Metrics\n") || !strings.Contains(out, "\n\n# Sequence: b\n# Metrics\n") {
		t.Fatalf("multi layout:\n%s", out)
	}
}

func TestWriteFASTA_Wrap(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteFASTA(&buf, "seq1", "ACGTACGTAC", 50, 4); err != nil {
		t.Fatalf("fasta: %v", err)
	}
	want := ">seq1 length=10 gc=50.00\nACGT\nACGT\nAC\n"
	if buf.String() != want {
		t.Fatalf("got %q want %q", buf.String(), want)
	}
	buf.Reset()
	_ = WriteFASTA(&buf, "x", "ACGT", 50, 0)
	if buf.String() != ">x length=4 gc=50.00\nACGT\n" {
		t.Fatalf("single line: %q", buf.String())
	}
}

func TestTSVTables(t *testing.T) {
	r := report("s", "ACGTACGT", 4).WithSkew(3, 0)
	var buf bytes.Buffer
	if err := WriteDinucTSV(&buf, []Report{r}, true); err != nil {
		t.Fatal(err)
	}
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != DinucHeader || len(lines) != 17 {
		t.Fatalf("dinuc table: %v", lines)
	}

	buf.Reset()
	_ = WriteWindowsTSV(&buf, []Report{r}, false)
	if got := strings.Count(buf.String(), "\n"); got != 5 {
		t.Fatalf("windows rows = %d", got)
	}

	buf.Reset()
	_ = WriteSkewTSV(&buf, []Report{r}, true)
	lines = strings.Split(strings.TrimSpace(buf.String()), "\n")
	if lines[0] != SkewHeader || len(lines) != 9 || lines[1] != "s\t1\t-1.000000" {
		t.Fatalf("skew table: %v", lines)
	}
}

func TestDownsample(t *testing.T) {
	pts := make([]int, 4500)
	for i := range pts {
		pts[i] = i
	}
	ds := Downsample(pts, 2000)
	if len(ds) != 2250 || ds[0] != 0 || ds[1] != 2 {
		t.Fatalf("len=%d head=%v", len(ds), ds[:2])
	}
	if got := Downsample(pts[:10], 2000); len(got) != 10 {
		t.Fatalf("short series must be untouched")
	}
	if got := Downsample(pts, 0); len(got) != len(pts) {
		t.Fatalf("limit 0 keeps everything")
	}
}

func TestToAPIReport_NullForNA(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, []Report{report("s", "AAAA", 0)}); err != nil {
		t.Fatalf("json: %v", err)
	}
	var raw map[string]any
	if err := json.Unmarshal(buf.Bytes(), &raw); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	cpg := raw["cpg"].(map[string]any)
	if cpg["oe"] != nil || cpg["expected"] != nil {
		t.Fatalf("NA must encode as null: %v", cpg)
	}
	if raw["tm"].(float64) != 8 || raw["tm_method"] != "wallace" {
		t.Fatalf("tm: %v %v", raw["tm"], raw["tm_method"])
	}
	win := raw["window"].(map[string]any)
	if gc, ok := win["gc"].([]any); !ok || len(gc) != 0 || win["avg"] != nil {
		t.Fatalf("empty window: %v", win)
	}
	if _, ok := raw["skew"]; ok {
		t.Fatalf("skew omitted unless requested")
	}
}

func TestWriteJSON_ArrayForMany(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteJSON(&buf, []Report{report("a", "ACGT", 0), report("b", "CG", 0)}); err != nil {
		t.Fatal(err)
	}
	var got []api.ReportV1
	if err := json.Unmarshal(buf.Bytes(), &got); err != nil || len(got) != 2 || got[1].SequenceID != "b" {
		t.Fatalf("array: %v %+v", err, got)
	}
	if len(got[0].Dinucs) != 16 || got[1].LongestRun.Base != "C" {
		t.Fatalf("fields: %+v", got[1])
	}
}

func TestWriteText(t *testing.T) {
	seq := strings.Repeat("ACGT", 300)
	var buf bytes.Buffer
	r := report("big", seq, 2000)
	r.Dropped = 3
	if err := WriteText(&buf, []Report{r}); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	for _, want := range []string{
		"Sequence: big\n",
		"Length:   1,200 bp\n",
		"Dropped:  3 non-nucleotide characters",
		"GC content       50.00%",
		"Tm (gc-corrected)",
		"window wider than sequence",
		seq[:PreviewLen] + "...\n",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in:\n%s", want, out)
		}
	}
}

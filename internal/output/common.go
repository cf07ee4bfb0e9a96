package output

// Output formats understood by the writers registry.
const (
	FormatText    = "text"
	FormatJSON    = "json"
	FormatJSONL   = "jsonl"
	FormatCSV     = "csv"
	FormatDinuc   = "dinuc"
	FormatWindows = "windows"
	FormatSkew    = "skew"
	FormatFASTA   = "fasta"
)

// Formats lists every format in help-text order.
var Formats = []string{FormatText, FormatJSON, FormatJSONL, FormatCSV, FormatDinuc, FormatWindows, FormatSkew, FormatFASTA}

// Table headers for the TSV formats. Keep these as the single source of
// truth; all writers should use them.
const (
	DinucHeader   = "sequence_id\tdinucleotide\tcount\tfrequency"
	WindowsHeader = "sequence_id\tstart\tend\tgc_percent"
	SkewHeader    = "sequence_id\tposition\tgc_skew"
)

// DefaultMaxPoints caps skew series sent to charts and the HTTP API.
const DefaultMaxPoints = 2000

// PreviewLen is how much of the cleaned sequence the text summary shows.
const PreviewLen = 1000

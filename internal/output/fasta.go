package output

import (
	"bufio"
	"fmt"
	"io"
)

// WriteFASTA writes the cleaned sequence as one FASTA record with a
// ">id length=N gc=xx.xx" header, wrapped at width columns (0 = one line).
func WriteFASTA(w io.Writer, id, seq string, gcPercent float64, width int) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, ">%s length=%d gc=%.2f\n", id, len(seq), gcPercent)
	if width <= 0 {
		width = len(seq)
	}
	for off := 0; off < len(seq); off += width {
		end := off + width
		if end > len(seq) {
			end = len(seq)
		}
		bw.WriteString(seq[off:end])
		bw.WriteByte('\n')
	}
	return bw.Flush()
}

// WriteFASTAReports writes one record per report.
func WriteFASTAReports(w io.Writer, list []Report, width int) error {
	for _, r := range list {
		if err := WriteFASTA(w, r.ID, r.Sequence, r.Metrics.GCPercent, width); err != nil {
			return err
		}
	}
	return nil
}

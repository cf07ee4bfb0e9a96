package writers

import (
	"bufio"
	"encoding/json"
	"io"
	"sync"

	"seqstats/internal/jsonutil"
	"seqstats/internal/output"
)

// Reuse a 64 KiB buffered writer across JSONL streams.
var bwPool = sync.Pool{
	New: func() any { return bufio.NewWriterSize(io.Discard, 64<<10) },
}

// startStream runs an encoder goroutine that writes one JSON value per line
// for every T received. Broken pipes on the final flush are not errors.
func startStream[T any](out io.Writer, bufSize int, encode func(*json.Encoder, T) error) (chan<- T, <-chan error) {
	if bufSize <= 0 {
		bufSize = 64
	}
	in := make(chan T, bufSize)
	done := make(chan error, 1)

	go func() {
		bw := bwPool.Get().(*bufio.Writer)
		bw.Reset(out)
		defer func() {
			bw.Reset(io.Discard)
			bwPool.Put(bw)
		}()

		enc := jsonutil.NewEncoder(bw)
		for v := range in {
			if err := encode(enc, v); err != nil {
				done <- err
				return
			}
		}
		if err := bw.Flush(); err != nil && !IsBrokenPipe(err) {
			done <- err
			return
		}
		done <- nil
	}()

	return in, done
}

// StartJSONLWriter streams each Report as one JSON line (v1).
func StartJSONLWriter(out io.Writer, bufSize int) (chan<- output.Report, <-chan error) {
	return startStream(out, bufSize, func(enc *json.Encoder, r output.Report) error {
		return enc.Encode(output.ToAPIReport(r))
	})
}

func writeJSONL(w io.Writer, list []output.Report, _ Options) error {
	in, done := StartJSONLWriter(w, len(list))
	for _, r := range list {
		in <- r
	}
	close(in)
	return <-done
}

// internal/fasta/reader.go
package fasta

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/biogo/biogo/alphabet"
	"github.com/biogo/biogo/io/seqio"
	biofasta "github.com/biogo/biogo/io/seqio/fasta"
	"github.com/biogo/biogo/seq/linear"
)

// StdinID names records read from "-".
const StdinID = "stdin"

// Record is one unit of analysis input. Seq holds raw, un-normalized text:
// a whole input blob for ReadAll, or one record's letters for ReadRecords.
type Record struct {
	ID  string
	Seq []byte
}

// multiReadCloser closes multiple io.Closers when Close() is called.
type multiReadCloser struct {
	io.Reader
	closers []io.Closer
}

func (m *multiReadCloser) Close() error {
	var err error
	for _, c := range m.closers {
		if cerr := c.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}
	return err
}

// Open returns a reader for path. "-" is stdin; gzip input is detected by
// magic number or a .gz suffix.
func Open(path string) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(os.Stdin), nil
	}
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	var sig [2]byte
	n, _ := fh.Read(sig[:])
	_, _ = fh.Seek(0, io.SeekStart)
	if (n == 2 && sig[0] == 0x1f && sig[1] == 0x8b) || strings.HasSuffix(path, ".gz") {
		gr, err := gzip.NewReader(fh)
		if err != nil {
			_ = fh.Close()
			return nil, err
		}
		return &multiReadCloser{Reader: gr, closers: []io.Closer{gr, fh}}, nil
	}
	return fh, nil
}

// IDFor derives a record ID from an input path: the base name without
// sequence extensions, or StdinID for "-".
func IDFor(path string) string {
	if path == "-" || path == "" {
		return StdinID
	}
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, ".gz")
	for _, ext := range []string{".fasta", ".fa", ".fna", ".fas", ".txt", ".seq"} {
		if strings.HasSuffix(strings.ToLower(base), ext) {
			return base[:len(base)-len(ext)]
		}
	}
	return base
}

// ReadAll reads the whole input as one record.
func ReadAll(path string) (Record, error) {
	rc, err := Open(path)
	if err != nil {
		return Record{}, err
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		return Record{}, fmt.Errorf("read %s: %w", path, err)
	}
	return Record{ID: IDFor(path), Seq: b}, nil
}

// ReadRecords splits a multi-record FASTA input into one Record per entry.
// Input that does not start with a header is returned whole, as ReadAll
// would. Cancellation is checked between records.
func ReadRecords(ctx context.Context, path string) ([]Record, error) {
	rc, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer rc.Close()

	br := bufio.NewReaderSize(rc, 64<<10)
	if !startsWithHeader(br) {
		b, err := io.ReadAll(br)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		return []Record{{ID: IDFor(path), Seq: b}}, nil
	}

	sc := seqio.NewScanner(biofasta.NewReader(br, linear.NewSeq("", nil, alphabet.DNA)))
	var out []Record
	for sc.Next() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		s, ok := sc.Seq().(*linear.Seq)
		if !ok {
			return nil, fmt.Errorf("read %s: unexpected record type %T", path, sc.Seq())
		}
		letters := make([]byte, len(s.Seq))
		for i, l := range s.Seq {
			letters[i] = byte(l)
		}
		id := s.Name()
		if id == "" {
			id = fmt.Sprintf("%s_%d", IDFor(path), len(out)+1)
		}
		out = append(out, Record{ID: id, Seq: letters})
	}
	if err := sc.Error(); err != nil {
		return nil, fmt.Errorf("parse %s: %w", path, err)
	}
	return out, nil
}

// startsWithHeader peeks past leading whitespace for a '>'.
func startsWithHeader(br *bufio.Reader) bool {
	for i := 1; ; i++ {
		b, err := br.Peek(i)
		if len(b) < i || err != nil {
			return false
		}
		switch c := b[i-1]; c {
		case ' ', '\t', '\r', '\n', '\v', '\f':
			continue
		case '>':
			if i > 1 {
				_, _ = br.Discard(i - 1)
			}
			return true
		default:
			return false
		}
	}
}

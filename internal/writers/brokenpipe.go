package writers

import (
	"errors"
	"io"
	"syscall"
)

// IsBrokenPipe reports whether err means the reader went away: a closed
// pipe (`seqstats ... | head`) or an HTTP client that reset the connection
// mid-download. Such errors end output quietly.
func IsBrokenPipe(err error) bool {
	return err != nil && (errors.Is(err, syscall.EPIPE) ||
		errors.Is(err, syscall.ECONNRESET) ||
		errors.Is(err, io.ErrClosedPipe))
}

package perr

import (
	"errors"
	"fmt"
	"io"
	"net/http"
	"testing"
)

func TestSentinelsSurviveWrapping(t *testing.T) {
	err := fmt.Errorf("analyze %s: %w", "x.fa", ErrEmptySequence)
	if !errors.Is(err, ErrEmptySequence) {
		t.Fatalf("errors.Is should see the sentinel through %%w")
	}
	withField := WithField(ErrEmptySequence, "sequence")
	if !errors.Is(withField, ErrEmptySequence) {
		t.Fatalf("WithField copy should still match the sentinel")
	}
	if CodeOf(err) != CodeEmptySequence {
		t.Fatalf("CodeOf = %q", CodeOf(err))
	}
}

func TestHTTPStatus(t *testing.T) {
	cases := []struct {
		err  error
		want int
	}{
		{ErrEmptySequence, http.StatusUnprocessableEntity},
		{New(CodeValidation, "bad"), http.StatusBadRequest},
		{New(CodeJSON, "bad"), http.StatusBadRequest},
		{ErrNotFound, http.StatusNotFound},
		{New(CodeMethod, "no"), http.StatusMethodNotAllowed},
		{New(CodeTooLarge, "big"), http.StatusRequestEntityTooLarge},
		{New(CodeUnavailable, "off"), http.StatusServiceUnavailable},
		{io.EOF, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		if got := HTTPStatus(tc.err); got != tc.want {
			t.Fatalf("HTTPStatus(%v) = %d, want %d", tc.err, got, tc.want)
		}
	}
}

func TestWrapAndWire(t *testing.T) {
	if Wrap(nil, CodeIO, "x") != nil {
		t.Fatalf("Wrap(nil) must be nil")
	}
	err := Wrap(io.ErrUnexpectedEOF, CodeIO, "read input")
	if err.Error() != "read input: unexpected EOF" {
		t.Fatalf("Error() = %q", err.Error())
	}
	if !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Fatalf("cause should unwrap")
	}
	w := WireFrom(WithField(New(CodeValidation, "window must be >= 0"), "window"))
	if w.Code != CodeValidation || w.Field != "window" || w.Message == "" {
		t.Fatalf("wire = %+v", w)
	}
	if WireFrom(io.EOF).Code != CodeUnknown {
		t.Fatalf("foreign errors map to unknown")
	}
}

// Package jsonutil holds the JSON encoder settings shared by file output and
// HTTP responses: no HTML escaping, so record IDs such as "chr1<alt>"
// survive verbatim.
package jsonutil

import (
	"encoding/json"
	"io"
)

// NewEncoder returns an encoder for w with the shared settings.
func NewEncoder(w io.Writer) *json.Encoder {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc
}

// Encode writes v as one compact JSON line.
func Encode(w io.Writer, v any) error { return NewEncoder(w).Encode(v) }

// EncodePretty writes v as indented JSON to w.
func EncodePretty(w io.Writer, v any) error {
	enc := NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

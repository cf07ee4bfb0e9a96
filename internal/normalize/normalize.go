// Package normalize turns raw user text (plain or FASTA) into a canonical
// nucleotide sequence over {A,T,G,C,N}.
//
// Pipeline order
// 1 trim surrounding whitespace
// 2 FASTA input (first line starts with '>') drops every header line
// 3 Unicode uppercase (full case mapping)
// 4 remove every rune outside A T G C N
//
// Step 4 is lossy by policy: digits, gaps, IUPAC ambiguity codes and any
// other symbol vanish without an error. Report exposes how many were dropped.
package normalize

import (
	"strings"
	"sync"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

// casers are stateful, so each call takes its own chain from the pool
var chainPool = sync.Pool{
	New: func() any {
		return transform.Chain(
			cases.Upper(language.Und),
			runes.Remove(runes.Predicate(func(r rune) bool { return !IsSymbol(r) })),
		)
	},
}

// IsSymbol reports whether r is a canonical symbol (A, T, G, C or N).
func IsSymbol(r rune) bool {
	switch r {
	case 'A', 'T', 'G', 'C', 'N':
		return true
	}
	return false
}

// Result describes one normalization.
type Result struct {
	Sequence string
	FASTA    bool // input was treated as FASTA
	Headers  int  // header lines dropped
	Dropped  int  // non-whitespace, non-nucleotide characters discarded
}

// Sequence returns the canonical form of raw. Empty or whitespace-only input
// yields "". Sequence is pure and idempotent.
func Sequence(raw string) string { return Report(raw).Sequence }

// Report normalizes raw and reports what was discarded.
func Report(raw string) Result {
	var res Result
	text := strings.TrimFunc(raw, isSpace)
	if text == "" {
		return res
	}

	body := text
	if text[0] == '>' {
		res.FASTA = true
		var b strings.Builder
		b.Grow(len(text))
		for _, ln := range splitLines(text) {
			if strings.HasPrefix(ln, ">") {
				res.Headers++
				continue
			}
			b.WriteString(ln)
		}
		body = b.String()
	}

	for _, r := range body {
		if isSpace(r) {
			continue
		}
		switch unicode.ToUpper(r) {
		case 'A', 'T', 'G', 'C', 'N':
		default:
			res.Dropped++
		}
	}

	tr := chainPool.Get().(transform.Transformer)
	out, _, err := transform.String(tr, body)
	tr.Reset()
	chainPool.Put(tr)
	if err != nil {
		// only reachable on invalid UTF-8 tails; fall back to a byte scan
		out = asciiOnly(body)
	}
	res.Sequence = out
	return res
}

func asciiOnly(s string) string {
	var b strings.Builder
	for i := 0; i < len(s); i++ {
		c := s[i]
		if c >= 'a' && c <= 'z' {
			c -= 'a' - 'A'
		}
		if IsSymbol(rune(c)) {
			b.WriteByte(c)
		}
	}
	return b.String()
}

// isSpace also treats the ASCII information separators as whitespace.
func isSpace(r rune) bool {
	if r >= 0x1c && r <= 0x1f {
		return true
	}
	return unicode.IsSpace(r)
}

// splitLines splits on every Unicode line boundary (\n, \r\n, \r, \v, \f,
// \x1c-\x1e, \x85, U+2028, U+2029); terminators are not kept.
func splitLines(s string) []string {
	var lines []string
	start := 0
	for i := 0; i < len(s); {
		r, size := rune(s[i]), 1
		if r >= 0x80 {
			r, size = utf8.DecodeRuneInString(s[i:])
		}
		switch r {
		case '\n', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
			lines = append(lines, s[start:i])
			i += size
			start = i
		case '\r':
			lines = append(lines, s[start:i])
			i += size
			if i < len(s) && s[i] == '\n' {
				i++
			}
			start = i
		default:
			i += size
		}
	}
	if start < len(s) {
		lines = append(lines, s[start:])
	}
	return lines
}

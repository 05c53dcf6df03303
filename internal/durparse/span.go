// Package durparse parses the duration expressions accepted by the
// interactive shell. Two grammars are recognised: the unit-suffix form
// ("90s", "1.5h", "-20m") and the right-anchored clock form ("1:23:45.6",
// "::30", "-3"). Parsing is pure: the package performs no I/O, keeps no
// state between calls, and borrows the input line for the lifetime of any
// returned error.
//
// Errors carry a byte span into the original line so callers can point at
// the exact offending text. Span arithmetic operates on grapheme clusters
// (via rivo/uniseg), never raw bytes, so a span can never split an emoji or
// a combining sequence.
package durparse

import (
	"fmt"
	"unicode"

	"github.com/rivo/uniseg"
)

// Span identifies a substring of the line being parsed. The source line is
// carried alongside the indices so error rendering can show the text before
// and after the offending range. A Span is only valid while the line it was
// built from is alive and unmodified.
type Span struct {
	start  int
	length int
	source string
}

// newSpan builds a span over source. Bounds violations are programmer
// errors in the grammars' bookkeeping, never a consequence of user input,
// so they fail fast.
func newSpan(start, length int, source string) Span {
	if start+length > len(source) {
		panic(fmt.Sprintf("durparse: span [%d,%d) outside source of %d bytes", start, start+length, len(source)))
	}
	return Span{start: start, length: length, source: source}
}

// Start returns the byte offset of the span in the source line.
func (s Span) Start() int { return s.start }

// Len returns the length of the span in bytes.
func (s Span) Len() int { return s.length }

// Text returns the spanned substring.
func (s Span) Text() string { return s.source[s.start : s.start+s.length] }

// Before returns the source text preceding the span.
func (s Span) Before() string { return s.source[:s.start] }

// After returns the source text following the span.
func (s Span) After() string { return s.source[s.start+s.length:] }

// growLeft extends the span n bytes to the left.
func (s Span) growLeft(n int) Span {
	if n > s.start {
		panic(fmt.Sprintf("durparse: span start %d cannot move left by %d", s.start, n))
	}
	return newSpan(s.start-n, s.length+n, s.source)
}

// shrinkLeft drops n bytes from the left edge of the span.
func (s Span) shrinkLeft(n int) Span {
	if n > s.length {
		panic(fmt.Sprintf("durparse: span of %d bytes cannot shrink left by %d", s.length, n))
	}
	return newSpan(s.start+n, s.length-n, s.source)
}

// withLen returns the span truncated or extended to n bytes.
func (s Span) withLen(n int) Span {
	return newSpan(s.start, n, s.source)
}

// TrimSpace shrinks both edges past whitespace grapheme clusters. Group
// spans are located structurally before it is known whether their edges
// touch whitespace, so trimming happens late, here.
func (s Span) TrimSpace() Span {
	start, length := s.start, s.length

	gr := uniseg.NewGraphemes(s.Text())
	for gr.Next() {
		if !isSpaceCluster(gr.Str()) {
			break
		}
		n := len(gr.Str())
		start += n
		length -= n
	}

	// Trailing edge: remember where the last non-whitespace cluster ends.
	end := start
	gr = uniseg.NewGraphemes(s.source[start : s.start+s.length])
	pos := start
	for gr.Next() {
		pos += len(gr.Str())
		if !isSpaceCluster(gr.Str()) {
			end = pos
		}
	}
	return newSpan(start, end-start, s.source)
}

// isSpaceCluster reports whether every rune in the cluster is whitespace.
func isSpaceCluster(cluster string) bool {
	for _, r := range cluster {
		if !unicode.IsSpace(r) {
			return false
		}
	}
	return len(cluster) > 0
}

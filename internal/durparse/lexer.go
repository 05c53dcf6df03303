package durparse

import "github.com/rivo/uniseg"

type tokenKind int

const (
	tokenData tokenKind = iota
	tokenColon
	tokenDot
	tokenPlus
	tokenMinus
)

type token struct {
	kind tokenKind
	span Span
}

// cluster is one grapheme cluster and its byte offset in the source line.
type cluster struct {
	offset int
	text   string
}

// lexer scans the grapheme clusters of a line in reverse, last cluster
// first. The clock grammar is right-anchored: the rightmost field is always
// seconds, with minutes and hours optionally appearing to its left, so a
// token's meaning depends on its position relative to the end of the line.
// Scanning backward makes that position known immediately.
//
// Delimiters (":", ".", "+", "-") are always single-cluster tokens.
// Consecutive non-delimiter clusters coalesce into one data token whose span
// keeps interior whitespace but never leading or trailing whitespace.
//
// A lexer is not restartable; each parse constructs a fresh one.
type lexer struct {
	clusters []cluster
	pos      int // index of the next cluster to consume, moving toward 0
	source   string

	buffered bool
	buf      token
	bufOK    bool
}

func newLexer(s string) *lexer {
	var clusters []cluster
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		from, _ := gr.Positions()
		clusters = append(clusters, cluster{offset: from, text: gr.Str()})
	}
	return &lexer{clusters: clusters, pos: len(clusters) - 1, source: s}
}

func singleToken(text string) (tokenKind, bool) {
	switch text {
	case ":":
		return tokenColon, true
	case ".":
		return tokenDot, true
	case "+":
		return tokenPlus, true
	case "-":
		return tokenMinus, true
	}
	return tokenData, false
}

// next returns the next token in the reverse scan.
func (lx *lexer) next() (token, bool) {
	if lx.buffered {
		lx.buffered = false
		return lx.buf, lx.bufOK
	}
	return lx.scan()
}

// peek returns the token next would return without consuming it.
func (lx *lexer) peek() (token, bool) {
	if !lx.buffered {
		lx.buf, lx.bufOK = lx.scan()
		lx.buffered = true
	}
	return lx.buf, lx.bufOK
}

func (lx *lexer) scan() (token, bool) {
	c, ok := lx.advance()
	if !ok {
		return token{}, false
	}
	span := newSpan(c.offset, len(c.text), lx.source)
	if kind, isDelim := singleToken(c.text); isDelim {
		return token{kind: kind, span: span}, true
	}

	// Coalesce the data run leftward. Whitespace clusters are counted but
	// only folded into the span once a further non-whitespace cluster is
	// seen, which keeps interior whitespace and drops the leading run.
	ignored := 0
	for lx.pos >= 0 {
		c := lx.clusters[lx.pos]
		if _, isDelim := singleToken(c.text); isDelim {
			break
		}
		if isSpaceCluster(c.text) {
			ignored += len(c.text)
		} else {
			span = span.growLeft(len(c.text) + ignored)
			ignored = 0
		}
		lx.pos--
	}
	return token{kind: tokenData, span: span}, true
}

// advance yields the next non-whitespace cluster, right to left. Skipping
// whitespace here is what keeps data tokens free of trailing whitespace.
func (lx *lexer) advance() (cluster, bool) {
	for lx.pos >= 0 {
		c := lx.clusters[lx.pos]
		lx.pos--
		if !isSpaceCluster(c.text) {
			return c, true
		}
	}
	return cluster{}, false
}

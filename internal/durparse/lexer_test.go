package durparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// collect drains a lexer into a slice, in scan (reverse) order.
func collect(t *testing.T, s string) []token {
	t.Helper()
	lx := newLexer(s)
	var tokens []token
	for {
		tok, ok := lx.next()
		if !ok {
			return tokens
		}
		tokens = append(tokens, tok)
	}
}

func TestLexer_ScansInReverse(t *testing.T) {
	tokens := collect(t, "1:23")

	require.Len(t, tokens, 3)
	assert.Equal(t, tokenData, tokens[0].kind)
	assert.Equal(t, "23", tokens[0].span.Text())
	assert.Equal(t, tokenColon, tokens[1].kind)
	assert.Equal(t, tokenData, tokens[2].kind)
	assert.Equal(t, "1", tokens[2].span.Text())
}

func TestLexer_WhitespaceTrimmed(t *testing.T) {
	// Data tokens keep interior whitespace but never leading or trailing
	// whitespace.
	const s = " 1:2    45  6 : 4 "
	tokens := collect(t, s)
	require.Len(t, tokens, 5)

	want := []struct {
		kind  tokenKind
		start int
		text  string
	}{
		{tokenData, 16, "4"},
		{tokenColon, 14, ":"},
		{tokenData, 3, "2    45  6"},
		{tokenColon, 2, ":"},
		{tokenData, 1, "1"},
	}
	for i, w := range want {
		assert.Equal(t, w.kind, tokens[i].kind, "token %d kind", i)
		assert.Equal(t, w.start, tokens[i].span.Start(), "token %d start", i)
		assert.Equal(t, w.text, tokens[i].span.Text(), "token %d text", i)
	}
}

func TestLexer_DelimitersAdjacentToData(t *testing.T) {
	tokens := collect(t, "+1.5-")
	require.Len(t, tokens, 5)
	assert.Equal(t, tokenMinus, tokens[0].kind)
	assert.Equal(t, tokenData, tokens[1].kind)
	assert.Equal(t, "5", tokens[1].span.Text())
	assert.Equal(t, tokenDot, tokens[2].kind)
	assert.Equal(t, tokenData, tokens[3].kind)
	assert.Equal(t, "1", tokens[3].span.Text())
	assert.Equal(t, tokenPlus, tokens[4].kind)
}

func TestLexer_GraphemeClustersStayWhole(t *testing.T) {
	// A data run containing a multi-byte emoji cluster is one token whose
	// span covers the whole cluster.
	const s = "2🪴1:3"
	tokens := collect(t, s)
	require.Len(t, tokens, 3)
	assert.Equal(t, "3", tokens[0].span.Text())
	assert.Equal(t, tokenColon, tokens[1].kind)
	assert.Equal(t, "2🪴1", tokens[2].span.Text())
}

func TestLexer_Empty(t *testing.T) {
	assert.Empty(t, collect(t, ""))
	assert.Empty(t, collect(t, "   "))
}

func TestLexer_Peek(t *testing.T) {
	lx := newLexer("1:2")
	p1, ok := lx.peek()
	require.True(t, ok)
	n1, ok := lx.next()
	require.True(t, ok)
	assert.Equal(t, p1, n1)

	_, _ = lx.next() // colon
	_, _ = lx.next() // "1"
	_, ok = lx.peek()
	assert.False(t, ok)
}

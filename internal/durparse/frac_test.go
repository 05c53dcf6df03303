package durparse

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrac_Basic(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  uint64
	}{
		{"1", 1, 1},
		{"2", 1, 2},
		{"23", 2, 23},
		{"2", 2, 20},
		{"5", 9, 500000000},
		{"123456789", 9, 123456789},
	}
	for _, tc := range tests {
		got, err := parseFrac(tc.in, tc.width)
		require.NoError(t, err, "parseFrac(%q, %d)", tc.in, tc.width)
		assert.Equal(t, tc.want, got, "parseFrac(%q, %d)", tc.in, tc.width)
	}
}

func TestParseFrac_TruncatesExcessDigits(t *testing.T) {
	// Digits past the width are validated but contribute nothing: the value
	// is truncated, never rounded.
	got, err := parseFrac("23", 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(2), got)

	got, err = parseFrac("1234567899999", 9)
	require.NoError(t, err)
	assert.Equal(t, uint64(123456789), got)

	// Truncated positions still reject non-digits.
	_, err = parseFrac("123456789x", 9)
	var digitErr *fracDigitError
	require.ErrorAs(t, err, &digitErr)
	assert.Equal(t, 9, digitErr.idx)
}

func TestParseFrac_NonDigitCluster(t *testing.T) {
	_, err := parseFrac("24🪴21", 5)
	var digitErr *fracDigitError
	require.ErrorAs(t, err, &digitErr)
	assert.Equal(t, 2, digitErr.idx)
	assert.Equal(t, 4, digitErr.length)
}

func TestParseFrac_NumeratorOverflow(t *testing.T) {
	// One past the 32-bit maximum; unreachable at width 9 but the checked
	// arithmetic is exercised directly.
	const s = "4294967296"
	_, err := parseFrac(s, len(s))
	var ovErr *fracOverflowError
	require.ErrorAs(t, err, &ovErr)
	assert.Equal(t, len(s)-1, ovErr.idx)
}

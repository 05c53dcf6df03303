package render_test

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jpl-au/tempo/internal/durparse"
	"github.com/jpl-au/tempo/internal/render"
)

func parseErr(t *testing.T, line string, allowNeg bool) *durparse.ParseError {
	t.Helper()
	_, err := durparse.Parse(line, allowNeg)
	var perr *durparse.ParseError
	require.ErrorAs(t, err, &perr)
	return perr
}

func TestParseErrorVisual(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf, false, true)

	r.ParseError(parseErr(t, "1:2:3:4", true))

	assert.Equal(t, "1:2:3:4\n ^\nunexpected colon\nthere is no colon before hours\n", buf.String())
}

func TestParseErrorVisual_WideGraphemes(t *testing.T) {
	// The caret underline is sized by display width, so the two-cell
	// emoji gets two carets' worth of underline.
	var buf bytes.Buffer
	r := render.New(&buf, false, true)

	r.ParseError(parseErr(t, "1:2🪴3", true))

	assert.Equal(t, "1:2🪴3\n  ^^^^\ninvalid integer\nseconds are parsed as an integer\n", buf.String())
}

func TestParseErrorVisual_EmptySpanStillPointed(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf, false, true)

	_, err := durparse.ParseUnit("", true)
	var perr *durparse.ParseError
	require.ErrorAs(t, err, &perr)
	r.ParseError(perr)

	assert.Equal(t, "\n^\nmissing unit\nuse 's' for seconds, 'm' for minutes, and 'h' for hours\n", buf.String())
}

func TestParseErrorPlain(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf, false, false)

	r.ParseError(parseErr(t, "1:2:3:4", true))

	assert.Equal(t, "input: 1:2:3:4\nerror: unexpected colon\n help: there is no colon before hours\n", buf.String())
}

func TestParseErrorPlain_NoHelpLine(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf, false, false)

	r.ParseError(parseErr(t, "3-", true))

	assert.Equal(t, "input: 3-\nerror: sign must be given at the beginning\n", buf.String())
}

func TestMessageHelpersUnstyled(t *testing.T) {
	var buf bytes.Buffer
	r := render.New(&buf, false, true)

	r.Red("a")
	r.Yellow("b")
	r.Green("c")
	r.Magenta("d")
	r.Cyan("e")
	r.Plain("f")

	assert.Equal(t, "a\nb\nc\nd\ne\nf\n", buf.String())
}

func TestElapsed(t *testing.T) {
	got := render.Elapsed(time.Hour+30*time.Minute, 2)
	assert.Equal(t, "1:30:00.00\n5400.00 seconds\n90.00 minutes\n1.50 hours", got)

	got = render.Elapsed(0, 0)
	assert.Equal(t, "0:00:00\n0 seconds\n0 minutes\n0 hours", got)
}

func TestElapsed_PrecisionClamped(t *testing.T) {
	d := time.Second + 123456789*time.Nanosecond
	assert.Equal(t, render.Elapsed(d, durparse.MaxPrecision), render.Elapsed(d, 99))
	assert.Equal(t, render.Elapsed(d, 0), render.Elapsed(d, -3))
}

func TestSeconds_Pluralisation(t *testing.T) {
	// Singular only when the rendered value reads exactly "1".
	assert.Equal(t, "1 second", render.Seconds(time.Second, 0))
	assert.Equal(t, "1.00 seconds", render.Seconds(time.Second, 2))
	assert.Equal(t, "2 seconds", render.Seconds(2*time.Second, 0))
	assert.Equal(t, "0 seconds", render.Seconds(0, 0))
}

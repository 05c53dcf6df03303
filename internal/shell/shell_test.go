package shell

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// run scripts a shell session and returns what was written to out and err.
func run(t *testing.T, opts Options, input string) (string, string) {
	t.Helper()
	var out, errOut bytes.Buffer
	opts.In = strings.NewReader(input)
	opts.Out = &out
	opts.Err = &errOut
	require.NoError(t, New(opts).Run())
	return out.String(), errOut.String()
}

func TestQuit(t *testing.T) {
	_, errOut := run(t, Options{Version: "1.0.0"}, "q\n")
	assert.Contains(t, errOut, "tempo 1.0.0: terminal stopwatch")
	assert.Contains(t, errOut, `type "h" for help`)
}

func TestEOFQuits(t *testing.T) {
	run(t, Options{}, "")
}

func TestDisplay(t *testing.T) {
	out, errOut := run(t, Options{Precision: 2}, "\nq\n")
	assert.Contains(t, out, "0:00:00.00\n0.00 seconds\n0.00 minutes\n0.00 hours")
	assert.Contains(t, errOut, "stopped")
}

func TestToggle(t *testing.T) {
	_, errOut := run(t, Options{Precision: 2}, "s\ns\nq\n")
	assert.Contains(t, errOut, "started stopwatch")
	assert.Contains(t, errOut, "since stopped")
	assert.Contains(t, errOut, "stopped stopwatch")
}

func TestChange(t *testing.T) {
	out, errOut := run(t, Options{Precision: 2}, "c\n90s\n\nq\n")
	assert.Contains(t, errOut, "updated elapsed time")
	assert.Contains(t, out, "new value? ")
	assert.Contains(t, out, "0:01:30.00")
	assert.Contains(t, out, "90.00 seconds")
}

func TestChangeEmptyMeansNoChange(t *testing.T) {
	out, errOut := run(t, Options{Precision: 2}, "c\n\n\nq\n")
	assert.NotContains(t, errOut, "updated elapsed time")
	assert.Contains(t, out, "0:00:00.00")
}

func TestChangeNegativeRejected(t *testing.T) {
	out, errOut := run(t, Options{Precision: 2}, "c\n-5s\n\nq\n")
	assert.Contains(t, errOut, "duration can't be negative")
	// Elapsed time is untouched after the rejected change.
	assert.Contains(t, out, "0:00:00.00")
}

func TestChangeParseErrorRendersExcerpt(t *testing.T) {
	_, errOut := run(t, Options{Visual: true}, "c\n1:2:3:4\nq\n")
	assert.Contains(t, errOut, "1:2:3:4\n ^\nunexpected colon")
}

func TestOffset(t *testing.T) {
	out, errOut := run(t, Options{Precision: 2}, "o\n1:30\n\no\n-30s\n\nq\n")
	assert.Contains(t, errOut, "added to elapsed time")
	assert.Contains(t, errOut, "subtracted from elapsed time")
	assert.Contains(t, out, "0:01:30.00")
	assert.Contains(t, out, "0:01:00.00")
}

func TestOffsetSubtractSaturatesAtZero(t *testing.T) {
	out, _ := run(t, Options{Precision: 2}, "o\n-1h\n\nq\n")
	assert.Contains(t, out, "0:00:00.00")
}

func TestUnrecognisedCommand(t *testing.T) {
	_, errOut := run(t, Options{}, "z\nq\n")
	assert.Contains(t, errOut, `unrecognised command "z"`)
}

func TestPrecision(t *testing.T) {
	out, errOut := run(t, Options{Precision: 2}, "p\n0\n\nq\n")
	assert.Contains(t, errOut, "updated precision")
	assert.Contains(t, out, "0:00:00\n0 seconds")

	_, errOut = run(t, Options{}, "p\n99\nq\n")
	assert.Contains(t, errOut, "precision clamped to 9")

	_, errOut = run(t, Options{}, "p\nabc\nq\n")
	assert.Contains(t, errOut, "invalid precision")
}

func TestPrompt(t *testing.T) {
	out, _ := run(t, Options{Name: "work"}, "q\n")
	assert.Contains(t, out, "work ; ")

	// Renaming changes the prompt; the running marker is "*".
	out, _ = run(t, Options{}, "n\nfocus\ns\nq\n")
	assert.Contains(t, out, "focus ; ")
	assert.Contains(t, out, "focus * ")
}

func TestHelp(t *testing.T) {
	out, _ := run(t, Options{}, "h\nq\n")
	assert.Contains(t, out, "| command |")
	assert.Contains(t, out, "toggle stopwatch")
}

func TestSessionsWithoutLog(t *testing.T) {
	_, errOut := run(t, Options{}, "l\nq\n")
	assert.Contains(t, errOut, "no recorded sessions")
}

func TestReadLimit(t *testing.T) {
	// A 130-byte line is consumed as a 128-byte read plus the remainder;
	// both are rejected as commands and the shell carries on.
	input := strings.Repeat("x", 130) + "\nq\n"
	_, errOut := run(t, Options{}, input)
	assert.Contains(t, errOut, `unrecognised command "`+strings.Repeat("x", 128)+`"`)
	assert.Contains(t, errOut, `unrecognised command "xx"`)
}

func TestEscapeControl(t *testing.T) {
	assert.Equal(t, `q\a`, escapeControl("q\a"))
	assert.Equal(t, `\x1b[2J`, escapeControl("\x1b[2J"))
	assert.Equal(t, "1:30", escapeControl("1:30"))
	assert.Equal(t, "🪴", escapeControl("🪴"))
}

func TestParseCommandTable(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want command
	}{
		{"h", cmdHelp},
		{"", cmdDisplay},
		{"s", cmdToggle},
		{"S", cmdToggle},
		{"r", cmdReset},
		{"c", cmdChange},
		{"o", cmdOffset},
		{"n", cmdName},
		{"p", cmdPrecision},
		{"l", cmdSessions},
		{"q", cmdQuit},
	} {
		got, ok := parseCommand(tc.in)
		require.True(t, ok, "parseCommand(%q)", tc.in)
		assert.Equal(t, tc.want, got, "parseCommand(%q)", tc.in)
		if tc.in != "" && tc.in == strings.ToLower(tc.in) {
			assert.Equal(t, tc.in, got.String())
		}
	}

	_, ok := parseCommand("x")
	assert.False(t, ok)
}

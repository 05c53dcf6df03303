// Package render draws parser diagnostics, status messages, and elapsed
// times on a terminal.
//
// Parse errors render as an excerpt of the offending line with the bad
// part highlighted. In visual mode a caret underline is drawn beneath the
// highlighted text, sized by display width so wide and zero-width
// graphemes line up; plain mode prints a labelled excerpt instead, for
// pipes and screen readers.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"

	"github.com/jpl-au/tempo/internal/durparse"
)

// Renderer writes styled output to a single destination. Colour and the
// caret underline are decided by the caller (flags, config, TTY
// detection); the renderer itself never sniffs the writer.
type Renderer struct {
	w      io.Writer
	color  bool
	visual bool
}

// New returns a renderer writing to w. When color is false all styling is
// skipped; when visual is false parse errors render in plain mode.
func New(w io.Writer, color, visual bool) *Renderer {
	return &Renderer{w: w, color: color, visual: visual}
}

// Writer returns the renderer's destination.
func (r *Renderer) Writer() io.Writer {
	return r.w
}

// ParseError renders e as an excerpt of the input line. Visual mode
// prints the line with the span highlighted, a caret underline, the
// message, and an optional help line. Plain mode labels each part
// instead of drawing the caret.
func (r *Renderer) ParseError(e *durparse.ParseError) {
	before, text, after := e.Span.Before(), e.Span.Text(), e.Span.After()

	if r.visual {
		fmt.Fprintf(r.w, "%s%s%s\n", before, r.paint(spanStyle, text), after)

		pad := runewidth.StringWidth(before)
		width := runewidth.StringWidth(text)
		if width < 1 {
			// An empty span still points at a position.
			width = 1
		}
		fmt.Fprintf(r.w, "%s%s\n", strings.Repeat(" ", pad), r.paint(caretStyle, strings.Repeat("^", width)))

		fmt.Fprintln(r.w, r.paint(redStyle, e.Error()))
		if help := e.Help(); help != "" {
			fmt.Fprintln(r.w, r.paint(cyanStyle, help))
		}
		return
	}

	fmt.Fprintf(r.w, "input: %s%s%s\n", before, r.paint(spanStyle, text), after)
	fmt.Fprintf(r.w, "error: %s\n", e.Error())
	if help := e.Help(); help != "" {
		fmt.Fprintf(r.w, " help: %s\n", help)
	}
}

// Red writes a red message line.
func (r *Renderer) Red(msg string) {
	fmt.Fprintln(r.w, r.paint(redStyle, msg))
}

// Yellow writes a yellow message line.
func (r *Renderer) Yellow(msg string) {
	fmt.Fprintln(r.w, r.paint(yellowStyle, msg))
}

// Green writes a green message line.
func (r *Renderer) Green(msg string) {
	fmt.Fprintln(r.w, r.paint(greenStyle, msg))
}

// Magenta writes a magenta message line.
func (r *Renderer) Magenta(msg string) {
	fmt.Fprintln(r.w, r.paint(magentaStyle, msg))
}

// Cyan writes a cyan message line.
func (r *Renderer) Cyan(msg string) {
	fmt.Fprintln(r.w, r.paint(cyanStyle, msg))
}

// Plain writes an unstyled line.
func (r *Renderer) Plain(msg string) {
	fmt.Fprintln(r.w, msg)
}

func (r *Renderer) paint(style lipgloss.Style, s string) string {
	if !r.color {
		return s
	}
	return style.Render(s)
}

// Elapsed formats d for display: the clock form followed by the elapsed
// seconds, minutes, and hours at the given precision.
func Elapsed(d time.Duration, prec int) string {
	if prec < 0 {
		prec = 0
	} else if prec > durparse.MaxPrecision {
		prec = durparse.MaxPrecision
	}

	secs := d.Seconds()
	mins := secs / durparse.SecondsPerMinute
	hours := secs / durparse.SecondsPerHour

	var b strings.Builder
	b.WriteString(durparse.FormatClock(d, prec))
	fmt.Fprintf(&b, "\n%.*f %s", prec, secs, pluralise("second", secs, prec))
	fmt.Fprintf(&b, "\n%.*f %s", prec, mins, pluralise("minute", mins, prec))
	fmt.Fprintf(&b, "\n%.*f %s", prec, hours, pluralise("hour", hours, prec))
	return b.String()
}

// Seconds formats d as a single seconds line, as shown after a restart.
func Seconds(d time.Duration, prec int) string {
	if prec < 0 {
		prec = 0
	} else if prec > durparse.MaxPrecision {
		prec = durparse.MaxPrecision
	}
	secs := d.Seconds()
	return fmt.Sprintf("%.*f %s", prec, secs, pluralise("second", secs, prec))
}

// pluralise keys off the rendered value, so "1.0 seconds" but "1 second".
func pluralise(noun string, x float64, prec int) string {
	if strconv.FormatFloat(x, 'f', prec, 64) == "1" {
		return noun
	}
	return noun + "s"
}

package durparse

import (
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/rivo/uniseg"
)

// Unit is the trailing unit character of the unit-suffix grammar.
type Unit int

const (
	UnitSecond Unit = iota
	UnitMinute
	UnitHour
)

// seconds returns the number of whole seconds in one unit.
func (u Unit) seconds() uint64 {
	switch u {
	case UnitMinute:
		return SecondsPerMinute
	case UnitHour:
		return SecondsPerHour
	}
	return 1
}

func (u Unit) String() string {
	switch u {
	case UnitSecond:
		return "second"
	case UnitMinute:
		return "minute"
	case UnitHour:
		return "hour"
	}
	return "unknown"
}

// unitFromCluster maps a trailing grapheme cluster to its unit.
func unitFromCluster(text string) (Unit, bool) {
	switch text {
	case "s":
		return UnitSecond, true
	case "m":
		return UnitMinute, true
	case "h":
		return UnitHour, true
	}
	return 0, false
}

// ParseUnit parses the unit-suffix grammar
//
//	["+"|"-"]? <integer> ["." <fraction>]? <unit>
//
// where unit is one of s, m, h. Whitespace is allowed around the number and
// before the unit. The unit is a single trailing grapheme cluster consumed
// before the numeric body is examined, so an emoji in unit position is
// reported as one whole unrecognised cluster.
func ParseUnit(s string, allowNeg bool) (*ReadDur, error) {
	whole := newSpan(0, len(s), s).TrimSpace()
	if whole.Len() == 0 {
		return nil, unitErr(&ParseError{Span: whole, Kind: KindUnitMissing})
	}

	// Take the last cluster as the candidate unit.
	var last cluster
	gr := uniseg.NewGraphemes(whole.Text())
	for gr.Next() {
		from, _ := gr.Positions()
		last = cluster{offset: whole.Start() + from, text: gr.Str()}
	}
	unitSpan := newSpan(last.offset, len(last.text), s)
	unit, ok := unitFromCluster(last.text)
	if !ok {
		return nil, unitErr(&ParseError{Span: unitSpan, Kind: KindUnitUnknown, Grapheme: last.text})
	}

	// Everything before the unit is the signed numeric body.
	body := newSpan(whole.Start(), last.offset-whole.Start(), s).TrimSpace()

	neg := false
	var negSpan Span
	if text := body.Text(); strings.HasPrefix(text, "+") || strings.HasPrefix(text, "-") {
		neg = text[0] == '-'
		negSpan = body.withLen(1)
		body = body.shrinkLeft(1).TrimSpace()
	}
	if neg && !allowNeg {
		return nil, unitErr(&ParseError{Span: negSpan, Kind: KindNegative, Unit: unit})
	}

	if body.Len() == 0 {
		before := newSpan(0, last.offset, s)
		return nil, unitErr(&ParseError{Span: before, Kind: KindNumberMissing, Unit: unit})
	}

	intSpan, fracSpan, hasDot := splitAtDot(body)

	var units uint64
	if text := intSpan.Text(); text != "" {
		var err error
		units, err = strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, unitErr(&ParseError{Span: intSpan, Kind: intErrKind(err), Unit: unit})
		}
	} else if !hasDot || fracSpan.Len() == 0 {
		return nil, unitErr(&ParseError{Span: body, Kind: KindNumberMissing, Unit: unit})
	}

	var fracNanos uint64
	if fracSpan.Len() > 0 {
		n, err := parseFrac(fracSpan.Text(), FracWidth)
		if err != nil {
			perr := fracError(fracSpan, err)
			perr.Unit = unit
			return nil, unitErr(perr)
		}
		// n is nanoseconds of one unit; scale to real nanoseconds. Bounded
		// by 10^9 * 3600, well inside 64 bits.
		fracNanos = n * unit.seconds()
	}

	if units > math.MaxUint64/unit.seconds() {
		return nil, unitErr(&ParseError{Span: intSpan, Kind: KindDurationOverflow, Unit: unit})
	}
	total, ok := addSeconds(0, units*unit.seconds())
	if !ok {
		return nil, unitErr(&ParseError{Span: intSpan, Kind: KindDurationOverflow, Unit: unit})
	}
	if total > math.MaxInt64-time.Duration(fracNanos) {
		return nil, unitErr(&ParseError{Span: body, Kind: KindDurationOverflow, Unit: unit})
	}
	total += time.Duration(fracNanos)

	return &ReadDur{Dur: total, Neg: neg}, nil
}

// splitAtDot splits the numeric body at the first literal "." byte into the
// integer and fraction spans, both trimmed. hasDot is false when the body
// has no dot (zero fraction).
func splitAtDot(body Span) (intSpan, fracSpan Span, hasDot bool) {
	text := body.Text()
	idx := strings.IndexByte(text, '.')
	if idx < 0 {
		return body, body.shrinkLeft(body.Len()), false
	}
	intSpan = body.withLen(idx).TrimSpace()
	fracSpan = body.shrinkLeft(idx + 1).TrimSpace()
	return intSpan, fracSpan, true
}

// unitErr tags a ParseError as produced by the unit grammar so shared kinds
// phrase their messages in terms of the unit.
func unitErr(e *ParseError) *ParseError {
	e.grammar = errUnit
	return e
}

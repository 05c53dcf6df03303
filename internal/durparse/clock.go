package durparse

import (
	"math"
	"strconv"
	"strings"
	"time"
)

// ParseClock parses the right-anchored clock grammar
//
//	["+"|"-"]? [[HH:]MM:]SS[.fff]
//
// Only the trailing field group is mandatory; empty fields default to zero,
// so "3", ":3", "0:3", "::3" and "0::3" all mean three seconds. Fields are
// unsigned counts of their base unit and are not range-checked ("0:99" is
// 99 seconds); only overflow of the accumulated duration is rejected.
func ParseClock(s string, allowNeg bool) (*ReadDur, error) {
	lx := newLexer(s)
	cur := GroupSecondsFrac
	var groups [groupCount]Span
	for i := range groups {
		groups[i] = newSpan(0, 0, s)
	}

	neg := false
	var negSpan Span

	for {
		tok, ok := lx.next()
		if !ok {
			break
		}
		switch {
		case cur == GroupSecondsFrac && tok.kind == tokenColon:
			// No dot was seen, so the data taken for subseconds was whole
			// seconds all along. Reassign, then take the colon transition.
			groups[GroupSecondsWhole] = groups[GroupSecondsFrac]
			groups[GroupSecondsFrac] = newSpan(0, 0, s)
			cur = GroupMinutes

		case cur == GroupSecondsFrac && tok.kind == tokenDot:
			cur = GroupSecondsWhole

		case cur == GroupSecondsFrac && tok.kind == tokenData:
			// The rightmost data is only fractional if a dot follows
			// leftward. A sign counts as "nothing follows": signs are only
			// legal as the final token of the reverse scan anyway.
			next, more := lx.peek()
			if !more || next.kind == tokenPlus || next.kind == tokenMinus {
				cur = GroupSecondsWhole
			}
			groups[cur] = tok.span

		case cur == GroupSecondsWhole && tok.kind == tokenColon:
			cur = GroupMinutes

		case cur == GroupMinutes && tok.kind == tokenColon:
			cur = GroupHours

		case cur == GroupHours && tok.kind == tokenColon:
			return nil, &ParseError{Span: tok.span, Kind: KindUnexpectedColon}

		case tok.kind == tokenData:
			groups[cur] = tok.span

		case tok.kind == tokenDot:
			return nil, &ParseError{Span: tok.span, Kind: KindUnexpectedDot, Group: cur}

		case tok.kind == tokenPlus, tok.kind == tokenMinus:
			if _, more := lx.peek(); more {
				return nil, &ParseError{Span: tok.span, Kind: KindUnexpectedSign, Neg: tok.kind == tokenMinus}
			}
			if tok.kind == tokenMinus {
				neg = true
				negSpan = tok.span
			}
		}
	}

	// Negation is a property of the whole expression: check it before any
	// field parsing so the diagnostic names the sign, not a field.
	if neg && !allowNeg {
		return nil, &ParseError{Span: negSpan, Kind: KindNegative}
	}

	var total time.Duration

	for _, step := range []struct {
		group      Group
		secPerUnit uint64
	}{
		{GroupHours, SecondsPerHour},
		{GroupMinutes, SecondsPerMinute},
		{GroupSecondsWhole, 1},
	} {
		span := groups[step.group]
		// The span was located structurally; trim only now.
		text := strings.TrimSpace(span.Text())
		if text == "" {
			continue
		}
		units, err := strconv.ParseUint(text, 10, 64)
		if err != nil {
			return nil, &ParseError{Span: span, Kind: intErrKind(err), Group: step.group}
		}
		if units > math.MaxUint64/step.secPerUnit {
			return nil, &ParseError{Span: span, Kind: KindDurationOverflow, Group: step.group}
		}
		var ok bool
		total, ok = addSeconds(total, units*step.secPerUnit)
		if !ok {
			return nil, &ParseError{Span: span, Kind: KindDurationOverflow, Group: step.group}
		}
	}

	{
		span := groups[GroupSecondsFrac]
		text := span.Text()
		if strings.TrimSpace(text) != "" {
			nanos, err := parseFrac(text, FracWidth)
			if err != nil {
				return nil, fracError(span, err)
			}
			if nanos >= GroupSecondsFrac.Max() {
				// A 9-digit numerator cannot reach 10^9; reaching here means
				// the fraction parser broke its own contract.
				panic("durparse: fractional numerator out of range")
			}
			var ok bool
			total, ok = addNanos(total, nanos)
			if !ok {
				return nil, &ParseError{Span: span, Kind: KindDurationOverflow, Group: GroupSecondsFrac}
			}
		}
	}

	return &ReadDur{Dur: total, Neg: neg}, nil
}

// fracError converts a fraction-parser failure on the subseconds field into
// a ParseError whose span points at the offending cluster within the line.
func fracError(span Span, err error) *ParseError {
	switch e := err.(type) {
	case *fracDigitError:
		at := span.shrinkLeft(e.idx).withLen(e.length)
		return &ParseError{Span: at, Kind: KindParseInt, Group: GroupSecondsFrac}
	case *fracOverflowError:
		at := span.shrinkLeft(e.idx)
		return &ParseError{Span: at, Kind: KindDurationOverflow, Group: GroupSecondsFrac}
	}
	return &ParseError{Span: span, Kind: KindParseInt, Group: GroupSecondsFrac}
}

// addSeconds adds secs whole seconds to total, reporting overflow instead
// of wrapping.
func addSeconds(total time.Duration, secs uint64) (time.Duration, bool) {
	if secs > uint64(math.MaxInt64)/uint64(time.Second) {
		return 0, false
	}
	add := time.Duration(secs) * time.Second
	if total > math.MaxInt64-add {
		return 0, false
	}
	return total + add, true
}

// addNanos adds a sub-second nanosecond count to total.
func addNanos(total time.Duration, nanos uint64) (time.Duration, bool) {
	add := time.Duration(nanos)
	if total > math.MaxInt64-add {
		return 0, false
	}
	return total + add, true
}

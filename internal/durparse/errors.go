package durparse

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrKind is the closed set of parse failures. The renderer switches
// exhaustively over these; there is no extension point.
type ErrKind int

const (
	// KindUnitMissing: the input names no unit and is not unit-shaped.
	KindUnitMissing ErrKind = iota
	// KindUnitUnknown: the trailing grapheme is not one of s, m, h.
	KindUnitUnknown
	// KindNumberMissing: a unit was given with no numeric body before it.
	KindNumberMissing
	// KindParseInt: a numeric field is not a valid integer.
	KindParseInt
	// KindDurationOverflow: checked arithmetic overflowed while converting
	// a field. Integer-parser range errors are folded into this kind so the
	// underlying integer width never reaches the user.
	KindDurationOverflow
	// KindUnexpectedColon: a colon appeared after the hours field closed.
	KindUnexpectedColon
	// KindUnexpectedDot: a decimal point appeared outside the seconds field.
	KindUnexpectedDot
	// KindUnexpectedSign: a sign anywhere but the absolute start.
	KindUnexpectedSign
	// KindNegative: a syntactically valid negative value where the call
	// site disallows negation.
	KindNegative
)

// errGrammar records which grammar produced an error, selecting between
// group-phrased and unit-phrased messages for the kinds both grammars share.
type errGrammar int

const (
	errClock errGrammar = iota
	errUnit
)

// ParseError is a parse failure pointing at the text that caused it. The
// span borrows from the caller's input line: the error is only valid while
// that line is.
type ParseError struct {
	Span Span
	Kind ErrKind

	// Group is the clock field being processed when the error arose.
	// Meaningful only for errors out of the clock grammar.
	Group Group
	// Unit is the recognised unit, for unit-grammar errors past the suffix.
	Unit Unit
	// Grapheme is the offending cluster for KindUnitUnknown, always a whole
	// cluster even when multi-byte.
	Grapheme string
	// Neg distinguishes "-" from "+" for KindUnexpectedSign.
	Neg bool

	grammar errGrammar
}

func (e *ParseError) Error() string {
	switch e.Kind {
	case KindUnitMissing:
		return "missing unit"
	case KindUnitUnknown:
		return fmt.Sprintf("unrecognised unit %q", e.Grapheme)
	case KindNumberMissing:
		return "unit given, but missing value"
	case KindParseInt:
		return "invalid integer"
	case KindDurationOverflow:
		if e.grammar == errUnit {
			return fmt.Sprintf("duration overflow while parsing %ss", e.Unit)
		}
		return fmt.Sprintf("duration overflow while parsing %s", e.Group)
	case KindUnexpectedColon:
		return "unexpected colon"
	case KindUnexpectedDot:
		return "unexpected decimal point"
	case KindUnexpectedSign:
		return "sign must be given at the beginning"
	case KindNegative:
		return "duration can't be negative"
	}
	return "invalid duration"
}

// Help returns a longer hint for the error, or "" when none exists.
func (e *ParseError) Help() string {
	switch e.Kind {
	case KindUnitMissing, KindUnitUnknown:
		return "use 's' for seconds, 'm' for minutes, and 'h' for hours"
	case KindNumberMissing:
		return fmt.Sprintf("expected the number of %ss", e.Unit)
	case KindParseInt:
		if e.grammar == errUnit {
			return fmt.Sprintf("expected the number of %ss", e.Unit)
		}
		return fmt.Sprintf("%s are parsed as an integer", e.Group)
	case KindDurationOverflow:
		return "this duration is too large to be represented"
	case KindUnexpectedColon:
		return fmt.Sprintf("there is no colon before %s", GroupHours)
	case KindUnexpectedDot:
		if e.Group == GroupSecondsWhole {
			return fmt.Sprintf("decimal point was already given for %s", GroupSecondsFrac)
		}
		return fmt.Sprintf("found in %s, but only %s can have fractional values", e.Group, GroupSecondsWhole)
	case KindNegative:
		return "a negative value is not allowed here"
	}
	return ""
}

// intErrKind classifies a strconv failure: range errors become the overflow
// kind (the abstraction-preserving mapping), everything else is a plain
// integer parse failure.
func intErrKind(err error) ErrKind {
	if errors.Is(err, strconv.ErrRange) {
		return KindDurationOverflow
	}
	return KindParseInt
}

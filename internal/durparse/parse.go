package durparse

import (
	"errors"
	"strings"
	"time"
)

// ReadDur is a parsed duration expression: a non-negative magnitude plus a
// separate sign. A duration cannot itself be negative; whether negation is
// meaningful depends on the operation the caller is performing (setting the
// elapsed time forbids it, offsetting allows it), so the sign travels
// alongside the magnitude instead of inside it.
type ReadDur struct {
	Dur time.Duration
	Neg bool
}

// Parse parses one duration expression. It returns (nil, nil) when line is
// empty: the user pressed enter without typing, which means "no change", not
// an error. Any non-nil error is a *ParseError borrowing from line.
//
// Grammar selection: a line containing a colon is unambiguously the clock
// grammar, and its diagnostics are surfaced even when it fails. Without a
// colon the unit grammar is tried first; its verdict stands whenever the
// line actually names a unit, otherwise the line is not unit-shaped and the
// clock grammar's result (success or failure) is returned. At most one
// grammar's diagnostic is ever surfaced; the two are never merged.
func Parse(line string, allowNeg bool) (*ReadDur, error) {
	if line == "" {
		return nil, nil
	}
	if strings.Contains(line, ":") {
		return ParseClock(line, allowNeg)
	}
	d, err := ParseUnit(line, allowNeg)
	if err == nil {
		return d, nil
	}
	var perr *ParseError
	if errors.As(err, &perr) && (perr.Kind == KindUnitMissing || perr.Kind == KindUnitUnknown) {
		return ParseClock(line, allowNeg)
	}
	return nil, err
}

package durparse

import (
	"math"
	"strconv"
	"time"
)

// Grammar constants shared with the display formatter. These are part of
// the package contract: the clock format written by FormatClock re-parses
// under ParseClock.
const (
	SecondsPerMinute = 60
	MinutesPerHour   = 60
	SecondsPerHour   = SecondsPerMinute * MinutesPerHour

	// FracWidth is the number of fractional-second digits carried by the
	// grammar: nanosecond resolution.
	FracWidth = 9

	// DefaultPrecision and MaxPrecision bound the display precision the
	// shell lets users pick.
	DefaultPrecision = 2
	MaxPrecision     = FracWidth
)

// Group names one field of the clock grammar, ordered from least to most
// granular as encountered scanning right to left.
type Group int

const (
	GroupHours Group = iota
	GroupMinutes
	GroupSecondsWhole
	GroupSecondsFrac

	groupCount
)

// Max returns the exclusive upper bound for a legal value in the field.
// Minutes and whole seconds are not range-checked during parsing (a field
// is just a count of its base unit), but the bound still sizes the
// zero-fill when rendering and sanity-checks the fraction parser.
func (g Group) Max() uint64 {
	switch g {
	case GroupHours:
		return uint64(math.MaxInt64/time.Hour) + 1
	case GroupMinutes:
		return MinutesPerHour
	case GroupSecondsWhole:
		return SecondsPerMinute
	case GroupSecondsFrac:
		return uint64(time.Second / time.Nanosecond)
	}
	return 0
}

// width returns the zero-filled digit count for the field when rendering.
func (g Group) width() int {
	return len(strconv.FormatUint(g.Max()-1, 10))
}

func (g Group) String() string {
	switch g {
	case GroupHours:
		return "hours"
	case GroupMinutes:
		return "minutes"
	case GroupSecondsWhole:
		return "seconds"
	case GroupSecondsFrac:
		return "subseconds"
	}
	return "unknown"
}

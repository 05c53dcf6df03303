package durparse

import (
	"fmt"
	"strings"
	"time"
)

// FormatClock renders d in the clock format the parser accepts, so a
// displayed elapsed time can be typed back in unchanged. Minutes and
// seconds are zero-filled to their field width; prec fractional digits
// (truncated, not rounded) follow a dot when prec is non-zero. prec is
// clamped to [0, MaxPrecision].
func FormatClock(d time.Duration, prec int) string {
	if prec < 0 {
		prec = 0
	}
	if prec > MaxPrecision {
		prec = MaxPrecision
	}

	hours := uint64(d / time.Hour)
	minutes := uint64(d % time.Hour / time.Minute)
	seconds := uint64(d % time.Minute / time.Second)

	var b strings.Builder
	fmt.Fprintf(&b, "%d:%0*d:%0*d", hours, GroupMinutes.width(), minutes, GroupSecondsWhole.width(), seconds)
	if prec > 0 {
		nanos := fmt.Sprintf("%0*d", GroupSecondsFrac.width(), uint64(d%time.Second))
		b.WriteByte('.')
		b.WriteString(nanos[:prec])
	}
	return b.String()
}

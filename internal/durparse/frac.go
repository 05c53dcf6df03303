package durparse

import (
	"fmt"
	"math"

	"github.com/rivo/uniseg"
)

// fracDigitError marks a cluster in a fractional field that is not a
// decimal digit. Offsets are bytes within the field, not the whole line;
// the grammars translate them back into line spans.
type fracDigitError struct {
	idx    int
	length int
}

func (e *fracDigitError) Error() string {
	return fmt.Sprintf("fractional field has a non-digit at byte %d", e.idx)
}

// fracOverflowError marks numerator accumulation exceeding 32 bits.
// Unreachable for width 9 (a nanosecond numerator has at most 9 digits,
// the 32-bit maximum has 10) but checked rather than assumed.
type fracOverflowError struct {
	idx int
}

func (e *fracOverflowError) Error() string {
	return fmt.Sprintf("fractional numerator overflow at byte %d", e.idx)
}

// parseFrac reads a digit string as the numerator of a fixed-point fraction
// with width digits, so parseFrac("5", 9) is 500000000 (half a unit at
// nanosecond resolution). Every cluster must be a single decimal digit.
// Digits beyond width are validated but contribute nothing: excess
// precision is truncated, never rounded and never rejected.
func parseFrac(s string, width int) (uint64, error) {
	var num uint64
	pos := 0
	idx := 0
	gr := uniseg.NewGraphemes(s)
	for gr.Next() {
		text := gr.Str()
		if len(text) != 1 || text[0] < '0' || text[0] > '9' {
			return 0, &fracDigitError{idx: idx, length: len(text)}
		}
		if pos < width {
			digit := uint64(text[0] - '0')
			if num > (math.MaxUint32-digit)/10 {
				return 0, &fracOverflowError{idx: idx}
			}
			num = num*10 + digit
		}
		idx += len(text)
		pos++
	}
	if pos < width {
		num *= pow10(width - pos)
	}
	return num, nil
}

func pow10(n int) uint64 {
	v := uint64(1)
	for ; n > 0; n-- {
		v *= 10
	}
	return v
}

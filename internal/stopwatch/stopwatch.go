// Package stopwatch measures and accumulates elapsed wall time between
// starts and stops. Readings use the monotonic clock carried by time.Time,
// so system clock adjustments never move the elapsed time, and all
// arithmetic saturates instead of wrapping.
package stopwatch

import (
	"errors"
	"math"
	"time"
)

var (
	// ErrAlreadyRunning is returned by Start on a running stopwatch.
	ErrAlreadyRunning = errors.New("stopwatch already running")
	// ErrAlreadyStopped is returned by Stop on a stopped stopwatch.
	ErrAlreadyStopped = errors.New("stopwatch already stopped")
)

// Stopwatch accumulates elapsed time. The zero value is a stopped
// stopwatch with zero elapsed time, ready to use.
type Stopwatch struct {
	elapsed time.Duration
	start   time.Time // zero while stopped
}

// New returns a stopwatch with the given elapsed time, optionally running.
func New(elapsed time.Duration, running bool) *Stopwatch {
	sw := &Stopwatch{elapsed: elapsed}
	if running {
		sw.start = time.Now()
	}
	return sw
}

// Start begins measuring. Fails if already running.
func (sw *Stopwatch) Start() error {
	if sw.IsRunning() {
		return ErrAlreadyRunning
	}
	sw.start = time.Now()
	return nil
}

// Stop ends the current measurement, folding it into the elapsed total.
// Fails if not running.
func (sw *Stopwatch) Stop() error {
	if !sw.IsRunning() {
		return ErrAlreadyStopped
	}
	sw.Add(time.Since(sw.start))
	sw.start = time.Time{}
	return nil
}

// Toggle starts a stopped stopwatch and stops a running one.
func (sw *Stopwatch) Toggle() {
	sw.ToggleAt(time.Now())
}

// ToggleAt is Toggle with an explicit instant, so two stopwatches can be
// flipped at exactly the same moment.
func (sw *Stopwatch) ToggleAt(now time.Time) {
	if sw.IsRunning() {
		sw.Add(now.Sub(sw.start))
		sw.start = time.Time{}
	} else {
		sw.start = now
	}
}

// Reset stops the stopwatch and zeroes the elapsed time.
func (sw *Stopwatch) Reset() {
	sw.elapsed = 0
	sw.start = time.Time{}
}

// Set stops the stopwatch and sets the elapsed total to d.
func (sw *Stopwatch) Set(d time.Duration) {
	sw.elapsed = d
	sw.start = time.Time{}
}

// Add grows the elapsed total by d, saturating at the maximum duration.
// The running state is unchanged.
func (sw *Stopwatch) Add(d time.Duration) {
	sw.elapsed = satAdd(sw.elapsed, d)
}

// Sub shrinks the elapsed total by d, saturating at zero. A running
// stopwatch first folds in the time measured so far, so the subtraction
// applies to the total the caller just observed.
func (sw *Stopwatch) Sub(d time.Duration) {
	sw.sync()
	if d >= sw.elapsed {
		sw.elapsed = 0
	} else {
		sw.elapsed -= d
	}
}

// Elapsed returns the total elapsed time, including the current
// measurement when running.
func (sw *Stopwatch) Elapsed() time.Duration {
	return sw.ElapsedAt(time.Now())
}

// ElapsedAt returns the total elapsed time as of now.
func (sw *Stopwatch) ElapsedAt(now time.Time) time.Duration {
	if sw.IsRunning() {
		return satAdd(sw.elapsed, now.Sub(sw.start))
	}
	return sw.elapsed
}

// IsRunning reports whether a measurement is in progress.
func (sw *Stopwatch) IsRunning() bool {
	return !sw.start.IsZero()
}

// sync folds the current measurement into the elapsed total without
// stopping, as if the stopwatch were toggled twice at one instant.
func (sw *Stopwatch) sync() {
	if sw.IsRunning() {
		now := time.Now()
		sw.Add(now.Sub(sw.start))
		sw.start = now
	}
}

func satAdd(a, b time.Duration) time.Duration {
	if b < 0 {
		// A negative measurement cannot happen with a monotonic clock;
		// treat it as zero rather than shrinking the total.
		return a
	}
	if a > math.MaxInt64-b {
		return math.MaxInt64
	}
	return a + b
}

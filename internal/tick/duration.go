package tick

import (
	"fmt"
	"math"
	"time"
)

// Duration is a signed count of ticks. Every int64 is a valid Duration.
type Duration int64

// Range limits of Duration.
const (
	MinDuration Duration = math.MinInt64
	MaxDuration Duration = math.MaxInt64
)

// maxDays is the largest day count whose tick magnitude still fits in
// 2^63.
const maxDays = (1 << 63) / uint64(TicksPerDay)

// DurationParts is the broken-down form of a Duration: a sign and the
// magnitude split into days, clock fields and a sub-second tick count.
type DurationParts struct {
	Negative bool
	Days     int64
	Hours    int
	Minutes  int
	Seconds  int
	Ticks    int64
}

// NewDuration builds a duration from its parts. Hours must be in [0, 23],
// minutes and seconds in [0, 59], and Ticks in [0, TicksPerSecond).
func NewDuration(p DurationParts) (Duration, error) {
	clock, err := ticksFromClock(p.Hours, p.Minutes, p.Seconds, p.Ticks)
	if err != nil {
		return 0, err
	}
	if p.Days < 0 {
		return 0, fmt.Errorf("days %d: %w", p.Days, ErrInvalidField)
	}
	if uint64(p.Days) > maxDays {
		return 0, fmt.Errorf("days %d: %w", p.Days, ErrOutOfRange)
	}

	mag := uint64(p.Days)*uint64(TicksPerDay) + uint64(clock)
	limit := uint64(math.MaxInt64)
	if p.Negative {
		limit++
	}
	if mag > limit {
		return 0, fmt.Errorf("duration magnitude %d ticks: %w", mag, ErrOutOfRange)
	}
	if p.Negative {
		return Duration(-int64(mag - 1) - 1), nil
	}
	return Duration(mag), nil
}

// Parts breaks d into sign, days, clock fields and ticks. It is exact for
// every Duration, including MinDuration.
func (d Duration) Parts() DurationParts {
	var p DurationParts
	mag := uint64(d)
	if d < 0 {
		p.Negative = true
		mag = -mag
	}
	p.Days = int64(mag / uint64(TicksPerDay))
	p.Hours, p.Minutes, p.Seconds, p.Ticks = clockFromTicks(int64(mag % uint64(TicksPerDay)))
	return p
}

// DurationFromStd converts a time.Duration, truncating toward zero to tick
// precision.
func DurationFromStd(d time.Duration) Duration {
	return Duration(int64(d) / NanosecondsPerTick)
}

// Std converts d to a time.Duration. It fails with ErrOutOfRange when d
// does not fit, which happens beyond roughly 292 years.
func (d Duration) Std() (time.Duration, error) {
	if d > Duration(math.MaxInt64/NanosecondsPerTick) || d < Duration(math.MinInt64/NanosecondsPerTick) {
		return 0, fmt.Errorf("duration %d ticks: %w", int64(d), ErrOutOfRange)
	}
	return time.Duration(int64(d) * NanosecondsPerTick), nil
}

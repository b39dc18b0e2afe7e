package tick

import (
	"fmt"
	"time"
)

// Instant is a count of ticks since 0001-01-01T00:00:00Z, with no attached
// offset. Valid values lie in [MinInstant, MaxInstant].
type Instant int64

// OffsetInstant is an absolute instant that arrived with a fixed UTC offset.
// The offset is applied on construction, so the value is always the
// UTC-normalized instant.
type OffsetInstant Instant

// NewInstant builds an instant from civil UTC fields.
func NewInstant(c Civil) (Instant, error) {
	days, err := daysFromCivil(c.Year, c.Month, c.Day)
	if err != nil {
		return 0, err
	}
	clock, err := ticksFromClock(c.Hour, c.Minute, c.Second, c.Ticks)
	if err != nil {
		return 0, err
	}
	return Instant(days*TicksPerDay + clock), nil
}

// InstantFromTime converts t to an instant, truncating sub-tick precision.
func InstantFromTime(t time.Time) (Instant, error) {
	t = t.UTC()
	if t.Year() < MinYear || t.Year() > MaxYear {
		return 0, fmt.Errorf("%s: %w", t.Format(time.RFC3339Nano), ErrOutOfRange)
	}
	sec := t.Unix() + UnixEpochSeconds
	return Instant(sec*TicksPerSecond + int64(t.Nanosecond()/NanosecondsPerTick)), nil
}

// InstantFromUnix converts whole seconds since the Unix epoch.
func InstantFromUnix(sec int64) (Instant, error) {
	maxSec := int64(MaxInstant)/TicksPerSecond - UnixEpochSeconds
	if sec < -UnixEpochSeconds || sec > maxSec {
		return 0, fmt.Errorf("unix seconds %d: %w", sec, ErrOutOfRange)
	}
	return Instant((sec + UnixEpochSeconds) * TicksPerSecond), nil
}

// Valid reports whether i lies in the representable range.
func (i Instant) Valid() bool {
	return i >= MinInstant && i <= MaxInstant
}

// Unix returns whole seconds since the Unix epoch. The sub-second part is
// dropped.
func (i Instant) Unix() int64 {
	return int64(i)/TicksPerSecond - UnixEpochSeconds
}

// Time returns i as a UTC time.Time.
func (i Instant) Time() time.Time {
	sec := int64(i) / TicksPerSecond
	rem := int64(i) % TicksPerSecond
	return time.Unix(sec-UnixEpochSeconds, rem*NanosecondsPerTick).UTC()
}

// Civil breaks i into UTC calendar fields.
func (i Instant) Civil() Civil {
	days := int64(i) / TicksPerDay
	var c Civil
	c.Year, c.Month, c.Day = civilFromDays(days)
	c.Hour, c.Minute, c.Second, c.Ticks = clockFromTicks(int64(i) % TicksPerDay)
	return c
}

// Add returns i shifted by d, or ErrOutOfRange if the result leaves the
// representable range.
func (i Instant) Add(d Duration) (Instant, error) {
	if !i.Valid() || d == MinDuration ||
		(d > 0 && Duration(MaxInstant-i) < d) || (d < 0 && Duration(i-MinInstant) < -d) {
		return 0, fmt.Errorf("instant %d shifted by %d ticks: %w", int64(i), int64(d), ErrOutOfRange)
	}
	return i + Instant(d), nil
}

// Date returns the calendar date containing i.
func (i Instant) Date() Date {
	return Date(int64(i) / TicksPerDay)
}

// Clock returns the time of day of i.
func (i Instant) Clock() ClockTime {
	return ClockTime(int64(i) % TicksPerDay)
}

// NewOffsetInstant builds an absolute instant from civil fields written at
// offsetMinutes east of UTC.
func NewOffsetInstant(c Civil, offsetMinutes int) (OffsetInstant, error) {
	local, err := NewInstant(c)
	if err != nil {
		return 0, err
	}
	utc, err := local.Add(-Duration(offsetMinutes) * Duration(TicksPerMinute))
	if err != nil {
		return 0, err
	}
	return OffsetInstant(utc), nil
}

// Instant returns the UTC-normalized instant.
func (o OffsetInstant) Instant() Instant {
	return Instant(o)
}

// Valid reports whether o lies in the representable range.
func (o OffsetInstant) Valid() bool {
	return Instant(o).Valid()
}

// Time returns o as a UTC time.Time.
func (o OffsetInstant) Time() time.Time {
	return Instant(o).Time()
}

package tick

import (
	"errors"
	"fmt"
	"time"
)

// Tick unit conversions.
const (
	TicksPerMicrosecond int64 = 10
	TicksPerMillisecond       = 1_000 * TicksPerMicrosecond
	TicksPerSecond            = 1_000 * TicksPerMillisecond
	TicksPerMinute            = 60 * TicksPerSecond
	TicksPerHour              = 60 * TicksPerMinute
	TicksPerDay               = 24 * TicksPerHour
)

// NanosecondsPerTick is the size of one tick.
const NanosecondsPerTick = 100

// UnixEpochSeconds is the number of seconds from 0001-01-01T00:00:00Z to
// 1970-01-01T00:00:00Z.
const UnixEpochSeconds int64 = 62_135_596_800

const unixEpochDays = UnixEpochSeconds / 86_400

// Range limits.
const (
	MinYear = 1
	MaxYear = 9999

	MinInstant Instant = 0
	MaxInstant Instant = 3_155_378_975_999_999_999

	MinDate Date = 0
	MaxDate Date = 3_652_058

	MinClockTime ClockTime = 0
	MaxClockTime ClockTime = ClockTime(TicksPerDay - 1)
)

var (
	// ErrOutOfRange is returned when a value falls outside its type's range.
	ErrOutOfRange = errors.New("value out of range")
	// ErrInvalidField is returned for a calendar or clock field that does
	// not name a real moment, such as month 13 or February 30.
	ErrInvalidField = errors.New("invalid calendar field")
)

// Civil is a broken-down UTC date and time of day. Ticks is the sub-second
// remainder in [0, TicksPerSecond).
type Civil struct {
	Year, Month, Day     int
	Hour, Minute, Second int
	Ticks                int64
}

// daysFromCivil validates a calendar date and returns its day number.
func daysFromCivil(year, month, day int) (int64, error) {
	if year < MinYear || year > MaxYear {
		return 0, fmt.Errorf("year %d: %w", year, ErrOutOfRange)
	}
	if month < 1 || month > 12 || day < 1 || day > 31 {
		return 0, fmt.Errorf("date %04d-%02d-%02d: %w", year, month, day, ErrInvalidField)
	}
	t := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
	if t.Year() != year || int(t.Month()) != month || t.Day() != day {
		return 0, fmt.Errorf("date %04d-%02d-%02d: %w", year, month, day, ErrInvalidField)
	}
	return t.Unix()/86_400 + unixEpochDays, nil
}

// civilFromDays is the inverse of daysFromCivil.
func civilFromDays(days int64) (year, month, day int) {
	t := time.Unix((days-unixEpochDays)*86_400, 0).UTC()
	return t.Year(), int(t.Month()), t.Day()
}

func ticksFromClock(hour, minute, second int, ticks int64) (int64, error) {
	if hour < 0 || hour > 23 || minute < 0 || minute > 59 || second < 0 || second > 59 ||
		ticks < 0 || ticks >= TicksPerSecond {
		return 0, fmt.Errorf("time %02d:%02d:%02d+%d: %w", hour, minute, second, ticks, ErrInvalidField)
	}
	return int64(hour)*TicksPerHour + int64(minute)*TicksPerMinute + int64(second)*TicksPerSecond + ticks, nil
}

func clockFromTicks(t int64) (hour, minute, second int, ticks int64) {
	hour = int(t / TicksPerHour)
	t %= TicksPerHour
	minute = int(t / TicksPerMinute)
	t %= TicksPerMinute
	second = int(t / TicksPerSecond)
	return hour, minute, second, t % TicksPerSecond
}

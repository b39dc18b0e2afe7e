package tick

import "time"

// Date is a calendar date, counted in days since 0001-01-01.
type Date int32

// NewDate builds a date from calendar fields.
func NewDate(year, month, day int) (Date, error) {
	days, err := daysFromCivil(year, month, day)
	if err != nil {
		return 0, err
	}
	return Date(days), nil
}

// DateOf returns the calendar date of t in t's own location.
func DateOf(t time.Time) (Date, error) {
	y, m, d := t.Date()
	return NewDate(y, int(m), d)
}

// Valid reports whether d lies in the representable range.
func (d Date) Valid() bool {
	return d >= MinDate && d <= MaxDate
}

// Civil returns the calendar fields of d.
func (d Date) Civil() (year, month, day int) {
	return civilFromDays(int64(d))
}

// Time returns midnight UTC at the start of d.
func (d Date) Time() time.Time {
	y, m, day := d.Civil()
	return time.Date(y, time.Month(m), day, 0, 0, 0, 0, time.UTC)
}

// ClockTime is a time of day, counted in ticks since midnight. Valid values
// lie in [MinClockTime, MaxClockTime].
type ClockTime int64

// NewClockTime builds a time of day from clock fields and a sub-second tick
// count.
func NewClockTime(hour, minute, second int, ticks int64) (ClockTime, error) {
	t, err := ticksFromClock(hour, minute, second, ticks)
	if err != nil {
		return 0, err
	}
	return ClockTime(t), nil
}

// ClockOf returns the wall clock time of t in t's own location, truncated
// to tick precision.
func ClockOf(t time.Time) ClockTime {
	h, m, s := t.Clock()
	c, _ := NewClockTime(h, m, s, int64(t.Nanosecond()/NanosecondsPerTick))
	return c
}

// Valid reports whether c lies in the representable range.
func (c ClockTime) Valid() bool {
	return c >= MinClockTime && c <= MaxClockTime
}

// Parts returns the clock fields of c. c must be valid.
func (c ClockTime) Parts() (hour, minute, second int, ticks int64) {
	return clockFromTicks(int64(c))
}


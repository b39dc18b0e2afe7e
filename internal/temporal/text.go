package temporal

import (
	"fmt"

	"github.com/roach88/wireconv/internal/fraction"
	"github.com/roach88/wireconv/internal/pattern"
	"github.com/roach88/wireconv/internal/tick"
)

// ParseDuration reads "[-][d.]hh:mm:ss[.fraction][Z]" or a raw tick count.
func ParseDuration(s string) (tick.Duration, error) {
	m, err := durationFormats.Match(s)
	if err != nil {
		return 0, err
	}
	f := m.Fields
	if f.HasInteger {
		return tick.Duration(f.Integer), nil
	}
	ticks, err := fraction.Normalize(f.Fraction)
	if err != nil {
		return 0, err
	}
	return tick.NewDuration(tick.DurationParts{
		Negative: f.Negative,
		Days:     f.Days,
		Hours:    f.Hour,
		Minutes:  f.Minute,
		Seconds:  f.Second,
		Ticks:    ticks,
	})
}

// ParseInstant reads a date or date-time, with an optional UTC offset, or
// whole epoch seconds. An offset is applied so the result is UTC; text
// without one is taken as UTC.
func ParseInstant(s string) (tick.Instant, error) {
	m, err := instantFormats.Match(s)
	if err != nil {
		return 0, err
	}
	f := m.Fields
	if f.HasInteger {
		return tick.InstantFromUnix(f.Integer)
	}
	civil, err := civilOf(f)
	if err != nil {
		return 0, err
	}
	offset, err := f.Offset()
	if err != nil {
		return 0, err
	}
	o, err := tick.NewOffsetInstant(civil, offset)
	if err != nil {
		return 0, err
	}
	return o.Instant(), nil
}

// ParseOffsetInstant accepts the same text as ParseInstant.
func ParseOffsetInstant(s string) (tick.OffsetInstant, error) {
	i, err := ParseInstant(s)
	return tick.OffsetInstant(i), err
}

// ParseDate reads "yyyy-MM-dd" or "yyyy/MM/dd". A trailing offset is
// ignored.
func ParseDate(s string) (tick.Date, error) {
	m, err := dateFormats.Match(s)
	if err != nil {
		return 0, err
	}
	f := m.Fields
	return tick.NewDate(f.Year, f.Month, f.Day)
}

// ParseClockTime reads "HH:mm[:ss[.fraction]]". A trailing offset is
// ignored.
func ParseClockTime(s string) (tick.ClockTime, error) {
	m, err := clockFormats.Match(s)
	if err != nil {
		return 0, err
	}
	f := m.Fields
	ticks, err := fraction.Normalize(f.Fraction)
	if err != nil {
		return 0, err
	}
	return tick.NewClockTime(f.Hour, f.Minute, f.Second, ticks)
}

func civilOf(f pattern.Fields) (tick.Civil, error) {
	ticks, err := fraction.Normalize(f.Fraction)
	if err != nil {
		return tick.Civil{}, err
	}
	return tick.Civil{
		Year: f.Year, Month: f.Month, Day: f.Day,
		Hour: f.Hour, Minute: f.Minute, Second: f.Second,
		Ticks: ticks,
	}, nil
}

// FormatDuration renders d canonically. Every Duration is representable.
func FormatDuration(d tick.Duration) string {
	p := d.Parts()
	b := make([]byte, 0, 32)
	if p.Negative {
		b = append(b, '-')
	}
	if p.Days > 0 {
		b = fmt.Appendf(b, "%d.", p.Days)
	}
	b = fmt.Appendf(b, "%02d:%02d:%02d", p.Hours, p.Minutes, p.Seconds)
	return string(appendFraction(b, p.Ticks))
}

// FormatInstant renders i canonically.
func FormatInstant(i tick.Instant) (string, error) {
	if !i.Valid() {
		return "", fmt.Errorf("instant %d: %w", int64(i), tick.ErrOutOfRange)
	}
	c := i.Civil()
	b := fmt.Appendf(make([]byte, 0, 32), "%04d-%02d-%02dT%02d:%02d:%02d",
		c.Year, c.Month, c.Day, c.Hour, c.Minute, c.Second)
	b = appendFraction(b, c.Ticks)
	return string(append(b, 'Z')), nil
}

// FormatOffsetInstant renders o canonically. The offset was folded in on
// construction, so the text always ends in 'Z'.
func FormatOffsetInstant(o tick.OffsetInstant) (string, error) {
	return FormatInstant(o.Instant())
}

// FormatDate renders d canonically.
func FormatDate(d tick.Date) (string, error) {
	if !d.Valid() {
		return "", fmt.Errorf("date %d: %w", int32(d), tick.ErrOutOfRange)
	}
	y, m, day := d.Civil()
	return fmt.Sprintf("%04d-%02d-%02d", y, m, day), nil
}

// FormatClockTime renders c canonically.
func FormatClockTime(c tick.ClockTime) (string, error) {
	if !c.Valid() {
		return "", fmt.Errorf("clock time %d: %w", int64(c), tick.ErrOutOfRange)
	}
	h, m, s, ticks := c.Parts()
	b := fmt.Appendf(make([]byte, 0, 16), "%02d:%02d:%02d", h, m, s)
	return string(appendFraction(b, ticks)), nil
}

// appendFraction appends ".fffffff" for a non-zero sub-second tick count
// and nothing for zero.
func appendFraction(b []byte, ticks int64) []byte {
	if ticks == 0 {
		return b
	}
	digits, err := fraction.Format(ticks)
	if err != nil {
		// Callers pass the remainder of a valid value.
		panic(err)
	}
	return append(append(b, '.'), digits...)
}

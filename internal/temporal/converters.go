package temporal

import (
	"time"

	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/tick"
	"github.com/roach88/wireconv/internal/wire"
)

// Converter names.
const (
	DurationName      = "duration"
	InstantName       = "instant"
	OffsetInstantName = "offset_instant"
	DateName          = "date"
	ClockTimeName     = "clock_time"
)

var (
	_ convert.Converter[tick.Duration]      = DurationConverter{}
	_ convert.Converter[tick.Instant]       = InstantConverter{}
	_ convert.Converter[tick.OffsetInstant] = OffsetInstantConverter{}
	_ convert.Converter[tick.Date]          = DateConverter{}
	_ convert.Converter[tick.ClockTime]     = ClockTimeConverter{}
)

var durationShape = shape[tick.Duration]{
	name:  DurationName,
	parse: ParseDuration,
	number: func(n int64) (tick.Duration, error) {
		return tick.Duration(n), nil
	},
	native: func(v any) (tick.Duration, bool, error) {
		switch v := v.(type) {
		case tick.Duration:
			return v, true, nil
		case time.Duration:
			return tick.DurationFromStd(v), true, nil
		}
		return 0, false, nil
	},
}

// DurationConverter converts tick.Duration. Numbers are raw tick counts.
type DurationConverter struct{}

// Name implements convert.Converter.
func (DurationConverter) Name() string { return DurationName }

// Deserialize implements convert.Converter.
func (DurationConverter) Deserialize(tok wire.Token) (tick.Duration, error) {
	return durationShape.deserialize(tok)
}

// Serialize implements convert.Converter.
func (DurationConverter) Serialize(v tick.Duration) (wire.Token, error) {
	return wire.String(FormatDuration(v)), nil
}

var instantShape = shape[tick.Instant]{
	name:   InstantName,
	parse:  ParseInstant,
	number: tick.InstantFromUnix,
	native: func(v any) (tick.Instant, bool, error) {
		switch v := v.(type) {
		case tick.Instant:
			if !v.Valid() {
				return 0, true, tick.ErrOutOfRange
			}
			return v, true, nil
		case time.Time:
			i, err := tick.InstantFromTime(v)
			return i, true, err
		}
		return 0, false, nil
	},
}

// InstantConverter converts tick.Instant. Numbers are whole Unix epoch
// seconds.
type InstantConverter struct{}

// Name implements convert.Converter.
func (InstantConverter) Name() string { return InstantName }

// Deserialize implements convert.Converter.
func (InstantConverter) Deserialize(tok wire.Token) (tick.Instant, error) {
	return instantShape.deserialize(tok)
}

// Serialize implements convert.Converter.
func (InstantConverter) Serialize(v tick.Instant) (wire.Token, error) {
	s, err := FormatInstant(v)
	if err != nil {
		return nil, convert.NewOutOfRange(InstantName, wire.Describe(wire.Int(v)), err)
	}
	return wire.String(s), nil
}

var offsetInstantShape = shape[tick.OffsetInstant]{
	name:  OffsetInstantName,
	parse: ParseOffsetInstant,
	number: func(n int64) (tick.OffsetInstant, error) {
		i, err := tick.InstantFromUnix(n)
		return tick.OffsetInstant(i), err
	},
	native: func(v any) (tick.OffsetInstant, bool, error) {
		switch v := v.(type) {
		case tick.OffsetInstant:
			if !v.Valid() {
				return 0, true, tick.ErrOutOfRange
			}
			return v, true, nil
		case time.Time:
			i, err := tick.InstantFromTime(v)
			return tick.OffsetInstant(i), true, err
		}
		return 0, false, nil
	},
}

// OffsetInstantConverter converts tick.OffsetInstant. It accepts the same
// input as InstantConverter; any offset is folded into the absolute
// instant.
type OffsetInstantConverter struct{}

// Name implements convert.Converter.
func (OffsetInstantConverter) Name() string { return OffsetInstantName }

// Deserialize implements convert.Converter.
func (OffsetInstantConverter) Deserialize(tok wire.Token) (tick.OffsetInstant, error) {
	return offsetInstantShape.deserialize(tok)
}

// Serialize implements convert.Converter.
func (OffsetInstantConverter) Serialize(v tick.OffsetInstant) (wire.Token, error) {
	s, err := FormatOffsetInstant(v)
	if err != nil {
		return nil, convert.NewOutOfRange(OffsetInstantName, wire.Describe(wire.Int(v)), err)
	}
	return wire.String(s), nil
}

var dateShape = shape[tick.Date]{
	name:  DateName,
	parse: ParseDate,
	native: func(v any) (tick.Date, bool, error) {
		switch v := v.(type) {
		case tick.Date:
			if !v.Valid() {
				return 0, true, tick.ErrOutOfRange
			}
			return v, true, nil
		case time.Time:
			d, err := tick.DateOf(v)
			return d, true, err
		}
		return 0, false, nil
	},
}

// DateConverter converts tick.Date. Numbers are rejected.
type DateConverter struct{}

// Name implements convert.Converter.
func (DateConverter) Name() string { return DateName }

// Deserialize implements convert.Converter.
func (DateConverter) Deserialize(tok wire.Token) (tick.Date, error) {
	return dateShape.deserialize(tok)
}

// Serialize implements convert.Converter.
func (DateConverter) Serialize(v tick.Date) (wire.Token, error) {
	s, err := FormatDate(v)
	if err != nil {
		return nil, convert.NewOutOfRange(DateName, wire.Describe(wire.Int(v)), err)
	}
	return wire.String(s), nil
}

var clockTimeShape = shape[tick.ClockTime]{
	name:  ClockTimeName,
	parse: ParseClockTime,
	native: func(v any) (tick.ClockTime, bool, error) {
		switch v := v.(type) {
		case tick.ClockTime:
			if !v.Valid() {
				return 0, true, tick.ErrOutOfRange
			}
			return v, true, nil
		case time.Time:
			return tick.ClockOf(v), true, nil
		}
		return 0, false, nil
	},
}

// ClockTimeConverter converts tick.ClockTime. Numbers are rejected.
type ClockTimeConverter struct{}

// Name implements convert.Converter.
func (ClockTimeConverter) Name() string { return ClockTimeName }

// Deserialize implements convert.Converter.
func (ClockTimeConverter) Deserialize(tok wire.Token) (tick.ClockTime, error) {
	return clockTimeShape.deserialize(tok)
}

// Serialize implements convert.Converter.
func (ClockTimeConverter) Serialize(v tick.ClockTime) (wire.Token, error) {
	s, err := FormatClockTime(v)
	if err != nil {
		return nil, convert.NewOutOfRange(ClockTimeName, wire.Describe(wire.Int(v)), err)
	}
	return wire.String(s), nil
}

package temporal

import "github.com/roach88/wireconv/internal/pattern"

// utcSuffix is the optional trailing 'Z' accepted on durations.
const utcSuffix = `(?:Z|z)?`

// Candidate tables, most specific first.
var (
	durationFormats = pattern.List{
		pattern.MustNew("duration", pattern.DurationPrefix+pattern.Time+utcSuffix),
		pattern.MustNew("ticks", pattern.Integer),
	}

	instantFormats = pattern.List{
		pattern.MustNew("datetime-zone", pattern.Date("-")+pattern.Delim+pattern.Time+pattern.Zone),
		pattern.MustNew("datetime-zone-slash", pattern.Date("/")+pattern.Delim+pattern.Time+pattern.Zone),
		pattern.MustNew("datetime", pattern.Date("-")+pattern.Delim+pattern.Time),
		pattern.MustNew("datetime-slash", pattern.Date("/")+pattern.Delim+pattern.Time),
		pattern.MustNew("date", pattern.Date("-")+pattern.Optional(pattern.Zone)),
		pattern.MustNew("date-slash", pattern.Date("/")+pattern.Optional(pattern.Zone)),
		pattern.MustNew("epoch-seconds", pattern.Integer),
	}

	dateFormats = pattern.List{
		pattern.MustNew("date", pattern.Date("-")+pattern.Optional(pattern.Zone)),
		pattern.MustNew("date-slash", pattern.Date("/")+pattern.Optional(pattern.Zone)),
	}

	clockFormats = pattern.List{
		pattern.MustNew("time-zone", pattern.Time+pattern.Zone),
		pattern.MustNew("time", pattern.Time),
		pattern.MustNew("time-short", pattern.ShortTime),
	}
)

// Formats returns the candidate names tried for target, in order. It is
// used for diagnostics.
func Formats(target string) []string {
	switch target {
	case DurationName:
		return durationFormats.Names()
	case InstantName, OffsetInstantName:
		return instantFormats.Names()
	case DateName:
		return dateFormats.Names()
	case ClockTimeName:
		return clockFormats.Names()
	default:
		return nil
	}
}

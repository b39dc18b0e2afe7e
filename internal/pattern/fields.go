package pattern

import (
	"fmt"
	"strconv"
)

// maxOffsetMinutes is the widest fixed offset accepted (+/-14:00).
const maxOffsetMinutes = 14 * 60

// Fields holds the values captured by a candidate. Absent groups leave their
// field at the zero value; the Has* flags tell absent from zero.
type Fields struct {
	Year, Month, Day     int
	Hour, Minute, Second int

	// Days is the day count of a duration's d. prefix.
	Days int64
	// Negative is set by a duration's leading '-'.
	Negative bool

	// Fraction holds the fractional-second digits exactly as written.
	Fraction string

	// Zone holds the raw offset text: "Z", "z", "+05:30", "-0800", "+01".
	Zone string

	// Integer holds a bare integer input.
	Integer int64

	HasDate    bool
	HasTime    bool
	HasZone    bool
	HasInteger bool
}

func extract(names, sub []string) (Fields, error) {
	var f Fields
	for i, name := range names {
		v := sub[i]
		if name == "" || v == "" {
			continue
		}
		var err error
		switch name {
		case "year":
			f.Year, err = atoi(v)
			f.HasDate = true
		case "month":
			f.Month, err = atoi(v)
		case "day":
			f.Day, err = atoi(v)
		case "hour":
			f.Hour, err = atoi(v)
			f.HasTime = true
		case "minute":
			f.Minute, err = atoi(v)
		case "second":
			f.Second, err = atoi(v)
		case "fraction":
			f.Fraction = v
		case "zone":
			f.Zone = v
			f.HasZone = true
		case "days":
			f.Days, err = strconv.ParseInt(v, 10, 64)
		case "sign":
			f.Negative = v == "-"
		case "integer":
			f.Integer, err = strconv.ParseInt(v, 10, 64)
			f.HasInteger = true
		default:
			return Fields{}, fmt.Errorf("unknown group %q", name)
		}
		if err != nil {
			return Fields{}, fmt.Errorf("group %s %q: %w", name, v, ErrFieldOverflow)
		}
	}
	return f, nil
}

func atoi(s string) (int, error) {
	n, err := strconv.ParseInt(s, 10, 32)
	return int(n), err
}

// Offset returns the zone offset in minutes east of UTC. "Z", "+00:00" and
// "-00:00" all give 0, as does an absent zone. Offsets past +/-14:00 or with
// a minutes part above 59 give ErrInvalidOffset.
func (f Fields) Offset() (int, error) {
	z := f.Zone
	if z == "" || z == "Z" || z == "z" {
		return 0, nil
	}
	if len(z) < 3 || (z[0] != '+' && z[0] != '-') {
		return 0, fmt.Errorf("%q: %w", z, ErrInvalidOffset)
	}

	digits := make([]byte, 0, 4)
	for i := 1; i < len(z); i++ {
		if z[i] == ':' {
			continue
		}
		if z[i] < '0' || z[i] > '9' {
			return 0, fmt.Errorf("%q: %w", z, ErrInvalidOffset)
		}
		digits = append(digits, z[i])
	}
	if len(digits) != 2 && len(digits) != 4 {
		return 0, fmt.Errorf("%q: %w", z, ErrInvalidOffset)
	}

	hh := int(digits[0]-'0')*10 + int(digits[1]-'0')
	mm := 0
	if len(digits) == 4 {
		mm = int(digits[2]-'0')*10 + int(digits[3]-'0')
	}
	if mm > 59 {
		return 0, fmt.Errorf("%q: minutes out of range: %w", z, ErrInvalidOffset)
	}
	total := hh*60 + mm
	if total > maxOffsetMinutes {
		return 0, fmt.Errorf("%q: beyond 14:00: %w", z, ErrInvalidOffset)
	}
	if z[0] == '-' {
		total = -total
	}
	return total, nil
}

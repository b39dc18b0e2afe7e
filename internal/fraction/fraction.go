// Package fraction reduces fractional-second digit strings to tick
// resolution.
//
// One tick is 100ns, so a tick count below one second has exactly Digits
// decimal digits. Longer input is truncated toward zero: digits past
// position Digits are never read, whatever they contain. Shorter input is
// right-padded with zeros.
package fraction

import (
	"errors"
	"strings"
)

// Digits is the number of fractional-second digits one tick resolves.
const Digits = 7

// Scale is 10^Digits, the number of ticks in one second.
const Scale = 10_000_000

// ErrNotDigit is returned when one of the first Digits characters is not an
// ASCII decimal digit.
var ErrNotDigit = errors.New("fraction: non-digit character")

// ErrRange is returned by Format for tick counts outside [0, Scale).
var ErrRange = errors.New("fraction: tick count outside one second")

// Truncate returns exactly Digits characters: the first Digits characters of
// d, or d right-padded with '0'. It does not validate its input.
func Truncate(d string) string {
	if len(d) >= Digits {
		return d[:Digits]
	}
	return d + strings.Repeat("0", Digits-len(d))
}

// Normalize returns the tick count contributed by the fractional digits d.
// Only the first Digits characters are inspected.
func Normalize(d string) (int64, error) {
	var ticks int64
	for _, c := range []byte(Truncate(d)) {
		if c < '0' || c > '9' {
			return 0, ErrNotDigit
		}
		ticks = ticks*10 + int64(c-'0')
	}
	return ticks, nil
}

// Format renders a sub-second tick count as exactly Digits digits.
func Format(ticks int64) (string, error) {
	if ticks < 0 || ticks >= Scale {
		return "", ErrRange
	}
	var buf [Digits]byte
	for i := Digits - 1; i >= 0; i-- {
		buf[i] = byte('0' + ticks%10)
		ticks /= 10
	}
	return string(buf[:]), nil
}

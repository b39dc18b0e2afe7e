// Package temporal converts wire tokens to and from the tick host types:
// durations, instants, offset instants, calendar dates and clock times.
//
// Every converter follows the same order. A Native token holding the host
// type is returned unchanged. A numeric token is read as raw ticks
// (Duration) or whole Unix epoch seconds (Instant, OffsetInstant); dates and
// clock times reject numbers. A string token is trimmed and matched against
// the type's candidate formats, most specific first; the fractional-second
// digits of the winning match are truncated to tick resolution.
//
// Reading an instant as epoch seconds discards its sub-second part. This is
// the intended behavior of that input form.
//
// Canonical text uses '-' between date fields, 'T' before the time, 'Z' for
// UTC and exactly seven fractional digits. A zero fraction is omitted:
//
//	duration        [-][d.]hh:mm:ss[.fffffff]
//	instant         yyyy-MM-ddTHH:mm:ss[.fffffff]Z
//	offset instant  yyyy-MM-ddTHH:mm:ss[.fffffff]Z
//	date            yyyy-MM-dd
//	clock time      HH:mm:ss[.fffffff]
package temporal

// Package pattern matches wire text against ordered lists of candidate
// formats.
//
// A Candidate is an anchored regular expression built from the fragments in
// this package. Fragments capture into a fixed set of named groups (year,
// month, day, hour, minute, second, fraction, zone, days, sign, integer),
// and a successful match is decoded into Fields. A List is tried in order
// and the first candidate that matches wins, so lists must be ordered from
// most to least specific.
//
// The matcher checks shape only. Range checks on the extracted fields
// (month 13, hour 24, February 30) belong to the caller that builds a typed
// value from them. The two exceptions are numeric overflow of a captured
// group (ErrFieldOverflow) and the UTC offset bounds enforced by
// Fields.Offset.
package pattern

// Package numeric converts wire tokens to and from floating-point and
// fixed-point decimal scalars.
//
// Float converters accept numbers, numeric text and the special-value
// symbols of an injected locale.Symbols table. They serialize finite values
// as numbers in their shortest round-trip form and special values as the
// table's symbols, so every float64 and float32, NaN and the infinities
// included, survives a round trip bit for bit.
//
// The decimal converter targets a 96-bit coefficient with a scale of at
// most 28 digits. Digits past that scale are truncated toward zero, never
// rounded, and the decimal has no infinity or NaN: such text is a format
// mismatch.
package numeric

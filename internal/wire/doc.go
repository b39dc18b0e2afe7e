// Package wire defines the tokens exchanged between the conversion layer and
// the surrounding serialization framework.
//
// A Token is a sealed tagged union: Null, Bool, Int, Number, String,
// Composite and Native. Converters type-switch over it and report any shape
// they do not accept as a type mismatch. This package imports nothing
// internal, so every other package can depend on it.
//
// Two encodings are supported:
//   - JSON, with a canonical writer (NFC strings, no HTML escaping)
//   - CBOR, using Core Deterministic Encoding (RFC 8949 §4.2); numbers that
//     a float64 cannot carry exactly travel as tag 4 decimal fractions
package wire

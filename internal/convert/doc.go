// Package convert defines the converter contract shared by every target
// type and the classified error that converters return.
//
// A Converter[T] turns a wire.Token into a T and back. Converters are pure:
// they hold only read-only configuration fixed at construction, never log
// and never retain state between calls, so one value may be shared by any
// number of goroutines.
//
// Every rejected input surfaces as an *Error with one of four kinds:
//
//   - FORMAT_MISMATCH: text that no accepted format matches
//   - OUT_OF_RANGE: a well-formed value the target cannot represent
//   - TYPE_MISMATCH: a token shape the target does not accept
//   - UNSUPPORTED_NULLABILITY: null for a non-nullable target
package convert

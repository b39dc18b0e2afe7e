// Package registry is the boundary the surrounding serialization framework
// calls into. It maps target type identifiers to converters through an
// explicit table built once in New.
//
// Callers name a Target, such as "instant" or "decimal?", and hand over a
// wire.Token (Deserialize) or a host value (Serialize). A trailing '?'
// marks the target nullable: null then maps to a nil result instead of an
// UNSUPPORTED_NULLABILITY error.
//
// A Registry is immutable after New returns and safe for concurrent use.
package registry

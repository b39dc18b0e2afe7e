// Package store provides SQLite-backed durable storage for conversion
// vectors.
//
// A vector records one conversion: the target, the input token, and either
// the canonical output token or the error kind it produced, together with
// the symbol table in effect. Verification runs re-execute stored vectors
// and record each observation as a check, so drift between builds can be
// found later.
//
// # Tables
//
//   - vectors: UNIQUE(target, input, symbols); a repeated recording is a no-op
//   - checks: one row per (run, vector), referencing vectors(id)
//
// All ordering uses the seq column (a logical clock), never wall time, and
// every query orders by seq ASC, id ASC COLLATE BINARY so results are stable.
//
// # Database Configuration
//
//   - WAL mode: Concurrent reads during writes
//   - synchronous=NORMAL: Balance durability/performance
//   - busy_timeout=5000: Wait for locks up to 5 seconds
//   - foreign_keys=ON: Enforce referential integrity
//
// Tokens are stored as canonical JSON produced by wire.MarshalJSON.
package store

// Package testutil provides deterministic seq and ID sources so corpus
// tests produce byte-identical stores and reports across runs.
package testutil

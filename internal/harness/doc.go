// Package harness runs conversion conformance scenarios and maintains the
// recorded vector corpus.
//
// # Scenario Format
//
// Scenarios are YAML files:
//
//	name: durations
//	description: "Duration text and tick counts"
//	locale: de              # optional BCP 47 tag, default invariant
//	symbols: override.cue   # optional CUE override, relative to the file
//	cases:
//	  - type: duration
//	    input: "1.02:03:04.5"
//	    expect: "1.02:03:04.5000000"
//	  - type: duration
//	    input: true
//	    error: TYPE_MISMATCH
//	assertions:
//	  - type: idempotent
//	  - type: error_count
//	    kind: TYPE_MISMATCH
//	    count: 1
//
// Inputs and expectations are read by YAML tag: !!int becomes an integer
// token, !!float a number (.inf and .nan included), !!str a string, and
// mappings or sequences a JSON composite. Expectations are compared by
// canonical JSON text, so 1 matches a float converter's "1".
//
// # Assertion Types
//
//   - idempotent: every successful output canonicalizes to itself
//   - error_count: exactly count cases fail with kind
//   - same_output: the listed cases produce identical output
//
// # Corpus
//
// Record converts inputs and stores each outcome as a vector; Verify
// re-runs every stored vector under its recorded symbol table and flags
// any whose outcome has drifted.
package harness

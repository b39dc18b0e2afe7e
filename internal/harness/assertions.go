package harness

import (
	"fmt"

	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/registry"
)

// AssertionError is returned when an assertion fails.
type AssertionError struct {
	Type    string
	Message string
}

// Error implements the error interface.
func (e *AssertionError) Error() string {
	return fmt.Sprintf("assertion %s failed: %s", e.Type, e.Message)
}

// assertIdempotent feeds every successful output back through its target
// and requires the same canonical text.
func assertIdempotent(reg *registry.Registry, outcomes []Outcome) error {
	for _, o := range outcomes {
		if o.Output == nil {
			continue
		}
		target, err := registry.ParseTarget(o.Target)
		if err != nil {
			return &AssertionError{Type: AssertIdempotent, Message: err.Error()}
		}
		again, err := reg.Canonicalize(target, o.Output)
		if err != nil {
			return &AssertionError{
				Type:    AssertIdempotent,
				Message: fmt.Sprintf("cases[%d] output %s does not convert: %v", o.Index, tokenText(o.Output), err),
			}
		}
		if !sameToken(again, o.Output) {
			return &AssertionError{
				Type: AssertIdempotent,
				Message: fmt.Sprintf("cases[%d] output %s canonicalizes to %s",
					o.Index, tokenText(o.Output), tokenText(again)),
			}
		}
	}
	return nil
}

// assertErrorCount requires exactly a.Count outcomes failing with a.Kind.
func assertErrorCount(outcomes []Outcome, a Assertion) error {
	n := 0
	for _, o := range outcomes {
		if o.Output == nil && o.ErrorKind == convert.Kind(a.Kind) {
			n++
		}
	}
	if n != a.Count {
		return &AssertionError{
			Type:    AssertErrorCount,
			Message: fmt.Sprintf("expected %d %s errors, got %d", a.Count, a.Kind, n),
		}
	}
	return nil
}

// assertSameOutput requires the listed cases to succeed with identical
// output.
func assertSameOutput(outcomes []Outcome, a Assertion) error {
	var first string
	for i, idx := range a.Cases {
		if idx < 0 || idx >= len(outcomes) {
			return &AssertionError{Type: AssertSameOutput, Message: fmt.Sprintf("case index %d out of range", idx)}
		}
		o := outcomes[idx]
		if o.Output == nil {
			return &AssertionError{
				Type:    AssertSameOutput,
				Message: fmt.Sprintf("cases[%d] failed with %s", idx, o.ErrorKind),
			}
		}
		text := tokenText(o.Output)
		if i == 0 {
			first = text
			continue
		}
		if text != first {
			return &AssertionError{
				Type:    AssertSameOutput,
				Message: fmt.Sprintf("cases[%d] = %s, cases[%d] = %s", a.Cases[0], first, idx, text),
			}
		}
	}
	return nil
}

// EvaluateAssertions evaluates all assertions against the result.
// Returns a slice of error messages for failed assertions.
func EvaluateAssertions(reg *registry.Registry, result *Result, assertions []Assertion) []string {
	var errs []string
	for i, a := range assertions {
		var err error
		switch a.Type {
		case AssertIdempotent:
			err = assertIdempotent(reg, result.Outcomes)
		case AssertErrorCount:
			err = assertErrorCount(result.Outcomes, a)
		case AssertSameOutput:
			err = assertSameOutput(result.Outcomes, a)
		default:
			err = fmt.Errorf("unknown assertion type: %s", a.Type)
		}
		if err != nil {
			errs = append(errs, fmt.Sprintf("assertion %d: %v", i, err))
		}
	}
	return errs
}

package harness

import (
	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/wire"
)

// Outcome is the result of one case.
type Outcome struct {
	Index  int
	Target string
	Input  wire.Token

	// Output is nil when the conversion failed.
	Output    wire.Token
	ErrorKind convert.Kind

	// Pass reports whether the outcome matched the case's expectation.
	Pass bool
}

// Result is the outcome of a scenario.
type Result struct {
	// Pass is true if every case and assertion passed.
	Pass bool

	Outcomes []Outcome

	// Errors contains one message per failed case or assertion.
	Errors []string
}

// NewResult creates a new passing result.
func NewResult() *Result {
	return &Result{
		Pass:     true,
		Outcomes: []Outcome{},
		Errors:   []string{},
	}
}

// AddError adds a validation error and marks the result as failed.
func (r *Result) AddError(err string) {
	r.Errors = append(r.Errors, err)
	r.Pass = false
}

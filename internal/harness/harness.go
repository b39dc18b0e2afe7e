package harness

import (
	"fmt"
	"io"
	"log/slog"

	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/locale"
	"github.com/roach88/wireconv/internal/registry"
	"github.com/roach88/wireconv/internal/wire"
)

// Harness runs scenarios against a registry.
type Harness struct {
	logger *slog.Logger
}

// Option configures a Harness.
type Option func(*Harness)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *slog.Logger) Option {
	return func(h *Harness) {
		h.logger = l
	}
}

// New creates a Harness.
func New(opts ...Option) *Harness {
	h := &Harness{
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Run executes a scenario with a default Harness.
func Run(scenario *Scenario) (*Result, error) {
	return New().Run(scenario)
}

// Run executes every case of scenario and evaluates its assertions.
//
// A case that fails its expectation is recorded in the result; the
// returned error is reserved for scenarios that cannot run at all, such as
// an unknown locale or a broken symbols file.
func (h *Harness) Run(scenario *Scenario) (*Result, error) {
	symbols, err := locale.Resolve(scenario.Locale, scenario.Symbols)
	if err != nil {
		return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
	}
	reg := registry.New(registry.WithSymbols(symbols))

	h.logger.Debug("running scenario",
		"scenario", scenario.Name,
		"cases", len(scenario.Cases),
		"locale", scenario.Locale)

	result := NewResult()
	for i := range scenario.Cases {
		outcome, err := h.runCase(reg, i, &scenario.Cases[i])
		if err != nil {
			return nil, fmt.Errorf("scenario %s: %w", scenario.Name, err)
		}
		result.Outcomes = append(result.Outcomes, outcome.Outcome)
		if !outcome.Pass {
			result.AddError(outcome.message)
		}
	}

	for _, msg := range EvaluateAssertions(reg, result, scenario.Assertions) {
		result.AddError(msg)
	}

	h.logger.Debug("scenario finished",
		"scenario", scenario.Name,
		"pass", result.Pass,
		"errors", len(result.Errors))
	return result, nil
}

type caseOutcome struct {
	Outcome
	message string
}

func (h *Harness) runCase(reg *registry.Registry, i int, c *Case) (caseOutcome, error) {
	target, err := registry.ParseTarget(c.Type)
	if err != nil {
		return caseOutcome{}, fmt.Errorf("cases[%d]: %w", i, err)
	}
	input, err := NodeToken(&c.Input)
	if err != nil {
		return caseOutcome{}, fmt.Errorf("cases[%d].input: %w", i, err)
	}

	out := caseOutcome{Outcome: Outcome{Index: i, Target: target.String(), Input: input}}
	output, convErr := reg.Canonicalize(target, input)
	if convErr != nil {
		out.ErrorKind = convert.KindOf(convErr)
		h.logger.Debug("conversion failed", "case", i, "target", out.Target, "error", convErr)
	} else {
		out.Output = output
	}

	if c.Error != "" {
		out.Pass = convErr != nil && string(out.ErrorKind) == c.Error
		if !out.Pass {
			out.message = fmt.Sprintf("cases[%d] %s %s: expected error %s, got %s",
				i, out.Target, tokenText(input), c.Error, describeOutcome(out.Outcome))
		}
		return out, nil
	}

	want, err := NodeToken(&c.Expect)
	if err != nil {
		return caseOutcome{}, fmt.Errorf("cases[%d].expect: %w", i, err)
	}
	out.Pass = convErr == nil && sameToken(output, want)
	if !out.Pass {
		out.message = fmt.Sprintf("cases[%d] %s %s: expected %s, got %s",
			i, out.Target, tokenText(input), tokenText(want), describeOutcome(out.Outcome))
	}
	return out, nil
}

// sameToken compares tokens by canonical JSON text.
func sameToken(a, b wire.Token) bool {
	return tokenText(a) == tokenText(b)
}

func describeOutcome(o Outcome) string {
	if o.Output == nil {
		return "error " + string(o.ErrorKind)
	}
	return tokenText(o.Output)
}

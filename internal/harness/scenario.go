package harness

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/registry"
)

// Scenario is a list of conversion cases run against one symbol table.
type Scenario struct {
	// Name uniquely identifies this scenario. It also names the golden file.
	Name string `yaml:"name"`

	// Description explains what this scenario validates.
	Description string `yaml:"description"`

	// Locale selects a built-in symbol table. Empty means invariant.
	Locale string `yaml:"locale,omitempty"`

	// Symbols is an optional CUE override file. LoadScenario resolves it
	// relative to the scenario file.
	Symbols string `yaml:"symbols,omitempty"`

	Cases      []Case      `yaml:"cases"`
	Assertions []Assertion `yaml:"assertions,omitempty"`
}

// Case is one conversion with its expected outcome. Exactly one of Expect
// and Error is set.
type Case struct {
	// Type is a target in registry.ParseTarget form, e.g. "date?".
	Type string `yaml:"type"`

	Input  yaml.Node `yaml:"input"`
	Expect yaml.Node `yaml:"expect,omitempty"`

	// Error is the expected failure kind, e.g. FORMAT_MISMATCH.
	Error string `yaml:"error,omitempty"`
}

// Assertion validates the scenario's outcomes as a whole.
type Assertion struct {
	Type string `yaml:"type"`

	// Kind and Count are used by error_count.
	Kind  string `yaml:"kind,omitempty"`
	Count int    `yaml:"count,omitempty"`

	// Cases lists case indices for same_output.
	Cases []int `yaml:"cases,omitempty"`
}

// Assertion type constants.
const (
	AssertIdempotent = "idempotent"
	AssertErrorCount = "error_count"
	AssertSameOutput = "same_output"
)

var knownKinds = map[string]bool{
	string(convert.KindFormatMismatch):         true,
	string(convert.KindOutOfRange):             true,
	string(convert.KindTypeMismatch):           true,
	string(convert.KindUnsupportedNullability): true,
}

// LoadScenario reads and parses a scenario YAML file.
// Returns an error if the file doesn't exist, is malformed,
// contains unknown fields (typos), or is missing required fields.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario file: %w", err)
	}

	scenario, err := ParseScenario(data)
	if err != nil {
		return nil, err
	}

	if scenario.Symbols != "" && !filepath.IsAbs(scenario.Symbols) {
		scenario.Symbols = filepath.Join(filepath.Dir(path), scenario.Symbols)
	}
	if scenario.Symbols != "" {
		if _, err := os.Stat(scenario.Symbols); err != nil {
			return nil, fmt.Errorf("invalid scenario: symbols file: %w", err)
		}
	}
	return scenario, nil
}

// ParseScenario parses scenario YAML. A symbols path is left as written.
func ParseScenario(data []byte) (*Scenario, error) {
	// Strict field validation catches typos like "case:" vs "cases:"
	var scenario Scenario
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&scenario); err != nil {
		return nil, fmt.Errorf("failed to parse YAML: %w", err)
	}

	if err := validateScenario(&scenario); err != nil {
		return nil, fmt.Errorf("invalid scenario: %w", err)
	}
	return &scenario, nil
}

// validateScenario checks that required fields are present and valid.
func validateScenario(s *Scenario) error {
	if s.Name == "" {
		return fmt.Errorf("name is required")
	}
	if s.Description == "" {
		return fmt.Errorf("description is required")
	}
	if len(s.Cases) == 0 {
		return fmt.Errorf("cases list is required and must be non-empty")
	}

	for i, c := range s.Cases {
		if c.Type == "" {
			return fmt.Errorf("cases[%d]: type is required", i)
		}
		if _, err := registry.ParseTarget(c.Type); err != nil {
			return fmt.Errorf("cases[%d]: %w", i, err)
		}
		if c.Input.Kind == 0 {
			return fmt.Errorf("cases[%d]: input is required", i)
		}
		hasExpect := c.Expect.Kind != 0
		switch {
		case hasExpect && c.Error != "":
			return fmt.Errorf("cases[%d]: expect and error are mutually exclusive", i)
		case !hasExpect && c.Error == "":
			return fmt.Errorf("cases[%d]: one of expect or error is required", i)
		case c.Error != "" && !knownKinds[c.Error]:
			return fmt.Errorf("cases[%d]: unknown error kind %q", i, c.Error)
		}
	}

	for i := range s.Assertions {
		if err := validateAssertion(i, &s.Assertions[i], len(s.Cases)); err != nil {
			return err
		}
	}
	return nil
}

// validateAssertion validates a single assertion based on its type.
func validateAssertion(index int, a *Assertion, cases int) error {
	if a.Type == "" {
		return fmt.Errorf("assertions[%d]: type is required", index)
	}

	switch a.Type {
	case AssertIdempotent:
	case AssertErrorCount:
		if !knownKinds[a.Kind] {
			return fmt.Errorf("assertions[%d]: unknown error kind %q for error_count", index, a.Kind)
		}
		if a.Count < 0 {
			return fmt.Errorf("assertions[%d]: count must be non-negative for error_count", index)
		}
	case AssertSameOutput:
		if len(a.Cases) < 2 {
			return fmt.Errorf("assertions[%d]: same_output needs at least two cases", index)
		}
		for _, c := range a.Cases {
			if c < 0 || c >= cases {
				return fmt.Errorf("assertions[%d]: case index %d out of range", index, c)
			}
		}
	default:
		return fmt.Errorf("assertions[%d]: unknown assertion type %q", index, a.Type)
	}
	return nil
}

package harness

import (
	"fmt"
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// Report renders a result as stable text, one line per case:
//
//	index<TAB>target<TAB>input<TAB>output or error:KIND
//
// followed by a pass line and any error messages.
func Report(name string, result *Result) []byte {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", name)
	for _, o := range result.Outcomes {
		out := "error:" + string(o.ErrorKind)
		if o.Output != nil {
			out = tokenText(o.Output)
		}
		fmt.Fprintf(&b, "%d\t%s\t%s\t%s\n", o.Index, o.Target, tokenText(o.Input), out)
	}
	fmt.Fprintf(&b, "pass: %t\n", result.Pass)
	for _, e := range result.Errors {
		fmt.Fprintf(&b, "error: %s\n", e)
	}
	return []byte(b.String())
}

// RunWithGolden executes a scenario and compares its report against
// testdata/golden/{scenario.Name}.golden.
//
// To regenerate golden files, run:
//
//	go test ./internal/harness -update
func RunWithGolden(t *testing.T, scenario *Scenario) (*Result, error) {
	t.Helper()

	result, err := Run(scenario)
	if err != nil {
		return nil, err
	}
	AssertGolden(t, scenario.Name, result)
	return result, nil
}

// AssertGolden compares an existing result against its golden file.
func AssertGolden(t *testing.T, name string, result *Result) {
	t.Helper()

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, Report(name, result))
}

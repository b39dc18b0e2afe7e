package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/harness"
	"github.com/roach88/wireconv/internal/store"
	"github.com/roach88/wireconv/internal/wire"
)

// VerifyOptions holds flags for the verify command.
type VerifyOptions struct {
	*RootOptions
	Database string
	RunID    string
	Target   string
	Last     bool
}

// DriftedVector identifies a vector whose outcome changed.
type DriftedVector struct {
	ID       string `json:"id"`
	Target   string `json:"target"`
	Input    string `json:"input"`
	Recorded string `json:"recorded"`
	Observed string `json:"observed"`
}

// VerifyResult summarizes one verification run.
type VerifyResult struct {
	RunID          string          `json:"run_id"`
	Checked        int             `json:"checked"`
	Drifted        int             `json:"drifted"`
	DriftedVectors []DriftedVector `json:"drifted_vectors,omitempty"`
}

func (r VerifyResult) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "run %s: %d checked, %d drifted", r.RunID, r.Checked, r.Drifted)
	for _, d := range r.DriftedVectors {
		fmt.Fprintf(&b, "\n  %s\t%s\t%s\t%s -> %s", d.ID, d.Target, d.Input, d.Recorded, d.Observed)
	}
	return b.String()
}

// NewVerifyCommand creates the verify command.
func NewVerifyCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &VerifyOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "verify --db <path>",
		Short: "Re-run stored vectors and report drift",
		Long: `Re-convert every stored vector under the symbol table it was recorded
with, and store one check per vector. A vector drifts when its output or
error kind differs from the recorded one. --target limits the run to one
target; --last reports the most recent run without converting anything.

Exit codes:
  0 - No drift
  1 - One or more vectors drifted
  2 - Command error (database not found, etc.)

Examples:
  wireconv verify --db vectors.db
  wireconv verify --db vectors.db --target instant
  wireconv verify --db vectors.db --last`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runVerify(opts, cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().StringVar(&opts.RunID, "run-id", "", "verification run ID (default: a new UUIDv7)")
	cmd.Flags().StringVar(&opts.Target, "target", "", "verify only vectors recorded for this target")
	cmd.Flags().BoolVar(&opts.Last, "last", false, "report the most recent run instead of verifying")
	_ = cmd.MarkFlagRequired("db")
	cmd.MarkFlagsMutuallyExclusive("last", "run-id")
	cmd.MarkFlagsMutuallyExclusive("last", "target")

	return cmd
}

func runVerify(opts *VerifyOptions, cmd *cobra.Command) error {
	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	corpus, err := harness.NewCorpus(ctx, st, harness.WithCorpusLogger(opts.logger(cmd.ErrOrStderr())))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open corpus", err)
	}

	var summary store.RunSummary
	if opts.Last {
		summary, err = st.LastRun(ctx)
		if errors.Is(err, store.ErrNotFound) {
			return WrapExitError(ExitCommandError, "nothing to report", err)
		}
	} else {
		runID := opts.RunID
		if runID == "" {
			runID = store.UUIDv7Generator{}.Generate()
		}
		summary, err = corpus.Verify(ctx, runID, opts.Target)
	}
	if err != nil {
		return WrapExitError(ExitFailure, "verification failed", err)
	}

	result := VerifyResult{RunID: summary.RunID, Checked: summary.Checked, Drifted: summary.Drifted}
	if summary.Drifted > 0 {
		drifts, err := corpus.Drifted(ctx, summary.RunID)
		if err != nil {
			return WrapExitError(ExitFailure, "reading drifted vectors", err)
		}
		for _, d := range drifts {
			input, err := wire.MarshalJSON(d.Vector.Input)
			if err != nil {
				return WrapExitError(ExitFailure, "encoding input", err)
			}
			result.DriftedVectors = append(result.DriftedVectors, DriftedVector{
				ID:       d.Vector.ID,
				Target:   d.Vector.Target,
				Input:    string(input),
				Recorded: describeOutcome(d.Vector.Output, d.Vector.ErrorKind),
				Observed: describeOutcome(d.Check.Output, d.Check.ErrorKind),
			})
		}
	}

	f := opts.formatter(cmd)
	if err := f.Success(result); err != nil {
		return err
	}
	if summary.Drifted > 0 {
		return NewExitError(ExitFailure, fmt.Sprintf("%d vector(s) drifted", summary.Drifted))
	}
	return nil
}

// describeOutcome renders a stored output as JSON text, or error:KIND when
// the conversion failed.
func describeOutcome(output wire.Token, kind convert.Kind) string {
	if output == nil {
		return "error:" + string(kind)
	}
	text, err := wire.MarshalJSON(output)
	if err != nil {
		return wire.Describe(output)
	}
	return string(text)
}

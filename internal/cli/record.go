package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/wireconv/internal/harness"
	"github.com/roach88/wireconv/internal/locale"
	"github.com/roach88/wireconv/internal/registry"
	"github.com/roach88/wireconv/internal/store"
	"github.com/roach88/wireconv/internal/wire"
)

// RecordOptions holds flags for the record command.
type RecordOptions struct {
	*RootOptions
	Database string
	CBOR     bool
}

// RecordedVector is one line of record output.
type RecordedVector struct {
	ID        string `json:"id,omitempty"` // empty when the vector already existed
	Target    string `json:"target"`
	Input     string `json:"input"`
	Output    string `json:"output,omitempty"`
	ErrorKind string `json:"error_kind,omitempty"`
	New       bool   `json:"new"`
}

// RecordResult lists the vectors written by one record call.
type RecordResult struct {
	Vectors []RecordedVector `json:"vectors"`
}

func (r RecordResult) String() string {
	var b strings.Builder
	for i, v := range r.Vectors {
		if i > 0 {
			b.WriteByte('\n')
		}
		out := v.Output
		if v.ErrorKind != "" {
			out = "error:" + v.ErrorKind
		}
		status := "recorded"
		if !v.New {
			status = "exists"
		}
		fmt.Fprintf(&b, "%s\t%s\t%s\t%s", status, v.Target, v.Input, out)
	}
	return b.String()
}

// NewRecordCommand creates the record command.
func NewRecordCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RecordOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "record --db <path> <type>[?] <value>...",
		Short: "Convert values and store the outcomes as vectors",
		Long: `Convert each value to the target type and store the outcome, output or
error kind, in the vector corpus together with the active symbol table.
Conversion failures are recorded, not reported as command errors. Values
already recorded for the same target and symbols are left unchanged.

Example:
  wireconv record --db vectors.db instant '"2024-03-01T12:30:00+02:00"' 1709289000
  wireconv record --db vectors.db --locale sv float64 '"−∞"'`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRecord(opts, args[0], args[1:], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.Database, "db", "", "path to SQLite database (required)")
	cmd.Flags().BoolVar(&opts.CBOR, "cbor", false, "read values as hex-encoded CBOR")
	_ = cmd.MarkFlagRequired("db")

	return cmd
}

func runRecord(opts *RecordOptions, targetArg string, values []string, cmd *cobra.Command) error {
	target, err := registry.ParseTarget(targetArg)
	if err != nil {
		return WrapExitError(ExitCommandError, "invalid target", err)
	}

	inputs := make([]wire.Token, len(values))
	for i, v := range values {
		if inputs[i], err = readValue(v, opts.CBOR); err != nil {
			return WrapExitError(ExitCommandError, fmt.Sprintf("invalid value %d", i+1), err)
		}
	}

	sym, err := locale.Resolve(opts.Locale, opts.Symbols)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to resolve symbols", err)
	}

	st, err := store.Open(opts.Database)
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open database", err)
	}
	defer st.Close()

	ctx := cmd.Context()
	logger := opts.logger(cmd.ErrOrStderr())
	corpus, err := harness.NewCorpus(ctx, st, harness.WithCorpusLogger(logger))
	if err != nil {
		return WrapExitError(ExitCommandError, "failed to open corpus", err)
	}

	result := RecordResult{Vectors: make([]RecordedVector, 0, len(inputs))}
	for i, input := range inputs {
		v, inserted, err := corpus.Record(ctx, sym, target, input)
		if err != nil {
			return WrapExitError(ExitFailure, "failed to record vector", err)
		}
		rv := RecordedVector{
			Target:    v.Target,
			Input:     values[i],
			ErrorKind: string(v.ErrorKind),
			New:       inserted,
		}
		if inserted {
			rv.ID = v.ID
		}
		if v.Output != nil {
			text, err := wire.MarshalJSON(v.Output)
			if err != nil {
				return WrapExitError(ExitFailure, "encoding output", err)
			}
			rv.Output = string(text)
		}
		result.Vectors = append(result.Vectors, rv)
	}
	return opts.formatter(cmd).Success(result)
}

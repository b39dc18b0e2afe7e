package cli

import (
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/spf13/cobra"

	"github.com/roach88/wireconv/internal/locale"
	"github.com/roach88/wireconv/internal/registry"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Verbose bool
	Format  string // "json" | "text"

	// Locale and Symbols pick the special-value table for float targets.
	Locale  string
	Symbols string
}

// ValidFormats defines the allowed output formats.
var ValidFormats = []string{"text", "json"}

// NewRootCommand creates the root command for the wireconv CLI.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   "wireconv",
		Short: "wireconv - canonical wire value conversion",
		Long: `Convert loosely formatted wire values (JSON or CBOR) into typed values and
back into their canonical text: floats, decimals, durations, instants, dates,
clock times and UUIDs.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
	}

	cmd.PersistentFlags().BoolVarP(&opts.Verbose, "verbose", "v", false, "verbose output")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")
	cmd.PersistentFlags().StringVar(&opts.Locale, "locale", "", "BCP 47 tag selecting special-value symbols (default invariant)")
	cmd.PersistentFlags().StringVar(&opts.Symbols, "symbols", "", "CUE file overriding special-value symbols")

	cmd.AddCommand(NewConvertCommand(opts))
	cmd.AddCommand(NewTypesCommand(opts))
	cmd.AddCommand(NewCheckCommand(opts))
	cmd.AddCommand(NewRecordCommand(opts))
	cmd.AddCommand(NewVerifyCommand(opts))

	return cmd
}

// buildRegistry resolves the symbol table once and builds the converters.
func (o *RootOptions) buildRegistry() (*registry.Registry, error) {
	sym, err := locale.Resolve(o.Locale, o.Symbols)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "failed to resolve symbols", err)
	}
	return registry.New(registry.WithSymbols(sym)), nil
}

// logger writes to w at Debug when verbose, otherwise Warn.
func (o *RootOptions) logger(w io.Writer) *slog.Logger {
	level := slog.LevelWarn
	if o.Verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

func (o *RootOptions) formatter(cmd *cobra.Command) *OutputFormatter {
	return &OutputFormatter{
		Format:    o.Format,
		Writer:    cmd.OutOrStdout(),
		ErrWriter: cmd.ErrOrStderr(),
		Verbose:   o.Verbose,
	}
}

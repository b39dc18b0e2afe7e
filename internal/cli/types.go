package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/wireconv/internal/locale"
	"github.com/roach88/wireconv/internal/temporal"
)

// TypeInfo describes one convertible target type.
type TypeInfo struct {
	Name    string   `json:"name"`
	Formats []string `json:"formats,omitempty"`
}

// TypesResult lists the target types and symbol tables.
type TypesResult struct {
	Types   []TypeInfo     `json:"types"`
	Locales []string       `json:"locales"`
	Symbols locale.Symbols `json:"symbols"`
}

func (r TypesResult) String() string {
	var b strings.Builder
	for _, t := range r.Types {
		if len(t.Formats) == 0 {
			fmt.Fprintln(&b, t.Name)
			continue
		}
		fmt.Fprintf(&b, "%s\t%s\n", t.Name, strings.Join(t.Formats, ", "))
	}
	fmt.Fprintf(&b, "locales: %s\n", strings.Join(r.Locales, ", "))
	fmt.Fprintf(&b, "symbols: +%s -%s nan=%s",
		r.Symbols.PositiveInfinity, r.Symbols.NegativeInfinity, r.Symbols.NaN)
	return b.String()
}

// NewTypesCommand creates the types command.
func NewTypesCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List target types and their accepted text formats",
		Long: `List every target type in registration order. Temporal types show the
candidate formats they try, first match wins. The active symbol table
reflects --locale and --symbols.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			reg, err := rootOpts.buildRegistry()
			if err != nil {
				return err
			}

			result := TypesResult{Symbols: reg.Symbols()}
			for _, id := range reg.Types() {
				result.Types = append(result.Types, TypeInfo{
					Name:    string(id),
					Formats: temporal.Formats(string(id)),
				})
			}
			for _, tag := range locale.Supported() {
				result.Locales = append(result.Locales, tag.String())
			}
			return rootOpts.formatter(cmd).Success(result)
		},
	}
}

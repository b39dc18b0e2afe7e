package cli

import (
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/registry"
	"github.com/roach88/wireconv/internal/wire"
)

// ConvertOptions holds flags for the convert command.
type ConvertOptions struct {
	*RootOptions

	// CBOR reads the input as hex-encoded CBOR instead of JSON text.
	CBOR bool

	// EmitCBOR also prints the canonical output as hex-encoded CBOR.
	EmitCBOR bool
}

// ConversionResult is the payload of a successful conversion.
type ConversionResult struct {
	Target string          `json:"target"`
	Input  string          `json:"input"`
	Output json.RawMessage `json:"output"`
	CBOR   string          `json:"cbor,omitempty"`
}

func (r ConversionResult) String() string {
	if r.CBOR != "" {
		return fmt.Sprintf("%s\ncbor: %s", r.Output, r.CBOR)
	}
	return string(r.Output)
}

// NewConvertCommand creates the convert command.
func NewConvertCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ConvertOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "convert <type>[?] <value>",
		Short: "Convert one wire value to its canonical form",
		Long: `Convert a single JSON (or, with --cbor, hex CBOR) value to the target type
and print its canonical JSON encoding. A trailing '?' on the type accepts null.

Exit codes:
  0 - Converted
  1 - Conversion failed (FORMAT_MISMATCH, OUT_OF_RANGE, TYPE_MISMATCH,
      UNSUPPORTED_NULLABILITY)
  2 - Command error (bad target, unparseable input, etc.)

Examples:
  wireconv convert duration '"1.02:03:04.5"'
  wireconv convert instant '"2024-03-01T12:30:00+02:00"'
  wireconv convert --locale de float64 '"∞"'
  wireconv convert --cbor date? f6`,
		Args:          cobra.ExactArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConvert(opts, args[0], args[1], cmd)
		},
	}

	cmd.Flags().BoolVar(&opts.CBOR, "cbor", false, "read the value as hex-encoded CBOR")
	cmd.Flags().BoolVar(&opts.EmitCBOR, "emit-cbor", false, "also print the canonical output as hex CBOR")

	return cmd
}

func runConvert(opts *ConvertOptions, targetArg, value string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)

	target, err := registry.ParseTarget(targetArg)
	if err != nil {
		_ = f.Error(ErrCodeInvalidInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid target", err)
	}

	input, err := readValue(value, opts.CBOR)
	if err != nil {
		_ = f.Error(ErrCodeInvalidInput, err.Error(), nil)
		return WrapExitError(ExitCommandError, "invalid input", err)
	}

	reg, err := opts.buildRegistry()
	if err != nil {
		return err
	}
	f.VerboseLog("converting %s to %s", wire.Describe(input), target)

	output, err := reg.Canonicalize(target, input)
	if err != nil {
		_ = f.Error(errorCode(err), err.Error(), map[string]string{
			"kind":   string(convert.KindOf(err)),
			"target": target.String(),
		})
		return WrapExitError(ExitFailure, "conversion failed", err)
	}

	text, err := wire.MarshalJSON(output)
	if err != nil {
		return WrapExitError(ExitFailure, "encoding output", err)
	}
	result := ConversionResult{
		Target: target.String(),
		Input:  value,
		Output: text,
	}
	if opts.EmitCBOR {
		data, err := wire.MarshalCBOR(output)
		if err != nil {
			return WrapExitError(ExitFailure, "encoding output", err)
		}
		result.CBOR = hex.EncodeToString(data)
	}
	return f.Success(result)
}

// readValue parses a command-line value as JSON text or hex CBOR.
func readValue(value string, isCBOR bool) (wire.Token, error) {
	if !isCBOR {
		tok, err := wire.ParseJSON([]byte(value))
		if err != nil {
			return nil, fmt.Errorf("value is not JSON: %w", err)
		}
		return tok, nil
	}
	data, err := hex.DecodeString(strings.TrimSpace(value))
	if err != nil {
		return nil, fmt.Errorf("value is not hex: %w", err)
	}
	tok, err := wire.ParseCBOR(data)
	if err != nil {
		return nil, fmt.Errorf("value is not CBOR: %w", err)
	}
	return tok, nil
}

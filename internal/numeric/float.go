package numeric

import (
	"errors"
	"math"
	"strconv"
	"strings"

	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/locale"
	"github.com/roach88/wireconv/internal/wire"
)

// Float64Converter converts float64 values.
type Float64Converter struct {
	symbols locale.Symbols
}

// NewFloat64 returns a float64 converter using symbols for special values.
func NewFloat64(symbols locale.Symbols) Float64Converter {
	return Float64Converter{symbols: symbols}
}

// Name implements convert.Converter.
func (Float64Converter) Name() string { return "float64" }

// Deserialize implements convert.Converter.
func (c Float64Converter) Deserialize(tok wire.Token) (float64, error) {
	if n, ok := tok.(wire.Native); ok {
		if f, ok := n.Value.(float64); ok {
			return f, nil
		}
		return 0, convert.NewTypeMismatch(c.Name(), tok)
	}
	return parseFloat(c.Name(), tok, 64, c.symbols)
}

// Serialize implements convert.Converter.
func (c Float64Converter) Serialize(v float64) (wire.Token, error) {
	return formatFloat(v, 64, c.symbols), nil
}

// Float32Converter converts float32 values.
type Float32Converter struct {
	symbols locale.Symbols
}

// NewFloat32 returns a float32 converter using symbols for special values.
func NewFloat32(symbols locale.Symbols) Float32Converter {
	return Float32Converter{symbols: symbols}
}

// Name implements convert.Converter.
func (Float32Converter) Name() string { return "float32" }

// Deserialize implements convert.Converter.
func (c Float32Converter) Deserialize(tok wire.Token) (float32, error) {
	if n, ok := tok.(wire.Native); ok {
		if f, ok := n.Value.(float32); ok {
			return f, nil
		}
		return 0, convert.NewTypeMismatch(c.Name(), tok)
	}
	f, err := parseFloat(c.Name(), tok, 32, c.symbols)
	return float32(f), err
}

// Serialize implements convert.Converter.
func (c Float32Converter) Serialize(v float32) (wire.Token, error) {
	return formatFloat(float64(v), 32, c.symbols), nil
}

// parseFloat reads tok as a float of the given bit size. The result is
// exactly representable at that size.
func parseFloat(target string, tok wire.Token, bits int, symbols locale.Symbols) (float64, error) {
	switch t := tok.(type) {
	case nil, wire.Null:
		return 0, convert.NewUnsupportedNullability(target)

	case wire.Int:
		if bits == 32 {
			return float64(float32(t)), nil
		}
		return float64(t), nil

	case wire.Number:
		f, err := strconv.ParseFloat(strings.TrimSpace(string(t)), bits)
		if err != nil {
			return 0, classifyParseError(target, tok, err)
		}
		return f, nil

	case wire.String:
		s := strings.TrimSpace(string(t))
		f, err := strconv.ParseFloat(s, bits)
		if err == nil {
			return f, nil
		}
		if errors.Is(err, strconv.ErrRange) {
			return 0, convert.NewOutOfRange(target, wire.Describe(tok), err)
		}
		if f, ok := lookupSymbol(s, symbols); ok {
			return f, nil
		}
		return 0, convert.NewFormatMismatch(target, tok, err)

	case wire.Bool, wire.Composite, wire.Native:
		return 0, convert.NewTypeMismatch(target, tok)

	default:
		return 0, convert.NewTypeMismatch(target, tok)
	}
}

func classifyParseError(target string, tok wire.Token, err error) error {
	if errors.Is(err, strconv.ErrRange) {
		return convert.NewOutOfRange(target, wire.Describe(tok), err)
	}
	return convert.NewFormatMismatch(target, tok, err)
}

// lookupSymbol matches s against the special-value symbols, ignoring case.
// The bare infinity signs are accepted under every table.
func lookupSymbol(s string, symbols locale.Symbols) (float64, bool) {
	switch {
	case strings.EqualFold(s, symbols.PositiveInfinity):
		return math.Inf(1), true
	case strings.EqualFold(s, symbols.NegativeInfinity):
		return math.Inf(-1), true
	case strings.EqualFold(s, symbols.NaN):
		return math.NaN(), true
	}
	switch s {
	case "∞", "+∞":
		return math.Inf(1), true
	case "-∞", "\u2212∞":
		return math.Inf(-1), true
	}
	return 0, false
}

// formatFloat renders f the way encoding/json does: shortest round-trip
// digits, exponent form only for very large or very small magnitudes.
func formatFloat(f float64, bits int, symbols locale.Symbols) wire.Token {
	switch {
	case math.IsNaN(f):
		return wire.String(symbols.NaN)
	case math.IsInf(f, 1):
		return wire.String(symbols.PositiveInfinity)
	case math.IsInf(f, -1):
		return wire.String(symbols.NegativeInfinity)
	}

	abs := math.Abs(f)
	format := byte('f')
	if abs != 0 {
		if bits == 64 && (abs < 1e-6 || abs >= 1e21) ||
			bits == 32 && (float32(abs) < 1e-6 || float32(abs) >= 1e21) {
			format = 'e'
		}
	}
	b := strconv.AppendFloat(nil, f, format, -1, bits)
	if format == 'e' {
		// e-09 becomes e-9
		n := len(b)
		if n >= 4 && b[n-4] == 'e' && b[n-3] == '-' && b[n-2] == '0' {
			b[n-2] = b[n-1]
			b = b[:n-1]
		}
	}
	return wire.Number(b)
}

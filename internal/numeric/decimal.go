package numeric

import (
	"errors"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/wire"
)

// MaxScale is the largest number of fractional digits a decimal keeps.
const MaxScale = 28

// MaxDecimal is the largest decimal magnitude, 2^96 - 1.
const MaxDecimal = "79228162514264337593543950335"

var (
	maxDecimal = mustDecimal(MaxDecimal)

	errDecimalRange  = errors.New("magnitude exceeds 96-bit coefficient")
	errNotFinite     = errors.New("decimal has no infinity or NaN")
	errNilDecimal    = errors.New("nil decimal")
	decimalTruncator = apd.Context{
		Precision:   uint32(2 * (MaxScale + len(MaxDecimal))),
		MaxExponent: apd.MaxExponent,
		MinExponent: apd.MinExponent,
		Traps:       apd.DefaultTraps,
		Rounding:    apd.RoundDown,
	}
)

func mustDecimal(s string) *apd.Decimal {
	d, _, err := apd.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

// DecimalConverter converts fixed-point decimals.
type DecimalConverter struct{}

// NewDecimal returns a decimal converter.
func NewDecimal() DecimalConverter {
	return DecimalConverter{}
}

// Name implements convert.Converter.
func (DecimalConverter) Name() string { return "decimal" }

// Deserialize implements convert.Converter. The result is always a fresh
// value fitted to the decimal's range and scale.
func (c DecimalConverter) Deserialize(tok wire.Token) (*apd.Decimal, error) {
	var d *apd.Decimal
	switch t := tok.(type) {
	case nil, wire.Null:
		return nil, convert.NewUnsupportedNullability(c.Name())

	case wire.Int:
		d = apd.New(int64(t), 0)

	case wire.Number, wire.String:
		parsed, _, err := apd.NewFromString(strings.TrimSpace(t.Text()))
		if err != nil {
			return nil, convert.NewFormatMismatch(c.Name(), tok, err)
		}
		if parsed.Form != apd.Finite {
			return nil, convert.NewFormatMismatch(c.Name(), tok, errNotFinite)
		}
		d = parsed

	case wire.Native:
		switch v := t.Value.(type) {
		case *apd.Decimal:
			if v == nil || v.Form != apd.Finite {
				return nil, convert.NewTypeMismatch(c.Name(), tok)
			}
			d = v
		default:
			return nil, convert.NewTypeMismatch(c.Name(), tok)
		}

	default:
		return nil, convert.NewTypeMismatch(c.Name(), tok)
	}

	fitted, err := fitDecimal(d)
	if err != nil {
		return nil, convert.NewOutOfRange(c.Name(), wire.Describe(tok), err)
	}
	return fitted, nil
}

// Serialize implements convert.Converter. The value is fitted first, so
// out-of-range input yields OUT_OF_RANGE and excess scale is truncated.
func (c DecimalConverter) Serialize(v *apd.Decimal) (wire.Token, error) {
	if v == nil {
		return nil, convert.NewOutOfRange(c.Name(), "nil", errNilDecimal)
	}
	if v.Form != apd.Finite {
		return nil, convert.NewOutOfRange(c.Name(), v.String(), errNotFinite)
	}
	fitted, err := fitDecimal(v)
	if err != nil {
		return nil, convert.NewOutOfRange(c.Name(), v.String(), err)
	}
	return wire.Number(fitted.Text('f')), nil
}

// fitDecimal returns a copy of x that fits a 96-bit coefficient with at
// most MaxScale fractional digits, truncating toward zero. Positive
// exponents are expanded to exponent 0 and negative zero becomes zero.
func fitDecimal(x *apd.Decimal) (*apd.Decimal, error) {
	var abs apd.Decimal
	abs.Abs(x)
	if abs.Cmp(maxDecimal) > 0 {
		return nil, errDecimalRange
	}

	exp := x.Exponent
	if exp > 0 {
		exp = 0
	}
	if exp < -MaxScale {
		exp = -MaxScale
	}

	d := new(apd.Decimal)
	for {
		if _, err := decimalTruncator.Quantize(d, x, exp); err != nil {
			return nil, err
		}
		if exp >= 0 || d.Coeff.Cmp(&maxDecimal.Coeff) <= 0 {
			break
		}
		exp++
	}
	if d.IsZero() {
		d.Negative = false
	}
	return d, nil
}

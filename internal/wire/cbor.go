package wire

import (
	"fmt"
	"math"
	"math/big"
	"reflect"
	"strconv"
	"time"

	"github.com/cockroachdb/apd/v3"
	"github.com/fxamacker/cbor/v2"
)

// tagDecimalFraction is the RFC 8949 decimal fraction tag: [exponent, mantissa].
const tagDecimalFraction = 4

// cborEncMode encodes with Core Deterministic Encoding: smallest integer
// encoding, no indefinite-length items.
var cborEncMode cbor.EncMode

// cborDecMode decodes standard CBOR. Maps decoded into any-typed targets use
// string keys so composites can be rendered uniformly.
var cborDecMode cbor.DecMode

func init() {
	var err error

	cborEncMode, err = cbor.CoreDetEncOptions().EncMode()
	if err != nil {
		panic("wire: CBOR encoder initialization failed: " + err.Error())
	}

	cborDecMode, err = cbor.DecOptions{
		DefaultMapType: reflect.TypeOf(map[string]any(nil)),
	}.DecMode()
	if err != nil {
		panic("wire: CBOR decoder initialization failed: " + err.Error())
	}
}

// ParseCBOR decodes a single CBOR data item into a Token.
//
// Integers become Int (or Number when they overflow int64). Floats and tag 4
// decimal fractions become Number, text strings become String, and tag 0/1
// date-times become a Native time.Time. Byte strings, arrays, maps and other
// tags become Composite carrying their diagnostic notation.
func ParseCBOR(data []byte) (Token, error) {
	var v any
	if err := cborDecMode.Unmarshal(data, &v); err != nil {
		return nil, fmt.Errorf("decode CBOR: %w", err)
	}

	switch val := v.(type) {
	case nil:
		return Null{}, nil
	case bool:
		return Bool(val), nil
	case uint64:
		if val > math.MaxInt64 {
			return Number(strconv.FormatUint(val, 10)), nil
		}
		return Int(int64(val)), nil
	case int64:
		return Int(val), nil
	case big.Int:
		return numberToken(val.String()), nil
	case float64:
		return Number(strconv.FormatFloat(val, 'g', -1, 64)), nil
	case string:
		return String(val), nil
	case time.Time:
		return Native{Value: val}, nil
	case cbor.Tag:
		if val.Number == tagDecimalFraction {
			if n, ok := decimalFraction(val.Content); ok {
				return n, nil
			}
		}
		return diagnose(data)
	default:
		return diagnose(data)
	}
}

func diagnose(data []byte) (Token, error) {
	diag, err := cbor.Diagnose(data)
	if err != nil {
		return nil, fmt.Errorf("diagnose CBOR: %w", err)
	}
	return Composite(diag), nil
}

// decimalFraction renders a tag 4 [exponent, mantissa] pair in plain
// notation. Trailing zeros implied by a negative exponent are kept.
func decimalFraction(content any) (Number, bool) {
	parts, ok := content.([]any)
	if !ok || len(parts) != 2 {
		return "", false
	}
	exp, ok := cborInteger(parts[0])
	if !ok || !exp.IsInt64() || exp.Int64() < math.MinInt32 || exp.Int64() > math.MaxInt32 {
		return "", false
	}
	mantissa, ok := cborInteger(parts[1])
	if !ok {
		return "", false
	}
	d := apd.NewWithBigInt(new(apd.BigInt).SetMathBigInt(mantissa), int32(exp.Int64()))
	return Number(d.Text('f')), true
}

func cborInteger(v any) (*big.Int, bool) {
	switch n := v.(type) {
	case int64:
		return big.NewInt(n), true
	case uint64:
		return new(big.Int).SetUint64(n), true
	case big.Int:
		return &n, true
	case *big.Int:
		return n, n != nil
	default:
		return nil, false
	}
}

// MarshalCBOR encodes tok as a single CBOR data item.
//
// A Number is encoded as float64 when that reproduces its text, otherwise as
// a tag 4 decimal fraction. String, Int, Bool and Null map to their CBOR
// major types. Composite and Native tokens return ErrNotEncodable.
func MarshalCBOR(tok Token) ([]byte, error) {
	switch t := tok.(type) {
	case nil, Null:
		return cborEncMode.Marshal(nil)
	case Bool:
		return cborEncMode.Marshal(bool(t))
	case Int:
		return cborEncMode.Marshal(int64(t))
	case Number:
		return marshalNumber(t)
	case String:
		return cborEncMode.Marshal(string(t))
	case Composite:
		return nil, fmt.Errorf("encode composite: %w", ErrNotEncodable)
	case Native:
		return nil, fmt.Errorf("encode %T: %w", t.Value, ErrNotEncodable)
	default:
		return nil, fmt.Errorf("unknown token type: %T", tok)
	}
}

func marshalNumber(n Number) ([]byte, error) {
	f, ferr := strconv.ParseFloat(string(n), 64)
	if ferr == nil && strconv.FormatFloat(f, 'g', -1, 64) == string(n) {
		return cborEncMode.Marshal(f)
	}
	d, _, err := apd.NewFromString(string(n))
	if err != nil {
		return nil, fmt.Errorf("encode number %q: %w", string(n), err)
	}
	if d.Form != apd.Finite {
		if ferr != nil {
			return nil, fmt.Errorf("encode number %q: %w", string(n), ferr)
		}
		return cborEncMode.Marshal(f)
	}
	mantissa := d.Coeff.MathBigInt()
	if d.Negative {
		mantissa.Neg(mantissa)
	}
	return cborEncMode.Marshal(cbor.Tag{
		Number:  tagDecimalFraction,
		Content: []any{int64(d.Exponent), mantissa},
	})
}

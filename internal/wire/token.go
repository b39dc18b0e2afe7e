package wire

import (
	"fmt"
	"strconv"
)

// Token is a sealed interface representing one raw wire value.
// Only the types in this file implement it.
type Token interface {
	token() // Sealed

	// Text returns the token's textual form. For String it is the string
	// itself; for numbers it is the literal; for Null it is "null".
	Text() string
}

// Null represents an absent or null wire value.
type Null struct{}

func (Null) token() {}

// Text implements Token.
func (Null) Text() string { return "null" }

// Bool represents a boolean wire value. No converter accepts it; it exists so
// that decoders can hand it over and converters can classify the rejection.
type Bool bool

func (Bool) token() {}

// Text implements Token.
func (b Bool) Text() string { return strconv.FormatBool(bool(b)) }

// Int represents an integral number that fits in int64.
type Int int64

func (Int) token() {}

// Text implements Token.
func (i Int) Text() string { return strconv.FormatInt(int64(i), 10) }

// Number represents every numeric literal that is not an Int: one with a
// fraction or exponent, one that overflows int64, or a float rendered by a
// converter. The text is kept verbatim so fixed-point targets can parse it
// without a float detour.
type Number string

func (Number) token() {}

// Text implements Token.
func (n Number) Text() string { return string(n) }

// String represents a text wire value.
type String string

func (String) token() {}

// Text implements Token.
func (s String) Text() string { return string(s) }

// Composite represents an object or array. The payload is the encoded form
// (JSON text, or CBOR diagnostic notation).
type Composite string

func (Composite) token() {}

// Text implements Token.
func (c Composite) Text() string { return string(c) }

// Native carries a host value that is already in typed form. Converters
// accept their own host types unchanged and reject everything else.
type Native struct {
	Value any
}

func (Native) token() {}

// Text implements Token.
func (n Native) Text() string { return fmt.Sprintf("%v", n.Value) }

// IsNull reports whether tok is the null token. A nil Token counts as null.
func IsNull(tok Token) bool {
	if tok == nil {
		return true
	}
	_, ok := tok.(Null)
	return ok
}

// Describe returns a short diagnostic rendering of tok for error messages,
// e.g. `string "05:57:32Z"` or `int 42`.
func Describe(tok Token) string {
	switch t := tok.(type) {
	case nil, Null:
		return "null"
	case Bool:
		return "bool " + t.Text()
	case Int:
		return "int " + t.Text()
	case Number:
		return "number " + t.Text()
	case String:
		return "string " + strconv.Quote(string(t))
	case Composite:
		return "composite " + truncateForDisplay(string(t))
	case Native:
		return fmt.Sprintf("native %T", t.Value)
	default:
		return fmt.Sprintf("unknown token %T", tok)
	}
}

func truncateForDisplay(s string) string {
	const limit = 48
	if len(s) <= limit {
		return s
	}
	return s[:limit] + "..."
}

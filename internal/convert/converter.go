package convert

import "github.com/roach88/wireconv/internal/wire"

// Converter translates between wire tokens and one host type.
//
// Deserialize returns an *Error for every rejected token; a non-nullable
// converter rejects wire.Null with KindUnsupportedNullability. Serialize
// returns the canonical token for v.
type Converter[T any] interface {
	Name() string
	Deserialize(tok wire.Token) (T, error)
	Serialize(v T) (wire.Token, error)
}

// Nullable lifts c to a converter over *T: null maps to a nil pointer and a
// nil pointer serializes to null. Every other token goes to c unchanged.
func Nullable[T any](c Converter[T]) Converter[*T] {
	return nullable[T]{inner: c}
}

type nullable[T any] struct {
	inner Converter[T]
}

func (n nullable[T]) Name() string {
	return n.inner.Name() + "?"
}

func (n nullable[T]) Deserialize(tok wire.Token) (*T, error) {
	if wire.IsNull(tok) {
		return nil, nil
	}
	v, err := n.inner.Deserialize(tok)
	if err != nil {
		return nil, err
	}
	return &v, nil
}

func (n nullable[T]) Serialize(v *T) (wire.Token, error) {
	if v == nil {
		return wire.Null{}, nil
	}
	return n.inner.Serialize(*v)
}

// Canonicalize deserializes tok and serializes the result, yielding the
// canonical token for any accepted input.
func Canonicalize[T any](c Converter[T], tok wire.Token) (wire.Token, error) {
	v, err := c.Deserialize(tok)
	if err != nil {
		return nil, err
	}
	return c.Serialize(v)
}

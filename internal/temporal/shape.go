package temporal

import (
	"errors"
	"strings"

	"github.com/cockroachdb/apd/v3"

	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/pattern"
	"github.com/roach88/wireconv/internal/tick"
	"github.com/roach88/wireconv/internal/wire"
)

var errNotFinite = errors.New("number is not finite")

// shape is the deserialization pipeline shared by the temporal converters.
type shape[T any] struct {
	name string

	// parse reads trimmed string input.
	parse func(string) (T, error)

	// number reads an integral numeric token. Nil means numbers are rejected.
	number func(int64) (T, error)

	// native converts a host value; ok is false for foreign types.
	native func(v any) (result T, ok bool, err error)
}

func (s shape[T]) deserialize(tok wire.Token) (T, error) {
	var zero T
	switch t := tok.(type) {
	case nil, wire.Null:
		return zero, convert.NewUnsupportedNullability(s.name)

	case wire.Native:
		v, ok, err := s.native(t.Value)
		if !ok {
			return zero, convert.NewTypeMismatch(s.name, tok)
		}
		if err != nil {
			return zero, s.classify(tok, err)
		}
		return v, nil

	case wire.Int:
		if s.number == nil {
			return zero, convert.NewTypeMismatch(s.name, tok)
		}
		v, err := s.number(int64(t))
		if err != nil {
			return zero, s.classify(tok, err)
		}
		return v, nil

	case wire.Number:
		if s.number == nil {
			return zero, convert.NewTypeMismatch(s.name, tok)
		}
		n, err := truncateNumber(string(t))
		if err != nil {
			return zero, s.classify(tok, err)
		}
		v, err := s.number(n)
		if err != nil {
			return zero, s.classify(tok, err)
		}
		return v, nil

	case wire.String:
		v, err := s.parse(strings.TrimSpace(string(t)))
		if err != nil {
			return zero, s.classify(tok, err)
		}
		return v, nil

	case wire.Bool, wire.Composite:
		return zero, convert.NewTypeMismatch(s.name, tok)

	default:
		return zero, convert.NewTypeMismatch(s.name, tok)
	}
}

// classify maps leaf errors to conversion error kinds. Fields that name an
// impossible moment are format mismatches; values past the type's limits
// are out of range.
func (s shape[T]) classify(tok wire.Token, err error) error {
	switch {
	case errors.Is(err, tick.ErrOutOfRange), errors.Is(err, pattern.ErrFieldOverflow), errors.Is(err, errNotFinite):
		return convert.NewOutOfRange(s.name, wire.Describe(tok), err)
	default:
		return convert.NewFormatMismatch(s.name, tok, err)
	}
}

// truncateNumber reads a numeric literal and truncates it toward zero.
func truncateNumber(text string) (int64, error) {
	d, _, err := apd.NewFromString(strings.TrimSpace(text))
	if err != nil {
		return 0, err
	}
	switch d.Form {
	case apd.Finite:
	case apd.Infinite:
		return 0, errNotFinite
	default:
		return 0, errors.New("number is NaN")
	}
	var integ, frac apd.Decimal
	d.Modf(&integ, &frac)
	n, err := integ.Int64()
	if err != nil {
		return 0, errors.Join(tick.ErrOutOfRange, err)
	}
	return n, nil
}

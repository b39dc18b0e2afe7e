package registry

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/locale"
	"github.com/roach88/wireconv/internal/numeric"
	"github.com/roach88/wireconv/internal/temporal"
	"github.com/roach88/wireconv/internal/wire"
)

// TypeID identifies a target type.
type TypeID string

// Supported target types.
const (
	Float32       TypeID = "float32"
	Float64       TypeID = "float64"
	Decimal       TypeID = "decimal"
	Duration      TypeID = temporal.DurationName
	Instant       TypeID = temporal.InstantName
	OffsetInstant TypeID = temporal.OffsetInstantName
	Date          TypeID = temporal.DateName
	ClockTime     TypeID = temporal.ClockTimeName
	UUID          TypeID = "uuid"
)

// Target names a type and whether it accepts null.
type Target struct {
	Type     TypeID
	Nullable bool
}

// ParseTarget reads "type" or "type?".
func ParseTarget(s string) (Target, error) {
	s = strings.TrimSpace(s)
	t := Target{Type: TypeID(strings.TrimSuffix(s, "?")), Nullable: strings.HasSuffix(s, "?")}
	if t.Type == "" || strings.ContainsAny(string(t.Type), "? \t") {
		return Target{}, fmt.Errorf("invalid target %q", s)
	}
	return t, nil
}

// String returns the target in ParseTarget form.
func (t Target) String() string {
	if t.Nullable {
		return string(t.Type) + "?"
	}
	return string(t.Type)
}

// entry is one type-erased converter.
type entry struct {
	deserialize func(wire.Token) (any, error)
	serialize   func(any) (wire.Token, error)
	converter   any
}

// Registry dispatches conversions by target type.
type Registry struct {
	entries map[TypeID]entry
	order   []TypeID
	symbols locale.Symbols
}

type config struct {
	symbols locale.Symbols
}

// Option configures New.
type Option func(*config)

// WithSymbols sets the special-value symbol table used by the float
// converters. The default is locale.Invariant.
func WithSymbols(s locale.Symbols) Option {
	return func(c *config) {
		c.symbols = s
	}
}

// New builds a registry with every supported converter.
func New(opts ...Option) *Registry {
	cfg := config{symbols: locale.Invariant}
	for _, opt := range opts {
		opt(&cfg)
	}

	r := &Registry{
		entries: make(map[TypeID]entry),
		symbols: cfg.symbols,
	}
	register(r, Float32, numeric.NewFloat32(cfg.symbols))
	register(r, Float64, numeric.NewFloat64(cfg.symbols))
	register(r, Decimal, numeric.NewDecimal())
	register(r, Duration, temporal.DurationConverter{})
	register(r, Instant, temporal.InstantConverter{})
	register(r, OffsetInstant, temporal.OffsetInstantConverter{})
	register(r, Date, temporal.DateConverter{})
	register(r, ClockTime, temporal.ClockTimeConverter{})
	register(r, UUID, UUIDConverter{})
	return r
}

// register type-erases c. Serialize accepts T or *T; a nil *T, or a nil T
// when T is itself a pointer, serializes to null.
func register[T any](r *Registry, id TypeID, c convert.Converter[T]) {
	if _, dup := r.entries[id]; dup {
		panic(fmt.Sprintf("registry: type %s registered twice", id))
	}
	r.entries[id] = entry{
		deserialize: func(tok wire.Token) (any, error) {
			return c.Deserialize(tok)
		},
		serialize: func(v any) (wire.Token, error) {
			switch tv := v.(type) {
			case T:
				if isNilPointer(tv) {
					return wire.Null{}, nil
				}
				return c.Serialize(tv)
			case *T:
				if tv == nil {
					return wire.Null{}, nil
				}
				return c.Serialize(*tv)
			default:
				return nil, convert.NewValueTypeMismatch(c.Name(), v)
			}
		},
		converter: c,
	}
	r.order = append(r.order, id)
}

func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

func (r *Registry) lookup(t Target) (entry, error) {
	e, ok := r.entries[t.Type]
	if !ok {
		return entry{}, &convert.Error{
			Kind:    convert.KindTypeMismatch,
			Target:  t.String(),
			Message: "unknown target type",
		}
	}
	return e, nil
}

// Deserialize converts tok to the host value for t. Null yields an untyped
// nil for nullable targets.
func (r *Registry) Deserialize(t Target, tok wire.Token) (any, error) {
	e, err := r.lookup(t)
	if err != nil {
		return nil, err
	}
	if wire.IsNull(tok) {
		if t.Nullable {
			return nil, nil
		}
		return nil, convert.NewUnsupportedNullability(t.String())
	}
	return e.deserialize(tok)
}

// Serialize converts a host value to its canonical token. A nil value, or a
// nil pointer to the host type, yields wire.Null for nullable targets.
func (r *Registry) Serialize(t Target, v any) (wire.Token, error) {
	e, err := r.lookup(t)
	if err != nil {
		return nil, err
	}
	var tok wire.Token
	if v == nil {
		tok = wire.Null{}
	} else if tok, err = e.serialize(v); err != nil {
		return nil, err
	}
	if wire.IsNull(tok) && !t.Nullable {
		return nil, convert.NewUnsupportedNullability(t.String())
	}
	return tok, nil
}

// Canonicalize deserializes tok and serializes the result.
func (r *Registry) Canonicalize(t Target, tok wire.Token) (wire.Token, error) {
	v, err := r.Deserialize(t, tok)
	if err != nil {
		return nil, err
	}
	return r.Serialize(t, v)
}

// Types returns the registered type identifiers in registration order.
func (r *Registry) Types() []TypeID {
	out := make([]TypeID, len(r.order))
	copy(out, r.order)
	return out
}

// Symbols returns the symbol table the float converters were built with.
func (r *Registry) Symbols() locale.Symbols {
	return r.symbols
}

// Lookup returns the typed converter registered for id.
func Lookup[T any](r *Registry, id TypeID) (convert.Converter[T], error) {
	e, ok := r.entries[id]
	if !ok {
		return nil, fmt.Errorf("unknown target type %q", id)
	}
	c, ok := e.converter.(convert.Converter[T])
	if !ok {
		return nil, fmt.Errorf("target type %q does not convert %T", id, *new(T))
	}
	return c, nil
}

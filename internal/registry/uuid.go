package registry

import (
	"strings"

	"github.com/google/uuid"

	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/wire"
)

// UUIDConverter converts uuid.UUID. Any form uuid.Parse accepts is read;
// the canonical form is lowercase and hyphenated.
type UUIDConverter struct{}

// Name implements convert.Converter.
func (UUIDConverter) Name() string { return string(UUID) }

// Deserialize implements convert.Converter.
func (c UUIDConverter) Deserialize(tok wire.Token) (uuid.UUID, error) {
	switch t := tok.(type) {
	case nil, wire.Null:
		return uuid.Nil, convert.NewUnsupportedNullability(c.Name())
	case wire.String:
		u, err := uuid.Parse(strings.TrimSpace(string(t)))
		if err != nil {
			return uuid.Nil, convert.NewFormatMismatch(c.Name(), tok, err)
		}
		return u, nil
	case wire.Native:
		if u, ok := t.Value.(uuid.UUID); ok {
			return u, nil
		}
		return uuid.Nil, convert.NewTypeMismatch(c.Name(), tok)
	default:
		return uuid.Nil, convert.NewTypeMismatch(c.Name(), tok)
	}
}

// Serialize implements convert.Converter.
func (UUIDConverter) Serialize(v uuid.UUID) (wire.Token, error) {
	return wire.String(v.String()), nil
}

package store

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/roach88/wireconv/internal/locale"
	"github.com/roach88/wireconv/internal/wire"
)

// marshalToken converts a token to canonical JSON TEXT for storage.
func marshalToken(tok wire.Token) (string, error) {
	data, err := wire.MarshalJSON(tok)
	if err != nil {
		return "", fmt.Errorf("marshal token: %w", err)
	}
	return string(data), nil
}

// marshalOutput is marshalToken for a nullable column: a nil token is NULL.
func marshalOutput(tok wire.Token) (sql.NullString, error) {
	if tok == nil {
		return sql.NullString{}, nil
	}
	s, err := marshalToken(tok)
	if err != nil {
		return sql.NullString{}, err
	}
	return sql.NullString{String: s, Valid: true}, nil
}

// unmarshalToken parses canonical JSON TEXT back into a token.
func unmarshalToken(data string) (wire.Token, error) {
	tok, err := wire.ParseJSON([]byte(data))
	if err != nil {
		return nil, fmt.Errorf("unmarshal token: %w", err)
	}
	return tok, nil
}

func unmarshalOutput(data sql.NullString) (wire.Token, error) {
	if !data.Valid {
		return nil, nil
	}
	return unmarshalToken(data.String)
}

// marshalSymbols converts a symbol table to JSON TEXT with sorted keys and
// HTML escaping disabled, so equal tables always produce equal text.
func marshalSymbols(sym locale.Symbols) (string, error) {
	m := map[string]string{
		"nan":               sym.NaN,
		"negative_infinity": sym.NegativeInfinity,
		"positive_infinity": sym.PositiveInfinity,
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(m); err != nil {
		return "", fmt.Errorf("marshal symbols: %w", err)
	}
	// Encoder adds a trailing newline, remove it
	return strings.TrimSpace(buf.String()), nil
}

// unmarshalSymbols parses JSON TEXT to a symbol table.
func unmarshalSymbols(data string) (locale.Symbols, error) {
	var sym locale.Symbols
	if err := json.Unmarshal([]byte(data), &sym); err != nil {
		return locale.Symbols{}, fmt.Errorf("unmarshal symbols: %w", err)
	}
	return sym, nil
}

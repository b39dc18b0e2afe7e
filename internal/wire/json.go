package wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ErrNotEncodable is returned when a token has no wire encoding (Native).
var ErrNotEncodable = errors.New("token has no wire encoding")

// ParseJSON decodes a single JSON value into a Token.
//
// Numbers are read through json.Number so large integers and decimal
// literals keep their exact text. A literal without '.', 'e' or 'E' that
// fits in int64 becomes Int; every other number becomes Number.
func ParseJSON(data []byte) (Token, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, fmt.Errorf("empty JSON value")
	}

	switch data[0] {
	case '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return nil, err
		}
		return String(s), nil

	case 't', 'f':
		var b bool
		if err := json.Unmarshal(data, &b); err != nil {
			return nil, err
		}
		return Bool(b), nil

	case 'n':
		if string(data) != "null" {
			return nil, fmt.Errorf("invalid JSON literal %q", data)
		}
		return Null{}, nil

	case '[', '{':
		if !json.Valid(data) {
			return nil, fmt.Errorf("invalid JSON composite value")
		}
		var buf bytes.Buffer
		if err := json.Compact(&buf, data); err != nil {
			return nil, err
		}
		return Composite(buf.String()), nil

	default:
		dec := json.NewDecoder(bytes.NewReader(data))
		dec.UseNumber()
		var n json.Number
		if err := dec.Decode(&n); err != nil {
			return nil, err
		}
		if dec.More() {
			return nil, fmt.Errorf("trailing data after JSON number")
		}
		return numberToken(string(n)), nil
	}
}

// numberToken classifies a numeric literal as Int or Number.
func numberToken(s string) Token {
	if !strings.ContainsAny(s, ".eE") {
		if i, err := strconv.ParseInt(s, 10, 64); err == nil {
			return Int(i)
		}
	}
	return Number(s)
}

// MarshalJSON produces the canonical JSON encoding of tok.
//
// Strings are NFC normalized and written without HTML escaping; U+2028 and
// U+2029 stay literal. Native tokens, and composites that are not JSON
// text, return ErrNotEncodable.
func MarshalJSON(tok Token) ([]byte, error) {
	switch t := tok.(type) {
	case nil, Null:
		return []byte("null"), nil
	case Bool:
		return []byte(t.Text()), nil
	case Int:
		return []byte(t.Text()), nil
	case Number:
		if !json.Valid([]byte(t)) {
			// Non-JSON numerics (NaN, +Inf) can only travel as strings.
			return marshalCanonicalString(string(t))
		}
		return []byte(t), nil
	case String:
		return marshalCanonicalString(string(t))
	case Composite:
		if !json.Valid([]byte(t)) {
			// CBOR diagnostic notation has no JSON form.
			return nil, fmt.Errorf("marshal composite %q: %w", truncateForDisplay(string(t)), ErrNotEncodable)
		}
		return []byte(t), nil
	case Native:
		return nil, fmt.Errorf("marshal %T: %w", t.Value, ErrNotEncodable)
	default:
		return nil, fmt.Errorf("unknown token type: %T", tok)
	}
}

// marshalCanonicalString encodes s as a JSON string after NFC normalization.
// Only control characters, backslash and quote are escaped.
func marshalCanonicalString(s string) ([]byte, error) {
	normalized := norm.NFC.String(s)

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(normalized); err != nil {
		return nil, err
	}

	result := bytes.TrimSuffix(buf.Bytes(), []byte{'\n'})
	return unescapeLineSeparators(result), nil
}

// unescapeLineSeparators turns the \u2028 and \u2029 escapes emitted by
// encoding/json back into literal characters. An escape preceded by an odd
// number of backslashes is literal text and is left alone.
func unescapeLineSeparators(data []byte) []byte {
	if !bytes.Contains(data, []byte(`\u202`)) {
		return data
	}

	out := make([]byte, 0, len(data))
	for i := 0; i < len(data); i++ {
		if data[i] == '\\' && i+5 < len(data) && string(data[i+1:i+5]) == "u202" &&
			(data[i+5] == '8' || data[i+5] == '9') && precedingBackslashes(out)%2 == 0 {
			if data[i+5] == '8' {
				out = append(out, "\u2028"...)
			} else {
				out = append(out, "\u2029"...)
			}
			i += 5
			continue
		}
		out = append(out, data[i])
	}
	return out
}

func precedingBackslashes(b []byte) int {
	n := 0
	for j := len(b) - 1; j >= 0 && b[j] == '\\'; j-- {
		n++
	}
	return n
}

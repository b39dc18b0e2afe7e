package harness

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/roach88/wireconv/internal/wire"
)

// NodeToken maps a YAML node onto a wire token by its resolved tag.
func NodeToken(n *yaml.Node) (wire.Token, error) {
	if n.Kind == yaml.AliasNode {
		return NodeToken(n.Alias)
	}

	switch n.Kind {
	case yaml.MappingNode, yaml.SequenceNode:
		var v any
		if err := n.Decode(&v); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		data, err := json.Marshal(v)
		if err != nil {
			return nil, fmt.Errorf("line %d: composite is not JSON: %w", n.Line, err)
		}
		return wire.Composite(data), nil
	case yaml.ScalarNode:
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML node kind %d", n.Line, n.Kind)
	}

	switch n.ShortTag() {
	case "!!null":
		return wire.Null{}, nil
	case "!!bool":
		var b bool
		if err := n.Decode(&b); err != nil {
			return nil, fmt.Errorf("line %d: %w", n.Line, err)
		}
		return wire.Bool(b), nil
	case "!!int":
		text := strings.ReplaceAll(n.Value, "_", "")
		if i, err := strconv.ParseInt(text, 10, 64); err == nil {
			return wire.Int(i), nil
		}
		// Beyond int64, or not decimal: keep the literal.
		return wire.Number(text), nil
	case "!!float":
		switch strings.ToLower(n.Value) {
		case ".inf", "+.inf":
			return wire.Number("+Inf"), nil
		case "-.inf":
			return wire.Number("-Inf"), nil
		case ".nan":
			return wire.Number("NaN"), nil
		}
		return wire.Number(n.Value), nil
	case "!!str":
		return wire.String(n.Value), nil
	default:
		return nil, fmt.Errorf("line %d: unsupported YAML tag %s", n.Line, n.ShortTag())
	}
}

// tokenText renders tok for reports and comparison: canonical JSON when it
// has one, otherwise its diagnostic description.
func tokenText(tok wire.Token) string {
	data, err := wire.MarshalJSON(tok)
	if err != nil {
		return wire.Describe(tok)
	}
	return string(data)
}

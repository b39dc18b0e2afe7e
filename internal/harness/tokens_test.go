package harness

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/roach88/wireconv/internal/wire"
)

func parseNode(t *testing.T, src string) *yaml.Node {
	t.Helper()
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte(src), &doc))
	require.Len(t, doc.Content, 1)
	return doc.Content[0]
}

func TestNodeToken(t *testing.T) {
	tests := []struct {
		src  string
		want wire.Token
	}{
		{`null`, wire.Null{}},
		{`~`, wire.Null{}},
		{`true`, wire.Bool(true)},
		{`42`, wire.Int(42)},
		{`-7`, wire.Int(-7)},
		{`1_000`, wire.Int(1000)},
		{`99999999999999999999`, wire.Number("99999999999999999999")},
		{`1.50`, wire.Number("1.50")},
		{`1e-7`, wire.Number("1e-7")},
		{`.inf`, wire.Number("+Inf")},
		{`-.inf`, wire.Number("-Inf")},
		{`.nan`, wire.Number("NaN")},
		{`!!float 1e400`, wire.Number("1e400")},
		{`"42"`, wire.String("42")},
		{`hello`, wire.String("hello")},
		{`"2024-01-05"`, wire.String("2024-01-05")},
		{`{b: 2, a: 1}`, wire.Composite(`{"a":1,"b":2}`)},
		{`[1, "x"]`, wire.Composite(`[1,"x"]`)},
	}

	for _, tt := range tests {
		t.Run(tt.src, func(t *testing.T) {
			got, err := NodeToken(parseNode(t, tt.src))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNodeToken_Alias(t *testing.T) {
	var doc yaml.Node
	require.NoError(t, yaml.Unmarshal([]byte("a: &x 5\nb: *x\n"), &doc))
	mapping := doc.Content[0]

	got, err := NodeToken(mapping.Content[3])
	require.NoError(t, err)
	assert.Equal(t, wire.Int(5), got)
}

func TestNodeToken_UnsupportedTag(t *testing.T) {
	_, err := NodeToken(parseNode(t, `!!binary aGVsbG8=`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported YAML tag")
}

func TestTokenText(t *testing.T) {
	assert.Equal(t, `"a"`, tokenText(wire.String("a")))
	assert.Equal(t, `1`, tokenText(wire.Int(1)))
	assert.Equal(t, `"+Inf"`, tokenText(wire.Number("+Inf")))
	assert.Equal(t, "native float64", tokenText(wire.Native{Value: 1.5}))
}

package wire

import (
	"testing"
	"time"

	"github.com/fxamacker/cbor/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCBORRoundTrip(t *testing.T) {
	tokens := []Token{
		Null{},
		Bool(true),
		Int(42),
		Int(-1),
		Int(9223372036854775807),
		Number("1.5"),
		String("2022-10-16T05:57:32.3294704Z"),
		String("∞"),
	}

	for _, tok := range tokens {
		t.Run(Describe(tok), func(t *testing.T) {
			data, err := MarshalCBOR(tok)
			require.NoError(t, err)

			back, err := ParseCBOR(data)
			require.NoError(t, err)
			assert.Equal(t, tok, back)
		})
	}
}

func TestCBORDecimalFractionRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		in   Number
	}{
		{"decimal max", Number("79228162514264337593543950335")},
		{"decimal min", Number("-79228162514264337593543950335")},
		{"trailing zero", Number("1.50")},
		{"max scale", Number("0.1234567890123456789012345678")},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := MarshalCBOR(tt.in)
			require.NoError(t, err)
			// tag 4 head
			assert.Equal(t, byte(0xc4), data[0])

			back, err := ParseCBOR(data)
			require.NoError(t, err)
			assert.Equal(t, tt.in, back)
		})
	}
}

func TestParseCBORDecimalFraction(t *testing.T) {
	// 4([-2, 27315]) from RFC 8949 section 3.4.4
	data := []byte{0xc4, 0x82, 0x21, 0x19, 0x6a, 0xb3}

	tok, err := ParseCBOR(data)
	require.NoError(t, err)
	assert.Equal(t, Number("273.15"), tok)
}

func TestParseCBORMalformedDecimalFraction(t *testing.T) {
	data, err := cbor.Marshal(cbor.Tag{Number: 4, Content: "x"})
	require.NoError(t, err)

	tok, err := ParseCBOR(data)
	require.NoError(t, err)
	assert.IsType(t, Composite(""), tok)
}

func TestMarshalCBORIsDeterministic(t *testing.T) {
	// Smallest integer encoding: 42 is a one-byte argument.
	data, err := MarshalCBOR(Int(42))
	require.NoError(t, err)
	assert.Equal(t, []byte{0x18, 0x2a}, data)
}

func TestParseCBORLargeUnsigned(t *testing.T) {
	data, err := cbor.Marshal(uint64(18446744073709551615))
	require.NoError(t, err)

	tok, err := ParseCBOR(data)
	require.NoError(t, err)
	assert.Equal(t, Number("18446744073709551615"), tok)
}

func TestParseCBORSpecialFloats(t *testing.T) {
	data, err := MarshalCBOR(Number("+Inf"))
	require.NoError(t, err)

	tok, err := ParseCBOR(data)
	require.NoError(t, err)
	assert.Equal(t, Number("+Inf"), tok)
}

func TestParseCBORComposite(t *testing.T) {
	data, err := cbor.Marshal([]int{1, 2})
	require.NoError(t, err)

	tok, err := ParseCBOR(data)
	require.NoError(t, err)
	require.IsType(t, Composite(""), tok)
	assert.Contains(t, tok.Text(), "1")
}

func TestParseCBOREpochTag(t *testing.T) {
	// tag 1 (epoch date-time) wrapping uint32 1_000_000_000
	data := []byte{0xc1, 0x1a, 0x3b, 0x9a, 0xca, 0x00}

	tok, err := ParseCBOR(data)
	require.NoError(t, err)
	require.IsType(t, Native{}, tok)

	got, ok := tok.(Native).Value.(time.Time)
	require.True(t, ok)
	assert.True(t, got.Equal(time.Unix(1_000_000_000, 0)))
}

func TestMarshalCBORRejectsUnencodable(t *testing.T) {
	_, err := MarshalCBOR(Composite("[]"))
	assert.ErrorIs(t, err, ErrNotEncodable)

	_, err = MarshalCBOR(Native{Value: 1})
	assert.ErrorIs(t, err, ErrNotEncodable)
}

func TestParseCBORMalformed(t *testing.T) {
	_, err := ParseCBOR([]byte{0x1a, 0x00})
	assert.Error(t, err)
}

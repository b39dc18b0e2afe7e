package locale

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	got, err := Load(filepath.Join("testdata", "de_override.cue"))
	require.NoError(t, err)
	assert.Equal(t, Symbols{"∞", "-∞", "n/a"}, got)
}

func TestLoadRejectsUnknownFields(t *testing.T) {
	_, err := Load(filepath.Join("testdata", "typo.cue"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "positive_infinty")
}

func TestLoadBytes(t *testing.T) {
	tests := []struct {
		name    string
		src     string
		want    Symbols
		wantErr string
	}{
		{
			name: "empty file keeps invariant",
			src:  "",
			want: Invariant,
		},
		{
			name: "partial override",
			src:  `positive_infinity: "+inf"`,
			want: Symbols{"+inf", "-Infinity", "NaN"},
		},
		{
			name:    "empty symbol",
			src:     `nan: ""`,
			wantErr: "validating",
		},
		{
			name:    "wrong type",
			src:     `nan: 1`,
			wantErr: "validating",
		},
		{
			name:    "colliding symbols",
			src:     `nan: "Infinity"`,
			wantErr: "distinct",
		},
		{
			name:    "syntax error",
			src:     `nan: "NaN`,
			wantErr: "compiling",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := LoadBytes("inline.cue", []byte(tt.src))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestResolve(t *testing.T) {
	got, err := Resolve("sv", "")
	require.NoError(t, err)
	assert.Equal(t, "\u2212∞", got.NegativeInfinity)

	got, err = Resolve("sv", filepath.Join("testdata", "de_override.cue"))
	require.NoError(t, err)
	assert.Equal(t, "n/a", got.NaN, "the file wins over the flag")
}

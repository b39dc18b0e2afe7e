package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/locale"
	"github.com/roach88/wireconv/internal/wire"
)

// createTestStore creates a new store in a temp directory for testing.
func createTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

// createTestVector creates a successful vector with the invariant symbols.
func createTestVector(id, target string, input, output wire.Token, seq int64) Vector {
	return Vector{
		ID:      id,
		Seq:     seq,
		Target:  target,
		Input:   input,
		Output:  output,
		Symbols: locale.Invariant,
	}
}

// createFailedVector creates a vector whose conversion failed with kind.
func createFailedVector(id, target string, input wire.Token, kind convert.Kind, seq int64) Vector {
	return Vector{
		ID:        id,
		Seq:       seq,
		Target:    target,
		Input:     input,
		ErrorKind: kind,
		Symbols:   locale.Invariant,
	}
}

package store

import (
	"context"
	"errors"
	"testing"

	"github.com/roach88/wireconv/internal/convert"
	"github.com/roach88/wireconv/internal/wire"
)

func TestReadVectors_Empty(t *testing.T) {
	s := createTestStore(t)

	vectors, err := s.ReadVectors(context.Background())
	if err != nil {
		t.Fatalf("ReadVectors() failed: %v", err)
	}
	if vectors == nil {
		t.Error("ReadVectors() returned nil, want empty slice")
	}
	if len(vectors) != 0 {
		t.Errorf("len(vectors) = %d, want 0", len(vectors))
	}
}

func TestReadVectors_DeterministicOrdering(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	// Written out of order; two share seq 2 and tie-break on id.
	for _, v := range []Vector{
		createTestVector("c", "float64", wire.Int(3), wire.Int(3), 3),
		createTestVector("b", "float64", wire.Int(2), wire.Int(2), 2),
		createTestVector("a", "float64", wire.Int(1), wire.Int(1), 2),
		createTestVector("d", "float64", wire.Int(0), wire.Int(0), 1),
	} {
		if _, err := s.WriteVector(ctx, v); err != nil {
			t.Fatalf("WriteVector(%s) failed: %v", v.ID, err)
		}
	}

	vectors, err := s.ReadVectors(ctx)
	if err != nil {
		t.Fatalf("ReadVectors() failed: %v", err)
	}

	want := []string{"d", "a", "b", "c"}
	if len(vectors) != len(want) {
		t.Fatalf("len(vectors) = %d, want %d", len(vectors), len(want))
	}
	for i, id := range want {
		if vectors[i].ID != id {
			t.Errorf("vectors[%d].ID = %s, want %s", i, vectors[i].ID, id)
		}
	}
}

func TestReadVectors_RestoresTokens(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	ok := createTestVector("v1", "decimal", wire.Number("1.50"), wire.Number("1.5"), 1)
	failed := createFailedVector("v2", "decimal", wire.Composite(`{"a":1}`), convert.KindTypeMismatch, 2)
	for _, v := range []Vector{ok, failed} {
		if _, err := s.WriteVector(ctx, v); err != nil {
			t.Fatalf("WriteVector(%s) failed: %v", v.ID, err)
		}
	}

	vectors, err := s.ReadVectors(ctx)
	if err != nil {
		t.Fatalf("ReadVectors() failed: %v", err)
	}
	if len(vectors) != 2 {
		t.Fatalf("len(vectors) = %d, want 2", len(vectors))
	}

	if vectors[0].Input != wire.Number("1.50") {
		t.Errorf("input = %#v, want Number(1.50)", vectors[0].Input)
	}
	if vectors[0].Output != wire.Number("1.5") {
		t.Errorf("output = %#v, want Number(1.5)", vectors[0].Output)
	}
	if vectors[0].Symbols != ok.Symbols {
		t.Errorf("symbols = %+v, want %+v", vectors[0].Symbols, ok.Symbols)
	}

	if vectors[1].Output != nil {
		t.Errorf("failed vector output = %#v, want nil", vectors[1].Output)
	}
	if vectors[1].ErrorKind != convert.KindTypeMismatch {
		t.Errorf("error kind = %q", vectors[1].ErrorKind)
	}
	if vectors[1].Input != wire.Composite(`{"a":1}`) {
		t.Errorf("composite input = %#v", vectors[1].Input)
	}
}

func TestReadVectorsForTarget(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	for _, v := range []Vector{
		createTestVector("v1", "date", wire.String("2024-01-01"), wire.String("2024-01-01"), 1),
		createTestVector("v2", "uuid", wire.String("x"), nil, 2),
		createTestVector("v3", "date", wire.String("2024/01/02"), wire.String("2024-01-02"), 3),
	} {
		if _, err := s.WriteVector(ctx, v); err != nil {
			t.Fatalf("WriteVector(%s) failed: %v", v.ID, err)
		}
	}

	vectors, err := s.ReadVectorsForTarget(ctx, "date")
	if err != nil {
		t.Fatalf("ReadVectorsForTarget() failed: %v", err)
	}
	if len(vectors) != 2 || vectors[0].ID != "v1" || vectors[1].ID != "v3" {
		t.Errorf("vectors = %+v, want v1 and v3", vectors)
	}
}

func TestReadVector_NotFound(t *testing.T) {
	s := createTestStore(t)

	_, err := s.ReadVector(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("err = %v, want ErrNotFound", err)
	}
}

func TestReadVector_Exists(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	want := createTestVector("v1", "clock_time", wire.String("9:05"), wire.String("09:05:00"), 7)
	if _, err := s.WriteVector(ctx, want); err != nil {
		t.Fatalf("WriteVector() failed: %v", err)
	}

	got, err := s.ReadVector(ctx, "v1")
	if err != nil {
		t.Fatalf("ReadVector() failed: %v", err)
	}
	if got != want {
		t.Errorf("ReadVector() = %+v, want %+v", got, want)
	}
}

func TestMaxSeq(t *testing.T) {
	s := createTestStore(t)
	ctx := context.Background()

	seq, err := s.MaxSeq(ctx)
	if err != nil {
		t.Fatalf("MaxSeq() failed: %v", err)
	}
	if seq != 0 {
		t.Errorf("MaxSeq() on empty store = %d, want 0", seq)
	}

	if _, err := s.WriteVector(ctx, createTestVector("v1", "float64", wire.Int(1), wire.Int(1), 4)); err != nil {
		t.Fatalf("WriteVector() failed: %v", err)
	}
	if err := s.WriteCheck(ctx, Check{ID: "c1", RunID: "r", VectorID: "v1", Seq: 9, Output: wire.Int(1)}); err != nil {
		t.Fatalf("WriteCheck() failed: %v", err)
	}

	seq, err = s.MaxSeq(ctx)
	if err != nil {
		t.Fatalf("MaxSeq() failed: %v", err)
	}
	if seq != 9 {
		t.Errorf("MaxSeq() = %d, want 9", seq)
	}
}

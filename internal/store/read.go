package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/roach88/wireconv/internal/convert"
)

// ErrNotFound is returned when a requested record does not exist.
var ErrNotFound = errors.New("not found")

const vectorColumns = `id, seq, target, input, output, error_kind, symbols`

// ReadVectors returns every stored vector.
// Results are ordered deterministically: ORDER BY seq ASC, id ASC COLLATE BINARY.
//
// Returns an empty slice (not nil) if the store is empty.
func (s *Store) ReadVectors(ctx context.Context) ([]Vector, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+vectorColumns+`
		FROM vectors
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`)
	if err != nil {
		return nil, fmt.Errorf("query vectors: %w", err)
	}
	return collectVectors(rows)
}

// ReadVectorsForTarget returns the vectors recorded for one target, in the
// same order as ReadVectors.
func (s *Store) ReadVectorsForTarget(ctx context.Context, target string) ([]Vector, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT `+vectorColumns+`
		FROM vectors
		WHERE target = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, target)
	if err != nil {
		return nil, fmt.Errorf("query vectors: %w", err)
	}
	return collectVectors(rows)
}

// ReadVector returns a single vector by ID, or ErrNotFound.
func (s *Store) ReadVector(ctx context.Context, id string) (Vector, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT `+vectorColumns+`
		FROM vectors
		WHERE id = ?
	`, id)
	v, err := scanVector(row)
	if errors.Is(err, sql.ErrNoRows) {
		return Vector{}, fmt.Errorf("vector %s: %w", id, ErrNotFound)
	}
	return v, err
}

// MaxSeq returns the highest seq across vectors and checks, or 0 for an
// empty store. A clock resumed at this value keeps seq strictly increasing.
func (s *Store) MaxSeq(ctx context.Context) (int64, error) {
	var seq int64
	err := s.db.QueryRowContext(ctx, `
		SELECT COALESCE(MAX(seq), 0) FROM (
			SELECT seq FROM vectors
			UNION ALL
			SELECT seq FROM checks
		)
	`).Scan(&seq)
	if err != nil {
		return 0, fmt.Errorf("query max seq: %w", err)
	}
	return seq, nil
}

// scanner is implemented by *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanVector(row scanner) (Vector, error) {
	var (
		v           Vector
		inputJSON   string
		output      sql.NullString
		errorKind   string
		symbolsJSON string
	)
	if err := row.Scan(&v.ID, &v.Seq, &v.Target, &inputJSON, &output, &errorKind, &symbolsJSON); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Vector{}, err
		}
		return Vector{}, fmt.Errorf("scan vector: %w", err)
	}

	var err error
	if v.Input, err = unmarshalToken(inputJSON); err != nil {
		return Vector{}, fmt.Errorf("vector %s: %w", v.ID, err)
	}
	if v.Output, err = unmarshalOutput(output); err != nil {
		return Vector{}, fmt.Errorf("vector %s: %w", v.ID, err)
	}
	if v.Symbols, err = unmarshalSymbols(symbolsJSON); err != nil {
		return Vector{}, fmt.Errorf("vector %s: %w", v.ID, err)
	}
	v.ErrorKind = convert.Kind(errorKind)
	return v, nil
}

func collectVectors(rows *sql.Rows) ([]Vector, error) {
	defer rows.Close()

	vectors := []Vector{}
	for rows.Next() {
		v, err := scanVector(rows)
		if err != nil {
			return nil, err
		}
		vectors = append(vectors, v)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate vectors: %w", err)
	}
	return vectors, nil
}

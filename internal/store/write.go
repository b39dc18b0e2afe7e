package store

import (
	"context"
	"fmt"
)

// WriteVector inserts a vector into the store.
// Uses ON CONFLICT DO NOTHING for idempotency: recording the same
// (target, input, symbols) again, or reusing an ID, is silently ignored.
// Reports whether a row was inserted.
func (s *Store) WriteVector(ctx context.Context, v Vector) (bool, error) {
	inputJSON, err := marshalToken(v.Input)
	if err != nil {
		return false, fmt.Errorf("write vector: %w", err)
	}

	output, err := marshalOutput(v.Output)
	if err != nil {
		return false, fmt.Errorf("write vector: %w", err)
	}

	symbolsJSON, err := marshalSymbols(v.Symbols)
	if err != nil {
		return false, fmt.Errorf("write vector: %w", err)
	}

	res, err := s.db.ExecContext(ctx, `
		INSERT INTO vectors
		(id, seq, target, input, output, error_kind, symbols)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		v.ID,
		v.Seq,
		v.Target,
		inputJSON,
		output,
		string(v.ErrorKind),
		symbolsJSON,
	)
	if err != nil {
		return false, fmt.Errorf("write vector: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("write vector: %w", err)
	}
	return n > 0, nil
}

// WriteCheck inserts a verification observation.
// Uses ON CONFLICT DO NOTHING: a vector is checked at most once per run.
//
// Note: The vector referenced by VectorID must exist (foreign key constraint).
func (s *Store) WriteCheck(ctx context.Context, c Check) error {
	output, err := marshalOutput(c.Output)
	if err != nil {
		return fmt.Errorf("write check: %w", err)
	}

	drifted := 0
	if c.Drifted {
		drifted = 1
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO checks
		(id, run_id, vector_id, seq, output, error_kind, drifted)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT DO NOTHING
	`,
		c.ID,
		c.RunID,
		c.VectorID,
		c.Seq,
		output,
		string(c.ErrorKind),
		drifted,
	)
	if err != nil {
		return fmt.Errorf("write check: %w", err)
	}
	return nil
}

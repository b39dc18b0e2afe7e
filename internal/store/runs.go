package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/roach88/wireconv/internal/convert"
)

// ReadChecks returns the checks of one verification run in seq order.
func (s *Store) ReadChecks(ctx context.Context, runID string) ([]Check, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, run_id, vector_id, seq, output, error_kind, drifted
		FROM checks
		WHERE run_id = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query checks: %w", err)
	}
	defer rows.Close()

	checks := []Check{}
	for rows.Next() {
		var (
			c         Check
			output    sql.NullString
			errorKind string
			drifted   int
		)
		if err := rows.Scan(&c.ID, &c.RunID, &c.VectorID, &c.Seq, &output, &errorKind, &drifted); err != nil {
			return nil, fmt.Errorf("scan check: %w", err)
		}
		if c.Output, err = unmarshalOutput(output); err != nil {
			return nil, fmt.Errorf("check %s: %w", c.ID, err)
		}
		c.ErrorKind = convert.Kind(errorKind)
		c.Drifted = drifted != 0
		checks = append(checks, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate checks: %w", err)
	}
	return checks, nil
}

// GetRunSummary aggregates one verification run. A run with no checks
// returns ErrNotFound.
func (s *Store) GetRunSummary(ctx context.Context, runID string) (RunSummary, error) {
	summary := RunSummary{RunID: runID}
	err := s.db.QueryRowContext(ctx, `
		SELECT COUNT(*), COALESCE(SUM(drifted), 0), COALESCE(MAX(seq), 0)
		FROM checks
		WHERE run_id = ?
	`, runID).Scan(&summary.Checked, &summary.Drifted, &summary.LastSeq)
	if err != nil {
		return summary, fmt.Errorf("get run summary: %w", err)
	}
	if summary.Checked == 0 {
		return summary, fmt.Errorf("run %s: %w", runID, ErrNotFound)
	}
	return summary, nil
}

// LastRun returns the summary of the most recent verification run, by seq.
func (s *Store) LastRun(ctx context.Context) (RunSummary, error) {
	var runID string
	err := s.db.QueryRowContext(ctx, `
		SELECT run_id FROM checks
		ORDER BY seq DESC, id COLLATE BINARY DESC
		LIMIT 1
	`).Scan(&runID)
	if err == sql.ErrNoRows {
		return RunSummary{}, fmt.Errorf("no verification runs: %w", ErrNotFound)
	}
	if err != nil {
		return RunSummary{}, fmt.Errorf("last run: %w", err)
	}
	return s.GetRunSummary(ctx, runID)
}

package store

import (
	"context"
	"fmt"
)

// RecordRun inserts a run and its width rows in one transaction.
// Uses ON CONFLICT(id) DO NOTHING for idempotency: recording the same ID
// twice leaves the first record untouched.
func (s *Store) RecordRun(ctx context.Context, run Run) (err error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("record run: begin: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	res, err := tx.ExecContext(ctx, `
		INSERT INTO runs (id, source, digest, variables, clauses)
		VALUES (?, ?, ?, ?, ?)
		ON CONFLICT(id) DO NOTHING
	`, run.ID, run.Source, run.Digest, run.Variables, run.Clauses)
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("record run: %w", err)
	}
	if inserted == 0 {
		return tx.Commit()
	}

	for _, e := range run.Widths {
		if _, err = tx.ExecContext(ctx, `
			INSERT INTO run_widths (run_id, width, count)
			VALUES (?, ?, ?)
		`, run.ID, e.Width, e.Count); err != nil {
			return fmt.Errorf("record run width %d: %w", e.Width, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("record run: commit: %w", err)
	}
	return nil
}

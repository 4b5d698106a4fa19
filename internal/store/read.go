package store

import (
	"context"
	"fmt"

	"github.com/roach88/cnfstat/internal/histogram"
)

// ListRuns returns recorded runs ordered by seq ASC, id ASC COLLATE BINARY.
// A limit of zero or less returns every run.
//
// Returns an empty slice (not nil) when nothing was recorded.
func (s *Store) ListRuns(ctx context.Context, limit int) ([]Run, error) {
	query := `
		SELECT seq, id, source, digest, variables, clauses
		FROM runs
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`
	args := []any{}
	if limit > 0 {
		query += " LIMIT ?"
		args = append(args, limit)
	}
	return s.queryRuns(ctx, query, args...)
}

// FindByDigest returns the runs whose summary digest equals digest, in the
// same order as ListRuns.
func (s *Store) FindByDigest(ctx context.Context, digest string) ([]Run, error) {
	return s.queryRuns(ctx, `
		SELECT seq, id, source, digest, variables, clauses
		FROM runs
		WHERE digest = ?
		ORDER BY seq ASC, id COLLATE BINARY ASC
	`, digest)
}

func (s *Store) queryRuns(ctx context.Context, query string, args ...any) ([]Run, error) {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	runs := []Run{}
	for rows.Next() {
		var r Run
		if err := rows.Scan(&r.Seq, &r.ID, &r.Source, &r.Digest, &r.Variables, &r.Clauses); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	// Close before issuing width queries; the pool holds a single connection.
	rows.Close()

	for i := range runs {
		widths, err := s.readWidths(ctx, runs[i].ID)
		if err != nil {
			return nil, err
		}
		runs[i].Widths = widths
	}
	return runs, nil
}

func (s *Store) readWidths(ctx context.Context, runID string) ([]histogram.Entry, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT width, count
		FROM run_widths
		WHERE run_id = ?
		ORDER BY width ASC
	`, runID)
	if err != nil {
		return nil, fmt.Errorf("query run widths: %w", err)
	}
	defer rows.Close()

	widths := []histogram.Entry{}
	for rows.Next() {
		var e histogram.Entry
		if err := rows.Scan(&e.Width, &e.Count); err != nil {
			return nil, fmt.Errorf("scan run width: %w", err)
		}
		widths = append(widths, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate run widths: %w", err)
	}
	return widths, nil
}

package store

import (
	"path/filepath"
	"testing"

	"github.com/roach88/cnfstat/internal/histogram"
	"github.com/roach88/cnfstat/internal/report"
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

// createTestSummary builds a summary from widths given as width, count pairs.
func createTestSummary(vars, clauses int, pairs ...int) report.Summary {
	s := report.Summary{Variables: vars, Clauses: clauses, Widths: []histogram.Entry{}}
	for i := 0; i+1 < len(pairs); i += 2 {
		s.Widths = append(s.Widths, histogram.Entry{Width: pairs[i], Count: pairs[i+1]})
	}
	return s
}

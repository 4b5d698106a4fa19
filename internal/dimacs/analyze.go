package dimacs

import (
	"io"
	"log/slog"

	"github.com/roach88/cnfstat/internal/histogram"
)

// Result is the outcome of a successful Analyze.
type Result struct {
	Header Header
	Widths *histogram.Histogram
}

// Analyze reads a complete CNF file from r in one pass: the header first,
// then exactly Header.Clauses clause lines. It stops at the first failure and
// returns no partial result.
func Analyze(r io.Reader) (*Result, error) {
	lr := NewLineReader(r)

	if !lr.Next() {
		if err := lr.Err(); err != nil {
			return nil, err
		}
		return nil, newEmptyFileError()
	}
	header, err := ParseHeader(lr.Text())
	if err != nil {
		return nil, err
	}
	slog.Debug("header parsed", "variables", header.Variables, "clauses", header.Clauses)

	widths := histogram.New()
	processed := 0
	for lr.Next() {
		processed++
		if processed > header.Clauses {
			return nil, newExtraLinesError(lr.Line(), header.Clauses, processed)
		}

		width, err := ValidateClause(lr.Text(), lr.Line(), header)
		if err != nil {
			return nil, err
		}
		widths.Record(width)
	}
	if err := lr.Err(); err != nil {
		return nil, err
	}

	if processed < header.Clauses {
		return nil, newShortfallError(header.Clauses, processed)
	}

	slog.Debug("analysis complete", "clauses", processed, "distinct_widths", widths.Len())
	return &Result{Header: header, Widths: widths}, nil
}

package store

import (
	"sync"

	"github.com/google/uuid"
	"golang.org/x/text/unicode/norm"

	"github.com/roach88/cnfstat/internal/histogram"
	"github.com/roach88/cnfstat/internal/report"
)

// StdinSource is the recorded source of a run that read standard input.
const StdinSource = "-"

// Run is one recorded successful analysis.
type Run struct {
	ID        string            `json:"id" yaml:"id"`
	Seq       int64             `json:"seq" yaml:"seq"`
	Source    string            `json:"source" yaml:"source"`
	Digest    string            `json:"digest" yaml:"digest"`
	Variables int               `json:"variables" yaml:"variables"`
	Clauses   int               `json:"clauses" yaml:"clauses"`
	Widths    []histogram.Entry `json:"widths" yaml:"widths"`
}

// Summary returns the summary the run recorded.
func (r Run) Summary() report.Summary {
	return report.Summary{Variables: r.Variables, Clauses: r.Clauses, Widths: r.Widths}
}

// IDGenerator produces run IDs.
type IDGenerator interface {
	Generate() string
}

// NewRun builds a Run for a summary. Source paths are stored NFC-normalized
// so the same file name typed on different systems compares equal.
// Seq is assigned by the store.
func NewRun(source string, s report.Summary, gen IDGenerator) Run {
	return Run{
		ID:        gen.Generate(),
		Source:    norm.NFC.String(source),
		Digest:    s.Digest(),
		Variables: s.Variables,
		Clauses:   s.Clauses,
		Widths:    s.Widths,
	}
}

// UUIDv7Generator generates time-sortable UUIDv7 run IDs.
// Stateless and safe for concurrent use.
type UUIDv7Generator struct{}

// Generate panics if UUID generation fails.
func (UUIDv7Generator) Generate() string {
	return uuid.Must(uuid.NewV7()).String()
}

// FixedGenerator returns predetermined IDs in order, for tests.
type FixedGenerator struct {
	mu  sync.Mutex
	ids []string
	idx int
}

// NewFixedGenerator creates a generator that returns ids in order.
func NewFixedGenerator(ids ...string) *FixedGenerator {
	return &FixedGenerator{ids: ids}
}

// Generate returns the next ID. It panics once all IDs are consumed.
func (g *FixedGenerator) Generate() string {
	g.mu.Lock()
	defer g.mu.Unlock()

	if g.idx >= len(g.ids) {
		panic("FixedGenerator: all ids exhausted")
	}
	id := g.ids[g.idx]
	g.idx++
	return id
}

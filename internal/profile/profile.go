// Package profile checks a CNF summary against constraints written in CUE.
//
// A profile is a CUE struct over the fields of Facts, for example a 3-SAT
// profile with no unit clauses:
//
//	min_width: >=2
//	max_width: <=3
//	variables: <=5000
//
// The summary is unified with the profile and every resulting conflict is
// reported as a Violation.
package profile

import (
	"fmt"
	"os"
	"strings"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	cueerrors "cuelang.org/go/cue/errors"

	"github.com/roach88/cnfstat/internal/histogram"
	"github.com/roach88/cnfstat/internal/report"
)

// Facts is the CUE-visible view of a summary.
type Facts struct {
	Variables int               `json:"variables"`
	Clauses   int               `json:"clauses"`
	MinWidth  int               `json:"min_width"`
	MaxWidth  int               `json:"max_width"`
	Widths    []histogram.Entry `json:"widths"`
}

// FactsOf derives Facts from a summary.
func FactsOf(s report.Summary) Facts {
	widths := s.Widths
	if widths == nil {
		widths = []histogram.Entry{}
	}
	return Facts{
		Variables: s.Variables,
		Clauses:   s.Clauses,
		MinWidth:  s.MinWidth(),
		MaxWidth:  s.MaxWidth(),
		Widths:    widths,
	}
}

// Violation is one failed constraint.
type Violation struct {
	Path    string `json:"path" yaml:"path"`
	Message string `json:"message" yaml:"message"`
}

func (v Violation) String() string {
	if v.Path == "" {
		return v.Message
	}
	return v.Path + ": " + v.Message
}

// Profile is a compiled CUE constraint set. It is not safe for concurrent use.
type Profile struct {
	Name  string
	ctx   *cue.Context
	value cue.Value
}

// Load reads and compiles the profile at path.
func Load(path string) (*Profile, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read profile: %w", err)
	}
	return Compile(path, src)
}

// Compile compiles CUE source into a Profile. name is used in positions.
func Compile(name string, src []byte) (*Profile, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(src, cue.Filename(name))
	if err := value.Err(); err != nil {
		return nil, fmt.Errorf("failed to compile profile %s: %w", name, err)
	}
	if value.IncompleteKind() != cue.StructKind {
		return nil, fmt.Errorf("profile %s must be a struct, got %v", name, value.IncompleteKind())
	}
	return &Profile{Name: name, ctx: ctx, value: value}, nil
}

// Check unifies the summary with the profile. It returns nil when every
// constraint holds.
func (p *Profile) Check(s report.Summary) []Violation {
	facts := p.ctx.Encode(FactsOf(s))
	if err := facts.Err(); err != nil {
		return []Violation{{Message: err.Error()}}
	}

	unified := p.value.Unify(facts)
	err := unified.Validate(cue.Concrete(true))
	if err == nil {
		return nil
	}

	var violations []Violation
	for _, e := range cueerrors.Errors(err) {
		format, args := e.Msg()
		violations = append(violations, Violation{
			Path:    strings.Join(e.Path(), "."),
			Message: fmt.Sprintf(format, args...),
		})
	}
	return violations
}

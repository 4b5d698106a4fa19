package report

import (
	"bytes"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roach88/cnfstat/internal/dimacs"
	"github.com/roach88/cnfstat/internal/histogram"
)

func analyze(t *testing.T, input string) Summary {
	t.Helper()
	res, err := dimacs.Analyze(strings.NewReader(input))
	require.NoError(t, err)
	return FromResult(res)
}

// parseLine reads a text summary line back into its parts.
func parseLine(t *testing.T, line string) (int, int, map[int]int) {
	t.Helper()
	fields := strings.Fields(line)
	require.GreaterOrEqual(t, len(fields), 2)

	v, err := strconv.Atoi(fields[0])
	require.NoError(t, err)
	c, err := strconv.Atoi(fields[1])
	require.NoError(t, err)

	counts := map[int]int{}
	for _, pair := range fields[2:] {
		w, k, ok := strings.Cut(pair, ":")
		require.True(t, ok, "pair %q", pair)
		width, err := strconv.Atoi(w)
		require.NoError(t, err)
		count, err := strconv.Atoi(k)
		require.NoError(t, err)
		counts[width] += count
	}
	return v, c, counts
}

func TestWriteText(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"empty", "p cnf 0 0\n", "0 0\n"},
		{"single_literal", "p cnf 3 1\n1 0\n", "3 1 1:1\n"},
		{"collapse", "p cnf 3 2\n1 2 0\n-1 3 0\n", "3 2 2:2\n"},
		{"ascending", "p cnf 5 4\n1 2 3 0\n0\n4 0\n-5 0\n", "5 4 0:1 1:2 3:1\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, analyze(t, tt.input).WriteText(&buf))
			assert.Equal(t, tt.want, buf.String())
		})
	}
}

func TestSummary_RoundTrip(t *testing.T) {
	input := "p cnf 6 6\n1 2 3 0\n-1 0\n4 5 0\n6 0\n1 -2 3 0\n-6 5 0\n"
	s := analyze(t, input)

	v, c, counts := parseLine(t, s.String())
	assert.Equal(t, 6, v)
	assert.Equal(t, 6, c)
	assert.Equal(t, map[int]int{1: 2, 2: 2, 3: 2}, counts)

	total := 0
	for _, k := range counts {
		total += k
	}
	assert.Equal(t, c, total)
}

func TestSummary_MinMaxWidth(t *testing.T) {
	empty := Summary{}
	assert.Equal(t, 0, empty.MinWidth())
	assert.Equal(t, 0, empty.MaxWidth())

	s := Summary{Variables: 3, Clauses: 3, Widths: []histogram.Entry{{Width: 1, Count: 1}, {Width: 4, Count: 2}}}
	assert.Equal(t, 1, s.MinWidth())
	assert.Equal(t, 4, s.MaxWidth())
}

func TestSummary_Digest(t *testing.T) {
	input := "p cnf 3 2\n1 2 0\n-1 3 0\n"
	a := analyze(t, input)
	b := analyze(t, input)
	other := analyze(t, "p cnf 3 2\n1 0\n-1 3 0\n")

	assert.Len(t, a.Digest(), 64)
	assert.Equal(t, a.Digest(), b.Digest())
	assert.NotEqual(t, a.Digest(), other.Digest())
}

func TestNewSummary(t *testing.T) {
	h := histogram.New()
	h.Record(2)
	h.Record(2)

	s := NewSummary(dimacs.Header{Variables: 3, Clauses: 2}, h)
	assert.Equal(t, Summary{
		Variables: 3,
		Clauses:   2,
		Widths:    []histogram.Entry{{Width: 2, Count: 2}},
	}, s)
}

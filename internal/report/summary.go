// Package report renders the width histogram of a validated CNF file.
package report

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"io"
	"strconv"

	"github.com/roach88/cnfstat/internal/dimacs"
	"github.com/roach88/cnfstat/internal/histogram"
)

// DomainSummary prefixes the digest input. The version suffix allows the
// text format to change without colliding with old digests.
const DomainSummary = "cnfstat/summary/v1"

// Summary is the header echo plus the sorted width histogram.
type Summary struct {
	Variables int               `json:"variables" yaml:"variables"`
	Clauses   int               `json:"clauses" yaml:"clauses"`
	Widths    []histogram.Entry `json:"widths" yaml:"widths"`
}

// NewSummary builds a Summary from a header and its histogram.
func NewSummary(h dimacs.Header, widths *histogram.Histogram) Summary {
	return Summary{
		Variables: h.Variables,
		Clauses:   h.Clauses,
		Widths:    widths.Entries(),
	}
}

// FromResult builds a Summary from an Analyze result.
func FromResult(res *dimacs.Result) Summary {
	return NewSummary(res.Header, res.Widths)
}

// String returns the text line without the trailing newline:
// "V C w1:k1 w2:k2 ...".
func (s Summary) String() string {
	buf := make([]byte, 0, 16+12*len(s.Widths))
	buf = strconv.AppendInt(buf, int64(s.Variables), 10)
	buf = append(buf, ' ')
	buf = strconv.AppendInt(buf, int64(s.Clauses), 10)
	for _, e := range s.Widths {
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(e.Width), 10)
		buf = append(buf, ':')
		buf = strconv.AppendInt(buf, int64(e.Count), 10)
	}
	return string(buf)
}

// WriteText writes the text line followed by a single newline.
func (s Summary) WriteText(w io.Writer) error {
	bw := bufio.NewWriter(w)
	bw.WriteString(s.String())
	bw.WriteByte('\n')
	return bw.Flush()
}

// MinWidth returns the smallest clause width, or 0 if there are no clauses.
func (s Summary) MinWidth() int {
	if len(s.Widths) == 0 {
		return 0
	}
	return s.Widths[0].Width
}

// MaxWidth returns the largest clause width, or 0 if there are no clauses.
func (s Summary) MaxWidth() int {
	if len(s.Widths) == 0 {
		return 0
	}
	return s.Widths[len(s.Widths)-1].Width
}

// Digest identifies the summary by content.
// Format: hex(SHA256(DomainSummary + 0x00 + text line)).
func (s Summary) Digest() string {
	h := sha256.New()
	h.Write([]byte(DomainSummary))
	h.Write([]byte{0x00})
	h.Write([]byte(s.String()))
	return hex.EncodeToString(h.Sum(nil))
}

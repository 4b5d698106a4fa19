package dimacs

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
)

// MaxLineBytes is the longest line the reader accepts, terminator included.
const MaxLineBytes = 16 << 20

const initialBufferBytes = 64 << 10

// Open opens path for reading. The caller owns the returned ReadCloser.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, newFileNotFoundError(path, err)
	}
	return f, nil
}

// LineReader yields the lines of an input one at a time with the line
// terminator stripped. It is not restartable.
type LineReader struct {
	scanner *bufio.Scanner
	line    int
	err     error
}

// NewLineReader wraps r in a LineReader.
func NewLineReader(r io.Reader) *LineReader {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, initialBufferBytes), MaxLineBytes)
	return &LineReader{scanner: sc}
}

// Next advances to the next line. It returns false at end of input or on
// the first read failure; Err distinguishes the two.
func (lr *LineReader) Next() bool {
	if lr.err != nil {
		return false
	}
	if lr.scanner.Scan() {
		lr.line++
		return true
	}
	if err := lr.scanner.Err(); err != nil {
		// The failing line is the one after the last line returned.
		if errors.Is(err, bufio.ErrTooLong) {
			lr.err = newLineTooLongError(lr.line+1, err)
		} else {
			lr.err = newReadError(lr.line+1, err)
		}
	}
	return false
}

// Text returns the current line without its terminator.
func (lr *LineReader) Text() string {
	return lr.scanner.Text()
}

// Line returns the 1-based number of the current line.
func (lr *LineReader) Line() int {
	return lr.line
}

// Err returns the read failure that stopped Next, if any.
func (lr *LineReader) Err() error {
	return lr.err
}

// Tokenize splits a line on runs of spaces, tabs and carriage returns.
// Other whitespace is part of a token.
func Tokenize(line string) []string {
	return strings.FieldsFunc(line, isSeparator)
}

func isSeparator(r rune) bool {
	return r == ' ' || r == '\t' || r == '\r'
}

package dimacs

import (
	"errors"
	"fmt"
	"strconv"
)

// ErrorCode categorizes DIMACS input failures.
type ErrorCode string

const (
	// ErrCodeInput indicates the input could not be opened or read.
	ErrCodeInput ErrorCode = "INPUT_ERROR"

	// ErrCodeEmptyFile indicates there is no header line or it has no tokens.
	ErrCodeEmptyFile ErrorCode = "EMPTY_FILE"

	// ErrCodeHeaderFormat indicates a malformed "p cnf V C" line.
	ErrCodeHeaderFormat ErrorCode = "HEADER_FORMAT"

	// ErrCodeLineCountExceeded indicates more clause lines than declared.
	ErrCodeLineCountExceeded ErrorCode = "LINE_COUNT_EXCEEDED"

	// ErrCodeEmptyLine indicates a clause line without tokens.
	ErrCodeEmptyLine ErrorCode = "EMPTY_LINE"

	// ErrCodeNonInteger indicates a token that is not a base-10 integer.
	ErrCodeNonInteger ErrorCode = "NON_INTEGER_TOKEN"

	// ErrCodeOutOfBounds indicates a literal outside [-V, V].
	ErrCodeOutOfBounds ErrorCode = "OUT_OF_BOUNDS"

	// ErrCodeMissingTerminator indicates a clause line not ending in 0.
	ErrCodeMissingTerminator ErrorCode = "MISSING_TERMINATOR"

	// ErrCodeLineCountShortfall indicates fewer clause lines than declared.
	ErrCodeLineCountShortfall ErrorCode = "LINE_COUNT_SHORTFALL"
)

// Error is a terminal validation or input failure.
//
// Message is the human-readable sentence printed after "Error: ".
// Line is the 1-based input line, or 0 when the failure is not tied to a line.
type Error struct {
	Code    ErrorCode
	Message string
	Line    int
	Details map[string]string
	Err     error
}

func (e *Error) Error() string {
	return e.Message
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf returns the ErrorCode of err, or "" if err is not a *Error.
func CodeOf(err error) ErrorCode {
	var de *Error
	if errors.As(err, &de) {
		return de.Code
	}
	return ""
}

// HasCode reports whether err (or anything it wraps) is a *Error with code.
func HasCode(err error, code ErrorCode) bool {
	return CodeOf(err) == code
}

func newFileNotFoundError(path string, err error) *Error {
	return &Error{
		Code:    ErrCodeInput,
		Message: fmt.Sprintf("File '%s' not found.", path),
		Details: map[string]string{"path": path},
		Err:     err,
	}
}

func newReadError(line int, err error) *Error {
	return &Error{
		Code:    ErrCodeInput,
		Message: fmt.Sprintf("Failed to read input near line %d: %v", line, err),
		Line:    line,
		Err:     err,
	}
}

func newLineTooLongError(line int, err error) *Error {
	return &Error{
		Code:    ErrCodeInput,
		Message: fmt.Sprintf("Line %d exceeds the maximum line length of %d bytes.", line, MaxLineBytes),
		Line:    line,
		Details: map[string]string{"max_line_bytes": strconv.Itoa(MaxLineBytes)},
		Err:     err,
	}
}

func newEmptyFileError() *Error {
	return &Error{Code: ErrCodeEmptyFile, Message: "File is empty.", Line: 1}
}

func newHeaderError(message string) *Error {
	return &Error{Code: ErrCodeHeaderFormat, Message: message, Line: 1}
}

func newExtraLinesError(line, declared, processed int) *Error {
	return &Error{
		Code: ErrCodeLineCountExceeded,
		Message: fmt.Sprintf("Line count mismatch. Header specifies %d clauses, but file has extra lines (at least %d).",
			declared, processed),
		Line: line,
		Details: map[string]string{
			"expected": strconv.Itoa(declared),
			"actual":   strconv.Itoa(processed),
		},
	}
}

func newShortfallError(declared, processed int) *Error {
	return &Error{
		Code: ErrCodeLineCountShortfall,
		Message: fmt.Sprintf("Line count mismatch. Header specifies %d clauses, but file only has %d clause lines.",
			declared, processed),
		Details: map[string]string{
			"expected": strconv.Itoa(declared),
			"actual":   strconv.Itoa(processed),
		},
	}
}

func newEmptyLineError(line int) *Error {
	return &Error{
		Code:    ErrCodeEmptyLine,
		Message: fmt.Sprintf("Line %d is empty or missing data.", line),
		Line:    line,
	}
}

func newNonIntegerError(line int, token string) *Error {
	return &Error{
		Code:    ErrCodeNonInteger,
		Message: fmt.Sprintf("Line %d contains non-integer value '%s'.", line, token),
		Line:    line,
		Details: map[string]string{"token": token},
	}
}

func newOutOfBoundsError(line, value, bound int) *Error {
	return &Error{
		Code:    ErrCodeOutOfBounds,
		Message: fmt.Sprintf("Line %d contains number %d out of bounds [-%d, %d].", line, value, bound, bound),
		Line:    line,
		Details: map[string]string{
			"value": strconv.Itoa(value),
			"bound": strconv.Itoa(bound),
		},
	}
}

func newMissingTerminatorError(line, tokens int) *Error {
	return &Error{
		Code:    ErrCodeMissingTerminator,
		Message: fmt.Sprintf("Line %d does not end with 0. Read %d tokens", line, tokens),
		Line:    line,
		Details: map[string]string{"tokens": strconv.Itoa(tokens)},
	}
}

package dimacs

import (
	"errors"
	"strconv"
)

// Header is the parsed "p cnf V C" problem line.
type Header struct {
	Variables int
	Clauses   int
}

// ParseHeader validates the first line of a CNF file.
// Checks run in order and the first failure is returned.
// Tokens after C are ignored.
func ParseHeader(line string) (Header, error) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return Header{}, newEmptyFileError()
	}
	if tokens[0] != "p" {
		return Header{}, newHeaderError("Invalid header format. Expected 'p cnf V C'.")
	}
	if len(tokens) < 2 || tokens[1] != "cnf" {
		return Header{}, newHeaderError("Invalid header format. Expected 'p cnf V C'.")
	}

	vars, err := headerField(tokens, 2, "V")
	if err != nil {
		return Header{}, err
	}
	clauses, err := headerField(tokens, 3, "C")
	if err != nil {
		return Header{}, err
	}

	return Header{Variables: vars, Clauses: clauses}, nil
}

func headerField(tokens []string, idx int, name string) (int, error) {
	if len(tokens) <= idx {
		return 0, newHeaderError("Invalid header format. Missing " + name + ".")
	}
	n, err := parseInt(tokens[idx])
	switch {
	case errors.Is(err, strconv.ErrRange):
		return 0, newHeaderError(name + " in header is out of range.")
	case err != nil:
		return 0, newHeaderError(name + " in header must be an integer.")
	case n < 0:
		return 0, newHeaderError(name + " in header must be non-negative.")
	}
	return n, nil
}

// parseInt parses a base-10 integer with an optional sign and no trailing
// bytes. On overflow it returns the saturated value with strconv.ErrRange.
func parseInt(token string) (int, error) {
	n, err := strconv.ParseInt(token, 10, 0)
	return int(n), err
}

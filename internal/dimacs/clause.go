package dimacs

import (
	"errors"
	"strconv"
)

// ValidateClause checks one clause line against the header bounds and
// returns its width (the number of literals before the terminating 0).
// lineNum is the 1-based line number used in error messages.
func ValidateClause(line string, lineNum int, h Header) (int, error) {
	tokens := Tokenize(line)
	if len(tokens) == 0 {
		return 0, newEmptyLineError(lineNum)
	}

	last := -1
	for _, tok := range tokens {
		val, err := parseInt(tok)
		if err != nil && !errors.Is(err, strconv.ErrRange) {
			return 0, newNonIntegerError(lineNum, tok)
		}
		// An overflowing token is reported with its saturated value.
		if err != nil || val > h.Variables || val < -h.Variables {
			return 0, newOutOfBoundsError(lineNum, val, h.Variables)
		}
		last = val
	}

	if last != 0 {
		return 0, newMissingTerminatorError(lineNum, len(tokens))
	}

	return len(tokens) - 1, nil
}

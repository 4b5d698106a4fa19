package dimacs

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateClause_Widths(t *testing.T) {
	h := Header{Variables: 3, Clauses: 1}

	tests := []struct {
		line  string
		width int
	}{
		{"0", 0},
		{"1 0", 1},
		{"-3 3 0", 2},
		{"1 2 3 -1 -2 -3 0", 6},
		{"\t2\r 0\r", 1},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			width, err := ValidateClause(tt.line, 2, h)
			require.NoError(t, err)
			assert.Equal(t, tt.width, width)
		})
	}
}

func TestValidateClause_Errors(t *testing.T) {
	h := Header{Variables: 2, Clauses: 1}

	tests := []struct {
		name    string
		line    string
		code    ErrorCode
		details map[string]string
	}{
		{"empty", "", ErrCodeEmptyLine, nil},
		{"non_integer", "1 two 0", ErrCodeNonInteger, map[string]string{"token": "two"}},
		{"float", "1.0 0", ErrCodeNonInteger, map[string]string{"token": "1.0"}},
		{"above_bound", "3 0", ErrCodeOutOfBounds, map[string]string{"value": "3", "bound": "2"}},
		{"below_bound", "-3 0", ErrCodeOutOfBounds, map[string]string{"value": "-3", "bound": "2"}},
		{"no_zero", "1 2", ErrCodeMissingTerminator, map[string]string{"tokens": "2"}},
		{"zero_not_last", "0 1", ErrCodeMissingTerminator, map[string]string{"tokens": "2"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ValidateClause(tt.line, 7, h)
			require.Error(t, err)

			var de *Error
			require.ErrorAs(t, err, &de)
			assert.Equal(t, tt.code, de.Code)
			assert.Equal(t, 7, de.Line)
			if tt.details != nil {
				assert.Equal(t, tt.details, de.Details)
			}
		})
	}
}

func TestValidateClause_ZeroVariables(t *testing.T) {
	h := Header{Variables: 0, Clauses: 1}

	width, err := ValidateClause("0", 2, h)
	require.NoError(t, err)
	assert.Equal(t, 0, width)

	_, err = ValidateClause("1 0", 2, h)
	assert.True(t, HasCode(err, ErrCodeOutOfBounds))
}

func TestValidateClause_NonIntegerBeforeBounds(t *testing.T) {
	// Tokens are checked in order, so the earlier bad token decides.
	_, err := ValidateClause("abc 9 0", 2, Header{Variables: 1})
	assert.True(t, HasCode(err, ErrCodeNonInteger))

	_, err = ValidateClause("9 abc 0", 2, Header{Variables: 1})
	assert.True(t, HasCode(err, ErrCodeOutOfBounds))
}

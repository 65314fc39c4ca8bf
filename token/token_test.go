package token

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookupIdent(t *testing.T) {
	assert.Equal(t, TokenType(DO), LookupIdent("do"))
	assert.Equal(t, TokenType(PIPE), LookupIdent("pipe"))
	assert.Equal(t, TokenType(FUNCTION), LookupIdent("fn"))
	assert.Equal(t, TokenType(IDENT), LookupIdent(Return))
	assert.Equal(t, TokenType(IDENT), LookupIdent("maybe"))
}

func TestKeywordsSorted(t *testing.T) {
	words := Keywords()
	assert.Len(t, words, 10)
	assert.IsNonDecreasing(t, words)
	assert.NotContains(t, words, Return)
}

func TestOperatorsLexLongestFirst(t *testing.T) {
	for i, op := range Operators {
		for _, later := range Operators[i+1:] {
			assert.False(t, strings.HasPrefix(string(later), string(op)) && later != op,
				"%s must come before %s", later, op)
		}
	}
}

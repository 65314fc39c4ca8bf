package grammar

import (
	"regexp"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"

	"monadic/token"
)

var MonadicLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		// Comments
		{Name: "Comment", Pattern: `//[^\n]*`, Action: nil},

		// Whitespace
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`, Action: nil},

		// String literals with Go escapes
		{Name: "String", Pattern: `"(\\.|[^"\\\n])*"`, Action: nil},

		// Keywords (must come before identifiers; "return" is an identifier)
		{Name: "Keyword", Pattern: `(` + strings.Join(token.Keywords(), "|") + `)\b`, Action: nil},

		// Identifiers
		{Name: "Ident", Pattern: `[a-zA-Z_][a-zA-Z0-9_]*`, Action: nil},

		// Integer literals
		{Name: "Integer", Pattern: `[0-9]+`, Action: nil},

		// Operators (longest first so "<-" never lexes as "<" "-")
		{Name: "Operator", Pattern: operatorPattern(), Action: nil},

		// Punctuation
		{Name: "Punctuation", Pattern: `[{}[\](),;.]`, Action: nil},
	},
})

func operatorPattern() string {
	quoted := make([]string, len(token.Operators))
	for i, op := range token.Operators {
		quoted[i] = regexp.QuoteMeta(string(op))
	}
	return "(" + strings.Join(quoted, "|") + ")"
}

// Package token holds the keyword and operator vocabulary of the surface
// language. The grammar builds its lexer from it; the REPL and the language
// server use it for completion and highlighting.
package token

import "sort"

type TokenType string

type Token struct {
	Type    TokenType
	Literal string
}

const (
	ILLEGAL = "ILLEGAL"
	EOF     = "EOF"

	// Identifiers + literals
	IDENT  = "IDENT"  // x, half, return
	INT    = "INT"    // 1234567890
	STRING = "STRING" // "text"

	// Operators
	BIND      = "<-"
	PIPE_INTO = "|>"
	ARROW     = "->"
	ASSIGN    = "="
	PLUS      = "+"
	MINUS     = "-"
	BANG      = "!"
	ASTERISK  = "*"
	SLASH     = "/"
	CONCAT    = "++"

	LT     = "<"
	GT     = ">"
	LT_EQ  = "<="
	GT_EQ  = ">="
	EQ     = "=="
	NOT_EQ = "!="
	AND    = "&&"
	OR     = "||"

	// Delimiters
	COMMA     = ","
	SEMICOLON = ";"
	DOT       = "."

	LPAREN   = "("
	RPAREN   = ")"
	LBRACE   = "{"
	RBRACE   = "}"
	LBRACKET = "["
	RBRACKET = "]"

	COMMENT = "COMMENT"

	// Keywords
	DO       = "DO"
	PIPE     = "PIPE"
	FUNCTION = "FUNCTION"
	LET      = "LET"
	TRUE     = "TRUE"
	FALSE    = "FALSE"
	IF       = "IF"
	THEN     = "THEN"
	ELSE     = "ELSE"
	END      = "END"
)

// Return is the name a do-block rewrites to its strategy's return. It is
// an ordinary identifier outside of do-blocks.
const Return = "return"

var keywords = map[string]TokenType{
	"do":    DO,
	"pipe":  PIPE,
	"fn":    FUNCTION,
	"let":   LET,
	"true":  TRUE,
	"false": FALSE,
	"if":    IF,
	"then":  THEN,
	"else":  ELSE,
	"end":   END,
}

// Operators in lexing order: an operator comes before any operator that is
// a prefix of it.
var Operators = []TokenType{
	BIND, PIPE_INTO, ARROW, EQ, NOT_EQ, LT_EQ, GT_EQ, CONCAT, AND, OR,
	MINUS, PLUS, ASTERISK, SLASH, LT, GT, ASSIGN, BANG,
}

func LookupIdent(ident string) TokenType {
	if tok, ok := keywords[ident]; ok {
		return tok
	}
	return IDENT
}

// Keywords returns the reserved words, sorted.
func Keywords() []string {
	words := make([]string, 0, len(keywords))
	for word := range keywords {
		words = append(words, word)
	}
	sort.Strings(words)
	return words
}

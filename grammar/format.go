package grammar

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// comment is a `//` comment of the source. codeEnd is the column just
// after the last code on its line, 0 for a comment on a line of its own.
type comment struct {
	line    int
	text    string
	codeEnd int
}

// Format parses source and prints it in canonical layout. Unlike
// Program.String it keeps comments and single blank lines between
// statements. A comment inside a multi-line expression moves to its own
// line before the next statement.
func Format(filename, source string) (string, error) {
	program, err := ParseString(filename, source)
	if err != nil {
		return "", err
	}
	comments, err := collectComments(filename, source)
	if err != nil {
		return "", err
	}
	p := &printer{comments: comments, layout: true}
	return p.program(program), nil
}

func collectComments(filename, source string) ([]comment, error) {
	lex, err := MonadicLexer.LexString(filename, source)
	if err != nil {
		return nil, err
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return nil, err
	}

	symbols := MonadicLexer.Symbols()
	commentType, whitespaceType := symbols["Comment"], symbols["Whitespace"]

	var comments []comment
	codeLine, codeEnd := 0, 0
	for _, tok := range tokens {
		switch {
		case tok.EOF(), tok.Type == whitespaceType:
		case tok.Type == commentType:
			c := comment{line: tok.Pos.Line, text: strings.TrimRight(tok.Value, " \t\r")}
			if tok.Pos.Line == codeLine {
				c.codeEnd = codeEnd
			}
			comments = append(comments, c)
		default:
			codeLine, codeEnd = tok.Pos.Line, tok.Pos.Column+len(tok.Value)
		}
	}
	return comments, nil
}

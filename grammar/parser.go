package grammar

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/participle/v2"
)

var parser = participle.MustBuild[Program](
	participle.Lexer(MonadicLexer),
	participle.Elide("Whitespace", "Comment"),
	participle.UseLookahead(256),
)

// ParseString parses source; filename is only used in positions.
func ParseString(filename, source string) (*Program, error) {
	return parser.ParseString(filename, source)
}

func ParseFile(path string) (*Program, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return ParseString(path, string(source))
}

// IsIncomplete reports whether err was caused by source ending too early,
// which is how the REPL decides to ask for a continuation line.
func IsIncomplete(source string, err error) bool {
	var pe participle.Error
	if !errors.As(err, &pe) {
		return false
	}
	if strings.Contains(pe.Message(), "EOF") {
		return true
	}
	return pe.Position().Offset >= len(strings.TrimRight(source, " \t\r\n"))
}

package parser

import (
	stderrors "errors"
	"fmt"
	"os"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"

	"monadic/grammar"
	"monadic/internal/ast"
	"monadic/internal/errors"
)

// ParseSource parses a whole source file into an ast.Program. On a syntax
// error the program is nil and the single E0100 diagnostic says where
// parsing stopped.
func ParseSource(path string, source string) (*ast.Program, []errors.CompilerError) {
	tree, err := grammar.ParseString(path, source)
	if err != nil {
		return nil, []errors.CompilerError{syntaxError(path, err)}
	}

	b := &builder{}
	program := b.program(tree)
	if len(b.errors) > 0 {
		return nil, b.errors
	}
	return program, nil
}

func ParseFile(path string) (*ast.Program, []errors.CompilerError, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read file: %w", err)
	}

	program, errs := ParseSource(path, string(source))
	return program, errs, nil
}

func syntaxError(path string, err error) errors.CompilerError {
	var pe participle.Error
	if stderrors.As(err, &pe) {
		return errors.SyntaxError(pe.Message(), position(pe.Position()))
	}
	return errors.SyntaxError(err.Error(), ast.Position{Filename: path, Line: 1, Column: 1})
}

func position(p lexer.Position) ast.Position {
	return ast.Position{
		Filename: p.Filename,
		Offset:   p.Offset,
		Line:     p.Line,
		Column:   p.Column,
	}
}

// Package compiler runs the front end: parse, then desugar every do-block
// and pipeline against the standard strategy modules.
package compiler

import (
	"fmt"
	"os"

	"monadic/internal/ast"
	"monadic/internal/desugar"
	"monadic/internal/errors"
	"monadic/internal/parser"
	"monadic/internal/stdlib"
)

// Unit is the outcome of compiling one source. Parsed is nil on a syntax
// error. Desugared is set whenever Parsed is, even with diagnostics.
type Unit struct {
	Path      string
	Source    string
	Parsed    *ast.Program
	Desugared *ast.Program
	Errors    []errors.CompilerError
}

func (u *Unit) HasErrors() bool {
	return len(u.Errors) > 0
}

// Compile parses and desugars source. path only labels positions.
func Compile(path, source string) *Unit {
	u := &Unit{Path: path, Source: source}

	program, errs := parser.ParseSource(path, source)
	if len(errs) > 0 {
		u.Errors = errs
		return u
	}
	u.Parsed = program
	u.Desugared, u.Errors = desugar.New(stdlib.StrategyNames()).Program(program)
	return u
}

func CompileFile(path string) (*Unit, error) {
	source, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}
	return Compile(path, string(source)), nil
}

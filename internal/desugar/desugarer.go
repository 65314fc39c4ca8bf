package desugar

import (
	stderrors "errors"
	"slices"

	"github.com/tliron/commonlog"

	"monadic/internal/ast"
	"monadic/internal/errors"
)

var log = commonlog.GetLogger("monadic.desugar")

// Desugarer expands every do-block and pipeline of a program. It walks the
// tree top-down, so a block nested inside another is expanded after the
// outer one, with its own strategy. Diagnostics are collected, not fatal:
// a construct that fails to expand is left in place and its children are
// still visited.
type Desugarer struct {
	strategies []string
	errors     []errors.CompilerError
}

// New creates a desugarer that accepts the given strategy names.
func New(strategies []string) *Desugarer {
	names := slices.Clone(strategies)
	slices.Sort(names)
	return &Desugarer{strategies: names}
}

// Errors returns the diagnostics collected so far.
func (d *Desugarer) Errors() []errors.CompilerError {
	return d.errors
}

// HasErrors reports whether any diagnostic was collected.
func (d *Desugarer) HasErrors() bool {
	return len(d.errors) > 0
}

// Program returns a desugared copy of program together with every
// diagnostic found in it.
func (d *Desugarer) Program(program *ast.Program) (*ast.Program, []errors.CompilerError) {
	d.errors = nil
	if program == nil {
		return nil, nil
	}

	out := &ast.Program{Pos: program.Pos, EndPos: program.EndPos, Statements: make([]ast.Statement, len(program.Statements))}
	for i, stmt := range program.Statements {
		out.Statements[i] = mapStatement(stmt, d.Expr)
	}

	if len(d.errors) > 0 {
		log.Debugf("desugared program with %d diagnostics", len(d.errors))
	}
	return out, d.errors
}

// Expr returns a desugared copy of e. Diagnostics are appended to Errors.
func (d *Desugarer) Expr(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case nil:
		return nil

	case *ast.DoExpr:
		if !d.resolve(n.Strategy) {
			return mapChildren(n, d.Expr)
		}
		if n.Block == nil {
			// the braces are missing; the fix-it inserts them after the strategy
			d.errors = append(d.errors, errors.MissingBlock(n.Strategy.Name, n.Pos, n.EndPos, 0))
			return n
		}
		expanded, err := Expand(NewQualified(n.Strategy.Name, n.Strategy.Pos), n.Block)
		if err != nil {
			d.report(err, n.Pos)
			return mapChildren(n, d.Expr)
		}
		log.Debugf("expanded do %s at %d:%d", n.Strategy.Name, n.Pos.Line, n.Pos.Column)
		return d.Expr(expanded)

	case *ast.PipeExpr:
		if !d.resolve(n.Strategy) {
			return mapChildren(n, d.Expr)
		}
		expanded, err := Pipeline(NewQualified(n.Strategy.Name, n.Strategy.Pos), n.Chain)
		if err != nil {
			d.report(err, n.Pos)
			return mapChildren(n, d.Expr)
		}
		log.Debugf("expanded pipe %s at %d:%d", n.Strategy.Name, n.Pos.Line, n.Pos.Column)
		return d.Expr(expanded)

	case *ast.BinaryExpr:
		if ast.IsPipe(n) {
			return d.Expr(Thread(n))
		}
	}

	return mapChildren(e, d.Expr)
}

func (d *Desugarer) resolve(strategy ast.Ident) bool {
	if _, found := slices.BinarySearch(d.strategies, strategy.Name); found {
		return true
	}
	d.errors = append(d.errors, errors.UnknownStrategy(strategy.Name, strategy.Pos, d.strategies))
	return false
}

// report records err, placing it at pos when it carries no position of its
// own.
func (d *Desugarer) report(err error, pos ast.Position) {
	var ce errors.CompilerError
	if !stderrors.As(err, &ce) {
		ce = errors.NewDiagnostic("", err.Error(), pos).Build()
	}
	if ce.Position == (ast.Position{}) {
		ce.Position = pos
	}
	d.errors = append(d.errors, ce)
}

package desugar

import (
	"monadic/internal/ast"
	"monadic/internal/errors"
)

// Pipeline folds a `|>` chain into nested pipeline steps from the left:
//
//	a |> f(x) |> g()  ->  S.pipebind(S.pipebind(a, f(x)), g())
//
// Strategies implementing PipeBinder supply the step; others get
// DefaultPipeBind, which numbers its slots 1, 2, ... per stage.
//
// The returned error is an errors.CompilerError: E0203 when chain is not a
// `|>` chain and E0204 when a stage after the first is not a call.
func Pipeline[S Strategy](s S, chain ast.Expr) (ast.Expr, error) {
	if !ast.IsPipe(chain) {
		var pos ast.Position
		if chain != nil {
			pos = chain.NodePos()
		}
		return nil, errors.MissingPipeline(s.Name(), pos)
	}

	seed, stages := flattenPipe(chain)
	calls := make([]*ast.CallExpr, len(stages))
	for i, stage := range stages {
		call, ok := stage.(*ast.CallExpr)
		if !ok {
			text := stage.String()
			length := span(stage)
			if length == 0 {
				length = len(text)
			}
			return nil, errors.PipeStageNotCall(text, stage.NodePos(), length, isNamed(stage))
		}
		calls[i] = call
	}

	acc := seed
	for i, call := range calls {
		if pb, ok := any(s).(PipeBinder); ok {
			acc = pb.PipeBind(acc, call)
		} else {
			acc = DefaultPipeBind(s, acc, call, i+1)
		}
	}
	return acc, nil
}

// isNamed reports whether e names a function, so that e() is a call.
func isNamed(e ast.Expr) bool {
	switch e.(type) {
	case *ast.Ident, *ast.QualifiedIdent:
		return true
	}
	return false
}

// Thread rewrites a plain `|>` chain by passing each stage's value as the
// first argument of the next: a |> f(x) |> g becomes g(f(a, x)). A stage
// that is not a call is applied to the value.
func Thread(chain ast.Expr) ast.Expr {
	if !ast.IsPipe(chain) {
		return chain
	}

	acc, stages := flattenPipe(chain)
	for _, stage := range stages {
		if call, ok := stage.(*ast.CallExpr); ok {
			acc = withSubject(call, acc)
			continue
		}
		acc = &ast.CallExpr{Pos: stage.NodePos(), EndPos: stage.NodeEndPos(), Callee: stage, Args: []ast.Expr{acc}}
	}
	return acc
}

// flattenPipe splits a left-associative chain into its seed and stages.
func flattenPipe(chain ast.Expr) (ast.Expr, []ast.Expr) {
	var stages []ast.Expr
	e := chain
	for ast.IsPipe(e) {
		b := e.(*ast.BinaryExpr)
		stages = append(stages, b.Right)
		e = b.Left
	}

	for i, j := 0, len(stages)-1; i < j; i, j = i+1, j-1 {
		stages[i], stages[j] = stages[j], stages[i]
	}
	return e, stages
}

package desugar

import (
	"monadic/internal/ast"
	"monadic/internal/errors"
	"monadic/token"
)

// ReturnKeyword is the unqualified name rewritten to the active strategy.
const ReturnKeyword = token.Return

// returnSlot is the parameter of the eta-expanded bare return. Pipeline
// slots count from 1.
const returnSlot = 0

// RewriteReturns returns a copy of e in which every unqualified return is
// bound to s:
//
//	return(x)  ->  s.Return(x)
//	return()   ->  s.Return({})
//	return     ->  fn $0 -> s.Return($0) end
//
// The rewrite descends into every expression form. It stops at a nested
// do-block of another strategy, which owns its returns. Patterns are never
// visited. A return called with more than one argument keeps its callee;
// Expand reports it as E0206.
func RewriteReturns(s Strategy, e ast.Expr) ast.Expr {
	r := &returnRewriter{strategy: s}
	return r.rewrite(e)
}

type returnRewriter struct {
	strategy Strategy
	// first return called with too many arguments
	err error
}

func (r *returnRewriter) rewrite(e ast.Expr) ast.Expr {
	switch n := e.(type) {
	case nil:
		return nil

	case *ast.Ident:
		if n.Name == ReturnKeyword {
			return r.returnFunc(n.Pos)
		}
		return n

	case *ast.CallExpr:
		if isReturn(n.Callee) {
			switch len(n.Args) {
			case 0:
				return r.strategy.Return(&ast.TupleExpr{Pos: n.Pos, EndPos: n.EndPos})
			case 1:
				return r.strategy.Return(r.rewrite(n.Args[0]))
			}
			if r.err == nil {
				args := make([]string, len(n.Args))
				for i, arg := range n.Args {
					args[i] = arg.String()
				}
				r.err = errors.ReturnArity(args, n.Pos, span(n))
			}
			out := *n
			out.Args = mapExprs(n.Args, r.rewrite)
			return &out
		}
		return mapChildren(n, r.rewrite)

	case *ast.DoExpr:
		if n.Strategy.Name != r.strategy.Name() {
			return n
		}
		return mapChildren(n, r.rewrite)
	}

	return mapChildren(e, r.rewrite)
}

func (r *returnRewriter) returnFunc(pos ast.Position) ast.Expr {
	return &ast.FuncLit{
		Pos:    pos,
		EndPos: pos,
		Params: []ast.Pattern{&ast.SlotPattern{Pos: pos, EndPos: pos, ID: returnSlot}},
		Body:   r.strategy.Return(&ast.Slot{Pos: pos, EndPos: pos, ID: returnSlot}),
	}
}

func isReturn(e ast.Expr) bool {
	id, ok := e.(*ast.Ident)
	return ok && id.Name == ReturnKeyword
}

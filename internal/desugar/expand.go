package desugar

import (
	"monadic/internal/ast"
	"monadic/internal/errors"
)

// Expand rewrites a do-block into nested binds against s:
//
//	x <- a; y <- b; return(f(x, y))
//
// becomes
//
//	S.bind(a, fn x -> S.bind(b, fn y -> S.return(f(x, y)) end) end)
//
// Let statements are spliced in front of the rest as a LetExpr and never
// wrapped in a bind. Plain statements bind to a wildcard. Unqualified
// return in the result is rewritten to s's return.
//
// The returned error is an errors.CompilerError: E0200 for a nil or empty
// block, E0201 when the block ends with a binding, E0202 when it ends with
// let and E0206 when a return is called with more than one argument.
func Expand[S Strategy](s S, block *ast.Block) (ast.Expr, error) {
	if block == nil {
		return nil, errors.MissingBlock(s.Name(), ast.Position{}, ast.Position{}, 0)
	}
	if block.Len() == 0 {
		return nil, errors.MissingBlock(s.Name(), block.Pos, block.Pos, span(block))
	}

	switch last := block.Last().(type) {
	case *ast.BindStmt:
		return nil, errors.TrailingBind(last.Pattern.String(), last.Pos)
	case *ast.LetStmt:
		return nil, errors.TrailingLet(last.Pos)
	}

	r := &returnRewriter{strategy: s}
	out := r.rewrite(expandStatements(s, block.Statements))
	if r.err != nil {
		return nil, r.err
	}
	return out, nil
}

// expandStatements requires a non-empty sequence whose last element is an
// expression statement.
func expandStatements(s Strategy, stmts []ast.Statement) ast.Expr {
	if len(stmts) == 1 {
		return statementExpr(stmts[0])
	}

	switch head := stmts[0].(type) {
	case *ast.LetStmt:
		var bindings []*ast.Binding
		i := 0
		for ; i < len(stmts)-1; i++ {
			let, ok := stmts[i].(*ast.LetStmt)
			if !ok {
				break
			}
			bindings = append(bindings, let.Bindings...)
		}
		body := expandStatements(s, stmts[i:])
		return &ast.LetExpr{Pos: head.Pos, EndPos: body.NodeEndPos(), Bindings: bindings, Body: body}

	case *ast.BindStmt:
		return s.Bind(head.Action, head.Pattern, expandStatements(s, stmts[1:]))

	default:
		wildcard := &ast.WildcardPattern{Pos: head.NodePos(), EndPos: head.NodePos()}
		return s.Bind(statementExpr(head), wildcard, expandStatements(s, stmts[1:]))
	}
}

// span is the source length of n, or 0 when n carries no positions.
func span(n ast.Node) int {
	return max(n.NodeEndPos().Offset-n.NodePos().Offset, 0)
}

// statementExpr is the expression of a PlainStmt or TailStmt.
func statementExpr(stmt ast.Statement) ast.Expr {
	switch s := stmt.(type) {
	case *ast.TailStmt:
		return s.Expr
	case *ast.PlainStmt:
		return s.Action
	}
	return nil
}

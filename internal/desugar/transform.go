package desugar

import (
	"monadic/internal/ast"
)

// mapChildren returns a copy of e with f applied to each direct child
// expression. Leaves are returned as they are. Patterns are shared, never
// copied or visited. Statements of a nested do-block are mapped too.
func mapChildren(e ast.Expr, f func(ast.Expr) ast.Expr) ast.Expr {
	switch n := e.(type) {
	case *ast.CallExpr:
		out := *n
		out.Callee = f(n.Callee)
		out.Args = mapExprs(n.Args, f)
		return &out

	case *ast.UnaryExpr:
		out := *n
		out.Value = f(n.Value)
		return &out

	case *ast.BinaryExpr:
		out := *n
		out.Left = f(n.Left)
		out.Right = f(n.Right)
		return &out

	case *ast.ListExpr:
		out := *n
		out.Elems = mapExprs(n.Elems, f)
		return &out

	case *ast.TupleExpr:
		out := *n
		out.Elems = mapExprs(n.Elems, f)
		return &out

	case *ast.FuncLit:
		out := *n
		out.Body = f(n.Body)
		return &out

	case *ast.IfExpr:
		out := *n
		out.Cond = f(n.Cond)
		out.Then = f(n.Then)
		out.Else = f(n.Else)
		return &out

	case *ast.LetExpr:
		out := *n
		out.Bindings = mapBindings(n.Bindings, f)
		out.Body = f(n.Body)
		return &out

	case *ast.DoExpr:
		out := *n
		out.Block = mapBlock(n.Block, f)
		return &out

	case *ast.PipeExpr:
		out := *n
		out.Chain = f(n.Chain)
		return &out
	}

	return e
}

func mapExprs(exprs []ast.Expr, f func(ast.Expr) ast.Expr) []ast.Expr {
	if exprs == nil {
		return nil
	}
	out := make([]ast.Expr, len(exprs))
	for i, e := range exprs {
		out[i] = f(e)
	}
	return out
}

func mapBindings(bindings []*ast.Binding, f func(ast.Expr) ast.Expr) []*ast.Binding {
	out := make([]*ast.Binding, len(bindings))
	for i, b := range bindings {
		out[i] = &ast.Binding{Pos: b.Pos, EndPos: b.EndPos, Pattern: b.Pattern, Value: f(b.Value)}
	}
	return out
}

func mapBlock(block *ast.Block, f func(ast.Expr) ast.Expr) *ast.Block {
	if block == nil {
		return nil
	}
	out := &ast.Block{Pos: block.Pos, EndPos: block.EndPos, Statements: make([]ast.Statement, len(block.Statements))}
	for i, stmt := range block.Statements {
		out.Statements[i] = mapStatement(stmt, f)
	}
	return out
}

func mapStatement(stmt ast.Statement, f func(ast.Expr) ast.Expr) ast.Statement {
	switch s := stmt.(type) {
	case *ast.BindStmt:
		return &ast.BindStmt{Pos: s.Pos, EndPos: s.EndPos, Pattern: s.Pattern, Action: f(s.Action)}
	case *ast.LetStmt:
		return &ast.LetStmt{Pos: s.Pos, EndPos: s.EndPos, Bindings: mapBindings(s.Bindings, f), Grouped: s.Grouped}
	case *ast.PlainStmt:
		return &ast.PlainStmt{Pos: s.Pos, EndPos: s.EndPos, Action: f(s.Action)}
	case *ast.TailStmt:
		return &ast.TailStmt{Pos: s.Pos, EndPos: s.EndPos, Expr: f(s.Expr)}
	}
	return stmt
}

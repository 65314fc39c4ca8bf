package desugar

import (
	"strconv"

	"monadic/internal/ast"
)

func id(name string) *ast.Ident { return &ast.Ident{Name: name} }

func num(n int) *ast.Literal { return &ast.Literal{Kind: ast.IntLit, Value: strconv.Itoa(n)} }

func qual(module, name string) *ast.QualifiedIdent {
	return &ast.QualifiedIdent{Module: module, Name: name}
}

func call(callee ast.Expr, args ...ast.Expr) *ast.CallExpr {
	return &ast.CallExpr{Callee: callee, Args: args}
}

func binary(op string, left, right ast.Expr) *ast.BinaryExpr {
	return &ast.BinaryExpr{Op: op, Left: left, Right: right}
}

func pipe(seed ast.Expr, stages ...ast.Expr) ast.Expr {
	acc := seed
	for _, stage := range stages {
		acc = binary("|>", acc, stage)
	}
	return acc
}

func bindStmt(name string, action ast.Expr) *ast.BindStmt {
	return &ast.BindStmt{Pattern: &ast.NamePattern{Name: name}, Action: action}
}

func letStmt(name string, value ast.Expr) *ast.LetStmt {
	return &ast.LetStmt{Bindings: []*ast.Binding{{Pattern: &ast.NamePattern{Name: name}, Value: value}}}
}

func plain(action ast.Expr) *ast.PlainStmt { return &ast.PlainStmt{Action: action} }

func ret(value ast.Expr) *ast.CallExpr { return call(id("return"), value) }

func doExpr(strategy string, stmts ...ast.Statement) *ast.DoExpr {
	return &ast.DoExpr{Strategy: ast.Ident{Name: strategy}, Block: ast.NewBlock(stmts...)}
}

// recording emits S.pipebind(acc, call) so the fold shape can be read back.
type recording struct{ Qualified }

func (r recording) PipeBind(acc ast.Expr, c *ast.CallExpr) ast.Expr {
	return call(qual(r.Module, "pipebind"), acc, c)
}

// countCalls counts calls to module.name anywhere in n.
func countCalls(n ast.Node, module, name string) int {
	count := 0
	ast.Inspect(n, func(node ast.Node) bool {
		if c, ok := node.(*ast.CallExpr); ok {
			if q, ok := c.Callee.(*ast.QualifiedIdent); ok && q.Module == module && q.Name == name {
				count++
			}
		}
		return true
	})
	return count
}

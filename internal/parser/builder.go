package parser

import (
	"strconv"

	"monadic/grammar"
	"monadic/internal/ast"
	"monadic/internal/errors"
)

// builder converts the participle parse tree into ast nodes.
type builder struct {
	errors []errors.CompilerError
}

func (b *builder) program(tree *grammar.Program) *ast.Program {
	program := &ast.Program{Pos: position(tree.Pos), EndPos: position(tree.EndPos)}
	for _, s := range tree.Statements {
		if s.Let != nil {
			program.Statements = append(program.Statements, b.letStmt(s.Let))
			continue
		}
		program.Statements = append(program.Statements, &ast.PlainStmt{
			Pos:    position(s.Pos),
			EndPos: position(s.EndPos),
			Action: b.expr(s.Expr),
		})
	}
	return program
}

func (b *builder) block(tree *grammar.Block) *ast.Block {
	if tree == nil {
		return nil
	}

	stmts := make([]ast.Statement, 0, len(tree.Statements))
	for _, s := range tree.Statements {
		switch {
		case s.Let != nil:
			stmts = append(stmts, b.letStmt(s.Let))
		case s.Bind != nil:
			stmts = append(stmts, &ast.BindStmt{
				Pos:     position(s.Pos),
				EndPos:  position(s.EndPos),
				Pattern: b.pattern(s.Bind.Pattern),
				Action:  b.expr(s.Bind.Action),
			})
		default:
			stmts = append(stmts, &ast.PlainStmt{
				Pos:    position(s.Pos),
				EndPos: position(s.EndPos),
				Action: b.expr(s.Expr),
			})
		}
	}

	block := ast.NewBlock(stmts...)
	block.Pos = position(tree.Pos)
	block.EndPos = position(tree.EndPos)
	return block
}

func (b *builder) letStmt(tree *grammar.LetStmt) *ast.LetStmt {
	stmt := &ast.LetStmt{Pos: position(tree.Pos), EndPos: position(tree.EndPos)}
	if tree.Group != nil {
		stmt.Grouped = true
		for _, binding := range tree.Group.Bindings {
			stmt.Bindings = append(stmt.Bindings, b.binding(binding))
		}
		return stmt
	}
	stmt.Bindings = []*ast.Binding{b.binding(tree.Binding)}
	return stmt
}

func (b *builder) binding(tree *grammar.Binding) *ast.Binding {
	return &ast.Binding{
		Pos:     position(tree.Pos),
		EndPos:  position(tree.EndPos),
		Pattern: b.pattern(tree.Pattern),
		Value:   b.expr(tree.Value),
	}
}

func (b *builder) pattern(tree *grammar.Pattern) ast.Pattern {
	pos, end := position(tree.Pos), position(tree.EndPos)

	switch {
	case tree.Wildcard:
		return &ast.WildcardPattern{Pos: pos, EndPos: end}
	case tree.Tuple != nil:
		return &ast.TuplePattern{Pos: pos, EndPos: end, Elems: b.patterns(tree.Tuple.Elems)}
	case tree.List != nil:
		return &ast.ListPattern{Pos: pos, EndPos: end, Elems: b.patterns(tree.List.Elems)}
	case tree.Bool != nil:
		return &ast.LiteralPattern{Pos: pos, EndPos: end, Literal: &ast.Literal{Pos: pos, EndPos: end, Kind: ast.BoolLit, Value: *tree.Bool}}
	case tree.Number != nil:
		return &ast.LiteralPattern{Pos: pos, EndPos: end, Literal: &ast.Literal{Pos: pos, EndPos: end, Kind: ast.IntLit, Value: *tree.Number}}
	case tree.Text != nil:
		return &ast.LiteralPattern{Pos: pos, EndPos: end, Literal: b.stringLit(*tree.Text, pos, end)}
	}
	return &ast.NamePattern{Pos: pos, EndPos: end, Name: *tree.Name}
}

func (b *builder) patterns(trees []*grammar.Pattern) []ast.Pattern {
	out := make([]ast.Pattern, len(trees))
	for i, p := range trees {
		out[i] = b.pattern(p)
	}
	return out
}

func (b *builder) expr(tree *grammar.Expr) ast.Expr {
	seq := &operatorSeq{operands: []ast.Expr{b.unary(tree.Left)}}
	for _, op := range tree.Ops {
		seq.ops = append(seq.ops, op.Operator)
		seq.operands = append(seq.operands, b.unary(op.Right))
	}
	return seq.climb(0)
}

func (b *builder) exprs(trees []*grammar.Expr) []ast.Expr {
	out := make([]ast.Expr, len(trees))
	for i, e := range trees {
		out[i] = b.expr(e)
	}
	return out
}

func (b *builder) unary(tree *grammar.UnaryExpr) ast.Expr {
	value := b.postfix(tree.Value)
	if tree.Operator == nil {
		return value
	}
	return &ast.UnaryExpr{
		Pos:    position(tree.Pos),
		EndPos: position(tree.EndPos),
		Op:     *tree.Operator,
		Value:  value,
	}
}

func (b *builder) postfix(tree *grammar.PostfixExpr) ast.Expr {
	expr := b.primary(tree.Primary)
	for _, call := range tree.Calls {
		expr = &ast.CallExpr{
			Pos:    expr.NodePos(),
			EndPos: position(call.EndPos),
			Callee: expr,
			Args:   b.exprs(call.Args),
		}
	}
	return expr
}

func (b *builder) primary(tree *grammar.PrimaryExpr) ast.Expr {
	pos, end := position(tree.Pos), position(tree.EndPos)

	switch {
	case tree.Do != nil:
		return &ast.DoExpr{
			Pos:      pos,
			EndPos:   end,
			Strategy: b.ident(tree.Do.Strategy),
			Block:    b.block(tree.Do.Block),
		}

	case tree.Pipe != nil:
		return &ast.PipeExpr{
			Pos:      pos,
			EndPos:   end,
			Strategy: b.ident(tree.Pipe.Strategy),
			Chain:    b.expr(tree.Pipe.Chain),
		}

	case tree.Fn != nil:
		return &ast.FuncLit{
			Pos:    pos,
			EndPos: end,
			Params: b.patterns(tree.Fn.Params),
			Body:   b.expr(tree.Fn.Body),
		}

	case tree.If != nil:
		return &ast.IfExpr{
			Pos:    pos,
			EndPos: end,
			Cond:   b.expr(tree.If.Cond),
			Then:   b.expr(tree.If.Then),
			Else:   b.expr(tree.If.Else),
		}

	case tree.Bool != nil:
		return &ast.Literal{Pos: pos, EndPos: end, Kind: ast.BoolLit, Value: *tree.Bool}

	case tree.Number != nil:
		return &ast.Literal{Pos: pos, EndPos: end, Kind: ast.IntLit, Value: *tree.Number}

	case tree.Text != nil:
		return b.stringLit(*tree.Text, pos, end)

	case tree.List != nil:
		return &ast.ListExpr{Pos: pos, EndPos: end, Elems: b.exprs(tree.List.Elems)}

	case tree.Tuple != nil:
		return &ast.TupleExpr{Pos: pos, EndPos: end, Elems: b.exprs(tree.Tuple.Elems)}

	case tree.Qualified != nil:
		return &ast.QualifiedIdent{Pos: pos, EndPos: end, Module: tree.Qualified.Module, Name: tree.Qualified.Name}

	case tree.Ident != nil:
		return &ast.Ident{Pos: pos, EndPos: end, Name: *tree.Ident}
	}

	return b.expr(tree.Parens)
}

func (b *builder) ident(tree grammar.PosIdent) ast.Ident {
	return ast.Ident{Pos: position(tree.Pos), EndPos: position(tree.EndPos), Name: tree.Value}
}

func (b *builder) stringLit(text string, pos, end ast.Position) *ast.Literal {
	value, err := strconv.Unquote(text)
	if err != nil {
		b.errors = append(b.errors, errors.NewDiagnostic(errors.ErrorSyntax, "invalid string literal "+text, pos).
			WithLength(len(text)).
			Build())
		value = text
	}
	return &ast.Literal{Pos: pos, EndPos: end, Kind: ast.StringLit, Value: value}
}

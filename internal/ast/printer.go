package ast

import (
	"fmt"
	"strconv"
	"strings"
)

func (p *Program) String() string {
	var b strings.Builder
	for _, stmt := range p.Statements {
		b.WriteString(stmt.String())
		b.WriteString("\n")
	}
	return b.String()
}

func (b *Binding) String() string {
	return fmt.Sprintf("%s = %s", b.Pattern.String(), b.Value.String())
}

func (b *Block) String() string {
	parts := make([]string, 0, b.Len())
	if b != nil {
		for _, stmt := range b.Statements {
			parts = append(parts, stmt.String())
		}
	}
	return "{ " + strings.Join(parts, "; ") + " }"
}

func (s *BindStmt) String() string {
	return fmt.Sprintf("%s <- %s", s.Pattern.String(), s.Action.String())
}

func (s *LetStmt) String() string {
	if !s.Grouped && len(s.Bindings) == 1 {
		return "let " + s.Bindings[0].String()
	}
	return "let { " + joinBindings(s.Bindings) + " }"
}

func (s *PlainStmt) String() string { return s.Action.String() }

func (s *TailStmt) String() string { return s.Expr.String() }

func (i *Ident) String() string { return i.Name }

func (l *Literal) String() string {
	if l.Kind == StringLit {
		return strconv.Quote(l.Value)
	}
	return l.Value
}

func (q *QualifiedIdent) String() string {
	return q.Module + "." + q.Name
}

func (c *CallExpr) String() string {
	return c.Callee.String() + "(" + joinExprs(c.Args) + ")"
}

func (u *UnaryExpr) String() string {
	return u.Op + operand(u.Value)
}

func (b *BinaryExpr) String() string {
	return operand(b.Left) + " " + b.Op + " " + operand(b.Right)
}

func (l *ListExpr) String() string {
	return "[" + joinExprs(l.Elems) + "]"
}

func (t *TupleExpr) String() string {
	return "{" + joinExprs(t.Elems) + "}"
}

func (f *FuncLit) String() string {
	params := make([]string, len(f.Params))
	for i, p := range f.Params {
		params[i] = p.String()
	}
	if len(params) == 0 {
		return "fn -> " + f.Body.String() + " end"
	}
	return "fn " + strings.Join(params, ", ") + " -> " + f.Body.String() + " end"
}

func (i *IfExpr) String() string {
	return fmt.Sprintf("if %s then %s else %s end", i.Cond.String(), i.Then.String(), i.Else.String())
}

func (l *LetExpr) String() string {
	return "let " + joinBindings(l.Bindings) + " in " + l.Body.String()
}

func (d *DoExpr) String() string {
	return "do " + d.Strategy.Name + " " + d.Block.String()
}

func (p *PipeExpr) String() string {
	return "pipe " + p.Strategy.Name + " (" + p.Chain.String() + ")"
}

func (s *Slot) String() string { return "$" + strconv.Itoa(s.ID) }

func (p *NamePattern) String() string { return p.Name }

func (*WildcardPattern) String() string { return "_" }

func (p *TuplePattern) String() string {
	return "{" + joinPatterns(p.Elems) + "}"
}

func (p *ListPattern) String() string {
	return "[" + joinPatterns(p.Elems) + "]"
}

func (p *LiteralPattern) String() string { return p.Literal.String() }

func (p *SlotPattern) String() string { return "$" + strconv.Itoa(p.ID) }

// operand parenthesizes nested operators so the printed form is unambiguous.
func operand(e Expr) string {
	switch e.(type) {
	case *BinaryExpr, *IfExpr, *LetExpr:
		return "(" + e.String() + ")"
	}
	return e.String()
}

func joinExprs(exprs []Expr) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = e.String()
	}
	return strings.Join(parts, ", ")
}

func joinPatterns(patterns []Pattern) string {
	parts := make([]string, len(patterns))
	for i, p := range patterns {
		parts[i] = p.String()
	}
	return strings.Join(parts, ", ")
}

func joinBindings(bindings []*Binding) string {
	parts := make([]string, len(bindings))
	for i, b := range bindings {
		parts[i] = b.String()
	}
	return strings.Join(parts, "; ")
}

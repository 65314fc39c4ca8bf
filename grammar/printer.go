package grammar

import (
	"math"
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// The printer renders a parse tree back to canonical source: one statement
// per line, blocks indented, no semicolons. A printer built by Format also
// carries the comments of the source and reproduces them; the String
// methods of the nodes print without comments.

func indent(level int) string {
	return strings.Repeat("    ", level)
}

type printer struct {
	// comments not yet printed, in source order
	comments []comment
	// layout keeps blank lines between items; set by Format
	layout bool
	// last source line printed, 0 before the first
	last int
}

// flush prints every pending comment that starts before line, each on its
// own line at level.
func (p *printer) flush(b *strings.Builder, line, level int) {
	for len(p.comments) > 0 && p.comments[0].line < line {
		c := p.comments[0]
		p.comments = p.comments[1:]
		p.gap(b, c.line)
		b.WriteString(indent(level) + c.text + "\n")
		p.last = c.line
	}
}

// trailing pops the comment that follows an item ending at end, if no
// other code sits between them.
func (p *printer) trailing(end lexer.Position) string {
	if len(p.comments) == 0 {
		return ""
	}
	if c := p.comments[0]; c.codeEnd == 0 || c.line != end.Line || c.codeEnd > end.Column {
		return ""
	}
	c := p.comments[0]
	p.comments = p.comments[1:]
	return " " + c.text
}

// gap keeps a single blank line where the source had one or more.
func (p *printer) gap(b *strings.Builder, line int) {
	if p.layout && p.last > 0 && line > p.last+1 {
		b.WriteString("\n")
	}
}

// item prints one line-oriented element: the comments before it, the gap,
// the text and a trailing comment.
func (p *printer) item(b *strings.Builder, start int, end lexer.Position, level int, text func() string) {
	p.flush(b, start, level)
	p.gap(b, start)
	p.last = start
	b.WriteString(indent(level) + text())
	p.last = end.Line
	b.WriteString(p.trailing(end) + "\n")
}

func (p *printer) program(prog *Program) string {
	var b strings.Builder
	for _, s := range prog.Statements {
		p.item(&b, s.Pos.Line, s.EndPos, 0, func() string { return p.topStatement(s, 0) })
	}
	p.flush(&b, math.MaxInt, 0)
	return b.String()
}

func (p *printer) topStatement(s *TopStatement, level int) string {
	if s.Let != nil {
		return p.let(s.Let, level)
	}
	return p.expr(s.Expr, level)
}

func (p *printer) statement(s *Statement, level int) string {
	switch {
	case s.Let != nil:
		return p.let(s.Let, level)
	case s.Bind != nil:
		return s.Bind.Pattern.String() + " <- " + p.expr(s.Bind.Action, level)
	}
	return p.expr(s.Expr, level)
}

func (p *printer) let(l *LetStmt, level int) string {
	if l.Binding != nil {
		return "let " + p.binding(l.Binding, level)
	}
	var b strings.Builder
	b.WriteString("let {\n")
	for _, binding := range l.Group.Bindings {
		p.item(&b, binding.Pos.Line, binding.EndPos, level+1, func() string { return p.binding(binding, level+1) })
	}
	p.flush(&b, l.Group.EndPos.Line, level+1)
	b.WriteString(indent(level) + "}")
	return b.String()
}

func (p *printer) binding(b *Binding, level int) string {
	return b.Pattern.String() + " = " + p.expr(b.Value, level)
}

func (p *printer) block(blk *Block, level int) string {
	if len(blk.Statements) == 0 && !p.pendingBefore(blk.EndPos.Line) {
		return "{}"
	}
	var b strings.Builder
	b.WriteString("{\n")
	for _, s := range blk.Statements {
		p.item(&b, s.Pos.Line, s.EndPos, level+1, func() string { return p.statement(s, level+1) })
	}
	p.flush(&b, blk.EndPos.Line, level+1)
	b.WriteString(indent(level) + "}")
	return b.String()
}

func (p *printer) pendingBefore(line int) bool {
	return len(p.comments) > 0 && p.comments[0].line < line
}

func (p *printer) expr(e *Expr, level int) string {
	var b strings.Builder
	b.WriteString(p.unary(e.Left, level))
	for _, op := range e.Ops {
		b.WriteString(" " + op.Operator + " " + p.unary(op.Right, level))
	}
	return b.String()
}

func (p *printer) unary(u *UnaryExpr, level int) string {
	if u.Operator != nil {
		return *u.Operator + p.postfix(u.Value, level)
	}
	return p.postfix(u.Value, level)
}

func (p *printer) postfix(pf *PostfixExpr, level int) string {
	var b strings.Builder
	b.WriteString(p.primary(pf.Primary, level))
	for _, c := range pf.Calls {
		b.WriteString("(" + p.exprs(c.Args, level) + ")")
	}
	return b.String()
}

func (p *printer) primary(pe *PrimaryExpr, level int) string {
	switch {
	case pe.Do != nil:
		if pe.Do.Block == nil {
			return "do " + pe.Do.Strategy.Value
		}
		return "do " + pe.Do.Strategy.Value + " " + p.block(pe.Do.Block, level)
	case pe.Pipe != nil:
		return "pipe " + pe.Pipe.Strategy.Value + " (" + p.expr(pe.Pipe.Chain, level) + ")"
	case pe.Fn != nil:
		if len(pe.Fn.Params) == 0 {
			return "fn -> " + p.expr(pe.Fn.Body, level) + " end"
		}
		return "fn " + joinPatterns(pe.Fn.Params) + " -> " + p.expr(pe.Fn.Body, level) + " end"
	case pe.If != nil:
		return "if " + p.expr(pe.If.Cond, level) +
			" then " + p.expr(pe.If.Then, level) +
			" else " + p.expr(pe.If.Else, level) + " end"
	case pe.Bool != nil:
		return *pe.Bool
	case pe.Number != nil:
		return *pe.Number
	case pe.Text != nil:
		return *pe.Text
	case pe.List != nil:
		return "[" + p.exprs(pe.List.Elems, level) + "]"
	case pe.Tuple != nil:
		return "{" + p.exprs(pe.Tuple.Elems, level) + "}"
	case pe.Qualified != nil:
		return pe.Qualified.Module + "." + pe.Qualified.Name
	case pe.Ident != nil:
		return *pe.Ident
	case pe.Parens != nil:
		return "(" + p.expr(pe.Parens, level) + ")"
	}
	return ""
}

func (p *printer) exprs(exprs []*Expr, level int) string {
	parts := make([]string, len(exprs))
	for i, e := range exprs {
		parts[i] = p.expr(e, level)
	}
	return strings.Join(parts, ", ")
}

func (prog *Program) String() string {
	return (&printer{}).program(prog)
}

func (s *TopStatement) StringWithIndent(level int) string {
	return (&printer{}).topStatement(s, level)
}

func (s *Statement) StringWithIndent(level int) string {
	return (&printer{}).statement(s, level)
}

func (l *LetStmt) StringWithIndent(level int) string {
	return (&printer{}).let(l, level)
}

func (b *Binding) StringWithIndent(level int) string {
	return (&printer{}).binding(b, level)
}

func (b *Block) StringWithIndent(level int) string {
	return (&printer{}).block(b, level)
}

func (e *Expr) StringWithIndent(level int) string {
	return (&printer{}).expr(e, level)
}

func (e *Expr) String() string {
	return e.StringWithIndent(0)
}

func (u *UnaryExpr) StringWithIndent(level int) string {
	return (&printer{}).unary(u, level)
}

func (pf *PostfixExpr) StringWithIndent(level int) string {
	return (&printer{}).postfix(pf, level)
}

func (pe *PrimaryExpr) StringWithIndent(level int) string {
	return (&printer{}).primary(pe, level)
}

func (pat *Pattern) String() string {
	switch {
	case pat.Wildcard:
		return "_"
	case pat.Tuple != nil:
		return "{" + joinPatterns(pat.Tuple.Elems) + "}"
	case pat.List != nil:
		return "[" + joinPatterns(pat.List.Elems) + "]"
	case pat.Bool != nil:
		return *pat.Bool
	case pat.Number != nil:
		return *pat.Number
	case pat.Text != nil:
		return *pat.Text
	case pat.Name != nil:
		return *pat.Name
	}
	return ""
}

func joinPatterns(patterns []*Pattern) string {
	parts := make([]string, len(patterns))
	for i, pat := range patterns {
		parts[i] = pat.String()
	}
	return strings.Join(parts, ", ")
}

package ast

type Expr interface {
	Node
	isExpr()
}

// Ident is an unqualified name.
// Example: "x", "return", "double"
type Ident struct {
	Pos    Position
	EndPos Position
	Name   string
}

// Literal is an integer, string or boolean constant. Value holds the
// decimal digits, the unquoted string, or "true"/"false".
type Literal struct {
	Pos    Position
	EndPos Position
	Kind   LiteralKind
	Value  string
}

// QualifiedIdent names an operation of a strategy module.
// Example: "maybe.just", "state.get"
type QualifiedIdent struct {
	Pos    Position
	EndPos Position
	Module string
	Name   string
}

// CallExpr applies a callee to arguments.
// Example: "f(x, 1)", "maybe.bind(m, fn x -> x end)"
type CallExpr struct {
	Pos    Position
	EndPos Position
	Callee Expr
	Args   []Expr
}

// UnaryExpr example: "-x", "!ok"
type UnaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Value  Expr
}

// BinaryExpr example: "x * y", "a |> f(b)"
type BinaryExpr struct {
	Pos    Position
	EndPos Position
	Op     string
	Left   Expr
	Right  Expr
}

// ListExpr example: "[1, 2, 3]"
type ListExpr struct {
	Pos    Position
	EndPos Position
	Elems  []Expr
}

// TupleExpr example: "{value, state}"
type TupleExpr struct {
	Pos    Position
	EndPos Position
	Elems  []Expr
}

// FuncLit is an anonymous function. Each parameter is a pattern.
// Example: "fn x -> x * 2 end", "fn {a, b}, c -> a + b + c end"
type FuncLit struct {
	Pos    Position
	EndPos Position
	Params []Pattern
	Body   Expr
}

// IfExpr example: "if x > 0 then x else -x end"
type IfExpr struct {
	Pos    Position
	EndPos Position
	Cond   Expr
	Then   Expr
	Else   Expr
}

// LetExpr evaluates its bindings in order in the surrounding scope and then
// its body. It is what a let statement becomes once a block is expanded.
type LetExpr struct {
	Pos      Position
	EndPos   Position
	Bindings []*Binding
	Body     Expr
}

// DoExpr is an unexpanded do-block for the named strategy.
// Example: "do maybe { x <- maybe.just(2); return(x) }"
type DoExpr struct {
	Pos      Position
	EndPos   Position
	Strategy Ident
	Block    *Block
}

// PipeExpr is an unexpanded strategy pipeline.
// Example: "pipe maybe (maybe.just(8) |> half())"
type PipeExpr struct {
	Pos      Position
	EndPos   Position
	Strategy Ident
	Chain    Expr
}

// Slot references a parameter introduced by the desugarer. Slots have no
// surface syntax, so they cannot collide with program identifiers.
type Slot struct {
	Pos    Position
	EndPos Position
	ID     int
}

func (*Ident) isExpr()          {}
func (*Literal) isExpr()        {}
func (*QualifiedIdent) isExpr() {}
func (*CallExpr) isExpr()       {}
func (*UnaryExpr) isExpr()      {}
func (*BinaryExpr) isExpr()     {}
func (*ListExpr) isExpr()       {}
func (*TupleExpr) isExpr()      {}
func (*FuncLit) isExpr()        {}
func (*IfExpr) isExpr()         {}
func (*LetExpr) isExpr()        {}
func (*DoExpr) isExpr()         {}
func (*PipeExpr) isExpr()       {}
func (*Slot) isExpr()           {}

// IsPipe reports whether e is a `|>` chain.
func IsPipe(e Expr) bool {
	b, ok := e.(*BinaryExpr)
	return ok && b.Op == "|>"
}

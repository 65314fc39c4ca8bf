package ast

// Statement is one element of a do-block. The variant set is closed:
// BindStmt, LetStmt, PlainStmt and TailStmt.
type Statement interface {
	Node
	isStatement()
}

// BindStmt extracts the value of Action and binds it to Pattern.
// Example: "x <- maybe.just(2)"
type BindStmt struct {
	Pos     Position
	EndPos  Position
	Pattern Pattern
	Action  Expr
}

// LetStmt holds ordinary bindings. Grouped is set for the braced form.
// Example: "let x = 2", "let { a = 1; b = 2 }"
type LetStmt struct {
	Pos      Position
	EndPos   Position
	Bindings []*Binding
	Grouped  bool
}

// PlainStmt is evaluated for its effect; its value is discarded.
// Example: "state.put(x + 1)"
type PlainStmt struct {
	Pos    Position
	EndPos Position
	Action Expr
}

// TailStmt is the final expression of a block.
type TailStmt struct {
	Pos    Position
	EndPos Position
	Expr   Expr
}

func (*BindStmt) isStatement()  {}
func (*LetStmt) isStatement()   {}
func (*PlainStmt) isStatement() {}
func (*TailStmt) isStatement()  {}

// Block is the ordered statement sequence of a do-block. In a well-formed
// block the last statement is a TailStmt and all others are BindStmt,
// LetStmt or PlainStmt.
type Block struct {
	Pos        Position
	EndPos     Position
	Statements []Statement
}

// NewBlock builds a block from parsed statements, turning a trailing
// PlainStmt into the block's TailStmt. Other trailing forms are kept as they
// are so the expander can reject them.
func NewBlock(stmts ...Statement) *Block {
	out := make([]Statement, len(stmts))
	copy(out, stmts)

	b := &Block{Statements: out}
	if len(out) == 0 {
		return b
	}

	if plain, ok := out[len(out)-1].(*PlainStmt); ok {
		out[len(out)-1] = &TailStmt{Pos: plain.Pos, EndPos: plain.EndPos, Expr: plain.Action}
	}

	b.Pos = out[0].NodePos()
	b.EndPos = out[len(out)-1].NodeEndPos()
	return b
}

// Len returns the number of statements; a nil block has none.
func (b *Block) Len() int {
	if b == nil {
		return 0
	}
	return len(b.Statements)
}

// Last returns the final statement, or nil for an empty block.
func (b *Block) Last() Statement {
	if b.Len() == 0 {
		return nil
	}
	return b.Statements[len(b.Statements)-1]
}

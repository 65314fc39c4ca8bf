package ast

// Pattern is the left-hand side of a binding. The desugarer relocates
// patterns without looking inside them; the evaluator matches them.
type Pattern interface {
	Node
	isPattern()
}

// NamePattern binds the whole value.
type NamePattern struct {
	Pos    Position
	EndPos Position
	Name   string
}

// WildcardPattern matches anything and binds nothing: "_"
type WildcardPattern struct {
	Pos    Position
	EndPos Position
}

// TuplePattern example: "{value, state}"
type TuplePattern struct {
	Pos    Position
	EndPos Position
	Elems  []Pattern
}

// ListPattern matches a list of exactly len(Elems) elements: "[a, b]"
type ListPattern struct {
	Pos    Position
	EndPos Position
	Elems  []Pattern
}

// LiteralPattern matches an equal constant.
type LiteralPattern struct {
	Pos     Position
	EndPos  Position
	Literal *Literal
}

// SlotPattern binds a desugarer-introduced Slot.
type SlotPattern struct {
	Pos    Position
	EndPos Position
	ID     int
}

func (*NamePattern) isPattern()     {}
func (*WildcardPattern) isPattern() {}
func (*TuplePattern) isPattern()    {}
func (*ListPattern) isPattern()     {}
func (*LiteralPattern) isPattern()  {}
func (*SlotPattern) isPattern()     {}

package ast

// Position tracks location information for error reporting and tooling
type Position struct {
	Filename string
	Offset   int
	Line     int
	Column   int
}

// Program is a parsed source file: top-level let bindings and expressions
// evaluated in order.
// Example: "let half = fn x -> x / 2 end\nhalf(8)"
type Program struct {
	Pos        Position
	EndPos     Position
	Statements []Statement
}

// Binding is one `pattern = value` pair of a let statement.
// Example: "x = 2", "{a, b} = pair"
type Binding struct {
	Pos     Position
	EndPos  Position
	Pattern Pattern
	Value   Expr
}

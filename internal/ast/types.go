package ast

type NodeType int

const (
	ILLEGAL NodeType = iota

	PROGRAM
	BINDING

	// Statements
	BLOCK
	BIND_STMT
	LET_STMT
	PLAIN_STMT
	TAIL_STMT

	// Expressions
	IDENT
	LITERAL
	QUALIFIED_IDENT
	CALL_EXPR
	UNARY_EXPR
	BINARY_EXPR
	LIST_EXPR
	TUPLE_EXPR
	FUNC_LIT
	IF_EXPR
	LET_EXPR
	DO_EXPR
	PIPE_EXPR
	SLOT

	// Patterns
	NAME_PATTERN
	WILDCARD_PATTERN
	TUPLE_PATTERN
	LIST_PATTERN
	LITERAL_PATTERN
	SLOT_PATTERN
)

var nodeTypeNames = [...]string{
	ILLEGAL:          "ILLEGAL",
	PROGRAM:          "PROGRAM",
	BINDING:          "BINDING",
	BLOCK:            "BLOCK",
	BIND_STMT:        "BIND_STMT",
	LET_STMT:         "LET_STMT",
	PLAIN_STMT:       "PLAIN_STMT",
	TAIL_STMT:        "TAIL_STMT",
	IDENT:            "IDENT",
	LITERAL:          "LITERAL",
	QUALIFIED_IDENT:  "QUALIFIED_IDENT",
	CALL_EXPR:        "CALL_EXPR",
	UNARY_EXPR:       "UNARY_EXPR",
	BINARY_EXPR:      "BINARY_EXPR",
	LIST_EXPR:        "LIST_EXPR",
	TUPLE_EXPR:       "TUPLE_EXPR",
	FUNC_LIT:         "FUNC_LIT",
	IF_EXPR:          "IF_EXPR",
	LET_EXPR:         "LET_EXPR",
	DO_EXPR:          "DO_EXPR",
	PIPE_EXPR:        "PIPE_EXPR",
	SLOT:             "SLOT",
	NAME_PATTERN:     "NAME_PATTERN",
	WILDCARD_PATTERN: "WILDCARD_PATTERN",
	TUPLE_PATTERN:    "TUPLE_PATTERN",
	LIST_PATTERN:     "LIST_PATTERN",
	LITERAL_PATTERN:  "LITERAL_PATTERN",
	SLOT_PATTERN:     "SLOT_PATTERN",
}

func (t NodeType) String() string {
	if int(t) < len(nodeTypeNames) {
		return nodeTypeNames[t]
	}
	return "ILLEGAL"
}

// LiteralKind distinguishes the literal forms.
type LiteralKind int

const (
	IntLit LiteralKind = iota
	StringLit
	BoolLit
)

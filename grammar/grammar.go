package grammar

import (
	"github.com/alecthomas/participle/v2/lexer"
)

type Program struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Statements []*TopStatement `@@*`
}

// TopStatement is a top-level let or expression. Binding with "<-" is only
// meaningful inside a do-block.
type TopStatement struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Let    *LetStmt `( @@`
	Expr   *Expr    `| @@ ) [ ";" ]`
}

type PosIdent struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Value  string `@Ident`
}

type Block struct {
	Pos        lexer.Position
	EndPos     lexer.Position
	Open       string       `@"{"`
	Statements []*Statement `@@* "}"`
}

type Statement struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Let    *LetStmt  `( @@`
	Bind   *BindStmt `| @@`
	Expr   *Expr     `| @@ ) [ ";" ]`
}

type BindStmt struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Pattern *Pattern `@@ "<-"`
	Action  *Expr    `@@`
}

type LetStmt struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Group   *LetGroup `"let" ( @@`
	Binding *Binding  `| @@ )`
}

type LetGroup struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Open     string     `@"{"`
	Bindings []*Binding `@@ { [ ";" ] @@ } [ ";" ] "}"`
}

type Binding struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Pattern *Pattern `@@ "="`
	Value   *Expr    `@@`
}

type Pattern struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Wildcard bool          `(  @"_"`
	Tuple    *TuplePattern `| @@`
	List     *ListPattern  `| @@`
	Bool     *string       `| @("true" | "false")`
	Number   *string       `| @Integer`
	Text     *string       `| @String`
	Name     *string       `| @Ident )`
}

type TuplePattern struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Open   string     `@"{"`
	Elems  []*Pattern `[ @@ { "," @@ } ] "}"`
}

type ListPattern struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Open   string     `@"["`
	Elems  []*Pattern `[ @@ { "," @@ } ] "]"`
}

// Expr is a flat operator sequence; precedence is resolved when the tree is
// converted to ast.
type Expr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Left   *UnaryExpr `@@`
	Ops    []*BinOp   `{ @@ }`
}

type BinOp struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator string     `@("|>" | "||" | "&&" | "==" | "!=" | "<=" | ">=" | "<" | ">" | "++" | "+" | "-" | "*" | "/")`
	Right    *UnaryExpr `@@`
}

type UnaryExpr struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Operator *string      `[ @("-" | "!") ]`
	Value    *PostfixExpr `@@`
}

type PostfixExpr struct {
	Pos     lexer.Position
	EndPos  lexer.Position
	Primary *PrimaryExpr  `@@`
	Calls   []*CallSuffix `{ @@ }`
}

type CallSuffix struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Open   string  `@"("`
	Args   []*Expr `[ @@ { "," @@ } ] ")"`
}

type PrimaryExpr struct {
	Pos       lexer.Position
	EndPos    lexer.Position
	Do        *DoExpr        `  @@`
	Pipe      *PipeExpr      `| @@`
	Fn        *FnExpr        `| @@`
	If        *IfExpr        `| @@`
	Bool      *string        `| @("true" | "false")`
	Number    *string        `| @Integer`
	Text      *string        `| @String`
	List      *ListExpr      `| @@`
	Tuple     *TupleExpr     `| @@`
	Qualified *QualifiedName `| @@`
	Ident     *string        `| @Ident`
	Parens    *Expr          `| "(" @@ ")"`
}

type DoExpr struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Strategy PosIdent `"do" @@`
	Block    *Block   `[ @@ ]`
}

type PipeExpr struct {
	Pos      lexer.Position
	EndPos   lexer.Position
	Strategy PosIdent `"pipe" @@`
	Chain    *Expr    `"(" @@ ")"`
}

type FnExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Params []*Pattern `"fn" [ @@ { "," @@ } ] "->"`
	Body   *Expr      `@@ "end"`
}

type IfExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Cond   *Expr `"if" @@`
	Then   *Expr `"then" @@`
	Else   *Expr `"else" @@ "end"`
}

type ListExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Open   string  `@"["`
	Elems  []*Expr `[ @@ { "," @@ } ] "]"`
}

type TupleExpr struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Open   string  `@"{"`
	Elems  []*Expr `[ @@ { "," @@ } ] "}"`
}

type QualifiedName struct {
	Pos    lexer.Position
	EndPos lexer.Position
	Module string `@Ident "."`
	Name   string `@Ident`
}

package desugar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monadic/internal/ast"
	"monadic/internal/errors"
)

var strategies = []string{"maybe", "either", "result", "state", "reader", "writer"}

func TestDesugarerNestedStrategies(t *testing.T) {
	inner := doExpr("either",
		bindStmt("y", call(qual("either", "right"), id("x"))),
		plain(ret(id("y"))),
	)
	outer := doExpr("maybe",
		bindStmt("x", call(qual("maybe", "just"), num(1))),
		plain(inner),
	)

	d := New(strategies)
	out := d.Expr(outer)
	require.False(t, d.HasErrors())
	assert.Equal(t,
		"maybe.bind(maybe.just(1), fn x -> either.bind(either.right(x), fn y -> either.return(y) end) end)",
		out.String())
}

func TestDesugarerPipeInsideDo(t *testing.T) {
	block := doExpr("maybe",
		bindStmt("x", &ast.PipeExpr{
			Strategy: ast.Ident{Name: "maybe"},
			Chain:    pipe(call(qual("maybe", "just"), num(8)), call(id("half"))),
		}),
		plain(ret(binary("|>", id("x"), call(id("add"), num(1))))),
	)

	d := New(strategies)
	out := d.Expr(block)
	require.Empty(t, d.Errors())
	assert.Equal(t,
		"maybe.bind(maybe.bind(maybe.just(8), fn $1 -> half($1) end), fn x -> maybe.return(add(x, 1)) end)",
		out.String())
}

func TestDesugarerProgram(t *testing.T) {
	program := &ast.Program{Statements: []ast.Statement{
		letStmt("prog", doExpr("state",
			bindStmt("x", call(qual("state", "get"))),
			plain(call(qual("state", "put"), binary("+", id("x"), num(1)))),
			plain(ret(binary("*", id("x"), num(10)))),
		)),
		plain(call(qual("state", "run"), num(4), id("prog"))),
	}}
	before := program.String()

	out, errs := New(strategies).Program(program)
	require.Empty(t, errs)
	assert.Equal(t,
		"let prog = state.bind(state.get(), fn x -> state.bind(state.put(x + 1), fn _ -> state.return(x * 10) end) end)\nstate.run(4, prog)\n",
		out.String())
	assert.Equal(t, before, program.String())
}

func TestDesugarerCollectsDiagnostics(t *testing.T) {
	pos := ast.Position{Line: 3, Column: 7}
	program := &ast.Program{Statements: []ast.Statement{
		plain(&ast.DoExpr{Pos: pos, Strategy: ast.Ident{Name: "maybe"}, Block: ast.NewBlock()}),
		plain(&ast.DoExpr{
			Strategy: ast.Ident{Name: "maybi", Pos: ast.Position{Line: 5, Column: 4}},
			Block: ast.NewBlock(
				// still visited although the outer block cannot be expanded
				plain(&ast.PipeExpr{Strategy: ast.Ident{Name: "maybe"}, Chain: id("a")}),
			),
		}),
		plain(doExpr("maybe", bindStmt("x", id("a")))),
	}}

	out, errs := New(strategies).Program(program)
	require.Len(t, errs, 4)

	assert.Equal(t, errors.ErrorMissingBlock, errs[0].Code)
	assert.Equal(t, pos, errs[0].Position)

	assert.Equal(t, errors.ErrorUnknownStrategy, errs[1].Code)
	assert.Equal(t, 5, errs[1].Position.Line)
	require.NotEmpty(t, errs[1].Suggestions)
	assert.Contains(t, errs[1].Suggestions[0].Message, "did you mean 'maybe'")

	assert.Equal(t, errors.ErrorMissingPipeline, errs[2].Code)
	assert.Equal(t, errors.ErrorTrailingBind, errs[3].Code)

	// Constructs that failed are left in place.
	assert.IsType(t, &ast.DoExpr{}, out.Statements[0].(*ast.PlainStmt).Action)
}

func TestDesugarerThreadsPlainPipes(t *testing.T) {
	d := New(strategies)
	out := d.Expr(pipe(num(2), call(id("add"), num(1)), call(id("mul"), num(3))))
	assert.Equal(t, "mul(add(2, 1), 3)", out.String())
	assert.False(t, d.HasErrors())
}

package desugar

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monadic/internal/ast"
	"monadic/internal/errors"
)

var s = NewQualified("S", ast.Position{})

func TestExpandBindChain(t *testing.T) {
	block := ast.NewBlock(
		bindStmt("x", id("a")),
		bindStmt("y", id("b")),
		plain(ret(call(id("f"), id("x"), id("y")))),
	)

	expr, err := Expand(s, block)
	require.NoError(t, err)
	assert.Equal(t, "S.bind(a, fn x -> S.bind(b, fn y -> S.return(f(x, y)) end) end)", expr.String())
}

func TestExpandAnyStrategy(t *testing.T) {
	for _, name := range []string{"maybe", "state", "writer"} {
		block := ast.NewBlock(bindStmt("x", id("a")), plain(ret(id("x"))))
		expr, err := Expand(NewQualified(name, ast.Position{}), block)
		require.NoError(t, err)
		assert.Equal(t, name+".bind(a, fn x -> "+name+".return(x) end)", expr.String())
	}
}

func TestExpandLetTransparency(t *testing.T) {
	block := ast.NewBlock(letStmt("x", num(2)), plain(ret(id("x"))))

	expr, err := Expand(s, block)
	require.NoError(t, err)
	assert.Equal(t, "let x = 2 in S.return(x)", expr.String())
	assert.Zero(t, countCalls(expr, "S", "bind"))

	let, ok := expr.(*ast.LetExpr)
	require.True(t, ok)
	original := block.Statements[0].(*ast.LetStmt).Bindings[0]
	assert.Same(t, original.Pattern, let.Bindings[0].Pattern)
	assert.Same(t, original.Value, let.Bindings[0].Value)
}

func TestExpandMergesConsecutiveLets(t *testing.T) {
	block := ast.NewBlock(
		letStmt("x", num(1)),
		&ast.LetStmt{Grouped: true, Bindings: []*ast.Binding{
			{Pattern: &ast.NamePattern{Name: "y"}, Value: num(2)},
			{Pattern: &ast.NamePattern{Name: "z"}, Value: num(3)},
		}},
		plain(ret(binary("+", id("x"), id("y")))),
	)

	expr, err := Expand(s, block)
	require.NoError(t, err)
	assert.Equal(t, "let x = 1; y = 2; z = 3 in S.return(x + y)", expr.String())
}

func TestExpandLetBetweenBinds(t *testing.T) {
	block := ast.NewBlock(
		bindStmt("x", id("a")),
		letStmt("y", call(id("double"), id("x"))),
		bindStmt("z", id("b")),
		plain(ret(binary("*", id("y"), id("z")))),
	)

	expr, err := Expand(s, block)
	require.NoError(t, err)
	assert.Equal(t, "S.bind(a, fn x -> let y = double(x) in S.bind(b, fn z -> S.return(y * z) end) end)", expr.String())
	assert.Equal(t, 2, countCalls(expr, "S", "bind"))
}

func TestExpandPlainStatement(t *testing.T) {
	block := ast.NewBlock(
		plain(call(qual("state", "put"), num(1))),
		plain(ret(num(2))),
	)

	expr, err := Expand(s, block)
	require.NoError(t, err)
	assert.Equal(t, "S.bind(state.put(1), fn _ -> S.return(2) end)", expr.String())

	fn := expr.(*ast.CallExpr).Args[1].(*ast.FuncLit)
	assert.IsType(t, &ast.WildcardPattern{}, fn.Params[0])
}

func TestExpandSingleStatement(t *testing.T) {
	tail := id("a")
	expr, err := Expand(s, ast.NewBlock(plain(tail)))
	require.NoError(t, err)
	assert.Same(t, tail, expr)

	// A block built without NewBlock may end in a plain statement.
	expr, err = Expand(s, &ast.Block{Statements: []ast.Statement{plain(tail)}})
	require.NoError(t, err)
	assert.Same(t, tail, expr)
}

func TestExpandPatternIsRelocated(t *testing.T) {
	pattern := &ast.TuplePattern{Elems: []ast.Pattern{&ast.NamePattern{Name: "v"}, &ast.WildcardPattern{}}}
	block := ast.NewBlock(&ast.BindStmt{Pattern: pattern, Action: id("a")}, plain(ret(id("v"))))

	expr, err := Expand(s, block)
	require.NoError(t, err)

	fn := expr.(*ast.CallExpr).Args[1].(*ast.FuncLit)
	assert.Same(t, pattern, fn.Params[0])
}

func TestExpandDoesNotMutateBlock(t *testing.T) {
	block := ast.NewBlock(
		bindStmt("x", call(id("get"))),
		plain(call(id("put"), binary("+", id("x"), num(1)))),
		plain(ret(binary("*", id("x"), num(10)))),
	)
	before := block.String()

	_, err := Expand(s, block)
	require.NoError(t, err)
	assert.Equal(t, before, block.String())
	assert.Equal(t, "{ x <- get(); put(x + 1); return(x * 10) }", block.String())
}

func TestExpandDiagnostics(t *testing.T) {
	tests := []struct {
		name  string
		block *ast.Block
		code  string
	}{
		{"nil block", nil, errors.ErrorMissingBlock},
		{"empty block", ast.NewBlock(), errors.ErrorMissingBlock},
		{"bind as only statement", ast.NewBlock(bindStmt("x", id("a"))), errors.ErrorTrailingBind},
		{"bind as last statement", ast.NewBlock(plain(id("a")), bindStmt("x", id("b"))), errors.ErrorTrailingBind},
		{"let as last statement", ast.NewBlock(bindStmt("x", id("a")), letStmt("y", id("x"))), errors.ErrorTrailingLet},
		{"return with two arguments", ast.NewBlock(bindStmt("x", id("a")), plain(call(id("return"), id("x"), num(1)))), errors.ErrorReturnArity},
		{"nested return with two arguments", ast.NewBlock(plain(call(id("f"), call(id("return"), num(1), num(2))))), errors.ErrorReturnArity},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := Expand(s, tt.block)
			assert.Nil(t, expr)

			var ce errors.CompilerError
			require.ErrorAs(t, err, &ce)
			assert.Equal(t, tt.code, ce.Code)
		})
	}
}

func TestMissingBlockNamesStrategy(t *testing.T) {
	_, err := Expand(NewQualified("maybe", ast.Position{}), ast.NewBlock())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "do maybe requires a block")
}

func TestReturnArityFix(t *testing.T) {
	bad := &ast.CallExpr{
		Pos:    ast.Position{Offset: 10, Line: 1, Column: 11},
		EndPos: ast.Position{Offset: 22, Line: 1, Column: 23},
		Callee: id("return"),
		Args:   []ast.Expr{id("a"), id("b")},
	}
	_, err := Expand(s, ast.NewBlock(plain(bad)))

	var ce errors.CompilerError
	require.ErrorAs(t, err, &ce)
	assert.Equal(t, "return takes one argument, got 2", ce.Message)
	assert.Equal(t, bad.Pos, ce.Position)
	require.Len(t, ce.Suggestions, 1)
	assert.Equal(t, "return({a, b})", ce.Suggestions[0].Replacement)
	assert.Equal(t, 12, ce.Suggestions[0].Length)
}

func TestMissingBlockFixReplacesBraces(t *testing.T) {
	block := ast.NewBlock()
	block.Pos = ast.Position{Offset: 9, Line: 1, Column: 10}
	block.EndPos = ast.Position{Offset: 11, Line: 1, Column: 12}

	_, err := Expand(NewQualified("maybe", ast.Position{}), block)
	var ce errors.CompilerError
	require.ErrorAs(t, err, &ce)
	require.Len(t, ce.Suggestions, 1)
	assert.Equal(t, "{ maybe.return({}) }", ce.Suggestions[0].Replacement)
	assert.Equal(t, block.Pos, ce.Suggestions[0].Position)
	assert.Equal(t, 2, ce.Suggestions[0].Length)
}

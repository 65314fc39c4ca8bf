package grammar_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monadic/grammar"
)

func TestMaybeExample(t *testing.T) {
	program, err := grammar.ParseFile(`../examples/maybe.mo`)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	require.Len(t, program.Statements, 3)

	product := program.Statements[0].Let
	require.NotNil(t, product)
	require.NotNil(t, product.Binding)
	assert.Equal(t, "product", *product.Binding.Pattern.Name)

	do := product.Binding.Value.Left.Value.Primary.Do
	require.NotNil(t, do)
	assert.Equal(t, "maybe", do.Strategy.Value)
	require.NotNil(t, do.Block)
	require.Len(t, do.Block.Statements, 3)

	first := do.Block.Statements[0].Bind
	require.NotNil(t, first)
	assert.Equal(t, "x", *first.Pattern.Name)
	assert.Equal(t, "maybe.just(2)", first.Action.String())

	tail := do.Block.Statements[2]
	assert.Nil(t, tail.Bind)
	require.NotNil(t, tail.Expr)
	assert.Equal(t, "return(x * y)", tail.Expr.String())

	last := program.Statements[2].Expr
	require.NotNil(t, last)
	require.NotNil(t, last.Left.Value.Primary.Tuple)
	assert.Len(t, last.Left.Value.Primary.Tuple.Elems, 2)
}

func TestAllExamplesParse(t *testing.T) {
	files, err := filepath.Glob("../examples/*.mo")
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			program, err := grammar.ParseFile(file)
			require.NoError(t, err)
			assert.NotEmpty(t, program.Statements)
		})
	}
}

func TestStatementForms(t *testing.T) {
	program, err := grammar.ParseString("test.mo", `do state {
		{a, _} <- state.get();
		let y = 3
		let { p = 1; q = 2 }
		state.put(a)
		return(y)
	}`)
	require.NoError(t, err)

	block := program.Statements[0].Expr.Left.Value.Primary.Do.Block
	require.Len(t, block.Statements, 5)

	bind := block.Statements[0].Bind
	require.NotNil(t, bind)
	require.NotNil(t, bind.Pattern.Tuple)
	assert.Equal(t, "{a, _}", bind.Pattern.String())
	assert.True(t, bind.Pattern.Tuple.Elems[1].Wildcard)

	single := block.Statements[1].Let
	require.NotNil(t, single.Binding)
	assert.Nil(t, single.Group)

	group := block.Statements[2].Let
	require.NotNil(t, group.Group)
	assert.Len(t, group.Group.Bindings, 2)

	assert.NotNil(t, block.Statements[3].Expr)
	assert.NotNil(t, block.Statements[4].Expr)
}

func TestLetDestructuresTuple(t *testing.T) {
	program, err := grammar.ParseString("test.mo", `let {a, b} = {1, 2}`)
	require.NoError(t, err)

	let := program.Statements[0].Let
	require.NotNil(t, let.Binding)
	assert.Equal(t, "{a, b}", let.Binding.Pattern.String())
}

func TestExpressionForms(t *testing.T) {
	tests := []struct {
		source string
		want   string
	}{
		{`f(1, "two", [3], {4, true})`, `f(1, "two", [3], {4, true})`},
		{`fn x, {a, b} -> x + a * b end`, `fn x, {a, b} -> x + a * b end`},
		{`fn -> 1 end`, `fn -> 1 end`},
		{`if x >= 1 then -x else !y end`, `if x >= 1 then -x else !y end`},
		{`pipe maybe (maybe.just(8) |> half() |> half())`, `pipe maybe (maybe.just(8) |> half() |> half())`},
		{`a++b`, `a ++ b`},
		{`(1 + 2) * 3`, `(1 + 2) * 3`},
		{`do maybe {}`, `do maybe {}`},
		{`do maybe`, `do maybe`},
		{`make()(1)`, `make()(1)`},
	}

	for _, tt := range tests {
		t.Run(tt.source, func(t *testing.T) {
			program, err := grammar.ParseString("test.mo", tt.source)
			require.NoError(t, err)
			require.Len(t, program.Statements, 1)
			assert.Equal(t, tt.want, program.Statements[0].Expr.String())
		})
	}
}

func TestBindArrowIsOneToken(t *testing.T) {
	program, err := grammar.ParseString("test.mo", `do maybe { x<-maybe.just(1); a < -1 }`)
	require.NoError(t, err)

	block := program.Statements[0].Expr.Left.Value.Primary.Do.Block
	require.Len(t, block.Statements, 2)
	assert.NotNil(t, block.Statements[0].Bind)
	assert.Equal(t, "a < -1", block.Statements[1].Expr.String())
}

func TestKeywordsAreNotIdentifiers(t *testing.T) {
	_, err := grammar.ParseString("test.mo", `let end = 1`)
	assert.Error(t, err)

	program, err := grammar.ParseString("test.mo", `let done = 1`)
	require.NoError(t, err)
	assert.Equal(t, "done", *program.Statements[0].Let.Binding.Pattern.Name)
}

func TestPositions(t *testing.T) {
	program, err := grammar.ParseString("pos.mo", "let a = 1\n\nlet b = do maybe {\n  x <- a\n  x\n}")
	require.NoError(t, err)

	second := program.Statements[1]
	assert.Equal(t, "pos.mo", second.Pos.Filename)
	assert.Equal(t, 3, second.Pos.Line)
	assert.Equal(t, 1, second.Pos.Column)

	do := second.Let.Binding.Value.Left.Value.Primary.Do
	assert.Equal(t, 3, do.Strategy.Pos.Line)
	assert.Equal(t, 12, do.Strategy.Pos.Column)
	assert.Equal(t, 4, do.Block.Statements[0].Pos.Line)
}

func TestIsIncomplete(t *testing.T) {
	for _, source := range []string{`do maybe {`, `let x =`, `f(1,`, `fn x -> x`} {
		_, err := grammar.ParseString("repl", source)
		require.Error(t, err, source)
		assert.True(t, grammar.IsIncomplete(source, err), source)
	}

	source := `let = 1`
	_, err := grammar.ParseString("repl", source)
	require.Error(t, err)
	assert.False(t, grammar.IsIncomplete(source, err))
}

func TestPrinterRoundTrip(t *testing.T) {
	source, err := os.ReadFile("../examples/either.mo")
	require.NoError(t, err)

	program, err := grammar.ParseString("either.mo", string(source))
	require.NoError(t, err)

	formatted := program.String()
	again, err := grammar.ParseString("either.mo", formatted)
	require.NoError(t, err)
	assert.Equal(t, formatted, again.String())

	assert.Contains(t, formatted, "let calc = do either {\n    x <- safe_div(100, 5)\n")
	assert.Contains(t, formatted, "    let {\n        total = x + y\n        label = \"sum\"\n    }\n")
}

func TestFormatKeepsComments(t *testing.T) {
	formatted, err := grammar.Format("p.mo", "// keep me\nlet x = 1 // and me\nx\n")
	require.NoError(t, err)
	assert.Equal(t, "// keep me\nlet x = 1 // and me\nx\n", formatted)

	program, err := grammar.ParseString("p.mo", "// keep me\nlet x = 1 // and me\nx\n")
	require.NoError(t, err)
	assert.Equal(t, "let x = 1\nx\n", program.String())
}

func TestFormatCommentsInBlocks(t *testing.T) {
	source := "// header\n\n\nlet m = do maybe { // opens\n    // inside\n  x <- maybe.just(1)   \n    return(x) // done\n}\nlet g = do maybe {\n  // nothing yet\n}\n\n// footer\n"

	formatted, err := grammar.Format("p.mo", source)
	require.NoError(t, err)
	assert.Equal(t, "// header\n\nlet m = do maybe {\n    // opens\n    // inside\n    x <- maybe.just(1)\n    return(x) // done\n}\nlet g = do maybe {\n    // nothing yet\n}\n\n// footer\n", formatted)

	again, err := grammar.Format("p.mo", formatted)
	require.NoError(t, err)
	assert.Equal(t, formatted, again)
}

func TestFormatExamples(t *testing.T) {
	files, err := filepath.Glob("../examples/*.mo")
	require.NoError(t, err)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			source, err := os.ReadFile(file)
			require.NoError(t, err)

			formatted, err := grammar.Format(file, string(source))
			require.NoError(t, err)
			for _, line := range strings.Split(string(source), "\n") {
				if trimmed := strings.TrimSpace(line); strings.HasPrefix(trimmed, "//") {
					assert.Contains(t, formatted, trimmed)
				}
			}

			again, err := grammar.Format(file, formatted)
			require.NoError(t, err)
			assert.Equal(t, formatted, again)
		})
	}
}

func TestFormatSyntaxError(t *testing.T) {
	_, err := grammar.Format("p.mo", "let x = ")
	assert.Error(t, err)
}

package eval

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monadic/internal/stdlib"
)

func TestEveryStdlibOperationIsImplemented(t *testing.T) {
	in := New()
	for _, module := range stdlib.StrategyNames() {
		def := stdlib.GetModuleDefinition(module)
		require.NotNil(t, def)

		for _, name := range def.FunctionNames() {
			b, ok := in.Operation(module, name)
			if assert.True(t, ok, "%s.%s has no runtime implementation", module, name) {
				assert.Equal(t, def.Functions[name].Arity(), b.Arity, "%s.%s", module, name)
			}
		}
		assert.Len(t, in.modules[module], len(def.Functions), module)
	}
}

// Each law is written as a program whose two sides must agree. Deferred
// strategies are compared on what they produce when run.
func TestRuntimeModulesSatisfyLaws(t *testing.T) {
	tests := []struct {
		module string
		m      string
		f      string
		g      string
		force  string
	}{
		{"maybe", "maybe.just(3)", "fn x -> maybe.just(x + 1) end", "fn x -> maybe.just(x * 2) end", "%s"},
		{"maybe", "maybe.nothing()", "fn x -> maybe.nothing() end", "fn x -> maybe.just(x) end", "%s"},
		{"either", `either.left("e")`, "fn x -> either.right(x + 1) end", `fn x -> either.left("g") end`, "%s"},
		{"result", "result.ok(3)", "fn x -> result.error(x) end", "fn x -> result.ok(x) end", "%s"},
		{"state", "state.get()", "fn x -> state.put(x + 1) end", "fn x -> state.gets(fn s -> s * 2 end) end", "state.run(5, %s)"},
		{"reader", "reader.ask()", "fn x -> reader.asks(fn e -> e + x end) end", "fn x -> reader.return(x * 3) end", "reader.run(2, %s)"},
		{"writer", "writer.tell([1])", "fn x -> writer.tell([2]) end", "fn x -> writer.return(7) end", "writer.run(%s)"},
	}

	for _, tt := range tests {
		t.Run(tt.module+" "+tt.m, func(t *testing.T) {
			m := tt.module
			force := func(expr string) string {
				return fmt.Sprintf(tt.force, expr)
			}
			laws := map[string][2]string{
				"left identity": {
					force(fmt.Sprintf("%s.bind(%s.return(1), f)", m, m)),
					force("f(1)"),
				},
				"right identity": {
					force(fmt.Sprintf("%s.bind(mm, fn x -> %s.return(x) end)", m, m)),
					force("mm"),
				},
				"associativity": {
					force(fmt.Sprintf("%s.bind(%s.bind(mm, f), g)", m, m)),
					force(fmt.Sprintf("%s.bind(mm, fn x -> %s.bind(f(x), g) end)", m, m)),
				},
			}

			for law, sides := range laws {
				source := fmt.Sprintf("let mm = %s\nlet f = %s\nlet g = %s\n%s == %s", tt.m, tt.f, tt.g, sides[0], sides[1])
				assert.Equal(t, Bool(true), mustRun(t, source), law)
			}
		})
	}
}

func TestMaybeHelpers(t *testing.T) {
	tests := map[string]string{
		"maybe.from_maybe(0, maybe.nothing())":                                "0",
		"maybe.to_list(maybe.just(1))":                                        "[1]",
		"maybe.from_list([])":                                                 "nothing",
		"maybe.cat_maybes([maybe.just(1), maybe.nothing(), maybe.just(3)])":   "[1, 3]",
		"maybe.map_maybe(fn x -> maybe.just(x * 2) end, [1, 2])":              "[2, 4]",
		"{maybe.is_just(maybe.nothing()), maybe.is_nothing(maybe.nothing())}": "{false, true}",
		"maybe.map(maybe.just(2), fn x -> x + 1 end)":                         "just(3)",
	}
	for source, want := range tests {
		t.Run(source, func(t *testing.T) {
			assert.Equal(t, want, mustRun(t, source).String())
		})
	}
}

func TestEitherAndResultHelpers(t *testing.T) {
	tests := map[string]string{
		`either.map_left(either.left("e"), fn s -> s ++ "!" end)`:            `left("e!")`,
		`either.either(fn l -> 0 end, fn r -> r end, either.right(4))`:       "4",
		`{either.is_left(either.fail(1)), either.is_right(either.right(1))}`: "{true, true}",
		`{result.is_ok(result.fail(1)), result.is_error(result.fail(1))}`:    "{false, true}",
	}
	for source, want := range tests {
		t.Run(source, func(t *testing.T) {
			assert.Equal(t, want, mustRun(t, source).String())
		})
	}
}

func TestStateAndReaderRunners(t *testing.T) {
	tests := map[string]string{
		"state.eval(3, state.gets(fn s -> s * s end))":                 "9",
		"state.exec(3, state.modify(fn s -> s + 1 end))":               "4",
		"reader.run(1, reader.local(reader.ask(), fn e -> e + 1 end))": "2",
		"reader.run(1, reader.map(reader.ask(), fn e -> [e, e] end))":  "[1, 1]",
	}
	for source, want := range tests {
		t.Run(source, func(t *testing.T) {
			assert.Equal(t, want, mustRun(t, source).String())
		})
	}
}

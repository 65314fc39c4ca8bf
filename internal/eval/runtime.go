package eval

import (
	"fmt"

	"monadic/internal/ast"
	"monadic/internal/stdlib"
	"monadic/monad"
)

type builtinFunc func(args []Value) Value

// register installs the operations of one strategy module. Arities come
// from the stdlib definitions, and every implementation must have one.
func (in *Interpreter) register(module string, impls map[string]builtinFunc) {
	def := stdlib.GetModuleDefinition(module)
	if def == nil {
		panic(fmt.Sprintf("eval: no stdlib definition for module %s", module))
	}
	ops := make(map[string]*Builtin, len(impls))
	for name, fn := range impls {
		fdef, ok := def.Functions[name]
		if !ok {
			panic(fmt.Sprintf("eval: %s.%s has no stdlib definition", module, name))
		}
		ops[name] = &Builtin{Module: module, Name: name, Arity: fdef.Arity(), Fn: fn}
	}
	in.modules[module] = ops
}

// computation adapts a typed strategy to runtime values. wrap and unwrap
// convert between the typed computation and its Value form.
type computation[M any] struct {
	in       *Interpreter
	strategy monad.Strategy[M, Value]
	wrap     func(M) Value
	unwrap   func(Value) (M, bool)
}

func (c computation[M]) expect(v Value, op string) M {
	m, ok := c.unwrap(v)
	if !ok {
		c.in.fail(ast.Position{}, "%s.%s: expected a %s computation, got %s",
			c.strategy.Name, op, c.strategy.Name, v.Kind())
	}
	return m
}

// continuation turns a runtime function into a typed bind continuation.
// A continuation that returns a computation of another strategy is a
// runtime error.
func (c computation[M]) continuation(f Value, op string) func(Value) M {
	return func(x Value) M {
		return c.expect(c.in.Apply(f, x), op)
	}
}

func (c computation[M]) function(f Value) func(Value) Value {
	return func(x Value) Value {
		return c.in.Apply(f, x)
	}
}

// ops are the operations every strategy module has.
func (c computation[M]) ops() map[string]builtinFunc {
	return map[string]builtinFunc{
		"return": func(args []Value) Value {
			return c.wrap(c.strategy.Return(args[0]))
		},
		"bind": func(args []Value) Value {
			return c.wrap(c.strategy.Bind(c.expect(args[0], "bind"), c.continuation(args[1], "bind")))
		},
		"map": func(args []Value) Value {
			return c.wrap(c.strategy.Map(c.expect(args[0], "map"), c.function(args[1])))
		},
	}
}

// with adds module-specific operations to ops.
func with(ops map[string]builtinFunc, extra map[string]builtinFunc) map[string]builtinFunc {
	for name, fn := range extra {
		ops[name] = fn
	}
	return ops
}

func unit(struct{}) Value { return Unit{} }

package eval

import (
	"monadic/monad/either"
	"monadic/monad/result"
)

func (in *Interpreter) eitherModule() map[string]builtinFunc {
	c := computation[either.Either[Value, Value]]{
		in:       in,
		strategy: either.Strategy[Value, Value](),
		wrap:     func(e either.Either[Value, Value]) Value { return EitherValue{Either: e} },
		unwrap: func(v Value) (either.Either[Value, Value], bool) {
			ev, ok := v.(EitherValue)
			return ev.Either, ok
		},
	}

	return with(c.ops(), map[string]builtinFunc{
		"left": func(args []Value) Value {
			return EitherValue{Either: either.Left[Value, Value](args[0])}
		},
		"right": func(args []Value) Value {
			return EitherValue{Either: either.Right[Value](args[0])}
		},
		"fail": func(args []Value) Value {
			return EitherValue{Either: either.Fail[Value, Value](args[0])}
		},
		"either": func(args []Value) Value {
			return either.Case(c.expect(args[2], "either"), c.function(args[0]), c.function(args[1]))
		},
		"is_left": func(args []Value) Value {
			return Bool(c.expect(args[0], "is_left").IsLeft())
		},
		"is_right": func(args []Value) Value {
			return Bool(c.expect(args[0], "is_right").IsRight())
		},
		"map_left": func(args []Value) Value {
			return EitherValue{Either: either.MapLeft(c.expect(args[0], "map_left"), c.function(args[1]))}
		},
	})
}

func (in *Interpreter) resultModule() map[string]builtinFunc {
	c := computation[result.Result[Value, Value]]{
		in:       in,
		strategy: result.Strategy[Value, Value](),
		wrap:     func(r result.Result[Value, Value]) Value { return ResultValue{Result: r} },
		unwrap: func(v Value) (result.Result[Value, Value], bool) {
			rv, ok := v.(ResultValue)
			return rv.Result, ok
		},
	}

	return with(c.ops(), map[string]builtinFunc{
		"ok": func(args []Value) Value {
			return ResultValue{Result: result.Ok[Value](args[0])}
		},
		"error": func(args []Value) Value {
			return ResultValue{Result: result.Error[Value, Value](args[0])}
		},
		"fail": func(args []Value) Value {
			return ResultValue{Result: result.Fail[Value, Value](args[0])}
		},
		"is_ok": func(args []Value) Value {
			return Bool(c.expect(args[0], "is_ok").IsOk())
		},
		"is_error": func(args []Value) Value {
			return Bool(c.expect(args[0], "is_error").IsError())
		},
	})
}

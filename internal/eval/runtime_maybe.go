package eval

import (
	"monadic/monad/maybe"
)

func (in *Interpreter) maybeModule() map[string]builtinFunc {
	c := computation[maybe.Maybe[Value]]{
		in:       in,
		strategy: maybe.Strategy[Value](),
		wrap:     func(m maybe.Maybe[Value]) Value { return MaybeValue{Maybe: m} },
		unwrap: func(v Value) (maybe.Maybe[Value], bool) {
			mv, ok := v.(MaybeValue)
			return mv.Maybe, ok
		},
	}

	return with(c.ops(), map[string]builtinFunc{
		"just": func(args []Value) Value {
			return MaybeValue{Maybe: maybe.Just(args[0])}
		},
		"nothing": func([]Value) Value {
			return MaybeValue{Maybe: maybe.Nothing[Value]()}
		},
		"fail": func(args []Value) Value {
			return MaybeValue{Maybe: maybe.Fail[Value](args[0])}
		},
		"is_just": func(args []Value) Value {
			return Bool(c.expect(args[0], "is_just").IsJust())
		},
		"is_nothing": func(args []Value) Value {
			return Bool(c.expect(args[0], "is_nothing").IsNothing())
		},
		"from_just": func(args []Value) Value {
			return maybe.FromJust(c.expect(args[0], "from_just"))
		},
		"from_maybe": func(args []Value) Value {
			return maybe.FromMaybe(args[0], c.expect(args[1], "from_maybe"))
		},
		"to_list": func(args []Value) Value {
			return List(maybe.ToList(c.expect(args[0], "to_list")))
		},
		"from_list": func(args []Value) Value {
			return MaybeValue{Maybe: maybe.FromList(in.asList(args[0], "maybe.from_list"))}
		},
		"cat_maybes": func(args []Value) Value {
			xs := in.asList(args[0], "maybe.cat_maybes")
			ms := make([]maybe.Maybe[Value], len(xs))
			for i, x := range xs {
				ms[i] = c.expect(x, "cat_maybes")
			}
			return List(maybe.CatMaybes(ms))
		},
		"map_maybe": func(args []Value) Value {
			f := c.continuation(args[0], "map_maybe")
			return List(maybe.MapMaybe(f, in.asList(args[1], "maybe.map_maybe")))
		},
	})
}

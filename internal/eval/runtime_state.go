package eval

import (
	"monadic/monad/reader"
	"monadic/monad/state"
	"monadic/monad/writer"
)

func (in *Interpreter) stateModule() map[string]builtinFunc {
	c := computation[state.State[Value, Value]]{
		in:       in,
		strategy: state.Strategy[Value, Value](),
		wrap:     func(m state.State[Value, Value]) Value { return StateValue{State: m} },
		unwrap: func(v Value) (state.State[Value, Value], bool) {
			sv, ok := v.(StateValue)
			return sv.State, ok
		},
	}

	return with(c.ops(), map[string]builtinFunc{
		"get": func([]Value) Value {
			return StateValue{State: state.Get[Value]()}
		},
		"gets": func(args []Value) Value {
			return StateValue{State: state.Gets(c.function(args[0]))}
		},
		"put": func(args []Value) Value {
			return StateValue{State: state.Map(state.Put(args[0]), unit)}
		},
		"modify": func(args []Value) Value {
			return StateValue{State: state.Map(state.Modify(c.function(args[0])), unit)}
		},
		"run": func(args []Value) Value {
			value, final := state.Run(args[0], c.expect(args[1], "run"))
			return Tuple{value, final}
		},
		"eval": func(args []Value) Value {
			return state.Eval(args[0], c.expect(args[1], "eval"))
		},
		"exec": func(args []Value) Value {
			return state.Exec(args[0], c.expect(args[1], "exec"))
		},
	})
}

func (in *Interpreter) readerModule() map[string]builtinFunc {
	c := computation[reader.Reader[Value, Value]]{
		in:       in,
		strategy: reader.Strategy[Value, Value](),
		wrap:     func(m reader.Reader[Value, Value]) Value { return ReaderValue{Reader: m} },
		unwrap: func(v Value) (reader.Reader[Value, Value], bool) {
			rv, ok := v.(ReaderValue)
			return rv.Reader, ok
		},
	}

	return with(c.ops(), map[string]builtinFunc{
		"ask": func([]Value) Value {
			return ReaderValue{Reader: reader.Ask[Value]()}
		},
		"asks": func(args []Value) Value {
			return ReaderValue{Reader: reader.Asks(c.function(args[0]))}
		},
		"local": func(args []Value) Value {
			return ReaderValue{Reader: reader.Local(c.expect(args[0], "local"), c.function(args[1]))}
		},
		"run": func(args []Value) Value {
			return reader.Run(args[0], c.expect(args[1], "run"))
		},
	})
}

// Writer output is a list; tell appends its argument's elements.
type output = writer.Log[Value]

func (in *Interpreter) writerModule() map[string]builtinFunc {
	c := computation[writer.Writer[output, Value]]{
		in:       in,
		strategy: writer.Strategy[output, Value](),
		wrap:     func(m writer.Writer[output, Value]) Value { return WriterValue{Writer: m} },
		unwrap: func(v Value) (writer.Writer[output, Value], bool) {
			wv, ok := v.(WriterValue)
			return wv.Writer, ok
		},
	}

	return with(c.ops(), map[string]builtinFunc{
		"tell": func(args []Value) Value {
			out := output(in.asList(args[0], "writer.tell"))
			return WriterValue{Writer: writer.Map(writer.Tell(out), unit)}
		},
		"run": func(args []Value) Value {
			value, out := writer.Run(c.expect(args[0], "run"))
			return Tuple{value, List(out)}
		},
		"exec": func(args []Value) Value {
			return List(writer.Exec(c.expect(args[0], "exec")))
		},
		"listen": func(args []Value) Value {
			listened := writer.Listen(c.expect(args[0], "listen"))
			return WriterValue{Writer: writer.Map(listened, func(p writer.Pair[Value, output]) Value {
				return Tuple{p.First, List(p.Second)}
			})}
		},
		"censor": func(args []Value) Value {
			f := func(out output) output {
				return output(in.asList(in.Apply(args[0], List(out)), "writer.censor"))
			}
			return WriterValue{Writer: writer.Censor(f, c.expect(args[1], "censor"))}
		},
	})
}

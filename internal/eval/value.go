package eval

import (
	"fmt"
	"strconv"
	"strings"

	"monadic/internal/ast"
	"monadic/monad/either"
	"monadic/monad/maybe"
	"monadic/monad/reader"
	"monadic/monad/result"
	"monadic/monad/state"
	"monadic/monad/writer"
)

// Value is a runtime value.
type Value interface {
	String() string
	Kind() string
}

type (
	Int   int64
	Str   string
	Bool  bool
	Unit  struct{}
	List  []Value
	Tuple []Value
)

// Closure is a function literal together with the environment it was
// created in.
type Closure struct {
	Params []ast.Pattern
	Body   ast.Expr
	Env    *Env
}

// Builtin is an operation of a runtime strategy module.
type Builtin struct {
	Module string
	Name   string
	Arity  int
	Fn     func(args []Value) Value
}

// Computation values wrap the typed strategies at Value.
type (
	MaybeValue  struct{ Maybe maybe.Maybe[Value] }
	EitherValue struct{ Either either.Either[Value, Value] }
	ResultValue struct{ Result result.Result[Value, Value] }
	StateValue  struct{ State state.State[Value, Value] }
	ReaderValue struct{ Reader reader.Reader[Value, Value] }
	WriterValue struct {
		Writer writer.Writer[writer.Log[Value], Value]
	}
)

func (v Int) String() string  { return strconv.FormatInt(int64(v), 10) }
func (v Str) String() string  { return strconv.Quote(string(v)) }
func (v Bool) String() string { return strconv.FormatBool(bool(v)) }
func (Unit) String() string   { return "{}" }
func (v List) String() string { return "[" + joinValues(v) + "]" }
func (v Tuple) String() string {
	return "{" + joinValues(v) + "}"
}
func (c *Closure) String() string { return fmt.Sprintf("<fn/%d>", len(c.Params)) }
func (b *Builtin) String() string { return fmt.Sprintf("<%s.%s/%d>", b.Module, b.Name, b.Arity) }
func (v MaybeValue) String() string  { return v.Maybe.String() }
func (v EitherValue) String() string { return v.Either.String() }
func (v ResultValue) String() string { return v.Result.String() }
func (StateValue) String() string    { return "<state>" }
func (ReaderValue) String() string   { return "<reader>" }
func (WriterValue) String() string   { return "<writer>" }

func (Int) Kind() string         { return "int" }
func (Str) Kind() string         { return "string" }
func (Bool) Kind() string        { return "bool" }
func (Unit) Kind() string        { return "unit" }
func (List) Kind() string        { return "list" }
func (Tuple) Kind() string       { return "tuple" }
func (*Closure) Kind() string    { return "function" }
func (*Builtin) Kind() string    { return "function" }
func (MaybeValue) Kind() string  { return "maybe" }
func (EitherValue) Kind() string { return "either" }
func (ResultValue) Kind() string { return "result" }
func (StateValue) Kind() string  { return "state" }
func (ReaderValue) Kind() string { return "reader" }
func (WriterValue) Kind() string { return "writer" }

func joinValues(values []Value) string {
	parts := make([]string, len(values))
	for i, v := range values {
		parts[i] = v.String()
	}
	return strings.Join(parts, ", ")
}

// Equal is structural equality. Functions and the deferred computations
// (state, reader, writer) are never equal to anything; compare what they
// produce when run instead.
func Equal(a, b Value) bool {
	switch x := a.(type) {
	case Int:
		y, ok := b.(Int)
		return ok && x == y
	case Str:
		y, ok := b.(Str)
		return ok && x == y
	case Bool:
		y, ok := b.(Bool)
		return ok && x == y
	case Unit:
		_, ok := b.(Unit)
		return ok
	case List:
		y, ok := b.(List)
		return ok && equalValues(x, y)
	case Tuple:
		y, ok := b.(Tuple)
		return ok && equalValues(x, y)
	case MaybeValue:
		y, ok := b.(MaybeValue)
		if !ok {
			return false
		}
		xv, xok := x.Maybe.Get()
		yv, yok := y.Maybe.Get()
		return xok == yok && (!xok || Equal(xv, yv))
	case EitherValue:
		y, ok := b.(EitherValue)
		if !ok || x.Either.IsRight() != y.Either.IsRight() {
			return false
		}
		if x.Either.IsRight() {
			xv, _ := x.Either.GetRight()
			yv, _ := y.Either.GetRight()
			return Equal(xv, yv)
		}
		xv, _ := x.Either.GetLeft()
		yv, _ := y.Either.GetLeft()
		return Equal(xv, yv)
	case ResultValue:
		y, ok := b.(ResultValue)
		if !ok {
			return false
		}
		xv, xe, xok := x.Result.Get()
		yv, ye, yok := y.Result.Get()
		if xok != yok {
			return false
		}
		if xok {
			return Equal(xv, yv)
		}
		return Equal(xe, ye)
	}
	return false
}

func equalValues(x, y []Value) bool {
	if len(x) != len(y) {
		return false
	}
	for i := range x {
		if !Equal(x[i], y[i]) {
			return false
		}
	}
	return true
}

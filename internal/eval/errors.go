package eval

import (
	"fmt"

	"monadic/internal/ast"
)

// RuntimeError is a fault raised while evaluating: a type error, a failed
// pattern match, maybe.from_just on nothing. Strategy short circuits are
// values, not RuntimeErrors.
type RuntimeError struct {
	Message string
	Pos     ast.Position
}

func (e *RuntimeError) Error() string {
	switch {
	case e.Pos.Filename != "":
		return fmt.Sprintf("%s:%d:%d: runtime error: %s", e.Pos.Filename, e.Pos.Line, e.Pos.Column, e.Message)
	case e.Pos.Line > 0:
		return fmt.Sprintf("%d:%d: runtime error: %s", e.Pos.Line, e.Pos.Column, e.Message)
	}
	return "runtime error: " + e.Message
}

// fail aborts evaluation. A zero pos means the position of the call being
// evaluated.
func (in *Interpreter) fail(pos ast.Position, format string, args ...any) {
	if pos == (ast.Position{}) {
		pos = in.pos
	}
	panic(&RuntimeError{Message: fmt.Sprintf(format, args...), Pos: pos})
}

// recoverRuntime turns a panic raised during evaluation into *errp. Panics
// that are not errors are not ours and keep unwinding.
func (in *Interpreter) recoverRuntime(errp *error) {
	r := recover()
	if r == nil {
		return
	}
	switch v := r.(type) {
	case *RuntimeError:
		*errp = v
	case error:
		*errp = &RuntimeError{Message: v.Error(), Pos: in.pos}
	default:
		panic(r)
	}
}

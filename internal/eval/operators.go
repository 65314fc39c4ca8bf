package eval

import (
	"cmp"

	"monadic/internal/ast"
)

func (in *Interpreter) unary(n *ast.UnaryExpr, v Value) Value {
	switch n.Op {
	case "-":
		return -in.asInt(v, n.Value.NodePos())
	case "!":
		return !in.asBool(v, n.Value.NodePos())
	}
	in.fail(n.Pos, "unknown operator %s", n.Op)
	return nil
}

func (in *Interpreter) binary(n *ast.BinaryExpr, l, r Value) Value {
	switch n.Op {
	case "==":
		return Bool(Equal(l, r))
	case "!=":
		return Bool(!Equal(l, r))
	case "++":
		return in.concat(n, l, r)
	case "<", ">", "<=", ">=":
		return Bool(in.compare(n, l, r))
	case "|>":
		in.fail(n.Pos, "pipeline stage was not threaded")
	}

	x, y := in.asInt(l, n.Left.NodePos()), in.asInt(r, n.Right.NodePos())
	switch n.Op {
	case "+":
		return x + y
	case "-":
		return x - y
	case "*":
		return x * y
	case "/":
		if y == 0 {
			in.fail(n.Pos, "division by zero")
		}
		return x / y
	}
	in.fail(n.Pos, "unknown operator %s", n.Op)
	return nil
}

func (in *Interpreter) concat(n *ast.BinaryExpr, l, r Value) Value {
	switch x := l.(type) {
	case Str:
		if y, ok := r.(Str); ok {
			return x + y
		}
	case List:
		if y, ok := r.(List); ok {
			out := make(List, 0, len(x)+len(y))
			return append(append(out, x...), y...)
		}
	}
	in.fail(n.Pos, "cannot concatenate %s and %s", l.Kind(), r.Kind())
	return nil
}

func (in *Interpreter) compare(n *ast.BinaryExpr, l, r Value) bool {
	var c int
	switch x := l.(type) {
	case Int:
		y := in.asInt(r, n.Right.NodePos())
		c = cmp.Compare(x, y)
	case Str:
		y, ok := r.(Str)
		if !ok {
			in.fail(n.Right.NodePos(), "expected string, got %s", r.Kind())
		}
		c = cmp.Compare(x, y)
	default:
		in.fail(n.Left.NodePos(), "cannot order %s values", l.Kind())
	}
	switch n.Op {
	case "<":
		return c < 0
	case ">":
		return c > 0
	case "<=":
		return c <= 0
	}
	return c >= 0
}

func (in *Interpreter) asInt(v Value, pos ast.Position) Int {
	n, ok := v.(Int)
	if !ok {
		in.fail(pos, "expected int, got %s", v.Kind())
	}
	return n
}

func (in *Interpreter) asBool(v Value, pos ast.Position) Bool {
	b, ok := v.(Bool)
	if !ok {
		in.fail(pos, "expected bool, got %s", v.Kind())
	}
	return b
}

func (in *Interpreter) asList(v Value, op string) List {
	l, ok := v.(List)
	if !ok {
		in.fail(ast.Position{}, "%s: expected list, got %s", op, v.Kind())
	}
	return l
}

// Package eval runs desugared programs. Strategy operations are backed by
// the typed strategies in monadic/monad, instantiated at Value.
package eval

import (
	"strconv"

	"github.com/tliron/commonlog"

	"monadic/internal/ast"
)

var log = commonlog.GetLogger("monadic.eval")

// Interpreter evaluates programs against one global scope. It is not safe
// for concurrent use.
type Interpreter struct {
	globals *Env
	modules map[string]map[string]*Builtin
	pos     ast.Position
}

func New() *Interpreter {
	in := &Interpreter{
		globals: NewEnv(nil),
		modules: make(map[string]map[string]*Builtin),
	}
	in.register("maybe", in.maybeModule())
	in.register("either", in.eitherModule())
	in.register("result", in.resultModule())
	in.register("state", in.stateModule())
	in.register("reader", in.readerModule())
	in.register("writer", in.writerModule())
	return in
}

func (in *Interpreter) Globals() *Env {
	return in.globals
}

// Run evaluates the statements of program in order. Top-level lets extend
// the global scope, so a later Run sees them. The result is the value of
// the last expression statement, or Unit when the program ends in a let.
func (in *Interpreter) Run(program *ast.Program) (result Value, err error) {
	defer in.recoverRuntime(&err)
	log.Debugf("running %d statements", len(program.Statements))

	result = Unit{}
	for _, stmt := range program.Statements {
		switch s := stmt.(type) {
		case *ast.LetStmt:
			in.bindAll(s.Bindings, in.globals)
			result = Unit{}
		case *ast.PlainStmt:
			result = in.eval(s.Action, in.globals)
		case *ast.TailStmt:
			result = in.eval(s.Expr, in.globals)
		case *ast.BindStmt:
			in.fail(s.Pos, "'%s <- ...' is only allowed inside a do-block", s.Pattern)
		}
	}
	return result, nil
}

// EvalExpr evaluates a single desugared expression in the global scope.
func (in *Interpreter) EvalExpr(e ast.Expr) (result Value, err error) {
	defer in.recoverRuntime(&err)
	return in.eval(e, in.globals), nil
}

// Call applies fn to args outside of any program.
func (in *Interpreter) Call(fn Value, args ...Value) (result Value, err error) {
	defer in.recoverRuntime(&err)
	return in.Apply(fn, args...), nil
}

// Operation returns the runtime implementation of module.name.
func (in *Interpreter) Operation(module, name string) (*Builtin, bool) {
	ops, ok := in.modules[module]
	if !ok {
		return nil, false
	}
	b, ok := ops[name]
	return b, ok
}

func (in *Interpreter) eval(e ast.Expr, env *Env) Value {
	switch n := e.(type) {
	case *ast.Literal:
		return in.literal(n)

	case *ast.Ident:
		v, ok := env.Get(n.Name)
		if !ok {
			in.fail(n.Pos, "undefined: %s", n.Name)
		}
		return v

	case *ast.Slot:
		v, ok := env.Get(slotName(n.ID))
		if !ok {
			in.fail(n.Pos, "unbound slot $%d", n.ID)
		}
		return v

	case *ast.QualifiedIdent:
		b, ok := in.Operation(n.Module, n.Name)
		if !ok {
			in.fail(n.Pos, "undefined: %s.%s", n.Module, n.Name)
		}
		return b

	case *ast.CallExpr:
		callee := in.eval(n.Callee, env)
		args := make([]Value, len(n.Args))
		for i, arg := range n.Args {
			args[i] = in.eval(arg, env)
		}
		in.pos = n.Pos
		return in.Apply(callee, args...)

	case *ast.UnaryExpr:
		return in.unary(n, in.eval(n.Value, env))

	case *ast.BinaryExpr:
		switch n.Op {
		case "&&":
			if !in.asBool(in.eval(n.Left, env), n.Left.NodePos()) {
				return Bool(false)
			}
			return Bool(in.asBool(in.eval(n.Right, env), n.Right.NodePos()))
		case "||":
			if in.asBool(in.eval(n.Left, env), n.Left.NodePos()) {
				return Bool(true)
			}
			return Bool(in.asBool(in.eval(n.Right, env), n.Right.NodePos()))
		}
		return in.binary(n, in.eval(n.Left, env), in.eval(n.Right, env))

	case *ast.ListExpr:
		return List(in.evalAll(n.Elems, env))

	case *ast.TupleExpr:
		if len(n.Elems) == 0 {
			return Unit{}
		}
		return Tuple(in.evalAll(n.Elems, env))

	case *ast.FuncLit:
		return &Closure{Params: n.Params, Body: n.Body, Env: env}

	case *ast.IfExpr:
		if in.asBool(in.eval(n.Cond, env), n.Cond.NodePos()) {
			return in.eval(n.Then, env)
		}
		return in.eval(n.Else, env)

	case *ast.LetExpr:
		local := NewEnv(env)
		in.bindAll(n.Bindings, local)
		return in.eval(n.Body, local)

	case *ast.DoExpr:
		in.fail(n.Pos, "do %s was not expanded", n.Strategy.Name)

	case *ast.PipeExpr:
		in.fail(n.Pos, "pipe %s was not expanded", n.Strategy.Name)
	}

	in.fail(e.NodePos(), "cannot evaluate %T", e)
	return nil
}

func (in *Interpreter) evalAll(exprs []ast.Expr, env *Env) []Value {
	values := make([]Value, len(exprs))
	for i, e := range exprs {
		values[i] = in.eval(e, env)
	}
	return values
}

// bindAll evaluates bindings in order into env. Each value sees the names
// bound before it, and a function sees its own name.
func (in *Interpreter) bindAll(bindings []*ast.Binding, env *Env) {
	for _, b := range bindings {
		v := in.eval(b.Value, env)
		if !in.match(b.Pattern, v, env) {
			in.fail(b.Pos, "pattern %s does not match %s", b.Pattern, v)
		}
	}
}

// Apply calls fn with args. Errors abort evaluation; use Call from outside
// the package.
func (in *Interpreter) Apply(fn Value, args ...Value) Value {
	switch f := fn.(type) {
	case *Closure:
		if len(args) != len(f.Params) {
			in.fail(ast.Position{}, "function expects %d arguments, got %d", len(f.Params), len(args))
		}
		local := NewEnv(f.Env)
		for i, p := range f.Params {
			if !in.match(p, args[i], local) {
				in.fail(p.NodePos(), "pattern %s does not match %s", p, args[i])
			}
		}
		return in.eval(f.Body, local)

	case *Builtin:
		if len(args) != f.Arity {
			in.fail(ast.Position{}, "%s.%s expects %d arguments, got %d", f.Module, f.Name, f.Arity, len(args))
		}
		return f.Fn(args)
	}

	in.fail(ast.Position{}, "cannot call %s value %s", fn.Kind(), fn)
	return nil
}

func (in *Interpreter) literal(lit *ast.Literal) Value {
	switch lit.Kind {
	case ast.IntLit:
		n, err := strconv.ParseInt(lit.Value, 10, 64)
		if err != nil {
			in.fail(lit.Pos, "integer literal %s out of range", lit.Value)
		}
		return Int(n)
	case ast.StringLit:
		return Str(lit.Value)
	default:
		return Bool(lit.Value == "true")
	}
}

// match binds the names of p against v in env.
func (in *Interpreter) match(p ast.Pattern, v Value, env *Env) bool {
	switch p := p.(type) {
	case *ast.NamePattern:
		env.Set(p.Name, v)
		return true
	case *ast.WildcardPattern:
		return true
	case *ast.SlotPattern:
		env.Set(slotName(p.ID), v)
		return true
	case *ast.TuplePattern:
		if len(p.Elems) == 0 {
			_, ok := v.(Unit)
			return ok
		}
		t, ok := v.(Tuple)
		return ok && in.matchAll(p.Elems, t, env)
	case *ast.ListPattern:
		l, ok := v.(List)
		return ok && in.matchAll(p.Elems, l, env)
	case *ast.LiteralPattern:
		return Equal(in.literal(p.Literal), v)
	}
	return false
}

func (in *Interpreter) matchAll(patterns []ast.Pattern, values []Value, env *Env) bool {
	if len(patterns) != len(values) {
		return false
	}
	for i, p := range patterns {
		if !in.match(p, values[i], env) {
			return false
		}
	}
	return true
}

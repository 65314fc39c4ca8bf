package desugar

import (
	"monadic/internal/ast"
)

// Strategy builds the syntax a do-block or pipeline expands into. It never
// evaluates anything: every method returns a new expression tree.
type Strategy interface {
	// Name is the strategy reference as written after `do` or `pipe`.
	Name() string

	// Return lifts value into the strategy.
	Return(value ast.Expr) ast.Expr

	// Bind sequences action with a continuation whose formal parameter is
	// param and whose body is body.
	Bind(action ast.Expr, param ast.Pattern, body ast.Expr) ast.Expr
}

// PipeBinder is implemented by strategies that supply their own pipeline
// step. Strategies without it get DefaultPipeBind.
type PipeBinder interface {
	PipeBind(acc ast.Expr, call *ast.CallExpr) ast.Expr
}

// Qualified is the strategy of a named runtime module: it emits calls to
// <Module>.bind and <Module>.return.
type Qualified struct {
	Module string
	Pos    ast.Position
}

// NewQualified returns the strategy for the module called name.
func NewQualified(name string, pos ast.Position) Qualified {
	return Qualified{Module: name, Pos: pos}
}

func (q Qualified) Name() string { return q.Module }

func (q Qualified) Return(value ast.Expr) ast.Expr {
	return &ast.CallExpr{
		Pos:    value.NodePos(),
		EndPos: value.NodeEndPos(),
		Callee: q.op("return", value.NodePos()),
		Args:   []ast.Expr{value},
	}
}

func (q Qualified) Bind(action ast.Expr, param ast.Pattern, body ast.Expr) ast.Expr {
	return &ast.CallExpr{
		Pos:    action.NodePos(),
		EndPos: body.NodeEndPos(),
		Callee: q.op("bind", action.NodePos()),
		Args: []ast.Expr{
			action,
			&ast.FuncLit{
				Pos:    param.NodePos(),
				EndPos: body.NodeEndPos(),
				Params: []ast.Pattern{param},
				Body:   body,
			},
		},
	}
}

func (q Qualified) op(name string, pos ast.Position) *ast.QualifiedIdent {
	if pos == (ast.Position{}) {
		pos = q.Pos
	}
	return &ast.QualifiedIdent{Pos: pos, EndPos: pos, Module: q.Module, Name: name}
}

// DefaultPipeBind derives a pipeline step from Bind:
//
//	bind(acc, fn $slot -> call($slot, args...) end)
//
// The parameter is a slot, which no surface identifier can name, so the
// stage's own arguments can never capture it.
func DefaultPipeBind(s Strategy, acc ast.Expr, call *ast.CallExpr, slot int) ast.Expr {
	pos := call.NodePos()
	param := &ast.SlotPattern{Pos: pos, EndPos: pos, ID: slot}
	return s.Bind(acc, param, withSubject(call, &ast.Slot{Pos: pos, EndPos: pos, ID: slot}))
}

// withSubject returns a copy of call with subject inserted as its first
// argument.
func withSubject(call *ast.CallExpr, subject ast.Expr) *ast.CallExpr {
	args := make([]ast.Expr, 0, len(call.Args)+1)
	args = append(args, subject)
	args = append(args, call.Args...)
	return &ast.CallExpr{Pos: call.Pos, EndPos: call.EndPos, Callee: call.Callee, Args: args}
}

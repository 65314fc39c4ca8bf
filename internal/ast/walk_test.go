package ast

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInspectVisitsInSourceOrder(t *testing.T) {
	expr := &CallExpr{
		Callee: &QualifiedIdent{Module: "maybe", Name: "bind"},
		Args: []Expr{
			ident("m"),
			&FuncLit{Params: []Pattern{&NamePattern{Name: "x"}}, Body: ident("x")},
		},
	}

	var names []string
	Inspect(expr, func(n Node) bool {
		switch v := n.(type) {
		case *Ident:
			names = append(names, v.Name)
		case *NamePattern:
			names = append(names, "pattern:"+v.Name)
		}
		return true
	})

	assert.Equal(t, []string{"m", "pattern:x", "x"}, names)
}

func TestInspectPrunes(t *testing.T) {
	do := &DoExpr{
		Strategy: Ident{Name: "maybe"},
		Block:    NewBlock(&PlainStmt{Action: ident("inner")}),
	}
	outer := &ListExpr{Elems: []Expr{ident("outer"), do}}

	var seen []string
	Inspect(outer, func(n Node) bool {
		if id, ok := n.(*Ident); ok {
			seen = append(seen, id.Name)
		}
		_, isDo := n.(*DoExpr)
		return !isDo
	})

	assert.Equal(t, []string{"outer"}, seen)
}

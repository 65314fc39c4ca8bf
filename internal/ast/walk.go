package ast

// Inspect traverses the tree rooted at node in depth-first order. It calls
// f(node); if f returns true, Inspect visits each child in source order.
func Inspect(node Node, f func(Node) bool) {
	if isNilNode(node) || !f(node) {
		return
	}
	for _, child := range Children(node) {
		Inspect(child, f)
	}
}

// Children returns the direct children of node in source order.
func Children(node Node) []Node {
	var children []Node

	switch n := node.(type) {
	case *Program:
		for _, stmt := range n.Statements {
			children = append(children, stmt)
		}

	case *Binding:
		children = append(children, n.Pattern, n.Value)

	case *Block:
		for _, stmt := range n.Statements {
			children = append(children, stmt)
		}

	case *BindStmt:
		children = append(children, n.Pattern, n.Action)

	case *LetStmt:
		for _, b := range n.Bindings {
			children = append(children, b)
		}

	case *PlainStmt:
		children = append(children, n.Action)

	case *TailStmt:
		children = append(children, n.Expr)

	case *CallExpr:
		children = append(children, n.Callee)
		for _, arg := range n.Args {
			children = append(children, arg)
		}

	case *UnaryExpr:
		children = append(children, n.Value)

	case *BinaryExpr:
		children = append(children, n.Left, n.Right)

	case *ListExpr:
		for _, e := range n.Elems {
			children = append(children, e)
		}

	case *TupleExpr:
		for _, e := range n.Elems {
			children = append(children, e)
		}

	case *FuncLit:
		for _, p := range n.Params {
			children = append(children, p)
		}
		children = append(children, n.Body)

	case *IfExpr:
		children = append(children, n.Cond, n.Then, n.Else)

	case *LetExpr:
		for _, b := range n.Bindings {
			children = append(children, b)
		}
		children = append(children, n.Body)

	case *DoExpr:
		children = append(children, &n.Strategy)
		if n.Block != nil {
			children = append(children, n.Block)
		}

	case *PipeExpr:
		children = append(children, &n.Strategy, n.Chain)

	case *TuplePattern:
		for _, p := range n.Elems {
			children = append(children, p)
		}

	case *ListPattern:
		for _, p := range n.Elems {
			children = append(children, p)
		}

	case *LiteralPattern:
		children = append(children, n.Literal)
	}

	return children
}

func isNilNode(node Node) bool {
	if node == nil {
		return true
	}
	switch n := node.(type) {
	case *Block:
		return n == nil
	case *Literal:
		return n == nil
	}
	return false
}

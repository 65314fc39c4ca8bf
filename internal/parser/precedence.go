package parser

import (
	"monadic/internal/ast"
)

var binaryPrecedence = map[string]int{
	"|>": 1,
	"||": 2,
	"&&": 3,
	"==": 4, "!=": 4,
	"<": 5, "<=": 5, ">": 5, ">=": 5,
	"+": 6, "-": 6, "++": 6,
	"*": 7, "/": 7,
}

// operatorSeq is a flat `operand (op operand)*` sequence as the grammar
// produces it. climb folds it into a tree; all operators are left
// associative.
type operatorSeq struct {
	operands []ast.Expr
	ops      []string
	next     int
}

func (s *operatorSeq) climb(minPrec int) ast.Expr {
	left := s.operands[s.next]
	s.next++

	for s.next-1 < len(s.ops) {
		op := s.ops[s.next-1]
		prec := binaryPrecedence[op]
		if prec < minPrec {
			break
		}

		right := s.climb(prec + 1)
		left = &ast.BinaryExpr{
			Pos:    left.NodePos(),
			EndPos: right.NodeEndPos(),
			Op:     op,
			Left:   left,
			Right:  right,
		}
	}

	return left
}

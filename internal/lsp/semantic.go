package lsp

import (
	"sort"

	"monadic/internal/ast"
	"monadic/token"
)

// SemanticToken represents a single LSP semantic token entry
// Line and StartChar are 0-based positions
// TokenType is an index into the semanticTokenTypes array
// TokenModifiers is a bitmask based on semanticTokenModifiers
type SemanticToken struct {
	Line           uint32
	StartChar      uint32
	Length         uint32
	TokenType      int // index into semanticTokenTypes
	TokenModifiers int // bitmask
}

// tokenCollector walks a parsed (not desugared) program. Strategy names
// and function parameters are recorded when their parent is visited so the
// generic ident and pattern cases can skip or retag them.
type tokenCollector struct {
	tokens     []SemanticToken
	strategies map[*ast.Ident]bool
	params     map[*ast.NamePattern]bool
}

func collectSemanticTokens(program *ast.Program) []SemanticToken {
	if program == nil {
		return nil
	}

	c := &tokenCollector{
		strategies: make(map[*ast.Ident]bool),
		params:     make(map[*ast.NamePattern]bool),
	}
	ast.Inspect(program, c.visit)

	sort.SliceStable(c.tokens, func(i, j int) bool {
		if c.tokens[i].Line != c.tokens[j].Line {
			return c.tokens[i].Line < c.tokens[j].Line
		}
		return c.tokens[i].StartChar < c.tokens[j].StartChar
	})
	return c.tokens
}

func (c *tokenCollector) visit(n ast.Node) bool {
	switch v := n.(type) {
	case *ast.LetStmt:
		c.keyword(v.Pos, "let")

	case *ast.DoExpr:
		c.keyword(v.Pos, "do")
		c.strategy(&v.Strategy)

	case *ast.PipeExpr:
		c.keyword(v.Pos, "pipe")
		c.strategy(&v.Strategy)

	case *ast.FuncLit:
		c.keyword(v.Pos, "fn")
		for _, p := range v.Params {
			ast.Inspect(p, func(n ast.Node) bool {
				if name, ok := n.(*ast.NamePattern); ok {
					c.params[name] = true
				}
				return true
			})
		}

	case *ast.IfExpr:
		c.keyword(v.Pos, "if")

	case *ast.NamePattern:
		if c.params[v] {
			c.add(v.Pos, v.EndPos, v.Name, "parameter", 1)
		} else {
			c.add(v.Pos, v.EndPos, v.Name, "variable", 1)
		}

	case *ast.Ident:
		switch {
		case c.strategies[v]:
		case v.Name == token.Return:
			c.add(v.Pos, v.EndPos, v.Name, "keyword", 0)
		default:
			c.add(v.Pos, v.EndPos, v.Name, "variable", 0)
		}

	case *ast.QualifiedIdent:
		c.add(v.Pos, ast.Position{}, v.Module, "namespace", 0)
		if v.EndPos.Line == v.Pos.Line {
			start := v.EndPos
			start.Column -= len(v.Name)
			c.add(start, v.EndPos, v.Name, "function", 0)
		}

	case *ast.Literal:
		switch v.Kind {
		case ast.IntLit:
			c.add(v.Pos, v.EndPos, v.Value, "number", 0)
		case ast.StringLit:
			c.add(v.Pos, v.EndPos, v.Value, "string", 0)
		default:
			c.add(v.Pos, v.EndPos, v.Value, "keyword", 0)
		}
	}
	return true
}

func (c *tokenCollector) keyword(pos ast.Position, word string) {
	c.add(pos, ast.Position{}, word, "keyword", 0)
}

func (c *tokenCollector) strategy(id *ast.Ident) {
	c.strategies[id] = true
	c.add(id.Pos, id.EndPos, id.Name, "namespace", 0)
}

func (c *tokenCollector) add(pos, endPos ast.Position, value, tokenType string, declModifier int) {
	c.tokens = append(c.tokens, makeToken(pos, endPos, value, tokenType, declModifier)...)
}

// makeToken creates a semantic token for a given position and text. The
// length comes from the span when it is on one line, else from the text.
func makeToken(pos, endPos ast.Position, value, tokenType string, declModifier int) []SemanticToken {
	if value == "" || pos.Line == 0 {
		return nil
	}

	length := len(value)
	if endPos.Line == pos.Line && endPos.Column > pos.Column {
		length = endPos.Column - pos.Column
	}

	return []SemanticToken{{
		Line:           uint32(pos.Line - 1),   // LSP uses 0-based line numbers
		StartChar:      uint32(pos.Column - 1), // LSP uses 0-based column numbers
		Length:         uint32(length),
		TokenType:      indexOf(tokenType, SemanticTokenTypes),
		TokenModifiers: declModifier << indexOf("declaration", SemanticTokenModifiers),
	}}
}

func indexOf(target string, list []string) int {
	for i, item := range list {
		if item == target {
			return i
		}
	}
	return 0
}

package lsp

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
	protocol "github.com/tliron/glsp/protocol_3_16"

	"monadic/grammar"
	"monadic/internal/ast"
	"monadic/internal/stdlib"
	"monadic/token"
)

// linePrefix returns the text of pos's line up to pos. Characters are
// counted as bytes, which matches UTF-16 offsets for ASCII source.
func linePrefix(source string, pos protocol.Position) string {
	lines := strings.Split(source, "\n")
	if int(pos.Line) >= len(lines) {
		return ""
	}
	line := lines[pos.Line]
	return line[:min(int(pos.Character), len(line))]
}

// qualifier reports the strategy module being qualified at the end of
// prefix: "maybe." and "maybe.ju" both give "maybe".
func qualifier(prefix string) (string, bool) {
	lex, err := grammar.MonadicLexer.LexString("", prefix)
	if err != nil {
		return "", false
	}
	tokens, err := lexer.ConsumeAll(lex)
	if err != nil {
		return "", false
	}

	symbols := grammar.MonadicLexer.Symbols()
	ident, punct := symbols["Ident"], symbols["Punctuation"]

	// Drop EOF and a partially typed operation name.
	tokens = tokens[:len(tokens)-1]
	if n := len(tokens); n > 0 && tokens[n-1].Type == ident {
		tokens = tokens[:n-1]
	}

	n := len(tokens)
	if n < 2 || tokens[n-1].Type != punct || tokens[n-1].Value != "." || tokens[n-2].Type != ident {
		return "", false
	}
	module := tokens[n-2].Value
	return module, stdlib.IsKnownModule(module)
}

func completionItems(prefix string) []protocol.CompletionItem {
	if module, ok := qualifier(prefix); ok {
		return operationItems(stdlib.GetModuleDefinition(module))
	}

	var items []protocol.CompletionItem
	for _, word := range append(token.Keywords(), token.Return) {
		items = append(items, protocol.CompletionItem{
			Label: word,
			Kind:  ptrCompletionKind(protocol.CompletionItemKindKeyword),
		})
	}
	for _, name := range stdlib.StrategyNames() {
		def := stdlib.GetModuleDefinition(name)
		items = append(items, protocol.CompletionItem{
			Label:         name,
			Kind:          ptrCompletionKind(protocol.CompletionItemKindModule),
			Detail:        ptrString(def.Type.String()),
			Documentation: def.Doc,
		})
	}
	return items
}

func operationItems(def *stdlib.ModuleDefinition) []protocol.CompletionItem {
	items := make([]protocol.CompletionItem, 0, len(def.Functions))
	for _, name := range def.FunctionNames() {
		fn := def.Functions[name]
		items = append(items, protocol.CompletionItem{
			Label:         name,
			Kind:          ptrCompletionKind(protocol.CompletionItemKindFunction),
			Detail:        ptrString(fn.Signature()),
			Documentation: fn.Doc,
		})
	}
	return items
}

// hoverAt describes the strategy name or qualified operation at pos.
func hoverAt(program *ast.Program, pos protocol.Position) *protocol.Hover {
	line, col := int(pos.Line)+1, int(pos.Character)+1
	within := func(n ast.Node) bool {
		start, end := n.NodePos(), n.NodeEndPos()
		return start.Line == line && end.Line == line && start.Column <= col && col < end.Column
	}

	var hover *protocol.Hover
	ast.Inspect(program, func(n ast.Node) bool {
		if hover != nil {
			return false
		}
		switch v := n.(type) {
		case *ast.DoExpr:
			hover = moduleHover(&v.Strategy, within)
		case *ast.PipeExpr:
			hover = moduleHover(&v.Strategy, within)
		case *ast.QualifiedIdent:
			if !within(v) {
				break
			}
			def := stdlib.GetModuleDefinition(v.Module)
			if def == nil {
				break
			}
			if fn, ok := def.Functions[v.Name]; ok {
				hover = markdownHover("```\n" + v.Module + "." + fn.Signature() + "\n```\n" + fn.Doc)
			}
		}
		return true
	})
	return hover
}

func moduleHover(id *ast.Ident, within func(ast.Node) bool) *protocol.Hover {
	if !within(id) {
		return nil
	}
	def := stdlib.GetModuleDefinition(id.Name)
	if def == nil {
		return nil
	}
	return markdownHover("```\n" + def.Name + ": " + def.Type.String() + "\n```\n" + def.Doc)
}

func markdownHover(text string) *protocol.Hover {
	return &protocol.Hover{
		Contents: protocol.MarkupContent{Kind: protocol.MarkupKindMarkdown, Value: text},
	}
}

func ptrCompletionKind(k protocol.CompletionItemKind) *protocol.CompletionItemKind {
	return &k
}

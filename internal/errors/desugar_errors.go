package errors

import (
	"fmt"
	"strings"

	"monadic/internal/ast"
)

// DiagnosticBuilder provides a fluent interface for creating diagnostics with suggestions
type DiagnosticBuilder struct {
	err CompilerError
}

// NewDiagnostic creates a new error builder
func NewDiagnostic(code, message string, pos ast.Position) *DiagnosticBuilder {
	return &DiagnosticBuilder{
		err: CompilerError{
			Level:    Error,
			Code:     code,
			Message:  message,
			Position: pos,
			Length:   1,
		},
	}
}

// WithLength sets the length of the error span
func (b *DiagnosticBuilder) WithLength(length int) *DiagnosticBuilder {
	b.err.Length = length
	return b
}

// WithSuggestion adds a suggestion to the error
func (b *DiagnosticBuilder) WithSuggestion(message string) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{Message: message})
	return b
}

// WithReplacement adds a suggestion with replacement text
func (b *DiagnosticBuilder) WithReplacement(message, replacement string, pos ast.Position, length int) *DiagnosticBuilder {
	b.err.Suggestions = append(b.err.Suggestions, Suggestion{
		Message:     message,
		Replacement: replacement,
		Position:    pos,
		Length:      length,
	})
	return b
}

// WithNote adds a note to the error
func (b *DiagnosticBuilder) WithNote(note string) *DiagnosticBuilder {
	b.err.Notes = append(b.err.Notes, note)
	return b
}

// WithHelp adds help text to the error
func (b *DiagnosticBuilder) WithHelp(help string) *DiagnosticBuilder {
	b.err.HelpText = help
	return b
}

// Build returns the completed compiler error
func (b *DiagnosticBuilder) Build() CompilerError {
	return b.err
}

// SyntaxError wraps a parser failure
func SyntaxError(message string, pos ast.Position) CompilerError {
	return NewDiagnostic(ErrorSyntax, message, pos).Build()
}

// MissingBlock reports a do-block without statements at pos. The fix-it
// replaces the length bytes of the empty block at block with one that
// returns unit; length 0 inserts the block there.
func MissingBlock(strategy string, pos, block ast.Position, length int) CompilerError {
	replacement := fmt.Sprintf("{ %s.return({}) }", strategy)
	if length == 0 {
		replacement = " " + replacement
	}
	return NewDiagnostic(ErrorMissingBlock, fmt.Sprintf("do %s requires a block with at least one statement", strategy), pos).
		WithLength(len("do")).
		WithReplacement("add a final expression", replacement, block, length).
		Build()
}

// TrailingBind reports a do-block whose last statement binds a name nothing can use
func TrailingBind(pattern string, pos ast.Position) CompilerError {
	return NewDiagnostic(ErrorTrailingBind, fmt.Sprintf("the last statement of a do-block cannot bind '%s'", pattern), pos).
		WithLength(len(pattern)).
		WithSuggestion("drop the binding and use the action as the final expression").
		WithNote("a do-block evaluates to its final expression").
		Build()
}

// TrailingLet reports a do-block that ends with let
func TrailingLet(pos ast.Position) CompilerError {
	return NewDiagnostic(ErrorTrailingLet, "the last statement of a do-block cannot be a let", pos).
		WithLength(len("let")).
		WithSuggestion("add an expression after the let that uses its bindings").
		Build()
}

// MissingPipeline reports a pipe expression without a |> chain
func MissingPipeline(strategy string, pos ast.Position) CompilerError {
	return NewDiagnostic(ErrorMissingPipeline, fmt.Sprintf("pipe %s requires a chain of the form seed |> f(...) |> g(...)", strategy), pos).
		WithLength(len("pipe")).
		WithHelp("a single expression needs no pipeline; remove the pipe wrapper").
		Build()
}

// PipeStageNotCall reports a pipeline stage that is not a call expression.
// Only a named function can be turned into a call, so other stages get no
// replacement.
func PipeStageNotCall(stage string, pos ast.Position, length int, named bool) CompilerError {
	builder := NewDiagnostic(ErrorPipeStageNotCall, fmt.Sprintf("pipeline stage '%s' is not a call", stage), pos).
		WithLength(length)
	if named {
		builder = builder.WithReplacement("call it with no extra arguments", stage+"()", pos, length)
	} else {
		builder = builder.WithSuggestion("use a function call such as f(...) as the stage")
	}
	return builder.
		WithNote("the accumulated value is passed as the first argument of each stage").
		Build()
}

// ReturnArity reports an unqualified return called with more than one
// argument. args are the rendered arguments; the fix-it packs them into a
// tuple.
func ReturnArity(args []string, pos ast.Position, length int) CompilerError {
	return NewDiagnostic(ErrorReturnArity, fmt.Sprintf("return takes one argument, got %d", len(args)), pos).
		WithLength(length).
		WithReplacement("return a tuple", "return({"+strings.Join(args, ", ")+"})", pos, length).
		Build()
}

// UnknownStrategy reports a strategy name that is not registered
func UnknownStrategy(name string, pos ast.Position, available []string) CompilerError {
	builder := NewDiagnostic(ErrorUnknownStrategy, fmt.Sprintf("unknown strategy '%s'", name), pos).
		WithLength(len(name))

	similar := findSimilarNames(name, available)
	if len(similar) == 1 {
		builder = builder.WithReplacement(fmt.Sprintf("did you mean '%s'?", similar[0]), similar[0], pos, len(name))
	} else if len(similar) > 1 {
		builder = builder.WithSuggestion(fmt.Sprintf("did you mean one of: '%s'?", strings.Join(similar, "', '")))
	}

	if len(available) > 0 {
		builder = builder.WithNote("available strategies: " + strings.Join(available, ", "))
	}
	return builder.Build()
}

func findSimilarNames(target string, candidates []string) []string {
	var similar []string

	for _, candidate := range candidates {
		if levenshteinDistance(target, candidate) <= 2 && len(candidate) > 2 {
			similar = append(similar, candidate)
		}
	}

	return similar
}

// Simple Levenshtein distance implementation for finding similar names
func levenshteinDistance(a, b string) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	matrix := make([][]int, len(a)+1)
	for i := range matrix {
		matrix[i] = make([]int, len(b)+1)
	}

	for i := 0; i <= len(a); i++ {
		matrix[i][0] = i
	}
	for j := 0; j <= len(b); j++ {
		matrix[0][j] = j
	}

	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			matrix[i][j] = min(
				matrix[i-1][j]+1,      // deletion
				matrix[i][j-1]+1,      // insertion
				matrix[i-1][j-1]+cost, // substitution
			)
		}
	}

	return matrix[len(a)][len(b)]
}

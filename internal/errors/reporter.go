package errors

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/fatih/color"

	"monadic/internal/ast"
)

// ErrorLevel is the severity printed in a diagnostic header. Every
// diagnostic of the toolchain stops the program from running, so Error is
// the only level.
type ErrorLevel string

const Error ErrorLevel = "error"

// CompilerError represents a structured error with suggestions and context
type CompilerError struct {
	Level       ErrorLevel
	Code        string       // Error code like E0200
	Message     string       // Primary error message
	Position    ast.Position // Location in source
	Length      int          // Length of the problematic region
	Suggestions []Suggestion // Suggested fixes
	Notes       []string     // Additional context notes
	HelpText    string       // Help text for the error
}

// Error renders the error on one line: "file:line:col: error[E0200]: message"
func (err CompilerError) Error() string {
	var b strings.Builder
	if err.Position.Filename != "" {
		fmt.Fprintf(&b, "%s:%d:%d: ", err.Position.Filename, err.Position.Line, err.Position.Column)
	} else if err.Position.Line > 0 {
		fmt.Fprintf(&b, "%d:%d: ", err.Position.Line, err.Position.Column)
	}
	b.WriteString(string(err.Level))
	if err.Code != "" {
		b.WriteString("[" + err.Code + "]")
	}
	b.WriteString(": " + err.Message)
	return b.String()
}

// Suggestion is a fix-it. With a Replacement and a Position it replaces
// Length bytes of source at Position; Length 0 inserts.
type Suggestion struct {
	Message     string
	Replacement string
	Position    ast.Position
	Length      int
}

// Located reports whether the suggestion names the span it rewrites.
func (s Suggestion) Located() bool {
	return s.Replacement != "" && s.Position.Line > 0
}

var (
	errorStyle  = color.New(color.FgRed, color.Bold).SprintFunc()
	fixStyle    = color.New(color.FgGreen, color.Bold).SprintFunc()
	helpStyle   = color.New(color.FgCyan).SprintFunc()
	noteStyle   = color.New(color.FgBlue).SprintFunc()
	boldStyle   = color.New(color.Bold).SprintFunc()
	gutterStyle = color.New(color.Faint).SprintFunc()
)

// ErrorReporter renders diagnostics against the source they were found in.
type ErrorReporter struct {
	filename string
	lines    []string
}

func NewErrorReporter(filename, source string) *ErrorReporter {
	return &ErrorReporter{
		filename: filename,
		lines:    strings.Split(source, "\n"),
	}
}

// FormatError renders err in the style of rustc:
//
//	error[E0204]: pipeline stage 'f' is not a call
//	    --> test.mo:1:18
//	     │
//	   1 │ pipe maybe (x |> f)
//	     │                  ^
//	     │
//	     = help: call it with no extra arguments
//	   1 │ pipe maybe (x |> f())
//	     │                  +++
//
// Located fix-its are shown applied to their source line.
func (er *ErrorReporter) FormatError(err CompilerError) string {
	var b strings.Builder
	g := er.gutterFor(err)

	b.WriteString(errorStyle(string(err.Level)))
	if err.Code != "" {
		b.WriteString(errorStyle("[" + err.Code + "]"))
	}
	fmt.Fprintf(&b, ": %s\n", boldStyle(err.Message))
	fmt.Fprintf(&b, "%s %s %s:%d:%d\n", g.pad, gutterStyle("-->"), er.filename, err.Position.Line, err.Position.Column)
	g.rule(&b)

	line := err.Position.Line
	if text, ok := er.line(line - 1); ok {
		g.source(&b, line-1, text)
	}
	if text, ok := er.line(line); ok {
		g.source(&b, line, text)
		g.marker(&b, err.Position.Column, err.Length, "^", errorStyle)
	}
	if text, ok := er.line(line + 1); ok {
		g.source(&b, line+1, text)
	}

	if len(err.Suggestions) > 0 {
		g.rule(&b)
	}
	for _, s := range err.Suggestions {
		er.writeSuggestion(&b, g, s)
	}
	for _, note := range err.Notes {
		fmt.Fprintf(&b, "%s = %s %s\n", g.pad, noteStyle("note:"), note)
	}
	if err.HelpText != "" {
		fmt.Fprintf(&b, "%s = %s %s\n", g.pad, helpStyle("help:"), err.HelpText)
	}

	b.WriteString("\n")
	return b.String()
}

func (er *ErrorReporter) writeSuggestion(b *strings.Builder, g gutter, s Suggestion) {
	fmt.Fprintf(b, "%s = %s %s\n", g.pad, helpStyle("help:"), s.Message)
	if s.Replacement == "" {
		return
	}
	if patched, ok := er.patch(s); ok {
		g.source(b, s.Position.Line, patched)
		g.marker(b, s.Position.Column, len(s.Replacement), "+", fixStyle)
		return
	}
	for _, text := range strings.Split(s.Replacement, "\n") {
		fmt.Fprintf(b, "%s %s %s\n", g.pad, gutterStyle("│"), fixStyle(text))
	}
}

// patch returns the source line of a located single-line suggestion with
// the suggestion applied.
func (er *ErrorReporter) patch(s Suggestion) (string, bool) {
	if !s.Located() || strings.Contains(s.Replacement, "\n") {
		return "", false
	}
	text, ok := er.line(s.Position.Line)
	start := s.Position.Column - 1
	if !ok || start < 0 || start+s.Length > len(text) {
		return "", false
	}
	return text[:start] + s.Replacement + text[start+s.Length:], true
}

func (er *ErrorReporter) line(n int) (string, bool) {
	if n < 1 || n > len(er.lines) {
		return "", false
	}
	return er.lines[n-1], true
}

// gutter is the line number column on the left of the rendered source.
type gutter struct {
	width int
	pad   string
}

// gutterFor sizes the gutter for every line number err can print.
func (er *ErrorReporter) gutterFor(err CompilerError) gutter {
	last := err.Position.Line + 1
	for _, s := range err.Suggestions {
		last = max(last, s.Position.Line)
	}
	width := max(len(strconv.Itoa(last)), 3)
	return gutter{width: width, pad: strings.Repeat(" ", width)}
}

func (g gutter) rule(b *strings.Builder) {
	fmt.Fprintf(b, "%s %s\n", g.pad, gutterStyle("│"))
}

func (g gutter) source(b *strings.Builder, n int, text string) {
	fmt.Fprintf(b, "%s %s %s\n", gutterStyle(fmt.Sprintf("%*d", g.width, n)), gutterStyle("│"), text)
}

func (g gutter) marker(b *strings.Builder, column, length int, mark string, style func(...interface{}) string) {
	fmt.Fprintf(b, "%s %s %s\n", g.pad, gutterStyle("│"), underline(column, length, mark, style))
}

// underline places max(length, 1) copies of mark under column.
func underline(column, length int, mark string, style func(...interface{}) string) string {
	return strings.Repeat(" ", max(column-1, 0)) + style(strings.Repeat(mark, max(length, 1)))
}

// FormatErrors formats every error in order
func (er *ErrorReporter) FormatErrors(errs []CompilerError) string {
	var result strings.Builder
	for _, err := range errs {
		result.WriteString(er.FormatError(err))
	}
	return result.String()
}

// Package repl is the interactive front end. Every entry is compiled and
// run against one interpreter, so top-level lets stay in scope.
package repl

import (
	stderrors "errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/tliron/commonlog"

	"monadic/grammar"
	"monadic/internal/ast"
	"monadic/internal/compiler"
	"monadic/internal/errors"
	"monadic/internal/eval"
	"monadic/internal/stdlib"
	"monadic/token"
)

const (
	PROMPT      = "==> "
	CONTINUE    = "... "
	historyFile = ".monadic_history"
	source      = "<repl>"
)

const helpText = `REPL commands:
  :help        Show this message
  :env         List the names bound by top-level lets
  :strategies  List the strategy modules and their operations
  :expand      Toggle printing of the desugared form of each entry
  :quit        Exit the REPL
`

var log = commonlog.GetLogger("monadic.repl")

// Session holds the state shared by consecutive entries.
type Session struct {
	interp *eval.Interpreter
	out    io.Writer
	errOut io.Writer
	expand bool
}

func NewSession(out, errOut io.Writer) *Session {
	return &Session{interp: eval.New(), out: out, errOut: errOut}
}

// Eval handles one complete entry. It returns false once the user asked
// to leave.
func (s *Session) Eval(entry string) bool {
	entry = strings.TrimSpace(entry)
	if entry == "" {
		return true
	}
	if strings.HasPrefix(entry, ":") {
		return s.command(entry)
	}

	unit := compiler.Compile(source, entry)
	if unit.HasErrors() {
		reporter := errors.NewErrorReporter(source, entry)
		fmt.Fprint(s.errOut, reporter.FormatErrors(unit.Errors))
		return true
	}
	if s.expand {
		fmt.Fprint(s.out, color.HiBlackString(unit.Desugared.String()))
	}

	v, err := s.interp.Run(unit.Desugared)
	if err != nil {
		fmt.Fprintln(s.errOut, color.RedString(err.Error()))
		return true
	}
	if endsInExpression(unit.Desugared.Statements) {
		fmt.Fprintln(s.out, color.CyanString(v.String()))
	}
	return true
}

func (s *Session) command(entry string) bool {
	switch strings.ToLower(entry) {
	case ":quit", ":q":
		return false
	case ":help":
		fmt.Fprint(s.out, helpText)
	case ":env":
		for _, name := range s.interp.Globals().Names() {
			v, _ := s.interp.Globals().Get(name)
			fmt.Fprintf(s.out, "%s = %s\n", name, v)
		}
	case ":strategies":
		for _, name := range stdlib.StrategyNames() {
			mod := stdlib.GetModuleDefinition(name)
			fmt.Fprintf(s.out, "%s: %s\n", color.GreenString(name), mod.Type)
			fmt.Fprintf(s.out, "    %s\n", strings.Join(mod.FunctionNames(), " "))
		}
	case ":expand":
		s.expand = !s.expand
		fmt.Fprintf(s.out, "expand: %t\n", s.expand)
	default:
		fmt.Fprintf(s.errOut, "unknown command %s. Type :help for a list.\n", entry)
	}
	return true
}

func endsInExpression(stmts []ast.Statement) bool {
	if len(stmts) == 0 {
		return false
	}
	_, isLet := stmts[len(stmts)-1].(*ast.LetStmt)
	return !isLet
}

// Complete returns the candidate completions for line, each being the
// whole line with its last word replaced.
func (s *Session) Complete(line string) []string {
	start := strings.LastIndexFunc(line, func(r rune) bool {
		return !(r == '_' || r == '.' || r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9')
	}) + 1
	head, word := line[:start], line[start:]

	var candidates []string
	if module, partial, ok := strings.Cut(word, "."); ok {
		mod := stdlib.GetModuleDefinition(module)
		if mod == nil {
			return nil
		}
		for _, name := range mod.FunctionNames() {
			if strings.HasPrefix(name, partial) {
				candidates = append(candidates, head+module+"."+name)
			}
		}
		return candidates
	}

	words := append(token.Keywords(), token.Return)
	words = append(words, stdlib.StrategyNames()...)
	words = append(words, s.interp.Globals().Names()...)
	for _, w := range words {
		if word != "" && strings.HasPrefix(w, word) {
			candidates = append(candidates, head+w)
		}
	}
	return candidates
}

// Start runs the interactive loop on the terminal until EOF or :quit.
func Start(username string) int {
	fmt.Printf("Welcome to the monadic REPL, %s!\n", username)
	fmt.Println("Ctrl+C cancels input, Ctrl+D exits. Type :help for commands.")

	session := NewSession(os.Stdout, os.Stderr)

	home, _ := os.UserHomeDir()
	histPath := filepath.Join(home, historyFile)

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)
	ln.SetCompleter(session.Complete)

	if f, err := os.Open(histPath); err == nil {
		_, _ = ln.ReadHistory(f)
		_ = f.Close()
	}
	defer func() {
		if f, err := os.Create(histPath); err == nil {
			_, _ = ln.WriteHistory(f)
			_ = f.Close()
		}
	}()

	sigc := make(chan os.Signal, 1)
	signal.Notify(sigc, syscall.SIGTERM, syscall.SIGHUP)
	defer signal.Stop(sigc)
	go func() {
		<-sigc
		ln.Close()
		os.Exit(130)
	}()

	for {
		entry, ok := readEntry(ln)
		if !ok {
			fmt.Println()
			return 0
		}
		if strings.TrimSpace(entry) == "" {
			continue
		}
		ln.AppendHistory(strings.ReplaceAll(entry, "\n", " "))
		if !session.Eval(entry) {
			return 0
		}
	}
}

// readEntry keeps prompting while the accumulated input parses as
// incomplete. An aborted line discards the entry.
func readEntry(ln *liner.State) (string, bool) {
	var b strings.Builder
	for {
		prompt := PROMPT
		if b.Len() > 0 {
			prompt = CONTINUE
		}
		line, err := ln.Prompt(prompt)
		if stderrors.Is(err, io.EOF) {
			return "", false
		}
		if stderrors.Is(err, liner.ErrPromptAborted) {
			return "", true
		}
		if err != nil {
			log.Errorf("reading input: %s", err)
			return "", false
		}

		if b.Len() > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(line)

		src := b.String()
		if strings.HasPrefix(strings.TrimSpace(src), ":") {
			return src, true
		}
		if _, perr := grammar.ParseString(source, src); perr != nil && grammar.IsIncomplete(src, perr) {
			continue
		}
		return src, true
	}
}

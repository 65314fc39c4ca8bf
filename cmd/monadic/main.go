// SPDX-License-Identifier: Apache-2.0
package main

import (
	"flag"
	"fmt"
	"os"
	"os/user"
	"time"

	"github.com/fatih/color"
	"github.com/tliron/commonlog"
	_ "github.com/tliron/commonlog/simple"

	"monadic/grammar"
	"monadic/internal/compiler"
	"monadic/internal/errors"
	"monadic/internal/eval"
	"monadic/repl"
)

const usage = `Usage: monadic <command> [flags] [file.mo]

Commands:
  run     Desugar and evaluate a program, printing its value
  expand  Print the desugared form of a program
  check   Report diagnostics without evaluating (-fix applies fix-its)
  fmt     Print a program in canonical layout (-w rewrites the file)
  repl    Start the interactive REPL
`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	var code int
	switch cmd, args := os.Args[1], os.Args[2:]; cmd {
	case "run":
		code = cmdRun(args)
	case "expand":
		code = cmdExpand(args)
	case "check":
		code = cmdCheck(args)
	case "fmt":
		code = cmdFmt(args)
	case "repl":
		code = cmdRepl(args)
	case "-h", "--help", "help":
		fmt.Print(usage)
	default:
		fmt.Fprintf(os.Stderr, "unknown command %q\n\n%s", cmd, usage)
		code = 2
	}
	os.Exit(code)
}

// commonFlags registers the flags every command takes and returns a
// function that applies them after parsing.
func commonFlags(fs *flag.FlagSet) func() {
	noColor := fs.Bool("no-color", false, "disable colored output")
	verbose := fs.Int("v", 0, "log verbosity (0 is quiet, 2 logs debug)")
	return func() {
		if *noColor {
			color.NoColor = true
		}
		commonlog.Configure(*verbose, nil)
	}
}

// parseFileArgs parses flags and requires exactly one source file.
func parseFileArgs(fs *flag.FlagSet, args []string) (string, bool) {
	apply := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return "", false
	}
	apply()
	if fs.NArg() != 1 {
		fmt.Fprintf(os.Stderr, "Usage: monadic %s [flags] <file.mo>\n", fs.Name())
		return "", false
	}
	return fs.Arg(0), true
}

// compile reports read failures and diagnostics, returning nil when the
// program cannot be used.
func compile(path string) *compiler.Unit {
	unit, err := compiler.CompileFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return nil
	}
	if unit.HasErrors() {
		reporter := errors.NewErrorReporter(path, unit.Source)
		fmt.Fprint(os.Stderr, reporter.FormatErrors(unit.Errors))
		return nil
	}
	return unit
}

func cmdRun(args []string) int {
	path, ok := parseFileArgs(flag.NewFlagSet("run", flag.ContinueOnError), args)
	if !ok {
		return 2
	}
	unit := compile(path)
	if unit == nil {
		return 1
	}

	v, err := eval.New().Run(unit.Desugared)
	if err != nil {
		color.Red(err.Error())
		return 1
	}
	fmt.Println(v)
	return 0
}

func cmdExpand(args []string) int {
	path, ok := parseFileArgs(flag.NewFlagSet("expand", flag.ContinueOnError), args)
	if !ok {
		return 2
	}
	unit := compile(path)
	if unit == nil {
		return 1
	}
	fmt.Print(unit.Desugared.String())
	return 0
}

func cmdCheck(args []string) int {
	fs := flag.NewFlagSet("check", flag.ContinueOnError)
	fix := fs.Bool("fix", false, "apply the suggested fixes to the file")
	path, ok := parseFileArgs(fs, args)
	if !ok {
		return 2
	}
	if *fix {
		if code := applyFixes(path); code != 0 {
			return code
		}
	}

	startTime := time.Now()
	unit := compile(path)
	formattedDuration := formatDuration(time.Since(startTime))

	if unit == nil {
		color.Red("Check failed after %s", formattedDuration)
		return 1
	}
	color.Green("Successfully checked %s in %s", path, formattedDuration)
	return 0
}

// maxFixPasses bounds applyFixes; a fix can expose diagnostics that were
// hidden behind the one it repaired.
const maxFixPasses = 4

// applyFixes rewrites path with the located fix-its of its diagnostics,
// recompiling after each pass.
func applyFixes(path string) int {
	content, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read file: %v", err)
		return 1
	}
	source, total := string(content), 0
	for i := 0; i < maxFixPasses; i++ {
		fixed, n := errors.ApplyFixes(source, compiler.Compile(path, source).Errors)
		if n == 0 {
			break
		}
		source, total = fixed, total+n
	}
	if total == 0 {
		return 0
	}
	if err := os.WriteFile(path, []byte(source), 0o644); err != nil {
		color.Red("failed to write file: %v", err)
		return 1
	}
	fmt.Printf("Applied %d fix(es) to %s\n", total, path)
	return 0
}

func cmdFmt(args []string) int {
	fs := flag.NewFlagSet("fmt", flag.ContinueOnError)
	write := fs.Bool("w", false, "write the result back to the file")
	path, ok := parseFileArgs(fs, args)
	if !ok {
		return 2
	}

	source, err := os.ReadFile(path)
	if err != nil {
		color.Red("failed to read file: %v", err)
		return 1
	}
	formatted, err := grammar.Format(path, string(source))
	if err != nil {
		color.Red(err.Error())
		return 1
	}
	if !*write {
		fmt.Print(formatted)
		return 0
	}
	if err := os.WriteFile(path, []byte(formatted), 0o644); err != nil {
		color.Red("failed to write file: %v", err)
		return 1
	}
	return 0
}

func cmdRepl(args []string) int {
	fs := flag.NewFlagSet("repl", flag.ContinueOnError)
	apply := commonFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}
	apply()

	name := "there"
	if u, err := user.Current(); err == nil {
		name = u.Username
	}
	return repl.Start(name)
}

func formatDuration(d time.Duration) string {
	switch {
	case d >= time.Minute:
		return fmt.Sprintf("%.2fmin", d.Minutes())
	case d >= time.Second:
		return fmt.Sprintf("%.2fs", d.Seconds())
	case d >= time.Millisecond:
		return fmt.Sprintf("%.1fms", float64(d.Nanoseconds())/1000000.0)
	case d >= time.Microsecond:
		return fmt.Sprintf("%.1fμs", float64(d.Nanoseconds())/1000.0)
	default:
		return fmt.Sprintf("%dns", d.Nanoseconds())
	}
}

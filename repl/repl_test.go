package repl

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t *testing.T) (*Session, *bytes.Buffer, *bytes.Buffer) {
	t.Helper()
	color.NoColor = true
	var out, errOut bytes.Buffer
	return NewSession(&out, &errOut), &out, &errOut
}

func TestSessionKeepsBindings(t *testing.T) {
	s, out, errOut := newTestSession(t)

	require.True(t, s.Eval("let x = 2"))
	assert.Empty(t, out.String(), "lets print nothing")

	require.True(t, s.Eval("x + 3"))
	assert.Equal(t, "5\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestSessionDoBlock(t *testing.T) {
	s, out, errOut := newTestSession(t)

	s.Eval("do maybe {\n    x <- maybe.just(2)\n    return(x * 4)\n}")
	assert.Equal(t, "just(8)\n", out.String())
	assert.Empty(t, errOut.String())
}

func TestSessionCompileError(t *testing.T) {
	s, out, errOut := newTestSession(t)

	assert.True(t, s.Eval("do mabye { return(1) }"))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "E0205")
	assert.Contains(t, errOut.String(), "<repl>:1:")
}

func TestSessionRuntimeError(t *testing.T) {
	s, out, errOut := newTestSession(t)

	assert.True(t, s.Eval("1 / 0"))
	assert.Empty(t, out.String())
	assert.Contains(t, errOut.String(), "runtime error: division by zero")
}

func TestSessionCommands(t *testing.T) {
	s, out, errOut := newTestSession(t)

	s.Eval("let y = 1")
	s.Eval(":env")
	assert.Equal(t, "y = 1\n", out.String())

	out.Reset()
	s.Eval(":expand")
	assert.Equal(t, "expand: true\n", out.String())

	out.Reset()
	s.Eval("do maybe { a <- maybe.just(1); return(a) }")
	assert.Contains(t, out.String(), "maybe.bind")
	assert.Contains(t, out.String(), "just(1)\n")

	out.Reset()
	s.Eval(":strategies")
	assert.Contains(t, out.String(), "state: State<S, A>")

	s.Eval(":nope")
	assert.Contains(t, errOut.String(), "unknown command :nope")

	assert.False(t, s.Eval(":quit"))
}

func TestComplete(t *testing.T) {
	s, _, _ := newTestSession(t)
	s.Eval("let counter = 1")

	tests := []struct {
		line     string
		expected []string
	}{
		{"state.mo", []string{"state.modify"}},
		{"let s = state.ge", []string{"let s = state.get", "let s = state.gets"}},
		{"re", []string{"reader", "result", "return"}},
		{"cou", []string{"counter"}},
		{"nothing.ju", nil},
		{"", nil},
	}

	for _, tt := range tests {
		t.Run(tt.line, func(t *testing.T) {
			assert.ElementsMatch(t, tt.expected, s.Complete(tt.line))
		})
	}
}

package lsp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	protocol "github.com/tliron/glsp/protocol_3_16"
)

func TestQualifier(t *testing.T) {
	tests := []struct {
		prefix string
		module string
		ok     bool
	}{
		{"maybe.", "maybe", true},
		{"  x <- state.ge", "state", true},
		{"f(writer.", "writer", true},
		{"nope.", "nope", false},
		{"maybe", "", false},
		{"maybe .", "", false},
		{`"unterminated`, "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		t.Run(tt.prefix, func(t *testing.T) {
			module, ok := qualifier(tt.prefix)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.module, module)
		})
	}
}

func TestLinePrefix(t *testing.T) {
	source := "let a = 1\nlet b = maybe.just(a)"
	assert.Equal(t, "let b = maybe.", linePrefix(source, protocol.Position{Line: 1, Character: 14}))
	assert.Equal(t, "let a = 1", linePrefix(source, protocol.Position{Line: 0, Character: 99}))
	assert.Equal(t, "", linePrefix(source, protocol.Position{Line: 7, Character: 0}))
}

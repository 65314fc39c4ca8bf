package monad_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"monadic/monad/maybe"
	"monadic/monad/writer"
)

func TestThen(t *testing.T) {
	s := maybe.Strategy[int]()

	assert.Equal(t, maybe.Just(2), s.Then(maybe.Just(1), maybe.Just(2)))
	assert.Equal(t, maybe.Nothing[int](), s.Then(maybe.Nothing[int](), maybe.Just(2)))
	assert.Equal(t, maybe.Nothing[int](), s.Then(maybe.Just(1), maybe.Nothing[int]()))
}

func TestMap(t *testing.T) {
	s := maybe.Strategy[int]()
	double := func(x int) int { return x * 2 }

	assert.Equal(t, maybe.Just(8), s.Map(maybe.Just(4), double))
	assert.Equal(t, maybe.Nothing[int](), s.Map(maybe.Nothing[int](), double))
}

func TestSequence(t *testing.T) {
	s := maybe.Strategy[int]()

	tests := []struct {
		name string
		ms   []maybe.Maybe[int]
		want maybe.Maybe[int]
	}{
		{"empty", nil, maybe.Just(0)},
		{"single", []maybe.Maybe[int]{maybe.Just(5)}, maybe.Just(5)},
		{"last value wins", []maybe.Maybe[int]{maybe.Just(1), maybe.Just(2), maybe.Just(3)}, maybe.Just(3)},
		{"nothing short-circuits", []maybe.Maybe[int]{maybe.Just(1), maybe.Nothing[int](), maybe.Just(3)}, maybe.Nothing[int]()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, s.Sequence(tt.ms...))
		})
	}
}

func TestSequenceKeepsEveryOutput(t *testing.T) {
	s := writer.Strategy[writer.Text, int]()
	step := func(msg string, v int) writer.Writer[writer.Text, int] {
		return writer.Bind(writer.Tell(writer.Text(msg)), func(struct{}) writer.Writer[writer.Text, int] {
			return writer.Return[writer.Text](v)
		})
	}

	v, out := writer.Run(s.Sequence(step("a", 1), step("b", 2), step("c", 3)))
	assert.Equal(t, 3, v)
	assert.Equal(t, writer.Text("abc"), out)
}

package either_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monadic/monad"
	"monadic/monad/either"
)

type E = either.Either[string, int]

func TestLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	s := either.Strategy[string, int]()
	eq := func(a, b E) bool { return a == b }

	positive := func(x int) E {
		if x <= 0 {
			return either.Fail[string, int]("not positive")
		}
		return either.Right[string](x)
	}
	double := func(x int) E { return either.Right[string](x * 2) }

	for i := 0; i < 500; i++ {
		a := rng.Intn(2001) - 1000
		for _, m := range []E{either.Right[string](a), either.Left[string, int]("boom")} {
			require.NoError(t, monad.CheckLaws(s, eq, a, m, positive, double))
		}
	}
}

func TestShortCircuit(t *testing.T) {
	calls := 0
	got := either.Bind(either.Left[string, int]("bad"), func(x int) E {
		calls++
		return either.Right[string](x)
	})
	assert.True(t, got.IsLeft())
	l, ok := got.GetLeft()
	assert.True(t, ok)
	assert.Equal(t, "bad", l)
	assert.Zero(t, calls)
}

func TestCase(t *testing.T) {
	describe := func(e E) string {
		return either.Case(e,
			func(l string) string { return "error: " + l },
			func(r int) string { return "value: " + strconv.Itoa(r) })
	}
	assert.Equal(t, "value: 3", describe(either.Right[string](3)))
	assert.Equal(t, "error: x", describe(either.Left[string, int]("x")))
}

func TestMapping(t *testing.T) {
	m := either.Map(either.Right[string](2), func(x int) string { return strconv.Itoa(x * 10) })
	r, ok := m.GetRight()
	require.True(t, ok)
	assert.Equal(t, "20", r)

	ml := either.MapLeft(either.Left[string, int]("abc"), func(s string) int { return len(s) })
	assert.Equal(t, "left(3)", ml.String())
	assert.Equal(t, "right(2)", either.MapLeft(either.Right[string](2), func(s string) int { return len(s) }).String())
}

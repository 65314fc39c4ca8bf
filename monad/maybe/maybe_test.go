package maybe_test

import (
	"math/rand"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monadic/monad"
	"monadic/monad/maybe"
)

func eq(a, b maybe.Maybe[int]) bool { return a == b }

func TestLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	s := maybe.Strategy[int]()

	half := func(x int) maybe.Maybe[int] {
		if x%2 != 0 {
			return maybe.Nothing[int]()
		}
		return maybe.Just(x / 2)
	}
	inc := func(x int) maybe.Maybe[int] { return maybe.Just(x + 1) }

	for i := 0; i < 500; i++ {
		a := rng.Intn(2001) - 1000
		for _, m := range []maybe.Maybe[int]{maybe.Just(a), maybe.Nothing[int]()} {
			require.NoError(t, monad.CheckLaws(s, eq, a, m, half, inc))
		}
	}
}

func TestDoScenario(t *testing.T) {
	// x <- just(2); y <- just(4); return(x*y)
	got := maybe.Bind(maybe.Just(2), func(x int) maybe.Maybe[int] {
		return maybe.Bind(maybe.Just(4), func(y int) maybe.Maybe[int] {
			return maybe.Return(x * y)
		})
	})
	assert.Equal(t, maybe.Just(8), got)

	calls := 0
	got = maybe.Bind(maybe.Just(2), func(x int) maybe.Maybe[int] {
		return maybe.Bind(maybe.Fail[int]("no"), func(y int) maybe.Maybe[int] {
			calls++
			return maybe.Return(x * y)
		})
	})
	assert.True(t, got.IsNothing())
	assert.Zero(t, calls, "continuation must not run after nothing")
}

func TestFromJust(t *testing.T) {
	assert.Equal(t, 3, maybe.FromJust(maybe.Just(3)))
	assert.PanicsWithValue(t, maybe.ErrNothing, func() {
		maybe.FromJust(maybe.Nothing[int]())
	})
	assert.Equal(t, 9, maybe.FromMaybe(9, maybe.Nothing[int]()))
}

func TestListConversions(t *testing.T) {
	assert.Equal(t, []int{1}, maybe.ToList(maybe.Just(1)))
	assert.Empty(t, maybe.ToList(maybe.Nothing[int]()))
	assert.Equal(t, maybe.Just(4), maybe.FromList([]int{4, 5}))
	assert.True(t, maybe.FromList([]int{}).IsNothing())

	ms := []maybe.Maybe[int]{maybe.Just(1), maybe.Nothing[int](), maybe.Just(3)}
	assert.Equal(t, []int{1, 3}, maybe.CatMaybes(ms))

	parse := func(s string) maybe.Maybe[int] {
		n, err := strconv.Atoi(s)
		if err != nil {
			return maybe.Nothing[int]()
		}
		return maybe.Just(n)
	}
	assert.Equal(t, []int{1, 3}, maybe.MapMaybe(parse, []string{"1", "x", "3"}))
}

func TestString(t *testing.T) {
	assert.Equal(t, "just(8)", maybe.Just(8).String())
	assert.Equal(t, "nothing", maybe.Nothing[int]().String())
	assert.Equal(t, "just(3)", maybe.Map(maybe.Just(1), func(x int) int { return x + 2 }).String())
}

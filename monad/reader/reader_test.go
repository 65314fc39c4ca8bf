package reader_test

import (
	"math/rand"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"monadic/monad"
	"monadic/monad/reader"
)

type config struct {
	Name  string
	Depth int
}

type R = reader.Reader[config, int]

func TestLaws(t *testing.T) {
	rng := rand.New(rand.NewSource(19))
	s := reader.Strategy[config, int]()

	for i := 0; i < 200; i++ {
		env := config{Name: "n", Depth: rng.Intn(10)}
		eq := func(x, y R) bool { return reader.Run(env, x) == reader.Run(env, y) }

		a := rng.Intn(2001) - 1000
		m := reader.Asks(func(c config) int { return c.Depth })
		f := func(x int) R { return reader.Asks(func(c config) int { return x + c.Depth }) }
		g := func(x int) R {
			return reader.Local(reader.Return[config](x*2), func(c config) config { c.Depth++; return c })
		}
		require.NoError(t, monad.CheckLaws(s, eq, a, m, f, g))
	}
}

func TestLocal(t *testing.T) {
	greeting := reader.Map(reader.Ask[config](), func(c config) string {
		return strings.Repeat(">", c.Depth) + c.Name
	})
	nested := reader.Local(greeting, func(c config) config { c.Depth += 2; return c })

	both := reader.Bind(greeting, func(outer string) reader.Reader[config, []string] {
		return reader.Map(nested, func(inner string) []string { return []string{outer, inner} })
	})

	assert.Equal(t, []string{">go", ">>>go"}, reader.Run(config{Name: "go", Depth: 1}, both))
}

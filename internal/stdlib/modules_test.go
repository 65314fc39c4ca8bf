package stdlib

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetStandardModules(t *testing.T) {
	modules := GetStandardModules()
	assert.Len(t, modules, 6)

	for name, module := range modules {
		assert.Equal(t, name, module.Name)
		assert.NotEmpty(t, module.Doc, name)

		// Every strategy carries the contract operations.
		for _, op := range []string{"return", "bind", "map"} {
			_, ok := module.Functions[op]
			assert.True(t, ok, "%s should have %s", name, op)
		}
		for key, fn := range module.Functions {
			assert.Equal(t, key, fn.Name)
			assert.NotNil(t, fn.ReturnType, "%s.%s", name, key)
		}
	}

	maybe := modules["maybe"]
	assert.Equal(t, "Maybe<A>", maybe.Type.String())
	assert.Equal(t, 2, maybe.Functions["from_maybe"].Arity())
	assert.Equal(t, 0, maybe.Functions["nothing"].Arity())

	state := modules["state"]
	assert.Equal(t, "run(initial: S, m: State<S, A>) -> Tuple<A, S>", state.Functions["run"].Signature())
}

func TestSignatures(t *testing.T) {
	bind := GetModuleDefinition("maybe").Functions["bind"]
	assert.Equal(t, "bind(m: Maybe<A>, f: fn(A) -> Maybe<B>) -> Maybe<B>", bind.Signature())

	censor := GetModuleDefinition("writer").Functions["censor"]
	assert.Equal(t, "censor(f: fn(List<W>) -> List<W>, m: Writer<List<W>, A>) -> Writer<List<W>, A>", censor.Signature())

	get := GetModuleDefinition("state").Functions["get"]
	assert.Equal(t, "get() -> State<S, S>", get.Signature())

	var unit *TypeRef
	assert.Equal(t, "Unit", unit.String())
}

func TestStrategyNames(t *testing.T) {
	assert.Equal(t, []string{"either", "maybe", "reader", "result", "state", "writer"}, StrategyNames())
}

func TestIsKnownModule(t *testing.T) {
	assert.True(t, IsKnownModule("maybe"), "maybe should be known")
	assert.True(t, IsKnownModule("writer"), "writer should be known")
	assert.False(t, IsKnownModule("list"), "list should not be known")
	assert.False(t, IsKnownModule("Maybe"), "names are case sensitive")
}

func TestGetModuleDefinition(t *testing.T) {
	reader := GetModuleDefinition("reader")
	require.NotNil(t, reader, "Should return reader module definition")
	assert.Equal(t, []string{"ask", "asks", "bind", "local", "map", "return", "run"}, reader.FunctionNames())

	unknown := GetModuleDefinition("UnknownModule")
	assert.Nil(t, unknown, "Should return nil for unknown module")
}

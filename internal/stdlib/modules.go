package stdlib

import (
	"sort"
	"strings"
)

// ModuleDefinition describes a strategy module: the operations a do-block or
// pipeline of that strategy can call as <module>.<operation>.
type ModuleDefinition struct {
	Name      string                        // Strategy name as written after do/pipe (e.g., "maybe")
	Doc       string                        // One-line summary
	Type      *TypeRef                      // Computation type (e.g., Maybe<A>)
	Functions map[string]FunctionDefinition // Available operations in this module
}

// FunctionDefinition defines an operation signature
type FunctionDefinition struct {
	Name       string                // Operation name (e.g., "bind", "tell")
	Parameters []ParameterDefinition // Operation parameters
	ReturnType *TypeRef              // Result type
	Doc        string                // One-line summary
}

// ParameterDefinition defines an operation parameter
type ParameterDefinition struct {
	Name string   // Parameter name
	Type *TypeRef // Parameter type
}

// TypeRef represents a type reference that can be generic
type TypeRef struct {
	Name        string     // Base type name (e.g., "Maybe", "Int", "A")
	IsGeneric   bool       // Whether this is a generic type parameter (A, B, S)
	GenericArgs []*TypeRef // Generic type arguments for parameterized types
}

const funcTypeName = "fn"

// String renders the type the way completion details show it:
// "Maybe<A>", "fn(A) -> Maybe<B>".
func (t *TypeRef) String() string {
	if t == nil {
		return "Unit"
	}
	if t.Name == funcTypeName {
		params := t.GenericArgs[:len(t.GenericArgs)-1]
		return "fn(" + joinTypes(params) + ") -> " + t.GenericArgs[len(t.GenericArgs)-1].String()
	}
	if len(t.GenericArgs) == 0 {
		return t.Name
	}
	return t.Name + "<" + joinTypes(t.GenericArgs) + ">"
}

func joinTypes(types []*TypeRef) string {
	parts := make([]string, len(types))
	for i, t := range types {
		parts[i] = t.String()
	}
	return strings.Join(parts, ", ")
}

// Helper functions for creating type references
func NewTypeRef(name string) *TypeRef {
	return &TypeRef{Name: name, IsGeneric: false}
}

func IntType() *TypeRef    { return NewTypeRef("Int") }
func StringType() *TypeRef { return NewTypeRef("String") }
func BoolType() *TypeRef   { return NewTypeRef("Bool") }
func UnitType() *TypeRef   { return NewTypeRef("Unit") }

func ListType(elem *TypeRef) *TypeRef {
	return NewGenericTypeRef("List", elem)
}

func TupleType(elems ...*TypeRef) *TypeRef {
	return NewGenericTypeRef("Tuple", elems...)
}

func NewGenericTypeRef(name string, args ...*TypeRef) *TypeRef {
	return &TypeRef{Name: name, IsGeneric: false, GenericArgs: args}
}

func NewGenericParam(name string) *TypeRef {
	return &TypeRef{Name: name, IsGeneric: true}
}

// NewFuncType builds the type of a function value from its parameter types
// and its result type.
func NewFuncType(result *TypeRef, params ...*TypeRef) *TypeRef {
	args := append(append([]*TypeRef{}, params...), result)
	return &TypeRef{Name: funcTypeName, GenericArgs: args}
}

// Helper function for creating function definitions
func NewFunction(name string, returnType *TypeRef, doc string, params ...ParameterDefinition) FunctionDefinition {
	return FunctionDefinition{
		Name:       name,
		Parameters: params,
		ReturnType: returnType,
		Doc:        doc,
	}
}

// Helper function for creating parameters
func NewParam(name string, typeRef *TypeRef) ParameterDefinition {
	return ParameterDefinition{Name: name, Type: typeRef}
}

// Arity is the number of arguments the operation takes.
func (f FunctionDefinition) Arity() int {
	return len(f.Parameters)
}

// Signature renders "bind(m: Maybe<A>, f: fn(A) -> Maybe<B>) -> Maybe<B>".
func (f FunctionDefinition) Signature() string {
	params := make([]string, len(f.Parameters))
	for i, p := range f.Parameters {
		params[i] = p.Name + ": " + p.Type.String()
	}
	return f.Name + "(" + strings.Join(params, ", ") + ") -> " + f.ReturnType.String()
}

var (
	typeA = NewGenericParam("A")
	typeB = NewGenericParam("B")
)

// monadFunctions returns the operations every strategy module has: return,
// bind and map over the computation type m.
func monadFunctions(name string, m func(*TypeRef) *TypeRef) map[string]FunctionDefinition {
	return map[string]FunctionDefinition{
		"return": NewFunction("return", m(typeA), "Lift a plain value into "+name+".",
			NewParam("value", typeA)),
		"bind": NewFunction("bind", m(typeB), "Run m and pass its value to f.",
			NewParam("m", m(typeA)),
			NewParam("f", NewFuncType(m(typeB), typeA))),
		"map": NewFunction("map", m(typeB), "Apply f to the value of m.",
			NewParam("m", m(typeA)),
			NewParam("f", NewFuncType(typeB, typeA))),
	}
}

func with(base map[string]FunctionDefinition, extra ...FunctionDefinition) map[string]FunctionDefinition {
	for _, f := range extra {
		base[f.Name] = f
	}
	return base
}

// GetStandardModules returns all built-in strategy modules
func GetStandardModules() map[string]*ModuleDefinition {
	maybeOf := func(t *TypeRef) *TypeRef { return NewGenericTypeRef("Maybe", t) }
	eitherOf := func(t *TypeRef) *TypeRef { return NewGenericTypeRef("Either", NewGenericParam("L"), t) }
	resultOf := func(t *TypeRef) *TypeRef { return NewGenericTypeRef("Result", NewGenericParam("E"), t) }
	stateOf := func(t *TypeRef) *TypeRef { return NewGenericTypeRef("State", NewGenericParam("S"), t) }
	readerOf := func(t *TypeRef) *TypeRef { return NewGenericTypeRef("Reader", NewGenericParam("R"), t) }
	writerOf := func(t *TypeRef) *TypeRef { return NewGenericTypeRef("Writer", ListType(NewGenericParam("W")), t) }

	l := NewGenericParam("L")
	e := NewGenericParam("E")
	s := NewGenericParam("S")
	r := NewGenericParam("R")
	w := ListType(NewGenericParam("W"))
	reason := NewGenericParam("Reason")

	return map[string]*ModuleDefinition{
		"maybe": {
			Name: "maybe",
			Doc:  "Optional values: nothing short-circuits the rest of the block.",
			Type: maybeOf(typeA),
			Functions: with(monadFunctions("maybe", maybeOf),
				NewFunction("just", maybeOf(typeA), "A present value.", NewParam("value", typeA)),
				NewFunction("nothing", maybeOf(typeA), "The absent value."),
				NewFunction("fail", maybeOf(typeA), "Nothing; the reason is dropped.", NewParam("reason", reason)),
				NewFunction("is_just", BoolType(), "Whether m holds a value.", NewParam("m", maybeOf(typeA))),
				NewFunction("is_nothing", BoolType(), "Whether m is nothing.", NewParam("m", maybeOf(typeA))),
				NewFunction("from_just", typeA, "The value of m; a runtime error on nothing.", NewParam("m", maybeOf(typeA))),
				NewFunction("from_maybe", typeA, "The value of m, or default on nothing.",
					NewParam("default", typeA), NewParam("m", maybeOf(typeA))),
				NewFunction("to_list", ListType(typeA), "An empty or one-element list.", NewParam("m", maybeOf(typeA))),
				NewFunction("from_list", maybeOf(typeA), "The first element, if any.", NewParam("xs", ListType(typeA))),
				NewFunction("cat_maybes", ListType(typeA), "The values of the present elements.",
					NewParam("ms", ListType(maybeOf(typeA)))),
				NewFunction("map_maybe", ListType(typeB), "Apply f to each element, keeping present results.",
					NewParam("f", NewFuncType(maybeOf(typeB), typeA)), NewParam("xs", ListType(typeA))),
			),
		},
		"either": {
			Name: "either",
			Doc:  "Two-armed values: left short-circuits, right continues.",
			Type: eitherOf(typeA),
			Functions: with(monadFunctions("either", eitherOf),
				NewFunction("left", eitherOf(typeA), "The short-circuiting arm.", NewParam("value", l)),
				NewFunction("right", eitherOf(typeA), "The continuing arm.", NewParam("value", typeA)),
				NewFunction("fail", eitherOf(typeA), "Left of reason.", NewParam("reason", l)),
				NewFunction("either", typeB, "Apply on_left or on_right depending on the arm of e.",
					NewParam("on_left", NewFuncType(typeB, l)),
					NewParam("on_right", NewFuncType(typeB, typeA)),
					NewParam("e", eitherOf(typeA))),
				NewFunction("is_left", BoolType(), "Whether e is left.", NewParam("e", eitherOf(typeA))),
				NewFunction("is_right", BoolType(), "Whether e is right.", NewParam("e", eitherOf(typeA))),
				NewFunction("map_left", NewGenericTypeRef("Either", typeB, typeA), "Apply f to a left value.",
					NewParam("m", eitherOf(typeA)), NewParam("f", NewFuncType(typeB, l))),
			),
		},
		"result": {
			Name: "result",
			Doc:  "Fallible computations: the first error is the result.",
			Type: resultOf(typeA),
			Functions: with(monadFunctions("result", resultOf),
				NewFunction("ok", resultOf(typeA), "A successful value.", NewParam("value", typeA)),
				NewFunction("error", resultOf(typeA), "A failure.", NewParam("reason", e)),
				NewFunction("fail", resultOf(typeA), "Error of reason.", NewParam("reason", e)),
				NewFunction("is_ok", BoolType(), "Whether r succeeded.", NewParam("r", resultOf(typeA))),
				NewFunction("is_error", BoolType(), "Whether r failed.", NewParam("r", resultOf(typeA))),
			),
		},
		"state": {
			Name: "state",
			Doc:  "Computations threading one value from stage to stage.",
			Type: stateOf(typeA),
			Functions: with(monadFunctions("state", stateOf),
				NewFunction("get", stateOf(s), "The current state."),
				NewFunction("gets", stateOf(typeA), "f applied to the current state.", NewParam("f", NewFuncType(typeA, s))),
				NewFunction("put", stateOf(UnitType()), "Replace the state.", NewParam("state", s)),
				NewFunction("modify", stateOf(UnitType()), "Replace the state with f of it.", NewParam("f", NewFuncType(s, s))),
				NewFunction("run", TupleType(typeA, s), "Run m from initial, giving {value, state}.",
					NewParam("initial", s), NewParam("m", stateOf(typeA))),
				NewFunction("eval", typeA, "Run m from initial, giving the value.",
					NewParam("initial", s), NewParam("m", stateOf(typeA))),
				NewFunction("exec", s, "Run m from initial, giving the final state.",
					NewParam("initial", s), NewParam("m", stateOf(typeA))),
			),
		},
		"reader": {
			Name: "reader",
			Doc:  "Computations reading one shared environment.",
			Type: readerOf(typeA),
			Functions: with(monadFunctions("reader", readerOf),
				NewFunction("ask", readerOf(r), "The environment."),
				NewFunction("asks", readerOf(typeA), "f applied to the environment.", NewParam("f", NewFuncType(typeA, r))),
				NewFunction("local", readerOf(typeA), "Run m in the environment changed by transform.",
					NewParam("m", readerOf(typeA)), NewParam("transform", NewFuncType(r, r))),
				NewFunction("run", typeA, "Run m in env.", NewParam("env", r), NewParam("m", readerOf(typeA))),
			),
		},
		"writer": {
			Name: "writer",
			Doc:  "Deferred computations accumulating a list of output.",
			Type: writerOf(typeA),
			Functions: with(monadFunctions("writer", writerOf),
				NewFunction("tell", writerOf(UnitType()), "Append output.", NewParam("output", w)),
				NewFunction("run", TupleType(typeA, w), "Force m, giving {value, output}.", NewParam("m", writerOf(typeA))),
				NewFunction("exec", w, "Force m, giving its output.", NewParam("m", writerOf(typeA))),
				NewFunction("listen", writerOf(TupleType(typeA, w)), "Pair the value of m with its output.",
					NewParam("m", writerOf(typeA))),
				NewFunction("censor", writerOf(typeA), "Rewrite the output of m with f.",
					NewParam("f", NewFuncType(w, w)), NewParam("m", writerOf(typeA))),
			),
		},
	}
}

// StrategyNames returns the names of all strategy modules in sorted order
func StrategyNames() []string {
	modules := GetStandardModules()
	names := make([]string, 0, len(modules))
	for name := range modules {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// IsKnownModule checks if a name refers to a strategy module
func IsKnownModule(name string) bool {
	modules := GetStandardModules()
	_, exists := modules[name]
	return exists
}

// GetModuleDefinition returns the definition for a strategy module
func GetModuleDefinition(name string) *ModuleDefinition {
	modules := GetStandardModules()
	return modules[name]
}

// FunctionNames returns the operation names of a module in sorted order
func (m *ModuleDefinition) FunctionNames() []string {
	names := make([]string, 0, len(m.Functions))
	for name := range m.Functions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

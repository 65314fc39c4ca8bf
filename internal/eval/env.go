package eval

import (
	"sort"
	"strconv"
)

// Env is one lexical scope.
type Env struct {
	vars   map[string]Value
	parent *Env
}

func NewEnv(parent *Env) *Env {
	return &Env{vars: make(map[string]Value), parent: parent}
}

// Get looks name up in this scope and its parents.
func (e *Env) Get(name string) (Value, bool) {
	for env := e; env != nil; env = env.parent {
		if v, ok := env.vars[name]; ok {
			return v, true
		}
	}
	return nil, false
}

func (e *Env) Set(name string, v Value) {
	e.vars[name] = v
}

// Names returns the names bound in this scope, sorted.
func (e *Env) Names() []string {
	names := make([]string, 0, len(e.vars))
	for name := range e.vars {
		if !isSlotName(name) {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// Slots live in the same scopes as names. The "$" prefix keeps them apart:
// no identifier can start with it.
func slotName(id int) string {
	return "$" + strconv.Itoa(id)
}

func isSlotName(name string) bool {
	return len(name) > 0 && name[0] == '$'
}

// Package state implements the sequential state strategy. A computation is a
// function from an input state to a value and an output state; bind threads
// the state through both stages.
package state

import "monadic/monad"

// State is a stateful computation over S producing A.
type State[S, A any] func(S) (A, S)

// Return produces a without touching the state.
func Return[S, A any](a A) State[S, A] {
	return func(s S) (A, S) { return a, s }
}

// Bind runs m, then runs the computation f builds from its value on the
// state m left behind.
func Bind[S, A, B any](m State[S, A], f func(A) State[S, B]) State[S, B] {
	return func(s S) (B, S) {
		a, s1 := m(s)
		return f(a)(s1)
	}
}

// Map applies f to the value of m.
func Map[S, A, B any](m State[S, A], f func(A) B) State[S, B] {
	return func(s S) (B, S) {
		a, s1 := m(s)
		return f(a), s1
	}
}

// Get yields the current state.
func Get[S any]() State[S, S] {
	return func(s S) (S, S) { return s, s }
}

// Gets yields f applied to the current state.
func Gets[S, A any](f func(S) A) State[S, A] {
	return func(s S) (A, S) { return f(s), s }
}

// Put replaces the state.
func Put[S any](s S) State[S, struct{}] {
	return func(S) (struct{}, S) { return struct{}{}, s }
}

// Modify replaces the state with f applied to it.
func Modify[S any](f func(S) S) State[S, struct{}] {
	return func(s S) (struct{}, S) { return struct{}{}, f(s) }
}

// Run executes m from initial and returns the value and the final state.
func Run[S, A any](initial S, m State[S, A]) (A, S) {
	return m(initial)
}

// Eval executes m and returns only its value.
func Eval[S, A any](initial S, m State[S, A]) A {
	a, _ := m(initial)
	return a
}

// Exec executes m and returns only the final state.
func Exec[S, A any](initial S, m State[S, A]) S {
	_, s := m(initial)
	return s
}

// Strategy returns the contract record for State at types S and A.
func Strategy[S, A any]() monad.Strategy[State[S, A], A] {
	return monad.Strategy[State[S, A], A]{
		Name:   "state",
		Return: Return[S, A],
		Bind:   Bind[S, A, A],
	}
}

// Package reader implements the read-only environment strategy. Both stages
// of a bind observe the same environment.
package reader

import "monadic/monad"

// Reader is a computation that reads an environment E to produce A.
type Reader[E, A any] func(E) A

// Return ignores the environment and yields a.
func Return[E, A any](a A) Reader[E, A] {
	return func(E) A { return a }
}

// Bind runs m and the computation built from its value against the same
// environment.
func Bind[E, A, B any](m Reader[E, A], f func(A) Reader[E, B]) Reader[E, B] {
	return func(env E) B {
		return f(m(env))(env)
	}
}

// Map applies f to the value of m.
func Map[E, A, B any](m Reader[E, A], f func(A) B) Reader[E, B] {
	return func(env E) B { return f(m(env)) }
}

// Ask yields the environment.
func Ask[E any]() Reader[E, E] {
	return func(env E) E { return env }
}

// Asks yields f applied to the environment.
func Asks[E, A any](f func(E) A) Reader[E, A] {
	return func(env E) A { return f(env) }
}

// Local runs m in an environment modified by transform.
func Local[E, A any](m Reader[E, A], transform func(E) E) Reader[E, A] {
	return func(env E) A { return m(transform(env)) }
}

// Run executes m against env.
func Run[E, A any](env E, m Reader[E, A]) A {
	return m(env)
}

// Strategy returns the contract record for Reader at types E and A.
func Strategy[E, A any]() monad.Strategy[Reader[E, A], A] {
	return monad.Strategy[Reader[E, A], A]{
		Name:   "reader",
		Return: Return[E, A],
		Bind:   Bind[E, A, A],
	}
}

// Package writer implements the accumulating-output strategy.
//
// A Writer is a deferred computation: constructing or binding one performs
// no work. Run forces the computation and returns its value together with
// the output accumulated through the output type's Combine, starting from
// its Empty element.
package writer

import (
	"monadic/monad"
)

// Writer is a deferred computation producing A and output W.
type Writer[W monad.Monoid[W], A any] struct {
	thunk func() (A, W)
}

// Pair is the value produced by Listen.
type Pair[A, B any] struct {
	First  A
	Second B
}

func empty[W monad.Monoid[W]]() W {
	var w W
	return w.Empty()
}

// Return pairs a with empty output.
func Return[W monad.Monoid[W], A any](a A) Writer[W, A] {
	return Writer[W, A]{thunk: func() (A, W) { return a, empty[W]() }}
}

// Bind runs m, then the computation f builds from its value, combining both
// outputs in order.
func Bind[W monad.Monoid[W], A, B any](m Writer[W, A], f func(A) Writer[W, B]) Writer[W, B] {
	return Writer[W, B]{thunk: func() (B, W) {
		a, w1 := m.force()
		b, w2 := f(a).force()
		return b, w1.Combine(w2)
	}}
}

// Map applies f to the value of m.
func Map[W monad.Monoid[W], A, B any](m Writer[W, A], f func(A) B) Writer[W, B] {
	return Writer[W, B]{thunk: func() (B, W) {
		a, w := m.force()
		return f(a), w
	}}
}

// Tell appends w to the output.
func Tell[W monad.Monoid[W]](w W) Writer[W, struct{}] {
	return Writer[W, struct{}]{thunk: func() (struct{}, W) { return struct{}{}, w }}
}

// Listen runs m and exposes its output alongside its value.
func Listen[W monad.Monoid[W], A any](m Writer[W, A]) Writer[W, Pair[A, W]] {
	return Writer[W, Pair[A, W]]{thunk: func() (Pair[A, W], W) {
		a, w := m.force()
		return Pair[A, W]{First: a, Second: w}, w
	}}
}

// Censor runs m and replaces its output with f applied to it.
func Censor[W monad.Monoid[W], A any](f func(W) W, m Writer[W, A]) Writer[W, A] {
	return Writer[W, A]{thunk: func() (A, W) {
		a, w := m.force()
		return a, f(w)
	}}
}

// Run forces m and returns its value and accumulated output.
func Run[W monad.Monoid[W], A any](m Writer[W, A]) (A, W) {
	return m.force()
}

// Exec forces m and returns only its output.
func Exec[W monad.Monoid[W], A any](m Writer[W, A]) W {
	_, w := m.force()
	return w
}

func (m Writer[W, A]) force() (A, W) {
	if m.thunk == nil {
		var a A
		return a, empty[W]()
	}
	return m.thunk()
}

// Strategy returns the contract record for Writer at types W and A.
func Strategy[W monad.Monoid[W], A any]() monad.Strategy[Writer[W, A], A] {
	return monad.Strategy[Writer[W, A], A]{
		Name:   "writer",
		Return: Return[W, A],
		Bind:   Bind[W, A, A],
	}
}

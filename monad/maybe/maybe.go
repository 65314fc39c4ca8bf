// Package maybe implements the optional-value strategy: a computation is
// either a present value (Just) or absent (Nothing). Nothing short-circuits
// bind.
package maybe

import (
	"errors"
	"fmt"

	"monadic/monad"
)

// ErrNothing is the panic value of FromJust applied to Nothing.
var ErrNothing = errors.New("maybe: from_just applied to nothing")

// Maybe holds an optional value of type A. The zero value is Nothing.
type Maybe[A any] struct {
	value A
	ok    bool
}

// Just wraps a as a present value.
func Just[A any](a A) Maybe[A] {
	return Maybe[A]{value: a, ok: true}
}

// Nothing returns the absent value.
func Nothing[A any]() Maybe[A] {
	return Maybe[A]{}
}

// Return lifts a into Maybe.
func Return[A any](a A) Maybe[A] {
	return Just(a)
}

// Fail maps a failure reason into Nothing. The reason is discarded.
func Fail[A, R any](_ R) Maybe[A] {
	return Nothing[A]()
}

// Bind continues with f when m is present and propagates Nothing otherwise.
func Bind[A, B any](m Maybe[A], f func(A) Maybe[B]) Maybe[B] {
	if !m.ok {
		return Nothing[B]()
	}
	return f(m.value)
}

// Map applies f to a present value.
func Map[A, B any](m Maybe[A], f func(A) B) Maybe[B] {
	if !m.ok {
		return Nothing[B]()
	}
	return Just(f(m.value))
}

func (m Maybe[A]) IsJust() bool    { return m.ok }
func (m Maybe[A]) IsNothing() bool { return !m.ok }

// Get returns the value and whether it is present.
func (m Maybe[A]) Get() (A, bool) {
	return m.value, m.ok
}

func (m Maybe[A]) String() string {
	if !m.ok {
		return "nothing"
	}
	return fmt.Sprintf("just(%v)", m.value)
}

// FromJust extracts a present value and panics with ErrNothing otherwise.
func FromJust[A any](m Maybe[A]) A {
	if !m.ok {
		panic(ErrNothing)
	}
	return m.value
}

// FromMaybe returns the value of m, or def when m is Nothing.
func FromMaybe[A any](def A, m Maybe[A]) A {
	if !m.ok {
		return def
	}
	return m.value
}

// ToList returns a one-element list for Just and an empty list for Nothing.
func ToList[A any](m Maybe[A]) []A {
	if !m.ok {
		return []A{}
	}
	return []A{m.value}
}

// FromList returns Just the first element of xs, or Nothing if xs is empty.
func FromList[A any](xs []A) Maybe[A] {
	if len(xs) == 0 {
		return Nothing[A]()
	}
	return Just(xs[0])
}

// CatMaybes collects the present values of ms in order.
func CatMaybes[A any](ms []Maybe[A]) []A {
	out := make([]A, 0, len(ms))
	for _, m := range ms {
		if m.ok {
			out = append(out, m.value)
		}
	}
	return out
}

// MapMaybe applies f to every element and keeps the present results.
func MapMaybe[A, B any](f func(A) Maybe[B], xs []A) []B {
	out := make([]B, 0, len(xs))
	for _, x := range xs {
		if r := f(x); r.ok {
			out = append(out, r.value)
		}
	}
	return out
}

// Strategy returns the contract record for Maybe at value type A.
func Strategy[A any]() monad.Strategy[Maybe[A], A] {
	return monad.Strategy[Maybe[A], A]{
		Name:   "maybe",
		Return: Return[A],
		Bind:   Bind[A, A],
	}
}

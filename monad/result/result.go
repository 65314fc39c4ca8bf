// Package result implements the error-or-value strategy: Ok continues, Error
// short-circuits bind.
package result

import (
	"fmt"

	"monadic/monad"
)

// Result is Ok(A) or Error(E).
type Result[E, A any] struct {
	value A
	err   E
	ok    bool
}

// Ok wraps a successful value.
func Ok[E, A any](a A) Result[E, A] {
	return Result[E, A]{value: a, ok: true}
}

// Error wraps a failure reason.
func Error[E, A any](e E) Result[E, A] {
	return Result[E, A]{err: e}
}

// Return lifts a into Ok.
func Return[E, A any](a A) Result[E, A] {
	return Ok[E](a)
}

// Fail maps reason directly into Error.
func Fail[E, A any](reason E) Result[E, A] {
	return Error[E, A](reason)
}

// Bind continues with f on Ok and propagates Error unchanged.
func Bind[E, A, B any](m Result[E, A], f func(A) Result[E, B]) Result[E, B] {
	if !m.ok {
		return Error[E, B](m.err)
	}
	return f(m.value)
}

// Map transforms an Ok value.
func Map[E, A, B any](m Result[E, A], f func(A) B) Result[E, B] {
	if !m.ok {
		return Error[E, B](m.err)
	}
	return Ok[E](f(m.value))
}

func (r Result[E, A]) IsOk() bool    { return r.ok }
func (r Result[E, A]) IsError() bool { return !r.ok }

// Get returns the value, the failure reason and whether r is Ok.
func (r Result[E, A]) Get() (A, E, bool) {
	return r.value, r.err, r.ok
}

func (r Result[E, A]) String() string {
	if r.ok {
		return fmt.Sprintf("ok(%v)", r.value)
	}
	return fmt.Sprintf("error(%v)", r.err)
}

// FromGo converts a Go (value, error) pair.
func FromGo[A any](a A, err error) Result[error, A] {
	if err != nil {
		return Error[error, A](err)
	}
	return Ok[error](a)
}

// Unwrap converts back to a Go (value, error) pair.
func Unwrap[A any](r Result[error, A]) (A, error) {
	if !r.ok {
		var zero A
		return zero, r.err
	}
	return r.value, nil
}

// Strategy returns the contract record for Result at types E and A.
func Strategy[E, A any]() monad.Strategy[Result[E, A], A] {
	return monad.Strategy[Result[E, A], A]{
		Name:   "result",
		Return: Return[E, A],
		Bind:   Bind[E, A, A],
	}
}

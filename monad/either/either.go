// Package either implements the two-armed strategy. Right carries the value
// and continues; Left carries a reason and short-circuits bind.
package either

import (
	"fmt"

	"monadic/monad"
)

// Either is Left(L) or Right(R). The zero value is Left of the zero L.
type Either[L, R any] struct {
	left    L
	right   R
	isRight bool
}

// Left creates a left value.
func Left[L, R any](l L) Either[L, R] {
	return Either[L, R]{left: l}
}

// Right creates a right value.
func Right[L, R any](r R) Either[L, R] {
	return Either[L, R]{right: r, isRight: true}
}

// Return lifts r into the right arm.
func Return[L, R any](r R) Either[L, R] {
	return Right[L](r)
}

// Fail maps reason directly into the left arm.
func Fail[L, R any](reason L) Either[L, R] {
	return Left[L, R](reason)
}

// Bind continues with f on Right and propagates Left unchanged.
func Bind[L, A, B any](m Either[L, A], f func(A) Either[L, B]) Either[L, B] {
	if !m.isRight {
		return Left[L, B](m.left)
	}
	return f(m.right)
}

// Map transforms the right value.
func Map[L, A, B any](m Either[L, A], f func(A) B) Either[L, B] {
	if !m.isRight {
		return Left[L, B](m.left)
	}
	return Right[L](f(m.right))
}

// MapLeft transforms the left value.
func MapLeft[L, F, R any](m Either[L, R], f func(L) F) Either[F, R] {
	if m.isRight {
		return Right[F](m.right)
	}
	return Left[F, R](f(m.left))
}

// Case applies onLeft or onRight depending on the arm of e.
func Case[L, R, T any](e Either[L, R], onLeft func(L) T, onRight func(R) T) T {
	if e.isRight {
		return onRight(e.right)
	}
	return onLeft(e.left)
}

func (e Either[L, R]) IsLeft() bool  { return !e.isRight }
func (e Either[L, R]) IsRight() bool { return e.isRight }

// GetLeft returns the left value and whether e is Left.
func (e Either[L, R]) GetLeft() (L, bool) {
	return e.left, !e.isRight
}

// GetRight returns the right value and whether e is Right.
func (e Either[L, R]) GetRight() (R, bool) {
	return e.right, e.isRight
}

func (e Either[L, R]) String() string {
	if e.isRight {
		return fmt.Sprintf("right(%v)", e.right)
	}
	return fmt.Sprintf("left(%v)", e.left)
}

// Strategy returns the contract record for Either at types L and R.
func Strategy[L, R any]() monad.Strategy[Either[L, R], R] {
	return monad.Strategy[Either[L, R], R]{
		Name:   "either",
		Return: Return[L, R],
		Bind:   Bind[L, R, R],
	}
}

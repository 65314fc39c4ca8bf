// Package monad defines the contract shared by every computation strategy.
//
// A strategy is a pair of operations over a computation type M carrying
// values of type A:
//
//   - Return lifts a plain value into M.
//   - Bind runs a computation and feeds its result to a continuation that
//     produces the next computation.
//
// Go cannot abstract over type constructors, so the contract is expressed as
// a record of functions fixed at one value type (see [Strategy]). The typed
// strategies in the subpackages (maybe, either, result, state, reader, writer)
// expose fully polymorphic package-level Return/Bind functions and a
// Strategy constructor that instantiates the record for a single A.
//
// Every strategy must satisfy the monad laws:
//
//   - left identity:  Bind(Return(a), f) == f(a)
//   - right identity: Bind(m, Return) == m
//   - associativity:  Bind(Bind(m, f), g) == Bind(m, func(x) { return Bind(f(x), g) })
//
// The laws are not enforced at run time; [CheckLaws] verifies them for sample
// values and is used by the test suites of every strategy.
package monad

// Strategy is the vtable form of a computation strategy.
type Strategy[M, A any] struct {
	Name   string
	Return func(A) M
	Bind   func(M, func(A) M) M
}

// Then sequences m and n, discarding the result of m.
func (s Strategy[M, A]) Then(m, n M) M {
	return s.Bind(m, func(A) M { return n })
}

// Map applies a pure function to the value carried by m.
func (s Strategy[M, A]) Map(m M, f func(A) A) M {
	return s.Bind(m, func(a A) M { return s.Return(f(a)) })
}

// Sequence binds each computation in order and returns the last one's value.
// An empty list yields Return of the zero value.
func (s Strategy[M, A]) Sequence(ms ...M) M {
	var zero A
	if len(ms) == 0 {
		return s.Return(zero)
	}
	acc := ms[0]
	for _, m := range ms[1:] {
		acc = s.Then(acc, m)
	}
	return acc
}

// Monoid is an output type with an associative Combine and an identity
// element. Empty is called on the zero value of W.
type Monoid[W any] interface {
	Empty() W
	Combine(W) W
}

package monad

import "fmt"

// Law names one of the three monad laws.
type Law string

const (
	LeftIdentity  Law = "left identity"
	RightIdentity Law = "right identity"
	Associativity Law = "associativity"
)

// LawError reports a violated law together with both sides of the equation.
type LawError struct {
	Strategy string
	Law      Law
	Left     any
	Right    any
}

func (e *LawError) Error() string {
	return fmt.Sprintf("%s: %s violated: %v != %v", e.Strategy, e.Law, e.Left, e.Right)
}

// CheckLaws verifies the three monad laws of s for the sample value a, the
// computation m and the continuations f and g. eq decides when two
// computations are equal; for function-shaped strategies it should compare
// the results of running both sides.
func CheckLaws[M, A any](s Strategy[M, A], eq func(M, M) bool, a A, m M, f, g func(A) M) error {
	if l, r := s.Bind(s.Return(a), f), f(a); !eq(l, r) {
		return &LawError{Strategy: s.Name, Law: LeftIdentity, Left: l, Right: r}
	}

	if l := s.Bind(m, s.Return); !eq(l, m) {
		return &LawError{Strategy: s.Name, Law: RightIdentity, Left: l, Right: m}
	}

	l := s.Bind(s.Bind(m, f), g)
	r := s.Bind(m, func(x A) M { return s.Bind(f(x), g) })
	if !eq(l, r) {
		return &LawError{Strategy: s.Name, Law: Associativity, Left: l, Right: r}
	}

	return nil
}

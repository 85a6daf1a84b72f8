package fp

import "cmp"

// Complement negates a predicate.
func Complement[T any](pred func(T) bool) func(T) bool {
	return func(x T) bool {
		return !pred(x)
	}
}

// Both holds when both predicates hold.
func Both[T any](f, g func(T) bool) func(T) bool {
	return func(x T) bool {
		return f(x) && g(x)
	}
}

// Either holds when at least one predicate holds.
func Either[T any](f, g func(T) bool) func(T) bool {
	return func(x T) bool {
		return f(x) || g(x)
	}
}

// IfElse picks onTrue or onFalse depending on cond.
func IfElse[T, U any](cond func(T) bool, onTrue, onFalse func(T) U) func(T) U {
	return func(x T) U {
		if cond(x) {
			return onTrue(x)
		}
		return onFalse(x)
	}
}

// When applies f when cond holds and returns the input unchanged otherwise.
func When[T any](cond func(T) bool, f func(T) T) func(T) T {
	return IfElse(cond, f, Identity[T])
}

// Unless applies f when cond does not hold.
func Unless[T any](cond func(T) bool, f func(T) T) func(T) T {
	return IfElse(cond, Identity[T], f)
}

// Case pairs a condition with the transformation used when it holds
type Case[T, U any] struct {
	When func(T) bool
	Then func(T) U
}

// Cond returns the result of the first case whose condition holds, or the
// zero value when none does.
func Cond[T, U any](cases ...Case[T, U]) func(T) U {
	return func(x T) U {
		for _, c := range cases {
			if c.When(x) {
				return c.Then(x)
			}
		}
		var zero U
		return zero
	}
}

// Always returns a function that ignores its input and returns v.
func Always[T any](v T) func() T {
	return func() T {
		return v
	}
}

// Const is Always for functions of one argument.
func Const[A, T any](v T) func(A) T {
	return func(A) T {
		return v
	}
}

// Identity returns its argument.
func Identity[T any](x T) T {
	return x
}

// True is a predicate that always holds.
func True[A any](A) bool {
	return true
}

// False is a predicate that never holds.
func False[A any](A) bool {
	return false
}

// DefaultTo returns the pointed-to value, or def when the pointer is nil.
func DefaultTo[T any](def T) func(*T) T {
	return func(p *T) T {
		if p == nil {
			return def
		}
		return *p
	}
}

// Equals returns a predicate testing for equality with x.
func Equals[T comparable](x T) func(T) bool {
	return func(y T) bool {
		return x == y
	}
}

// Gte reports whether a >= b.
func Gte[T cmp.Ordered](a, b T) bool {
	return a >= b
}

// Lte reports whether a <= b.
func Lte[T cmp.Ordered](a, b T) bool {
	return a <= b
}

// Gt reports whether a > b.
func Gt[T cmp.Ordered](a, b T) bool {
	return a > b
}

// Lt reports whether a < b.
func Lt[T cmp.Ordered](a, b T) bool {
	return a < b
}

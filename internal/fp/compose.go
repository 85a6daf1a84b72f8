package fp

// Pipe chains functions of the same type from left to right.
func Pipe[T any](fns ...func(T) T) func(T) T {
	return func(x T) T {
		for _, f := range fns {
			x = f(x)
		}
		return x
	}
}

// Compose chains functions of the same type from right to left.
func Compose[T any](fns ...func(T) T) func(T) T {
	return func(x T) T {
		for i := len(fns) - 1; i >= 0; i-- {
			x = fns[i](x)
		}
		return x
	}
}

// Pipe2 is left to right composition of two functions: Pipe2(f, g)(x) == g(f(x)).
func Pipe2[A, B, C any](f func(A) B, g func(B) C) func(A) C {
	return func(a A) C {
		return g(f(a))
	}
}

// Pipe3 is left to right composition of three functions.
func Pipe3[A, B, C, D any](f func(A) B, g func(B) C, h func(C) D) func(A) D {
	return func(a A) D {
		return h(g(f(a)))
	}
}

// Compose2 is right to left composition: Compose2(g, f)(x) == g(f(x)).
func Compose2[A, B, C any](g func(B) C, f func(A) B) func(A) C {
	return Pipe2(f, g)
}

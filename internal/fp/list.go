package fp

// Map applies f to every element of xs and collects the results.
func Map[T, U any](xs []T, f func(T) U) []U {
	out := make([]U, len(xs))
	for i, x := range xs {
		out[i] = f(x)
	}
	return out
}

// Filter keeps the elements for which pred holds.
func Filter[T any](xs []T, pred func(T) bool) []T {
	out := make([]T, 0, len(xs))
	for _, x := range xs {
		if pred(x) {
			out = append(out, x)
		}
	}
	return out
}

// Reject drops the elements for which pred holds.
func Reject[T any](xs []T, pred func(T) bool) []T {
	return Filter(xs, Complement(pred))
}

// Find returns the first element for which pred holds.
func Find[T any](xs []T, pred func(T) bool) (T, bool) {
	for _, x := range xs {
		if pred(x) {
			return x, true
		}
	}
	var zero T
	return zero, false
}

// Reduce folds xs from the left, starting with init.
func Reduce[T, A any](xs []T, init A, f func(A, T) A) A {
	acc := init
	for _, x := range xs {
		acc = f(acc, x)
	}
	return acc
}

// MapWith is the data-last form of Map.
func MapWith[T, U any](f func(T) U) func([]T) []U {
	return func(xs []T) []U {
		return Map(xs, f)
	}
}

// FilterWith is the data-last form of Filter.
func FilterWith[T any](pred func(T) bool) func([]T) []T {
	return func(xs []T) []T {
		return Filter(xs, pred)
	}
}

// RejectWith is the data-last form of Reject.
func RejectWith[T any](pred func(T) bool) func([]T) []T {
	return func(xs []T) []T {
		return Reject(xs, pred)
	}
}

// FindWith is the data-last form of Find. It returns the zero value when
// nothing matches.
func FindWith[T any](pred func(T) bool) func([]T) T {
	return func(xs []T) T {
		x, _ := Find(xs, pred)
		return x
	}
}

// ReduceWith is the data-last form of Reduce.
func ReduceWith[T, A any](f func(A, T) A, init A) func([]T) A {
	return func(xs []T) A {
		return Reduce(xs, init, f)
	}
}

// Nth returns a function reading index i. Negative indexes count from the
// end; out of range indexes yield the zero value.
func Nth[T any](i int) func([]T) T {
	return func(xs []T) T {
		idx := i
		if idx < 0 {
			idx += len(xs)
		}
		if idx < 0 || idx >= len(xs) {
			var zero T
			return zero
		}
		return xs[idx]
	}
}

// Head returns the first element, or the zero value of an empty slice.
func Head[T any](xs []T) T {
	return Nth[T](0)(xs)
}

// Last returns the last element, or the zero value of an empty slice.
func Last[T any](xs []T) T {
	return Nth[T](-1)(xs)
}

// Tail returns all but the first element.
func Tail[T any](xs []T) []T {
	if len(xs) == 0 {
		return []T{}
	}
	return clone(xs[1:])
}

// Init returns all but the last element.
func Init[T any](xs []T) []T {
	if len(xs) == 0 {
		return []T{}
	}
	return clone(xs[:len(xs)-1])
}

// Take returns the first n elements.
func Take[T any](n int, xs []T) []T {
	n = bound(n, len(xs))
	return clone(xs[:n])
}

// TakeLast returns the last n elements.
func TakeLast[T any](n int, xs []T) []T {
	n = bound(n, len(xs))
	return clone(xs[len(xs)-n:])
}

// Append returns a copy of xs with x added at the end.
func Append[T any](x T, xs []T) []T {
	return append(clone(xs), x)
}

// Prepend returns a copy of xs with x added at the front.
func Prepend[T any](x T, xs []T) []T {
	out := make([]T, 0, len(xs)+1)
	out = append(out, x)
	return append(out, xs...)
}

// Insert returns a copy of xs with x inserted before index i.
func Insert[T any](i int, x T, xs []T) []T {
	i = bound(i, len(xs))
	out := make([]T, 0, len(xs)+1)
	out = append(out, xs[:i]...)
	out = append(out, x)
	return append(out, xs[i:]...)
}

// Update returns a copy of xs with the element at i replaced by x. Out of
// range indexes return an unchanged copy.
func Update[T any](i int, x T, xs []T) []T {
	out := clone(xs)
	if i < 0 {
		i += len(xs)
	}
	if i >= 0 && i < len(out) {
		out[i] = x
	}
	return out
}

// Contains reports whether x is an element of xs.
func Contains[T comparable](x T, xs []T) bool {
	for _, v := range xs {
		if v == x {
			return true
		}
	}
	return false
}

func clone[T any](xs []T) []T {
	out := make([]T, len(xs))
	copy(out, xs)
	return out
}

func bound(n, size int) int {
	if n < 0 {
		return 0
	}
	if n > size {
		return size
	}
	return n
}

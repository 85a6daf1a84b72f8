package lessons

import (
	"fpt/internal/assert"
	"fpt/internal/registry"
)

// Replacing loops with the collection iteration helpers of package fp is
// the easiest way to start thinking functionally.

// DoubleArray doubles every element. Use fp.Map.
var DoubleArray func(xs []int) []int

// FilterOdd keeps the even elements, dropping the odd ones. Use fp.Filter
// with IsEven.
var FilterOdd func(xs []int) []int

// RejectEven drops the even elements. fp.Reject is fp.Filter with the
// predicate inverted.
var RejectEven func(xs []int) []int

// FindFirstDivisibleBy3 returns the first element divisible by 3. Use
// fp.Find or fp.FindWith.
var FindFirstDivisibleBy3 func(xs []int) int

// FindSum adds all elements up. fp.Reduce threads an accumulator through
// the slice: the function gets the accumulator and an element and returns
// the next accumulator.
var FindSum func(xs []int) int

func gettingStarted(r *registry.Registry) {
	r.BeginGroup("Getting started")

	r.AddTest("map: double array", func() {
		assert.Expect(DoubleArray([]int{2, 3, 5})).ToBe([]int{4, 6, 10})
	})

	r.AddTest("filter: odd numbers", func() {
		assert.Expect(FilterOdd([]int{2, 3, 5})).ToBe([]int{2})
	})

	r.AddTest("reject: even numbers", func() {
		assert.Expect(RejectEven([]int{2, 3, 5})).ToBe([]int{3, 5})
	})

	r.AddTest("find: first divisible by 3", func() {
		assert.Expect(FindFirstDivisibleBy3([]int{2, 12, 5})).ToBe(12)
	})

	r.AddTest("reduce: sum of array", func() {
		assert.Expect(FindSum([]int{2, 12, -5})).ToBe(9)
	})
}

package lessons

import (
	"fpt/internal/assert"
	"fpt/internal/registry"
)

// IsEven is given.
func IsEven(n int) bool {
	return n%2 == 0
}

// DivisibleBy returns a predicate testing divisibility by d.
func DivisibleBy(d int) func(int) bool {
	return func(n int) bool {
		return n%d == 0
	}
}

// IsOdd holds for odd numbers. Build it from IsEven with fp.Complement.
var IsOdd func(n int) bool

// IsLeapYear holds for years divisible by 4 that are either not divisible
// by 100 or divisible by 400. Combine DivisibleBy predicates with fp.Both,
// fp.Either and fp.Complement.
var IsLeapYear func(year int) bool

// MathFn computes y = 3x² + 5 as a pipeline. fp.Pipe feeds the input
// through its functions left to right.
var MathFn func(x int) int

// MathFnCompose is MathFn written with fp.Compose, which applies its
// functions right to left.
var MathFnCompose func(x int) int

func combiningFunctions(r *registry.Registry) {
	r.BeginGroup("Combining functions")

	r.AddTest("complement: is odd", func() {
		assert.Expect(IsOdd(3)).ToBeTrue()
		assert.Expect(IsOdd(1)).ToBeTrue()
	})

	r.AddTest("either, both: is leap year", func() {
		assert.Expect(IsLeapYear(2004)).ToBeTrue()
		assert.Expect(IsLeapYear(2000)).ToBeTrue()
		assert.Expect(IsLeapYear(1900)).ToBeFalse()
	})

	r.AddTest("pipe: math function", func() {
		assert.Expect(MathFn(-2)).ToBe(17)
		assert.Expect(MathFn(25)).ToBe(1880)
	})

	r.AddTest("compose: math function", func() {
		assert.Expect(MathFnCompose(-2)).ToBe(17)
		assert.Expect(MathFnCompose(25)).ToBe(1880)
	})
}

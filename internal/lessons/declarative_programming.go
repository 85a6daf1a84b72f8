package lessons

import (
	"fpt/internal/assert"
	"fpt/internal/registry"
)

// Declarative code states what to compute and leaves out the how. Package
// fp offers function forms of the operators and statements imperative code
// uses: fp.Add and fp.Multiply for arithmetic, fp.Gte and fp.Equals for
// comparisons, fp.IfElse and fp.Cond for control flow.

// SquareOfLinear computes y = (3x - 5)² from fp.Multiply and fp.Subtract.
var SquareOfLinear func(x int) int

// Person is who the comparison exercises look at
type Person struct {
	Age          int
	BirthCountry string
}

// IsOver18 holds for people aged 18 or more. fp.Gte takes its arguments in
// reading order, so use fp.PartialRight to fix the 18.
var IsOver18 func(p Person) bool

// WasBornInMongolia compares the birth country with fp.Equals.
var WasBornInMongolia func(p Person) bool

// GetLineWidth returns the configured width, or 80 when none is set. Use
// fp.DefaultTo: a nil pointer means unset, while 0 stays a valid width.
var GetLineWidth func(width *int) int

// Forever21 returns the next age, except that from 21 on it stays 21. Use
// fp.IfElse.
var Forever21 func(age int) int

// AlwaysIOI always returns "IOI". fp.Always builds constant functions.
var AlwaysIOI func() string

// ReturnIdentity returns its argument unchanged. Try fp.Identity.
var ReturnIdentity func(v any) any

// TransformNumber halves even numbers and returns odd ones unchanged.
// fp.When is fp.IfElse whose other branch is the identity.
var TransformNumber func(n int) int

// GetCorrespondingMark grades a score: A from 90, B from 80, C from 70, D
// from 60 and F below. fp.Cond replaces a chain of if statements.
var GetCorrespondingMark func(score float64) string

func declarativeProgramming(r *registry.Registry) {
	r.BeginGroup("Declarative programming")

	r.AddTest("multiply, subtract: y=(3x-5)^2", func() {
		assert.Expect(SquareOfLinear(3)).ToBe(16)
		assert.Expect(SquareOfLinear(-10)).ToBe(1225)
	})

	r.AddTest("comparison operators", func() {
		mike := Person{Age: 15, BirthCountry: "United Kingdom"}
		jack := Person{Age: 21, BirthCountry: "Mongolia"}

		assert.Expect(IsOver18(mike)).ToBeFalse()
		assert.Expect(IsOver18(jack)).ToBeTrue()

		assert.Expect(WasBornInMongolia(mike)).ToBeFalse()
		assert.Expect(WasBornInMongolia(jack)).ToBeTrue()
	})

	r.AddTest("defaultTo: getLineWidth", func() {
		width := 16
		assert.Expect(GetLineWidth(&width)).ToBe(16)
		assert.Expect(GetLineWidth(nil)).ToBe(80)
	})

	r.AddTest("ifElse: forever 21", func() {
		assert.Expect(Forever21(15)).ToBe(16)
		assert.Expect(Forever21(21)).ToBe(21)
		assert.Expect(Forever21(60)).ToBe(21)
	})

	r.AddTest("always: IOI", func() {
		for i := 0; i < 3; i++ {
			assert.Expect(AlwaysIOI()).ToBe("IOI")
		}
	})

	r.AddTest("identity", func() {
		assert.Expect(ReturnIdentity(nil)).ToBe(nil)
		assert.Expect(ReturnIdentity(12)).ToBe(12)
		assert.Expect(ReturnIdentity("IOI")).ToBe("IOI")
	})

	r.AddTest("when: transform number", func() {
		assert.Expect(TransformNumber(2)).ToBe(1)
		assert.Expect(TransformNumber(3)).ToBe(3)
	})

	r.AddTest("cond: get corresponding mark", func() {
		assert.Expect(GetCorrespondingMark(100)).ToBe("A")
		assert.Expect(GetCorrespondingMark(80.5)).ToBe("B")
		assert.Expect(GetCorrespondingMark(77)).ToBe("C")
		assert.Expect(GetCorrespondingMark(68)).ToBe("D")
		assert.Expect(GetCorrespondingMark(23)).ToBe("F")
	})
}

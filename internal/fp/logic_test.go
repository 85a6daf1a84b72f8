package fp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCombiningPredicates(t *testing.T) {
	isOdd := Complement(isEven)
	assert.True(t, isOdd(3))
	assert.False(t, isOdd(4))

	divisibleBy := func(n int) func(int) bool {
		return func(x int) bool { return x%n == 0 }
	}
	isLeapYear := Both(divisibleBy(4), Either(Complement(divisibleBy(100)), divisibleBy(400)))

	tests := []struct {
		year int
		leap bool
	}{
		{2004, true},
		{2000, true},
		{1900, false},
		{2001, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.leap, isLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestConditionals(t *testing.T) {
	forever21 := IfElse(Partial(Flip(Gte[int]), 21), Const[int](21), Inc[int])
	assert.Equal(t, 16, forever21(15))
	assert.Equal(t, 21, forever21(21))
	assert.Equal(t, 21, forever21(60))

	halveEven := When(isEven, func(n int) int { return n / 2 })
	assert.Equal(t, 1, halveEven(2))
	assert.Equal(t, 3, halveEven(3))

	doubleOdd := Unless(isEven, func(n int) int { return n * 2 })
	assert.Equal(t, 2, doubleOdd(2))
	assert.Equal(t, 6, doubleOdd(3))
}

func TestCond(t *testing.T) {
	atLeast := func(min float64) func(float64) bool {
		return func(x float64) bool { return x >= min }
	}
	mark := Cond(
		Case[float64, string]{atLeast(90), Const[float64]("A")},
		Case[float64, string]{atLeast(80), Const[float64]("B")},
		Case[float64, string]{True[float64], Const[float64]("F")},
	)

	assert.Equal(t, "A", mark(100))
	assert.Equal(t, "B", mark(80.5))
	assert.Equal(t, "F", mark(23))

	none := Cond(Case[int, string]{False[int], Const[int]("never")})
	assert.Equal(t, "", none(1))
}

func TestConstants(t *testing.T) {
	ioi := Always("IOI")
	assert.Equal(t, "IOI", ioi())
	assert.Equal(t, 12, Identity(12))
	assert.Nil(t, Identity[any](nil))

	lineWidth := DefaultTo(80)
	w := 16
	assert.Equal(t, 16, lineWidth(&w))
	assert.Equal(t, 80, lineWidth(nil))

	assert.True(t, Equals("Mongolia")("Mongolia"))
	assert.False(t, Equals("Mongolia")("United Kingdom"))
}

func TestComparisons(t *testing.T) {
	assert.True(t, Gte(2, 2))
	assert.True(t, Lte(2, 2))
	assert.False(t, Gt(2, 2))
	assert.True(t, Lt(1, 2))
	assert.True(t, Gt("b", "a"))
}

func TestArithmetic(t *testing.T) {
	assert.Equal(t, 5, Add(2, 3))
	assert.Equal(t, -1, Subtract(2, 3))
	assert.Equal(t, 6, Multiply(2, 3))
	assert.Equal(t, 2.5, Divide(5.0, 2.0))
	assert.Equal(t, 1, Modulo(7, 3))
	assert.Equal(t, 3, Inc(2))
	assert.Equal(t, 1, Dec(2))
}

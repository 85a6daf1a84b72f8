package lessons

import (
	"fpt/internal/assert"
	"fpt/internal/fp"
	"fpt/internal/registry"
)

// AddHundredNTimes is given.
func AddHundredNTimes(num, n int) int {
	return num + 100*n
}

// AddHundred5Times is AddHundredNTimes with n fixed to 5. fp.PartialRight
// fixes the last argument and returns a function of the remaining one.
var AddHundred5Times func(num int) int

// AddHundred10Times is AddHundredNTimes with n fixed to 10.
var AddHundred10Times func(num int) int

// MultiplyNumbersWithFilter multiplies the elements accepted by keep.
func MultiplyNumbersWithFilter(keep func(int) bool, list []int) int {
	return fp.Pipe2(fp.FilterWith(keep), fp.ReduceWith(fp.Multiply[int], 1))(list)
}

// CurriedMultiplyNumbersWithFilter takes the filter first and the list
// later. Use fp.Curry on MultiplyNumbersWithFilter.
var CurriedMultiplyNumbersWithFilter func(keep func(int) bool) func(list []int) int

// CheckScore keeps the marks of at least minimal.
func CheckScore(marks []int, minimal int) []int {
	return fp.Filter(marks, func(m int) bool {
		return fp.Gte(m, minimal)
	})
}

// FlippedCheckScore is CheckScore taking the minimal score first, so that
// fp.Partial can fix it. Use fp.Flip.
var FlippedCheckScore func(minimal int, marks []int) []int

// Book is a title published in a year
type Book struct {
	Title string
	Year  int
}

// PublishedInYear returns a predicate for books published in year.
func PublishedInYear(year int) func(Book) bool {
	return func(b Book) bool {
		return b.Year == year
	}
}

// TitlesForYear returns a function listing the titles of the books
// published in year. Compose fp.FilterWith and fp.MapWith.
var TitlesForYear func(year int) func(books []Book) []string

func partialApplication(r *registry.Registry) {
	r.BeginGroup("Partial application")

	r.AddTest("partialRight: add 100 n times", func() {
		assert.Expect(fp.Map([]int{3, 5, 7}, AddHundred5Times)).ToBe([]int{503, 505, 507})
		assert.Expect(fp.Map([]int{3, 5, 7}, AddHundred10Times)).ToBe([]int{1003, 1005, 1007})
	})

	r.AddTest("curry: multiply numbers with filter", func() {
		multiplyOddNumbers := CurriedMultiplyNumbersWithFilter(func(n int) bool { return n%2 == 1 })
		assert.Expect(multiplyOddNumbers([]int{3, 5, 7})).ToBe(105)
		assert.Expect(multiplyOddNumbers([]int{2, 3, 5})).ToBe(15)
	})

	r.AddTest("flip: check score", func() {
		getAMarks := fp.Partial(FlippedCheckScore, 90)
		assert.Expect(getAMarks([]int{55, 87, 13, 98, 100})).ToBe([]int{98, 100})
		getGoodMarks := fp.Partial(FlippedCheckScore, 80)
		assert.Expect(getGoodMarks([]int{55, 87, 13, 98, 100})).ToBe([]int{87, 98, 100})
	})

	r.AddTest("fn composition: titles for year", func() {
		titlesFor1990 := TitlesForYear(1990)
		assert.Expect(titlesFor1990([]Book{
			{Title: "test1", Year: 1990},
			{Title: "test2", Year: 1991},
		})).ToBe([]string{"test1"})
	})
}

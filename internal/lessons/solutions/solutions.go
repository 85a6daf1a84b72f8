// Package solutions fills in every exercise of the course with a reference
// implementation built on package fp.
package solutions

import (
	"fpt/internal/fp"
	"fpt/internal/lessons"
)

// Install assigns the reference solutions to the exercise variables.
func Install() {
	gettingStarted()
	combiningFunctions()
	partialApplication()
	declarativeProgramming()
	immutabilityAndObjects()
	objectsAndFunctions()
}

func gettingStarted() {
	lessons.DoubleArray = fp.MapWith(fp.Partial(fp.Multiply[int], 2))
	lessons.FilterOdd = fp.FilterWith(lessons.IsEven)
	lessons.RejectEven = fp.RejectWith(lessons.IsEven)
	lessons.FindFirstDivisibleBy3 = fp.FindWith(lessons.DivisibleBy(3))
	lessons.FindSum = fp.ReduceWith(fp.Add[int], 0)
}

func square(n int) int {
	return fp.Multiply(n, n)
}

func combiningFunctions() {
	lessons.IsOdd = fp.Complement(lessons.IsEven)
	lessons.IsLeapYear = fp.Both(
		lessons.DivisibleBy(4),
		fp.Either(fp.Complement(lessons.DivisibleBy(100)), lessons.DivisibleBy(400)),
	)
	lessons.MathFn = fp.Pipe(
		square,
		fp.Partial(fp.Multiply[int], 3),
		fp.Partial(fp.Add[int], 5),
	)
	lessons.MathFnCompose = fp.Compose(
		fp.Partial(fp.Add[int], 5),
		fp.Partial(fp.Multiply[int], 3),
		square,
	)
}

func partialApplication() {
	lessons.AddHundred5Times = fp.PartialRight(lessons.AddHundredNTimes, 5)
	lessons.AddHundred10Times = fp.PartialRight(lessons.AddHundredNTimes, 10)
	lessons.CurriedMultiplyNumbersWithFilter = fp.Curry(lessons.MultiplyNumbersWithFilter)
	lessons.FlippedCheckScore = fp.Flip(lessons.CheckScore)
	lessons.TitlesForYear = func(year int) func([]lessons.Book) []string {
		return fp.Pipe2(
			fp.FilterWith(lessons.PublishedInYear(year)),
			fp.MapWith(func(b lessons.Book) string { return b.Title }),
		)
	}
}

func declarativeProgramming() {
	lessons.SquareOfLinear = fp.Pipe(
		fp.Partial(fp.Multiply[int], 3),
		fp.PartialRight(fp.Subtract[int], 5),
		square,
	)
	lessons.IsOver18 = fp.Pipe2(
		func(p lessons.Person) int { return p.Age },
		fp.PartialRight(fp.Gte[int], 18),
	)
	lessons.WasBornInMongolia = fp.Pipe2(
		func(p lessons.Person) string { return p.BirthCountry },
		fp.Equals("Mongolia"),
	)
	lessons.GetLineWidth = fp.DefaultTo(80)
	lessons.Forever21 = fp.IfElse(
		fp.PartialRight(fp.Gte[int], 21),
		fp.Const[int](21),
		fp.Inc[int],
	)
	lessons.AlwaysIOI = fp.Always("IOI")
	lessons.ReturnIdentity = fp.Identity[any]
	lessons.TransformNumber = fp.When(lessons.IsEven, fp.PartialRight(fp.Divide[int], 2))
	lessons.GetCorrespondingMark = fp.Cond(
		fp.Case[float64, string]{When: fp.PartialRight(fp.Gte[float64], 90), Then: fp.Const[float64]("A")},
		fp.Case[float64, string]{When: fp.PartialRight(fp.Gte[float64], 80), Then: fp.Const[float64]("B")},
		fp.Case[float64, string]{When: fp.PartialRight(fp.Gte[float64], 70), Then: fp.Const[float64]("C")},
		fp.Case[float64, string]{When: fp.PartialRight(fp.Gte[float64], 60), Then: fp.Const[float64]("D")},
		fp.Case[float64, string]{When: fp.True[float64], Then: fp.Const[float64]("F")},
	)
}

func immutabilityAndObjects() {
	lessons.GetYear = fp.Prop("year")
	lessons.GetNameAndAge = fp.Pick("name", "year")
	lessons.HasTitle = fp.Has("title")
	lessons.GetNameOfAuthor = fp.Path("author", "name")
	lessons.GetNameOfDoc = fp.PropOr("Untitled", "name")
	lessons.GetKeys = fp.Pipe2(fp.Prop("author"), func(v any) []string {
		author, _ := v.(fp.Object)
		return fp.Keys(author)
	})
	lessons.SetZipcode = fp.AssocPath([]string{"author", "address", "zipcode"}, "13000")
	lessons.FilterInjections = fp.Omit("$regex", "$gt")
	lessons.CelebrateBirthday = fp.Evolve(map[string]func(any) any{
		"age": func(v any) any {
			age, _ := v.(int)
			return fp.Inc(age)
		},
	})
}

func objectsAndFunctions() {
	lessons.HandleEvent = func(_ any, state lessons.EventState) {
		lessons.SetState.Call(lessons.State{X: state.DX, Y: state.DY})
	}
}

// Package fp provides the generic combinators taught by the lessons:
// collection iteration, logic and arithmetic helpers, composition, partial
// application and immutable object updates.
//
// Functions come in two flavours. Data-first helpers such as Map take the
// collection as their first argument. Helpers with a With suffix, and most
// logic combinators, return a function that waits for its data, so they can
// be chained with Pipe and Compose:
//
//	sumOfThirds := fp.Pipe2(
//		fp.MapWith(fp.Nth[int](2)),
//		fp.ReduceWith(fp.Add[int], 0),
//	)
//
// No function in this package modifies its input.
package fp

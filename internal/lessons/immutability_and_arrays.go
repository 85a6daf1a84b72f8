package lessons

import (
	"fpt/internal/assert"
	"fpt/internal/fp"
	"fpt/internal/registry"
)

// fp.Nth is the slice counterpart of fp.Prop: Nth[int](3) reads index 3
// and negative indexes count from the end. fp.Head, fp.Last, fp.Tail,
// fp.Init, fp.Take and fp.TakeLast cover the common slices, and fp.Insert,
// fp.Update, fp.Append and fp.Prepend return changed copies without
// touching the input.

// GetSumOfThirdElements adds up the element at index 2 of every row. It is
// solved already, as an example of a pipeline over nested slices.
var GetSumOfThirdElements = fp.Pipe2(
	fp.MapWith(fp.Nth[int](2)),
	fp.ReduceWith(fp.Add[int], 0),
)

func immutabilityAndArrays(r *registry.Registry) {
	r.BeginGroup("Immutability and arrays")

	r.AddTest("array manipulation: sum of third elements", func() {
		assert.Expect(GetSumOfThirdElements([][]int{
			{1, 2, 3},
			{1, 2, 0},
			{3, 5, 100},
		})).ToBe(103)
	})
}

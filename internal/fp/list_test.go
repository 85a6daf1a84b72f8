package fp

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func isEven(n int) bool { return n%2 == 0 }

func TestListIteration(t *testing.T) {
	nums := []int{2, 3, 5}

	assert.Equal(t, []int{4, 6, 10}, Map(nums, func(n int) int { return n * 2 }))
	assert.Equal(t, []string{"2", "3"}, Map([]int{2, 3}, func(n int) string { return string(rune('0' + n)) }))
	assert.Equal(t, []int{2}, Filter(nums, isEven))
	assert.Equal(t, []int{3, 5}, Reject(nums, isEven))
	assert.Equal(t, 10, Reduce(nums, 0, Add[int]))

	found, ok := Find([]int{2, 12, 5}, func(n int) bool { return n%3 == 0 })
	assert.True(t, ok)
	assert.Equal(t, 12, found)

	_, ok = Find(nums, func(n int) bool { return n > 100 })
	assert.False(t, ok)

	// inputs are never modified
	assert.Equal(t, []int{2, 3, 5}, nums)
}

func TestDataLastForms(t *testing.T) {
	nums := []int{2, 12, 5}

	assert.Equal(t, []int{3, 13, 6}, MapWith(Inc[int])(nums))
	assert.Equal(t, []int{2, 12}, FilterWith(isEven)(nums))
	assert.Equal(t, []int{5}, RejectWith(isEven)(nums))
	assert.Equal(t, 12, FindWith(isEven)([]int{1, 12, 4}))
	assert.Equal(t, 0, FindWith(isEven)([]int{1, 3}))
	assert.Equal(t, 19, ReduceWith(Add[int], 0)(nums))
}

func TestNth(t *testing.T) {
	numbers := []int{10, 20, 30, 40, 50, 60}

	tests := []struct {
		name  string
		index int
		want  int
	}{
		{"zero based", 3, 40},
		{"negative from the right", -2, 50},
		{"first", 0, 10},
		{"last", -1, 60},
		{"past the end", 6, 0},
		{"before the start", -7, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Nth[int](tt.index)(numbers))
		})
	}
}

func TestSlices(t *testing.T) {
	numbers := []int{10, 20, 30, 40, 50, 60}

	assert.Equal(t, 10, Head(numbers))
	assert.Equal(t, 60, Last(numbers))
	assert.Equal(t, []int{20, 30, 40, 50, 60}, Tail(numbers))
	assert.Equal(t, []int{10, 20, 30, 40, 50}, Init(numbers))
	assert.Equal(t, []int{10, 20, 30}, Take(3, numbers))
	assert.Equal(t, []int{40, 50, 60}, TakeLast(3, numbers))
	assert.Equal(t, numbers, Take(10, numbers))
	assert.Empty(t, Take(-1, numbers))
	assert.Empty(t, Tail([]int{}))
	assert.Empty(t, Init([]int{}))
	assert.Equal(t, 0, Head([]int{}))
}

func TestImmutableUpdates(t *testing.T) {
	numbers := []int{1, 2, 3}

	assert.Equal(t, []int{1, 2, 3, 4}, Append(4, numbers))
	assert.Equal(t, []int{0, 1, 2, 3}, Prepend(0, numbers))
	assert.Equal(t, []int{1, 9, 2, 3}, Insert(1, 9, numbers))
	assert.Equal(t, []int{1, 2, 3, 9}, Insert(10, 9, numbers))
	assert.Equal(t, []int{1, 9, 3}, Update(1, 9, numbers))
	assert.Equal(t, []int{1, 2, 9}, Update(-1, 9, numbers))
	assert.Equal(t, []int{1, 2, 3}, Update(5, 9, numbers))
	assert.True(t, Contains(2, numbers))
	assert.False(t, Contains(7, numbers))

	assert.Equal(t, []int{1, 2, 3}, numbers)
}

func TestAppendDoesNotShareBacking(t *testing.T) {
	base := make([]int, 2, 10)
	a := Append(1, base)
	b := Append(2, base)

	assert.Equal(t, []int{0, 0, 1}, a)
	assert.Equal(t, []int{0, 0, 2}, b)
}

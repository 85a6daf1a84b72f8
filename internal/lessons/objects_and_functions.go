package lessons

import (
	"fpt/internal/assert"
	"fpt/internal/mock"
	"fpt/internal/registry"
)

// EventState is the movement an event carries
type EventState struct {
	DX, DY int
}

// State is what the component stores
type State struct {
	X, Y int
}

// SetState records every state the handler stores.
var SetState = mock.New()

// HandleEvent receives an event and its movement. It must call
// SetState.Call exactly once with the State{X: dx, Y: dy}.
var HandleEvent func(event any, state EventState)

func objectsAndFunctions(r *registry.Registry) {
	r.BeginGroup("Exercises: object and functions")

	r.AddTest("exercise: event handler", func() {
		SetState.Reset()

		HandleEvent(struct{}{}, EventState{DX: 1, DY: 2})

		assert.Expect(SetState.Len()).ToBe(1)
		assert.Expect(SetState.Calls()[0]).ToBe([]any{State{X: 1, Y: 2}})
	})
}

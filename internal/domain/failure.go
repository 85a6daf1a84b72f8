package domain

import "fmt"

// FailureKind classifies what a test body raised
type FailureKind string

const (
	// KindAssertion is an equality assertion that did not hold
	KindAssertion FailureKind = "assertion"
	// KindRuntime is a Go runtime error, e.g. calling an unfilled nil stub
	KindRuntime FailureKind = "runtime"
	// KindError is any other error value passed to panic
	KindError FailureKind = "error"
	// KindPanic is a panic with a non-error value
	KindPanic FailureKind = "panic"
)

// Frame is one labeled source location of a captured call stack
type Frame struct {
	Function string `json:"function"`
	File     string `json:"file"`
	Line     int    `json:"line"`
}

// String formats the frame the way the reporter prints it.
func (f Frame) String() string {
	return fmt.Sprintf("%s (%s:%d)", f.Function, f.File, f.Line)
}

// Failure describes why a test case did not pass
type Failure struct {
	Kind    FailureKind `json:"kind"`
	Message string      `json:"message"`
	Excerpt []Frame     `json:"excerpt"` // Frames that survived the trace policy
	Frames  []Frame     `json:"frames"`  // Full captured stack
}

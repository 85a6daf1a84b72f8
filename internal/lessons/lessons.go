// Package lessons is the course: one section per file, each registering a
// group of test cases against exercises the learner fills in.
//
// Every exercise is an exported function variable that starts out nil.
// Calling an unfilled exercise panics with a nil dereference, which the
// runner reports as a runtime failure pointing at the test in the lesson
// file. Fill the variables in (in an init function or by replacing the nil)
// and run the course again.
package lessons

import "fpt/internal/registry"

// sections in course order
var sections = []func(r *registry.Registry){
	gettingStarted,
	combiningFunctions,
	partialApplication,
	declarativeProgramming,
	immutabilityAndObjects,
	immutabilityAndArrays,
	objectsAndFunctions,
}

// Register adds every section of the course to r, in order.
func Register(r *registry.Registry) {
	for _, section := range sections {
		section(r)
	}
}

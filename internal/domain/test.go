package domain

// Body is the executable part of a test case. It reports failure by panicking.
type Body func()

// TestCase represents a single named check inside a group
type TestCase struct {
	Name string // Display name shown by the reporter
	Body Body   // Code under test, invoked once per run
}

// Group represents one lesson section: a named, ordered list of test cases
type Group struct {
	Name  string
	Cases []TestCase
}

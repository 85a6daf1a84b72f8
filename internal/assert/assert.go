// Package assert is the equality check lesson bodies use to fail a test.
package assert

import (
	"encoding/json"
	"fmt"
	"reflect"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

// AssertionError is raised when an actual value differs from the expected one
type AssertionError struct {
	Actual   any
	Expected any
	Diff     string // cmp.Diff output, "-expected +actual"
}

func (e *AssertionError) Error() string {
	return fmt.Sprintf("Assertion failed: got %s, expected %s", render(e.Actual), render(e.Expected))
}

// options make nil and empty collections equal and compare unexported fields
// of plain value structs.
var options = []cmp.Option{
	cmpopts.EquateEmpty(),
	cmp.Exporter(func(reflect.Type) bool { return true }),
}

// Equal returns an *AssertionError when actual and expected are not
// structurally equal.
func Equal(actual, expected any) error {
	if cmp.Equal(expected, actual, options...) {
		return nil
	}
	return &AssertionError{
		Actual:   actual,
		Expected: expected,
		Diff:     cmp.Diff(expected, actual, options...),
	}
}

// Expectation wraps an actual value for a fluent check
type Expectation struct {
	actual any
}

// Expect starts an assertion on value.
func Expect(value any) *Expectation {
	return &Expectation{actual: value}
}

// ToBe panics with an *AssertionError when the value differs from expected.
func (e *Expectation) ToBe(expected any) {
	if err := Equal(e.actual, expected); err != nil {
		panic(err)
	}
}

// ToBeTrue is ToBe(true).
func (e *Expectation) ToBeTrue() {
	e.ToBe(true)
}

// ToBeFalse is ToBe(false).
func (e *Expectation) ToBeFalse() {
	e.ToBe(false)
}

func render(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%#v", v)
	}
	return string(data)
}

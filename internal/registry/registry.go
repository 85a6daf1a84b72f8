package registry

import (
	"errors"
	"fmt"

	"fpt/internal/domain"
)

var (
	// ErrNoGroup is raised when a test is added before any group was begun
	ErrNoGroup = errors.New("no group has been begun")
	// ErrEmptyName is raised when a group is begun without a name
	ErrEmptyName = errors.New("group name must not be empty")
)

// UsageError is the panic value for registration calls made out of order
type UsageError struct {
	Op   string
	Name string
	Err  error
}

func (e *UsageError) Error() string {
	return fmt.Sprintf("%s %q: %v", e.Op, e.Name, e.Err)
}

func (e *UsageError) Unwrap() error {
	return e.Err
}

// Registry holds the groups and test cases registered by lesson content.
// Beginning a group that already exists clears its cases and keeps it at the
// position of its first registration.
type Registry struct {
	order   []string
	groups  map[string][]domain.TestCase
	current string
}

// New creates an empty Registry
func New() *Registry {
	return &Registry{groups: make(map[string][]domain.TestCase)}
}

// BeginGroup marks the start of a group of tests. Panics with a *UsageError
// when name is empty.
func (r *Registry) BeginGroup(name string) {
	if name == "" {
		panic(&UsageError{Op: "begin group", Name: name, Err: ErrEmptyName})
	}
	if _, ok := r.groups[name]; !ok {
		r.order = append(r.order, name)
	}
	r.groups[name] = []domain.TestCase{}
	r.current = name
}

// AddTest adds a test case to the most recently begun group. Panics with a
// *UsageError when no group has been begun.
func (r *Registry) AddTest(name string, body domain.Body) {
	if r.current == "" {
		panic(&UsageError{Op: "add test", Name: name, Err: ErrNoGroup})
	}
	r.groups[r.current] = append(r.groups[r.current], domain.TestCase{Name: name, Body: body})
}

// Groups returns the registered groups in registration order.
func (r *Registry) Groups() []domain.Group {
	groups := make([]domain.Group, 0, len(r.order))
	for _, name := range r.order {
		cases := make([]domain.TestCase, len(r.groups[name]))
		copy(cases, r.groups[name])
		groups = append(groups, domain.Group{Name: name, Cases: cases})
	}
	return groups
}

// Len returns the number of registered test cases across all groups.
func (r *Registry) Len() int {
	n := 0
	for _, cases := range r.groups {
		n += len(cases)
	}
	return n
}

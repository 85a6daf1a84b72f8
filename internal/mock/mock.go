package mock

import "sync"

// Fn records every call made to it
type Fn struct {
	mu    sync.Mutex
	calls [][]any
}

// New creates a call-recording function
func New() *Fn {
	return &Fn{}
}

// Call records one invocation with its arguments.
func (f *Fn) Call(args ...any) {
	f.mu.Lock()
	defer f.mu.Unlock()
	recorded := make([]any, len(args))
	copy(recorded, args)
	f.calls = append(f.calls, recorded)
}

// Calls returns the arguments of every call, oldest first.
func (f *Fn) Calls() [][]any {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([][]any, len(f.calls))
	for i, args := range f.calls {
		out[i] = append([]any{}, args...)
	}
	return out
}

// Len returns the number of recorded calls.
func (f *Fn) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.calls)
}

// Reset forgets all recorded calls.
func (f *Fn) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = nil
}

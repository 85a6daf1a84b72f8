package trace

import (
	"path"
	"reflect"
	"runtime"
	"strings"

	"fpt/internal/domain"
)

// maxDepth bounds how many frames Capture records
const maxDepth = 64

// Capture records the calling goroutine's stack, innermost frame first.
// Called from a deferred recover it includes the frames of the panicking code.
func Capture() []domain.Frame {
	pcs := make([]uintptr, maxDepth)
	n := runtime.Callers(2, pcs)
	if n == 0 {
		return nil
	}

	frames := runtime.CallersFrames(pcs[:n])
	var out []domain.Frame
	for {
		f, more := frames.Next()
		out = append(out, domain.Frame{Function: f.Function, File: f.File, Line: f.Line})
		if !more {
			break
		}
	}
	return out
}

// Predicate decides whether a frame is worth showing to the learner
type Predicate func(domain.Frame) bool

// Policy selects a bounded excerpt of a captured stack
type Policy struct {
	Keep  Predicate
	Limit int
}

// Excerpt returns the first Limit frames accepted by Keep. When no frame is
// accepted it falls back to the first Limit non-runtime frames.
func (p Policy) Excerpt(frames []domain.Frame) []domain.Frame {
	limit := p.Limit
	if limit <= 0 {
		limit = 1
	}
	keep := p.Keep
	if keep == nil {
		keep = NotRuntime
	}

	excerpt := take(frames, keep, limit)
	if len(excerpt) == 0 {
		excerpt = take(frames, NotRuntime, limit)
	}
	return excerpt
}

func take(frames []domain.Frame, keep Predicate, limit int) []domain.Frame {
	var out []domain.Frame
	for _, f := range frames {
		if len(out) == limit {
			break
		}
		if keep(f) {
			out = append(out, f)
		}
	}
	return out
}

// HarnessPackages are the packages whose frames are noise in an excerpt
var HarnessPackages = []string{"execution", "trace", "assert", "mock", "fp"}

// internalRoot is the import path prefix shared by the harness packages.
var internalRoot = path.Dir(reflect.TypeOf(Policy{}).PkgPath())

// DefaultPolicy drops runtime, testing and harness frames plus every frame
// whose function or file contains one of hide, and keeps limit frames.
func DefaultPolicy(limit int, hide ...string) Policy {
	prefixes := make([]string, 0, len(HarnessPackages)+1)
	for _, pkg := range HarnessPackages {
		prefixes = append(prefixes, internalRoot+"/"+pkg+".")
	}
	prefixes = append(prefixes, "testing.")

	return Policy{
		Keep:  All(NotRuntime, NotInPackages(prefixes...), NotMatching(hide...)),
		Limit: limit,
	}
}

// NotRuntime rejects frames of the Go runtime.
func NotRuntime(f domain.Frame) bool {
	return !strings.HasPrefix(f.Function, "runtime.") && f.Function != ""
}

// NotInPackages rejects frames whose function starts with one of prefixes.
func NotInPackages(prefixes ...string) Predicate {
	return func(f domain.Frame) bool {
		for _, p := range prefixes {
			if strings.HasPrefix(f.Function, p) {
				return false
			}
		}
		return true
	}
}

// NotMatching rejects frames whose function or file contains one of patterns.
func NotMatching(patterns ...string) Predicate {
	return func(f domain.Frame) bool {
		for _, p := range patterns {
			if p == "" {
				continue
			}
			if strings.Contains(f.Function, p) || strings.Contains(f.File, p) {
				return false
			}
		}
		return true
	}
}

// All accepts a frame only when every predicate accepts it.
func All(preds ...Predicate) Predicate {
	return func(f domain.Frame) bool {
		for _, p := range preds {
			if !p(f) {
				return false
			}
		}
		return true
	}
}

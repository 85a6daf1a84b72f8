package execution

import (
	"errors"
	"fmt"
	"runtime"
	"time"

	"fpt/internal/assert"
	"fpt/internal/domain"
	"fpt/internal/trace"
)

// Runner executes test cases one at a time and stops at the first failure
type Runner struct {
	reporter Reporter
	policy   trace.Policy
	now      func() time.Time
}

// NewRunner creates a new Runner. A nil reporter discards all events.
func NewRunner(reporter Reporter, policy trace.Policy) *Runner {
	if reporter == nil {
		reporter = nopReporter{}
	}
	return &Runner{
		reporter: reporter,
		policy:   policy,
		now:      time.Now,
	}
}

// Execute visits groups in order and, within a group, cases in order. The
// first case that panics is reported and ends the run; nothing after it is
// invoked.
func (r *Runner) Execute(groups []domain.Group) domain.RunResult {
	result := domain.RunResult{
		StartedAt:    r.now(),
		FirstFailure: -1,
	}
	for _, g := range groups {
		result.Total += len(g.Cases)
	}

	for i, group := range groups {
		r.reporter.GroupStarted(group)

		for _, tc := range group.Cases {
			start := r.now()
			failure := r.invoke(tc.Body)

			cr := domain.CaseResult{
				Group:    group.Name,
				Name:     tc.Name,
				Position: len(result.Cases) + 1,
				Status:   domain.StatusPassed,
				Duration: r.now().Sub(start),
			}
			if failure != nil {
				cr.Status = domain.StatusFailed
				cr.Failure = failure
				result.Cases = append(result.Cases, cr)
				result.FirstFailure = len(result.Cases) - 1
				r.reporter.CaseFailed(cr)
				result.Duration = r.now().Sub(result.StartedAt)
				return result
			}

			result.Cases = append(result.Cases, cr)
			r.reporter.CasePassed(cr)
		}

		var next *domain.Group
		if i+1 < len(groups) {
			next = &groups[i+1]
		}
		r.reporter.GroupFinished(group, next)
	}

	result.Duration = r.now().Sub(result.StartedAt)
	return result
}

// invoke runs body and converts anything it panics with into a Failure.
func (r *Runner) invoke(body domain.Body) (failure *domain.Failure) {
	defer func() {
		if v := recover(); v != nil {
			frames := trace.Capture()
			kind, message := classify(v)
			failure = &domain.Failure{
				Kind:    kind,
				Message: message,
				Excerpt: r.policy.Excerpt(frames),
				Frames:  frames,
			}
		}
	}()

	body()
	return nil
}

func classify(v any) (domain.FailureKind, string) {
	err, ok := v.(error)
	if !ok {
		return domain.KindPanic, fmt.Sprint(v)
	}

	var assertion *assert.AssertionError
	var runtimeErr runtime.Error
	switch {
	case errors.As(err, &assertion):
		return domain.KindAssertion, err.Error()
	case errors.As(err, &runtimeErr):
		return domain.KindRuntime, err.Error()
	default:
		return domain.KindError, err.Error()
	}
}

package execution

import "fpt/internal/domain"

// Executor runs registered groups and returns the outcome
type Executor interface {
	Execute(groups []domain.Group) domain.RunResult
}

// Reporter receives run progress in execution order
type Reporter interface {
	GroupStarted(group domain.Group)
	CasePassed(result domain.CaseResult)
	CaseFailed(result domain.CaseResult)
	// GroupFinished is called after every case of group passed. next is nil
	// when group was the last one.
	GroupFinished(group domain.Group, next *domain.Group)
}

type nopReporter struct{}

func (nopReporter) GroupStarted(domain.Group)                 {}
func (nopReporter) CasePassed(domain.CaseResult)              {}
func (nopReporter) CaseFailed(domain.CaseResult)              {}
func (nopReporter) GroupFinished(domain.Group, *domain.Group) {}

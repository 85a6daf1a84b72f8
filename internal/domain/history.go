package domain

import "time"

// RunRecord is one entry of the run history store
type RunRecord struct {
	ID          string
	StartedAt   time.Time
	Duration    time.Duration
	Total       int
	Passed      int
	Completed   bool
	FailedGroup string
	FailedTest  string
	Message     string
	Cases       []CaseResult
}

// NewRunRecord builds a history record for a run.
func NewRunRecord(id string, r RunResult) RunRecord {
	rec := RunRecord{
		ID:        id,
		StartedAt: r.StartedAt,
		Duration:  r.Duration,
		Total:     r.Total,
		Passed:    r.PassedCount(),
		Completed: r.Passed(),
		Cases:     r.Cases,
	}
	if failed := r.Failed(); failed != nil {
		rec.FailedGroup = failed.Group
		rec.FailedTest = failed.Name
		if failed.Failure != nil {
			rec.Message = failed.Failure.Message
		}
	}
	return rec
}

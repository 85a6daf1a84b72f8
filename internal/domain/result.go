package domain

import "time"

// Status is the outcome of a single test case
type Status string

const (
	StatusPassed Status = "passed"
	StatusFailed Status = "failed"
)

// CaseResult represents the outcome of executing one test case
type CaseResult struct {
	Group    string        `json:"group"`
	Name     string        `json:"name"`
	Position int           `json:"position"` // 1-based position in execution order
	Status   Status        `json:"status"`
	Duration time.Duration `json:"duration_ns"`
	Failure  *Failure      `json:"failure,omitempty"`
}

// RunResult is what a single pass over the registry produced
type RunResult struct {
	StartedAt    time.Time
	Duration     time.Duration
	Total        int          // Number of registered test cases
	Cases        []CaseResult // Executed cases, in execution order
	FirstFailure int          // Index into Cases, -1 when every case passed
}

// Passed reports whether the run completed without a failure.
func (r RunResult) Passed() bool {
	return r.FirstFailure < 0
}

// Failed returns the failed case, or nil when the run passed.
func (r RunResult) Failed() *CaseResult {
	if r.FirstFailure < 0 || r.FirstFailure >= len(r.Cases) {
		return nil
	}
	return &r.Cases[r.FirstFailure]
}

// PassedCount returns the number of cases that passed.
func (r RunResult) PassedCount() int {
	n := 0
	for _, c := range r.Cases {
		if c.Status == StatusPassed {
			n++
		}
	}
	return n
}

// NotRun returns the number of registered cases never attempted.
func (r RunResult) NotRun() int {
	if n := r.Total - len(r.Cases); n > 0 {
		return n
	}
	return 0
}

// RunMeta contains metadata about a run
type RunMeta struct {
	TotalCases      int     `json:"total_cases"`
	ExecutedCases   int     `json:"executed_cases"`
	PassedCases     int     `json:"passed_cases"`
	FailedCases     int     `json:"failed_cases"`
	NotRunCases     int     `json:"not_run_cases"`
	Completed       bool    `json:"completed"`
	FailedGroup     string  `json:"failed_group,omitempty"`
	FailedTest      string  `json:"failed_test,omitempty"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// RunOutput is the complete persisted structure of the last run
type RunOutput struct {
	Meta    RunMeta      `json:"meta"`
	Details []CaseResult `json:"details"`
}

// NewRunOutput builds the persisted form of a run.
func NewRunOutput(r RunResult) RunOutput {
	meta := RunMeta{
		TotalCases:      r.Total,
		ExecutedCases:   len(r.Cases),
		PassedCases:     r.PassedCount(),
		NotRunCases:     r.NotRun(),
		Completed:       r.Passed(),
		Duration:        r.Duration.String(),
		DurationSeconds: r.Duration.Seconds(),
		Timestamp:       r.StartedAt.Format(time.RFC3339),
	}
	if failed := r.Failed(); failed != nil {
		meta.FailedCases = 1
		meta.FailedGroup = failed.Group
		meta.FailedTest = failed.Name
	}
	details := r.Cases
	if details == nil {
		details = []CaseResult{}
	}
	return RunOutput{Meta: meta, Details: details}
}

package domain

import "time"

// RunSummary is the outcome of one run
type RunSummary struct {
	Executed int           // Test methods that completed without error
	Errors   int           // Failed setup hooks and test methods
	Records  []ErrorRecord // One record per error, in the order they happened
	Elapsed  time.Duration // Wall time of the run
}

// Total returns executed plus errored outcomes
func (s *RunSummary) Total() int {
	return s.Executed + s.Errors
}

// Failed reports whether any error was recorded
func (s *RunSummary) Failed() bool {
	return s.Errors > 0
}

// ExitCode returns the process status for the run
func (s *RunSummary) ExitCode() int {
	if s.Failed() {
		return 1
	}
	return 0
}

// RunMeta contains metadata about a persisted run
type RunMeta struct {
	Executed        int     `json:"executed"`
	Errors          int     `json:"errors"`
	Total           int     `json:"total"`
	Selector        string  `json:"selector"`
	Duration        string  `json:"duration"`
	DurationSeconds float64 `json:"duration_seconds"`
	Timestamp       string  `json:"timestamp"`
}

// StoredError is an ErrorRecord as kept in the results file
type StoredError struct {
	ErrorRecord
	Resolved bool `json:"resolved,omitempty"` // Track if the failure is marked as resolved
}

// RunOutput is the complete persisted structure of a run
type RunOutput struct {
	Meta    RunMeta       `json:"meta"`
	Details []StoredError `json:"details"`
}

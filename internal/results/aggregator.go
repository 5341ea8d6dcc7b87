// Package results accumulates test outcomes into a run summary.
package results

import (
	"time"

	"xrun/internal/domain"
)

// Progress observes outcomes as they happen
type Progress interface {
	Success()
	Failure()
}

// Aggregator is the only writer of a run's counts and error records. It is
// not safe for concurrent use; runs are single-threaded.
type Aggregator struct {
	progress Progress
	executed int
	errors   int
	records  []domain.ErrorRecord
	summary  *domain.RunSummary
}

// NewAggregator creates an Aggregator reporting to progress, which may be nil
func NewAggregator(progress Progress) *Aggregator {
	return &Aggregator{progress: progress}
}

// Pass records a test method that completed without error
func (a *Aggregator) Pass() {
	a.executed++
	if a.progress != nil {
		a.progress.Success()
	}
}

// Fail records a failed hook or test method
func (a *Aggregator) Fail(record domain.ErrorRecord) {
	a.errors++
	a.records = append(a.records, record)
	if a.progress != nil {
		a.progress.Failure()
	}
}

// Executed returns the number of passed test methods so far
func (a *Aggregator) Executed() int { return a.executed }

// Errors returns the number of errors so far
func (a *Aggregator) Errors() int { return a.errors }

// Summary builds the RunSummary. Only the first call captures the state;
// later calls return the same summary.
func (a *Aggregator) Summary(elapsed time.Duration) *domain.RunSummary {
	if a.summary != nil {
		return a.summary
	}
	records := make([]domain.ErrorRecord, len(a.records))
	copy(records, a.records)
	a.summary = &domain.RunSummary{
		Executed: a.executed,
		Errors:   a.errors,
		Records:  records,
		Elapsed:  elapsed,
	}
	return a.summary
}

package execution

import (
	"xrun/internal/domain"
	"xrun/internal/results"
)

// Executor executes a run and returns its summary
type Executor interface {
	Run(progress results.Progress) (*domain.RunSummary, error)
}

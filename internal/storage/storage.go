package storage

import (
	"time"

	"xrun/internal/config"
	"xrun/internal/domain"
)

// Storage persists and loads the last run (e.g. for the errors viewer).
type Storage interface {
	Save(summary *domain.RunSummary, selector string) error
	Load() (*domain.RunOutput, error)
	// SaveOutput writes the full output (e.g. after resolved flags changed).
	SaveOutput(output *domain.RunOutput) error
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

// NewRunOutput converts a summary into its persisted form
func NewRunOutput(summary *domain.RunSummary, selector string, at time.Time) *domain.RunOutput {
	details := make([]domain.StoredError, 0, len(summary.Records))
	for _, r := range summary.Records {
		details = append(details, domain.StoredError{ErrorRecord: r})
	}

	return &domain.RunOutput{
		Meta: domain.RunMeta{
			Executed:        summary.Executed,
			Errors:          summary.Errors,
			Total:           summary.Total(),
			Selector:        selector,
			Duration:        summary.Elapsed.String(),
			DurationSeconds: summary.Elapsed.Seconds(),
			Timestamp:       at.Format(time.RFC3339),
		},
		Details: details,
	}
}

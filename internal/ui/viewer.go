package ui

import "xrun/internal/domain"

// Viewer displays a persisted run in an interactive TUI
type Viewer interface {
	View(results *domain.RunOutput) error
}

package ui

import "fpt/internal/domain"

// Viewer displays the last run in an interactive TUI
type Viewer interface {
	View(results *domain.RunOutput) error
}

package storage

import (
	"context"

	"fpt/internal/config"
	"fpt/internal/domain"
)

// Storage persists and loads the last run (for list markers and the failures viewer).
type Storage interface {
	Save(result domain.RunResult) error
	Load() (*domain.RunOutput, error)
}

// History keeps every recorded run
type History interface {
	Record(ctx context.Context, rec domain.RunRecord) error
	Recent(ctx context.Context, limit int) ([]domain.RunRecord, error)
	Cases(ctx context.Context, runID string) ([]domain.CaseResult, error)
}

// JSONStorage stores results in a JSON file under the configured output path.
type JSONStorage struct {
	cfg *config.Config
}

// NewJSONStorage returns a Storage that reads/writes the config's output JSON path.
func NewJSONStorage(cfg *config.Config) *JSONStorage {
	return &JSONStorage{cfg: cfg}
}

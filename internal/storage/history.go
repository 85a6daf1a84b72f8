package storage

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"fpt/internal/domain"
)

// timeLayout sorts lexically, so ORDER BY started_at is chronological
const timeLayout = "2006-01-02T15:04:05.000000Z"

// SQLHistory records runs in the tables created by the schema migrator.
// Queries use "?" placeholders, understood by both sqlite3 and mysql.
type SQLHistory struct {
	db *sql.DB
}

// NewSQLHistory creates a new SQLHistory
func NewSQLHistory(db *sql.DB) *SQLHistory {
	return &SQLHistory{db: db}
}

// Record inserts a run and its case results in one transaction.
func (h *SQLHistory) Record(ctx context.Context, rec domain.RunRecord) error {
	tx, err := h.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	_, err = tx.ExecContext(ctx,
		`INSERT INTO runs (id, started_at, duration_ms, total, passed, completed, failed_group, failed_test, message)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.StartedAt.UTC().Format(timeLayout),
		rec.Duration.Milliseconds(),
		rec.Total,
		rec.Passed,
		boolToInt(rec.Completed),
		rec.FailedGroup,
		rec.FailedTest,
		rec.Message,
	)
	if err != nil {
		return fmt.Errorf("insert run %s: %w", rec.ID, err)
	}

	stmt, err := tx.PrepareContext(ctx,
		`INSERT INTO case_results (run_id, position, group_name, test_name, status, message)
		 VALUES (?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return fmt.Errorf("prepare case insert: %w", err)
	}
	defer stmt.Close()

	for _, c := range rec.Cases {
		message := ""
		if c.Failure != nil {
			message = c.Failure.Message
		}
		if _, err := stmt.ExecContext(ctx, rec.ID, c.Position, c.Group, c.Name, string(c.Status), message); err != nil {
			return fmt.Errorf("insert case %d of run %s: %w", c.Position, rec.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit run %s: %w", rec.ID, err)
	}
	return nil
}

// Recent returns up to limit runs, newest first. Cases are not loaded.
func (h *SQLHistory) Recent(ctx context.Context, limit int) ([]domain.RunRecord, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT id, started_at, duration_ms, total, passed, completed, failed_group, failed_test, message
		 FROM runs ORDER BY started_at DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var records []domain.RunRecord
	for rows.Next() {
		var (
			rec        domain.RunRecord
			startedAt  string
			durationMS int64
			completed  int
		)
		if err := rows.Scan(&rec.ID, &startedAt, &durationMS, &rec.Total, &rec.Passed, &completed,
			&rec.FailedGroup, &rec.FailedTest, &rec.Message); err != nil {
			return nil, fmt.Errorf("scan run: %w", err)
		}
		rec.StartedAt, err = time.Parse(timeLayout, startedAt)
		if err != nil {
			return nil, fmt.Errorf("parse started_at of run %s: %w", rec.ID, err)
		}
		rec.Duration = time.Duration(durationMS) * time.Millisecond
		rec.Completed = completed != 0
		records = append(records, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return records, nil
}

// Cases returns the case results of a run in execution order. Frames are
// not stored, so only the failure message is restored.
func (h *SQLHistory) Cases(ctx context.Context, runID string) ([]domain.CaseResult, error) {
	rows, err := h.db.QueryContext(ctx,
		`SELECT position, group_name, test_name, status, message
		 FROM case_results WHERE run_id = ? ORDER BY position`, runID)
	if err != nil {
		return nil, fmt.Errorf("query cases of run %s: %w", runID, err)
	}
	defer rows.Close()

	var cases []domain.CaseResult
	for rows.Next() {
		var (
			c       domain.CaseResult
			status  string
			message string
		)
		if err := rows.Scan(&c.Position, &c.Group, &c.Name, &status, &message); err != nil {
			return nil, fmt.Errorf("scan case: %w", err)
		}
		c.Status = domain.Status(status)
		if c.Status == domain.StatusFailed {
			c.Failure = &domain.Failure{Message: message}
		}
		cases = append(cases, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate cases: %w", err)
	}
	return cases, nil
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

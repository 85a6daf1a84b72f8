package migration

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// Migrator runs database migrations
type Migrator interface {
	Run(ctx context.Context) (int, error)
}

// Migration is one versioned schema change
type Migration struct {
	Version    int
	Name       string
	Statements []string
}

// Migrations is the history schema, applied in version order
var Migrations = []Migration{
	{
		Version: 1,
		Name:    "create runs",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS runs (
				id VARCHAR(36) NOT NULL PRIMARY KEY,
				started_at VARCHAR(32) NOT NULL,
				duration_ms BIGINT NOT NULL,
				total INTEGER NOT NULL,
				passed INTEGER NOT NULL,
				completed INTEGER NOT NULL,
				failed_group VARCHAR(255) NOT NULL DEFAULT '',
				failed_test VARCHAR(255) NOT NULL DEFAULT '',
				message TEXT
			)`,
			`CREATE INDEX idx_runs_started_at ON runs (started_at)`,
		},
	},
	{
		Version: 2,
		Name:    "create case_results",
		Statements: []string{
			`CREATE TABLE IF NOT EXISTS case_results (
				run_id VARCHAR(36) NOT NULL,
				position INTEGER NOT NULL,
				group_name VARCHAR(255) NOT NULL,
				test_name VARCHAR(255) NOT NULL,
				status VARCHAR(16) NOT NULL,
				message TEXT,
				PRIMARY KEY (run_id, position)
			)`,
		},
	},
}

// SchemaMigrator applies Migrations once each, tracked in schema_migrations
type SchemaMigrator struct {
	db         *sql.DB
	migrations []Migration
	now        func() time.Time
}

// NewSchemaMigrator creates a new SchemaMigrator for the history schema
func NewSchemaMigrator(db *sql.DB) *SchemaMigrator {
	return &SchemaMigrator{db: db, migrations: Migrations, now: time.Now}
}

// Run applies pending migrations and returns how many were applied
func (m *SchemaMigrator) Run(ctx context.Context) (int, error) {
	if _, err := m.db.ExecContext(ctx, `CREATE TABLE IF NOT EXISTS schema_migrations (
		version INTEGER NOT NULL PRIMARY KEY,
		applied_at VARCHAR(32) NOT NULL
	)`); err != nil {
		return 0, fmt.Errorf("failed to create schema_migrations: %w", err)
	}

	applied, err := m.appliedVersions(ctx)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, mig := range m.migrations {
		if applied[mig.Version] {
			continue
		}
		if err := m.apply(ctx, mig); err != nil {
			return count, err
		}
		count++
	}
	return count, nil
}

func (m *SchemaMigrator) appliedVersions(ctx context.Context) (map[int]bool, error) {
	rows, err := m.db.QueryContext(ctx, `SELECT version FROM schema_migrations`)
	if err != nil {
		return nil, fmt.Errorf("failed to read schema_migrations: %w", err)
	}
	defer rows.Close()

	applied := make(map[int]bool)
	for rows.Next() {
		var v int
		if err := rows.Scan(&v); err != nil {
			return nil, fmt.Errorf("failed to scan migration version: %w", err)
		}
		applied[v] = true
	}
	return applied, rows.Err()
}

func (m *SchemaMigrator) apply(ctx context.Context, mig Migration) error {
	tx, err := m.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("migration %d (%s): %w", mig.Version, mig.Name, err)
	}
	defer tx.Rollback()

	for _, stmt := range mig.Statements {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("migration %d (%s): %w", mig.Version, mig.Name, err)
		}
	}
	if _, err := tx.ExecContext(ctx,
		`INSERT INTO schema_migrations (version, applied_at) VALUES (?, ?)`,
		mig.Version, m.now().UTC().Format(time.RFC3339)); err != nil {
		return fmt.Errorf("migration %d (%s): record version: %w", mig.Version, mig.Name, err)
	}
	return tx.Commit()
}

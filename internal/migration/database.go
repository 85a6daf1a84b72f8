package migration

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-sql-driver/mysql"
	_ "github.com/mattn/go-sqlite3"

	"fpt/internal/config"
)

// DatabaseManager opens the run history database
type DatabaseManager struct {
	config *config.Config
}

// NewDatabaseManager creates a new DatabaseManager
func NewDatabaseManager(cfg *config.Config) *DatabaseManager {
	return &DatabaseManager{config: cfg}
}

// Open connects to the configured history database and pings it
func (dm *DatabaseManager) Open(ctx context.Context) (*sql.DB, error) {
	driver := dm.config.History.Driver
	dsn, err := dm.DSN()
	if err != nil {
		return nil, err
	}

	if driver == config.DriverSQLite {
		if err := os.MkdirAll(filepath.Dir(dsn), 0755); err != nil {
			return nil, fmt.Errorf("failed to create history directory: %w", err)
		}
	}

	db, err := sql.Open(driver, dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s history database: %w", driver, err)
	}
	if driver == config.DriverSQLite {
		// a single writer avoids "database is locked" under a shared file
		db.SetMaxOpenConns(1)
	}

	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping %s history database: %w", driver, err)
	}
	return db, nil
}

// DSN returns the data source name for the configured driver
func (dm *DatabaseManager) DSN() (string, error) {
	switch dm.config.History.Driver {
	case config.DriverSQLite:
		return dm.config.GetHistoryDSN(), nil
	case config.DriverMySQL:
		if dm.config.History.DSN != "" {
			return dm.config.History.DSN, nil
		}
		return dm.MySQLConfig().FormatDSN(), nil
	case "":
		return "", fmt.Errorf("run history is disabled (set history.driver or FPT_HISTORY_DRIVER)")
	default:
		return "", fmt.Errorf("unsupported history driver %q", dm.config.History.Driver)
	}
}

// MySQLConfig builds a MySQL config from the DB_* environment variables
func (dm *DatabaseManager) MySQLConfig() *mysql.Config {
	cfg := mysql.NewConfig()
	cfg.Net = "tcp"
	cfg.Addr = getenv("DB_HOST", "127.0.0.1") + ":" + getenv("DB_PORT", "3306")
	cfg.User = getenv("DB_USERNAME", "root")
	cfg.Passwd = os.Getenv("DB_PASSWORD")
	cfg.DBName = getenv("DB_DATABASE", "fpt")
	return cfg
}

// EnsureDatabase creates the MySQL history database if it does not exist.
// It does nothing for sqlite3, whose file is created on open.
func (dm *DatabaseManager) EnsureDatabase(ctx context.Context) error {
	if dm.config.History.Driver != config.DriverMySQL || dm.config.History.DSN != "" {
		return nil
	}

	cfg := dm.MySQLConfig()
	dbName := cfg.DBName
	if !isValidDatabaseName(dbName) {
		return fmt.Errorf("invalid database name: %s", dbName)
	}

	// Connect to MySQL server (without specifying database)
	cfg.DBName = ""
	db, err := sql.Open(config.DriverMySQL, cfg.FormatDSN())
	if err != nil {
		return fmt.Errorf("failed to connect to database server: %w", err)
	}
	defer db.Close()

	exists, err := databaseExists(ctx, db, dbName)
	if err != nil {
		return fmt.Errorf("failed to check database %s: %w", dbName, err)
	}
	if exists {
		return nil
	}

	query := fmt.Sprintf("CREATE DATABASE IF NOT EXISTS `%s`", dbName)
	if _, err := db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("failed to create database %s: %w", dbName, err)
	}
	return nil
}

// databaseExists checks if a database exists
func databaseExists(ctx context.Context, db *sql.DB, dbName string) (bool, error) {
	var exists bool
	query := "SELECT EXISTS(SELECT SCHEMA_NAME FROM INFORMATION_SCHEMA.SCHEMATA WHERE SCHEMA_NAME = ?)"
	err := db.QueryRowContext(ctx, query, dbName).Scan(&exists)
	return exists, err
}

// isValidDatabaseName validates database name (basic check)
func isValidDatabaseName(name string) bool {
	if len(name) == 0 || len(name) > 64 {
		return false
	}
	invalidChars := []string{"'", "\"", "`", ";", "--", "/*", "*/", "DROP", "DELETE", "TRUNCATE"}
	upperName := strings.ToUpper(name)
	for _, char := range invalidChars {
		if strings.Contains(upperName, char) {
			return false
		}
	}
	return true
}

func getenv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

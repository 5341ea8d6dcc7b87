package storage

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/go-sql-driver/mysql"

	"xrun/internal/domain"
)

// History appends finished runs to a long-lived store
type History interface {
	Record(summary *domain.RunSummary, selector string) error
	Close() error
}

var schema = []string{
	`CREATE TABLE IF NOT EXISTS xrun_runs (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		executed INT NOT NULL,
		errors INT NOT NULL,
		selector VARCHAR(255) NOT NULL,
		duration_ms BIGINT NOT NULL,
		finished_at DATETIME NOT NULL
	)`,
	`CREATE TABLE IF NOT EXISTS xrun_errors (
		id BIGINT AUTO_INCREMENT PRIMARY KEY,
		run_id BIGINT NOT NULL,
		position INT NOT NULL,
		type_name VARCHAR(255) NOT NULL,
		method VARCHAR(255) NOT NULL,
		kind VARCHAR(255) NOT NULL,
		message TEXT NOT NULL,
		trace TEXT NOT NULL,
		INDEX (run_id)
	)`,
}

// MySQLHistory records runs in a MySQL database
type MySQLHistory struct {
	db *sql.DB
}

// historyDSN validates dsn and enables time parsing
func historyDSN(dsn string) (string, error) {
	cfg, err := mysql.ParseDSN(dsn)
	if err != nil {
		return "", fmt.Errorf("invalid history dsn: %w", err)
	}
	if cfg.DBName == "" {
		return "", fmt.Errorf("history dsn must name a database")
	}
	cfg.ParseTime = true
	return cfg.FormatDSN(), nil
}

// OpenMySQLHistory connects to the database and creates the history tables
// when missing
func OpenMySQLHistory(dsn string) (*MySQLHistory, error) {
	formatted, err := historyDSN(dsn)
	if err != nil {
		return nil, err
	}

	db, err := sql.Open("mysql", formatted)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to history database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping history database: %w", err)
	}

	for _, stmt := range schema {
		if _, err := db.Exec(stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to create history tables: %w", err)
		}
	}
	return &MySQLHistory{db: db}, nil
}

// Record stores the summary and its error records in one transaction
func (h *MySQLHistory) Record(summary *domain.RunSummary, selector string) error {
	tx, err := h.db.Begin()
	if err != nil {
		return fmt.Errorf("begin history transaction: %w", err)
	}
	defer tx.Rollback()

	res, err := tx.Exec(
		"INSERT INTO xrun_runs (executed, errors, selector, duration_ms, finished_at) VALUES (?, ?, ?, ?, ?)",
		summary.Executed, summary.Errors, selector, summary.Elapsed.Milliseconds(), time.Now().UTC(),
	)
	if err != nil {
		return fmt.Errorf("insert run: %w", err)
	}
	runID, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("read run id: %w", err)
	}

	for i, r := range summary.Records {
		if _, err := tx.Exec(
			"INSERT INTO xrun_errors (run_id, position, type_name, method, kind, message, trace) VALUES (?, ?, ?, ?, ?, ?, ?)",
			runID, i+1, r.Type, r.Method, r.Kind, r.Message, r.Trace,
		); err != nil {
			return fmt.Errorf("insert error record %d: %w", i+1, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit history: %w", err)
	}
	return nil
}

// Close closes the database handle
func (h *MySQLHistory) Close() error {
	return h.db.Close()
}

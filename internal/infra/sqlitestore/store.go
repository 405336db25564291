// Package sqlitestore provides a SQLite implementation of TaskStore.
package sqlitestore

import (
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/runoshun/taskbot/internal/domain"
)

//go:embed schema.sql
var schema string

// Setting keys.
const (
	settingSavedAt = "saved_at"
	settingCount   = "count"
)

// Ensure Store implements domain.TaskStore.
var (
	_ domain.TaskStore        = (*Store)(nil)
	_ domain.SaveTimeReporter = (*Store)(nil)
)

// Store implements domain.TaskStore using a SQLite database.
// Records are kept in a table ordered by position.
type Store struct {
	db    *sql.DB
	clock domain.Clock
}

// New opens (or creates) the database at path and initializes the schema.
func New(path string, clock domain.Clock) (*Store, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("create database directory: %w", err)
	}

	db, err := sql.Open("sqlite3", path+"?_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("initialize schema: %w", err)
	}

	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Store{db: db, clock: clock}, nil
}

// Close closes the database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Load returns the records ordered by position.
func (s *Store) Load() ([]string, error) {
	rows, err := s.db.Query("SELECT record FROM records ORDER BY position")
	if err != nil {
		return nil, fmt.Errorf("query records: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var records []string
	for rows.Next() {
		var r string
		if err := rows.Scan(&r); err != nil {
			return nil, fmt.Errorf("scan record: %w", err)
		}
		records = append(records, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate records: %w", err)
	}
	return records, nil
}

// Save replaces every record in one transaction.
func (s *Store) Save(records []string) (err error) {
	tx, err := s.db.Begin()
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	if _, err = tx.Exec("DELETE FROM records"); err != nil {
		return fmt.Errorf("clear records: %w", err)
	}

	stmt, err := tx.Prepare("INSERT INTO records (position, record) VALUES (?, ?)")
	if err != nil {
		return fmt.Errorf("prepare insert: %w", err)
	}
	defer func() { _ = stmt.Close() }()

	for i, r := range records {
		if _, err = stmt.Exec(i+1, r); err != nil {
			return fmt.Errorf("insert record %d: %w", i+1, err)
		}
	}

	if err = setSetting(tx, settingSavedAt, s.clock.Now().UTC().Format(time.RFC3339)); err != nil {
		return err
	}
	if err = setSetting(tx, settingCount, strconv.Itoa(len(records))); err != nil {
		return err
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("commit: %w", err)
	}
	return nil
}

// LastSaved returns when the records were last saved, or the zero time
// if they never were.
func (s *Store) LastSaved() (time.Time, error) {
	var value string
	err := s.db.QueryRow("SELECT value FROM settings WHERE key = ?", settingSavedAt).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return time.Time{}, nil
	}
	if err != nil {
		return time.Time{}, fmt.Errorf("get %s: %w", settingSavedAt, err)
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("parse %s: %w", settingSavedAt, err)
	}
	return t, nil
}

func setSetting(tx *sql.Tx, key, value string) error {
	_, err := tx.Exec(`
		INSERT INTO settings (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("set %s: %w", key, err)
	}
	return nil
}

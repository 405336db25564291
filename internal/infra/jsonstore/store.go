// Package jsonstore provides a JSON file-based implementation of TaskStore.
package jsonstore

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"syscall"
	"time"

	"github.com/runoshun/taskbot/internal/domain"
)

// schemaVersion is written to meta.version.
const schemaVersion = 1

// storeData represents the JSON file structure.
// Fields are ordered to minimize memory padding.
type storeData struct {
	Records []string `json:"records"`
	Meta    meta     `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	SavedAt time.Time `json:"savedAt"`
	Version int       `json:"version"`
	Count   int       `json:"count"`
}

// Ensure Store implements domain.TaskStore.
var (
	_ domain.TaskStore        = (*Store)(nil)
	_ domain.SaveTimeReporter = (*Store)(nil)
)

// Store implements domain.TaskStore using a JSON file.
type Store struct {
	clock    domain.Clock
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string, clock domain.Clock) *Store {
	if clock == nil {
		clock = domain.RealClock{}
	}
	return &Store{
		clock:    clock,
		path:     path,
		lockPath: path + ".lock",
	}
}

// Load returns the stored records.
func (s *Store) Load() ([]string, error) {
	var records []string
	err := s.withLock(syscall.LOCK_SH, func() error {
		data, err := s.read()
		if err != nil {
			return err
		}
		records = data.Records
		return nil
	})
	return records, err
}

// Save replaces the stored records.
func (s *Store) Save(records []string) error {
	return s.withLock(syscall.LOCK_EX, func() error {
		if records == nil {
			records = []string{}
		}
		return s.write(&storeData{
			Records: records,
			Meta: meta{
				SavedAt: s.clock.Now().UTC(),
				Version: schemaVersion,
				Count:   len(records),
			},
		})
	})
}

// LastSaved returns meta.savedAt, or the zero time before the first save.
func (s *Store) LastSaved() (time.Time, error) {
	var savedAt time.Time
	err := s.withLock(syscall.LOCK_SH, func() error {
		data, err := s.read()
		if err != nil {
			return err
		}
		savedAt = data.Meta.SavedAt
		return nil
	})
	return savedAt, err
}

func (s *Store) withLock(lockType int, fn func() error) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o750); err != nil {
		return fmt.Errorf("create store directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return fmt.Errorf("open lock file: %w", err)
	}
	defer func() { _ = lock.Close() }()

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		return fmt.Errorf("acquire lock: %w", err)
	}
	defer func() { _ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN) }()

	return fn()
}

func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return &storeData{}, nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}
	if data.Meta.Version > schemaVersion {
		return nil, fmt.Errorf("store file version %d is newer than supported version %d", data.Meta.Version, schemaVersion)
	}
	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Package filestore provides a plain-text implementation of TaskStore:
// one serialized record per line.
package filestore

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/runoshun/taskbot/internal/domain"
)

// Ensure Store implements domain.TaskStore.
var (
	_ domain.TaskStore        = (*Store)(nil)
	_ domain.SaveTimeReporter = (*Store)(nil)
)

// Store implements domain.TaskStore using a text file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it is created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the data file path.
func (s *Store) Path() string {
	return s.path
}

// Load returns the records in file order. Blank lines are ignored.
// Lines are not length-limited; deciding whether a line is a valid
// record is left to the caller.
func (s *Store) Load() ([]string, error) {
	var records []string
	err := s.withLock(syscall.LOCK_SH, func() error {
		content, err := os.ReadFile(s.path)
		if err != nil {
			if os.IsNotExist(err) {
				return nil
			}
			return fmt.Errorf("read task file: %w", err)
		}

		for line := range strings.Lines(string(content)) {
			line = strings.TrimRight(line, "\r\n")
			if strings.TrimSpace(line) == "" {
				continue
			}
			records = append(records, line)
		}
		return nil
	})
	return records, err
}

// Save overwrites the file with records.
func (s *Store) Save(records []string) error {
	return s.withLock(syscall.LOCK_EX, func() error {
		var b strings.Builder
		for i, r := range records {
			if strings.ContainsAny(r, "\r\n") {
				return fmt.Errorf("record %d contains a line break", i+1)
			}
			b.WriteString(r)
			b.WriteByte('\n')
		}
		return writeAtomic(s.path, []byte(b.String()), 0o600)
	})
}

// LastSaved returns the modification time of the data file.
func (s *Store) LastSaved() (time.Time, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return time.Time{}, nil
		}
		return time.Time{}, fmt.Errorf("stat task file: %w", err)
	}
	return info.ModTime(), nil
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

func writeAtomic(path string, content []byte, perm os.FileMode) error {
	tmpPath := path + ".tmp"
	if err := os.WriteFile(tmpPath, content, perm); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmpPath, path); err != nil {
		_ = os.Remove(tmpPath)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}

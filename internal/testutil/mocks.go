// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"fmt"
	"io"
	"slices"
	"time"

	"github.com/runoshun/taskbot/internal/domain"
)

// MockClock is a test double for domain.Clock.
type MockClock struct {
	NowTime time.Time
}

// Now returns the configured time.
func (m *MockClock) Now() time.Time {
	return m.NowTime
}

// MockTaskStore is a test double for domain.TaskStore.
// Fields are ordered to minimize memory padding.
type MockTaskStore struct {
	LoadErr   error
	SaveErr   error
	Records   []string
	SaveCalls int
}

// NewMockTaskStore creates a store preloaded with records.
func NewMockTaskStore(records ...string) *MockTaskStore {
	return &MockTaskStore{Records: records}
}

// Load returns a copy of the stored records.
func (m *MockTaskStore) Load() ([]string, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	return slices.Clone(m.Records), nil
}

// Save replaces the stored records.
func (m *MockTaskStore) Save(records []string) error {
	m.SaveCalls++
	if m.SaveErr != nil {
		return m.SaveErr
	}
	m.Records = slices.Clone(records)
	return nil
}

// MockLineSource is a test double for domain.LineSource.
// It returns Lines in order and then Err, or io.EOF when Err is nil.
type MockLineSource struct {
	Err   error
	Lines []string
	pos   int
}

// NewMockLineSource creates a line source over lines.
func NewMockLineSource(lines ...string) *MockLineSource {
	return &MockLineSource{Lines: lines}
}

// Next returns the next line.
func (m *MockLineSource) Next() (string, error) {
	if m.pos >= len(m.Lines) {
		if m.Err != nil {
			return "", m.Err
		}
		return "", io.EOF
	}
	line := m.Lines[m.pos]
	m.pos++
	return line, nil
}

// Remaining returns the number of lines not read yet.
func (m *MockLineSource) Remaining() int {
	return len(m.Lines) - m.pos
}

// LogEntry is one call recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// String formats the entry like the file logger does.
func (e LogEntry) String() string {
	return fmt.Sprintf("[%s] [%s] %s", e.Level, e.Category, e.Msg)
}

// MockLogger is a test double for domain.Logger that records every entry.
type MockLogger struct {
	Entries []LogEntry
}

// Debug records a debug entry.
func (m *MockLogger) Debug(category, msg string) { m.add("DEBUG", category, msg) }

// Info records an info entry.
func (m *MockLogger) Info(category, msg string) { m.add("INFO", category, msg) }

// Warn records a warning entry.
func (m *MockLogger) Warn(category, msg string) { m.add("WARN", category, msg) }

// Error records an error entry.
func (m *MockLogger) Error(category, msg string) { m.add("ERROR", category, msg) }

func (m *MockLogger) add(level, category, msg string) {
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// ByLevel returns the entries recorded at level.
func (m *MockLogger) ByLevel(level string) []LogEntry {
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config *domain.Config
	Err    error
}

// Load returns the configured config, or defaults when none is set.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr    error
	Info       domain.ConfigInfo
	InitCalled bool
	InitForce  bool
}

// ConfigInfo returns the configured info.
func (m *MockConfigManager) ConfigInfo() domain.ConfigInfo {
	return m.Info
}

// InitConfig records the call.
func (m *MockConfigManager) InitConfig(force bool) error {
	m.InitCalled = true
	m.InitForce = force
	return m.InitErr
}

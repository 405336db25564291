package domain

import "time"

// LineSource supplies command lines one at a time.
type LineSource interface {
	// Next returns the next trimmed line, or io.EOF when input is exhausted.
	Next() (string, error)
}

// TaskStore persists the serialized task list.
type TaskStore interface {
	// Load returns every stored record in list order.
	// A store that was never written returns no records and no error.
	Load() ([]string, error)

	// Save replaces the stored records with records.
	Save(records []string) error
}

// SaveTimeReporter is implemented by stores that know when they were last written.
type SaveTimeReporter interface {
	// LastSaved returns the time of the last save, or the zero time if
	// the store was never written.
	LastSaved() (time.Time, error)
}

// Logger writes diagnostic entries grouped by category.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// NopLogger discards every entry.
type NopLogger struct{}

func (NopLogger) Debug(string, string) {}
func (NopLogger) Info(string, string)  {}
func (NopLogger) Warn(string, string)  {}
func (NopLogger) Error(string, string) {}

// ConfigLoader loads configuration.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults <- global <- explicit file).
	Load() (*Config, error)
}

// ConfigManager manages configuration files.
type ConfigManager interface {
	// ConfigInfo describes the config file that would be loaded.
	ConfigInfo() ConfigInfo

	// InitConfig writes the config template. It fails with ErrConfigExists
	// unless force is set.
	InitConfig(force bool) error
}

// ConfigInfo holds information about a config file.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}

// Clock provides time operations for testability.
type Clock interface {
	// Now returns the current time.
	Now() time.Time
}

// RealClock implements Clock using the system clock.
type RealClock struct{}

// Now returns the current time.
func (RealClock) Now() time.Time {
	return time.Now()
}

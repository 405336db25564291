package domain

import (
	"bytes"
	_ "embed"
	"fmt"
	"path/filepath"
	"text/template"
)

//go:embed config_template.toml
var configTemplateContent string

// Config represents the application configuration.
// Fields are ordered to minimize memory padding.
type Config struct {
	Warnings []string      `toml:"-"`
	Store    StoreConfig   `toml:"store"`
	Log      LogConfig     `toml:"log"`
	Session  SessionConfig `toml:"session"`
}

// StoreConfig holds settings for task persistence from [store] section.
type StoreConfig struct {
	Type      string `toml:"type,omitempty"`      // Backend: "file" (default), "json", "git" or "sqlite"
	Path      string `toml:"path,omitempty"`      // Data file, database or repository path (default: under the data dir)
	Namespace string `toml:"namespace,omitempty"` // Ref namespace for the git backend (default: "taskbot")
}

// LogConfig holds logging settings from [log] section.
type LogConfig struct {
	Level string `toml:"level,omitempty"` // debug, info, warn or error
}

// SessionConfig holds interactive session settings from [session] section.
type SessionConfig struct {
	Quiet bool `toml:"quiet,omitempty"` // Skip the greeting when a session starts
}

// Store backends.
const (
	StoreFile   = "file"
	StoreJSON   = "json"
	StoreGit    = "git"
	StoreSQLite = "sqlite"
)

// AllStoreTypes returns every supported store backend.
func AllStoreTypes() []string {
	return []string{StoreFile, StoreJSON, StoreGit, StoreSQLite}
}

// IsValidStoreType returns true if s names a supported backend.
func IsValidStoreType(s string) bool {
	switch s {
	case StoreFile, StoreJSON, StoreGit, StoreSQLite:
		return true
	default:
		return false
	}
}

// Default configuration values.
const (
	DefaultLogLevel       = "info"
	DefaultStoreType      = StoreFile
	DefaultStoreNamespace = AppName
)

// NewDefaultConfig returns a Config with default values.
// Store.Path is left empty; it is resolved against the data dir by the caller.
func NewDefaultConfig() *Config {
	return &Config{
		Store: StoreConfig{
			Type:      DefaultStoreType,
			Namespace: DefaultStoreNamespace,
		},
		Log: LogConfig{
			Level: DefaultLogLevel,
		},
	}
}

// StorePath returns the configured store path, or the default one for the
// configured backend under dataDir.
func (c *Config) StorePath(dataDir string) string {
	if c.Store.Path != "" {
		return c.Store.Path
	}
	return DefaultStorePath(dataDir, c.Store.Type)
}

// DefaultStorePath returns where a backend keeps its data under dataDir.
func DefaultStorePath(dataDir, storeType string) string {
	switch storeType {
	case StoreJSON:
		return filepath.Join(dataDir, "tasks.json")
	case StoreGit:
		return filepath.Join(dataDir, "tasks.git")
	case StoreSQLite:
		return filepath.Join(dataDir, "tasks.db")
	default:
		return filepath.Join(dataDir, "tasks.txt")
	}
}

// templateData holds all data for rendering the config template.
type templateData struct {
	StoreType  string
	StoreTypes []string
	Namespace  string
	LogLevel   string
}

// RenderConfigTemplate renders the commented config file written by
// "taskbot config init".
func RenderConfigTemplate(cfg *Config) string {
	data := templateData{
		StoreType:  cfg.Store.Type,
		StoreTypes: AllStoreTypes(),
		Namespace:  cfg.Store.Namespace,
		LogLevel:   cfg.Log.Level,
	}

	tmpl, err := template.New("config").Delims("<<", ">>").Parse(configTemplateContent)
	if err != nil {
		// Should never happen with embedded template
		panic(fmt.Sprintf("failed to parse config template: %v", err))
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		panic(fmt.Sprintf("failed to execute config template: %v", err))
	}
	return buf.String()
}

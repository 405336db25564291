package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/runoshun/taskbot/internal/domain"
)

// Ensure Manager implements domain.ConfigManager.
var _ domain.ConfigManager = (*Manager)(nil)

// Manager manages the config file: the explicit one when given,
// the global one otherwise.
type Manager struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/taskbot)
	explicitPath  string // Path given with --config
}

// NewManager creates a new Manager.
func NewManager(explicitPath string) *Manager {
	return NewManagerWithGlobalDir(DefaultGlobalConfigDir(), explicitPath)
}

// NewManagerWithGlobalDir creates a new Manager with a custom global config directory.
// This is useful for testing.
func NewManagerWithGlobalDir(globalConfDir, explicitPath string) *Manager {
	return &Manager{
		globalConfDir: globalConfDir,
		explicitPath:  explicitPath,
	}
}

// path returns the managed config file path, or "" if none is available.
func (m *Manager) path() string {
	if m.explicitPath != "" {
		return m.explicitPath
	}
	if m.globalConfDir == "" {
		return ""
	}
	return filepath.Join(m.globalConfDir, domain.ConfigFileName)
}

// ConfigInfo returns information about the managed config file.
func (m *Manager) ConfigInfo() domain.ConfigInfo {
	path := m.path()
	if path == "" {
		return domain.ConfigInfo{}
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return domain.ConfigInfo{
			Path:   path,
			Exists: false,
		}
	}
	return domain.ConfigInfo{
		Path:    path,
		Content: string(content),
		Exists:  true,
	}
}

// InitConfig writes the default template to the managed config file.
func (m *Manager) InitConfig(force bool) error {
	path := m.path()
	if path == "" {
		return errors.New("config directory not available")
	}

	if _, err := os.Stat(path); err == nil && !force {
		return domain.ErrConfigExists
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	content := domain.RenderConfigTemplate(domain.NewDefaultConfig())
	return os.WriteFile(path, []byte(content), 0o600)
}

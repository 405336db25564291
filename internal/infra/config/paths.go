package config

import (
	"os"
	"path/filepath"

	"github.com/runoshun/taskbot/internal/domain"
)

// DefaultGlobalConfigDir returns $XDG_CONFIG_HOME/taskbot, falling back to
// ~/.config/taskbot. It returns "" when no home directory is available.
func DefaultGlobalConfigDir() string {
	configHome := os.Getenv("XDG_CONFIG_HOME")
	if configHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return ""
		}
		configHome = filepath.Join(home, ".config")
	}
	return domain.GlobalConfigDir(configHome)
}

// DefaultDataDir returns $XDG_DATA_HOME/taskbot, falling back to
// ~/.local/share/taskbot.
func DefaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return domain.DataDir(dataHome), nil
}

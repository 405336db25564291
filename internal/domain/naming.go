package domain

import "path/filepath"

// Directory and file names for taskbot.
const (
	AppName        = "taskbot"     // Directory name under config and data homes
	ConfigFileName = "config.toml" // Config file name
	LogFileName    = "taskbot.log" // Log file name
)

// GlobalConfigDir returns the taskbot config directory.
// configHome is typically XDG_CONFIG_HOME or ~/.config (resolved by caller).
func GlobalConfigDir(configHome string) string {
	return filepath.Join(configHome, AppName)
}

// GlobalConfigPath returns the global config path.
func GlobalConfigPath(configHome string) string {
	return filepath.Join(GlobalConfigDir(configHome), ConfigFileName)
}

// DataDir returns the taskbot data directory.
// dataHome is typically XDG_DATA_HOME or ~/.local/share (resolved by caller).
func DataDir(dataHome string) string {
	return filepath.Join(dataHome, AppName)
}

// LogPath returns the path to the log file.
func LogPath(dataDir string) string {
	return filepath.Join(dataDir, "logs", LogFileName)
}

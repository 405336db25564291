// Package config provides configuration loading functionality.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/pelletier/go-toml/v2"

	"github.com/runoshun/taskbot/internal/domain"
)

// Ensure Loader implements domain.ConfigLoader.
var _ domain.ConfigLoader = (*Loader)(nil)

// Loader loads configuration from TOML files.
type Loader struct {
	globalConfDir string // Path to global config directory (e.g., ~/.config/taskbot)
	explicitPath  string // Path given with --config; must exist when set
}

// NewLoader creates a new Loader reading the default global config and,
// if explicitPath is not empty, that file on top of it.
func NewLoader(explicitPath string) *Loader {
	return NewLoaderWithGlobalDir(DefaultGlobalConfigDir(), explicitPath)
}

// NewLoaderWithGlobalDir creates a new Loader with a custom global config directory.
// This is useful for testing.
func NewLoaderWithGlobalDir(globalConfDir, explicitPath string) *Loader {
	return &Loader{
		globalConfDir: globalConfDir,
		explicitPath:  explicitPath,
	}
}

// Load returns the merged configuration.
// Merge order: default <- global <- explicit (later takes precedence).
func (l *Loader) Load() (*domain.Config, error) {
	base := domain.NewDefaultConfig()

	global, err := l.LoadGlobal()
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, err
	}
	if global != nil {
		base = mergeConfigs(base, global)
	}

	if l.explicitPath != "" {
		explicit, err := l.loadFile(l.explicitPath)
		if err != nil {
			return nil, err
		}
		base = mergeConfigs(base, explicit)
	}

	return base, nil
}

// LoadGlobal returns only the global configuration.
func (l *Loader) LoadGlobal() (*domain.Config, error) {
	if l.globalConfDir == "" {
		return nil, os.ErrNotExist
	}
	return l.loadFile(filepath.Join(l.globalConfDir, domain.ConfigFileName))
}

// loadFile loads a configuration from a file.
func (l *Loader) loadFile(path string) (*domain.Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}

	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}

	return convertRawToDomainConfig(raw), nil
}

// convertRawToDomainConfig converts the raw map to domain config and collects warnings.
func convertRawToDomainConfig(raw map[string]any) *domain.Config {
	res := &domain.Config{}
	var warnings []string

	for section, value := range raw {
		m, ok := value.(map[string]any)
		if !ok {
			warnings = append(warnings, fmt.Sprintf("unknown key: %s", section))
			continue
		}

		switch section {
		case "store":
			for k, v := range m {
				switch k {
				case "type":
					res.Store.Type, warnings = stringValue(section, k, v, warnings)
					if res.Store.Type != "" && !domain.IsValidStoreType(res.Store.Type) {
						warnings = append(warnings, fmt.Sprintf("unknown store type in [store]: %s", res.Store.Type))
					}
				case "path":
					res.Store.Path, warnings = stringValue(section, k, v, warnings)
				case "namespace":
					res.Store.Namespace, warnings = stringValue(section, k, v, warnings)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [store]: %s", k))
				}
			}
		case "log":
			for k, v := range m {
				switch k {
				case "level":
					res.Log.Level, warnings = stringValue(section, k, v, warnings)
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [log]: %s", k))
				}
			}
		case "session":
			for k, v := range m {
				switch k {
				case "quiet":
					if b, ok := v.(bool); ok {
						res.Session.Quiet = b
					} else {
						warnings = append(warnings, "invalid value in [session]: quiet must be a boolean")
					}
				default:
					warnings = append(warnings, fmt.Sprintf("unknown key in [session]: %s", k))
				}
			}
		default:
			warnings = append(warnings, fmt.Sprintf("unknown section: %s", section))
		}
	}

	sort.Strings(warnings)
	res.Warnings = warnings
	return res
}

func stringValue(section, key string, v any, warnings []string) (string, []string) {
	s, ok := v.(string)
	if !ok {
		return "", append(warnings, fmt.Sprintf("invalid value in [%s]: %s must be a string", section, key))
	}
	return s, warnings
}

// mergeConfigs merges two configs, with override taking precedence.
func mergeConfigs(base, override *domain.Config) *domain.Config {
	result := &domain.Config{
		Store:    base.Store,
		Log:      base.Log,
		Session:  base.Session,
		Warnings: append([]string{}, base.Warnings...),
	}
	result.Warnings = append(result.Warnings, override.Warnings...)

	if override.Store.Type != "" {
		result.Store.Type = override.Store.Type
	}
	if override.Store.Path != "" {
		result.Store.Path = override.Store.Path
	}
	if override.Store.Namespace != "" {
		result.Store.Namespace = override.Store.Namespace
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Session.Quiet {
		result.Session.Quiet = override.Session.Quiet
	}

	return result
}

// Encode renders cfg as TOML.
func Encode(cfg *domain.Config) (string, error) {
	data, err := toml.Marshal(cfg)
	if err != nil {
		return "", fmt.Errorf("encode config: %w", err)
	}
	return string(data), nil
}

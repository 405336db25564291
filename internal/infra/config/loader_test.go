package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskbot/internal/domain"
)

func writeConfig(t *testing.T, dir, content string) string {
	t.Helper()
	path := filepath.Join(dir, domain.ConfigFileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_Load_Defaults(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), "")

	cfg, err := loader.Load()

	require.NoError(t, err)
	assert.Equal(t, domain.NewDefaultConfig(), cfg)
}

func TestLoader_Load_GlobalConfigOnly(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[store]
type = "sqlite"
path = "/tmp/tasks.db"

[log]
level = "debug"

[session]
quiet = true
`)

	cfg, err := NewLoaderWithGlobalDir(globalDir, "").Load()

	require.NoError(t, err)
	assert.Equal(t, domain.StoreSQLite, cfg.Store.Type)
	assert.Equal(t, "/tmp/tasks.db", cfg.Store.Path)
	assert.Equal(t, domain.DefaultStoreNamespace, cfg.Store.Namespace)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.True(t, cfg.Session.Quiet)
	assert.Empty(t, cfg.Warnings)
}

func TestLoader_Load_ExplicitOverridesGlobal(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
[store]
type = "git"
namespace = "home"

[log]
level = "warn"
`)
	explicit := writeConfig(t, t.TempDir(), `
[store]
type = "json"
`)

	cfg, err := NewLoaderWithGlobalDir(globalDir, explicit).Load()

	require.NoError(t, err)
	assert.Equal(t, domain.StoreJSON, cfg.Store.Type)
	assert.Equal(t, "home", cfg.Store.Namespace, "unset keys keep the global value")
	assert.Equal(t, "warn", cfg.Log.Level)
}

func TestLoader_Load_ExplicitMissing(t *testing.T) {
	loader := NewLoaderWithGlobalDir(t.TempDir(), filepath.Join(t.TempDir(), "nope.toml"))

	_, err := loader.Load()

	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoader_Load_InvalidTOML(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, "[store\ntype = ")

	_, err := NewLoaderWithGlobalDir(globalDir, "").Load()

	require.Error(t, err)
	assert.Contains(t, err.Error(), "parse config")
}

func TestLoader_Load_Warnings(t *testing.T) {
	globalDir := t.TempDir()
	writeConfig(t, globalDir, `
top = 1

[store]
type = "cloud"
colour = "red"

[log]
level = 3

[session]
quiet = "yes"
greeting = true

[extra]
x = 1
`)

	cfg, err := NewLoaderWithGlobalDir(globalDir, "").Load()

	require.NoError(t, err)
	assert.Equal(t, []string{
		"invalid value in [log]: level must be a string",
		"invalid value in [session]: quiet must be a boolean",
		"unknown key in [session]: greeting",
		"unknown key in [store]: colour",
		"unknown key: top",
		"unknown section: extra",
		"unknown store type in [store]: cloud",
	}, cfg.Warnings)
	assert.Equal(t, domain.DefaultLogLevel, cfg.Log.Level)
}

func TestMergeConfigs(t *testing.T) {
	base := domain.NewDefaultConfig()
	base.Warnings = []string{"a"}
	override := &domain.Config{
		Store:    domain.StoreConfig{Path: "/x"},
		Warnings: []string{"b"},
	}

	got := mergeConfigs(base, override)

	assert.Equal(t, domain.DefaultStoreType, got.Store.Type)
	assert.Equal(t, "/x", got.Store.Path)
	assert.Equal(t, []string{"a", "b"}, got.Warnings)
	assert.Equal(t, []string{"a"}, base.Warnings, "base is not modified")
}

func TestEncode(t *testing.T) {
	cfg := domain.NewDefaultConfig()
	cfg.Warnings = []string{"should not appear"}
	cfg.Session.Quiet = true

	out, err := Encode(cfg)
	require.NoError(t, err)
	assert.NotContains(t, out, "should not appear")

	var decoded domain.Config
	require.NoError(t, toml.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, domain.StoreFile, decoded.Store.Type)
	assert.Equal(t, domain.DefaultLogLevel, decoded.Log.Level)
	assert.True(t, decoded.Session.Quiet)
}

func TestDefaultDirs_XDG(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", "/xdg/config")
	t.Setenv("XDG_DATA_HOME", "/xdg/data")

	assert.Equal(t, filepath.Join("/xdg/config", domain.AppName), DefaultGlobalConfigDir())

	dataDir, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join("/xdg/data", domain.AppName), dataDir)
}

func TestDefaultDirs_HomeFallback(t *testing.T) {
	home := t.TempDir()
	t.Setenv("HOME", home)
	t.Setenv("XDG_CONFIG_HOME", "")
	t.Setenv("XDG_DATA_HOME", "")

	assert.Equal(t, filepath.Join(home, ".config", domain.AppName), DefaultGlobalConfigDir())

	dataDir, err := DefaultDataDir()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(home, ".local", "share", domain.AppName), dataDir)
}

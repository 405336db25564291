package domain

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/pelletier/go-toml/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	cfg := NewDefaultConfig()

	assert.Equal(t, StoreFile, cfg.Store.Type)
	assert.Equal(t, AppName, cfg.Store.Namespace)
	assert.Empty(t, cfg.Store.Path)
	assert.Equal(t, DefaultLogLevel, cfg.Log.Level)
	assert.False(t, cfg.Session.Quiet)
}

func TestConfig_StorePath(t *testing.T) {
	dataDir := "/data/taskbot"

	tests := []struct {
		storeType string
		want      string
	}{
		{StoreFile, filepath.Join(dataDir, "tasks.txt")},
		{StoreJSON, filepath.Join(dataDir, "tasks.json")},
		{StoreGit, filepath.Join(dataDir, "tasks.git")},
		{StoreSQLite, filepath.Join(dataDir, "tasks.db")},
	}

	for _, tt := range tests {
		t.Run(tt.storeType, func(t *testing.T) {
			cfg := NewDefaultConfig()
			cfg.Store.Type = tt.storeType
			assert.Equal(t, tt.want, cfg.StorePath(dataDir))
		})
	}

	cfg := NewDefaultConfig()
	cfg.Store.Path = "/elsewhere/list.txt"
	assert.Equal(t, "/elsewhere/list.txt", cfg.StorePath(dataDir))
}

func TestIsValidStoreType(t *testing.T) {
	for _, s := range AllStoreTypes() {
		assert.True(t, IsValidStoreType(s))
	}
	assert.False(t, IsValidStoreType("postgres"))
}

func TestRenderConfigTemplate_IsValidTOML(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Store.Type = StoreGit
	cfg.Log.Level = "debug"

	content := RenderConfigTemplate(cfg)

	assert.True(t, strings.HasPrefix(content, "# taskbot configuration"))
	assert.Contains(t, content, "file, json, git, sqlite")

	var parsed Config
	require.NoError(t, toml.Unmarshal([]byte(content), &parsed))
	assert.Equal(t, StoreGit, parsed.Store.Type)
	assert.Equal(t, AppName, parsed.Store.Namespace)
	assert.Equal(t, "debug", parsed.Log.Level)
}

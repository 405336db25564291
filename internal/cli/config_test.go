package cli

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskbot/internal/domain"
	"github.com/runoshun/taskbot/internal/infra/filestore"
	"github.com/runoshun/taskbot/internal/testutil"
)

func TestConfig_Show(t *testing.T) {
	d, _ := newTestDeps(t)

	out, _, err := execute(t, d, "", "config")

	require.NoError(t, err)
	assert.Contains(t, out, "[Loaded from]")
	assert.Contains(t, out, "config.toml (not found)")
	assert.Contains(t, out, "- data: "+d.c.Config.DataDir)
	assert.Contains(t, out, "[Effective Config]")
	assert.Contains(t, out, "[store]")
	assert.Contains(t, out, domain.StoreFile)
	assert.Contains(t, out, "[Store]")
	assert.Contains(t, out, "- path: "+d.c.Config.StorePath)
	assert.Contains(t, out, "- last saved: never")
}

func TestConfig_ShowLastSaved(t *testing.T) {
	d, _ := newTestDeps(t)
	store := filestore.New(d.c.Config.StorePath)
	require.NoError(t, store.Save([]string{"T|0|work"}))
	stamp := time.Date(2026, 1, 18, 10, 0, 0, 0, time.Local)
	require.NoError(t, os.Chtimes(d.c.Config.StorePath, stamp, stamp))
	d.c.Store = store

	out, _, err := execute(t, d, "", "config")

	require.NoError(t, err)
	assert.Contains(t, out, "- last saved: 2026-01-18 10:00:00")
}

func TestConfig_InitUsesManager(t *testing.T) {
	d, _ := newTestDeps(t)
	manager := &testutil.MockConfigManager{Info: domain.ConfigInfo{Path: "/tmp/taskbot/config.toml"}}
	d.c.ConfigManager = manager

	out, _, err := execute(t, d, "", "config", "init", "--force")

	require.NoError(t, err)
	assert.True(t, manager.InitCalled)
	assert.True(t, manager.InitForce)
	assert.Contains(t, out, "Created config file: /tmp/taskbot/config.toml")
}

func TestConfig_InitExists(t *testing.T) {
	d, _ := newTestDeps(t)
	d.c.ConfigManager = &testutil.MockConfigManager{InitErr: domain.ErrConfigExists}

	_, _, err := execute(t, d, "", "config", "init")

	require.ErrorIs(t, err, domain.ErrConfigExists)
	assert.Contains(t, err.Error(), "--force")
}

// config init works without a container, so a broken config can be replaced.
func TestConfig_InitWithoutContainer(t *testing.T) {
	path := filepath.Join(t.TempDir(), "taskbot.toml")
	d := &deps{}

	_, _, err := execute(t, d, "", "--config", path, "config", "init")

	require.NoError(t, err)
	assert.Nil(t, d.c)
	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(content), "[store]")
}

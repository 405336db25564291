package sqlitestore

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskbot/internal/testutil"
)

var testNow = time.Date(2026, 1, 18, 10, 0, 0, 0, time.UTC)

func newTestStore(t *testing.T) (*Store, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "data", "tasks.db")
	store, err := New(path, &testutil.MockClock{NowTime: testNow})
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })
	return store, path
}

func TestStore_Load_Empty(t *testing.T) {
	store, _ := newTestStore(t)

	records, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, records)

	savedAt, err := store.LastSaved()
	require.NoError(t, err)
	assert.True(t, savedAt.IsZero())
}

func TestStore_SaveLoad(t *testing.T) {
	store, _ := newTestStore(t)
	records := []string{"T|0|work", "D|1|sleep|2020-05-05T20:00", "T|0|it's quoted"}

	require.NoError(t, store.Save(records))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, records, got)

	savedAt, err := store.LastSaved()
	require.NoError(t, err)
	assert.True(t, testNow.Equal(savedAt))
}

func TestStore_Save_Overwrites(t *testing.T) {
	store, _ := newTestStore(t)

	require.NoError(t, store.Save([]string{"T|0|a", "T|0|b", "T|0|c"}))
	require.NoError(t, store.Save([]string{"T|0|c"}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"T|0|c"}, got)

	require.NoError(t, store.Save(nil))
	got, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_Reopen(t *testing.T) {
	store, path := newTestStore(t)
	require.NoError(t, store.Save([]string{"T|0|work"}))
	require.NoError(t, store.Close())

	reopened, err := New(path, nil)
	require.NoError(t, err)
	defer func() { _ = reopened.Close() }()

	got, err := reopened.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"T|0|work"}, got)
}

package filestore

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskbot/internal/domain"
)

func TestStore_Load_MissingFile(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "nested", "tasks.txt"))

	records, err := store.Load()

	require.NoError(t, err)
	assert.Empty(t, records)
}

func TestStore_SaveLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	store := New(path)
	records := []string{
		"T|0|work",
		"D|1|sleep|2020-05-05T20:00",
		"E|0|a | b|2020-05-05T18:00|2020-05-05T22:00",
	}

	require.NoError(t, store.Save(records))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "T|0|work\nD|1|sleep|2020-05-05T20:00\nE|0|a | b|2020-05-05T18:00|2020-05-05T22:00\n", string(content))

	got, err := New(path).Load()
	require.NoError(t, err)
	assert.Equal(t, records, got)

	_, err = os.Stat(path + ".tmp")
	assert.True(t, os.IsNotExist(err), "temp file must not remain")
}

func TestStore_Save_Overwrites(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "tasks.txt"))

	require.NoError(t, store.Save([]string{"T|0|a", "T|0|b"}))
	require.NoError(t, store.Save([]string{"T|1|b"}))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Equal(t, []string{"T|1|b"}, got)

	require.NoError(t, store.Save(nil))
	got, err = store.Load()
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestStore_Load_SkipsBlankLinesAndCRLF(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	require.NoError(t, os.WriteFile(path, []byte("T|0|a\r\n\n   \nnot a record\n"), 0o600))

	got, err := New(path).Load()

	require.NoError(t, err)
	assert.Equal(t, []string{"T|0|a", "not a record"}, got, "corrupt lines are returned for the caller to skip")
}

func TestStore_Save_RejectsLineBreaks(t *testing.T) {
	store := New(filepath.Join(t.TempDir(), "tasks.txt"))

	err := store.Save([]string{"T|0|one", "T|0|two\rlines"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "record 2 contains a line break")
	assert.NotErrorIs(t, err, domain.ErrCorruptRecord, "a save fault is not a load-time corrupt record")
	assert.False(t, domain.IsUserError(err))

	got, err := store.Load()
	require.NoError(t, err)
	assert.Empty(t, got, "nothing is written")
}

func TestStore_Load_LongLine(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	long := "T|0|" + strings.Repeat("x", 2<<20)
	content := "T|0|first\n" + long + "\nT|0|last\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	got, err := New(path).Load()

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, "T|0|first", got[0])
	assert.Equal(t, long, got[1])
	assert.Equal(t, "T|0|last", got[2])
}

func TestStore_LastSaved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "tasks.txt")
	store := New(path)

	savedAt, err := store.LastSaved()
	require.NoError(t, err)
	assert.True(t, savedAt.IsZero())

	require.NoError(t, store.Save([]string{"T|0|work"}))
	stamp := time.Date(2020, 5, 5, 20, 0, 0, 0, time.UTC)
	require.NoError(t, os.Chtimes(path, stamp, stamp))

	savedAt, err = store.LastSaved()
	require.NoError(t, err)
	assert.True(t, stamp.Equal(savedAt))
}

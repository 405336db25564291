package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/runoshun/taskbot/internal/domain"
	"github.com/runoshun/taskbot/internal/testutil"
	"github.com/runoshun/taskbot/internal/usecase"
)

func TestLoadTasks_Execute(t *testing.T) {
	store := testutil.NewMockTaskStore(sampleRecords()...)
	logger := &testutil.MockLogger{}

	out, err := usecase.NewLoadTasks(store, logger).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 3, out.List.Len())
	assert.Empty(t, out.Skipped)
	assert.Empty(t, logger.ByLevel("WARN"))
}

func TestLoadTasks_Execute_EmptyStore(t *testing.T) {
	out, err := usecase.NewLoadTasks(testutil.NewMockTaskStore(), domain.NopLogger{}).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, out.List.Len())
}

func TestLoadTasks_Execute_SkipsCorrupt(t *testing.T) {
	store := testutil.NewMockTaskStore("T|0|work", "nonsense", "T|1|read")
	logger := &testutil.MockLogger{}

	out, err := usecase.NewLoadTasks(store, logger).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, out.List.Len())
	require.Len(t, out.Skipped, 1)
	assert.ErrorIs(t, out.Skipped[0], domain.ErrCorruptRecord)

	warns := logger.ByLevel("WARN")
	require.Len(t, warns, 1)
	assert.Contains(t, warns[0].Msg, "record 2")
}

func TestLoadTasks_Execute_StoreError(t *testing.T) {
	store := testutil.NewMockTaskStore()
	store.LoadErr = assert.AnError

	_, err := usecase.NewLoadTasks(store, domain.NopLogger{}).Execute(context.Background())

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "load tasks")
}

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

func TestAddTask_Execute(t *testing.T) {
	list := domain.NewTaskList()
	store := testutil.NewMockTaskStore()
	logger := &testutil.MockLogger{}
	task, err := domain.NewTodo("work")
	require.NoError(t, err)

	out, err := usecase.NewAddTask(list, store, logger).Execute(context.Background(), usecase.AddTaskInput{Task: task})

	require.NoError(t, err)
	assert.Equal(t, 1, out.Total)
	assert.Contains(t, out.Message, "[T][ ] work")
	assert.Equal(t, []string{"T|0|work"}, store.Records)
	assert.Equal(t, 1, store.SaveCalls)
	assert.Len(t, logger.ByLevel("INFO"), 1)
}

func TestAddTask_Execute_SaveError(t *testing.T) {
	list := domain.NewTaskList()
	store := testutil.NewMockTaskStore()
	store.SaveErr = assert.AnError
	logger := &testutil.MockLogger{}
	task, err := domain.NewTodo("work")
	require.NoError(t, err)

	_, err = usecase.NewAddTask(list, store, logger).Execute(context.Background(), usecase.AddTaskInput{Task: task})

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "save tasks")
	assert.Len(t, logger.ByLevel("ERROR"), 1)
}

func TestMarkTask_Execute(t *testing.T) {
	list := loadList(t, sampleRecords()...)
	store := testutil.NewMockTaskStore(sampleRecords()...)
	uc := usecase.NewMarkTask(list, store, domain.NopLogger{})

	out, err := uc.Execute(context.Background(), usecase.MarkTaskInput{Index: 1, Done: true})
	require.NoError(t, err)
	assert.True(t, out.Task.Done)
	assert.Contains(t, out.Message, "[T][X] work")
	assert.Equal(t, "T|1|work", store.Records[0])

	out, err = uc.Execute(context.Background(), usecase.MarkTaskInput{Index: 1, Done: false})
	require.NoError(t, err)
	assert.False(t, out.Task.Done)
	assert.Equal(t, "T|0|work", store.Records[0])
}

func TestMarkTask_Execute_OutOfRange(t *testing.T) {
	list := loadList(t, sampleRecords()...)
	store := testutil.NewMockTaskStore()
	uc := usecase.NewMarkTask(list, store, domain.NopLogger{})

	_, err := uc.Execute(context.Background(), usecase.MarkTaskInput{Index: 4, Done: true})

	assert.ErrorIs(t, err, domain.ErrIndexOutOfRange)
	assert.Equal(t, 0, store.SaveCalls, "nothing to save after a failed mark")
}

func TestDeleteTask_Execute(t *testing.T) {
	list := loadList(t, sampleRecords()...)
	store := testutil.NewMockTaskStore(sampleRecords()...)

	out, err := usecase.NewDeleteTask(list, store, domain.NopLogger{}).Execute(context.Background(), usecase.DeleteTaskInput{Index: 1})

	require.NoError(t, err)
	assert.Equal(t, "work", out.Removed.Name)
	assert.Equal(t, 2, out.Total)
	assert.Equal(t, sampleRecords()[1:], store.Records)
}

func TestDeleteTask_Execute_OutOfRange(t *testing.T) {
	for _, index := range []int{0, -3, 4} {
		list := loadList(t, sampleRecords()...)
		store := testutil.NewMockTaskStore(sampleRecords()...)

		_, err := usecase.NewDeleteTask(list, store, domain.NopLogger{}).Execute(context.Background(), usecase.DeleteTaskInput{Index: index})

		assert.ErrorIs(t, err, domain.ErrInvalidTask, "index %d", index)
		assert.Equal(t, 3, list.Len())
		assert.Equal(t, 0, store.SaveCalls)
	}
}

func TestClearTasks_Execute(t *testing.T) {
	list := loadList(t, sampleRecords()...)
	store := testutil.NewMockTaskStore(sampleRecords()...)
	uc := usecase.NewClearTasks(list, store, domain.NopLogger{})

	out, err := uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 3, out.Removed)
	assert.Empty(t, store.Records)

	out, err = uc.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, out.Removed)
	assert.Equal(t, 2, store.SaveCalls)
}

func TestListTasks_Execute(t *testing.T) {
	list := loadList(t, sampleRecords()[:2]...)

	out, err := usecase.NewListTasks(list).Execute(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "1.[T][ ] work\n2.[D][ ] sleep (by: MAY 5 2020 2000)\nI have 2 tasks in my memory", out.Message)
	assert.Len(t, out.Tasks, 2)
}

func TestFindTasks_Execute(t *testing.T) {
	list := loadList(t, sampleRecords()...)
	uc := usecase.NewFindTasks(list)

	out, err := uc.Execute(context.Background(), usecase.FindTasksInput{Query: "work"})
	require.NoError(t, err)

	var got []string
	for task := range out.Matches {
		got = append(got, task.Name)
	}
	assert.Equal(t, []string{"work", "assist with work"}, got)
	assert.Contains(t, out.Message, domain.FindHeader)

	out, err = uc.Execute(context.Background(), usecase.FindTasksInput{Query: "gym"})
	require.NoError(t, err)
	assert.Contains(t, out.Message, `Nothing in my memory matches "gym"`)
}

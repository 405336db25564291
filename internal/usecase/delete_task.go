package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskbot/internal/domain"
)

// DeleteTaskInput contains the parameters for deleting a task.
type DeleteTaskInput struct {
	Index int // 1-based task number
}

// DeleteTaskOutput contains the result of deleting a task.
type DeleteTaskOutput struct {
	Message string      // Confirmation message
	Removed domain.Task // The task that was removed
	Total   int         // Number of tasks left
}

// DeleteTask is the use case for removing a task.
// Tasks after the removed one move up by one position.
type DeleteTask struct {
	list   *domain.TaskList
	store  domain.TaskStore
	logger domain.Logger
}

// NewDeleteTask creates a new DeleteTask use case.
func NewDeleteTask(list *domain.TaskList, store domain.TaskStore, logger domain.Logger) *DeleteTask {
	return &DeleteTask{
		list:   list,
		store:  store,
		logger: logger,
	}
}

// Execute removes the task at in.Index and saves the list.
func (uc *DeleteTask) Execute(_ context.Context, in DeleteTaskInput) (*DeleteTaskOutput, error) {
	removed, err := uc.list.Get(in.Index)
	if err != nil {
		return nil, err
	}
	msg, err := uc.list.Delete(in.Index)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("task", fmt.Sprintf("deleted task %d: %s", in.Index, removed))

	if err := saveList(uc.store, uc.list, uc.logger); err != nil {
		return nil, err
	}

	return &DeleteTaskOutput{Message: msg, Removed: removed, Total: uc.list.Len()}, nil
}

// ClearTasksOutput contains the result of clearing the list.
type ClearTasksOutput struct {
	Message string // Confirmation message
	Removed int    // Number of tasks removed
}

// ClearTasks is the use case for removing every task.
type ClearTasks struct {
	list   *domain.TaskList
	store  domain.TaskStore
	logger domain.Logger
}

// NewClearTasks creates a new ClearTasks use case.
func NewClearTasks(list *domain.TaskList, store domain.TaskStore, logger domain.Logger) *ClearTasks {
	return &ClearTasks{
		list:   list,
		store:  store,
		logger: logger,
	}
}

// Execute empties the list and saves it. It succeeds on an empty list.
func (uc *ClearTasks) Execute(_ context.Context) (*ClearTasksOutput, error) {
	removed := uc.list.Len()
	msg := uc.list.DeleteAll()
	uc.logger.Info("task", fmt.Sprintf("deleted all %d tasks", removed))

	if err := saveList(uc.store, uc.list, uc.logger); err != nil {
		return nil, err
	}

	return &ClearTasksOutput{Message: msg, Removed: removed}, nil
}

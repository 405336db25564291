package usecase

import (
	"context"

	"github.com/runoshun/taskbot/internal/domain"
)

// AddTaskInput contains the parameters for adding a task.
type AddTaskInput struct {
	Task domain.Task // Task built by the parser
}

// AddTaskOutput contains the result of adding a task.
type AddTaskOutput struct {
	Message string // Confirmation message
	Total   int    // Number of tasks after the add
}

// AddTask is the use case for appending a task to the list.
type AddTask struct {
	list   *domain.TaskList
	store  domain.TaskStore
	logger domain.Logger
}

// NewAddTask creates a new AddTask use case.
func NewAddTask(list *domain.TaskList, store domain.TaskStore, logger domain.Logger) *AddTask {
	return &AddTask{
		list:   list,
		store:  store,
		logger: logger,
	}
}

// Execute appends the task and saves the list.
func (uc *AddTask) Execute(_ context.Context, in AddTaskInput) (*AddTaskOutput, error) {
	msg := uc.list.Add(in.Task)
	uc.logger.Info("task", "added "+in.Task.String())

	if err := saveList(uc.store, uc.list, uc.logger); err != nil {
		return nil, err
	}

	return &AddTaskOutput{Message: msg, Total: uc.list.Len()}, nil
}

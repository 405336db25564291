package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskbot/internal/domain"
)

// MarkTaskInput contains the parameters for marking a task.
type MarkTaskInput struct {
	Index int  // 1-based task number
	Done  bool // true marks the task done, false marks it not done
}

// MarkTaskOutput contains the result of marking a task.
type MarkTaskOutput struct {
	Message string      // Confirmation message
	Task    domain.Task // Task after the change
}

// MarkTask is the use case for setting a task's completion flag.
type MarkTask struct {
	list   *domain.TaskList
	store  domain.TaskStore
	logger domain.Logger
}

// NewMarkTask creates a new MarkTask use case.
func NewMarkTask(list *domain.TaskList, store domain.TaskStore, logger domain.Logger) *MarkTask {
	return &MarkTask{
		list:   list,
		store:  store,
		logger: logger,
	}
}

// Execute sets the flag of the task at in.Index and saves the list.
// Marking an already done task succeeds.
func (uc *MarkTask) Execute(_ context.Context, in MarkTaskInput) (*MarkTaskOutput, error) {
	var msg string
	var err error
	if in.Done {
		msg, err = uc.list.Mark(in.Index)
	} else {
		msg, err = uc.list.Unmark(in.Index)
	}
	if err != nil {
		return nil, err
	}

	task, err := uc.list.Get(in.Index)
	if err != nil {
		return nil, err
	}
	uc.logger.Info("task", fmt.Sprintf("set task %d: %s", in.Index, task))

	if err := saveList(uc.store, uc.list, uc.logger); err != nil {
		return nil, err
	}

	return &MarkTaskOutput{Message: msg, Task: task}, nil
}

package usecase

import (
	"context"

	"github.com/runoshun/taskbot/internal/domain"
)

// ListTasksOutput contains the result of listing tasks.
type ListTasksOutput struct {
	Message string        // Numbered list followed by the task count
	Tasks   []domain.Task // Snapshot of the list
}

// ListTasks is the use case for showing the whole list.
type ListTasks struct {
	list *domain.TaskList
}

// NewListTasks creates a new ListTasks use case.
func NewListTasks(list *domain.TaskList) *ListTasks {
	return &ListTasks{list: list}
}

// Execute renders the list.
func (uc *ListTasks) Execute(_ context.Context) (*ListTasksOutput, error) {
	return &ListTasksOutput{
		Message: domain.ListMessage(uc.list),
		Tasks:   uc.list.Tasks(),
	}, nil
}

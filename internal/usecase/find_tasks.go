package usecase

import (
	"context"
	"iter"

	"github.com/runoshun/taskbot/internal/domain"
)

// FindTasksInput contains the parameters for searching tasks.
type FindTasksInput struct {
	Query string // Case-sensitive substring of the task name
}

// FindTasksOutput contains the result of searching tasks.
type FindTasksOutput struct {
	Matches iter.Seq[domain.Task] // Matching tasks in list order
	Message string                // Results under the fixed header
}

// FindTasks is the use case for searching tasks by name.
type FindTasks struct {
	list *domain.TaskList
}

// NewFindTasks creates a new FindTasks use case.
func NewFindTasks(list *domain.TaskList) *FindTasks {
	return &FindTasks{list: list}
}

// Execute searches the list. No match is not an error.
func (uc *FindTasks) Execute(_ context.Context, in FindTasksInput) (*FindTasksOutput, error) {
	matches := uc.list.Find(in.Query)
	return &FindTasksOutput{
		Matches: matches,
		Message: domain.FindMessage(in.Query, matches),
	}, nil
}

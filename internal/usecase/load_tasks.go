// Package usecase contains application use cases.
package usecase

import (
	"context"
	"fmt"

	"github.com/runoshun/taskbot/internal/domain"
)

// LoadTasksOutput contains the result of loading the task list.
type LoadTasksOutput struct {
	List    *domain.TaskList // Tasks decoded from the store
	Skipped []error          // One error per corrupt record that was skipped
}

// LoadTasks is the use case for rebuilding the task list from the store.
type LoadTasks struct {
	store  domain.TaskStore
	logger domain.Logger
}

// NewLoadTasks creates a new LoadTasks use case.
func NewLoadTasks(store domain.TaskStore, logger domain.Logger) *LoadTasks {
	return &LoadTasks{
		store:  store,
		logger: logger,
	}
}

// Execute loads every record. Corrupt records are skipped and logged;
// only store failures are returned as errors.
func (uc *LoadTasks) Execute(_ context.Context) (*LoadTasksOutput, error) {
	records, err := uc.store.Load()
	if err != nil {
		return nil, fmt.Errorf("load tasks: %w", err)
	}

	list, skipped := domain.LoadTaskList(records)
	for _, e := range skipped {
		uc.logger.Warn("store", "skipped "+e.Error())
	}
	uc.logger.Info("store", fmt.Sprintf("loaded %d tasks (%d skipped)", list.Len(), len(skipped)))

	return &LoadTasksOutput{List: list, Skipped: skipped}, nil
}

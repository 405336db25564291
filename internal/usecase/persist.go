package usecase

import (
	"fmt"

	"github.com/runoshun/taskbot/internal/domain"
)

// saveList writes the whole list to the store.
func saveList(store domain.TaskStore, list *domain.TaskList, logger domain.Logger) error {
	if err := store.Save(list.Records()); err != nil {
		logger.Error("store", "save failed: "+err.Error())
		return fmt.Errorf("save tasks: %w", err)
	}
	logger.Debug("store", fmt.Sprintf("saved %d tasks", list.Len()))
	return nil
}

package usecase

import (
	"context"
	"errors"
	"fmt"

	"github.com/runoshun/taskbot/internal/domain"
)

// MigrateStoreInput contains parameters for MigrateStore.
type MigrateStoreInput struct {
	// Force overwrites a destination that already holds records.
	Force bool
}

// MigrateStoreOutput contains migration results.
type MigrateStoreOutput struct {
	Total    int // Records read from the source
	Migrated int // Records written to the destination
	Skipped  int // Corrupt source records left behind
}

// MigrateStore copies every valid record from one store to another.
type MigrateStore struct {
	source domain.TaskStore
	dest   domain.TaskStore
	logger domain.Logger
}

// NewMigrateStore creates a new MigrateStore use case.
func NewMigrateStore(source, dest domain.TaskStore, logger domain.Logger) *MigrateStore {
	return &MigrateStore{source: source, dest: dest, logger: logger}
}

// Execute migrates the records. Each record is decoded first so that
// corrupt ones are not carried over.
func (uc *MigrateStore) Execute(_ context.Context, in MigrateStoreInput) (*MigrateStoreOutput, error) {
	if uc.source == nil || uc.dest == nil {
		return nil, errors.New("source or destination store is nil")
	}

	existing, err := uc.dest.Load()
	if err != nil {
		return nil, fmt.Errorf("load destination: %w", err)
	}
	if len(existing) > 0 && !in.Force {
		return nil, fmt.Errorf("%w: %d records", domain.ErrStoreNotEmpty, len(existing))
	}

	records, err := uc.source.Load()
	if err != nil {
		return nil, fmt.Errorf("load source: %w", err)
	}

	list, skipped := domain.LoadTaskList(records)
	for _, e := range skipped {
		uc.logger.Warn("migrate", "skipped "+e.Error())
	}

	if err := uc.dest.Save(list.Records()); err != nil {
		return nil, fmt.Errorf("save destination: %w", err)
	}
	uc.logger.Info("migrate", fmt.Sprintf("migrated %d of %d records", list.Len(), len(records)))

	return &MigrateStoreOutput{
		Total:    len(records),
		Migrated: list.Len(),
		Skipped:  len(skipped),
	}, nil
}

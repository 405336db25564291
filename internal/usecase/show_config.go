package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/runoshun/taskbot/internal/domain"
)

// ShowConfigInput contains the input for the ShowConfig use case.
type ShowConfigInput struct{}

// ShowConfigOutput contains the output of the ShowConfig use case.
type ShowConfigOutput struct {
	Effective *domain.Config    // Merged configuration in use
	File      domain.ConfigInfo // Config file info
	LastSaved time.Time         // Zero if the store was never written or cannot tell
}

// ShowConfig displays configuration file information.
type ShowConfig struct {
	configManager domain.ConfigManager
	configLoader  domain.ConfigLoader
	store         domain.TaskStore
}

// NewShowConfig creates a new ShowConfig use case.
func NewShowConfig(configManager domain.ConfigManager, configLoader domain.ConfigLoader, store domain.TaskStore) *ShowConfig {
	return &ShowConfig{
		configManager: configManager,
		configLoader:  configLoader,
		store:         store,
	}
}

// Execute retrieves configuration file information, the merged config
// and, when the store reports it, the time of its last save.
func (uc *ShowConfig) Execute(_ context.Context, _ ShowConfigInput) (*ShowConfigOutput, error) {
	cfg, err := uc.configLoader.Load()
	if err != nil {
		return nil, err
	}
	out := &ShowConfigOutput{
		Effective: cfg,
		File:      uc.configManager.ConfigInfo(),
	}
	if r, ok := uc.store.(domain.SaveTimeReporter); ok {
		savedAt, err := r.LastSaved()
		if err != nil {
			return nil, fmt.Errorf("read last save time: %w", err)
		}
		out.LastSaved = savedAt
	}
	return out, nil
}

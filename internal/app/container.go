// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"

	"github.com/runoshun/taskbot/internal/domain"
	"github.com/runoshun/taskbot/internal/infra/config"
	"github.com/runoshun/taskbot/internal/infra/filestore"
	"github.com/runoshun/taskbot/internal/infra/gitstore"
	"github.com/runoshun/taskbot/internal/infra/jsonstore"
	"github.com/runoshun/taskbot/internal/infra/logging"
	"github.com/runoshun/taskbot/internal/infra/sqlitestore"
	"github.com/runoshun/taskbot/internal/usecase"
)

// Options selects where configuration and data live.
type Options struct {
	ConfigPath string // Explicit config file (--config); optional
	DataDir    string // Data directory; defaults to $XDG_DATA_HOME/taskbot
}

// Config holds the resolved application paths.
type Config struct {
	DataDir   string // Directory holding the store and logs
	StorePath string // Path of the configured store
	StoreType string // Configured backend
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Store         domain.TaskStore
	Clock         domain.Clock
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	AppConfig *domain.Config

	closers []io.Closer

	// Configuration
	Config Config
}

// New loads configuration and opens the configured store.
func New(opts Options) (*Container, error) {
	configLoader := config.NewLoader(opts.ConfigPath)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		if dataDir, err = config.DefaultDataDir(); err != nil {
			return nil, fmt.Errorf("resolve data directory: %w", err)
		}
	}

	logger := logging.New(dataDir, logging.ParseLevel(appConfig.Log.Level))

	c := &Container{
		Clock:         domain.RealClock{},
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(opts.ConfigPath),
		Logger:        logger,
		AppConfig:     appConfig,
		closers:       []io.Closer{logger},
		Config: Config{
			DataDir:   dataDir,
			StorePath: appConfig.StorePath(dataDir),
			StoreType: appConfig.Store.Type,
		},
	}

	store, err := c.OpenStore(c.Config.StoreType, c.Config.StorePath)
	if err != nil {
		_ = c.Close()
		return nil, err
	}
	c.Store = store
	logger.Debug("app", fmt.Sprintf("using %s store at %s", c.Config.StoreType, c.Config.StorePath))

	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, store domain.TaskStore, clock domain.Clock, logger domain.Logger) *Container {
	appConfig := domain.NewDefaultConfig()
	if cfg.StoreType != "" {
		appConfig.Store.Type = cfg.StoreType
	}
	return &Container{
		Store:     store,
		Clock:     clock,
		Logger:    logger,
		AppConfig: appConfig,
		Config:    cfg,
	}
}

// OpenStore opens a store of the given type. An empty path selects the
// backend's default location in the data directory. Stores holding
// resources are closed by Close.
func (c *Container) OpenStore(storeType, path string) (domain.TaskStore, error) {
	if path == "" {
		path = domain.DefaultStorePath(c.Config.DataDir, storeType)
	}

	switch storeType {
	case domain.StoreFile:
		return filestore.New(path), nil
	case domain.StoreJSON:
		return jsonstore.New(path, c.Clock), nil
	case domain.StoreGit:
		namespace := domain.DefaultStoreNamespace
		if c.AppConfig != nil && c.AppConfig.Store.Namespace != "" {
			namespace = c.AppConfig.Store.Namespace
		}
		return gitstore.New(path, namespace, c.Clock)
	case domain.StoreSQLite:
		store, err := sqlitestore.New(path, c.Clock)
		if err != nil {
			return nil, err
		}
		c.closers = append(c.closers, store)
		return store, nil
	default:
		return nil, fmt.Errorf("%w: %q (want one of %v)", domain.ErrUnknownStore, storeType, domain.AllStoreTypes())
	}
}

// StorePathFor returns where a backend of storeType lives: the configured
// path for the configured backend, the default location otherwise.
func (c *Container) StorePathFor(storeType string) string {
	if storeType == c.Config.StoreType && c.Config.StorePath != "" {
		return c.Config.StorePath
	}
	return domain.DefaultStorePath(c.Config.DataDir, storeType)
}

// Close releases the store and the log file.
func (c *Container) Close() error {
	var errs []error
	for i := len(c.closers) - 1; i >= 0; i-- {
		if err := c.closers[i].Close(); err != nil {
			errs = append(errs, err)
		}
	}
	c.closers = nil
	return errors.Join(errs...)
}

// UseCase factory methods

// LoadTasksUseCase returns a new LoadTasks use case.
func (c *Container) LoadTasksUseCase() *usecase.LoadTasks {
	return usecase.NewLoadTasks(c.Store, c.Logger)
}

// HandleCommandUseCase returns a new HandleCommand use case bound to list.
func (c *Container) HandleCommandUseCase(list *domain.TaskList) *usecase.HandleCommand {
	return usecase.NewHandleCommand(list, c.Store, c.Logger)
}

// RunSessionUseCase returns a new RunSession use case reading from source
// and writing framed responses to out.
func (c *Container) RunSessionUseCase(list *domain.TaskList, source domain.LineSource, out io.Writer) *usecase.RunSession {
	return usecase.NewRunSession(c.HandleCommandUseCase(list), source, out, c.Logger)
}

// MigrateStoreUseCase returns a new MigrateStore use case.
func (c *Container) MigrateStoreUseCase(source, dest domain.TaskStore) *usecase.MigrateStore {
	return usecase.NewMigrateStore(source, dest, c.Logger)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader, c.Store)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

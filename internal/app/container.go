// Package app provides the dependency injection container for the application.
package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/acetasks/ace/internal/domain"
	"github.com/acetasks/ace/internal/infra/config"
	"github.com/acetasks/ace/internal/infra/gitstore"
	"github.com/acetasks/ace/internal/infra/jsonstore"
	"github.com/acetasks/ace/internal/infra/logging"
	"github.com/acetasks/ace/internal/infra/sqlitestore"
	"github.com/acetasks/ace/internal/taskstore"
	"github.com/acetasks/ace/internal/usecase"
)

// Options holds command-line overrides applied on top of the config file.
type Options struct {
	ConfigPath string // --config (empty = default location)
	Backend    string // --store
	StorePath  string // --store-path
	DataDir    string // Data directory (empty = XDG default)
}

// Config holds the resolved application paths.
type Config struct {
	ConfigPath string // Path to config.toml
	DataDir    string // Path to the data directory
	StorePath  string // Path to the store file, repository or database
	LogPath    string // Path to ace.log
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	KV            domain.KVStore
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Logger        domain.Logger

	// Pointer fields
	Tasks     *taskstore.Store
	Themes    *taskstore.ThemeStore
	AppConfig *domain.Config

	closers []io.Closer

	// Configuration
	Config Config
}

// New creates a new Container: it loads the config, opens the configured
// backend and hydrates the task list and theme.
func New(opts Options) (*Container, error) {
	// Load app config
	configPath := opts.ConfigPath
	if configPath == "" {
		configPath = config.DefaultPath()
	}
	configLoader := config.NewLoaderWithPath(configPath)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, err
	}

	// Apply command-line overrides
	if opts.Backend != "" {
		appConfig.Store.Backend = opts.Backend
	}
	if opts.StorePath != "" {
		appConfig.Store.Path = opts.StorePath
	}

	dataDir := opts.DataDir
	if dataDir == "" {
		dataDir = config.DefaultDataDir()
	}
	cfg := Config{
		ConfigPath: configPath,
		DataDir:    dataDir,
		StorePath:  appConfig.StorePath(dataDir),
		LogPath:    domain.LogPath(dataDir),
	}

	// Create logger
	logger := logging.New(dataDir, logging.ParseLevel(appConfig.Log.Level))

	kv, err := OpenStore(appConfig, cfg.StorePath)
	if err != nil {
		_ = logger.Close()
		return nil, err
	}
	logger.Debug("app", fmt.Sprintf("opened %s store at %s", appConfig.Store.Backend, cfg.StorePath))

	c := NewWithDeps(cfg, appConfig, kv, config.NewManager(configPath), logger)
	c.ConfigLoader = configLoader
	c.closers = append(c.closers, logger)
	return c, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
// The task list and theme are hydrated from kv.
func NewWithDeps(cfg Config, appConfig *domain.Config, kv domain.KVStore, configManager domain.ConfigManager, logger domain.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = domain.NopLogger{}
	}

	tasks := taskstore.New(kv, logger)
	tasks.Initialize()
	themes := taskstore.NewThemeStore(kv, logger)
	themes.Load()

	return &Container{
		KV:            kv,
		ConfigManager: configManager,
		Logger:        logger,
		Tasks:         tasks,
		Themes:        themes,
		AppConfig:     appConfig,
		Config:        cfg,
	}
}

// OpenStore opens the backend selected by cfg.Store.Backend at path.
func OpenStore(cfg *domain.Config, path string) (domain.KVStore, error) {
	if path == "" {
		return nil, domain.ErrStoreNotConfigured
	}

	switch cfg.Store.Backend {
	case "", domain.BackendJSON:
		store := jsonstore.New(path)
		if err := store.Initialize(); err != nil {
			return nil, fmt.Errorf("initialize json store: %w", err)
		}
		return store, nil
	case domain.BackendGit:
		if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
			return nil, fmt.Errorf("create directory: %w", err)
		}
		return gitstore.Open(path, cfg.Store.Namespace)
	case domain.BackendSQLite:
		return sqlitestore.Open(path)
	default:
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownBackend, cfg.Store.Backend)
	}
}

// Close releases the backend and the log file.
func (c *Container) Close() error {
	var errs []error
	if c.KV != nil {
		errs = append(errs, c.KV.Close())
	}
	for _, cl := range c.closers {
		errs = append(errs, cl.Close())
	}
	return errors.Join(errs...)
}

// UseCase factory methods

// AddTaskUseCase returns a new AddTask use case.
func (c *Container) AddTaskUseCase() *usecase.AddTask {
	return usecase.NewAddTask(c.Tasks)
}

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Tasks)
}

// ToggleTaskUseCase returns a new ToggleTask use case.
func (c *Container) ToggleTaskUseCase() *usecase.ToggleTask {
	return usecase.NewToggleTask(c.Tasks)
}

// EditTaskUseCase returns a new EditTask use case.
func (c *Container) EditTaskUseCase() *usecase.EditTask {
	return usecase.NewEditTask(c.Tasks)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Tasks)
}

// ExportTasksUseCase returns a new ExportTasks use case.
func (c *Container) ExportTasksUseCase() *usecase.ExportTasks {
	return usecase.NewExportTasks(c.Tasks)
}

// SetThemeUseCase returns a new SetTheme use case.
func (c *Container) SetThemeUseCase() *usecase.SetTheme {
	return usecase.NewSetTheme(c.Themes)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.KV, c.AppConfig, c.Config.StorePath, c.Config.LogPath)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}

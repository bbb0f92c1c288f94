package app

import (
	"context"
	"os"

	"wryte/internal/adapters/filesystem"
	"wryte/internal/bridge"
	"wryte/internal/logging"
	"wryte/internal/services/document"
	"wryte/internal/services/paths"
)

// NewAppWithConfig creates a new App with the given configuration, wiring all dependencies.
func NewAppWithConfig(ctx context.Context, cfg *Config) (*App, error) {
	// Create logger.
	logger := cfg.Logger
	if logger == nil {
		logger = logging.NewLoggerWithConfig(logging.Config{
			Level:  cfg.LogLevel,
			Format: cfg.LogFormat,
			Output: os.Stderr,
		})
	}

	// Create filesystem adapter.
	fs := cfg.FileSystem
	if fs == nil {
		fs = filesystem.New()
	}

	// HOME is read on every call, never captured here.
	resolver := paths.NewResolver(cfg.EnvLookup)

	store := document.NewService(fs, resolver, logger)
	dispatcher := bridge.NewDispatcher(store, logger)

	logger.DebugContext(ctx, "Initializing wryte",
		"logLevel", cfg.LogLevel.String(),
		"logFormat", cfg.LogFormat,
		"verbose", cfg.Verbose)

	return &App{
		DocumentStore: store,
		PathResolver:  resolver,
		Dispatcher:    dispatcher,
		FileSystem:    fs,
		Logger:        logger,
		Config:        cfg,
	}, nil
}

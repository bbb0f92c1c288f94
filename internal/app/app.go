package app

import (
	"context"
	"log/slog"

	"wryte/internal/bridge"
	"wryte/internal/domain"
	"wryte/internal/logging"
)

// App contains all application dependencies.
type App struct {
	// Document persistence
	DocumentStore domain.DocumentStore
	PathResolver  domain.PathResolver

	// Shell command surface
	Dispatcher *bridge.Dispatcher

	// File operations
	FileSystem domain.FileSystemAdapter

	// Logging
	Logger *slog.Logger

	// Configuration
	Config *Config
}

// Config holds application configuration.
type Config struct {
	LogLevel  slog.Level
	LogFormat string
	Verbose   bool

	// EnvLookup supplies HOME to the path resolver; nil reads the process environment.
	EnvLookup domain.EnvLookup

	// FileSystem overrides the OS-backed adapter.
	FileSystem domain.FileSystemAdapter

	// Logger overrides the logger built from LogLevel and LogFormat.
	Logger *slog.Logger
}

// Option is a functional option for configuring the App.
type Option func(*Config)

// WithLogLevel sets the logging level.
func WithLogLevel(level slog.Level) Option {
	return func(cfg *Config) {
		cfg.LogLevel = level
	}
}

// WithLogFormat selects "text" or "json" log output.
func WithLogFormat(format string) Option {
	return func(cfg *Config) {
		cfg.LogFormat = format
	}
}

// WithVerbose enables verbose logging.
func WithVerbose(verbose bool) Option {
	return func(cfg *Config) {
		cfg.Verbose = verbose
		if verbose {
			cfg.LogLevel = slog.LevelDebug
		}
	}
}

// WithEnvLookup sets the environment source used to resolve the default document path.
func WithEnvLookup(lookup domain.EnvLookup) Option {
	return func(cfg *Config) {
		cfg.EnvLookup = lookup
	}
}

// WithFileSystem replaces the filesystem adapter.
func WithFileSystem(fs domain.FileSystemAdapter) Option {
	return func(cfg *Config) {
		cfg.FileSystem = fs
	}
}

// WithLogger replaces the application logger.
func WithLogger(logger *slog.Logger) Option {
	return func(cfg *Config) {
		cfg.Logger = logger
	}
}

// NewApp creates a new App with the given options.
func NewApp(ctx context.Context, opts ...Option) (*App, error) {
	cfg := &Config{
		LogLevel:  slog.LevelInfo,
		LogFormat: logging.FormatText,
		Verbose:   false,
	}

	// Apply options.
	for _, opt := range opts {
		opt(cfg)
	}

	return NewAppWithConfig(ctx, cfg)
}

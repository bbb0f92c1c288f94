// Package testutil provides test utilities and constructors with pre-injected dependencies.
package testutil

import (
	"log/slog"

	"wryte/internal/domain"
	"wryte/internal/logging"
)

// Logger returns a test logger for use in tests.
func Logger() *slog.Logger {
	return logging.NewTestLogger()
}

// EnvLookup returns an environment lookup backed by env.
// The map is read on every call, so tests may mutate it between lookups.
func EnvLookup(env map[string]string) domain.EnvLookup {
	return func(key string) (string, bool) {
		value, ok := env[key]
		return value, ok
	}
}

package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"

	"gopkg.in/yaml.v3"

	"wryte/internal/domain"
	"wryte/internal/services/paths"
)

// Output formats supported by WhereResult.Render.
const (
	OutputText = "text"
	OutputJSON = "json"
	OutputYAML = "yaml"
)

// WhereCommand reports where default-path documents are stored.
type WhereCommand struct {
	resolver domain.PathResolver
	logger   *slog.Logger
}

// NewWhereCommand creates a new where command.
func NewWhereCommand(resolver domain.PathResolver, logger *slog.Logger) *WhereCommand {
	return &WhereCommand{
		resolver: resolver,
		logger:   logger,
	}
}

// WhereResult describes the resolved default document location.
type WhereResult struct {
	DefaultPath string `json:"defaultPath" yaml:"defaultPath"`
	HomeSet     bool   `json:"homeSet"     yaml:"homeSet"`
}

// Execute runs the where command.
func (c *WhereCommand) Execute(ctx context.Context) *WhereResult {
	result := &WhereResult{
		DefaultPath: c.resolver.DefaultDocumentPath(),
		HomeSet:     c.resolver.HomeDirSet(),
	}

	if !result.HomeSet {
		c.logger.WarnContext(ctx, "Home directory not set, default document falls back to the working directory",
			"env", paths.HomeEnvVar,
			"path", result.DefaultPath)
	}
	return result
}

// Render formats the result as text, json or yaml.
func (r *WhereResult) Render(format string) (string, error) {
	switch strings.ToLower(format) {
	case "", OutputText:
		var b strings.Builder
		fmt.Fprintf(&b, "Default document: %s\n", r.DefaultPath)
		if !r.HomeSet {
			fmt.Fprintf(&b, "  %s is not set; using the current working directory\n", paths.HomeEnvVar)
		}
		return b.String(), nil
	case OutputJSON:
		data, err := json.MarshalIndent(r, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to marshal result: %w", err)
		}
		return string(data) + "\n", nil
	case OutputYAML:
		data, err := yaml.Marshal(r)
		if err != nil {
			return "", fmt.Errorf("failed to marshal result: %w", err)
		}
		return string(data), nil
	default:
		return "", fmt.Errorf("unsupported output format %q (use text, json or yaml)", format)
	}
}

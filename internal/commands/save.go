package commands

import (
	"context"
	"fmt"
	"log/slog"

	"wryte/internal/domain"
)

// SaveCommand handles writing a document to an explicit or default path.
type SaveCommand struct {
	store    domain.DocumentStore
	resolver domain.PathResolver
	logger   *slog.Logger
}

// NewSaveCommand creates a new save command.
func NewSaveCommand(store domain.DocumentStore, resolver domain.PathResolver, logger *slog.Logger) *SaveCommand {
	return &SaveCommand{
		store:    store,
		resolver: resolver,
		logger:   logger,
	}
}

// SaveRequest contains the parameters for the save command.
type SaveRequest struct {
	Content string
	Path    string // empty selects the default document path
}

// SaveResult contains the result of the save command.
type SaveResult struct {
	Path         string
	Confirmation string
}

// Execute runs the save command.
func (c *SaveCommand) Execute(ctx context.Context, req SaveRequest) (*SaveResult, error) {
	// The default path is resolved once so the reported and written paths agree.
	path := req.Path
	if path == "" {
		path = c.resolver.DefaultDocumentPath()
		c.logger.DebugContext(ctx, "Saving document to default path", "path", path)
	} else {
		c.logger.DebugContext(ctx, "Saving document", "path", path)
	}

	confirmation, err := c.store.Save(ctx, req.Content, path)
	if err != nil {
		return nil, fmt.Errorf("failed to save document: %w", err)
	}

	c.logger.InfoContext(ctx, "Document saved", "path", path, "bytes", len(req.Content))
	return &SaveResult{
		Path:         path,
		Confirmation: confirmation,
	}, nil
}

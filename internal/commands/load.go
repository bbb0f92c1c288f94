package commands

import (
	"context"
	"fmt"
	"log/slog"

	"wryte/internal/domain"
)

// LoadCommand handles reading a document from an explicit or default path.
type LoadCommand struct {
	store    domain.DocumentStore
	resolver domain.PathResolver
	logger   *slog.Logger
}

// NewLoadCommand creates a new load command.
func NewLoadCommand(store domain.DocumentStore, resolver domain.PathResolver, logger *slog.Logger) *LoadCommand {
	return &LoadCommand{
		store:    store,
		resolver: resolver,
		logger:   logger,
	}
}

// LoadRequest contains the parameters for the load command.
type LoadRequest struct {
	Path string // empty selects the default document path
}

// LoadResult contains the result of the load command.
type LoadResult struct {
	Path    string
	Content string
}

// Execute runs the load command.
func (c *LoadCommand) Execute(ctx context.Context, req LoadRequest) (*LoadResult, error) {
	path := req.Path
	if path == "" {
		path = c.resolver.DefaultDocumentPath()
	}

	content, err := c.store.Load(ctx, path)
	if err != nil {
		return nil, fmt.Errorf("failed to load document: %w", err)
	}

	c.logger.InfoContext(ctx, "Document loaded", "path", path, "bytes", len(content))
	return &LoadResult{
		Path:    path,
		Content: content,
	}, nil
}

package document

import (
	"context"
	"log/slog"
	"unicode/utf8"

	"wryte/internal/domain"
	"wryte/internal/errors"
)

// filePermissions applies only when a save creates the file.
const filePermissions = 0o644

// ConfirmationPrefix starts every successful save confirmation.
const ConfirmationPrefix = "Document saved to: "

// Service persists documents to files.
type Service struct {
	fs       domain.FileSystemAdapter
	resolver domain.PathResolver
	logger   *slog.Logger
}

// NewService creates a new document service.
func NewService(fs domain.FileSystemAdapter, resolver domain.PathResolver, logger *slog.Logger) *Service {
	return &Service{
		fs:       fs,
		resolver: resolver,
		logger:   logger,
	}
}

var _ domain.DocumentStore = (*Service)(nil)

// Confirmation renders the success message for a save to path.
func Confirmation(path string) string {
	return ConfirmationPrefix + path
}

// Save writes content to path, replacing any existing file entirely.
// The write is not atomic and a failed write is not cleaned up.
func (s *Service) Save(ctx context.Context, content, path string) (string, error) {
	s.logger.DebugContext(ctx, "Saving document", "path", path, "bytes", len(content))

	if err := s.fs.WriteFile(path, []byte(content), filePermissions); err != nil {
		return "", errors.NewIOError(errors.OpSave, path, err)
	}

	s.logger.DebugContext(ctx, "Document saved", "path", path)
	return Confirmation(path), nil
}

// Load reads the whole file at path. Content that is not valid UTF-8 is rejected.
func (s *Service) Load(ctx context.Context, path string) (string, error) {
	s.logger.DebugContext(ctx, "Loading document", "path", path)

	data, err := s.fs.ReadFile(path)
	if err != nil {
		return "", errors.NewIOError(errors.OpLoad, path, err)
	}
	if !utf8.Valid(data) {
		return "", errors.NewIOError(errors.OpLoad, path, errors.ErrInvalidText)
	}

	s.logger.DebugContext(ctx, "Document loaded", "path", path, "bytes", len(data))
	return string(data), nil
}

// SaveDefault saves content to the default document path.
func (s *Service) SaveDefault(ctx context.Context, content string) (string, error) {
	return s.Save(ctx, content, s.resolver.DefaultDocumentPath())
}

// LoadDefault loads the document at the default document path.
func (s *Service) LoadDefault(ctx context.Context) (string, error) {
	return s.Load(ctx, s.resolver.DefaultDocumentPath())
}

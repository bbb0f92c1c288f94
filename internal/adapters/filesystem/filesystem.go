package filesystem

import (
	"os"

	"github.com/spf13/afero"

	"wryte/internal/domain"
)

var _ domain.FileSystemAdapter = (*Adapter)(nil)

// Adapter provides file system operations.
type Adapter struct {
	fs afero.Fs
}

// New creates a new filesystem adapter backed by the operating system.
func New() *Adapter {
	return NewWithFs(afero.NewOsFs())
}

// NewWithFs creates a filesystem adapter on top of the given afero filesystem.
func NewWithFs(fs afero.Fs) *Adapter {
	return &Adapter{fs: fs}
}

// ReadFile reads a file from disk.
func (a *Adapter) ReadFile(path string) ([]byte, error) {
	return afero.ReadFile(a.fs, path)
}

// WriteFile writes data to a file, truncating it if it already exists.
// Parent directories are not created.
func (a *Adapter) WriteFile(path string, data []byte, perm os.FileMode) error {
	return afero.WriteFile(a.fs, path, data, perm)
}

package terminal

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"
)

// Adapter reads document content piped into the process.
type Adapter struct {
	stdin io.Reader
}

// NewAdapter creates a new terminal adapter.
func NewAdapter(stdin io.Reader) *Adapter {
	return &Adapter{
		stdin: stdin,
	}
}

// ReadContent reads all of stdin as document content.
// An interactive terminal is refused so the CLI never blocks waiting on a keyboard.
func (a *Adapter) ReadContent(ctx context.Context) (string, error) {
	// Check if context is cancelled
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	default:
	}

	if a.IsInteractive() {
		return "", errors.New("no content provided: stdin is a terminal")
	}

	data, err := io.ReadAll(a.stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read content from stdin: %w", err)
	}
	return string(data), nil
}

// IsInteractive returns true if stdin is an interactive terminal.
func (a *Adapter) IsInteractive() bool {
	if file, ok := a.stdin.(*os.File); ok {
		return term.IsTerminal(int(file.Fd()))
	}
	return false
}

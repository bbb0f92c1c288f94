package terminal

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapter_ReadContent_FromReader(t *testing.T) {
	adapter := NewAdapter(strings.NewReader("<html><body>hi</body></html>"))

	content, err := adapter.ReadContent(context.Background())

	require.NoError(t, err)
	assert.Equal(t, "<html><body>hi</body></html>", content)
	assert.False(t, adapter.IsInteractive())
}

func TestAdapter_ReadContent_FromRegularFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "in.html")
	require.NoError(t, os.WriteFile(path, []byte("piped"), 0o600))
	file, err := os.Open(path)
	require.NoError(t, err)
	defer file.Close()

	adapter := NewAdapter(file)

	assert.False(t, adapter.IsInteractive())
	content, err := adapter.ReadContent(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "piped", content)
}

func TestAdapter_ReadContent_CancelledContext(t *testing.T) {
	adapter := NewAdapter(strings.NewReader("ignored"))
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := adapter.ReadContent(ctx)

	require.ErrorIs(t, err, context.Canceled)
}

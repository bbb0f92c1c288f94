package app

import (
	"context"
	"log/slog"
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"wryte/internal/adapters/filesystem"
	"wryte/internal/bridge"
	"wryte/internal/testutil"
)

func TestNewApp_Defaults(t *testing.T) {
	application, err := NewApp(context.Background(), WithLogger(testutil.Logger()))

	require.NoError(t, err)
	require.NotNil(t, application)
	assert.Equal(t, slog.LevelInfo, application.Config.LogLevel)
	assert.Equal(t, "text", application.Config.LogFormat)
	assert.False(t, application.Config.Verbose)
	assert.NotNil(t, application.DocumentStore)
	assert.NotNil(t, application.PathResolver)
	assert.NotNil(t, application.Dispatcher)
	assert.NotNil(t, application.FileSystem)
}

func TestNewApp_Options(t *testing.T) {
	tests := []struct {
		name          string
		opts          []Option
		expectedLevel slog.Level
		verbose       bool
	}{
		{
			name:          "verbose switches to debug",
			opts:          []Option{WithVerbose(true)},
			expectedLevel: slog.LevelDebug,
			verbose:       true,
		},
		{
			name:          "explicit level",
			opts:          []Option{WithLogLevel(slog.LevelWarn)},
			expectedLevel: slog.LevelWarn,
		},
		{
			name:          "verbose false keeps level",
			opts:          []Option{WithLogLevel(slog.LevelError), WithVerbose(false)},
			expectedLevel: slog.LevelError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			opts := append([]Option{WithLogger(testutil.Logger())}, tt.opts...)

			application, err := NewApp(context.Background(), opts...)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedLevel, application.Config.LogLevel)
			assert.Equal(t, tt.verbose, application.Config.Verbose)
		})
	}
}

func TestNewApp_WiresEnvLookupIntoDocumentStore(t *testing.T) {
	home := t.TempDir()
	env := map[string]string{"HOME": home}

	application, err := NewApp(context.Background(),
		WithLogger(testutil.Logger()),
		WithEnvLookup(testutil.EnvLookup(env)))
	require.NoError(t, err)

	ctx := context.Background()
	confirmation, err := application.DocumentStore.SaveDefault(ctx, "wired")
	require.NoError(t, err)

	expected := home + string(filepath.Separator) + "wryte_document.html"
	assert.Equal(t, "Document saved to: "+expected, confirmation)
	assert.Equal(t, expected, application.PathResolver.DefaultDocumentPath())

	resp := application.Dispatcher.Invoke(ctx, bridge.Request{Cmd: bridge.CmdLoadDefault})
	require.True(t, resp.OK(), resp.Error)
	assert.Equal(t, "wired", resp.Body)
}

func TestNewApp_WithFileSystem(t *testing.T) {
	mem := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(mem, "/docs/a.html", []byte("<p>mem</p>"), 0o644))

	application, err := NewApp(context.Background(),
		WithLogger(testutil.Logger()),
		WithFileSystem(filesystem.NewWithFs(mem)))
	require.NoError(t, err)

	content, err := application.DocumentStore.Load(context.Background(), "/docs/a.html")

	require.NoError(t, err)
	assert.Equal(t, "<p>mem</p>", content)
}

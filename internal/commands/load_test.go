package commands

import (
	"context"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	wryteerrors "wryte/internal/errors"
	"wryte/internal/mocks"
	"wryte/internal/testutil"
)

func TestLoadCommand_Execute(t *testing.T) {
	tests := []struct {
		name         string
		req          LoadRequest
		setup        func(*mocks.MockDocumentStore, *mocks.MockPathResolver)
		expectedPath string
	}{
		{
			name: "explicit path",
			req:  LoadRequest{Path: "/docs/a.html"},
			setup: func(store *mocks.MockDocumentStore, _ *mocks.MockPathResolver) {
				store.EXPECT().Load(mock.Anything, "/docs/a.html").Return("<p>a</p>", nil)
			},
			expectedPath: "/docs/a.html",
		},
		{
			name: "default path",
			req:  LoadRequest{},
			setup: func(store *mocks.MockDocumentStore, resolver *mocks.MockPathResolver) {
				resolver.EXPECT().DefaultDocumentPath().Return("./wryte_document.html").Once()
				store.EXPECT().Load(mock.Anything, "./wryte_document.html").Return("<p>a</p>", nil)
			},
			expectedPath: "./wryte_document.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Arrange
			mockStore := mocks.NewMockDocumentStore(t)
			mockResolver := mocks.NewMockPathResolver(t)
			tt.setup(mockStore, mockResolver)

			cmd := NewLoadCommand(mockStore, mockResolver, testutil.Logger())

			// Act
			result, err := cmd.Execute(context.Background(), tt.req)

			// Assert
			require.NoError(t, err)
			assert.Equal(t, tt.expectedPath, result.Path)
			assert.Equal(t, "<p>a</p>", result.Content)
		})
	}
}

func TestLoadCommand_Execute_MissingFile(t *testing.T) {
	// Arrange
	mockStore := mocks.NewMockDocumentStore(t)
	mockResolver := mocks.NewMockPathResolver(t)

	mockStore.EXPECT().Load(mock.Anything, "/missing.html").
		Return("", wryteerrors.NewIOError(wryteerrors.OpLoad, "/missing.html", fs.ErrNotExist))

	cmd := NewLoadCommand(mockStore, mockResolver, testutil.Logger())

	// Act
	result, err := cmd.Execute(context.Background(), LoadRequest{Path: "/missing.html"})

	// Assert
	require.Error(t, err)
	assert.Nil(t, result)
	require.ErrorIs(t, err, fs.ErrNotExist)
	assert.Contains(t, err.Error(), "failed to load document")
}

package domain

import "context"

// DocumentStore persists whole documents to files and reads them back.
type DocumentStore interface {
	// Save writes content to path, replacing any existing file, and returns a confirmation.
	Save(ctx context.Context, content, path string) (string, error)

	// Load reads the entire file at path as text.
	Load(ctx context.Context, path string) (string, error)

	// SaveDefault saves content to the default document path.
	SaveDefault(ctx context.Context, content string) (string, error)

	// LoadDefault loads the document stored at the default document path.
	LoadDefault(ctx context.Context) (string, error)
}

// PathResolver computes the default document location.
type PathResolver interface {
	DefaultDocumentPath() string
	HomeDirSet() bool
}

// EnvLookup reports the value of an environment variable and whether it is set.
type EnvLookup func(key string) (string, bool)

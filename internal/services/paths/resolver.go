package paths

import (
	"os"
	"path/filepath"

	"wryte/internal/domain"
)

const (
	// HomeEnvVar names the environment variable holding the user's home directory.
	HomeEnvVar = "HOME"
	// FallbackDir is used when HomeEnvVar is not set.
	FallbackDir = "."
	// DefaultFileName is the document file name inside the home directory.
	DefaultFileName = "wryte_document.html"
)

// ResolveDefaultPath returns <home>/wryte_document.html, reading HOME through lookup.
// An unset HOME degrades to the current directory instead of failing.
// The base is joined verbatim, not cleaned, so the fallback is "./wryte_document.html".
func ResolveDefaultPath(lookup domain.EnvLookup) string {
	base, ok := lookupHome(lookup)
	if !ok {
		base = FallbackDir
	}
	return base + string(filepath.Separator) + DefaultFileName
}

func lookupHome(lookup domain.EnvLookup) (string, bool) {
	if lookup == nil {
		return "", false
	}
	return lookup(HomeEnvVar)
}

// Resolver provides the default document path from the process environment.
type Resolver struct {
	lookup domain.EnvLookup
}

// NewResolver creates a new resolver. A nil lookup reads the process environment.
func NewResolver(lookup domain.EnvLookup) *Resolver {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	return &Resolver{
		lookup: lookup,
	}
}

var _ domain.PathResolver = (*Resolver)(nil)

// DefaultDocumentPath resolves the default path. HOME is re-read on every call.
func (r *Resolver) DefaultDocumentPath() string {
	return ResolveDefaultPath(r.lookup)
}

// HomeDirSet reports whether HOME is currently set.
func (r *Resolver) HomeDirSet() bool {
	_, ok := lookupHome(r.lookup)
	return ok
}

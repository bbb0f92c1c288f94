package paths_test

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"wryte/internal/services/paths"
	"wryte/internal/testutil"
)

func TestResolveDefaultPath(t *testing.T) {
	sep := string(filepath.Separator)

	tests := []struct {
		name     string
		env      map[string]string
		expected string
	}{
		{
			name:     "home set",
			env:      map[string]string{"HOME": "/home/alice"},
			expected: "/home/alice" + sep + "wryte_document.html",
		},
		{
			name:     "home unset falls back to current directory",
			env:      map[string]string{},
			expected: "." + sep + "wryte_document.html",
		},
		{
			name:     "home with trailing separator is joined verbatim",
			env:      map[string]string{"HOME": "/home/bob/"},
			expected: "/home/bob/" + sep + "wryte_document.html",
		},
		{
			name:     "empty home is still a set value",
			env:      map[string]string{"HOME": ""},
			expected: sep + "wryte_document.html",
		},
		{
			name:     "unrelated variables are ignored",
			env:      map[string]string{"USERPROFILE": "C:\\Users\\carol"},
			expected: "." + sep + "wryte_document.html",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := paths.ResolveDefaultPath(testutil.EnvLookup(tt.env))
			assert.Equal(t, tt.expected, got)
		})
	}
}

func TestResolveDefaultPath_NilLookup(t *testing.T) {
	assert.Equal(t, "."+string(filepath.Separator)+"wryte_document.html", paths.ResolveDefaultPath(nil))
}

func TestResolver_ReadsEnvironmentOnEveryCall(t *testing.T) {
	env := map[string]string{"HOME": "/home/first"}
	resolver := paths.NewResolver(testutil.EnvLookup(env))

	first := resolver.DefaultDocumentPath()
	assert.True(t, resolver.HomeDirSet())

	env["HOME"] = "/home/second"
	second := resolver.DefaultDocumentPath()

	delete(env, "HOME")
	third := resolver.DefaultDocumentPath()

	assert.Equal(t, "/home/first"+string(filepath.Separator)+"wryte_document.html", first)
	assert.Equal(t, "/home/second"+string(filepath.Separator)+"wryte_document.html", second)
	assert.Equal(t, "."+string(filepath.Separator)+"wryte_document.html", third)
	assert.False(t, resolver.HomeDirSet())
}

func TestNewResolver_DefaultsToProcessEnvironment(t *testing.T) {
	t.Setenv("HOME", "/home/from-process")

	resolver := paths.NewResolver(nil)

	assert.Equal(t, "/home/from-process"+string(filepath.Separator)+"wryte_document.html", resolver.DefaultDocumentPath())
}

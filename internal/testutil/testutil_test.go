package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogger(t *testing.T) {
	logger := Logger()
	require.NotNil(t, logger)
}

func TestEnvLookup(t *testing.T) {
	env := map[string]string{"HOME": "/home/test"}
	lookup := EnvLookup(env)

	value, ok := lookup("HOME")
	assert.True(t, ok)
	assert.Equal(t, "/home/test", value)

	_, ok = lookup("MISSING")
	assert.False(t, ok)

	delete(env, "HOME")
	_, ok = lookup("HOME")
	assert.False(t, ok)
}

package commands

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"wryte/internal/testutil"
)

func TestGreetCommand_Execute(t *testing.T) {
	cmd := NewGreetCommand(testutil.Logger())

	assert.Equal(t, "Hello, Ada! You've been greeted from Go!", cmd.Execute(context.Background(), GreetRequest{Name: "Ada"}))
	assert.Equal(t, "Hello, ! You've been greeted from Go!", cmd.Execute(context.Background(), GreetRequest{}))
}

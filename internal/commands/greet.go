package commands

import (
	"context"
	"fmt"
	"log/slog"
)

// GreetCommand answers the shell's connectivity greeting.
type GreetCommand struct {
	logger *slog.Logger
}

// NewGreetCommand creates a new greet command.
func NewGreetCommand(logger *slog.Logger) *GreetCommand {
	return &GreetCommand{logger: logger}
}

// GreetRequest contains the parameters for the greet command.
type GreetRequest struct {
	Name string
}

// Execute runs the greet command.
func (c *GreetCommand) Execute(ctx context.Context, req GreetRequest) string {
	c.logger.DebugContext(ctx, "Greeting", "name", req.Name)
	return fmt.Sprintf("Hello, %s! You've been greeted from Go!", req.Name)
}

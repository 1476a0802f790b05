package cli

import (
	"context"
	"strings"
)

// AddCommand creates a task from its arguments joined by spaces.
type AddCommand struct {
	app *App
}

// NewAddCommand creates a new add command handler
func NewAddCommand(app *App) *AddCommand {
	return &AddCommand{app: app}
}

// Execute runs the add command
func (c *AddCommand) Execute(ctx context.Context, args []string) error {
	out, err := c.app.tasks.RequestCreate(ctx, strings.Join(args, " "))
	if err != nil {
		return c.app.errors.Handle("add task", err)
	}
	return c.app.errors.HandleSimple(c.app.report(out))
}

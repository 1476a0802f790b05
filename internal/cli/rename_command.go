package cli

import (
	"context"
	"strings"

	"tasklist/internal/errors"
)

// RenameCommand renames the task at a list position.
type RenameCommand struct {
	app *App
}

// NewRenameCommand creates a new rename command handler
func NewRenameCommand(app *App) *RenameCommand {
	return &RenameCommand{app: app}
}

// Execute runs the rename command: rename <position> <name...>
func (c *RenameCommand) Execute(ctx context.Context, args []string) error {
	if len(args) < 2 {
		return c.app.errors.HandleSimple(errors.NewInvalidInputError("arguments", "usage: rename <position> <name>"))
	}

	task, err := c.app.selectPosition(args[0])
	if err != nil {
		return c.app.errors.Handle("rename task", err)
	}

	out, err := c.app.tasks.RequestUpdate(ctx, task, strings.Join(args[1:], " "))
	if err != nil {
		return c.app.errors.Handle("rename task", err)
	}
	return c.app.errors.HandleSimple(c.app.report(out))
}

package cli

import (
	"context"
	"fmt"
)

// DeleteCommand removes the task at a list position after confirmation.
type DeleteCommand struct {
	app   *App
	force bool
}

// NewDeleteCommand creates a new delete command handler. force skips the
// confirmation prompt.
func NewDeleteCommand(app *App, force bool) *DeleteCommand {
	return &DeleteCommand{app: app, force: force}
}

// Execute runs the delete command: delete <position>
func (c *DeleteCommand) Execute(ctx context.Context, args []string) error {
	task, err := c.app.selectPosition(args[0])
	if err != nil {
		return c.app.errors.Handle("delete task", err)
	}

	ok, err := c.app.confirmed(c.force, fmt.Sprintf("Delete %q?", task.Name))
	if err != nil || !ok {
		return err
	}

	out, err := c.app.tasks.RequestDelete(ctx, task)
	if err != nil {
		return c.app.errors.Handle("delete task", err)
	}
	return c.app.errors.HandleSimple(c.app.report(out))
}

package cli

import (
	"context"
	"fmt"
)

// ResetCommand drops and recreates the task table.
type ResetCommand struct {
	app   *App
	force bool
}

// NewResetCommand creates a new reset command handler
func NewResetCommand(app *App, force bool) *ResetCommand {
	return &ResetCommand{app: app, force: force}
}

// Execute runs the reset command
func (c *ResetCommand) Execute(ctx context.Context, args []string) error {
	count := len(c.app.tasks.Names())
	title := fmt.Sprintf("Delete all %d tasks and recreate the database?", count)
	ok, err := c.app.confirmed(c.force, title)
	if err != nil || !ok {
		return err
	}

	if err := c.app.repo.Reset(ctx); err != nil {
		return c.app.errors.Handle("reset task list", err)
	}
	if _, err := c.app.tasks.Refresh(ctx); err != nil {
		return c.app.errors.Handle("reset task list", err)
	}

	_, err = fmt.Fprintln(c.app.out, c.app.styles.success.Render(fmt.Sprintf("Removed %d tasks.", count)))
	return err
}

package cli

import (
	"context"
	"fmt"
)

// InfoCommand shows where the tasks live and the schema they use.
type InfoCommand struct {
	app *App
}

// NewInfoCommand creates a new info command handler
func NewInfoCommand(app *App) *InfoCommand {
	return &InfoCommand{app: app}
}

// Execute runs the info command
func (c *InfoCommand) Execute(ctx context.Context, args []string) error {
	version, err := c.app.repo.SchemaVersion(ctx)
	if err != nil {
		return c.app.errors.Handle("read schema version", err)
	}

	label := c.app.styles.muted.Render
	fmt.Fprintf(c.app.out, "%s %s\n", label("Database:"), c.app.config.GetDatabasePath())
	fmt.Fprintf(c.app.out, "%s %d\n", label("Schema version:"), version)
	_, err = fmt.Fprintf(c.app.out, "%s %d\n", label("Tasks:"), len(c.app.tasks.Names()))
	return err
}

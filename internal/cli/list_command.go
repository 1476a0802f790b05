package cli

import (
	"context"
	"fmt"
)

// ListCommand prints the tasks with the positions other commands accept.
type ListCommand struct {
	app *App
}

// NewListCommand creates a new list command handler
func NewListCommand(app *App) *ListCommand {
	return &ListCommand{app: app}
}

// Execute runs the list command
func (c *ListCommand) Execute(ctx context.Context, args []string) error {
	names := c.app.tasks.Names()
	if len(names) == 0 {
		_, err := fmt.Fprintln(c.app.out, c.app.styles.muted.Render("No tasks."))
		return err
	}

	fmt.Fprintln(c.app.out, c.app.styles.title.Render(c.app.config.Display.Title))
	for i, name := range names {
		pos := c.app.styles.position.Render(fmt.Sprintf("%d.", i+1))
		if _, err := fmt.Fprintf(c.app.out, "%s %s\n", pos, name); err != nil {
			return err
		}
	}
	return nil
}

package tui

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	"tasklist/internal/services"
)

// Run shows the interactive list until the user quits. A storage failure
// during the session ends it and is returned.
func Run(ctx context.Context, tasks services.TaskList, title string) error {
	p := tea.NewProgram(NewModel(ctx, tasks, title), tea.WithContext(ctx), tea.WithAltScreen())
	final, err := p.Run()
	if err != nil {
		return fmt.Errorf("running task list: %w", err)
	}
	if m, ok := final.(*Model); ok {
		return m.Err()
	}
	return nil
}

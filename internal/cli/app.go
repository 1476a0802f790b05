package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"tasklist/internal/config"
	"tasklist/internal/domain"
	"tasklist/internal/errors"
	"tasklist/internal/repository/sqlite"
	"tasklist/internal/services"
)

// Command is one CLI action run against an opened App.
type Command interface {
	Execute(ctx context.Context, args []string) error
}

// Confirmer asks a yes/no question before a destructive action.
type Confirmer func(title string) (bool, error)

// UIRunner runs the interactive list.
type UIRunner func(ctx context.Context, tasks services.TaskList, title string) error

// RepositoryFactory opens the task store described by cfg.
type RepositoryFactory func(cfg *config.Config) (sqlite.Repository, error)

// huhConfirm asks on the terminal.
func huhConfirm(title string) (bool, error) {
	var ok bool
	if err := huh.NewConfirm().Title(title).Value(&ok).Run(); err != nil {
		return false, err
	}
	return ok, nil
}

// App is the state shared by the commands of one invocation.
type App struct {
	tasks   services.TaskList
	repo    sqlite.Repository
	config  *config.Config
	out     io.Writer
	confirm Confirmer
	errors  *ErrorHandler
	styles  outputStyles
}

type outputStyles struct {
	title    lipgloss.Style
	position lipgloss.Style
	success  lipgloss.Style
	failure  lipgloss.Style
	muted    lipgloss.Style
}

// NewApp wires a controller over repo. Output is styled for out: plain text
// when out is not a terminal.
func NewApp(repo sqlite.Repository, cfg *config.Config, out io.Writer, confirm Confirmer) *App {
	r := lipgloss.NewRenderer(out)
	return &App{
		tasks:   services.NewListController(repo),
		repo:    repo,
		config:  cfg,
		out:     out,
		confirm: confirm,
		errors:  NewErrorHandler(),
		styles: outputStyles{
			title:    r.NewStyle().Bold(true),
			position: r.NewStyle().Foreground(lipgloss.Color("241")),
			success:  r.NewStyle().Foreground(lipgloss.Color("70")),
			failure:  r.NewStyle().Foreground(lipgloss.Color("9")),
			muted:    r.NewStyle().Foreground(lipgloss.Color("245")),
		},
	}
}

// selectPosition resolves a 1-based position typed by the user.
func (a *App) selectPosition(arg string) (domain.Task, error) {
	n, err := strconv.Atoi(strings.TrimSpace(arg))
	if err != nil {
		return domain.Task{}, errors.NewInvalidInputError("position", fmt.Sprintf("%q must be a number", arg))
	}
	return a.tasks.SelectByPosition(n - 1)
}

// report prints a successful outcome, or turns a failed one into an error so
// the process exits non-zero.
func (a *App) report(out services.Outcome) error {
	if !out.Success {
		msg := out.Message
		if msg == "" {
			msg = services.MessageNameRequired
		}
		return errors.NewValidationError(msg, nil)
	}
	_, err := io.WriteString(a.out, a.styles.success.Render(out.Message)+"\n")
	return err
}

// confirmed asks unless force is set. A refusal is reported as cancelled.
func (a *App) confirmed(force bool, title string) (bool, error) {
	if force {
		return true, nil
	}
	ok, err := a.confirm(title)
	if err != nil {
		return false, err
	}
	if !ok {
		_, err := io.WriteString(a.out, a.styles.muted.Render("Cancelled.")+"\n")
		return false, err
	}
	return true, nil
}

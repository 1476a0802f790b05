package services

import (
	"context"

	"tasklist/internal/domain"
	"tasklist/internal/validation"
)

// Messages reported in Outcome.Message.
const (
	MessageTaskAdded    = "Task added!"
	MessageTaskUpdated  = "Task updated!"
	MessageTaskDeleted  = "Task deleted!"
	MessageDeleteFailed = "Error deleting task."
	MessageNameRequired = validation.EmptyNameMessage
)

// Outcome is the result of a user request, shown as a one-line status. It
// carries no error: storage failures are returned separately.
type Outcome struct {
	Success bool
	Message string
	Task    domain.Task
}

// TaskList is what the front ends drive. Positions refer to the snapshot of
// the most recent Refresh.
type TaskList interface {
	// Refresh reloads the whole list from the store and returns it.
	Refresh(ctx context.Context) ([]domain.Task, error)

	Tasks() []domain.Task
	Names() []string

	// SelectByPosition returns the task at the zero-based index.
	SelectByPosition(index int) (domain.Task, error)

	RequestCreate(ctx context.Context, name string) (Outcome, error)
	RequestUpdate(ctx context.Context, task domain.Task, newName string) (Outcome, error)
	RequestDelete(ctx context.Context, task domain.Task) (Outcome, error)
}

var _ TaskList = (*ListController)(nil)

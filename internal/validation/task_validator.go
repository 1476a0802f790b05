package validation

import (
	"strings"
)

// EmptyNameMessage is shown when a rename is rejected for an empty name.
const EmptyNameMessage = "Name cannot be empty."

// TaskValidator checks task names before they reach the store. The store
// itself never re-validates.
type TaskValidator struct{}

// NewTaskValidator creates a new task validator
func NewTaskValidator() *TaskValidator {
	return &TaskValidator{}
}

// ValidateTaskName trims name and rejects it when nothing is left. It returns
// the trimmed name that should be persisted.
func (tv *TaskValidator) ValidateTaskName(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	verr := NewValidationError()
	if trimmed == "" {
		verr.AddRequiredError("name", EmptyNameMessage)
	}
	if verr.HasErrors() {
		return "", verr
	}
	return trimmed, nil
}

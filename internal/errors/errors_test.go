package errors

import (
	"errors"
	"fmt"
	"testing"
)

func TestNewDatabaseError(t *testing.T) {
	cause := errors.New("no such table: tasks")
	err := NewDatabaseError("query tasks", cause)

	if err.Code != "DATABASE_ERROR" {
		t.Errorf("code = %q", err.Code)
	}
	if err.Op != "query tasks" {
		t.Errorf("op = %q", err.Op)
	}
	if err.Cause != cause {
		t.Errorf("cause = %v, want %v", err.Cause, cause)
	}
}

func TestNewInvalidInputError(t *testing.T) {
	err := NewInvalidInputError("position", "out of range")

	if err.Message != "invalid input for position: out of range" {
		t.Errorf("message = %q", err.Message)
	}
	if err.Code != "INVALID_INPUT" {
		t.Errorf("code = %q", err.Code)
	}
}

func TestAsAppError(t *testing.T) {
	appErr := NewValidationError("name is required", nil)
	wrapped := fmt.Errorf("create task: %w", appErr)

	got, ok := AsAppError(wrapped)
	if !ok || got != appErr {
		t.Errorf("AsAppError should find the AppError through %%w wrapping")
	}

	got, ok = AsAppError(errors.New("plain"))
	if ok || got != nil {
		t.Errorf("AsAppError should return nil, false for a plain error")
	}

	if !IsErrorType(wrapped, ErrorTypeValidation) {
		t.Errorf("IsErrorType should match through wrapping")
	}
	if IsErrorType(wrapped, ErrorTypeDatabase) {
		t.Errorf("IsErrorType should not match a different type")
	}
}

func TestGetUserMessage(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected string
	}{
		{"validation", NewValidationError("Name cannot be empty.", nil), "Name cannot be empty."},
		{"invalid input", NewInvalidInputError("position", "out of range"), "invalid input for position: out of range"},
		{"database", NewDatabaseError("insert task", errors.New("disk full")), "A database error occurred."},
		{"unknown type", &AppError{Type: ErrorType(99)}, "An unexpected error occurred."},
		{"plain", errors.New("boom"), "boom"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetUserMessage(tt.err); got != tt.expected {
				t.Errorf("GetUserMessage() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestGetErrorCode(t *testing.T) {
	if got := GetErrorCode(NewInvalidInputError("position", "negative")); got != "INVALID_INPUT" {
		t.Errorf("GetErrorCode() = %q", got)
	}
	if got := GetErrorCode(errors.New("plain")); got != "UNKNOWN_ERROR" {
		t.Errorf("GetErrorCode() = %q", got)
	}
}

func TestShouldLogError(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		expected bool
	}{
		{"validation", NewValidationError("bad", nil), false},
		{"invalid input", NewInvalidInputError("position", "negative"), false},
		{"database", NewDatabaseError("delete task", errors.New("locked")), true},
		{"plain", errors.New("boom"), true},
		{"wrapped validation", fmt.Errorf("add: %w", NewValidationError("bad", nil)), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := ShouldLogError(tt.err); got != tt.expected {
				t.Errorf("ShouldLogError() = %v, want %v", got, tt.expected)
			}
		})
	}
}

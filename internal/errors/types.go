// Package errors defines the error taxonomy shared by the task store, the list
// controller and the front ends.
package errors

import (
	"fmt"
	"strings"
)

// ErrorType is the category an error belongs to. It decides whether the error
// is shown to the user as-is or treated as a system failure.
type ErrorType int

const (
	ErrorTypeValidation ErrorType = iota
	ErrorTypeDatabase
	ErrorTypeInvalidInput
)

var errorTypeNames = map[ErrorType]string{
	ErrorTypeValidation:   "validation",
	ErrorTypeDatabase:     "database",
	ErrorTypeInvalidInput: "invalid_input",
}

func (et ErrorType) String() string {
	if name, ok := errorTypeNames[et]; ok {
		return name
	}
	return "unknown"
}

// AppError is a structured application error.
type AppError struct {
	Type    ErrorType
	Op      string
	Message string
	Code    string
	Cause   error
}

func (e *AppError) Error() string {
	var b strings.Builder
	b.WriteString(e.Type.String())
	if e.Op != "" {
		b.WriteString(" [")
		b.WriteString(e.Op)
		b.WriteString("]")
	}
	b.WriteString(": ")
	b.WriteString(e.Message)
	if e.Cause != nil {
		fmt.Fprintf(&b, " (caused by: %v)", e.Cause)
	}
	return b.String()
}

func (e *AppError) Unwrap() error {
	return e.Cause
}

// Is matches another AppError with the same type and code, so sentinel
// comparisons work through errors.Is.
func (e *AppError) Is(target error) bool {
	appErr, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == appErr.Type && e.Code == appErr.Code
}

// IsType checks if this error is of the specified type
func (e *AppError) IsType(errorType ErrorType) bool {
	return e.Type == errorType
}

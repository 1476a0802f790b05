package cli

import (
	stderrors "errors"
	"fmt"

	"tasklist/internal/errors"
	"tasklist/internal/logging"
	"tasklist/internal/validation"
)

// ErrorHandler turns errors from the task list into messages for the
// terminal and logs the ones that are system failures.
type ErrorHandler struct {
	log *logging.Logger
}

// NewErrorHandler creates a new error handler
func NewErrorHandler() *ErrorHandler {
	return &ErrorHandler{log: logging.Default().WithComponent("cli")}
}

// Handle returns "failed to <operation>: <user message>". A nil err stays nil.
func (eh *ErrorHandler) Handle(operation string, err error) error {
	if err == nil {
		return nil
	}
	if eh.shouldLog(err) {
		eh.log.Errorf("%s [%s]: %v", operation, errors.GetErrorCode(err), err)
	}
	return fmt.Errorf("failed to %s: %s", operation, eh.message(err))
}

// HandleSimple is Handle without the operation prefix.
func (eh *ErrorHandler) HandleSimple(err error) error {
	if err == nil {
		return nil
	}
	if eh.shouldLog(err) {
		eh.log.Errorf("[%s] %v", errors.GetErrorCode(err), err)
	}
	return fmt.Errorf("%s", eh.message(err))
}

// shouldLog is false for mistakes the user can fix from the message alone.
func (eh *ErrorHandler) shouldLog(err error) bool {
	return errors.ShouldLogError(err) && !validation.IsValidationError(err)
}

func (eh *ErrorHandler) message(err error) string {
	var validationErr *validation.ValidationError
	if stderrors.As(err, &validationErr) {
		return validationErr.GetUserFriendlyMessage()
	}
	return errors.GetUserMessage(err)
}

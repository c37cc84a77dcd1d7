package services

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/ameyzing09/rtr-api-sub000/ent"
)

// Code classifies a service error. Handlers map codes to HTTP statuses;
// callers test them with errors.Is against the sentinel values below.
type Code string

const (
	CodeNotFound             Code = "NOT_FOUND"
	CodeTenantMismatch       Code = "TENANT_MISMATCH"
	CodeForbidden            Code = "FORBIDDEN"
	CodeInvalidAction        Code = "INVALID_ACTION"
	CodeValidation           Code = "VALIDATION"
	CodeFeedbackRequired     Code = "FEEDBACK_REQUIRED"
	CodeSignalsNotMet        Code = "SIGNALS_NOT_MET"
	CodeEvaluationIncomplete Code = "EVALUATION_INCOMPLETE"
	CodeInvalidStatus        Code = "INVALID_STATUS"
	CodeTerminalStatus       Code = "TERMINAL_STATUS"
	CodeConflict             Code = "CONFLICT"
)

// Error is the service-layer error. Two errors match under errors.Is when
// their codes are equal, so sentinel comparisons work regardless of message.
type Error struct {
	Code    Code
	Message string
	Details map[string]any
	Err     error
}

func (e *Error) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return string(e.Code)
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is matches any *Error carrying the same code.
func (e *Error) Is(target error) bool {
	var t *Error
	if !errors.As(target, &t) {
		return false
	}
	return t.Code == e.Code
}

// Sentinel errors for errors.Is checks. Services return richer instances
// built by NewError; these exist only as comparison targets.
var (
	ErrNotFound             = &Error{Code: CodeNotFound, Message: "entity not found"}
	ErrTenantMismatch       = &Error{Code: CodeTenantMismatch, Message: "entity belongs to another tenant"}
	ErrForbidden            = &Error{Code: CodeForbidden, Message: "capability not granted"}
	ErrInvalidAction        = &Error{Code: CodeInvalidAction, Message: "action not available"}
	ErrValidation           = &Error{Code: CodeValidation, Message: "invalid input"}
	ErrFeedbackRequired     = &Error{Code: CodeFeedbackRequired, Message: "feedback required"}
	ErrSignalsNotMet        = &Error{Code: CodeSignalsNotMet, Message: "signal conditions not met"}
	ErrEvaluationIncomplete = &Error{Code: CodeEvaluationIncomplete, Message: "evaluation incomplete"}
	ErrInvalidStatus        = &Error{Code: CodeInvalidStatus, Message: "invalid status"}
	ErrTerminalStatus       = &Error{Code: CodeTerminalStatus, Message: "application is in a terminal status"}
	ErrConflict             = &Error{Code: CodeConflict, Message: "conflicting concurrent update"}
)

// NewError builds a service error with a formatted message.
func NewError(code Code, format string, args ...any) *Error {
	return &Error{
		Code:    code,
		Message: fmt.Sprintf(format, args...),
	}
}

// WithDetails attaches structured detail to the error and returns it.
func (e *Error) WithDetails(details map[string]any) *Error {
	e.Details = details
	return e
}

// WithCause records the underlying error and returns the service error.
func (e *Error) WithCause(err error) *Error {
	e.Err = err
	return e
}

// NewValidationError creates a field-scoped validation error.
func NewValidationError(field, message string) error {
	return &Error{
		Code:    CodeValidation,
		Message: fmt.Sprintf("validation error on field '%s': %s", field, message),
		Details: map[string]any{"field": field},
	}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return errors.Is(err, ErrValidation)
}

// GetCode extracts the service error code, or "" for unclassified errors.
func GetCode(err error) Code {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ""
}

// IsSerializationFailure reports whether err is a PostgreSQL serialization
// failure (40001) or deadlock (40P01). Transactions hitting either can be
// retried; the engine surfaces them as CONFLICT instead.
func IsSerializationFailure(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "40001" || pgErr.Code == "40P01"
	}
	return false
}

// FromDB converts storage errors into service errors. Unclassified errors
// pass through unchanged for the caller to wrap with context.
func FromDB(err error) error {
	switch {
	case err == nil:
		return nil
	case ent.IsNotFound(err):
		return NewError(CodeNotFound, "entity not found").WithCause(err)
	case IsSerializationFailure(err):
		return NewError(CodeConflict, "conflicting concurrent update, retry the request").WithCause(err)
	case ent.IsConstraintError(err):
		return NewError(CodeConflict, "constraint violation").WithCause(err)
	default:
		return err
	}
}

package errors

import (
	"context"
	stderrors "errors"
	"fmt"
	"strings"
)

// Fixed messages carried by wrapped errors
const (
	MessageFetchFailed    = "An Error Occurred"
	MessageUnexpected     = "Unexpected Result"
	MessageTaskFailed     = "task failed"
	MessageNotACollection = "input must be an array"
)

// ErrNotCollection is matched by errors.Is for any ValidationError raised
// because a non-collection value was handed to the flattener.
var ErrNotCollection = stderrors.New(MessageNotACollection)

// ValidationError represents invalid caller input
type ValidationError struct {
	Parameter string `json:"parameter"`
	Message   string `json:"message"`
	Cause     error  `json:"-"`
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error for parameter '%s': %s", e.Parameter, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return e.Cause
}

// FetchError carries both the underlying failure and a human-readable message
type FetchError struct {
	Message string `json:"message"`
	Cause   error  `json:"cause,omitempty"`
}

func (e *FetchError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Cause)
	}
	return e.Message
}

func (e *FetchError) Unwrap() error {
	return e.Cause
}

// AggregateError is returned when any task in a concurrent set fails
type AggregateError struct {
	Index int   `json:"index"`
	Cause error `json:"cause,omitempty"`
}

func (e *AggregateError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("%s: %v", MessageTaskFailed, e.Cause)
	}
	return fmt.Sprintf("%s (index %d): %v", MessageTaskFailed, e.Index, e.Cause)
}

func (e *AggregateError) Unwrap() error {
	return e.Cause
}

// NewValidationError creates a new validation error for the specified parameter
func NewValidationError(parameter, message string) *ValidationError {
	return &ValidationError{
		Parameter: parameter,
		Message:   message,
	}
}

// NewNotCollectionError reports a non-collection value handed to the flattener
func NewNotCollectionError(parameter string) *ValidationError {
	return &ValidationError{
		Parameter: parameter,
		Message:   MessageNotACollection,
		Cause:     ErrNotCollection,
	}
}

// NewFetchError wraps a network failure with the standard fetch message
func NewFetchError(cause error) *FetchError {
	return &FetchError{Message: MessageFetchFailed, Cause: cause}
}

// NewFetchErrorWithMessage wraps a network failure with a custom message
func NewFetchErrorWithMessage(message string, cause error) *FetchError {
	return &FetchError{Message: message, Cause: cause}
}

// NewAggregateError wraps the failure of the task at index. Use -1 when the
// failure is not attributable to a single task.
func NewAggregateError(index int, cause error) *AggregateError {
	return &AggregateError{Index: index, Cause: cause}
}

// Error classification functions

// IsValidationError checks if the error is a validation error
func IsValidationError(err error) bool {
	var target *ValidationError
	return stderrors.As(err, &target)
}

// IsFetchError checks if the error came from the fetcher
func IsFetchError(err error) bool {
	var target *FetchError
	return stderrors.As(err, &target)
}

// IsAggregateError checks if the error came from the task aggregator
func IsAggregateError(err error) bool {
	var target *AggregateError
	return stderrors.As(err, &target)
}

// IsCancellationError checks if the error represents a cancelled or expired context
func IsCancellationError(err error) bool {
	if err == nil {
		return false
	}
	if stderrors.Is(err, context.Canceled) || stderrors.Is(err, context.DeadlineExceeded) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "context canceled") || strings.Contains(msg, "deadline exceeded")
}

// GetErrorCategory returns a category string for error classification.
// Cancellation is checked first because it can hide inside either wrapper.
func GetErrorCategory(err error) string {
	if err == nil {
		return "none"
	}

	switch {
	case IsCancellationError(err):
		return "cancellation"
	case IsValidationError(err):
		return "validation"
	case IsFetchError(err):
		return "fetch"
	case IsAggregateError(err):
		return "task"
	default:
		return "general"
	}
}

// WrapWithContext adds operation context to an error
func WrapWithContext(operation string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", operation, err)
}

package cli

import (
	"fmt"
	"strings"

	"helperkit/internal/errors"
)

type ErrorType int

const (
	ErrorTypeConfig ErrorType = iota
	ErrorTypeNetwork
	ErrorTypeValidation
	ErrorTypeGeneral
)

// CLIError decorates a failure with remediation hints for the terminal
type CLIError struct {
	Type        ErrorType
	Message     string
	Cause       error
	Suggestions []string
	RelatedCmds []string
}

func (e *CLIError) Error() string {
	if e == nil {
		return "Error: unknown error (nil CLIError)"
	}

	var parts []string

	switch e.Type {
	case ErrorTypeConfig:
		parts = append(parts, "Configuration Error:")
	case ErrorTypeNetwork:
		parts = append(parts, "Network Error:")
	case ErrorTypeValidation:
		parts = append(parts, "Validation Error:")
	default:
		parts = append(parts, "Error:")
	}

	message := e.Message
	if message == "" {
		message = "unknown error"
	}
	parts = append(parts, message)

	if e.Cause != nil {
		parts = append(parts, fmt.Sprintf("\n   Cause: %v", e.Cause))
	}

	if len(e.Suggestions) > 0 {
		parts = append(parts, "\n\nTry these solutions:")
		for i, suggestion := range e.Suggestions {
			parts = append(parts, fmt.Sprintf("\n   %d. %s", i+1, suggestion))
		}
	}

	if len(e.RelatedCmds) > 0 {
		parts = append(parts, "\n\nRelated commands:")
		for _, cmd := range e.RelatedCmds {
			parts = append(parts, fmt.Sprintf("\n   %s %s", CLI_NAME, cmd))
		}
	}

	return strings.Join(parts, " ")
}

func (e *CLIError) Unwrap() error {
	return e.Cause
}

func NewConfigError(configPath string, cause error) *CLIError {
	return &CLIError{
		Type:    ErrorTypeConfig,
		Message: fmt.Sprintf("Failed to load configuration from %s", configPath),
		Cause:   cause,
		Suggestions: []string{
			fmt.Sprintf("Inspect the file: cat %s", configPath),
			fmt.Sprintf("Regenerate defaults: %s config init --force --config %s", CLI_NAME, configPath),
		},
		RelatedCmds: []string{
			"config init",
			"config show",
		},
	}
}

func NewNetworkError(message, endpoint string, cause error) *CLIError {
	return &CLIError{
		Type:    ErrorTypeNetwork,
		Message: message,
		Cause:   cause,
		Suggestions: []string{
			fmt.Sprintf("Check that %s is reachable: curl -sI %s", endpoint, endpoint),
			"Point at another endpoint with --endpoint or fetcher.endpoint in the config file",
			"Raise fetcher.timeout if the endpoint is slow",
		},
		RelatedCmds: []string{
			"config show",
		},
	}
}

func NewValidationError(message string, cause error, suggestions ...string) *CLIError {
	return &CLIError{
		Type:        ErrorTypeValidation,
		Message:     message,
		Cause:       cause,
		Suggestions: suggestions,
	}
}

// wrapCommandError attaches CLI context to domain errors. Errors that are
// already CLIErrors pass through.
func wrapCommandError(operation, endpoint string, err error) error {
	if err == nil {
		return nil
	}
	if _, ok := err.(*CLIError); ok {
		return err
	}

	switch errors.GetErrorCategory(err) {
	case "fetch", "cancellation":
		return NewNetworkError(fmt.Sprintf("%s failed", operation), endpoint, err)
	case "validation":
		return NewValidationError(fmt.Sprintf("%s rejected its input", operation), err)
	default:
		return &CLIError{Type: ErrorTypeGeneral, Message: fmt.Sprintf("%s failed", operation), Cause: err}
	}
}

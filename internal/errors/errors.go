package errors

import (
	"errors"
	"fmt"
	"time"
)

// Error types for the fuzzymatch system
type ErrorType string

const (
	// Configuration errors
	ErrorTypeConfig ErrorType = "config"

	// Lookup errors for named hooks
	ErrorTypeScorer ErrorType = "scorer"
	ErrorTypePolicy ErrorType = "policy"
)

var (
	// ErrUnknownScorer is returned when a scorer name is not registered
	ErrUnknownScorer = errors.New("unknown scorer")

	// ErrUnknownPolicy is returned when a dedupe policy name is not recognized
	ErrUnknownPolicy = errors.New("unknown dedupe policy")

	// ErrOutOfRange is returned when a numeric setting falls outside its bounds
	ErrOutOfRange = errors.New("value out of range")
)

// ConfigError represents a configuration error
type ConfigError struct {
	Type       ErrorType
	Field      string
	Value      string
	Underlying error
	Timestamp  time.Time
}

// NewConfigError creates a new config error
func NewConfigError(field, value string, err error) *ConfigError {
	return &ConfigError{
		Type:       ErrorTypeConfig,
		Field:      field,
		Value:      value,
		Underlying: err,
		Timestamp:  time.Now(),
	}
}

// Error implements the error interface
func (e *ConfigError) Error() string {
	if e.Value == "" {
		return fmt.Sprintf("config error for field %s: %v", e.Field, e.Underlying)
	}
	return fmt.Sprintf("config error for field %s (value %s): %v", e.Field, e.Value, e.Underlying)
}

// Unwrap returns the underlying error
func (e *ConfigError) Unwrap() error {
	return e.Underlying
}

// LookupError reports a named scorer or policy that could not be resolved
type LookupError struct {
	Type       ErrorType
	Name       string
	Underlying error
}

// NewScorerError creates a lookup error for an unregistered scorer name
func NewScorerError(name string) *LookupError {
	return &LookupError{Type: ErrorTypeScorer, Name: name, Underlying: ErrUnknownScorer}
}

// NewPolicyError creates a lookup error for an unrecognized dedupe policy
func NewPolicyError(name string) *LookupError {
	return &LookupError{Type: ErrorTypePolicy, Name: name, Underlying: ErrUnknownPolicy}
}

// Error implements the error interface
func (e *LookupError) Error() string {
	return fmt.Sprintf("%s lookup failed for %q: %v", e.Type, e.Name, e.Underlying)
}

// Unwrap returns the underlying error
func (e *LookupError) Unwrap() error {
	return e.Underlying
}

// MultiError represents multiple errors
type MultiError struct {
	Errors []error
}

// NewMultiError creates a new multi-error
func NewMultiError(errs []error) *MultiError {
	// Filter out nil errors
	filtered := make([]error, 0, len(errs))
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	return &MultiError{Errors: filtered}
}

// ErrorOrNil returns nil when no errors were collected
func (e *MultiError) ErrorOrNil() error {
	if e == nil || len(e.Errors) == 0 {
		return nil
	}
	return e
}

// Error implements the error interface
func (e *MultiError) Error() string {
	if len(e.Errors) == 0 {
		return "no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	return fmt.Sprintf("%d errors: %v", len(e.Errors), e.Errors)
}

// Unwrap returns all errors
func (e *MultiError) Unwrap() []error {
	return e.Errors
}

package errors

import (
	stdErrors "errors"
	"fmt"
)

// ErrMissingEntity is matched by errors.Is for configurations without an entity.
var ErrMissingEntity = stdErrors.New("missing entity")

// ConfigError reports a card configuration that cannot be used at all.
type ConfigError struct {
	Field   string
	Message string
	Err     error
}

// NewConfigError constructs a ConfigError.
func NewConfigError(field, message string, err error) error {
	return &ConfigError{Field: field, Message: message, Err: err}
}

// MissingEntity is the ConfigError returned when the entity field is absent or blank.
func MissingEntity() error {
	return NewConfigError("entity", ErrMissingEntity.Error(), ErrMissingEntity)
}

func (e *ConfigError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("config error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("config error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ConfigError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ParseError represents a YAML or JSON decoding failure with optional line metadata.
type ParseError struct {
	Path    string
	Line    int
	Message string
	Err     error
}

// NewParseError constructs a ParseError.
func NewParseError(path string, line int, err error) error {
	message := ""
	if err != nil {
		message = err.Error()
	}
	return &ParseError{Path: path, Line: line, Message: message, Err: err}
}

func (e *ParseError) Error() string {
	if e == nil {
		return ""
	}

	if e.Line > 0 {
		return fmt.Sprintf("parse error: %s:%d: %s", e.Path, e.Line, e.Message)
	}
	return fmt.Sprintf("parse error: %s: %s", e.Path, e.Message)
}

// Unwrap exposes the underlying error.
func (e *ParseError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// ValidationError is a lint finding. It never prevents a card from rendering.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// NewValidationError constructs a ValidationError.
func NewValidationError(field, message string, err error) error {
	return &ValidationError{Field: field, Message: message, Err: err}
}

func (e *ValidationError) Error() string {
	if e == nil {
		return ""
	}
	if e.Field != "" {
		return fmt.Sprintf("validation error: %s: %s", e.Field, e.Message)
	}
	return fmt.Sprintf("validation error: %s", e.Message)
}

// Unwrap exposes the underlying error.
func (e *ValidationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

// HostError wraps a failure reported by the host while performing an effect.
type HostError struct {
	Op  string
	Err error
}

// NewHostError constructs a HostError for the named host operation.
func NewHostError(op string, err error) error {
	return &HostError{Op: op, Err: err}
}

func (e *HostError) Error() string {
	if e == nil {
		return ""
	}
	if e.Op != "" {
		return fmt.Sprintf("host error [%s]: %v", e.Op, e.Err)
	}
	return fmt.Sprintf("host error: %v", e.Err)
}

// Unwrap exposes the underlying error.
func (e *HostError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}

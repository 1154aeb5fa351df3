package wraperr

import (
	"fmt"
	"strings"
)

// ErrorType defines the category of the error.
type ErrorType string

const (
	TypeType          ErrorType = "TypeError"
	TypeSerialization ErrorType = "SerializationError"
	TypeConfig        ErrorType = "ConfigError"
)

// WrapError is the interface for all errors returned by a box and its helpers.
type WrapError interface {
	error
	Type() ErrorType
}

// BaseError provides common fields for wrap errors.
type BaseError struct {
	Msg     string
	ErrType ErrorType
}

func (e *BaseError) Error() string {
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

func (e *BaseError) Type() ErrorType {
	return e.ErrType
}

// TypeError reports an operation the held value's type does not support,
// such as string conversion of null.
type TypeError struct {
	BaseError
	Tag string
}

func (e *TypeError) Error() string {
	if e.Tag != "" {
		return fmt.Sprintf("[%s] %s: %s", e.ErrType, e.Tag, e.Msg)
	}
	return fmt.Sprintf("[%s] %s", e.ErrType, e.Msg)
}

// SerializationError reports a value that could not be encoded or decoded.
type SerializationError struct {
	BaseError
	Format string
	Err    error
}

func (e *SerializationError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("[%s] %s: %s: %v", e.ErrType, e.Format, e.Msg, e.Err)
	}
	return fmt.Sprintf("[%s] %s: %s", e.ErrType, e.Format, e.Msg)
}

func (e *SerializationError) Unwrap() error {
	return e.Err
}

// ConfigError reports an unreadable or invalid configuration.
type ConfigError struct {
	BaseError
	Path string
	Err  error
}

func (e *ConfigError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("[%s] ", e.ErrType))
	if e.Path != "" {
		sb.WriteString(e.Path)
		sb.WriteString(": ")
	}
	sb.WriteString(e.Msg)
	if e.Err != nil {
		sb.WriteString(fmt.Sprintf(": %v", e.Err))
	}
	return sb.String()
}

func (e *ConfigError) Unwrap() error {
	return e.Err
}

// MultiError collects multiple wrap errors.
type MultiError struct {
	Errors []error
}

func (m *MultiError) Error() string {
	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("%d error(s) occurred:\n", len(m.Errors)))
	for _, err := range m.Errors {
		sb.WriteString(fmt.Sprintf("- %v\n", err))
	}
	return sb.String()
}

func (m *MultiError) Type() ErrorType {
	if len(m.Errors) > 0 {
		if we, ok := m.Errors[0].(WrapError); ok {
			return we.Type()
		}
	}
	return "MultiError"
}

// ErrOrNil returns nil when no errors were collected, the single error when
// exactly one was, and the MultiError otherwise.
func (m *MultiError) ErrOrNil() error {
	switch len(m.Errors) {
	case 0:
		return nil
	case 1:
		return m.Errors[0]
	}
	return m
}

// NewTypeError creates a new TypeError for a value tagged tag.
func NewTypeError(tag, msg string) *TypeError {
	return &TypeError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeType,
		},
		Tag: tag,
	}
}

// NewSerializationError creates a new SerializationError wrapping err.
func NewSerializationError(format, msg string, err error) *SerializationError {
	return &SerializationError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeSerialization,
		},
		Format: format,
		Err:    err,
	}
}

// NewConfigError creates a new ConfigError.
func NewConfigError(msg string) *ConfigError {
	return &ConfigError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeConfig,
		},
	}
}

// NewConfigErrorInFile creates a ConfigError for the file at path wrapping err.
func NewConfigErrorInFile(path, msg string, err error) *ConfigError {
	return &ConfigError{
		BaseError: BaseError{
			Msg:     msg,
			ErrType: TypeConfig,
		},
		Path: path,
		Err:  err,
	}
}

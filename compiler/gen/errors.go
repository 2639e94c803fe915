package gen

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure cases.
var (
	// ErrEmptyInput indicates the input contained no usable lines.
	ErrEmptyInput = errors.New("keystring: empty input, nothing to generate")
	// ErrInvalidIdentifier indicates a key segment that is not a legal identifier.
	ErrInvalidIdentifier = errors.New("keystring: invalid identifier")
	// ErrReservedName indicates a key segment that collides with the self-path name.
	ErrReservedName = errors.New("keystring: reserved name")
	// ErrConfig indicates a configuration error.
	ErrConfig = errors.New("keystring: invalid configuration")
)

// IdentifierError reports a key segment that is not a legal Go
// identifier. Path is the full dotted path of the offending segment.
type IdentifierError struct {
	Path string
}

// Error implements the error interface.
func (e *IdentifierError) Error() string {
	return fmt.Sprintf("keystring: invalid identifier %q: segment is not a legal Go identifier", e.Path)
}

// Is reports whether the target matches the sentinel error for IdentifierError.
func (e *IdentifierError) Is(target error) bool {
	return target == ErrInvalidIdentifier
}

// NewIdentifierError creates a new IdentifierError for the given full path.
func NewIdentifierError(path string) *IdentifierError {
	return &IdentifierError{Path: path}
}

// IsIdentifierError reports whether err is an IdentifierError.
func IsIdentifierError(err error) bool {
	var e *IdentifierError
	return errors.As(err, &e)
}

// ReservedNameError reports a key segment equal to the reserved
// self-path name emitted inside every grouping.
type ReservedNameError struct {
	Path string
}

// Error implements the error interface.
func (e *ReservedNameError) Error() string {
	return fmt.Sprintf("keystring: reserved name %q: segment %q is reserved for the self-path constant", e.Path, ReservedName)
}

// Is reports whether the target matches the sentinel error for ReservedNameError.
func (e *ReservedNameError) Is(target error) bool {
	return target == ErrReservedName
}

// NewReservedNameError creates a new ReservedNameError for the given full path.
func NewReservedNameError(path string) *ReservedNameError {
	return &ReservedNameError{Path: path}
}

// IsReservedNameError reports whether err is a ReservedNameError.
func IsReservedNameError(err error) bool {
	var e *ReservedNameError
	return errors.As(err, &e)
}

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("keystring: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("keystring: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// IsConfigError reports whether err is a ConfigError.
func IsConfigError(err error) bool {
	var e *ConfigError
	return errors.As(err, &e)
}

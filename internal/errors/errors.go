package errors

import (
	"errors"
	"fmt"
)

// Standard application errors
var (
	ErrMalformedXML    = errors.New("input is not well-formed XML")
	ErrFileNotFound    = errors.New("file not found")
	ErrNoInput         = errors.New("no input provided: please specify a file with -i or pipe XML data to stdin")
	ErrInvalidFilePath = errors.New("invalid file path")
)

// ErrorType categorizes errors
type ErrorType string

const (
	ErrorTypeInput      ErrorType = "input"
	ErrorTypeConversion ErrorType = "conversion"
	ErrorTypeNormalize  ErrorType = "normalize"
	ErrorTypeSerialize  ErrorType = "serialize"
	ErrorTypeOutput     ErrorType = "output"
	ErrorTypeUnknown    ErrorType = "unknown"
)

// AppError is an application-specific error with context
type AppError struct {
	Type    ErrorType
	Message string
	Err     error
}

// Error implements error interface
func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Type, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns wrapped error
func (e *AppError) Unwrap() error {
	return e.Err
}

// Is implements errors.Is for comparison
func (e *AppError) Is(target error) bool {
	t, ok := target.(*AppError)
	if !ok {
		return false
	}
	return e.Type == t.Type
}

// NewInputError creates a new error related to reading input
func NewInputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeInput,
		Message: message,
		Err:     err,
	}
}

// NewConversionError creates the single error kind a failed conversion
// surfaces: the XML decoder's message, passed through verbatim.
func NewConversionError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeConversion,
		Message: message,
		Err:     err,
	}
}

// NewNormalizeError creates a new error related to tree normalization
func NewNormalizeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeNormalize,
		Message: message,
		Err:     err,
	}
}

// NewSerializeError creates a new error related to JSON serialization
func NewSerializeError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeSerialize,
		Message: message,
		Err:     err,
	}
}

// NewOutputError creates a new error related to writing output
func NewOutputError(message string, err error) *AppError {
	return &AppError{
		Type:    ErrorTypeOutput,
		Message: message,
		Err:     err,
	}
}

// ConversionMessage returns the message shown beside the input area when a
// conversion fails: the underlying parser text when present, otherwise the
// wrapped message.
func ConversionMessage(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) && appErr.Type == ErrorTypeConversion {
		if appErr.Err != nil && !errors.Is(appErr.Err, ErrMalformedXML) {
			return appErr.Err.Error()
		}
		return appErr.Message
	}
	return err.Error()
}

// UserFriendlyError returns a user-friendly error message
func UserFriendlyError(err error) string {
	var appErr *AppError
	if errors.As(err, &appErr) {
		switch appErr.Type {
		case ErrorTypeInput:
			return fmt.Sprintf("Input error: %s", appErr.Message)
		case ErrorTypeConversion:
			return fmt.Sprintf("XML conversion error: %s", appErr.Message)
		case ErrorTypeNormalize:
			return fmt.Sprintf("Normalization error: %s", appErr.Message)
		case ErrorTypeSerialize:
			return fmt.Sprintf("JSON serialization error: %s", appErr.Message)
		case ErrorTypeOutput:
			return fmt.Sprintf("Output error: %s", appErr.Message)
		default:
			return fmt.Sprintf("Error: %s", appErr.Message)
		}
	}

	// Handle standard errors
	if errors.Is(err, ErrMalformedXML) {
		return "Error: The input is not well-formed XML. Please check the markup."
	}
	if errors.Is(err, ErrFileNotFound) {
		return "Error: The specified file could not be found. Please check the file path."
	}
	if errors.Is(err, ErrNoInput) {
		return "Error: No input provided. Please specify a file with -i or pipe XML data to stdin."
	}
	if errors.Is(err, ErrInvalidFilePath) {
		return "Error: Invalid file path. Please provide a valid file path."
	}

	// Generic error message for unknown errors
	return fmt.Sprintf("Error: %v", err)
}

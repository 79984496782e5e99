package domain

import (
	"errors"
	"fmt"
)

// Error kinds. Every *AppError unwraps to exactly one of these.
var (
	ErrResourceNotFound    = errors.New("resource not found")
	ErrReadFailed          = errors.New("read failed")
	ErrDecodingFailed      = errors.New("decoding failed")
	ErrEncodingFailed      = errors.New("encoding failed")
	ErrFileOperationFailed = errors.New("file operation failed")
	ErrInvalidData         = errors.New("invalid data")
)

// AppError is a classified catalog or wishlist failure.
type AppError struct {
	Code    string
	Message string
	Kind    error
	Err     error
}

func (e *AppError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Code, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func (e *AppError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func ResourceNotFound(name string) *AppError {
	return &AppError{
		Code:    "RESOURCE_NOT_FOUND",
		Message: fmt.Sprintf("could not find resource %q", name),
		Kind:    ErrResourceNotFound,
	}
}

func ReadFailed(name string, err error) *AppError {
	return &AppError{
		Code:    "READ_FAILED",
		Message: fmt.Sprintf("could not read resource %q", name),
		Kind:    ErrReadFailed,
		Err:     err,
	}
}

func DecodingFailed(err error) *AppError {
	return &AppError{
		Code:    "DECODING_FAILED",
		Message: "failed to decode data",
		Kind:    ErrDecodingFailed,
		Err:     err,
	}
}

func EncodingFailed(err error) *AppError {
	return &AppError{
		Code:    "ENCODING_FAILED",
		Message: "failed to encode data",
		Kind:    ErrEncodingFailed,
		Err:     err,
	}
}

func FileOperationFailed(err error) *AppError {
	return &AppError{
		Code:    "FILE_OPERATION_FAILED",
		Message: "storage operation failed",
		Kind:    ErrFileOperationFailed,
		Err:     err,
	}
}

func InvalidData(message string) *AppError {
	return &AppError{
		Code:    "INVALID_DATA",
		Message: message,
		Kind:    ErrInvalidData,
	}
}

// AsAppError returns err as an *AppError, classifying anything else as a
// storage failure.
func AsAppError(err error) *AppError {
	if err == nil {
		return nil
	}
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return FileOperationFailed(err)
}

// RecoverySuggestion returns a short hint a host UI can show next to err.
func RecoverySuggestion(err error) string {
	switch {
	case errors.Is(err, ErrResourceNotFound):
		return "Please check that the catalog is bundled with the application."
	case errors.Is(err, ErrDecodingFailed), errors.Is(err, ErrInvalidData):
		return "The data format may have changed. Please contact support."
	default:
		return "Please try again or contact support if the problem persists."
	}
}

// Package error defines domain-specific errors for the habit tracker.
package error

import "errors"

// Category domain errors.
var (
	// ErrCategoryNotFound is returned when a category is not found in the store.
	ErrCategoryNotFound = errors.New("category not found")

	// ErrCategoryTitleExists is returned when creating a category whose
	// title is already taken and strict (non-upsert) semantics were
	// requested.
	ErrCategoryTitleExists = errors.New("category title already exists")

	// ErrCategoryTitleEmpty is returned when a category title is empty.
	ErrCategoryTitleEmpty = errors.New("category title is empty")

	// ErrCategoryTitleTooLong is returned when a category title exceeds
	// the maximum length.
	ErrCategoryTitleTooLong = errors.New("category title too long")
)

// CategoryErrorCode defines error codes for category errors.
// Format: CAT-XXYYYY where XX is the error class and YYYY the specific error.
type CategoryErrorCode string

const (
	ErrCodeCategoryTitleEmpty   CategoryErrorCode = "CAT-010001"
	ErrCodeCategoryTitleTooLong CategoryErrorCode = "CAT-010002"
	ErrCodeCategoryNotFound     CategoryErrorCode = "CAT-010003"
	ErrCodeCategoryTitleExists  CategoryErrorCode = "CAT-010004"
)

// CategoryError represents a category error with code and message.
type CategoryError struct {
	Code    CategoryErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *CategoryError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *CategoryError) Unwrap() error {
	return e.Err
}

// NewCategoryError creates a new CategoryError with the given code and message.
func NewCategoryError(code CategoryErrorCode, message string, err error) *CategoryError {
	return &CategoryError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

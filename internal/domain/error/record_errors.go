package error

import "errors"

// Completion record domain errors.
var (
	// ErrFutureDate is returned when a completion record is dated after
	// today's calendar day. Future completions are always rejected,
	// never clamped.
	ErrFutureDate = errors.New("completion date is in the future")

	// ErrRecordAlreadyExists is returned when a completion record for
	// the same (tracker, day) pair already exists.
	ErrRecordAlreadyExists = errors.New("completion record already exists for this day")
)

// RecordErrorCode defines error codes for completion record errors.
// Format: REC-XXYYYY where XX is the error class and YYYY the specific error.
type RecordErrorCode string

const (
	ErrCodeFutureDate          RecordErrorCode = "REC-010001"
	ErrCodeRecordAlreadyExists RecordErrorCode = "REC-010002"
)

// RecordError represents a completion record error with code and message.
type RecordError struct {
	Code    RecordErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *RecordError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *RecordError) Unwrap() error {
	return e.Err
}

// NewRecordError creates a new RecordError with the given code and message.
func NewRecordError(code RecordErrorCode, message string, err error) *RecordError {
	return &RecordError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

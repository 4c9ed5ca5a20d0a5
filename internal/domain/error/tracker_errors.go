package error

import "errors"

// Tracker domain errors.
var (
	// ErrTrackerNotFound is returned when a tracker id does not exist in the store.
	ErrTrackerNotFound = errors.New("tracker not found")

	// ErrTrackerAlreadyExists is returned when inserting a tracker whose
	// id is already present.
	ErrTrackerAlreadyExists = errors.New("tracker already exists")

	// ErrTrackerTitleEmpty is returned when a tracker title is empty or whitespace.
	ErrTrackerTitleEmpty = errors.New("tracker title is empty")

	// ErrTrackerTitleTooLong is returned when a tracker title exceeds the
	// maximum length.
	ErrTrackerTitleTooLong = errors.New("tracker title too long")

	// ErrTrackerEmojiEmpty is returned when a tracker has no emoji.
	ErrTrackerEmojiEmpty = errors.New("tracker emoji is empty")

	// ErrTrackerScheduleEmpty is returned when committing a tracker with
	// no scheduled weekdays.
	ErrTrackerScheduleEmpty = errors.New("tracker schedule is empty")

	// ErrTrackerColorInvalid is returned when a tracker color string
	// cannot be decoded.
	ErrTrackerColorInvalid = errors.New("invalid tracker color")
)

// TrackerErrorCode defines error codes for tracker errors.
// Format: TRK-XXYYYY where XX is the error class and YYYY the specific error.
type TrackerErrorCode string

const (
	ErrCodeTrackerTitleEmpty    TrackerErrorCode = "TRK-010001"
	ErrCodeTrackerTitleTooLong  TrackerErrorCode = "TRK-010002"
	ErrCodeTrackerEmojiEmpty    TrackerErrorCode = "TRK-010003"
	ErrCodeTrackerScheduleEmpty TrackerErrorCode = "TRK-010004"
	ErrCodeTrackerColorInvalid  TrackerErrorCode = "TRK-010005"
	ErrCodeTrackerNotFound      TrackerErrorCode = "TRK-010006"
	ErrCodeTrackerAlreadyExists TrackerErrorCode = "TRK-010007"
)

// TrackerError represents a tracker error with code and message.
type TrackerError struct {
	Code    TrackerErrorCode
	Message string
	Err     error
}

// Error implements the error interface.
func (e *TrackerError) Error() string {
	if e.Err != nil {
		return e.Message + ": " + e.Err.Error()
	}
	return e.Message
}

// Unwrap returns the underlying error.
func (e *TrackerError) Unwrap() error {
	return e.Err
}

// NewTrackerError creates a new TrackerError with the given code and message.
func NewTrackerError(code TrackerErrorCode, message string, err error) *TrackerError {
	return &TrackerError{
		Code:    code,
		Message: message,
		Err:     err,
	}
}

package error

import "errors"

// ErrStorage is the generic sentinel for persistence-layer I/O
// failures. Repositories wrap database errors with it so callers can
// distinguish "the store is broken" from domain rejections. The store
// never retries on its own; retry policy belongs to the caller.
var ErrStorage = errors.New("storage failure")

// StorageError wraps an underlying database error.
type StorageError struct {
	Op  string
	Err error
}

// Error implements the error interface.
func (e *StorageError) Error() string {
	return "storage failure during " + e.Op + ": " + e.Err.Error()
}

// Unwrap lets errors.Is match both ErrStorage and the database error.
func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is reports whether target is the generic storage sentinel.
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

// NewStorageError wraps a database error with the failing operation name.
func NewStorageError(op string, err error) *StorageError {
	return &StorageError{Op: op, Err: err}
}

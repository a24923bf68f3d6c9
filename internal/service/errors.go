package service

import (
	"errors"
	"fmt"
)

var (
	// ErrAuthenticationRequired is returned when an operation needs a signed-in user
	ErrAuthenticationRequired = errors.New("authentication required")
	// ErrTargetNotFound is returned when the recipe being marked does not exist
	ErrTargetNotFound = errors.New("recipe not found")
	// ErrUniquenessConflict means a concurrent writer won the race for a (user, recipe) pair.
	// The toggle service recovers from it by retrying once.
	ErrUniquenessConflict = errors.New("uniqueness conflict")
	// ErrStorage matches every StorageError
	ErrStorage = errors.New("storage failure")

	ErrNotFound           = errors.New("not found")
	ErrForbidden          = errors.New("forbidden")
	ErrEmailTaken         = errors.New("email already registered")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrDuplicate          = errors.New("already exists")
	ErrInvalidToken       = errors.New("invalid token")
	ErrStorageDisabled    = errors.New("object storage is not configured")
)

// StorageError wraps a failure of the underlying database
type StorageError struct {
	Op  string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// Is lets errors.Is(err, ErrStorage) match any StorageError
func (e *StorageError) Is(target error) bool {
	return target == ErrStorage
}

func storageErr(op string, err error) error {
	return &StorageError{Op: op, Err: err}
}

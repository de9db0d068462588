package repository

import "errors"

var (
	// ErrNotFound is returned by repositories when a lookup matches no
	// row. Services translate it into their own typed errors.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateEmail is returned when an insert hits the unique
	// email constraint. The pre-insert existence check can lose a race,
	// so callers must handle it on Create as well.
	ErrDuplicateEmail = errors.New("email already registered")
)

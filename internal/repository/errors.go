package repository

import "errors"

var (
	// ErrNotFound is returned by updates that reference an unknown identifier.
	ErrNotFound = errors.New("record not found")
	// ErrDuplicate is returned when a write would break a uniqueness constraint.
	ErrDuplicate = errors.New("duplicate value")
)

package model

import (
	"errors"
	"fmt"
)

// Input fields that can fail validation
const (
	FieldTitle  = "title"
	FieldYear   = "year"
	FieldRating = "rating"
)

// Sentinel validation causes
var (
	ErrEmptyTitle = errors.New("empty title")
	ErrBadYear    = errors.New("bad year")
	ErrBadRating  = errors.New("rating out of range")
)

// ValidationError reports user input that cannot be turned into a movie
type ValidationError struct {
	Field string
	Err   error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v", e.Field, e.Err)
}

func (e *ValidationError) Unwrap() error {
	return e.Err
}

// PersistenceError reports a store operation that did not complete
type PersistenceError struct {
	Op  string // insert, delete, load, shutdown
	Err error
}

func (e *PersistenceError) Error() string {
	return fmt.Sprintf("%s failed: %v", e.Op, e.Err)
}

func (e *PersistenceError) Unwrap() error {
	return e.Err
}

package application

import (
	"errors"
	"fmt"
)

// Sentinel errors for common conditions
var (
	ErrNotFound         = errors.New("not found")
	ErrNothingSelected  = errors.New("nothing selected")
	ErrInvalidOperation = errors.New("invalid operation")
)

// ValidationError represents a validation failure with details
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// NotFoundError names the entity a stale or out-of-range reference pointed at
type NotFoundError struct {
	Kind  string
	Index int
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %d not found", e.Kind, e.Index)
}

func (e *NotFoundError) Is(target error) bool {
	return target == ErrNotFound
}

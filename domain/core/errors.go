package core

import (
	"errors"
	"fmt"
)

// Domain errors - centralized error definitions
var (
	// Not found errors
	ErrNotFound             = errors.New("resource not found")
	ErrDistributionNotFound = fmt.Errorf("%w: distribution", ErrNotFound)

	// Configuration errors, rejected when a table is built
	ErrInvalidStdev   = errors.New("stdev must be positive")
	ErrInvalidSupport = errors.New("support lower bound must be below upper bound")
	ErrInvalidPoints  = errors.New("table resolution must be at least one subinterval")
	ErrInvalidName    = errors.New("distribution name is invalid")
	ErrEmptySample    = errors.New("sample too small to fit distribution parameters")
)

// Error constructors with context
func NewNotFoundError(resource string, id string) error {
	return fmt.Errorf("%w: %s with id %s", ErrNotFound, resource, id)
}

func NewConfigError(field string, reason string) error {
	return fmt.Errorf("invalid configuration for %s: %s", field, reason)
}

// Error checking helpers
func IsNotFoundError(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsConfigError(err error) bool {
	return errors.Is(err, ErrInvalidStdev) ||
		errors.Is(err, ErrInvalidSupport) ||
		errors.Is(err, ErrInvalidPoints) ||
		errors.Is(err, ErrInvalidName)
}

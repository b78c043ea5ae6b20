package expense

import "errors"

var (
	// ErrNegativeAmount is returned when an expense amount is below zero.
	ErrNegativeAmount = errors.New("amount must be positive")
	// ErrEmptyDescription is returned when an expense has no description.
	ErrEmptyDescription = errors.New("description must not be empty")
	// ErrNotFound is returned when no expense matches the requested id.
	ErrNotFound = errors.New("expense not found")
	// ErrCorruptStore is returned by a FailOnCorrupt store when its content cannot be decoded.
	ErrCorruptStore = errors.New("corrupt expense store")
)

package calculator

import "errors"

var (
	// ErrValidation marks input the calculator refuses to compute with
	// (empty participant lists, bad EXACT declarations, malformed amounts).
	ErrValidation = errors.New("validation failed")

	// ErrNotFound marks a group or fact set that a FactSource could not produce.
	ErrNotFound = errors.New("not found")
)

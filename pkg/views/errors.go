package views

import "errors"

// Table construction and navigation errors.
var (
	ErrInvalidPattern = errors.New("invalid route pattern")
	ErrDuplicatePath  = errors.New("duplicate route path")
	ErrDuplicateName  = errors.New("duplicate route name")
	ErrEmptyName      = errors.New("route name required")
	ErrUnknownRoute   = errors.New("unknown route")
	ErrMissingParam   = errors.New("missing route parameter")
)

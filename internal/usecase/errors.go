package usecase

import "errors"

var (
	ErrInvalidInput          = errors.New("invalid input")
	ErrInputUnreadable       = errors.New("input unreadable")
	ErrDependencyUnavailable = errors.New("dependency unavailable")
)

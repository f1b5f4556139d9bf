package domain

import "errors"

// Domain errors (no external dependencies).
var (
	ErrNotFound         = errors.New("resource not found")
	ErrRosterNotFound   = errors.New("roster file not found")
	ErrEmptyRoster      = errors.New("roster has no employees")
	ErrEmployeeNotFound = errors.New("employee not found in roster")
	ErrUnauthorized     = errors.New("unauthorized")
	ErrInvalidInput     = errors.New("invalid input")
)

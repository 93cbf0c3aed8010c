package models

import (
	"errors"
)

// Document-related errors
var (
	// ErrProjectNotFound is returned when no project with the requested id exists
	ErrProjectNotFound = errors.New("project not found")
)

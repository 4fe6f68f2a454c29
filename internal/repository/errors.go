package repository

import "errors"

// Common repository errors
var (
	// ErrUserNotFound is returned when a user is not found
	ErrUserNotFound = errors.New("user not found")

	// ErrVertexNotFound is returned when a vertex is not found
	ErrVertexNotFound = errors.New("vertex not found")
)

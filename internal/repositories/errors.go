package repositories

import (
	"errors"
	"fmt"
)

// Common repository errors
var (
	// ErrNotFound is returned when no record exists at a key
	ErrNotFound = errors.New("record not found")

	// ErrInvalidFilter is returned when a list filter names an attribute without an index
	ErrInvalidFilter = errors.New("invalid filter")

	// ErrInvalidKey is returned when an empty or malformed key is provided
	ErrInvalidKey = errors.New("invalid key")

	// ErrConnection is returned when the record store cannot be reached or rejects a call
	ErrConnection = errors.New("record store error")

	// ErrDecode is returned when a stored item cannot be decoded into a record
	ErrDecode = errors.New("record decode error")
)

// RepositoryError represents a repository-specific error with additional context
type RepositoryError struct {
	Op      string // Operation that failed
	Entity  string // Table or index involved
	ID      string // Key or filter value (if applicable)
	Err     error  // Underlying error
	Message string // Human-readable message
}

// Error implements the error interface
func (e *RepositoryError) Error() string {
	if e.Message != "" {
		return e.Message
	}

	if e.ID != "" {
		return fmt.Sprintf("%s %s operation failed for key %s: %v", e.Entity, e.Op, e.ID, e.Err)
	}

	return fmt.Sprintf("%s %s operation failed: %v", e.Entity, e.Op, e.Err)
}

// Unwrap returns the underlying error
func (e *RepositoryError) Unwrap() error {
	return e.Err
}

// NewRepositoryError creates a new repository error
func NewRepositoryError(op, entity, id string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		ID:     id,
		Err:    err,
	}
}

// NotFoundError creates a "not found" repository error
func NotFoundError(entity, key string) *RepositoryError {
	return &RepositoryError{
		Op:      "get",
		Entity:  entity,
		ID:      key,
		Err:     ErrNotFound,
		Message: fmt.Sprintf("%s record with key %s not found", entity, key),
	}
}

// InvalidFilterError creates an "invalid filter" repository error
func InvalidFilterError(index, attribute string, cause error) *RepositoryError {
	return &RepositoryError{
		Op:      "query",
		Entity:  index,
		ID:      attribute,
		Err:     fmt.Errorf("%w: %v", ErrInvalidFilter, cause),
		Message: fmt.Sprintf("cannot filter by %s: index %s does not exist", attribute, index),
	}
}

// ConnectionError creates a "connection" repository error
func ConnectionError(op, entity string, err error) *RepositoryError {
	return &RepositoryError{
		Op:     op,
		Entity: entity,
		Err:    fmt.Errorf("%w: %v", ErrConnection, err),
	}
}

// IsNotFound checks if an error is a "not found" error
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// IsInvalidFilter checks if an error is an "invalid filter" error
func IsInvalidFilter(err error) bool {
	return errors.Is(err, ErrInvalidFilter)
}

// IsConnection checks if an error is a "connection" error
func IsConnection(err error) bool {
	return errors.Is(err, ErrConnection)
}

// IsDecode checks if an error is a "decode" error
func IsDecode(err error) bool {
	return errors.Is(err, ErrDecode)
}

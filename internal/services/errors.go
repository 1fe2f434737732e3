package services

import (
	"errors"
	"fmt"
)

// Fault kinds surfaced by the services layer
var (
	// ErrInvalidInput is a client input fault (missing id, bad filter, invalid payload)
	ErrInvalidInput = errors.New("invalid input")

	// ErrDataIntegrity means a stored record claims a kind but lacks required fields
	ErrDataIntegrity = errors.New("data integrity fault")

	// ErrDependency means an external service (store, classifier, mail) failed
	ErrDependency = errors.New("dependency fault")
)

// FaultError carries the failing operation and the underlying cause
type FaultError struct {
	Kind error
	Op   string
	Err  error
}

func (e *FaultError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("%s: %v", e.Op, e.Kind)
	}
	return fmt.Sprintf("%s: %v: %v", e.Op, e.Kind, e.Err)
}

// Unwrap exposes both the kind and the cause to errors.Is / errors.As
func (e *FaultError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func invalidInput(op string, err error) error {
	return &FaultError{Kind: ErrInvalidInput, Op: op, Err: err}
}

func dataIntegrity(op string, err error) error {
	return &FaultError{Kind: ErrDataIntegrity, Op: op, Err: err}
}

func dependency(op string, err error) error {
	return &FaultError{Kind: ErrDependency, Op: op, Err: err}
}

// IsInvalidInput checks if an error is a client input fault
func IsInvalidInput(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

// IsDataIntegrity checks if an error is a data integrity fault
func IsDataIntegrity(err error) bool {
	return errors.Is(err, ErrDataIntegrity)
}

// IsDependency checks if an error is a dependency fault
func IsDependency(err error) bool {
	return errors.Is(err, ErrDependency)
}

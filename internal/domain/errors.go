package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAuthentication = errors.New("authentication failed")
	ErrUnauthorized   = errors.New("unauthorized access")
	ErrTokenExpired   = errors.New("token has expired")
)

// Violation is one failed constraint on one input field.
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every violation found in an input.
type ValidationError struct {
	Violations []Violation
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Violations))
	for _, v := range e.Violations {
		parts = append(parts, v.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

func NewValidationError(v ...Violation) *ValidationError {
	return &ValidationError{Violations: v}
}

type EntityNotFoundError struct {
	Entity string
	ID     any
}

func (e *EntityNotFoundError) Error() string {
	return fmt.Sprintf("%s with id %v not found", e.Entity, e.ID)
}

func NotFound(entity string, id any) error {
	return &EntityNotFoundError{Entity: entity, ID: id}
}

// IsNotFound reports whether err (or anything it wraps) is an EntityNotFoundError.
func IsNotFound(err error) bool {
	var nf *EntityNotFoundError
	return errors.As(err, &nf)
}

type AlreadyExistsError struct {
	Entity string
	Field  string
	Value  string
}

func (e *AlreadyExistsError) Error() string {
	return fmt.Sprintf("%s with %s %s already exists", e.Entity, e.Field, e.Value)
}

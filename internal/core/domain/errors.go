package domain

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrInvalid     = errors.New("invalid input")
	ErrConflict    = errors.New("conflict")
	ErrUpstream    = errors.New("upstream failure")
	ErrUnavailable = errors.New("unavailable")
)

type FieldError struct {
	Field   string
	Message string
}

// A ValidationError collects field messages. It matches [ErrInvalid].
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{field, message})
}

// Err returns nil when no field was reported.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = fmt.Sprintf("%s %s", f.Field, f.Message)
	}
	return strings.Join(msgs, "; ")
}

func (e *ValidationError) Is(target error) bool {
	return target == ErrInvalid
}

// Invalid returns a single-field [ValidationError].
func Invalid(field, message string) error {
	var v ValidationError
	v.Add(field, message)
	return v.Err()
}

package domain

import (
	"errors"
	"maps"
	"slices"
	"strings"
)

// Sentinels checked with errors.Is. Adapters translate their own failures
// into these so that handlers can pick a status without knowing the backend.
var (
	ErrNotFound    = errors.New("not found")
	ErrValidation  = errors.New("validation error")
	ErrConflict    = errors.New("conflict")
	ErrForbidden   = errors.New("forbidden")
	ErrUnavailable = errors.New("unavailable")
)

// MsgRequired is the message for a blank required field.
const MsgRequired = "is required"

// ValidationError lists per-field failures, keyed by field name. It matches
// ErrValidation under errors.Is.
type ValidationError struct {
	Fields map[string]string
}

// Add records msg for field, replacing an earlier message for the same field.
func (e *ValidationError) Add(field, msg string) {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msg
}

// Err returns e when it holds at least one field and nil otherwise.
func (e *ValidationError) Err() error {
	if len(e.Fields) == 0 {
		return nil
	}
	return e
}

func (e *ValidationError) Error() string {
	var b strings.Builder
	b.WriteString(ErrValidation.Error())
	for i, field := range slices.Sorted(maps.Keys(e.Fields)) {
		if i == 0 {
			b.WriteString(": ")
		} else {
			b.WriteString("; ")
		}
		if field != "" {
			b.WriteString(field + ": ")
		}
		b.WriteString(e.Fields[field])
	}
	return b.String()
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

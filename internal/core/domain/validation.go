package domain

import (
	"fmt"
	"sort"
	"strings"
)

// ValidationError maps field names to translatable message keys. It is
// rendered as a 422 with per-field messages at the HTTP boundary.
type ValidationError struct {
	Fields map[string]string
}

func NewValidationError(field, msgKey string) *ValidationError {
	return &ValidationError{Fields: map[string]string{field: msgKey}}
}

func (e *ValidationError) Add(field, msgKey string) *ValidationError {
	if e.Fields == nil {
		e.Fields = make(map[string]string)
	}
	e.Fields[field] = msgKey
	return e
}

func (e *ValidationError) Empty() bool {
	return len(e.Fields) == 0
}

func (e *ValidationError) Error() string {
	fields := make([]string, 0, len(e.Fields))
	for field := range e.Fields {
		fields = append(fields, field)
	}
	sort.Strings(fields)
	return fmt.Sprintf("validation failed: %s", strings.Join(fields, ", "))
}

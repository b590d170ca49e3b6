// Package validation rejects structurally invalid requests before they reach
// the decision engine. It is the only place a request is refused outright;
// every failing field is reported, nothing is silently corrected.
package validation

import (
	"fmt"
	"strings"
)

// FieldError describes one failing field in a request.
type FieldError struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// ValidationError aggregates every field failure found in a request.
type ValidationError struct {
	Fields []FieldError `json:"fields"`
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Path, f.Message))
	}
	return "validation error: " + strings.Join(parts, "; ")
}

// collector accumulates field errors during a validation pass.
type collector struct {
	fields []FieldError
}

func (c *collector) add(path, format string, args ...any) {
	c.fields = append(c.fields, FieldError{
		Path:    path,
		Message: fmt.Sprintf(format, args...),
	})
}

// err returns the accumulated ValidationError, or nil if nothing failed.
func (c *collector) err() error {
	if len(c.fields) == 0 {
		return nil
	}
	return &ValidationError{Fields: c.fields}
}

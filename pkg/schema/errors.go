package schema

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports one front-matter field that failed coercion.
type ValidationError struct {
	Key    string // field name
	Reason string // why the value was rejected
	Value  any    // the offending value, nil when the field was absent
}

func (e *ValidationError) Error() string {
	if e.Value == nil {
		return fmt.Sprintf("field %q: %s", e.Key, e.Reason)
	}
	return fmt.Sprintf("field %q: %s (got %T)", e.Key, e.Reason, e.Value)
}

// AggregateError collects every field failure from one Coerce pass, so a
// single load surfaces all of an entry's problems at once instead of one
// per attempt.
type AggregateError struct {
	Errors []error
}

func (e *AggregateError) Error() string {
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	parts := make([]string, len(e.Errors))
	for i, err := range e.Errors {
		parts[i] = err.Error()
	}
	return fmt.Sprintf("%d invalid fields: %s", len(e.Errors), strings.Join(parts, "; "))
}

// Unwrap exposes the individual failures to errors.Is and errors.As.
func (e *AggregateError) Unwrap() []error { return e.Errors }

// ValidationErrors extracts the per-field failures from err, looking through
// any wrapping the caller added. Returns nil when err carries none.
func ValidationErrors(err error) []error {
	var aggr *AggregateError
	if errors.As(err, &aggr) {
		return aggr.Errors
	}
	return nil
}

package entities

import (
	"fmt"
	"strings"
)

// LoadError reports that an entity store could not be populated from its
// source. The store keeps whatever it held before the attempt.
type LoadError struct {
	Kind Kind
	Err  error
}

func (e *LoadError) Error() string {
	return fmt.Sprintf("load %s: %v", e.Kind.Plural(), e.Err)
}

func (e *LoadError) Unwrap() error {
	return e.Err
}

// ValidationError reports an input that violates a business rule. Nothing is
// mutated when one is returned.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports a lookup or update for an identifier that does not
// exist in the collection.
type NotFoundError struct {
	Kind Kind
	ID   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %q not found", e.Kind, e.ID)
}

func joinQuoted(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

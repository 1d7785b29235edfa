// ABOUTME: Error taxonomy for the store: schema failures, constraint hits, missing rows.
// ABOUTME: Schema errors are fatal at startup; constraint violations are recoverable.
package storage

import (
	"errors"
	"fmt"
	"strings"
)

// ErrNotFound reports that no row matched the lookup.
var ErrNotFound = errors.New("not found")

// SchemaError reports a SQL failure while applying migrations. Callers must
// treat it as fatal: the application never runs against a partially migrated
// store.
type SchemaError struct {
	Err error
}

func (e *SchemaError) Error() string {
	return fmt.Sprintf("schema migration failed: %v", e.Err)
}

func (e *SchemaError) Unwrap() error { return e.Err }

// ConstraintViolation reports an insert or update that broke a UNIQUE
// constraint, such as a duplicate metric date or a duplicate
// (metric, timeframe) trend key. It is recoverable: callers decide whether
// to update the existing row instead.
type ConstraintViolation struct {
	Constraint string
	Err        error
}

func (e *ConstraintViolation) Error() string {
	if e.Constraint != "" {
		return fmt.Sprintf("constraint violation on %s: %v", e.Constraint, e.Err)
	}
	return fmt.Sprintf("constraint violation: %v", e.Err)
}

func (e *ConstraintViolation) Unwrap() error { return e.Err }

// IsConstraintViolation reports whether err is a ConstraintViolation.
func IsConstraintViolation(err error) bool {
	var cv *ConstraintViolation
	return errors.As(err, &cv)
}

// IsNotFound reports whether err wraps ErrNotFound.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

// constraintError wraps err as a ConstraintViolation when SQLite reports a
// UNIQUE failure, otherwise returns err unchanged.
func constraintError(err error) error {
	if err == nil {
		return nil
	}
	const marker = "UNIQUE constraint failed: "
	msg := err.Error()
	i := strings.Index(msg, marker)
	if i < 0 {
		return err
	}
	constraint := strings.TrimSpace(msg[i+len(marker):])
	// The driver appends the numeric result code, e.g. "(2067)".
	if j := strings.Index(constraint, " ("); j >= 0 {
		constraint = constraint[:j]
	}
	return &ConstraintViolation{Constraint: constraint, Err: err}
}

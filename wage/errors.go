/*
errors.go - Centralized error types for the wage engines

PURPOSE:
  All error types in one place for consistency and discoverability.
  Engine packages return these directly; the API layer maps them to
  HTTP statuses.

ERROR CATEGORIES:
  1. Validation errors - construction-time input violations. These are real
     Go errors: they abort the calculation before it starts.
  2. Lookup failures - unknown occupation codes. These are NOT errors: the
     statutory engines return a result record with a populated Error field
     instead (see sca.Compensation, davisbacon.Compensation). Callers branch
     on the result shape, never catch anything.

USAGE:
  if errors.Is(err, wage.ErrValidation) {
      // 400 to the client
  }

  var verr *wage.ValidationError
  if errors.As(err, &verr) {
      log.Printf("field %s violated %s", verr.Field, verr.Constraint)
  }

SEE ALSO:
  - collab/types.go: validating constructors producing these errors
  - api/handlers.go: HTTP status mapping
*/
package wage

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrValidation is the sentinel all construction-time validation
	// failures unwrap to.
	ErrValidation = errors.New("validation failed")
)

// =============================================================================
// STRUCTURED ERRORS - Carry additional context
// =============================================================================

// ValidationError reports an input field that violated its declared
// constraint. It is raised at record construction, before any calculation.
type ValidationError struct {
	Field      string // e.g. "task_complexity"
	Constraint string // e.g. "must be between 1 and 5"
	Value      any    // the offending value
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %v (%s)", e.Field, e.Value, e.Constraint)
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// NewValidationError builds a ValidationError for a field/constraint pair.
func NewValidationError(field, constraint string, value any) *ValidationError {
	return &ValidationError{Field: field, Constraint: constraint, Value: value}
}

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrValidation)
}

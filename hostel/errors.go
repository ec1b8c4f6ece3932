/*
errors.go - Error types for the hostel record store

ERROR CATEGORIES:
  1. Constraint errors - the store rejected a write (duplicate room number,
     duplicate bed within a room, dangling reference)
  2. Validation errors - a form field is missing or malformed
  3. Not found - only raised by callers that need it (the API); the store
     itself reports absence as a nil record

USAGE:
    if errors.Is(err, hostel.ErrDuplicateRoomNumber) {
        // 409
    }

SEE ALSO:
  - store/sqlite/sqlite.go: translates driver constraint errors
  - api/handlers.go: maps errors to HTTP status codes
*/
package hostel

import (
	"errors"
	"fmt"
)

// =============================================================================
// SENTINEL ERRORS - Use with errors.Is()
// =============================================================================

var (
	// ErrDuplicateRoomNumber is returned when a room number is already used.
	ErrDuplicateRoomNumber = errors.New("duplicate room number")

	// ErrDuplicateBedNumber is returned when a bed number is already used in the same room.
	ErrDuplicateBedNumber = errors.New("duplicate bed number in room")

	// ErrReferenceNotFound is returned when a write names a room or tenant that does not exist.
	ErrReferenceNotFound = errors.New("referenced record does not exist")

	ErrTenantNotFound  = errors.New("tenant not found")
	ErrRoomNotFound    = errors.New("room not found")
	ErrBedNotFound     = errors.New("bed not found")
	ErrPaymentNotFound = errors.New("payment not found")

	// ErrInvalidInput is the parent of every ValidationError.
	ErrInvalidInput = errors.New("invalid input")
)

// =============================================================================
// STRUCTURED ERRORS
// =============================================================================

// ValidationError names the offending field.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func (e *ValidationError) Unwrap() error {
	return ErrInvalidInput
}

// ConstraintError carries the driver message behind a constraint sentinel.
type ConstraintError struct {
	Kind   error // one of the constraint sentinels above
	Detail string
}

func (e *ConstraintError) Error() string {
	if e.Detail == "" {
		return e.Kind.Error()
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Detail)
}

func (e *ConstraintError) Unwrap() error {
	return e.Kind
}

// =============================================================================
// ERROR HELPERS
// =============================================================================

// IsConflict returns true if the error is a uniqueness or reference violation.
func IsConflict(err error) bool {
	return errors.Is(err, ErrDuplicateRoomNumber) ||
		errors.Is(err, ErrDuplicateBedNumber) ||
		errors.Is(err, ErrReferenceNotFound)
}

// IsNotFound returns true if the error indicates a missing record.
func IsNotFound(err error) bool {
	return errors.Is(err, ErrTenantNotFound) ||
		errors.Is(err, ErrRoomNotFound) ||
		errors.Is(err, ErrBedNotFound) ||
		errors.Is(err, ErrPaymentNotFound)
}

// IsClientError returns true if the error is due to invalid client input.
func IsClientError(err error) bool {
	return errors.Is(err, ErrInvalidInput)
}

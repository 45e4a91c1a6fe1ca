package domain

import (
	"errors"
	"fmt"
)

// Authentication failures.
var (
	ErrUnauthenticated    = errors.New("authentication required")
	ErrInvalidCredentials = errors.New("invalid credentials")
)

// ErrForbidden is the base of every authorization failure. The named variants
// wrap it, so errors.Is(err, ErrForbidden) holds for all of them while the
// specific reason survives in the message.
var (
	ErrForbidden    = errors.New("access forbidden")
	ErrNotOwner     = fmt.Errorf("%w: not owner", ErrForbidden)
	ErrNotAssigned  = fmt.Errorf("%w: not assigned", ErrForbidden)
	ErrRoleMismatch = fmt.Errorf("%w: role mismatch", ErrForbidden)
)

// Missing referenced entities.
var (
	ErrUserNotFound        = errors.New("user not found")
	ErrDoctorNotFound      = errors.New("doctor not found")
	ErrPatientNotFound     = errors.New("patient not found")
	ErrAssistantNotFound   = errors.New("assistant not found")
	ErrTreatmentNotFound   = errors.New("treatment not found")
	ErrAssignmentNotFound  = errors.New("assignment not found")
	ErrApplicationNotFound = errors.New("treatment application not found")
)

var (
	// ErrEmailExists signals a duplicate email on user creation.
	ErrEmailExists = errors.New("email already registered")
	// ErrCannotDeleteApplied blocks deactivation of a treatment that has
	// recorded applications.
	ErrCannotDeleteApplied = errors.New("cannot delete treatment that has been applied")
	// ErrValidation covers malformed input fields.
	ErrValidation = errors.New("validation failed")
)

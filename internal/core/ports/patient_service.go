package ports

import (
	"context"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/policy"
)

// CreatePatientInput creates a patient record. DoctorID nil leaves the
// patient unowned unless the actor is a doctor, in which case ownership
// defaults to the actor.
type CreatePatientInput struct {
	FirstName string
	LastName  string
	Age       int
	DoctorID  *uint
}

// UpdatePatientInput updates a patient; nil fields are left untouched.
type UpdatePatientInput struct {
	FirstName *string
	LastName  *string
	Age       *int
	DoctorID  *uint
	IsActive  *bool
}

// PatientService defines patient management, scoped to the acting doctor's
// own patients unless the actor is a general manager.
type PatientService interface {
	List(ctx context.Context, actor policy.Actor, offset, limit int) ([]domain.Patient, error)
	Create(ctx context.Context, actor policy.Actor, input CreatePatientInput) (*domain.Patient, error)
	Get(ctx context.Context, actor policy.Actor, id uint) (*domain.Patient, error)
	Update(ctx context.Context, actor policy.Actor, id uint, input UpdatePatientInput) (*domain.Patient, error)
	// Deactivate flips IsActive; the row stays retrievable by id.
	Deactivate(ctx context.Context, actor policy.Actor, id uint) error
}

package ports

import (
	"context"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/policy"
)

// CreateTreatmentInput creates a treatment for a patient. The creating
// doctor is resolved from the actor (managers fall back to the first doctor
// on record).
type CreateTreatmentInput struct {
	Name        string
	Description string
	PatientID   uint
}

// UpdateTreatmentInput updates a treatment; nil fields are left untouched.
type UpdateTreatmentInput struct {
	Name        *string
	Description *string
	IsActive    *bool
}

// ListTreatmentsInput narrows treatment listings on top of the role scoping
// the service always applies.
type ListTreatmentsInput struct {
	DoctorID   uint
	PatientID  uint
	ActiveOnly bool
	Offset     int
	Limit      int
}

// ApplyTreatmentInput records a treatment application by the acting assistant.
type ApplyTreatmentInput struct {
	TreatmentID uint
	Notes       string
}

// TreatmentService defines treatment management and the application workflow.
type TreatmentService interface {
	Create(ctx context.Context, actor policy.Actor, input CreateTreatmentInput) (*domain.Treatment, error)
	List(ctx context.Context, actor policy.Actor, input ListTreatmentsInput) ([]domain.Treatment, error)
	Get(ctx context.Context, actor policy.Actor, id uint) (*domain.Treatment, error)
	Update(ctx context.Context, actor policy.Actor, id uint, input UpdateTreatmentInput) (*domain.Treatment, error)
	// Delete deactivates the treatment, refusing with
	// domain.ErrCannotDeleteApplied while applications reference it.
	Delete(ctx context.Context, actor policy.Actor, id uint) error

	// Apply requires an active assignment between the acting assistant and
	// the treatment's patient.
	Apply(ctx context.Context, actor policy.Actor, input ApplyTreatmentInput) (*domain.TreatmentApplication, error)
	// ListApplications filters by treatment and/or assistant; assistants are
	// always restricted to their own applications.
	ListApplications(ctx context.Context, actor policy.Actor, treatmentID, assistantID uint) ([]domain.TreatmentApplication, error)
}

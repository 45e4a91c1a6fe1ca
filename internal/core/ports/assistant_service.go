package ports

import (
	"context"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/policy"
)

// CreateAssistantInput creates a user with RoleAssistant plus its profile.
type CreateAssistantInput struct {
	Email          string
	Password       string
	FullName       string
	Age            int
	Specialization string
}

// UpdateAssistantInput updates an assistant profile; nil fields are left
// untouched. IsActive mirrors onto the linked user.
type UpdateAssistantInput struct {
	Age            *int
	Specialization *string
	IsActive       *bool
}

// AssistantDetail pairs an assistant profile with its user record.
type AssistantDetail struct {
	Assistant domain.Assistant `json:"assistant"`
	User      domain.User      `json:"user"`
}

// AssignPatientInput links a patient to an assistant. The assigning doctor is
// resolved from the actor (managers fall back to the first doctor on record).
type AssignPatientInput struct {
	PatientID   uint
	AssistantID uint
}

// UpdateAssignmentInput may flip an assignment inactive. There is no
// reactivation path.
type UpdateAssignmentInput struct {
	IsActive *bool
}

// AssistantService defines assistant management plus the patient-assignment
// workflow.
type AssistantService interface {
	List(ctx context.Context, actor policy.Actor, offset, limit int) ([]AssistantDetail, error)
	Create(ctx context.Context, actor policy.Actor, input CreateAssistantInput) (*AssistantDetail, error)
	Get(ctx context.Context, actor policy.Actor, id uint) (*AssistantDetail, error)
	Update(ctx context.Context, actor policy.Actor, id uint, input UpdateAssistantInput) (*AssistantDetail, error)
	Deactivate(ctx context.Context, actor policy.Actor, id uint) error

	// ListAssignments filters by patient and/or assistant; assistants are
	// always restricted to their own assignments.
	ListAssignments(ctx context.Context, actor policy.Actor, patientID, assistantID uint) ([]domain.PatientAssistant, error)
	Assign(ctx context.Context, actor policy.Actor, input AssignPatientInput) (*domain.PatientAssistant, error)
	UpdateAssignment(ctx context.Context, actor policy.Actor, id uint, input UpdateAssignmentInput) (*domain.PatientAssistant, error)
}

package ports

import (
	"context"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/policy"
)

// CreateDoctorInput creates a user with RoleDoctor plus its doctor profile.
type CreateDoctorInput struct {
	Email          string
	Password       string
	FullName       string
	Specialization string
	Experience     int
}

// UpdateDoctorInput updates a doctor profile; nil fields are left untouched.
// IsActive mirrors onto the linked user.
type UpdateDoctorInput struct {
	Specialization *string
	Experience     *int
	IsActive       *bool
}

// DoctorDetail pairs a doctor profile with its user record.
type DoctorDetail struct {
	Doctor domain.Doctor `json:"doctor"`
	User   domain.User   `json:"user"`
}

// DoctorService defines manager-gated doctor management.
type DoctorService interface {
	List(ctx context.Context, actor policy.Actor, offset, limit int) ([]DoctorDetail, error)
	Create(ctx context.Context, actor policy.Actor, input CreateDoctorInput) (*DoctorDetail, error)
	Get(ctx context.Context, actor policy.Actor, id uint) (*DoctorDetail, error)
	Update(ctx context.Context, actor policy.Actor, id uint, input UpdateDoctorInput) (*DoctorDetail, error)
	// Deactivate soft-deletes: flips the linked user inactive, never removes rows.
	Deactivate(ctx context.Context, actor policy.Actor, id uint) error
}

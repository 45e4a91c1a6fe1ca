package ports

import (
	"context"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

// UserRepository persists authentication users.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByID(ctx context.Context, id uint) (*domain.User, error)
	FindByEmail(ctx context.Context, email string) (*domain.User, error)
	List(ctx context.Context, offset, limit int) ([]domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

// DoctorRepository persists doctor profiles.
type DoctorRepository interface {
	Create(ctx context.Context, doctor *domain.Doctor) (*domain.Doctor, error)
	FindByID(ctx context.Context, id uint) (*domain.Doctor, error)
	FindByUserID(ctx context.Context, userID uint) (*domain.Doctor, error)
	// First returns the lowest-id doctor; used to attribute manager-created
	// treatments and assignments.
	First(ctx context.Context) (*domain.Doctor, error)
	List(ctx context.Context, offset, limit int) ([]domain.Doctor, error)
	Update(ctx context.Context, doctor *domain.Doctor) error
}

// AssistantRepository persists assistant profiles.
type AssistantRepository interface {
	Create(ctx context.Context, assistant *domain.Assistant) (*domain.Assistant, error)
	FindByID(ctx context.Context, id uint) (*domain.Assistant, error)
	FindByUserID(ctx context.Context, userID uint) (*domain.Assistant, error)
	List(ctx context.Context, offset, limit int) ([]domain.Assistant, error)
	Update(ctx context.Context, assistant *domain.Assistant) error
}

// PatientRepository persists patients.
type PatientRepository interface {
	Create(ctx context.Context, patient *domain.Patient) (*domain.Patient, error)
	FindByID(ctx context.Context, id uint) (*domain.Patient, error)
	List(ctx context.Context, offset, limit int) ([]domain.Patient, error)
	// ListByDoctor returns the patients owned by a doctor, optionally
	// restricted to active ones, ordered by id.
	ListByDoctor(ctx context.Context, doctorID uint, activeOnly bool) ([]domain.Patient, error)
	Update(ctx context.Context, patient *domain.Patient) error
}

// TreatmentFilter narrows treatment listings. Zero values mean "no filter";
// PatientIDs non-nil restricts to the given subjects (empty slice matches
// nothing).
type TreatmentFilter struct {
	DoctorID   uint
	PatientID  uint
	PatientIDs []uint
	ActiveOnly bool
	Offset     int
	Limit      int
}

// TreatmentRepository persists treatments.
type TreatmentRepository interface {
	Create(ctx context.Context, treatment *domain.Treatment) (*domain.Treatment, error)
	FindByID(ctx context.Context, id uint) (*domain.Treatment, error)
	List(ctx context.Context, filter TreatmentFilter) ([]domain.Treatment, error)
	Update(ctx context.Context, treatment *domain.Treatment) error
}

// AssignmentRepository persists patient-assistant assignments.
type AssignmentRepository interface {
	Create(ctx context.Context, assignment *domain.PatientAssistant) (*domain.PatientAssistant, error)
	FindByID(ctx context.Context, id uint) (*domain.PatientAssistant, error)
	// List filters by patient and/or assistant; zero ids mean no filter.
	List(ctx context.Context, patientID, assistantID uint) ([]domain.PatientAssistant, error)
	// FindActive returns the active assignment linking the pair, or
	// domain.ErrAssignmentNotFound.
	FindActive(ctx context.Context, patientID, assistantID uint) (*domain.PatientAssistant, error)
	// ListActiveByAssistant returns all active assignments held by one assistant.
	ListActiveByAssistant(ctx context.Context, assistantID uint) ([]domain.PatientAssistant, error)
	Update(ctx context.Context, assignment *domain.PatientAssistant) error
}

// ApplicationRepository persists treatment applications.
type ApplicationRepository interface {
	Create(ctx context.Context, application *domain.TreatmentApplication) (*domain.TreatmentApplication, error)
	// List filters by treatment and/or assistant; zero ids mean no filter.
	List(ctx context.Context, treatmentID, assistantID uint) ([]domain.TreatmentApplication, error)
	CountByTreatment(ctx context.Context, treatmentID uint) (int64, error)
}

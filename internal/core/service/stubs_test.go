package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

// In-memory repository stubs shared by the service tests. Ids are assigned
// sequentially starting at 1; lists come back ordered by id like the real
// repositories.

func testLogger() zerolog.Logger { return zerolog.Nop() }

type stubUserRepo struct {
	seq   uint
	users map[uint]*domain.User
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{users: make(map[uint]*domain.User)}
}

func (r *stubUserRepo) Create(_ context.Context, user *domain.User) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == user.Email {
			return nil, domain.ErrEmailExists
		}
	}
	r.seq++
	clone := *user
	clone.ID = r.seq
	r.users[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id uint) (*domain.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, domain.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (r *stubUserRepo) FindByEmail(_ context.Context, email string) (*domain.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			clone := *u
			return &clone, nil
		}
	}
	return nil, domain.ErrUserNotFound
}

func (r *stubUserRepo) List(_ context.Context, _, _ int) ([]domain.User, error) {
	out := make([]domain.User, 0, len(r.users))
	for id := uint(1); id <= r.seq; id++ {
		if u, ok := r.users[id]; ok {
			out = append(out, *u)
		}
	}
	return out, nil
}

func (r *stubUserRepo) Update(_ context.Context, user *domain.User) error {
	if _, ok := r.users[user.ID]; !ok {
		return domain.ErrUserNotFound
	}
	clone := *user
	r.users[user.ID] = &clone
	return nil
}

type stubDoctorRepo struct {
	seq     uint
	doctors map[uint]*domain.Doctor
}

func newStubDoctorRepo() *stubDoctorRepo {
	return &stubDoctorRepo{doctors: make(map[uint]*domain.Doctor)}
}

func (r *stubDoctorRepo) Create(_ context.Context, doctor *domain.Doctor) (*domain.Doctor, error) {
	r.seq++
	clone := *doctor
	clone.ID = r.seq
	r.doctors[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubDoctorRepo) FindByID(_ context.Context, id uint) (*domain.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, domain.ErrDoctorNotFound
	}
	clone := *d
	return &clone, nil
}

func (r *stubDoctorRepo) FindByUserID(_ context.Context, userID uint) (*domain.Doctor, error) {
	for id := uint(1); id <= r.seq; id++ {
		if d, ok := r.doctors[id]; ok && d.UserID == userID {
			clone := *d
			return &clone, nil
		}
	}
	return nil, domain.ErrDoctorNotFound
}

func (r *stubDoctorRepo) First(_ context.Context) (*domain.Doctor, error) {
	for id := uint(1); id <= r.seq; id++ {
		if d, ok := r.doctors[id]; ok {
			clone := *d
			return &clone, nil
		}
	}
	return nil, domain.ErrDoctorNotFound
}

func (r *stubDoctorRepo) List(_ context.Context, _, _ int) ([]domain.Doctor, error) {
	out := make([]domain.Doctor, 0, len(r.doctors))
	for id := uint(1); id <= r.seq; id++ {
		if d, ok := r.doctors[id]; ok {
			out = append(out, *d)
		}
	}
	return out, nil
}

func (r *stubDoctorRepo) Update(_ context.Context, doctor *domain.Doctor) error {
	if _, ok := r.doctors[doctor.ID]; !ok {
		return domain.ErrDoctorNotFound
	}
	clone := *doctor
	r.doctors[doctor.ID] = &clone
	return nil
}

type stubAssistantRepo struct {
	seq        uint
	assistants map[uint]*domain.Assistant
}

func newStubAssistantRepo() *stubAssistantRepo {
	return &stubAssistantRepo{assistants: make(map[uint]*domain.Assistant)}
}

func (r *stubAssistantRepo) Create(_ context.Context, assistant *domain.Assistant) (*domain.Assistant, error) {
	r.seq++
	clone := *assistant
	clone.ID = r.seq
	r.assistants[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAssistantRepo) FindByID(_ context.Context, id uint) (*domain.Assistant, error) {
	a, ok := r.assistants[id]
	if !ok {
		return nil, domain.ErrAssistantNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAssistantRepo) FindByUserID(_ context.Context, userID uint) (*domain.Assistant, error) {
	for id := uint(1); id <= r.seq; id++ {
		if a, ok := r.assistants[id]; ok && a.UserID == userID {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAssistantNotFound
}

func (r *stubAssistantRepo) List(_ context.Context, _, _ int) ([]domain.Assistant, error) {
	out := make([]domain.Assistant, 0, len(r.assistants))
	for id := uint(1); id <= r.seq; id++ {
		if a, ok := r.assistants[id]; ok {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAssistantRepo) Update(_ context.Context, assistant *domain.Assistant) error {
	if _, ok := r.assistants[assistant.ID]; !ok {
		return domain.ErrAssistantNotFound
	}
	clone := *assistant
	r.assistants[assistant.ID] = &clone
	return nil
}

type stubPatientRepo struct {
	seq      uint
	patients map[uint]*domain.Patient
}

func newStubPatientRepo() *stubPatientRepo {
	return &stubPatientRepo{patients: make(map[uint]*domain.Patient)}
}

func (r *stubPatientRepo) Create(_ context.Context, patient *domain.Patient) (*domain.Patient, error) {
	r.seq++
	clone := *patient
	clone.ID = r.seq
	r.patients[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPatientRepo) FindByID(_ context.Context, id uint) (*domain.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, domain.ErrPatientNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPatientRepo) List(_ context.Context, _, _ int) ([]domain.Patient, error) {
	out := make([]domain.Patient, 0, len(r.patients))
	for id := uint(1); id <= r.seq; id++ {
		if p, ok := r.patients[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (r *stubPatientRepo) ListByDoctor(_ context.Context, doctorID uint, activeOnly bool) ([]domain.Patient, error) {
	out := []domain.Patient{}
	for id := uint(1); id <= r.seq; id++ {
		p, ok := r.patients[id]
		if !ok || p.DoctorID == nil || *p.DoctorID != doctorID {
			continue
		}
		if activeOnly && !p.IsActive {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (r *stubPatientRepo) Update(_ context.Context, patient *domain.Patient) error {
	if _, ok := r.patients[patient.ID]; !ok {
		return domain.ErrPatientNotFound
	}
	clone := *patient
	r.patients[patient.ID] = &clone
	return nil
}

type stubTreatmentRepo struct {
	seq        uint
	treatments map[uint]*domain.Treatment
}

func newStubTreatmentRepo() *stubTreatmentRepo {
	return &stubTreatmentRepo{treatments: make(map[uint]*domain.Treatment)}
}

func (r *stubTreatmentRepo) Create(_ context.Context, treatment *domain.Treatment) (*domain.Treatment, error) {
	r.seq++
	clone := *treatment
	clone.ID = r.seq
	r.treatments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubTreatmentRepo) FindByID(_ context.Context, id uint) (*domain.Treatment, error) {
	t, ok := r.treatments[id]
	if !ok {
		return nil, domain.ErrTreatmentNotFound
	}
	clone := *t
	return &clone, nil
}

func (r *stubTreatmentRepo) List(_ context.Context, filter ports.TreatmentFilter) ([]domain.Treatment, error) {
	allowed := func(t *domain.Treatment) bool {
		if filter.DoctorID != 0 && t.DoctorID != filter.DoctorID {
			return false
		}
		if filter.PatientID != 0 && t.PatientID != filter.PatientID {
			return false
		}
		if filter.PatientIDs != nil {
			found := false
			for _, id := range filter.PatientIDs {
				if t.PatientID == id {
					found = true
					break
				}
			}
			if !found {
				return false
			}
		}
		if filter.ActiveOnly && !t.IsActive {
			return false
		}
		return true
	}

	out := []domain.Treatment{}
	for id := uint(1); id <= r.seq; id++ {
		if t, ok := r.treatments[id]; ok && allowed(t) {
			out = append(out, *t)
		}
	}
	return out, nil
}

func (r *stubTreatmentRepo) Update(_ context.Context, treatment *domain.Treatment) error {
	if _, ok := r.treatments[treatment.ID]; !ok {
		return domain.ErrTreatmentNotFound
	}
	clone := *treatment
	r.treatments[treatment.ID] = &clone
	return nil
}

type stubAssignmentRepo struct {
	seq         uint
	assignments map[uint]*domain.PatientAssistant
}

func newStubAssignmentRepo() *stubAssignmentRepo {
	return &stubAssignmentRepo{assignments: make(map[uint]*domain.PatientAssistant)}
}

func (r *stubAssignmentRepo) Create(_ context.Context, assignment *domain.PatientAssistant) (*domain.PatientAssistant, error) {
	r.seq++
	clone := *assignment
	clone.ID = r.seq
	r.assignments[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubAssignmentRepo) FindByID(_ context.Context, id uint) (*domain.PatientAssistant, error) {
	a, ok := r.assignments[id]
	if !ok {
		return nil, domain.ErrAssignmentNotFound
	}
	clone := *a
	return &clone, nil
}

func (r *stubAssignmentRepo) List(_ context.Context, patientID, assistantID uint) ([]domain.PatientAssistant, error) {
	out := []domain.PatientAssistant{}
	for id := uint(1); id <= r.seq; id++ {
		a, ok := r.assignments[id]
		if !ok {
			continue
		}
		if patientID != 0 && a.PatientID != patientID {
			continue
		}
		if assistantID != 0 && a.AssistantID != assistantID {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubAssignmentRepo) FindActive(_ context.Context, patientID, assistantID uint) (*domain.PatientAssistant, error) {
	for id := uint(1); id <= r.seq; id++ {
		if a, ok := r.assignments[id]; ok && a.PatientID == patientID && a.AssistantID == assistantID && a.IsActive {
			clone := *a
			return &clone, nil
		}
	}
	return nil, domain.ErrAssignmentNotFound
}

func (r *stubAssignmentRepo) ListActiveByAssistant(_ context.Context, assistantID uint) ([]domain.PatientAssistant, error) {
	out := []domain.PatientAssistant{}
	for id := uint(1); id <= r.seq; id++ {
		if a, ok := r.assignments[id]; ok && a.AssistantID == assistantID && a.IsActive {
			out = append(out, *a)
		}
	}
	return out, nil
}

func (r *stubAssignmentRepo) Update(_ context.Context, assignment *domain.PatientAssistant) error {
	if _, ok := r.assignments[assignment.ID]; !ok {
		return domain.ErrAssignmentNotFound
	}
	clone := *assignment
	r.assignments[assignment.ID] = &clone
	return nil
}

type stubApplicationRepo struct {
	seq          uint
	applications map[uint]*domain.TreatmentApplication
}

func newStubApplicationRepo() *stubApplicationRepo {
	return &stubApplicationRepo{applications: make(map[uint]*domain.TreatmentApplication)}
}

func (r *stubApplicationRepo) Create(_ context.Context, application *domain.TreatmentApplication) (*domain.TreatmentApplication, error) {
	r.seq++
	clone := *application
	clone.ID = r.seq
	r.applications[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubApplicationRepo) List(_ context.Context, treatmentID, assistantID uint) ([]domain.TreatmentApplication, error) {
	out := []domain.TreatmentApplication{}
	for id := uint(1); id <= r.seq; id++ {
		a, ok := r.applications[id]
		if !ok {
			continue
		}
		if treatmentID != 0 && a.TreatmentID != treatmentID {
			continue
		}
		if assistantID != 0 && a.AssistantID != assistantID {
			continue
		}
		out = append(out, *a)
	}
	return out, nil
}

func (r *stubApplicationRepo) CountByTreatment(_ context.Context, treatmentID uint) (int64, error) {
	var n int64
	for _, a := range r.applications {
		if a.TreatmentID == treatmentID {
			n++
		}
	}
	return n, nil
}

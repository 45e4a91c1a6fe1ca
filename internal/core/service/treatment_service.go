package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/policy"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

// TreatmentService implements treatment management and the application
// workflow. Treatment deletion is two-phase: a treatment only transitions to
// inactive, and only while no application references it.
type TreatmentService struct {
	treatments   ports.TreatmentRepository
	applications ports.ApplicationRepository
	assignments  ports.AssignmentRepository
	patients     ports.PatientRepository
	doctors      ports.DoctorRepository
	assistants   ports.AssistantRepository
	logger       zerolog.Logger
}

func NewTreatmentService(
	treatments ports.TreatmentRepository,
	applications ports.ApplicationRepository,
	assignments ports.AssignmentRepository,
	patients ports.PatientRepository,
	doctors ports.DoctorRepository,
	assistants ports.AssistantRepository,
	logger zerolog.Logger,
) *TreatmentService {
	return &TreatmentService{
		treatments:   treatments,
		applications: applications,
		assignments:  assignments,
		patients:     patients,
		doctors:      doctors,
		assistants:   assistants,
		logger:       logger,
	}
}

// Create records a treatment. Doctors may only treat their own patients;
// manager-created treatments are attributed to the first doctor on record.
func (s *TreatmentService) Create(ctx context.Context, actor policy.Actor, input ports.CreateTreatmentInput) (*domain.Treatment, error) {
	actor, doctor, err := withDoctorProfile(ctx, s.doctors, actor)
	if err != nil {
		return nil, err
	}

	patient, err := s.patients.FindByID(ctx, input.PatientID)
	if err != nil {
		return nil, err
	}

	dec := policy.Decide(actor, policy.Action{
		Resource:      policy.ResourceTreatments,
		Op:            policy.OpCreate,
		OwnerDoctorID: deref(patient.DoctorID),
	})
	if err := dec.Err(); err != nil {
		return nil, err
	}

	if doctor == nil {
		doctor, err = s.doctors.First(ctx)
		if err != nil {
			return nil, err
		}
	}

	treatment, err := s.treatments.Create(ctx, &domain.Treatment{
		Name:        input.Name,
		Description: input.Description,
		DoctorID:    doctor.ID,
		PatientID:   patient.ID,
		IsActive:    true,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Uint("treatment_id", treatment.ID).
		Uint("patient_id", patient.ID).
		Uint("doctor_id", doctor.ID).
		Msg("treatment created")
	return treatment, nil
}

// List applies role scoping before the caller's filters: doctors see their
// own treatments, assistants see treatments of patients assigned to them,
// managers see everything.
func (s *TreatmentService) List(ctx context.Context, actor policy.Actor, input ports.ListTreatmentsInput) ([]domain.Treatment, error) {
	actor, doctor, err := withDoctorProfile(ctx, s.doctors, actor)
	if err != nil {
		return nil, err
	}
	actor, assistant, err := withAssistantProfile(ctx, s.assistants, actor)
	if err != nil {
		return nil, err
	}

	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceTreatments, Op: policy.OpList})
	if err := dec.Err(); err != nil {
		return nil, err
	}

	filter := ports.TreatmentFilter{
		DoctorID:   input.DoctorID,
		PatientID:  input.PatientID,
		ActiveOnly: input.ActiveOnly,
		Offset:     input.Offset,
		Limit:      input.Limit,
	}

	switch {
	case doctor != nil:
		filter.DoctorID = doctor.ID
	case assistant != nil:
		active, err := s.assignments.ListActiveByAssistant(ctx, assistant.ID)
		if err != nil {
			return nil, err
		}
		ids := make([]uint, 0, len(active))
		for _, a := range active {
			ids = append(ids, a.PatientID)
		}
		if len(ids) == 0 {
			return []domain.Treatment{}, nil
		}
		filter.PatientIDs = ids
	}

	return s.treatments.List(ctx, filter)
}

func (s *TreatmentService) Get(ctx context.Context, actor policy.Actor, id uint) (*domain.Treatment, error) {
	actor, _, err := withDoctorProfile(ctx, s.doctors, actor)
	if err != nil {
		return nil, err
	}
	actor, assistant, err := withAssistantProfile(ctx, s.assistants, actor)
	if err != nil {
		return nil, err
	}

	treatment, err := s.treatments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	action := policy.Action{
		Resource:      policy.ResourceTreatments,
		Op:            policy.OpRead,
		OwnerDoctorID: treatment.DoctorID,
	}
	if assistant != nil {
		action.AssistantAssigned, err = s.hasActiveAssignment(ctx, treatment.PatientID, assistant.ID)
		if err != nil {
			return nil, err
		}
	}

	if err := policy.Decide(actor, action).Err(); err != nil {
		return nil, err
	}
	return treatment, nil
}

func (s *TreatmentService) Update(ctx context.Context, actor policy.Actor, id uint, input ports.UpdateTreatmentInput) (*domain.Treatment, error) {
	actor, _, err := withDoctorProfile(ctx, s.doctors, actor)
	if err != nil {
		return nil, err
	}

	treatment, err := s.treatments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dec := policy.Decide(actor, policy.Action{
		Resource:      policy.ResourceTreatments,
		Op:            policy.OpUpdate,
		OwnerDoctorID: treatment.DoctorID,
	})
	if err := dec.Err(); err != nil {
		return nil, err
	}

	if input.Name != nil {
		treatment.Name = *input.Name
	}
	if input.Description != nil {
		treatment.Description = *input.Description
	}
	if input.IsActive != nil {
		treatment.IsActive = *input.IsActive
	}

	if err := s.treatments.Update(ctx, treatment); err != nil {
		return nil, err
	}
	return treatment, nil
}

// Delete deactivates a treatment. A treatment that has been applied is
// terminal: the caller gets domain.ErrCannotDeleteApplied, never a silent
// force-delete.
func (s *TreatmentService) Delete(ctx context.Context, actor policy.Actor, id uint) error {
	actor, _, err := withDoctorProfile(ctx, s.doctors, actor)
	if err != nil {
		return err
	}

	treatment, err := s.treatments.FindByID(ctx, id)
	if err != nil {
		return err
	}

	dec := policy.Decide(actor, policy.Action{
		Resource:      policy.ResourceTreatments,
		Op:            policy.OpDeactivate,
		OwnerDoctorID: treatment.DoctorID,
	})
	if err := dec.Err(); err != nil {
		return err
	}

	count, err := s.applications.CountByTreatment(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCannotDeleteApplied
	}

	treatment.IsActive = false
	if err := s.treatments.Update(ctx, treatment); err != nil {
		return err
	}

	s.logger.Info().Uint("treatment_id", id).Msg("treatment deactivated")
	return nil
}

// Apply records a treatment application by the acting assistant. The
// assistant must hold an active assignment to the treatment's patient.
func (s *TreatmentService) Apply(ctx context.Context, actor policy.Actor, input ports.ApplyTreatmentInput) (*domain.TreatmentApplication, error) {
	actor, assistant, err := withAssistantProfile(ctx, s.assistants, actor)
	if err != nil {
		return nil, err
	}

	action := policy.Action{Resource: policy.ResourceApplications, Op: policy.OpApply}

	var treatment *domain.Treatment
	if assistant != nil {
		treatment, err = s.treatments.FindByID(ctx, input.TreatmentID)
		if err != nil {
			return nil, err
		}
		action.AssistantAssigned, err = s.hasActiveAssignment(ctx, treatment.PatientID, assistant.ID)
		if err != nil {
			return nil, err
		}
	}

	if err := policy.Decide(actor, action).Err(); err != nil {
		return nil, err
	}
	if treatment == nil {
		// Non-assistant roles never reach here; Decide rejects them.
		return nil, domain.ErrRoleMismatch
	}

	application, err := s.applications.Create(ctx, &domain.TreatmentApplication{
		TreatmentID: treatment.ID,
		AssistantID: assistant.ID,
		Notes:       input.Notes,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Uint("application_id", application.ID).
		Uint("treatment_id", treatment.ID).
		Uint("assistant_id", assistant.ID).
		Msg("treatment applied")
	return application, nil
}

// ListApplications pins assistants to their own applications; doctors are
// checked against the treatment's owner when a treatment filter is given.
func (s *TreatmentService) ListApplications(ctx context.Context, actor policy.Actor, treatmentID, assistantID uint) ([]domain.TreatmentApplication, error) {
	actor, _, err := withDoctorProfile(ctx, s.doctors, actor)
	if err != nil {
		return nil, err
	}
	actor, assistant, err := withAssistantProfile(ctx, s.assistants, actor)
	if err != nil {
		return nil, err
	}

	action := policy.Action{Resource: policy.ResourceApplications, Op: policy.OpList}
	if treatmentID != 0 && actor.Role == domain.RoleDoctor {
		treatment, err := s.treatments.FindByID(ctx, treatmentID)
		if err != nil {
			return nil, err
		}
		action.OwnerDoctorID = treatment.DoctorID
	}

	if err := policy.Decide(actor, action).Err(); err != nil {
		return nil, err
	}

	if assistant != nil {
		assistantID = assistant.ID
	}
	return s.applications.List(ctx, treatmentID, assistantID)
}

func (s *TreatmentService) hasActiveAssignment(ctx context.Context, patientID, assistantID uint) (bool, error) {
	_, err := s.assignments.FindActive(ctx, patientID, assistantID)
	if err != nil {
		if errors.Is(err, domain.ErrAssignmentNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

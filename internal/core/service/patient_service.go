package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/policy"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

// PatientService implements patient management. Doctors operate on their own
// patients only; general managers see everything.
type PatientService struct {
	patients ports.PatientRepository
	doctors  ports.DoctorRepository
	logger   zerolog.Logger
}

func NewPatientService(patients ports.PatientRepository, doctors ports.DoctorRepository, logger zerolog.Logger) *PatientService {
	return &PatientService{patients: patients, doctors: doctors, logger: logger}
}

func (s *PatientService) List(ctx context.Context, actor policy.Actor, offset, limit int) ([]domain.Patient, error) {
	actor, doctor, err := withDoctorProfile(ctx, s.doctors, actor)
	if err != nil {
		return nil, err
	}

	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourcePatients, Op: policy.OpList})
	if err := dec.Err(); err != nil {
		return nil, err
	}

	if doctor != nil {
		return s.patients.ListByDoctor(ctx, doctor.ID, false)
	}
	return s.patients.List(ctx, offset, limit)
}

func (s *PatientService) Create(ctx context.Context, actor policy.Actor, input ports.CreatePatientInput) (*domain.Patient, error) {
	actor, doctor, err := withDoctorProfile(ctx, s.doctors, actor)
	if err != nil {
		return nil, err
	}

	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourcePatients, Op: policy.OpCreate, OwnerDoctorID: deref(input.DoctorID)})
	if err := dec.Err(); err != nil {
		return nil, err
	}

	doctorID := input.DoctorID
	if doctorID == nil && doctor != nil {
		// A doctor creating a patient owns it.
		doctorID = &doctor.ID
	}

	patient, err := s.patients.Create(ctx, &domain.Patient{
		FirstName: input.FirstName,
		LastName:  input.LastName,
		Age:       input.Age,
		IsActive:  true,
		DoctorID:  doctorID,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("patient_id", patient.ID).Msg("patient created")
	return patient, nil
}

func (s *PatientService) Get(ctx context.Context, actor policy.Actor, id uint) (*domain.Patient, error) {
	actor, _, err := withDoctorProfile(ctx, s.doctors, actor)
	if err != nil {
		return nil, err
	}

	patient, err := s.patients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourcePatients, Op: policy.OpRead, OwnerDoctorID: deref(patient.DoctorID)})
	if err := dec.Err(); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *PatientService) Update(ctx context.Context, actor policy.Actor, id uint, input ports.UpdatePatientInput) (*domain.Patient, error) {
	actor, _, err := withDoctorProfile(ctx, s.doctors, actor)
	if err != nil {
		return nil, err
	}

	patient, err := s.patients.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourcePatients, Op: policy.OpUpdate, OwnerDoctorID: deref(patient.DoctorID)})
	if err := dec.Err(); err != nil {
		return nil, err
	}

	if input.FirstName != nil {
		patient.FirstName = *input.FirstName
	}
	if input.LastName != nil {
		patient.LastName = *input.LastName
	}
	if input.Age != nil {
		patient.Age = *input.Age
	}
	if input.DoctorID != nil {
		patient.DoctorID = input.DoctorID
	}
	if input.IsActive != nil {
		patient.IsActive = *input.IsActive
	}

	if err := s.patients.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

// Deactivate flips IsActive=false; the row stays retrievable by id.
func (s *PatientService) Deactivate(ctx context.Context, actor policy.Actor, id uint) error {
	actor, _, err := withDoctorProfile(ctx, s.doctors, actor)
	if err != nil {
		return err
	}

	patient, err := s.patients.FindByID(ctx, id)
	if err != nil {
		return err
	}

	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourcePatients, Op: policy.OpDeactivate, OwnerDoctorID: deref(patient.DoctorID)})
	if err := dec.Err(); err != nil {
		return err
	}

	patient.IsActive = false
	if err := s.patients.Update(ctx, patient); err != nil {
		return err
	}

	s.logger.Info().Uint("patient_id", id).Msg("patient deactivated")
	return nil
}

func deref(id *uint) uint {
	if id == nil {
		return 0
	}
	return *id
}

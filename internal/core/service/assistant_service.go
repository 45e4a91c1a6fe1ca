package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/policy"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

// AssistantService implements assistant management and the patient-assignment
// workflow.
type AssistantService struct {
	assistants  ports.AssistantRepository
	users       ports.UserRepository
	doctors     ports.DoctorRepository
	patients    ports.PatientRepository
	assignments ports.AssignmentRepository
	logger      zerolog.Logger
}

func NewAssistantService(
	assistants ports.AssistantRepository,
	users ports.UserRepository,
	doctors ports.DoctorRepository,
	patients ports.PatientRepository,
	assignments ports.AssignmentRepository,
	logger zerolog.Logger,
) *AssistantService {
	return &AssistantService{
		assistants:  assistants,
		users:       users,
		doctors:     doctors,
		patients:    patients,
		assignments: assignments,
		logger:      logger,
	}
}

func (s *AssistantService) List(ctx context.Context, actor policy.Actor, offset, limit int) ([]ports.AssistantDetail, error) {
	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceAssistants, Op: policy.OpList})
	if err := dec.Err(); err != nil {
		return nil, err
	}

	assistants, err := s.assistants.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	details := make([]ports.AssistantDetail, 0, len(assistants))
	for _, a := range assistants {
		user, err := s.users.FindByID(ctx, a.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		details = append(details, ports.AssistantDetail{Assistant: a, User: *user})
	}
	return details, nil
}

func (s *AssistantService) Create(ctx context.Context, actor policy.Actor, input ports.CreateAssistantInput) (*ports.AssistantDetail, error) {
	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceAssistants, Op: policy.OpCreate})
	if err := dec.Err(); err != nil {
		return nil, err
	}

	if _, err := s.users.FindByEmail(ctx, input.Email); err == nil {
		return nil, domain.ErrEmailExists
	} else if !errors.Is(err, domain.ErrUserNotFound) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user, err := s.users.Create(ctx, &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         domain.RoleAssistant,
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}

	assistant, err := s.assistants.Create(ctx, &domain.Assistant{
		UserID:         user.ID,
		Age:            input.Age,
		Specialization: input.Specialization,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("assistant_id", assistant.ID).Uint("user_id", user.ID).Msg("assistant created")
	return &ports.AssistantDetail{Assistant: *assistant, User: *user}, nil
}

func (s *AssistantService) Get(ctx context.Context, actor policy.Actor, id uint) (*ports.AssistantDetail, error) {
	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceAssistants, Op: policy.OpRead})
	if err := dec.Err(); err != nil {
		return nil, err
	}
	return s.detail(ctx, id)
}

func (s *AssistantService) Update(ctx context.Context, actor policy.Actor, id uint, input ports.UpdateAssistantInput) (*ports.AssistantDetail, error) {
	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceAssistants, Op: policy.OpUpdate})
	if err := dec.Err(); err != nil {
		return nil, err
	}

	assistant, err := s.assistants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Age != nil {
		assistant.Age = *input.Age
	}
	if input.Specialization != nil {
		assistant.Specialization = *input.Specialization
	}
	if err := s.assistants.Update(ctx, assistant); err != nil {
		return nil, err
	}

	if input.IsActive != nil {
		if err := s.setUserActive(ctx, assistant.UserID, *input.IsActive); err != nil {
			return nil, err
		}
	}

	return s.detail(ctx, id)
}

func (s *AssistantService) Deactivate(ctx context.Context, actor policy.Actor, id uint) error {
	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceAssistants, Op: policy.OpDeactivate})
	if err := dec.Err(); err != nil {
		return err
	}

	assistant, err := s.assistants.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.setUserActive(ctx, assistant.UserID, false); err != nil {
		return err
	}

	s.logger.Info().Uint("assistant_id", id).Msg("assistant deactivated")
	return nil
}

// ListAssignments lets doctors and managers filter freely; assistants are
// always pinned to their own assignments.
func (s *AssistantService) ListAssignments(ctx context.Context, actor policy.Actor, patientID, assistantID uint) ([]domain.PatientAssistant, error) {
	actor, assistant, err := withAssistantProfile(ctx, s.assistants, actor)
	if err != nil {
		return nil, err
	}

	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceAssignments, Op: policy.OpList})
	if err := dec.Err(); err != nil {
		return nil, err
	}

	if assistant != nil {
		assistantID = assistant.ID
	}
	return s.assignments.List(ctx, patientID, assistantID)
}

// Assign creates an active assignment. Both ends of the link must exist; the
// assigning doctor is the actor's profile, or the first doctor on record when
// a manager assigns.
func (s *AssistantService) Assign(ctx context.Context, actor policy.Actor, input ports.AssignPatientInput) (*domain.PatientAssistant, error) {
	actor, doctor, err := withDoctorProfile(ctx, s.doctors, actor)
	if err != nil {
		return nil, err
	}

	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceAssignments, Op: policy.OpCreate})
	if err := dec.Err(); err != nil {
		return nil, err
	}

	if _, err := s.patients.FindByID(ctx, input.PatientID); err != nil {
		return nil, err
	}
	if _, err := s.assistants.FindByID(ctx, input.AssistantID); err != nil {
		return nil, err
	}

	if doctor == nil {
		doctor, err = s.doctors.First(ctx)
		if err != nil {
			return nil, err
		}
	}

	assignment, err := s.assignments.Create(ctx, &domain.PatientAssistant{
		PatientID:          input.PatientID,
		AssistantID:        input.AssistantID,
		AssignedByDoctorID: doctor.ID,
		IsActive:           true,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().
		Uint("patient_id", input.PatientID).
		Uint("assistant_id", input.AssistantID).
		Uint("doctor_id", doctor.ID).
		Msg("patient assigned to assistant")
	return assignment, nil
}

// UpdateAssignment may flip an assignment inactive. An inactive assignment is
// never flipped back; re-assigning the pair creates a new row.
func (s *AssistantService) UpdateAssignment(ctx context.Context, actor policy.Actor, id uint, input ports.UpdateAssignmentInput) (*domain.PatientAssistant, error) {
	actor, _, err := withDoctorProfile(ctx, s.doctors, actor)
	if err != nil {
		return nil, err
	}

	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceAssignments, Op: policy.OpUpdate})
	if err := dec.Err(); err != nil {
		return nil, err
	}

	assignment, err := s.assignments.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.IsActive != nil && !*input.IsActive && assignment.IsActive {
		assignment.IsActive = false
		if err := s.assignments.Update(ctx, assignment); err != nil {
			return nil, err
		}
		s.logger.Info().Uint("assignment_id", id).Msg("assignment deactivated")
	}
	return assignment, nil
}

func (s *AssistantService) detail(ctx context.Context, id uint) (*ports.AssistantDetail, error) {
	assistant, err := s.assistants.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, assistant.UserID)
	if err != nil {
		return nil, err
	}
	return &ports.AssistantDetail{Assistant: *assistant, User: *user}, nil
}

func (s *AssistantService) setUserActive(ctx context.Context, userID uint, active bool) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	user.IsActive = active
	return s.users.Update(ctx, user)
}

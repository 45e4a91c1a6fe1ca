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

// DoctorService implements manager-gated doctor management. A doctor "delete"
// only deactivates the linked user; the profile row survives so referential
// children stay queryable.
type DoctorService struct {
	doctors ports.DoctorRepository
	users   ports.UserRepository
	logger  zerolog.Logger
}

func NewDoctorService(doctors ports.DoctorRepository, users ports.UserRepository, logger zerolog.Logger) *DoctorService {
	return &DoctorService{doctors: doctors, users: users, logger: logger}
}

func (s *DoctorService) List(ctx context.Context, actor policy.Actor, offset, limit int) ([]ports.DoctorDetail, error) {
	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceDoctors, Op: policy.OpList})
	if err := dec.Err(); err != nil {
		return nil, err
	}

	doctors, err := s.doctors.List(ctx, offset, limit)
	if err != nil {
		return nil, err
	}

	details := make([]ports.DoctorDetail, 0, len(doctors))
	for _, d := range doctors {
		user, err := s.users.FindByID(ctx, d.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		details = append(details, ports.DoctorDetail{Doctor: d, User: *user})
	}
	return details, nil
}

func (s *DoctorService) Create(ctx context.Context, actor policy.Actor, input ports.CreateDoctorInput) (*ports.DoctorDetail, error) {
	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceDoctors, Op: policy.OpCreate})
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

	// User first; the returned id links the profile within the same request.
	user, err := s.users.Create(ctx, &domain.User{
		Email:        input.Email,
		PasswordHash: string(hash),
		FullName:     input.FullName,
		Role:         domain.RoleDoctor,
		IsActive:     true,
	})
	if err != nil {
		return nil, err
	}

	doctor, err := s.doctors.Create(ctx, &domain.Doctor{
		UserID:         user.ID,
		Specialization: input.Specialization,
		Experience:     input.Experience,
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info().Uint("doctor_id", doctor.ID).Uint("user_id", user.ID).Msg("doctor created")
	return &ports.DoctorDetail{Doctor: *doctor, User: *user}, nil
}

func (s *DoctorService) Get(ctx context.Context, actor policy.Actor, id uint) (*ports.DoctorDetail, error) {
	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceDoctors, Op: policy.OpRead})
	if err := dec.Err(); err != nil {
		return nil, err
	}
	return s.detail(ctx, id)
}

func (s *DoctorService) Update(ctx context.Context, actor policy.Actor, id uint, input ports.UpdateDoctorInput) (*ports.DoctorDetail, error) {
	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceDoctors, Op: policy.OpUpdate})
	if err := dec.Err(); err != nil {
		return nil, err
	}

	doctor, err := s.doctors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Specialization != nil {
		doctor.Specialization = *input.Specialization
	}
	if input.Experience != nil {
		doctor.Experience = *input.Experience
	}
	if err := s.doctors.Update(ctx, doctor); err != nil {
		return nil, err
	}

	if input.IsActive != nil {
		if err := s.setUserActive(ctx, doctor.UserID, *input.IsActive); err != nil {
			return nil, err
		}
	}

	return s.detail(ctx, id)
}

func (s *DoctorService) Deactivate(ctx context.Context, actor policy.Actor, id uint) error {
	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceDoctors, Op: policy.OpDeactivate})
	if err := dec.Err(); err != nil {
		return err
	}

	doctor, err := s.doctors.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := s.setUserActive(ctx, doctor.UserID, false); err != nil {
		return err
	}

	s.logger.Info().Uint("doctor_id", id).Msg("doctor deactivated")
	return nil
}

func (s *DoctorService) detail(ctx context.Context, id uint) (*ports.DoctorDetail, error) {
	doctor, err := s.doctors.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	user, err := s.users.FindByID(ctx, doctor.UserID)
	if err != nil {
		return nil, err
	}
	return &ports.DoctorDetail{Doctor: *doctor, User: *user}, nil
}

func (s *DoctorService) setUserActive(ctx context.Context, userID uint, active bool) error {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return err
	}
	user.IsActive = active
	return s.users.Update(ctx, user)
}

package service

import (
	"context"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/policy"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

// withDoctorProfile fills Actor.DoctorID for doctor actors. A doctor-role
// user without a profile row cannot act on owned resources.
func withDoctorProfile(ctx context.Context, doctors ports.DoctorRepository, actor policy.Actor) (policy.Actor, *domain.Doctor, error) {
	if !actor.Authenticated || actor.Role != domain.RoleDoctor {
		return actor, nil, nil
	}
	doctor, err := doctors.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return actor, nil, err
	}
	actor.DoctorID = doctor.ID
	return actor, doctor, nil
}

// withAssistantProfile fills Actor.AssistantID for assistant actors.
func withAssistantProfile(ctx context.Context, assistants ports.AssistantRepository, actor policy.Actor) (policy.Actor, *domain.Assistant, error) {
	if !actor.Authenticated || actor.Role != domain.RoleAssistant {
		return actor, nil, nil
	}
	assistant, err := assistants.FindByUserID(ctx, actor.UserID)
	if err != nil {
		return actor, nil, err
	}
	actor.AssistantID = assistant.ID
	return actor, assistant, nil
}

package policy

import (
	"errors"
	"testing"

	"github.com/clinicore/clinic-system/internal/core/domain"
)

var (
	anonymous = Actor{}
	manager   = Actor{UserID: 1, Role: domain.RoleGeneralManager, Authenticated: true}
	doctor    = Actor{UserID: 2, Role: domain.RoleDoctor, DoctorID: 10, Authenticated: true}
	assistant = Actor{UserID: 3, Role: domain.RoleAssistant, AssistantID: 20, Authenticated: true}
)

func TestDecide(t *testing.T) {
	tests := []struct {
		name    string
		actor   Actor
		action  Action
		allowed bool
		reason  Reason
	}{
		{
			name:   "anonymous is denied before any role rule",
			actor:  anonymous,
			action: Action{Resource: ResourcePatients, Op: OpList},
			reason: ReasonUnauthenticated,
		},
		{
			name:    "manager may manage users",
			actor:   manager,
			action:  Action{Resource: ResourceUsers, Op: OpCreate},
			allowed: true,
		},
		{
			name:    "manager may read the statistics report",
			actor:   manager,
			action:  Action{Resource: ResourceReports, Op: OpList},
			allowed: true,
		},
		{
			name:    "manager ignores ownership",
			actor:   manager,
			action:  Action{Resource: ResourceTreatments, Op: OpUpdate, OwnerDoctorID: 99},
			allowed: true,
		},
		{
			name:    "doctor manages own patient",
			actor:   doctor,
			action:  Action{Resource: ResourcePatients, Op: OpUpdate, OwnerDoctorID: 10},
			allowed: true,
		},
		{
			name:   "doctor denied on another doctor's patient",
			actor:  doctor,
			action: Action{Resource: ResourcePatients, Op: OpUpdate, OwnerDoctorID: 11},
			reason: ReasonNotOwner,
		},
		{
			name:    "doctor may act on an unowned patient",
			actor:   doctor,
			action:  Action{Resource: ResourcePatients, Op: OpRead},
			allowed: true,
		},
		{
			name:   "doctor denied on another doctor's treatment",
			actor:  doctor,
			action: Action{Resource: ResourceTreatments, Op: OpDeactivate, OwnerDoctorID: 11},
			reason: ReasonNotOwner,
		},
		{
			name:    "doctor reads own patient's treatment report",
			actor:   doctor,
			action:  Action{Resource: ResourceReports, Op: OpRead, OwnerDoctorID: 10},
			allowed: true,
		},
		{
			name:   "doctor denied the statistics report",
			actor:  doctor,
			action: Action{Resource: ResourceReports, Op: OpList},
			reason: ReasonRoleMismatch,
		},
		{
			name:   "doctor denied a foreign treatment report",
			actor:  doctor,
			action: Action{Resource: ResourceReports, Op: OpRead, OwnerDoctorID: 11},
			reason: ReasonNotOwner,
		},
		{
			name:    "doctor manages assignments",
			actor:   doctor,
			action:  Action{Resource: ResourceAssignments, Op: OpCreate},
			allowed: true,
		},
		{
			name:    "doctor lists applications for own treatment",
			actor:   doctor,
			action:  Action{Resource: ResourceApplications, Op: OpList, OwnerDoctorID: 10},
			allowed: true,
		},
		{
			name:   "doctor denied applying a treatment",
			actor:  doctor,
			action: Action{Resource: ResourceApplications, Op: OpApply, AssistantAssigned: true},
			reason: ReasonRoleMismatch,
		},
		{
			name:   "doctor denied user management",
			actor:  doctor,
			action: Action{Resource: ResourceUsers, Op: OpList},
			reason: ReasonRoleMismatch,
		},
		{
			name:   "doctor denied doctor management",
			actor:  doctor,
			action: Action{Resource: ResourceDoctors, Op: OpCreate},
			reason: ReasonRoleMismatch,
		},
		{
			name:    "assistant lists assignments",
			actor:   assistant,
			action:  Action{Resource: ResourceAssignments, Op: OpList},
			allowed: true,
		},
		{
			name:   "assistant denied creating assignments",
			actor:  assistant,
			action: Action{Resource: ResourceAssignments, Op: OpCreate},
			reason: ReasonRoleMismatch,
		},
		{
			name:    "assigned assistant applies a treatment",
			actor:   assistant,
			action:  Action{Resource: ResourceApplications, Op: OpApply, AssistantAssigned: true},
			allowed: true,
		},
		{
			name:   "unassigned assistant denied applying",
			actor:  assistant,
			action: Action{Resource: ResourceApplications, Op: OpApply},
			reason: ReasonNotAssigned,
		},
		{
			name:    "assistant lists treatments",
			actor:   assistant,
			action:  Action{Resource: ResourceTreatments, Op: OpList},
			allowed: true,
		},
		{
			name:    "assigned assistant reads a treatment",
			actor:   assistant,
			action:  Action{Resource: ResourceTreatments, Op: OpRead, AssistantAssigned: true},
			allowed: true,
		},
		{
			name:   "unassigned assistant denied reading a treatment",
			actor:  assistant,
			action: Action{Resource: ResourceTreatments, Op: OpRead},
			reason: ReasonNotAssigned,
		},
		{
			name:   "assistant denied patient management",
			actor:  assistant,
			action: Action{Resource: ResourcePatients, Op: OpCreate},
			reason: ReasonRoleMismatch,
		},
		{
			name:   "assistant denied reports",
			actor:  assistant,
			action: Action{Resource: ResourceReports, Op: OpRead},
			reason: ReasonRoleMismatch,
		},
		{
			name:   "unknown role is denied",
			actor:  Actor{UserID: 4, Role: domain.Role("auditor"), Authenticated: true},
			action: Action{Resource: ResourcePatients, Op: OpList},
			reason: ReasonRoleMismatch,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			dec := Decide(tc.actor, tc.action)
			if dec.Allowed != tc.allowed {
				t.Fatalf("allowed = %v, want %v (reason %q)", dec.Allowed, tc.allowed, dec.Reason)
			}
			if !tc.allowed && dec.Reason != tc.reason {
				t.Fatalf("reason = %q, want %q", dec.Reason, tc.reason)
			}
		})
	}
}

func TestDecisionErr(t *testing.T) {
	if err := (Decision{Allowed: true, Reason: ReasonOK}).Err(); err != nil {
		t.Fatalf("allow must map to nil, got %v", err)
	}

	tests := []struct {
		reason Reason
		want   error
	}{
		{ReasonUnauthenticated, domain.ErrUnauthenticated},
		{ReasonNotOwner, domain.ErrNotOwner},
		{ReasonNotAssigned, domain.ErrNotAssigned},
		{ReasonRoleMismatch, domain.ErrRoleMismatch},
	}
	for _, tc := range tests {
		err := Decision{Reason: tc.reason}.Err()
		if !errors.Is(err, tc.want) {
			t.Fatalf("reason %q: got %v, want %v", tc.reason, err, tc.want)
		}
	}
	for _, reason := range []Reason{ReasonNotOwner, ReasonNotAssigned, ReasonRoleMismatch} {
		if err := (Decision{Reason: reason}).Err(); !errors.Is(err, domain.ErrForbidden) {
			t.Fatalf("reason %q must wrap ErrForbidden, got %v", reason, err)
		}
	}
}

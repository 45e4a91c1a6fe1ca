package service

import (
	"context"
	"errors"
	"testing"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

func TestAssistantService_Assign_ByDoctor(t *testing.T) {
	f := newClinicFixture(t)
	doctor, doctorActor := f.addDoctor("doc@clinic.test", "Dr A")
	assistant, _ := f.addAssistant("asst@clinic.test", "Amy")
	patient := f.addPatient("Pat", "One", doctor.ID)

	assignment, err := f.assistantService().Assign(context.Background(), doctorActor, ports.AssignPatientInput{
		PatientID: patient.ID, AssistantID: assistant.ID,
	})
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if assignment.AssignedByDoctorID != doctor.ID {
		t.Fatalf("assignment not attributed to acting doctor: %+v", assignment)
	}
	if !assignment.IsActive {
		t.Fatalf("new assignments must start active")
	}
}

func TestAssistantService_Assign_ManagerUsesFirstDoctor(t *testing.T) {
	f := newClinicFixture(t)
	first, _ := f.addDoctor("first@clinic.test", "Dr First")
	f.addDoctor("second@clinic.test", "Dr Second")
	assistant, _ := f.addAssistant("asst@clinic.test", "Amy")
	patient := f.addPatient("Pat", "One", first.ID)
	_, manager := f.addManager("gm@clinic.test")

	assignment, err := f.assistantService().Assign(context.Background(), manager, ports.AssignPatientInput{
		PatientID: patient.ID, AssistantID: assistant.ID,
	})
	if err != nil {
		t.Fatalf("assign failed: %v", err)
	}
	if assignment.AssignedByDoctorID != first.ID {
		t.Fatalf("manager assignment should be attributed to the first doctor, got %d", assignment.AssignedByDoctorID)
	}
}

func TestAssistantService_Assign_NoDoctorsOnRecord(t *testing.T) {
	f := newClinicFixture(t)
	assistant, _ := f.addAssistant("asst@clinic.test", "Amy")
	patient := f.addPatient("Pat", "One", 0)
	_, manager := f.addManager("gm@clinic.test")

	_, err := f.assistantService().Assign(context.Background(), manager, ports.AssignPatientInput{
		PatientID: patient.ID, AssistantID: assistant.ID,
	})
	if !errors.Is(err, domain.ErrDoctorNotFound) {
		t.Fatalf("expected ErrDoctorNotFound, got %v", err)
	}
}

func TestAssistantService_Assign_MissingEnds(t *testing.T) {
	f := newClinicFixture(t)
	doctor, doctorActor := f.addDoctor("doc@clinic.test", "Dr A")
	assistant, _ := f.addAssistant("asst@clinic.test", "Amy")
	patient := f.addPatient("Pat", "One", doctor.ID)

	svc := f.assistantService()

	if _, err := svc.Assign(context.Background(), doctorActor, ports.AssignPatientInput{
		PatientID: 99, AssistantID: assistant.ID,
	}); !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
	if _, err := svc.Assign(context.Background(), doctorActor, ports.AssignPatientInput{
		PatientID: patient.ID, AssistantID: 99,
	}); !errors.Is(err, domain.ErrAssistantNotFound) {
		t.Fatalf("expected ErrAssistantNotFound, got %v", err)
	}
}

func TestAssistantService_Assign_AssistantForbidden(t *testing.T) {
	f := newClinicFixture(t)
	doctor, _ := f.addDoctor("doc@clinic.test", "Dr A")
	assistant, assistantActor := f.addAssistant("asst@clinic.test", "Amy")
	patient := f.addPatient("Pat", "One", doctor.ID)

	_, err := f.assistantService().Assign(context.Background(), assistantActor, ports.AssignPatientInput{
		PatientID: patient.ID, AssistantID: assistant.ID,
	})
	if !errors.Is(err, domain.ErrRoleMismatch) {
		t.Fatalf("expected ErrRoleMismatch, got %v", err)
	}
}

func TestAssistantService_ListAssignments_AssistantPinnedToOwn(t *testing.T) {
	f := newClinicFixture(t)
	doctor, _ := f.addDoctor("doc@clinic.test", "Dr A")
	mine, mineActor := f.addAssistant("mine@clinic.test", "Mine")
	other, _ := f.addAssistant("other@clinic.test", "Other")
	p1 := f.addPatient("Pat", "One", doctor.ID)
	p2 := f.addPatient("Pat", "Two", doctor.ID)
	f.assign(p1.ID, mine.ID, doctor.ID)
	f.assign(p2.ID, other.ID, doctor.ID)

	// The assistant asks for someone else's assignments; the filter is
	// overridden with their own id.
	got, err := f.assistantService().ListAssignments(context.Background(), mineActor, 0, other.ID)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(got) != 1 || got[0].AssistantID != mine.ID {
		t.Fatalf("assistant must only see own assignments, got %+v", got)
	}
}

func TestAssistantService_UpdateAssignment_NoReactivation(t *testing.T) {
	f := newClinicFixture(t)
	doctor, doctorActor := f.addDoctor("doc@clinic.test", "Dr A")
	assistant, _ := f.addAssistant("asst@clinic.test", "Amy")
	patient := f.addPatient("Pat", "One", doctor.ID)
	assignment := f.assign(patient.ID, assistant.ID, doctor.ID)

	svc := f.assistantService()

	off := false
	updated, err := svc.UpdateAssignment(context.Background(), doctorActor, assignment.ID, ports.UpdateAssignmentInput{IsActive: &off})
	if err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("expected assignment inactive")
	}

	on := true
	updated, err = svc.UpdateAssignment(context.Background(), doctorActor, assignment.ID, ports.UpdateAssignmentInput{IsActive: &on})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated.IsActive {
		t.Fatalf("inactive assignments must never be reactivated in place")
	}
}

func TestAssistantService_Create_ManagerOnly(t *testing.T) {
	f := newClinicFixture(t)
	_, manager := f.addManager("gm@clinic.test")

	detail, err := f.assistantService().Create(context.Background(), manager, ports.CreateAssistantInput{
		Email: "new@clinic.test", Password: "pass12345", FullName: "New Assistant",
		Age: 28, Specialization: "wound care",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if detail.User.Role != domain.RoleAssistant {
		t.Fatalf("expected assistant role, got %s", detail.User.Role)
	}
	if detail.Assistant.UserID != detail.User.ID {
		t.Fatalf("profile not linked to user")
	}

	_, doctorActor := f.addDoctor("doc@clinic.test", "Dr A")
	if _, err := f.assistantService().Create(context.Background(), doctorActor, ports.CreateAssistantInput{
		Email: "x@clinic.test", Password: "pass12345", FullName: "X",
	}); !errors.Is(err, domain.ErrRoleMismatch) {
		t.Fatalf("expected ErrRoleMismatch for doctor, got %v", err)
	}
}

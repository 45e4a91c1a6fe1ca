package service

import (
	"context"
	"errors"
	"testing"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

func TestPatientService_List_DoctorScoped(t *testing.T) {
	f := newClinicFixture(t)
	docA, actorA := f.addDoctor("a@clinic.test", "Dr A")
	docB, _ := f.addDoctor("b@clinic.test", "Dr B")
	f.addPatient("Pat", "One", docA.ID)
	f.addPatient("Pat", "Two", docB.ID)
	f.addPatient("Pat", "Three", docA.ID)

	svc := f.patientService()

	mine, err := svc.List(context.Background(), actorA, 0, 0)
	if err != nil {
		t.Fatalf("doctor list failed: %v", err)
	}
	if len(mine) != 2 {
		t.Fatalf("doctor should only see own patients, got %d", len(mine))
	}
	for _, p := range mine {
		if p.DoctorID == nil || *p.DoctorID != docA.ID {
			t.Fatalf("leaked foreign patient: %+v", p)
		}
	}

	_, manager := f.addManager("gm@clinic.test")
	all, err := svc.List(context.Background(), manager, 0, 0)
	if err != nil {
		t.Fatalf("manager list failed: %v", err)
	}
	if len(all) != 3 {
		t.Fatalf("manager should see all patients, got %d", len(all))
	}
}

func TestPatientService_Create_DoctorOwnsByDefault(t *testing.T) {
	f := newClinicFixture(t)
	doc, actor := f.addDoctor("a@clinic.test", "Dr A")

	patient, err := f.patientService().Create(context.Background(), actor, ports.CreatePatientInput{
		FirstName: "New", LastName: "Patient", Age: 50,
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if patient.DoctorID == nil || *patient.DoctorID != doc.ID {
		t.Fatalf("patient not owned by creating doctor: %+v", patient)
	}
	if !patient.IsActive {
		t.Fatalf("new patients must start active")
	}
}

func TestPatientService_Get_ForeignPatientForbidden(t *testing.T) {
	f := newClinicFixture(t)
	_, actorA := f.addDoctor("a@clinic.test", "Dr A")
	docB, _ := f.addDoctor("b@clinic.test", "Dr B")
	foreign := f.addPatient("Not", "Yours", docB.ID)

	_, err := f.patientService().Get(context.Background(), actorA, foreign.ID)
	if !errors.Is(err, domain.ErrNotOwner) {
		t.Fatalf("expected ErrNotOwner, got %v", err)
	}
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("ErrNotOwner must wrap ErrForbidden")
	}
}

func TestPatientService_Deactivate_KeepsRowRetrievable(t *testing.T) {
	f := newClinicFixture(t)
	doc, actor := f.addDoctor("a@clinic.test", "Dr A")
	patient := f.addPatient("Soft", "Delete", doc.ID)

	svc := f.patientService()
	if err := svc.Deactivate(context.Background(), actor, patient.ID); err != nil {
		t.Fatalf("deactivate failed: %v", err)
	}

	got, err := svc.Get(context.Background(), actor, patient.ID)
	if err != nil {
		t.Fatalf("deactivated patient must stay retrievable by id: %v", err)
	}
	if got.IsActive {
		t.Fatalf("expected IsActive=false after deactivate")
	}
}

func TestPatientService_Get_Missing(t *testing.T) {
	f := newClinicFixture(t)
	_, manager := f.addManager("gm@clinic.test")

	_, err := f.patientService().Get(context.Background(), manager, 99)
	if !errors.Is(err, domain.ErrPatientNotFound) {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestPatientService_AssistantForbidden(t *testing.T) {
	f := newClinicFixture(t)
	_, assistantActor := f.addAssistant("asst@clinic.test", "Amy")

	_, err := f.patientService().List(context.Background(), assistantActor, 0, 0)
	if !errors.Is(err, domain.ErrRoleMismatch) {
		t.Fatalf("expected ErrRoleMismatch, got %v", err)
	}
}

package service

import (
	"context"
	"testing"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/policy"
)

// clinicFixture wires every stub repository together and offers seeding
// shortcuts so each test reads as a scenario.
type clinicFixture struct {
	t *testing.T

	users        *stubUserRepo
	doctors      *stubDoctorRepo
	assistants   *stubAssistantRepo
	patients     *stubPatientRepo
	treatments   *stubTreatmentRepo
	assignments  *stubAssignmentRepo
	applications *stubApplicationRepo
}

func newClinicFixture(t *testing.T) *clinicFixture {
	t.Helper()
	return &clinicFixture{
		t:            t,
		users:        newStubUserRepo(),
		doctors:      newStubDoctorRepo(),
		assistants:   newStubAssistantRepo(),
		patients:     newStubPatientRepo(),
		treatments:   newStubTreatmentRepo(),
		assignments:  newStubAssignmentRepo(),
		applications: newStubApplicationRepo(),
	}
}

func (f *clinicFixture) addManager(email string) (*domain.User, policy.Actor) {
	f.t.Helper()
	user, err := f.users.Create(context.Background(), &domain.User{
		Email: email, PasswordHash: "x", FullName: "Manager " + email,
		Role: domain.RoleGeneralManager, IsActive: true,
	})
	if err != nil {
		f.t.Fatalf("seed manager: %v", err)
	}
	return user, policy.Actor{UserID: user.ID, Role: domain.RoleGeneralManager, Authenticated: true}
}

func (f *clinicFixture) addDoctor(email, name string) (*domain.Doctor, policy.Actor) {
	f.t.Helper()
	user, err := f.users.Create(context.Background(), &domain.User{
		Email: email, PasswordHash: "x", FullName: name,
		Role: domain.RoleDoctor, IsActive: true,
	})
	if err != nil {
		f.t.Fatalf("seed doctor user: %v", err)
	}
	doctor, err := f.doctors.Create(context.Background(), &domain.Doctor{
		UserID: user.ID, Specialization: "general", Experience: 5,
	})
	if err != nil {
		f.t.Fatalf("seed doctor: %v", err)
	}
	return doctor, policy.Actor{UserID: user.ID, Role: domain.RoleDoctor, Authenticated: true}
}

func (f *clinicFixture) addAssistant(email, name string) (*domain.Assistant, policy.Actor) {
	f.t.Helper()
	user, err := f.users.Create(context.Background(), &domain.User{
		Email: email, PasswordHash: "x", FullName: name,
		Role: domain.RoleAssistant, IsActive: true,
	})
	if err != nil {
		f.t.Fatalf("seed assistant user: %v", err)
	}
	assistant, err := f.assistants.Create(context.Background(), &domain.Assistant{
		UserID: user.ID, Age: 30, Specialization: "nursing",
	})
	if err != nil {
		f.t.Fatalf("seed assistant: %v", err)
	}
	return assistant, policy.Actor{UserID: user.ID, Role: domain.RoleAssistant, Authenticated: true}
}

func (f *clinicFixture) addPatient(first, last string, doctorID uint) *domain.Patient {
	f.t.Helper()
	p := &domain.Patient{FirstName: first, LastName: last, Age: 40, IsActive: true}
	if doctorID != 0 {
		p.DoctorID = &doctorID
	}
	patient, err := f.patients.Create(context.Background(), p)
	if err != nil {
		f.t.Fatalf("seed patient: %v", err)
	}
	return patient
}

func (f *clinicFixture) addTreatment(name string, doctorID, patientID uint) *domain.Treatment {
	f.t.Helper()
	treatment, err := f.treatments.Create(context.Background(), &domain.Treatment{
		Name: name, Description: name + " description",
		DoctorID: doctorID, PatientID: patientID, IsActive: true,
	})
	if err != nil {
		f.t.Fatalf("seed treatment: %v", err)
	}
	return treatment
}

func (f *clinicFixture) assign(patientID, assistantID, doctorID uint) *domain.PatientAssistant {
	f.t.Helper()
	assignment, err := f.assignments.Create(context.Background(), &domain.PatientAssistant{
		PatientID: patientID, AssistantID: assistantID,
		AssignedByDoctorID: doctorID, IsActive: true,
	})
	if err != nil {
		f.t.Fatalf("seed assignment: %v", err)
	}
	return assignment
}

func (f *clinicFixture) treatmentService() *TreatmentService {
	return NewTreatmentService(f.treatments, f.applications, f.assignments, f.patients, f.doctors, f.assistants, testLogger())
}

func (f *clinicFixture) assistantService() *AssistantService {
	return NewAssistantService(f.assistants, f.users, f.doctors, f.patients, f.assignments, testLogger())
}

func (f *clinicFixture) patientService() *PatientService {
	return NewPatientService(f.patients, f.doctors, testLogger())
}

func (f *clinicFixture) doctorService() *DoctorService {
	return NewDoctorService(f.doctors, f.users, testLogger())
}

func (f *clinicFixture) reportService(cache ReportCache) *ReportService {
	return NewReportService(f.doctors, f.users, f.patients, f.treatments, f.applications, f.assistants, cache, testLogger())
}

package service

import (
	"context"
	"errors"
	"math"

	"github.com/rs/zerolog"

	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/policy"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

// unknownName is the fallback when a doctor or assistant display name cannot
// be resolved. Resolution failures never fail a report.
const unknownName = "Unknown"

// ReportCache abstracts the statistics-report cache (Redis). A miss returns
// (nil, nil).
type ReportCache interface {
	GetDoctorPatientReport(ctx context.Context) (*ports.DoctorPatientReport, error)
	SetDoctorPatientReport(ctx context.Context, report *ports.DoctorPatientReport) error
}

// ReportService folds store collections into denormalized report views.
type ReportService struct {
	doctors      ports.DoctorRepository
	users        ports.UserRepository
	patients     ports.PatientRepository
	treatments   ports.TreatmentRepository
	applications ports.ApplicationRepository
	assistants   ports.AssistantRepository
	cache        ReportCache
	logger       zerolog.Logger
}

// NewReportService builds a ReportService. cache may be nil, in which case
// every request rebuilds the statistics report.
func NewReportService(
	doctors ports.DoctorRepository,
	users ports.UserRepository,
	patients ports.PatientRepository,
	treatments ports.TreatmentRepository,
	applications ports.ApplicationRepository,
	assistants ports.AssistantRepository,
	cache ReportCache,
	logger zerolog.Logger,
) *ReportService {
	return &ReportService{
		doctors:      doctors,
		users:        users,
		patients:     patients,
		treatments:   treatments,
		applications: applications,
		assistants:   assistants,
		cache:        cache,
		logger:       logger,
	}
}

// DoctorPatientReport builds the clinic-wide statistics report: every active
// doctor with its active patients and treatment counts. Manager-only.
func (s *ReportService) DoctorPatientReport(ctx context.Context, actor policy.Actor) (*ports.DoctorPatientReport, error) {
	dec := policy.Decide(actor, policy.Action{Resource: policy.ResourceReports, Op: policy.OpList})
	if err := dec.Err(); err != nil {
		return nil, err
	}

	if s.cache != nil {
		cached, err := s.cache.GetDoctorPatientReport(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("report cache read failed, rebuilding")
		} else if cached != nil {
			return cached, nil
		}
	}

	report, err := s.buildDoctorPatientReport(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if err := s.cache.SetDoctorPatientReport(ctx, report); err != nil {
			s.logger.Warn().Err(err).Msg("report cache write failed")
		}
	}
	return report, nil
}

func (s *ReportService) buildDoctorPatientReport(ctx context.Context) (*ports.DoctorPatientReport, error) {
	doctors, err := s.doctors.List(ctx, 0, 0)
	if err != nil {
		return nil, err
	}

	report := &ports.DoctorPatientReport{
		Doctors: []ports.DoctorReportEntry{},
		Statistics: ports.ReportStatistics{
			PatientsPerDoctor:   make(map[uint]int),
			TreatmentsPerDoctor: make(map[uint]int),
		},
	}

	totalPatients := 0
	for _, doctor := range doctors {
		user, err := s.users.FindByID(ctx, doctor.UserID)
		if err != nil {
			if errors.Is(err, domain.ErrUserNotFound) {
				continue
			}
			return nil, err
		}
		if !user.IsActive {
			continue
		}

		patients, err := s.patients.ListByDoctor(ctx, doctor.ID, true)
		if err != nil {
			return nil, err
		}
		treatments, err := s.treatments.List(ctx, ports.TreatmentFilter{DoctorID: doctor.ID})
		if err != nil {
			return nil, err
		}

		entry := ports.DoctorReportEntry{
			ID:             doctor.ID,
			Name:           user.FullName,
			Email:          user.Email,
			Specialization: doctor.Specialization,
			Patients:       make([]ports.PatientSummary, 0, len(patients)),
			PatientCount:   len(patients),
			TreatmentCount: len(treatments),
		}
		for _, p := range patients {
			entry.Patients = append(entry.Patients, ports.PatientSummary{ID: p.ID, Name: p.DisplayName()})
		}

		report.Doctors = append(report.Doctors, entry)
		report.Statistics.PatientsPerDoctor[doctor.ID] = len(patients)
		report.Statistics.TreatmentsPerDoctor[doctor.ID] = len(treatments)
		totalPatients += len(patients)
	}

	report.Statistics.TotalDoctors = len(report.Doctors)
	report.Statistics.TotalPatients = totalPatients
	if n := report.Statistics.TotalDoctors; n > 0 {
		report.Statistics.AvgPatientsPerDoctor = round2(float64(totalPatients) / float64(n))
	}
	return report, nil
}

// PatientTreatmentReport lists every treatment (active or not) for one
// patient, with prescriber and applier names. Accessible to managers and the
// patient's own doctor.
func (s *ReportService) PatientTreatmentReport(ctx context.Context, actor policy.Actor, patientID uint) ([]ports.TreatmentReportEntry, error) {
	actor, _, err := withDoctorProfile(ctx, s.doctors, actor)
	if err != nil {
		return nil, err
	}

	patient, err := s.patients.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	dec := policy.Decide(actor, policy.Action{
		Resource:      policy.ResourceReports,
		Op:            policy.OpRead,
		OwnerDoctorID: deref(patient.DoctorID),
	})
	if err := dec.Err(); err != nil {
		return nil, err
	}

	treatments, err := s.treatments.List(ctx, ports.TreatmentFilter{PatientID: patientID})
	if err != nil {
		return nil, err
	}

	entries := make([]ports.TreatmentReportEntry, 0, len(treatments))
	for _, t := range treatments {
		entry := ports.TreatmentReportEntry{
			ID:           t.ID,
			Name:         t.Name,
			Description:  t.Description,
			PrescribedBy: s.doctorName(ctx, t.DoctorID),
			IsActive:     t.IsActive,
			Applications: []ports.ApplicationReportEntry{},
		}

		applications, err := s.applications.List(ctx, t.ID, 0)
		if err != nil {
			return nil, err
		}
		for _, a := range applications {
			entry.Applications = append(entry.Applications, ports.ApplicationReportEntry{
				ID:        a.ID,
				AppliedBy: s.assistantName(ctx, a.AssistantID),
				Notes:     a.Notes,
			})
		}

		entries = append(entries, entry)
	}
	return entries, nil
}

// doctorName resolves a doctor's display name, degrading to "Unknown".
func (s *ReportService) doctorName(ctx context.Context, doctorID uint) string {
	doctor, err := s.doctors.FindByID(ctx, doctorID)
	if err != nil {
		return unknownName
	}
	user, err := s.users.FindByID(ctx, doctor.UserID)
	if err != nil {
		return unknownName
	}
	return user.FullName
}

// assistantName resolves an assistant's display name, degrading to "Unknown".
func (s *ReportService) assistantName(ctx context.Context, assistantID uint) string {
	assistant, err := s.assistants.FindByID(ctx, assistantID)
	if err != nil {
		return unknownName
	}
	user, err := s.users.FindByID(ctx, assistant.UserID)
	if err != nil {
		return unknownName
	}
	return user.FullName
}

// round2 rounds to 2 decimal places.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

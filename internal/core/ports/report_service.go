package ports

import (
	"context"

	"github.com/clinicore/clinic-system/internal/core/policy"
)

// PatientSummary is the lightweight patient view used in reports.
type PatientSummary struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

// DoctorReportEntry is one active doctor's slice of the statistics report.
type DoctorReportEntry struct {
	ID             uint             `json:"id"`
	Name           string           `json:"name"`
	Email          string           `json:"email"`
	Specialization string           `json:"specialization"`
	Patients       []PatientSummary `json:"patients"`
	PatientCount   int              `json:"patient_count"`
	TreatmentCount int              `json:"treatment_count"`
}

// ReportStatistics aggregates the per-doctor numbers. The maps are keyed by
// doctor id; AvgPatientsPerDoctor is rounded to 2 decimal places and 0 when
// no doctors exist.
type ReportStatistics struct {
	TotalDoctors         int          `json:"total_doctors"`
	TotalPatients        int          `json:"total_patients"`
	PatientsPerDoctor    map[uint]int `json:"patients_per_doctor"`
	TreatmentsPerDoctor  map[uint]int `json:"treatments_per_doctor"`
	AvgPatientsPerDoctor float64      `json:"avg_patients_per_doctor"`
}

// DoctorPatientReport is the manager-facing statistics report.
type DoctorPatientReport struct {
	Doctors    []DoctorReportEntry `json:"doctors"`
	Statistics ReportStatistics    `json:"statistics"`
}

// ApplicationReportEntry annotates one treatment application with the
// applying assistant's display name ("Unknown" when unresolvable).
type ApplicationReportEntry struct {
	ID        uint   `json:"id"`
	AppliedBy string `json:"applied_by"`
	Notes     string `json:"notes"`
}

// TreatmentReportEntry annotates one treatment with the prescribing doctor's
// display name ("Unknown" when unresolvable) and its applications.
type TreatmentReportEntry struct {
	ID           uint                     `json:"id"`
	Name         string                   `json:"name"`
	Description  string                   `json:"description"`
	PrescribedBy string                   `json:"prescribed_by"`
	IsActive     bool                     `json:"is_active"`
	Applications []ApplicationReportEntry `json:"applications"`
}

// ReportService builds the denormalized reporting views.
type ReportService interface {
	DoctorPatientReport(ctx context.Context, actor policy.Actor) (*DoctorPatientReport, error)
	PatientTreatmentReport(ctx context.Context, actor policy.Actor, patientID uint) ([]TreatmentReportEntry, error)
}

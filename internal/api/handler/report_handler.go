package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/clinic-system/internal/api/metrics"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

// ReportHandler serves the reporting aggregations.
type ReportHandler struct {
	service ports.ReportService
}

func NewReportHandler(service ports.ReportService) *ReportHandler {
	return &ReportHandler{service: service}
}

// DoctorsPatients returns the clinic-wide statistics report.
//
// @Summary      Doctor and patient statistics
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  ports.DoctorPatientReport
// @Failure      403  {object}  map[string]string
// @Router       /reports/doctors-patients [get]
func (h *ReportHandler) DoctorsPatients(c echo.Context) error {
	metrics.ReportRequestsTotal.WithLabelValues("doctors_patients").Inc()

	report, err := h.service.DoctorPatientReport(c.Request().Context(), ctxActor(c))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, report)
}

// PatientTreatments returns one patient's full treatment history.
//
// @Summary      Patient treatment history
// @Tags         reports
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Patient id"
// @Success      200  {array}   ports.TreatmentReportEntry
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /reports/patients/{id}/treatments [get]
func (h *ReportHandler) PatientTreatments(c echo.Context) error {
	metrics.ReportRequestsTotal.WithLabelValues("patient_treatments").Inc()

	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	entries, err := h.service.PatientTreatmentReport(c.Request().Context(), ctxActor(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, entries)
}

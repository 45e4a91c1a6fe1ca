package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/clinic-system/internal/api/metrics"
	"github.com/clinicore/clinic-system/internal/core/domain"
	"github.com/clinicore/clinic-system/internal/core/ports"
)

// TreatmentHandler serves treatment management and the application workflow.
type TreatmentHandler struct {
	service ports.TreatmentService
}

func NewTreatmentHandler(service ports.TreatmentService) *TreatmentHandler {
	return &TreatmentHandler{service: service}
}

type createTreatmentRequest struct {
	Name        string `json:"name" validate:"required"`
	Description string `json:"description"`
	PatientID   uint   `json:"patient_id" validate:"required"`
}

type updateTreatmentRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	IsActive    *bool   `json:"is_active"`
}

type applyTreatmentRequest struct {
	TreatmentID uint   `json:"treatment_id" validate:"required"`
	Notes       string `json:"notes"`
}

// List returns the treatments visible to the caller: doctors see their own,
// assistants those of patients assigned to them, managers all.
//
// @Summary      List treatments
// @Tags         treatments
// @Produce      json
// @Security     BearerAuth
// @Param        doctor_id   query     int   false  "Filter by doctor"
// @Param        patient_id  query     int   false  "Filter by patient"
// @Param        active      query     bool  false  "Only active treatments"
// @Param        offset      query     int   false  "Pagination offset"
// @Param        limit       query     int   false  "Page size"
// @Success      200         {array}   domain.Treatment
// @Failure      403         {object}  map[string]string
// @Router       /treatments [get]
func (h *TreatmentHandler) List(c echo.Context) error {
	treatments, err := h.service.List(c.Request().Context(), ctxActor(c), ports.ListTreatmentsInput{
		DoctorID:   queryUint(c, "doctor_id"),
		PatientID:  queryUint(c, "patient_id"),
		ActiveOnly: queryBool(c, "active"),
		Offset:     queryInt(c, "offset", 0),
		Limit:      queryInt(c, "limit", 0),
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, treatments)
}

// Create prescribes a treatment for a patient.
//
// @Summary      Create a treatment
// @Tags         treatments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createTreatmentRequest  true  "Treatment details"
// @Success      201   {object}  domain.Treatment
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /treatments [post]
func (h *TreatmentHandler) Create(c echo.Context) error {
	var req createTreatmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	treatment, err := h.service.Create(c.Request().Context(), ctxActor(c), ports.CreateTreatmentInput{
		Name:        req.Name,
		Description: req.Description,
		PatientID:   req.PatientID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, treatment)
}

// Get returns one treatment.
//
// @Summary      Get a treatment by id
// @Tags         treatments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Treatment id"
// @Success      200  {object}  domain.Treatment
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /treatments/{id} [get]
func (h *TreatmentHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	treatment, err := h.service.Get(c.Request().Context(), ctxActor(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, treatment)
}

// Update modifies a treatment.
//
// @Summary      Update a treatment
// @Tags         treatments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                     true  "Treatment id"
// @Param        body  body      updateTreatmentRequest  true  "Fields to update"
// @Success      200   {object}  domain.Treatment
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /treatments/{id} [put]
func (h *TreatmentHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateTreatmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	treatment, err := h.service.Update(c.Request().Context(), ctxActor(c), id, ports.UpdateTreatmentInput{
		Name:        req.Name,
		Description: req.Description,
		IsActive:    req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, treatment)
}

// Delete deactivates a treatment. Treatments with recorded applications are
// never deleted.
//
// @Summary      Delete a treatment
// @Tags         treatments
// @Security     BearerAuth
// @Param        id  path  int  true  "Treatment id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Failure      422  {object}  map[string]string
// @Router       /treatments/{id} [delete]
func (h *TreatmentHandler) Delete(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), ctxActor(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// Apply records that the acting assistant applied a treatment.
//
// @Summary      Apply a treatment
// @Tags         applications
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      applyTreatmentRequest  true  "Application details"
// @Success      201   {object}  domain.TreatmentApplication
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /assistants/treatments/apply [post]
func (h *TreatmentHandler) Apply(c echo.Context) error {
	var req applyTreatmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	application, err := h.service.Apply(c.Request().Context(), ctxActor(c), ports.ApplyTreatmentInput{
		TreatmentID: req.TreatmentID,
		Notes:       req.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrNotAssigned):
			metrics.TreatmentApplicationsTotal.WithLabelValues("not_assigned").Inc()
		default:
			metrics.TreatmentApplicationsTotal.WithLabelValues("error").Inc()
		}
		return err
	}

	metrics.TreatmentApplicationsTotal.WithLabelValues("success").Inc()
	return c.JSON(http.StatusCreated, application)
}

// ListApplications returns treatment applications. Assistants only ever see
// their own.
//
// @Summary      List treatment applications
// @Tags         applications
// @Produce      json
// @Security     BearerAuth
// @Param        treatment_id  query     int  false  "Filter by treatment"
// @Param        assistant_id  query     int  false  "Filter by assistant"
// @Success      200           {array}   domain.TreatmentApplication
// @Failure      403           {object}  map[string]string
// @Router       /assistants/treatments/applications [get]
func (h *TreatmentHandler) ListApplications(c echo.Context) error {
	applications, err := h.service.ListApplications(c.Request().Context(), ctxActor(c),
		queryUint(c, "treatment_id"), queryUint(c, "assistant_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, applications)
}

package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/clinic-system/internal/core/ports"
)

// AssistantHandler serves assistant management plus the patient-assignment
// workflow.
type AssistantHandler struct {
	service ports.AssistantService
}

func NewAssistantHandler(service ports.AssistantService) *AssistantHandler {
	return &AssistantHandler{service: service}
}

type createAssistantRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FullName       string `json:"full_name" validate:"required"`
	Age            int    `json:"age" validate:"gt=0"`
	Specialization string `json:"specialization" validate:"required"`
}

type updateAssistantRequest struct {
	Age            *int    `json:"age"`
	Specialization *string `json:"specialization"`
	IsActive       *bool   `json:"is_active"`
}

type assignPatientRequest struct {
	PatientID   uint `json:"patient_id" validate:"required"`
	AssistantID uint `json:"assistant_id" validate:"required"`
}

type updateAssignmentRequest struct {
	IsActive *bool `json:"is_active"`
}

// List returns all assistants with their user records.
//
// @Summary      List assistants
// @Tags         assistants
// @Produce      json
// @Security     BearerAuth
// @Param        offset  query     int  false  "Pagination offset"
// @Param        limit   query     int  false  "Page size"
// @Success      200     {array}   ports.AssistantDetail
// @Failure      403     {object}  map[string]string
// @Router       /assistants [get]
func (h *AssistantHandler) List(c echo.Context) error {
	assistants, err := h.service.List(c.Request().Context(), ctxActor(c),
		queryInt(c, "offset", 0), queryInt(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assistants)
}

// Create registers an assistant account and profile in one request.
//
// @Summary      Create an assistant
// @Tags         assistants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAssistantRequest  true  "Assistant details"
// @Success      201   {object}  ports.AssistantDetail
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /assistants [post]
func (h *AssistantHandler) Create(c echo.Context) error {
	var req createAssistantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	detail, err := h.service.Create(c.Request().Context(), ctxActor(c), ports.CreateAssistantInput{
		Email:          req.Email,
		Password:       req.Password,
		FullName:       req.FullName,
		Age:            req.Age,
		Specialization: req.Specialization,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, detail)
}

// Get returns one assistant.
//
// @Summary      Get an assistant by id
// @Tags         assistants
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Assistant id"
// @Success      200  {object}  ports.AssistantDetail
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /assistants/{id} [get]
func (h *AssistantHandler) Get(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	detail, err := h.service.Get(c.Request().Context(), ctxActor(c), id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// Update modifies an assistant profile. Toggling is_active mirrors to the user.
//
// @Summary      Update an assistant
// @Tags         assistants
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                     true  "Assistant id"
// @Param        body  body      updateAssistantRequest  true  "Fields to update"
// @Success      200   {object}  ports.AssistantDetail
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /assistants/{id} [put]
func (h *AssistantHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateAssistantRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	detail, err := h.service.Update(c.Request().Context(), ctxActor(c), id, ports.UpdateAssistantInput{
		Age:            req.Age,
		Specialization: req.Specialization,
		IsActive:       req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// Deactivate soft-deletes an assistant.
//
// @Summary      Deactivate an assistant
// @Tags         assistants
// @Security     BearerAuth
// @Param        id  path  int  true  "Assistant id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /assistants/{id} [delete]
func (h *AssistantHandler) Deactivate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Deactivate(c.Request().Context(), ctxActor(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// ListAssignments returns patient-assistant assignments. Assistants only ever
// see their own.
//
// @Summary      List patient assignments
// @Tags         assignments
// @Produce      json
// @Security     BearerAuth
// @Param        patient_id    query     int  false  "Filter by patient"
// @Param        assistant_id  query     int  false  "Filter by assistant"
// @Success      200           {array}   domain.PatientAssistant
// @Failure      403           {object}  map[string]string
// @Router       /assistants/patients/assignments [get]
func (h *AssistantHandler) ListAssignments(c echo.Context) error {
	assignments, err := h.service.ListAssignments(c.Request().Context(), ctxActor(c),
		queryUint(c, "patient_id"), queryUint(c, "assistant_id"))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assignments)
}

// Assign links a patient to an assistant.
//
// @Summary      Assign a patient to an assistant
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      assignPatientRequest  true  "Assignment details"
// @Success      201   {object}  domain.PatientAssistant
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /assistants/patients/assign [post]
func (h *AssistantHandler) Assign(c echo.Context) error {
	var req assignPatientRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	assignment, err := h.service.Assign(c.Request().Context(), ctxActor(c), ports.AssignPatientInput{
		PatientID:   req.PatientID,
		AssistantID: req.AssistantID,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, assignment)
}

// UpdateAssignment may retire an assignment. There is no reactivation path;
// a new assignment is a new row.
//
// @Summary      Update a patient assignment
// @Tags         assignments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                      true  "Assignment id"
// @Param        body  body      updateAssignmentRequest  true  "Fields to update"
// @Success      200   {object}  domain.PatientAssistant
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /assistants/patients/assignments/{id} [put]
func (h *AssistantHandler) UpdateAssignment(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateAssignmentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	assignment, err := h.service.UpdateAssignment(c.Request().Context(), ctxActor(c), id, ports.UpdateAssignmentInput{
		IsActive: req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, assignment)
}

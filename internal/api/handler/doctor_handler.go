package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/clinicore/clinic-system/internal/core/ports"
)

// DoctorHandler serves doctor management, gated to general managers.
type DoctorHandler struct {
	service ports.DoctorService
}

func NewDoctorHandler(service ports.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

type createDoctorRequest struct {
	Email          string `json:"email" validate:"required,email"`
	Password       string `json:"password" validate:"required,min=8"`
	FullName       string `json:"full_name" validate:"required"`
	Specialization string `json:"specialization" validate:"required"`
	Experience     int    `json:"experience" validate:"min=0"`
}

type updateDoctorRequest struct {
	Specialization *string `json:"specialization"`
	Experience     *int    `json:"experience"`
	IsActive       *bool   `json:"is_active"`
}

// List returns all doctors with their user records.
//
// @Summary      List doctors
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Param        offset  query     int  false  "Pagination offset"
// @Param        limit   query     int  false  "Page size"
// @Success      200     {array}   ports.DoctorDetail
// @Failure      403     {object}  map[string]string
// @Router       /doctors [get]
func (h *DoctorHandler) List(c echo.Context) error {
	doctors, err := h.service.List(c.Request().Context(), ctxActor(c),
		queryInt(c, "offset", 0), queryInt(c, "limit", 0))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, doctors)
}

// Create registers a doctor account and profile in one request.
//
// @Summary      Create a doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createDoctorRequest  true  "Doctor details"
// @Success      201   {object}  ports.DoctorDetail
// @Failure      400   {object}  map[string]string
// @Failure      403   {object}  map[string]string
// @Failure      409   {object}  map[string]string
// @Router       /doctors [post]
func (h *DoctorHandler) Create(c echo.Context) error {
	var req createDoctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	detail, err := h.service.Create(c.Request().Context(), ctxActor(c), ports.CreateDoctorInput{
		Email:          req.Email,
		Password:       req.Password,
		FullName:       req.FullName,
		Specialization: req.Specialization,
		Experience:     req.Experience,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, detail)
}

// Get returns one doctor.
//
// @Summary      Get a doctor by id
// @Tags         doctors
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      int  true  "Doctor id"
// @Success      200  {object}  ports.DoctorDetail
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /doctors/{id} [get]
func (h *DoctorHandler) Get(c echo.Context) error {
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

// Update modifies a doctor profile. Toggling is_active mirrors to the user.
//
// @Summary      Update a doctor
// @Tags         doctors
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      int                  true  "Doctor id"
// @Param        body  body      updateDoctorRequest  true  "Fields to update"
// @Success      200   {object}  ports.DoctorDetail
// @Failure      403   {object}  map[string]string
// @Failure      404   {object}  map[string]string
// @Router       /doctors/{id} [put]
func (h *DoctorHandler) Update(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req updateDoctorRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	detail, err := h.service.Update(c.Request().Context(), ctxActor(c), id, ports.UpdateDoctorInput{
		Specialization: req.Specialization,
		Experience:     req.Experience,
		IsActive:       req.IsActive,
	})
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, detail)
}

// Deactivate soft-deletes a doctor.
//
// @Summary      Deactivate a doctor
// @Tags         doctors
// @Security     BearerAuth
// @Param        id  path  int  true  "Doctor id"
// @Success      204
// @Failure      403  {object}  map[string]string
// @Failure      404  {object}  map[string]string
// @Router       /doctors/{id} [delete]
func (h *DoctorHandler) Deactivate(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.service.Deactivate(c.Request().Context(), ctxActor(c), id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

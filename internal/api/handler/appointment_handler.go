package handler

import (
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/medipoint/patient-portal/internal/api/metrics"
	"github.com/medipoint/patient-portal/internal/core/domain"
	"github.com/medipoint/patient-portal/internal/core/ports"
)

// AppointmentHandler handles HTTP requests for the caller's appointments.
type AppointmentHandler struct {
	service ports.AppointmentService
}

func NewAppointmentHandler(service ports.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

// pathID parses the :id path parameter. A malformed id cannot name any
// resource, so it is reported exactly like a missing one.
func pathID(c echo.Context) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		return uuid.Nil, domain.ErrAppointmentNotFound
	}
	return id, nil
}

// List handles GET /appointments/.
//
// @Summary      List own appointments
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   appointmentResponse
// @Failure      401  {object}  errorResponse
// @Router       /appointments/ [get]
func (h *AppointmentHandler) List(c echo.Context) error {
	patientID, err := ctxPatientID(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentListResponse(items))
}

// Create handles POST /appointments/. The persisted status is always pending
// regardless of the payload.
//
// @Summary      Create an appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createAppointmentRequest  true  "Appointment details"
// @Success      201   {object}  appointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /appointments/ [post]
func (h *AppointmentHandler) Create(c echo.Context) error {
	patientID, err := ctxPatientID(c)
	if err != nil {
		return err
	}

	var req createAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	appt, err := h.service.Create(c.Request().Context(), patientID, toCreateInput(req))
	if err != nil {
		return err
	}

	department := appt.Department
	if department == "" {
		department = "unspecified"
	}
	metrics.AppointmentsCreatedTotal.WithLabelValues(department).Inc()

	return c.JSON(http.StatusCreated, toAppointmentResponse(appt))
}

// Get handles GET /appointments/:id/.
//
// @Summary      Get one owned appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Appointment id"
// @Success      200  {object}  appointmentResponse
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /appointments/{id}/ [get]
func (h *AppointmentHandler) Get(c echo.Context) error {
	patientID, err := ctxPatientID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	appt, err := h.service.Get(c.Request().Context(), patientID, id)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

// Update handles PUT and PATCH /appointments/:id/.
//
// @Summary      Update one owned appointment
// @Tags         appointments
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                    true  "Appointment id"
// @Param        body  body      updateAppointmentRequest  true  "Fields to change"
// @Success      200   {object}  appointmentResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Router       /appointments/{id}/ [patch]
func (h *AppointmentHandler) Update(c echo.Context) error {
	patientID, err := ctxPatientID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	var req updateAppointmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	appt, err := h.service.Update(c.Request().Context(), patientID, id, toUpdateInput(req))
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

// Delete handles DELETE /appointments/:id/.
//
// @Summary      Delete one owned appointment
// @Tags         appointments
// @Security     BearerAuth
// @Param        id  path  string  true  "Appointment id"
// @Success      204
// @Failure      401  {object}  errorResponse
// @Failure      404  {object}  errorResponse
// @Router       /appointments/{id}/ [delete]
func (h *AppointmentHandler) Delete(c echo.Context) error {
	patientID, err := ctxPatientID(c)
	if err != nil {
		return err
	}
	id, err := pathID(c)
	if err != nil {
		return err
	}

	if err := h.service.Delete(c.Request().Context(), patientID, id); err != nil {
		return err
	}
	return c.NoContent(http.StatusNoContent)
}

// LastVisit handles GET /last-visit/: the most recent past appointment, or an
// empty 204 when the caller has none. "No past visit" is a success, never a
// not-found.
//
// @Summary      Most recent past appointment
// @Tags         appointments
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  appointmentResponse
// @Success      204
// @Failure      401  {object}  errorResponse
// @Router       /last-visit/ [get]
func (h *AppointmentHandler) LastVisit(c echo.Context) error {
	patientID, err := ctxPatientID(c)
	if err != nil {
		return err
	}

	appt, err := h.service.LastVisit(c.Request().Context(), patientID, time.Now().UTC())
	if err != nil {
		return err
	}
	if appt == nil {
		return c.NoContent(http.StatusNoContent)
	}
	return c.JSON(http.StatusOK, toAppointmentResponse(appt))
}

package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medipoint/patient-portal/internal/core/domain"
	"github.com/medipoint/patient-portal/internal/core/ports"
)

const dateLayout = "2006-01-02"

type ProfileHandler struct {
	service ports.ProfileService
}

func NewProfileHandler(service ports.ProfileService) *ProfileHandler {
	return &ProfileHandler{service: service}
}

type profileResponse struct {
	ID          string  `json:"id"`
	Username    string  `json:"username"`
	Email       string  `json:"email"`
	Phone       string  `json:"phone"`
	Gender      string  `json:"gender"`
	DateOfBirth *string `json:"date_of_birth"`
}

type updateProfileRequest struct {
	Phone       *string `json:"phone"`
	Gender      *string `json:"gender"`
	DateOfBirth *string `json:"date_of_birth" validate:"omitempty,datetime=2006-01-02"`
}

func toProfileResponse(p *domain.Patient) profileResponse {
	resp := profileResponse{
		ID:       p.ID.String(),
		Username: p.Username,
		Email:    p.Email,
		Phone:    p.Phone,
		Gender:   p.Gender,
	}
	if p.DateOfBirth != nil {
		dob := p.DateOfBirth.Format(dateLayout)
		resp.DateOfBirth = &dob
	}
	return resp
}

// Get returns the authenticated caller's profile.
//
// @Summary      Get own profile
// @Tags         profile
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  errorResponse
// @Router       /me/ [get]
func (h *ProfileHandler) Get(c echo.Context) error {
	patientID, err := ctxPatientID(c)
	if err != nil {
		return err
	}

	patient, err := h.service.Get(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(patient))
}

// Update modifies the caller's mutable profile fields. PUT and PATCH share
// this handler; fields absent from the payload keep their stored values.
//
// @Summary      Update own profile
// @Tags         profile
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      updateProfileRequest  true  "Profile fields"
// @Success      200   {object}  profileResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /me/update/ [patch]
func (h *ProfileHandler) Update(c echo.Context) error {
	patientID, err := ctxPatientID(c)
	if err != nil {
		return err
	}

	var req updateProfileRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid payload"})
	}
	if err := c.Validate(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	in := ports.UpdateProfileInput{Phone: req.Phone, Gender: req.Gender}
	if req.DateOfBirth != nil {
		dob, err := time.Parse(dateLayout, *req.DateOfBirth)
		if err != nil {
			return c.JSON(http.StatusBadRequest, errorResponse{Error: "date_of_birth must match the format 2006-01-02"})
		}
		in.DateOfBirth = &dob
	}

	patient, err := h.service.Update(c.Request().Context(), patientID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toProfileResponse(patient))
}

package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medipoint/patient-portal/internal/core/domain"
	"github.com/medipoint/patient-portal/internal/core/ports"
)

type PrescriptionHandler struct {
	service ports.PrescriptionService
}

func NewPrescriptionHandler(service ports.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{service: service}
}

type prescriptionResponse struct {
	ID       string    `json:"id"`
	Title    string    `json:"title"`
	Content  string    `json:"content"`
	IssuedAt time.Time `json:"issued_at"`
}

func toPrescriptionListResponse(items []*domain.Prescription) []prescriptionResponse {
	out := make([]prescriptionResponse, len(items))
	for i, p := range items {
		out[i] = prescriptionResponse{
			ID:       p.ID.String(),
			Title:    p.Title,
			Content:  p.Content,
			IssuedAt: p.IssuedAt.UTC(),
		}
	}
	return out
}

// List handles GET /prescriptions/, newest first.
//
// @Summary      List own prescriptions
// @Tags         prescriptions
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   prescriptionResponse
// @Failure      401  {object}  errorResponse
// @Router       /prescriptions/ [get]
func (h *PrescriptionHandler) List(c echo.Context) error {
	patientID, err := ctxPatientID(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toPrescriptionListResponse(items))
}

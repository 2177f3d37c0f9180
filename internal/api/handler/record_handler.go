package handler

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/medipoint/patient-portal/internal/core/domain"
	"github.com/medipoint/patient-portal/internal/core/ports"
)

// RecordHandler serves the caller's medical records. mediaBaseURL prefixes
// stored file paths when deriving attachment URLs.
type RecordHandler struct {
	service      ports.RecordService
	mediaBaseURL string
}

func NewRecordHandler(service ports.RecordService, mediaBaseURL string) *RecordHandler {
	return &RecordHandler{service: service, mediaBaseURL: strings.TrimRight(mediaBaseURL, "/")}
}

type recordResponse struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes"`
	File      *string   `json:"file"`
	CreatedAt time.Time `json:"created_at"`
}

type recordCountResponse struct {
	Count int64 `json:"count"`
}

func (h *RecordHandler) toRecordResponse(m *domain.MedicalRecord) recordResponse {
	resp := recordResponse{
		ID:        m.ID.String(),
		Title:     m.Title,
		Notes:     m.Notes,
		CreatedAt: m.CreatedAt.UTC(),
	}
	if m.FilePath != "" {
		url := h.mediaBaseURL + "/" + strings.TrimLeft(m.FilePath, "/")
		resp.File = &url
	}
	return resp
}

// List handles GET /records/, newest first.
//
// @Summary      List own medical records
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   recordResponse
// @Failure      401  {object}  errorResponse
// @Router       /records/ [get]
func (h *RecordHandler) List(c echo.Context) error {
	patientID, err := ctxPatientID(c)
	if err != nil {
		return err
	}

	items, err := h.service.List(c.Request().Context(), patientID)
	if err != nil {
		return err
	}

	out := make([]recordResponse, len(items))
	for i, m := range items {
		out[i] = h.toRecordResponse(m)
	}
	return c.JSON(http.StatusOK, out)
}

// Count handles GET /record-count/: the cardinality of the caller's own
// record set, matching the list endpoint's length at the same instant.
//
// @Summary      Count own medical records
// @Tags         records
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  recordCountResponse
// @Failure      401  {object}  errorResponse
// @Router       /record-count/ [get]
func (h *RecordHandler) Count(c echo.Context) error {
	patientID, err := ctxPatientID(c)
	if err != nil {
		return err
	}

	count, err := h.service.Count(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, recordCountResponse{Count: count})
}

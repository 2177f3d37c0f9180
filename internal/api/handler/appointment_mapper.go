package handler

import (
	"time"

	"github.com/medipoint/patient-portal/internal/core/domain"
	"github.com/medipoint/patient-portal/internal/core/ports"
)

// --- Request → Service input ---

// toCreateInput maps an already validated request; the date has passed the
// datetime rule, so the parse cannot fail.
func toCreateInput(req createAppointmentRequest) ports.CreateAppointmentInput {
	date, _ := time.Parse(dateLayout, req.Date)
	return ports.CreateAppointmentInput{
		DoctorName: req.DoctorName,
		Department: req.Department,
		Date:       date,
		Time:       req.Time,
	}
}

func toUpdateInput(req updateAppointmentRequest) ports.UpdateAppointmentInput {
	in := ports.UpdateAppointmentInput{
		DoctorName: req.DoctorName,
		Department: req.Department,
		Time:       req.Time,
	}
	if req.Date != nil {
		date, _ := time.Parse(dateLayout, *req.Date)
		in.Date = &date
	}
	return in
}

// --- Domain → HTTP response ---

func toAppointmentResponse(a *domain.Appointment) appointmentResponse {
	return appointmentResponse{
		ID:         a.ID.String(),
		DoctorName: a.DoctorName,
		Department: a.Department,
		Date:       a.Date.Format(dateLayout),
		Time:       a.Time,
		Status:     string(a.Status),
		CreatedAt:  a.CreatedAt.UTC(),
	}
}

func toAppointmentListResponse(items []*domain.Appointment) []appointmentResponse {
	out := make([]appointmentResponse, len(items))
	for i, a := range items {
		out[i] = toAppointmentResponse(a)
	}
	return out
}

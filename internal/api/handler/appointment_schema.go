package handler

import "time"

// createAppointmentRequest accepts a status field for wire compatibility but
// never honors it: persisted appointments always start pending.
type createAppointmentRequest struct {
	DoctorName string `json:"doctor_name" validate:"max=120"`
	Department string `json:"department"  validate:"max=120"`
	Date       string `json:"date"        validate:"required,datetime=2006-01-02"`
	Time       string `json:"time"        validate:"required,datetime=15:04"`
	Status     string `json:"status"      validate:"omitempty,oneof=pending confirmed cancelled"`
}

// updateAppointmentRequest uses pointers so PUT and PATCH share one shape:
// absent fields keep their stored values. Status is not client-writable.
type updateAppointmentRequest struct {
	DoctorName *string `json:"doctor_name" validate:"omitempty,max=120"`
	Department *string `json:"department"  validate:"omitempty,max=120"`
	Date       *string `json:"date"        validate:"omitempty,datetime=2006-01-02"`
	Time       *string `json:"time"        validate:"omitempty,datetime=15:04"`
}

type appointmentResponse struct {
	ID         string    `json:"id"`
	DoctorName string    `json:"doctor_name"`
	Department string    `json:"department"`
	Date       string    `json:"date"`
	Time       string    `json:"time"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
}

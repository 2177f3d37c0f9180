package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

// AppointmentStatus represents the lifecycle state of an appointment.
type AppointmentStatus string

const (
	StatusPending   AppointmentStatus = "pending"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// validTransitions defines the allowed state machine transitions. Transitions
// are performed by an administrative actor outside this API; clients always
// create appointments as pending.
var validTransitions = map[AppointmentStatus][]AppointmentStatus{
	StatusPending: {StatusConfirmed, StatusCancelled},
}

var ErrAppointmentNotFound = errors.New("appointment not found")

// IsValid reports whether s is one of the known appointment statuses.
func (s AppointmentStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusCancelled:
		return true
	}
	return false
}

// CanTransitionTo reports whether a transition from the current status to next
// is valid.
func (s AppointmentStatus) CanTransitionTo(next AppointmentStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Appointment is owned by exactly one patient, set at creation and never
// reassigned. Date holds the calendar day; Time is the zero-padded "HH:MM"
// clock value, so (Date, Time) orders chronologically.
type Appointment struct {
	ID         uuid.UUID         `json:"id"`
	PatientID  uuid.UUID         `json:"-"`
	DoctorName string            `json:"doctor_name"`
	Department string            `json:"department"`
	Date       time.Time         `json:"date"`
	Time       string            `json:"time"`
	Status     AppointmentStatus `json:"status"`
	CreatedAt  time.Time         `json:"created_at"`
}

package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medipoint/patient-portal/internal/core/domain"
)

// CreateAppointmentInput carries the client-writable appointment fields.
// Status is intentionally absent: creation always yields pending.
type CreateAppointmentInput struct {
	DoctorName string
	Department string
	Date       time.Time
	Time       string
}

// UpdateAppointmentInput mirrors CreateAppointmentInput with nil meaning
// "leave unchanged", so PUT and PATCH share the same path. Status remains
// outside the client contract.
type UpdateAppointmentInput struct {
	DoctorName *string
	Department *string
	Date       *time.Time
	Time       *string
}

// AppointmentRepository defines persistence for the appointments collection.
// Every method takes the owning patient id and intersects it into the query,
// so a foreign id behaves exactly like a missing one
// (domain.ErrAppointmentNotFound).
type AppointmentRepository interface {
	Create(ctx context.Context, a *domain.Appointment) error
	FindByID(ctx context.Context, patientID, id uuid.UUID) (*domain.Appointment, error)
	// ListByPatient returns the patient's appointments ordered by
	// (date, time) descending.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*domain.Appointment, error)
	Update(ctx context.Context, a *domain.Appointment) error
	Delete(ctx context.Context, patientID, id uuid.UUID) error
	// LastBefore returns the patient's appointment with the greatest
	// (date, time) whose date is strictly before the given day, or
	// domain.ErrAppointmentNotFound when none exists.
	LastBefore(ctx context.Context, patientID uuid.UUID, day time.Time) (*domain.Appointment, error)
}

// AppointmentService defines the use-case operations on the caller's own
// appointments.
type AppointmentService interface {
	Create(ctx context.Context, patientID uuid.UUID, in CreateAppointmentInput) (*domain.Appointment, error)
	Get(ctx context.Context, patientID, id uuid.UUID) (*domain.Appointment, error)
	List(ctx context.Context, patientID uuid.UUID) ([]*domain.Appointment, error)
	Update(ctx context.Context, patientID, id uuid.UUID, in UpdateAppointmentInput) (*domain.Appointment, error)
	Delete(ctx context.Context, patientID, id uuid.UUID) error
	// LastVisit returns the most recent past appointment, or
	// (nil, nil) when the caller has none: an empty result, not an error.
	LastVisit(ctx context.Context, patientID uuid.UUID, today time.Time) (*domain.Appointment, error)
}

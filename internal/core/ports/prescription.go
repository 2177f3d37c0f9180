package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/medipoint/patient-portal/internal/core/domain"
)

// PrescriptionRepository lists a patient's prescriptions, newest first.
type PrescriptionRepository interface {
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*domain.Prescription, error)
}

// PrescriptionService exposes the caller's prescriptions (read-only).
type PrescriptionService interface {
	List(ctx context.Context, patientID uuid.UUID) ([]*domain.Prescription, error)
}

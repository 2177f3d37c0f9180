package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/medipoint/patient-portal/internal/core/domain"
)

// RecordRepository lists and counts a patient's medical records.
type RecordRepository interface {
	// ListByPatient returns the patient's records ordered by created_at
	// descending.
	ListByPatient(ctx context.Context, patientID uuid.UUID) ([]*domain.MedicalRecord, error)
	CountByPatient(ctx context.Context, patientID uuid.UUID) (int64, error)
}

// RecordService exposes the caller's medical records (read-only) and their
// cardinality. Count over the same patient always equals the length of List
// absent concurrent writes, since both run the same ownership predicate.
type RecordService interface {
	List(ctx context.Context, patientID uuid.UUID) ([]*domain.MedicalRecord, error)
	Count(ctx context.Context, patientID uuid.UUID) (int64, error)
}

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/medipoint/patient-portal/internal/core/domain"
	"github.com/medipoint/patient-portal/internal/core/ports"
)

// RecordService lists and counts the caller's medical records. Both paths run
// the identical ownership predicate, so count equals the list length at the
// same instant under no concurrent writes.
type RecordService struct {
	repo ports.RecordRepository
}

func NewRecordService(repo ports.RecordRepository) *RecordService {
	return &RecordService{repo: repo}
}

func (s *RecordService) List(ctx context.Context, patientID uuid.UUID) ([]*domain.MedicalRecord, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

func (s *RecordService) Count(ctx context.Context, patientID uuid.UUID) (int64, error) {
	return s.repo.CountByPatient(ctx, patientID)
}

package service

import (
	"context"

	"github.com/google/uuid"

	"github.com/medipoint/patient-portal/internal/core/domain"
	"github.com/medipoint/patient-portal/internal/core/ports"
)

// PrescriptionService lists the caller's prescriptions, newest first.
type PrescriptionService struct {
	repo ports.PrescriptionRepository
}

func NewPrescriptionService(repo ports.PrescriptionRepository) *PrescriptionService {
	return &PrescriptionService{repo: repo}
}

func (s *PrescriptionService) List(ctx context.Context, patientID uuid.UUID) ([]*domain.Prescription, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

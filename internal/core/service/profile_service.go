package service

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medipoint/patient-portal/internal/core/domain"
	"github.com/medipoint/patient-portal/internal/core/ports"
)

// ProfileService reads and updates the caller's own identity record.
type ProfileService struct {
	repo   ports.PatientRepository
	logger zerolog.Logger
}

func NewProfileService(repo ports.PatientRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{repo: repo, logger: logger}
}

func (s *ProfileService) Get(ctx context.Context, patientID uuid.UUID) (*domain.Patient, error) {
	return s.repo.FindByID(ctx, patientID)
}

// Update applies the provided fields to the caller's profile. Username, email
// and credentials are not mutable here.
func (s *ProfileService) Update(ctx context.Context, patientID uuid.UUID, in ports.UpdateProfileInput) (*domain.Patient, error) {
	patient, err := s.repo.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}

	if in.Phone != nil {
		patient.Phone = *in.Phone
	}
	if in.Gender != nil {
		patient.Gender = *in.Gender
	}
	if in.DateOfBirth != nil {
		dob := *in.DateOfBirth
		patient.DateOfBirth = &dob
	}
	patient.UpdatedAt = time.Now().UTC()

	if err := s.repo.UpdateProfile(ctx, patient); err != nil {
		return nil, err
	}

	s.logger.Info().Str("patient_id", patientID.String()).Msg("profile updated")
	return patient, nil
}

package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medipoint/patient-portal/internal/core/domain"
	"github.com/medipoint/patient-portal/internal/core/ports"
)

// AppointmentService implements the caller-scoped appointment use cases.
// Every repository call carries the caller's patient id, so nothing outside
// the caller's own collection is ever read or written.
type AppointmentService struct {
	repo   ports.AppointmentRepository
	logger zerolog.Logger
}

func NewAppointmentService(repo ports.AppointmentRepository, logger zerolog.Logger) *AppointmentService {
	return &AppointmentService{repo: repo, logger: logger}
}

// Create stores a new appointment for the caller. The persisted status is
// always pending, whatever the client supplied.
func (s *AppointmentService) Create(ctx context.Context, patientID uuid.UUID, in ports.CreateAppointmentInput) (*domain.Appointment, error) {
	appt := &domain.Appointment{
		ID:         uuid.New(),
		PatientID:  patientID,
		DoctorName: in.DoctorName,
		Department: in.Department,
		Date:       in.Date,
		Time:       in.Time,
		Status:     domain.StatusPending,
		CreatedAt:  time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, appt); err != nil {
		s.logger.Error().Err(err).Str("patient_id", patientID.String()).Msg("failed to create appointment")
		return nil, err
	}

	s.logger.Info().
		Str("appointment_id", appt.ID.String()).
		Str("patient_id", patientID.String()).
		Str("department", appt.Department).
		Msg("appointment created")
	return appt, nil
}

func (s *AppointmentService) Get(ctx context.Context, patientID, id uuid.UUID) (*domain.Appointment, error) {
	return s.repo.FindByID(ctx, patientID, id)
}

func (s *AppointmentService) List(ctx context.Context, patientID uuid.UUID) ([]*domain.Appointment, error) {
	return s.repo.ListByPatient(ctx, patientID)
}

// Update modifies the client-writable fields of an owned appointment. Nil
// inputs keep the stored value, so PUT and PATCH share this path. Status is
// never touched.
func (s *AppointmentService) Update(ctx context.Context, patientID, id uuid.UUID, in ports.UpdateAppointmentInput) (*domain.Appointment, error) {
	appt, err := s.repo.FindByID(ctx, patientID, id)
	if err != nil {
		return nil, err
	}

	if in.DoctorName != nil {
		appt.DoctorName = *in.DoctorName
	}
	if in.Department != nil {
		appt.Department = *in.Department
	}
	if in.Date != nil {
		appt.Date = *in.Date
	}
	if in.Time != nil {
		appt.Time = *in.Time
	}

	if err := s.repo.Update(ctx, appt); err != nil {
		return nil, err
	}
	return appt, nil
}

func (s *AppointmentService) Delete(ctx context.Context, patientID, id uuid.UUID) error {
	return s.repo.Delete(ctx, patientID, id)
}

// LastVisit returns the caller's appointment with the greatest (date, time)
// strictly before today, or (nil, nil) when the caller has no past visits.
// "No past visit" is an empty result, not a lookup failure.
func (s *AppointmentService) LastVisit(ctx context.Context, patientID uuid.UUID, today time.Time) (*domain.Appointment, error) {
	day := time.Date(today.Year(), today.Month(), today.Day(), 0, 0, 0, 0, time.UTC)
	appt, err := s.repo.LastBefore(ctx, patientID, day)
	if err != nil {
		if errors.Is(err, domain.ErrAppointmentNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return appt, nil
}

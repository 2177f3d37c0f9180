package ports

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/medipoint/patient-portal/internal/core/domain"
)

// UpdateProfileInput carries the caller's mutable profile fields. Nil pointer
// means "leave unchanged" so PATCH and PUT share the same path.
type UpdateProfileInput struct {
	Phone       *string
	Gender      *string
	DateOfBirth *time.Time
}

// ProfileService exposes the caller's own identity record.
type ProfileService interface {
	Get(ctx context.Context, patientID uuid.UUID) (*domain.Patient, error)
	Update(ctx context.Context, patientID uuid.UUID, in UpdateProfileInput) (*domain.Patient, error)
}

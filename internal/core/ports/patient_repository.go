package ports

import (
	"context"

	"github.com/google/uuid"

	"github.com/medipoint/patient-portal/internal/core/domain"
)

// PatientRepository defines persistence for the identity store. Username and
// email lookups are case-insensitive. Create returns *domain.ConflictError
// when the storage layer's unique constraints fire.
type PatientRepository interface {
	Create(ctx context.Context, p *domain.Patient) error
	FindByID(ctx context.Context, id uuid.UUID) (*domain.Patient, error)
	FindByUsername(ctx context.Context, username string) (*domain.Patient, error)
	UsernameTaken(ctx context.Context, username string) (bool, error)
	EmailTaken(ctx context.Context, email string) (bool, error)
	UpdateProfile(ctx context.Context, p *domain.Patient) error
}

package ports

import (
	"context"

	"github.com/medipoint/patient-portal/internal/core/domain"
	"github.com/medipoint/patient-portal/internal/core/validation"
)

// RegisterInput is the raw registration payload as received on the wire.
type RegisterInput struct {
	Username string
	Email    string
	Password string
}

// TokenPair carries a freshly issued access/refresh token pair.
type TokenPair struct {
	Access  string
	Refresh string
}

// AuthService implements registration and the token endpoints.
//
// Register returns (nil, FieldErrors, nil) when the payload is rejected; the
// FieldErrors shape is identical whether the rejection came from the
// validation pipeline or from a storage-level uniqueness race.
type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*domain.Patient, validation.FieldErrors, error)
	Login(ctx context.Context, username, password string) (*TokenPair, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenPair, error)
}

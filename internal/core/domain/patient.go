package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
)

var ErrPatientNotFound = errors.New("patient not found")
var ErrInvalidCredentials = errors.New("invalid credentials")
var ErrInvalidToken = errors.New("invalid or expired token")

// Patient models a registered portal identity. Username and email are unique
// case-insensitively across all patients; the password is stored only as a
// bcrypt hash.
type Patient struct {
	ID           uuid.UUID  `json:"id"`
	Username     string     `json:"username"`
	Email        string     `json:"email"`
	PasswordHash string     `json:"-"`
	Phone        string     `json:"phone"`
	Gender       string     `json:"gender"`
	DateOfBirth  *time.Time `json:"date_of_birth,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}

// ConflictError is returned by the patient repository when an insert loses the
// race against a concurrent registration and the storage layer's unique
// constraint fires. Field names the identity attribute that collided
// ("username" or "email") so callers can fold the failure back into the same
// field-level shape the validation pipeline produces.
type ConflictError struct {
	Field string
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("a user with that %s already exists", e.Field)
}

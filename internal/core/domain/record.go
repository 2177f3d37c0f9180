package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrRecordNotFound = errors.New("medical record not found")

// MedicalRecord is read-only from the portal client's perspective. FilePath,
// when non-empty, is the store-relative path of an attached document; the
// transport layer derives the public URL from it.
type MedicalRecord struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"-"`
	Title     string    `json:"title"`
	Notes     string    `json:"notes"`
	FilePath  string    `json:"-"`
	CreatedAt time.Time `json:"created_at"`
}

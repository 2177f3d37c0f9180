package domain

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var ErrPrescriptionNotFound = errors.New("prescription not found")

// Prescription is read-only from the portal client's perspective: entries are
// issued by clinical staff and only listed here.
type Prescription struct {
	ID        uuid.UUID `json:"id"`
	PatientID uuid.UUID `json:"-"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	IssuedAt  time.Time `json:"issued_at"`
}

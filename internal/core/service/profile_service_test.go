package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/medipoint/patient-portal/internal/core/domain"
	"github.com/medipoint/patient-portal/internal/core/ports"
)

func seedPatient(repo *stubPatientRepo) *domain.Patient {
	p := &domain.Patient{
		ID:       uuid.New(),
		Username: "alice",
		Email:    "alice@example.com",
		Phone:    "555-0100",
		Gender:   "female",
	}
	repo.patients[p.ID] = clonePatient(p)
	return p
}

func TestProfileService_Get(t *testing.T) {
	repo := newStubPatientRepo()
	seeded := seedPatient(repo)
	svc := NewProfileService(repo, zerolog.Nop())

	patient, err := svc.Get(context.Background(), seeded.ID)
	if err != nil {
		t.Fatalf("Get returned error: %v", err)
	}
	if patient.Username != "alice" || patient.Phone != "555-0100" {
		t.Fatalf("unexpected profile: %+v", patient)
	}
}

func TestProfileService_Get_Unknown(t *testing.T) {
	svc := NewProfileService(newStubPatientRepo(), zerolog.Nop())

	if _, err := svc.Get(context.Background(), uuid.New()); err != domain.ErrPatientNotFound {
		t.Fatalf("expected ErrPatientNotFound, got %v", err)
	}
}

func TestProfileService_Update_PartialFields(t *testing.T) {
	repo := newStubPatientRepo()
	seeded := seedPatient(repo)
	svc := NewProfileService(repo, zerolog.Nop())

	phone := "555-0199"
	dob := time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)
	patient, err := svc.Update(context.Background(), seeded.ID, ports.UpdateProfileInput{
		Phone:       &phone,
		DateOfBirth: &dob,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if patient.Phone != "555-0199" {
		t.Fatalf("expected updated phone, got %q", patient.Phone)
	}
	if patient.Gender != "female" {
		t.Fatalf("absent fields must keep stored values, got %q", patient.Gender)
	}
	if patient.DateOfBirth == nil || !patient.DateOfBirth.Equal(dob) {
		t.Fatalf("expected stored date of birth, got %v", patient.DateOfBirth)
	}
	// Identity and credentials are immutable through this path.
	if patient.Username != "alice" || patient.Email != "alice@example.com" {
		t.Fatalf("identity fields must not change, got %+v", patient)
	}
}

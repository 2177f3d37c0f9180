package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/medipoint/patient-portal/internal/core/domain"
	"github.com/medipoint/patient-portal/internal/core/ports"
)

type stubProfileService struct {
	getFn    func(ctx context.Context, patientID uuid.UUID) (*domain.Patient, error)
	updateFn func(ctx context.Context, patientID uuid.UUID, in ports.UpdateProfileInput) (*domain.Patient, error)
}

func (s *stubProfileService) Get(ctx context.Context, patientID uuid.UUID) (*domain.Patient, error) {
	return s.getFn(ctx, patientID)
}

func (s *stubProfileService) Update(ctx context.Context, patientID uuid.UUID, in ports.UpdateProfileInput) (*domain.Patient, error) {
	return s.updateFn(ctx, patientID, in)
}

func TestProfileHandler_Get(t *testing.T) {
	patientID := uuid.New()
	dob := time.Date(1990, time.March, 14, 0, 0, 0, 0, time.UTC)
	stub := &stubProfileService{
		getFn: func(_ context.Context, got uuid.UUID) (*domain.Patient, error) {
			if got != patientID {
				t.Fatalf("unexpected patient id: %s", got)
			}
			return &domain.Patient{
				ID: patientID, Username: "alice", Email: "alice@example.com",
				Phone: "555-0100", Gender: "female", DateOfBirth: &dob,
			}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := authedContext(t, http.MethodGet, "/me/", "", patientID)
	if err := h.Get(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["username"] != "alice" || resp["date_of_birth"] != "1990-03-14" {
		t.Fatalf("unexpected payload: %v", resp)
	}
	if _, ok := resp["password_hash"]; ok {
		t.Fatalf("credentials must never be serialized")
	}
}

func TestProfileHandler_Update_ParsesDateOfBirth(t *testing.T) {
	patientID := uuid.New()
	stub := &stubProfileService{
		updateFn: func(_ context.Context, _ uuid.UUID, in ports.UpdateProfileInput) (*domain.Patient, error) {
			if in.DateOfBirth == nil || in.DateOfBirth.Format("2006-01-02") != "1985-12-01" {
				t.Fatalf("expected parsed date of birth, got %+v", in.DateOfBirth)
			}
			if in.Phone != nil {
				t.Fatalf("absent phone must stay nil")
			}
			dob := *in.DateOfBirth
			return &domain.Patient{ID: patientID, Username: "alice", DateOfBirth: &dob}, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := authedContext(t, http.MethodPatch, "/me/update/", `{"date_of_birth":"1985-12-01"}`, patientID)
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}

func TestProfileHandler_Update_BadDate(t *testing.T) {
	stub := &stubProfileService{
		updateFn: func(_ context.Context, _ uuid.UUID, _ ports.UpdateProfileInput) (*domain.Patient, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewProfileHandler(stub)

	c, rec := authedContext(t, http.MethodPatch, "/me/update/", `{"date_of_birth":"01/12/1985"}`, uuid.New())
	if err := h.Update(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

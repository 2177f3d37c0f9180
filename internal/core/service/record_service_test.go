package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/medipoint/patient-portal/internal/core/domain"
)

type stubRecordRepo struct {
	records []*domain.MedicalRecord
}

func (r *stubRecordRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*domain.MedicalRecord, error) {
	var items []*domain.MedicalRecord
	for _, m := range r.records {
		if m.PatientID == patientID {
			items = append(items, m)
		}
	}
	return items, nil
}

func (r *stubRecordRepo) CountByPatient(_ context.Context, patientID uuid.UUID) (int64, error) {
	var n int64
	for _, m := range r.records {
		if m.PatientID == patientID {
			n++
		}
	}
	return n, nil
}

func TestRecordService_CountMatchesList(t *testing.T) {
	owner := uuid.New()
	other := uuid.New()
	repo := &stubRecordRepo{records: []*domain.MedicalRecord{
		{ID: uuid.New(), PatientID: owner, Title: "Bloodwork", CreatedAt: time.Now()},
		{ID: uuid.New(), PatientID: owner, Title: "X-ray", CreatedAt: time.Now()},
		{ID: uuid.New(), PatientID: other, Title: "MRI", CreatedAt: time.Now()},
	}}
	svc := NewRecordService(repo)

	items, err := svc.List(context.Background(), owner)
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	count, err := svc.Count(context.Background(), owner)
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if int64(len(items)) != count {
		t.Fatalf("count %d does not match list length %d", count, len(items))
	}
	if count != 2 {
		t.Fatalf("expected only the caller's records, got %d", count)
	}
}

func TestRecordService_EmptyCollection(t *testing.T) {
	svc := NewRecordService(&stubRecordRepo{})

	items, err := svc.List(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("List returned error: %v", err)
	}
	if len(items) != 0 {
		t.Fatalf("expected empty list, got %d", len(items))
	}
	count, err := svc.Count(context.Background(), uuid.New())
	if err != nil {
		t.Fatalf("Count returned error: %v", err)
	}
	if count != 0 {
		t.Fatalf("expected zero count, got %d", count)
	}
}

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

type stubAppointmentRepo struct {
	appointments map[uuid.UUID]*domain.Appointment
}

func newStubAppointmentRepo() *stubAppointmentRepo {
	return &stubAppointmentRepo{appointments: make(map[uuid.UUID]*domain.Appointment)}
}

func cloneAppointment(a *domain.Appointment) *domain.Appointment {
	if a == nil {
		return nil
	}
	clone := *a
	return &clone
}

func (r *stubAppointmentRepo) Create(_ context.Context, a *domain.Appointment) error {
	r.appointments[a.ID] = cloneAppointment(a)
	return nil
}

func (r *stubAppointmentRepo) FindByID(_ context.Context, patientID, id uuid.UUID) (*domain.Appointment, error) {
	a, ok := r.appointments[id]
	if !ok || a.PatientID != patientID {
		return nil, domain.ErrAppointmentNotFound
	}
	return cloneAppointment(a), nil
}

func (r *stubAppointmentRepo) ListByPatient(_ context.Context, patientID uuid.UUID) ([]*domain.Appointment, error) {
	var items []*domain.Appointment
	for _, a := range r.appointments {
		if a.PatientID == patientID {
			items = append(items, cloneAppointment(a))
		}
	}
	return items, nil
}

func (r *stubAppointmentRepo) Update(_ context.Context, a *domain.Appointment) error {
	existing, ok := r.appointments[a.ID]
	if !ok || existing.PatientID != a.PatientID {
		return domain.ErrAppointmentNotFound
	}
	r.appointments[a.ID] = cloneAppointment(a)
	return nil
}

func (r *stubAppointmentRepo) Delete(_ context.Context, patientID, id uuid.UUID) error {
	a, ok := r.appointments[id]
	if !ok || a.PatientID != patientID {
		return domain.ErrAppointmentNotFound
	}
	delete(r.appointments, id)
	return nil
}

func (r *stubAppointmentRepo) LastBefore(_ context.Context, patientID uuid.UUID, day time.Time) (*domain.Appointment, error) {
	var best *domain.Appointment
	for _, a := range r.appointments {
		if a.PatientID != patientID || !a.Date.Before(day) {
			continue
		}
		if best == nil || a.Date.After(best.Date) || (a.Date.Equal(best.Date) && a.Time > best.Time) {
			best = a
		}
	}
	if best == nil {
		return nil, domain.ErrAppointmentNotFound
	}
	return cloneAppointment(best), nil
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestAppointmentService_Create_ForcesPending(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := NewAppointmentService(repo, zerolog.Nop())
	patientID := uuid.New()

	appt, err := svc.Create(context.Background(), patientID, ports.CreateAppointmentInput{
		DoctorName: "Dr. Chen",
		Department: "Cardiology",
		Date:       date(2026, time.September, 10),
		Time:       "09:30",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}
	if appt.Status != domain.StatusPending {
		t.Fatalf("expected pending status, got %s", appt.Status)
	}
	if appt.PatientID != patientID {
		t.Fatalf("appointment not bound to caller")
	}

	stored := repo.appointments[appt.ID]
	if stored == nil || stored.Status != domain.StatusPending {
		t.Fatalf("stored status must be pending, got %+v", stored)
	}
}

func TestAppointmentService_Get_ForeignIDIsNotFound(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := NewAppointmentService(repo, zerolog.Nop())

	owner := uuid.New()
	appt, err := svc.Create(context.Background(), owner, ports.CreateAppointmentInput{
		Date: date(2026, time.September, 10), Time: "09:30",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	if _, err := svc.Get(context.Background(), uuid.New(), appt.ID); err != domain.ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound for foreign caller, got %v", err)
	}
}

func TestAppointmentService_Update_NilKeepsStoredValues(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := NewAppointmentService(repo, zerolog.Nop())
	patientID := uuid.New()

	appt, err := svc.Create(context.Background(), patientID, ports.CreateAppointmentInput{
		DoctorName: "Dr. Chen",
		Department: "Cardiology",
		Date:       date(2026, time.September, 10),
		Time:       "09:30",
	})
	if err != nil {
		t.Fatalf("Create returned error: %v", err)
	}

	newTime := "14:00"
	updated, err := svc.Update(context.Background(), patientID, appt.ID, ports.UpdateAppointmentInput{
		Time: &newTime,
	})
	if err != nil {
		t.Fatalf("Update returned error: %v", err)
	}
	if updated.Time != "14:00" {
		t.Fatalf("expected updated time, got %s", updated.Time)
	}
	if updated.DoctorName != "Dr. Chen" || updated.Department != "Cardiology" {
		t.Fatalf("absent fields must keep stored values, got %+v", updated)
	}
	if updated.Status != domain.StatusPending {
		t.Fatalf("status must never change through update, got %s", updated.Status)
	}
}

func TestAppointmentService_Delete_Foreign(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := NewAppointmentService(repo, zerolog.Nop())

	owner := uuid.New()
	appt, _ := svc.Create(context.Background(), owner, ports.CreateAppointmentInput{
		Date: date(2026, time.September, 10), Time: "09:30",
	})

	if err := svc.Delete(context.Background(), uuid.New(), appt.ID); err != domain.ErrAppointmentNotFound {
		t.Fatalf("expected ErrAppointmentNotFound, got %v", err)
	}
	if err := svc.Delete(context.Background(), owner, appt.ID); err != nil {
		t.Fatalf("owner delete failed: %v", err)
	}
}

func TestAppointmentService_LastVisit(t *testing.T) {
	repo := newStubAppointmentRepo()
	svc := NewAppointmentService(repo, zerolog.Nop())
	patientID := uuid.New()
	today := time.Date(2026, time.August, 28, 15, 4, 5, 0, time.UTC)

	// Today and future dates never count as a past visit.
	_, _ = svc.Create(context.Background(), patientID, ports.CreateAppointmentInput{
		Date: date(2026, time.August, 28), Time: "08:00",
	})
	_, _ = svc.Create(context.Background(), patientID, ports.CreateAppointmentInput{
		Date: date(2026, time.September, 3), Time: "10:00",
	})

	appt, err := svc.LastVisit(context.Background(), patientID, today)
	if err != nil {
		t.Fatalf("LastVisit returned error: %v", err)
	}
	if appt != nil {
		t.Fatalf("expected no past visit, got %+v", appt)
	}

	_, _ = svc.Create(context.Background(), patientID, ports.CreateAppointmentInput{
		Date: date(2026, time.August, 20), Time: "09:00",
	})
	latest, _ := svc.Create(context.Background(), patientID, ports.CreateAppointmentInput{
		Date: date(2026, time.August, 25), Time: "11:00",
	})

	appt, err = svc.LastVisit(context.Background(), patientID, today)
	if err != nil {
		t.Fatalf("LastVisit returned error: %v", err)
	}
	if appt == nil || appt.ID != latest.ID {
		t.Fatalf("expected the most recent past appointment, got %+v", appt)
	}
}

func TestAppointmentService_LastVisit_EmptyIsNotAnError(t *testing.T) {
	svc := NewAppointmentService(newStubAppointmentRepo(), zerolog.Nop())

	appt, err := svc.LastVisit(context.Background(), uuid.New(), time.Now().UTC())
	if err != nil {
		t.Fatalf("empty result must not be an error: %v", err)
	}
	if appt != nil {
		t.Fatalf("expected nil appointment, got %+v", appt)
	}
}

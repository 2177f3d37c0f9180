package domain

import "testing"

func TestAppointmentStatus_IsValid(t *testing.T) {
	for _, s := range []AppointmentStatus{StatusPending, StatusConfirmed, StatusCancelled} {
		if !s.IsValid() {
			t.Fatalf("expected %s to be valid", s)
		}
	}
	if AppointmentStatus("done").IsValid() {
		t.Fatalf("unknown status must be invalid")
	}
}

func TestAppointmentStatus_CanTransitionTo(t *testing.T) {
	cases := []struct {
		from, to AppointmentStatus
		ok       bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCancelled, StatusConfirmed, false},
		{StatusConfirmed, StatusCancelled, false},
	}
	for _, tc := range cases {
		if got := tc.from.CanTransitionTo(tc.to); got != tc.ok {
			t.Fatalf("%s -> %s: expected %v, got %v", tc.from, tc.to, tc.ok, got)
		}
	}
}

func TestConflictError_Message(t *testing.T) {
	err := &ConflictError{Field: "username"}
	if err.Error() != "a user with that username already exists" {
		t.Fatalf("unexpected message: %s", err.Error())
	}
}

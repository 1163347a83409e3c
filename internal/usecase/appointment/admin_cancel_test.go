package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

func TestAdminCancelInsideLock(t *testing.T) {
	repo := newMockRepo()
	// 1h de antecedência: paciente não poderia, admin pode
	ap := seedAppointment(repo, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), "10:00")

	uc := NewAdminCancelAppointment(repo, nil)
	uc.now = fixedNow

	got, err := uc.Execute(context.Background(), ap.ID, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.Status != string(domain.StatusCanceled) {
		t.Errorf("status = %q, want canceled", got.Status)
	}
}

func TestAdminCancelCompletedAppointment(t *testing.T) {
	repo := newMockRepo()
	ap := seedAppointment(repo, time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC), "10:00")
	repo.appointments[0].Status = string(domain.StatusCompleted)

	uc := NewAdminCancelAppointment(repo, nil)
	uc.now = fixedNow

	_, err := uc.Execute(context.Background(), ap.ID, 1)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestAdminCancelUnknownAppointment(t *testing.T) {
	repo := newMockRepo()

	uc := NewAdminCancelAppointment(repo, nil)
	uc.now = fixedNow

	_, err := uc.Execute(context.Background(), 404, 1)
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

package appointment

import (
	"context"
	"testing"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

func TestCompleteAppointmentCreatesSummary(t *testing.T) {
	repo := newMockRepo()
	ap := seedAppointment(repo, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), "08:00")

	uc := NewCompleteAppointment(repo, nil)
	uc.now = fixedNow

	got, err := uc.Execute(context.Background(), CompleteAppointmentInput{
		ActorUserID:     30,
		AppointmentID:   ap.ID,
		DoctorID:        7,
		Prescription:    "Ibuprofen 200mg",
		Recommendations: "Repouso por 3 dias",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if got.Status != string(domain.StatusCompleted) {
		t.Errorf("status = %q, want completed", got.Status)
	}
	if got.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}
	if repo.summary == nil || repo.summary.AppointmentID != ap.ID {
		t.Error("visit summary not persisted")
	}
}

func TestCompleteAppointmentDuplicateSummary(t *testing.T) {
	repo := newMockRepo()
	ap := seedAppointment(repo, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), "08:00")
	repo.summaries[ap.ID] = true

	uc := NewCompleteAppointment(repo, nil)
	uc.now = fixedNow

	_, err := uc.Execute(context.Background(), CompleteAppointmentInput{
		AppointmentID:   ap.ID,
		DoctorID:        7,
		Recommendations: "x",
	})
	if !httperr.IsBusiness(err, "summary_already_exists") {
		t.Fatalf("expected summary_already_exists, got %v", err)
	}
}

func TestCompleteAppointmentWrongDoctor(t *testing.T) {
	repo := newMockRepo()
	ap := seedAppointment(repo, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), "08:00")

	uc := NewCompleteAppointment(repo, nil)
	uc.now = fixedNow

	_, err := uc.Execute(context.Background(), CompleteAppointmentInput{
		AppointmentID:   ap.ID,
		DoctorID:        99,
		Recommendations: "x",
	})
	if !httperr.IsBusiness(err, "appointment_not_found") {
		t.Fatalf("expected appointment_not_found, got %v", err)
	}
}

func TestCompleteCanceledAppointment(t *testing.T) {
	repo := newMockRepo()
	ap := seedAppointment(repo, time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC), "08:00")
	repo.appointments[0].Status = string(domain.StatusCanceled)

	uc := NewCompleteAppointment(repo, nil)
	uc.now = fixedNow

	_, err := uc.Execute(context.Background(), CompleteAppointmentInput{
		AppointmentID:   ap.ID,
		DoctorID:        7,
		Recommendations: "x",
	})
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func scheduledAt(d int, label string) *models.Appointment {
	return &models.Appointment{
		ID:        1,
		PatientID: 1,
		Date:      day(d),
		Time:      label,
		Status:    string(StatusScheduled),
	}
}

func TestCancelByPatientWithEnoughLead(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	ap := scheduledAt(15, "15:00") // 30h de antecedência

	if err := CancelByPatient(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusCanceled) {
		t.Errorf("status = %q, want canceled", ap.Status)
	}
	if ap.CanceledAt == nil {
		t.Error("CanceledAt not set")
	}
}

func TestCancelByPatientInsideLockLeavesRecordUntouched(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	ap := scheduledAt(14, "19:00") // 10h de antecedência

	err := CancelByPatient(ap, now)
	if !httperr.IsBusiness(err, "too_late_to_cancel") {
		t.Fatalf("expected too_late_to_cancel, got %v", err)
	}
	if ap.Status != string(StatusScheduled) {
		t.Errorf("status changed to %q after rejected cancel", ap.Status)
	}
	if ap.CanceledAt != nil {
		t.Error("CanceledAt set after rejected cancel")
	}
}

func TestCancelByPatientExactly24HoursAllowed(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	ap := scheduledAt(15, "09:00") // exatamente 24h

	if err := CancelByPatient(ap, now); err != nil {
		t.Fatalf("24h boundary should be allowed, got %v", err)
	}
}

func TestCancelTerminalStates(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)

	for _, status := range []Status{StatusCanceled, StatusCompleted} {
		ap := scheduledAt(20, "10:00")
		ap.Status = string(status)

		err := CancelByPatient(ap, now)
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("status %s: expected invalid_state, got %v", status, err)
		}
	}
}

func TestCancelByAdminIgnoresLock(t *testing.T) {
	now := time.Date(2026, 9, 14, 9, 0, 0, 0, time.UTC)
	ap := scheduledAt(14, "10:00") // daqui a 1h

	if err := CancelByAdmin(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusCanceled) {
		t.Errorf("status = %q, want canceled", ap.Status)
	}
}

func TestCompleteOnlyFromScheduled(t *testing.T) {
	now := time.Date(2026, 9, 14, 16, 0, 0, 0, time.UTC)

	ap := scheduledAt(14, "15:00")
	if err := Complete(ap, now); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if ap.Status != string(StatusCompleted) {
		t.Errorf("status = %q, want completed", ap.Status)
	}
	if ap.CompletedAt == nil {
		t.Error("CompletedAt not set")
	}

	// concluir de novo não pode
	err := Complete(ap, now)
	if !httperr.IsBusiness(err, "invalid_state") {
		t.Fatalf("expected invalid_state, got %v", err)
	}
}

func TestStartsAt(t *testing.T) {
	ap := scheduledAt(14, "13:30")

	got := StartsAt(ap, time.UTC)
	want := time.Date(2026, 9, 14, 13, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("StartsAt = %v, want %v", got, want)
	}
}

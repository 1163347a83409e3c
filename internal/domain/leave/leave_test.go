package leave

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var today = time.Date(2026, 9, 14, 15, 30, 0, 0, time.UTC)

func date(d int) time.Time {
	return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
}

func TestOnDemandLeadTime(t *testing.T) {
	cases := []struct {
		name  string
		start int
		code  string
	}{
		{"same day", 14, "leave_too_soon"},
		{"tomorrow", 15, "leave_too_soon"},
		{"two days ahead", 16, ""},
		{"far ahead", 20, ""},
	}

	for _, tc := range cases {
		lr := &models.LeaveRequest{
			LeaveType: string(TypeOnDemand),
			StartDate: date(tc.start),
			EndDate:   date(tc.start),
		}

		err := Validate(lr, today)
		if tc.code == "" && err != nil {
			t.Errorf("%s: unexpected error %v", tc.name, err)
		}
		if tc.code != "" && !httperr.IsBusiness(err, tc.code) {
			t.Errorf("%s: expected %s, got %v", tc.name, tc.code, err)
		}
	}
}

func TestSickLeaveRequiresDocument(t *testing.T) {
	lr := &models.LeaveRequest{
		LeaveType: string(TypeSickLeave),
		StartDate: date(14), // chorobowe pode começar hoje
		EndDate:   date(16),
	}

	err := Validate(lr, today)
	if !httperr.IsBusiness(err, "missing_document") {
		t.Fatalf("expected missing_document, got %v", err)
	}

	lr.DocumentURL = "https://bucket.example/leave_documents/abc.pdf"
	if err := Validate(lr, today); err != nil {
		t.Fatalf("unexpected error with document: %v", err)
	}
}

func TestUnknownLeaveType(t *testing.T) {
	lr := &models.LeaveRequest{
		LeaveType: "vacation",
		StartDate: date(16),
		EndDate:   date(17),
	}

	err := Validate(lr, today)
	if !httperr.IsBusiness(err, "invalid_leave_type") {
		t.Fatalf("expected invalid_leave_type, got %v", err)
	}
}

func TestDateRange(t *testing.T) {
	lr := &models.LeaveRequest{
		LeaveType: string(TypeOnDemand),
		StartDate: date(18),
		EndDate:   date(16),
	}

	err := Validate(lr, today)
	if !httperr.IsBusiness(err, "invalid_date_range") {
		t.Fatalf("expected invalid_date_range, got %v", err)
	}

	// um dia só é válido
	lr.EndDate = lr.StartDate
	if err := Validate(lr, today); err != nil {
		t.Fatalf("single-day leave rejected: %v", err)
	}
}

func TestCanDecide(t *testing.T) {
	if err := CanDecide(StatusPending); err != nil {
		t.Fatalf("pending should be decidable: %v", err)
	}

	for _, s := range []Status{StatusApproved, StatusRejected} {
		err := CanDecide(s)
		if !httperr.IsBusiness(err, "invalid_state") {
			t.Errorf("status %s: expected invalid_state, got %v", s, err)
		}
	}
}

func TestDaysBetweenIgnoresTimeOfDay(t *testing.T) {
	late := time.Date(2026, 9, 14, 23, 59, 0, 0, time.UTC)
	early := time.Date(2026, 9, 16, 0, 1, 0, 0, time.UTC)

	if got := daysBetween(late, early); got != 2 {
		t.Fatalf("daysBetween = %d, want 2", got)
	}
}

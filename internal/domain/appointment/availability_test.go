package appointment

import (
	"testing"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func TestAvailableSlotsEmptySchedule(t *testing.T) {
	catalog := GenerateSlots(DefaultSlotConfig())

	free := AvailableSlots(catalog, nil)
	if len(free) != len(catalog) {
		t.Fatalf("expected full catalog (%d), got %d", len(catalog), len(free))
	}
}

func TestAvailableSlotsAppliesBuffer(t *testing.T) {
	catalog := GenerateSlots(DefaultSlotConfig())
	existing := []models.Appointment{
		{ID: 1, DoctorID: uintPtr(7), Date: day(14), Time: "10:00"},
	}

	free := AvailableSlots(catalog, existing)

	blocked := map[string]bool{"09:30": true, "10:00": true, "10:30": true}
	for _, label := range free {
		if blocked[label] {
			t.Errorf("slot %s should be blocked by the 10:00 appointment", label)
		}
	}

	if len(free) != len(catalog)-3 {
		t.Errorf("expected %d free slots, got %d", len(catalog)-3, len(free))
	}

	// o que aparece como livre passa no validador de commit
	for _, label := range free {
		candidate := &models.Appointment{
			PatientID: 99, DoctorID: uintPtr(7), Date: day(14), Time: label,
		}
		if err := CheckConflicts(existing, candidate, 0); err != nil {
			t.Errorf("free slot %s rejected by CheckConflicts: %v", label, err)
		}
	}
}

func TestAvailableSlotsCanceledStillBlocks(t *testing.T) {
	catalog := GenerateSlots(DefaultSlotConfig())
	existing := []models.Appointment{
		{ID: 1, DoctorID: uintPtr(7), Date: day(14), Time: "08:00", Status: "canceled"},
	}

	free := AvailableSlots(catalog, existing)
	for _, label := range free {
		if label == "08:00" || label == "08:30" {
			t.Errorf("slot %s should remain blocked by canceled appointment", label)
		}
	}
}

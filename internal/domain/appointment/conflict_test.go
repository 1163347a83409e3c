package appointment

import (
	"testing"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

func uintPtr(v uint) *uint { return &v }

func day(d int) time.Time {
	return time.Date(2026, 9, d, 0, 0, 0, 0, time.UTC)
}

func TestDoctorBufferBlocksNearbySlots(t *testing.T) {
	existing := []models.Appointment{
		{ID: 1, PatientID: 1, DoctorID: uintPtr(7), Date: day(14), Time: "10:00", Status: "scheduled"},
	}

	cases := []struct {
		time     string
		conflict bool
	}{
		{"09:00", false},
		{"09:30", true}, // borda inclusiva
		{"10:00", true},
		{"10:15", true},
		{"10:30", true}, // borda inclusiva
		{"11:00", false},
	}

	for _, tc := range cases {
		candidate := &models.Appointment{
			PatientID: 2,
			DoctorID:  uintPtr(7),
			Date:      day(14),
			Time:      tc.time,
		}

		err := CheckConflicts(existing, candidate, 0)
		if tc.conflict && !httperr.IsBusiness(err, "doctor_time_conflict") {
			t.Errorf("time %s: expected doctor_time_conflict, got %v", tc.time, err)
		}
		if !tc.conflict && err != nil {
			t.Errorf("time %s: expected no conflict, got %v", tc.time, err)
		}
	}
}

func TestDoctorConflictScopedToDoctorAndDay(t *testing.T) {
	existing := []models.Appointment{
		{ID: 1, PatientID: 1, DoctorID: uintPtr(7), Date: day(14), Time: "10:00"},
	}

	// outro médico, mesmo horário
	err := CheckConflicts(existing, &models.Appointment{
		PatientID: 2, DoctorID: uintPtr(8), Date: day(14), Time: "10:00",
	}, 0)
	if err != nil {
		t.Errorf("different doctor: expected no conflict, got %v", err)
	}

	// mesmo médico, outro dia
	err = CheckConflicts(existing, &models.Appointment{
		PatientID: 2, DoctorID: uintPtr(7), Date: day(15), Time: "10:00",
	}, 0)
	if err != nil {
		t.Errorf("different day: expected no conflict, got %v", err)
	}

	// candidato sem médico atribuído não entra na regra do médico
	err = CheckConflicts(existing, &models.Appointment{
		PatientID: 2, DoctorID: nil, Date: day(14), Time: "10:00",
	}, 0)
	if err != nil {
		t.Errorf("nil doctor: expected no conflict, got %v", err)
	}
}

func TestCanceledAppointmentStillBlocksDoctor(t *testing.T) {
	existing := []models.Appointment{
		{ID: 1, PatientID: 1, DoctorID: uintPtr(7), Date: day(14), Time: "10:00", Status: "canceled"},
	}

	err := CheckConflicts(existing, &models.Appointment{
		PatientID: 2, DoctorID: uintPtr(7), Date: day(14), Time: "10:00",
	}, 0)
	if !httperr.IsBusiness(err, "doctor_time_conflict") {
		t.Fatalf("expected doctor_time_conflict, got %v", err)
	}
}

func TestPatientExactCollision(t *testing.T) {
	existing := []models.Appointment{
		{ID: 1, PatientID: 3, DoctorID: uintPtr(7), Date: day(14), Time: "10:00"},
	}

	// mesmo paciente, outro médico, mesmo horário exato
	err := CheckConflicts(existing, &models.Appointment{
		PatientID: 3, DoctorID: uintPtr(8), Date: day(14), Time: "10:00",
	}, 0)
	if !httperr.IsBusiness(err, "patient_time_conflict") {
		t.Fatalf("expected patient_time_conflict, got %v", err)
	}

	// paciente não tem janela de ±30: horário vizinho é permitido
	err = CheckConflicts(existing, &models.Appointment{
		PatientID: 3, DoctorID: uintPtr(8), Date: day(14), Time: "10:30",
	}, 0)
	if err != nil {
		t.Errorf("adjacent slot: expected no conflict, got %v", err)
	}
}

func TestDoctorRuleWinsOverPatientRule(t *testing.T) {
	existing := []models.Appointment{
		{ID: 1, PatientID: 3, DoctorID: uintPtr(7), Date: day(14), Time: "10:00"},
	}

	// colide nas duas regras; a do médico vem primeiro
	err := CheckConflicts(existing, &models.Appointment{
		PatientID: 3, DoctorID: uintPtr(7), Date: day(14), Time: "10:00",
	}, 0)
	if !httperr.IsBusiness(err, "doctor_time_conflict") {
		t.Fatalf("expected doctor_time_conflict, got %v", err)
	}
}

func TestEditExcludesSelf(t *testing.T) {
	existing := []models.Appointment{
		{ID: 42, PatientID: 3, DoctorID: uintPtr(7), Date: day(14), Time: "10:00"},
	}

	// remarcar a própria consulta para o mesmo slot não é conflito
	err := CheckConflicts(existing, &models.Appointment{
		ID: 42, PatientID: 3, DoctorID: uintPtr(7), Date: day(14), Time: "10:00",
	}, 42)
	if err != nil {
		t.Fatalf("self collision: expected no conflict, got %v", err)
	}
}

func TestCheckConflictsRejectsBadLabel(t *testing.T) {
	err := CheckConflicts(nil, &models.Appointment{
		PatientID: 1, Date: day(14), Time: "not-a-time",
	}, 0)
	if !httperr.IsBusiness(err, "invalid_time") {
		t.Fatalf("expected invalid_time, got %v", err)
	}
}

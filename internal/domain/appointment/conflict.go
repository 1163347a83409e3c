package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ===============================
// Conflict Rules
// ===============================

// BufferMinutes é a janela de proteção em volta de cada consulta do
// médico: nenhuma outra consulta dele pode cair em
// [horário − 30min, horário + 30min], inclusive nas pontas.
const BufferMinutes = 30

// CheckConflicts é a validação autoritativa, executada no commit,
// independente do que o filtro de disponibilidade mostrou na UI.
// Regras em ordem, parando na primeira falha:
//
//  1. médico: janela inclusiva de ±30min no mesmo dia, qualquer status
//  2. paciente: colisão exata de data+horário
//
// excludeID tira a própria consulta do confronto quando é edição.
func CheckConflicts(
	existing []models.Appointment,
	candidate *models.Appointment,
	excludeID uint,
) error {

	t, err := parseLabel(candidate.Time)
	if err != nil {
		return httperr.ErrBusiness("invalid_time")
	}

	for _, ap := range existing {
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if !sameDay(ap.Date, candidate.Date) {
			continue
		}
		if candidate.DoctorID == nil || ap.DoctorID == nil {
			continue
		}
		if *ap.DoctorID != *candidate.DoctorID {
			continue
		}

		other, err := parseLabel(ap.Time)
		if err != nil {
			continue
		}
		if abs(other-t) <= BufferMinutes {
			return httperr.ErrBusiness("doctor_time_conflict")
		}
	}

	for _, ap := range existing {
		if excludeID != 0 && ap.ID == excludeID {
			continue
		}
		if ap.PatientID != candidate.PatientID {
			continue
		}
		if sameDay(ap.Date, candidate.Date) && ap.Time == candidate.Time {
			return httperr.ErrBusiness("patient_time_conflict")
		}
	}

	return nil
}

func sameDay(a, b time.Time) bool {
	return a.Year() == b.Year() && a.Month() == b.Month() && a.Day() == b.Day()
}

func abs(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

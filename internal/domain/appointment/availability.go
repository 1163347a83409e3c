package appointment

import (
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AvailabilityInput struct {
	DoctorID uint
	Date     time.Time
}

// AvailableSlots devolve o catálogo menos os horários bloqueados pelas
// consultas existentes do médico no dia, qualquer status.
//
// Aplica a mesma janela de ±30min do CheckConflicts: o que aparece como
// livre aqui é exatamente o que o validador aceita no commit.
func AvailableSlots(catalog []string, existing []models.Appointment) []string {
	free := make([]string, 0, len(catalog))

	for _, label := range catalog {
		t, err := parseLabel(label)
		if err != nil {
			continue
		}

		blocked := false
		for _, ap := range existing {
			other, err := parseLabel(ap.Time)
			if err != nil {
				continue
			}
			if abs(other-t) <= BufferMinutes {
				blocked = true
				break
			}
		}

		if !blocked {
			free = append(free, label)
		}
	}

	return free
}

package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type GetAvailability struct {
	repo  domain.Repository
	slots domain.SlotConfig
	now   func() time.Time
}

func NewGetAvailability(
	repo domain.Repository,
	slots domain.SlotConfig,
) *GetAvailability {
	return &GetAvailability{
		repo:  repo,
		slots: slots,
		now:   timezone.Now,
	}
}

// Execute devolve os horários livres do médico no dia. Entrada
// faltando ou inválida não é erro: cai no catálogo completo, a UI
// refina conforme o formulário é preenchido.
func (uc *GetAvailability) Execute(
	ctx context.Context,
	doctorID uint,
	dateStr string,
) ([]string, error) {

	catalog := domain.GenerateSlots(uc.slots)

	if doctorID == 0 {
		return catalog, nil
	}

	date, err := time.ParseInLocation("2006-01-02", dateStr, uc.now().Location())
	if err != nil {
		return catalog, nil
	}

	if _, err := uc.repo.GetDoctorByID(ctx, doctorID); err != nil {
		return catalog, nil
	}

	// qualquer status bloqueia o slot, cancelada inclusive
	existing, err := uc.repo.ListAppointments(ctx, domain.ListFilter{
		DoctorID: &doctorID,
		Date:     &date,
	})
	if err != nil {
		return nil, err
	}

	return domain.AvailableSlots(catalog, existing), nil
}

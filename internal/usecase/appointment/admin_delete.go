package appointment

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
)

// AdminDeleteAppointment é a válvula de escape do admin: remove a
// consulta em qualquer estado, fora da máquina de status.
type AdminDeleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewAdminDeleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AdminDeleteAppointment {
	return &AdminDeleteAppointment{
		repo:  repo,
		audit: audit,
	}
}

func (uc *AdminDeleteAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actorUserID uint,
) error {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return httperr.ErrBusiness("appointment_not_found")
	}

	if err := uc.repo.DeleteAppointment(ctx, ap.ID); err != nil {
		return err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorUserID,
		Action:   "appointment_deleted",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return nil
}

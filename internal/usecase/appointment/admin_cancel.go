package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// AdminCancelAppointment cancela qualquer consulta agendada, sem o
// lock de 24h do paciente.
type AdminCancelAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewAdminCancelAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *AdminCancelAppointment {
	return &AdminCancelAppointment{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

func (uc *AdminCancelAppointment) Execute(
	ctx context.Context,
	appointmentID uint,
	actorUserID uint,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, appointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	if err := domain.CancelByAdmin(ap, uc.now()); err != nil {
		return nil, err
	}

	// associações pré-carregadas ficariam inconsistentes no Save
	ap.Patient = models.Patient{}
	ap.Doctor = nil

	if err := uc.repo.SaveAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorUserID,
		Action:   "appointment_canceled",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

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

type CompleteAppointmentInput struct {
	ActorUserID   uint
	AppointmentID uint
	DoctorID      uint

	Prescription    string
	Recommendations string
}

// CompleteAppointment: criar o resumo da consulta é o único gatilho
// do status completed.
type CompleteAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewCompleteAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *CompleteAppointment {
	return &CompleteAppointment{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

func (uc *CompleteAppointment) Execute(
	ctx context.Context,
	in CompleteAppointmentInput,
) (*models.Appointment, error) {

	// só o médico dono da consulta pode fechá-la
	ap, err := uc.repo.GetAppointmentForDoctor(ctx, in.AppointmentID, in.DoctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	exists, err := uc.repo.HasVisitSummary(ctx, ap.ID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, httperr.ErrBusiness("summary_already_exists")
	}

	if err := domain.Complete(ap, uc.now()); err != nil {
		return nil, err
	}

	summary := &models.VisitSummary{
		AppointmentID:   ap.ID,
		Prescription:    in.Prescription,
		Recommendations: in.Recommendations,
	}

	if err := uc.repo.CompleteWithSummary(ctx, ap, summary); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorUserID,
		Action:   "appointment_completed",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

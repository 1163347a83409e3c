package leave

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/leave"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

// ======================================================
// INPUT
// ======================================================

type SubmitLeaveRequestInput struct {
	ActorUserID uint
	DoctorID    uint

	LeaveType string
	StartDate string // "2006-01-02"
	EndDate   string // "2006-01-02"

	// URL já resolvida pelo storage; vazio quando não há anexo.
	DocumentURL string
}

// ======================================================
// USE CASE
// ======================================================

type SubmitLeaveRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	now   func() time.Time
}

func NewSubmitLeaveRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *SubmitLeaveRequest {
	return &SubmitLeaveRequest{
		repo:  repo,
		audit: audit,
		now:   timezone.Now,
	}
}

func (uc *SubmitLeaveRequest) Execute(
	ctx context.Context,
	in SubmitLeaveRequestInput,
) (*models.LeaveRequest, error) {

	doctor, err := uc.repo.GetDoctorByID(ctx, in.DoctorID)
	if err != nil {
		return nil, httperr.ErrBusiness("doctor_not_found")
	}

	loc := uc.now().Location()

	start, err := time.ParseInLocation("2006-01-02", in.StartDate, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}
	end, err := time.ParseInLocation("2006-01-02", in.EndDate, loc)
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	lr := &models.LeaveRequest{
		DoctorID:    doctor.ID,
		LeaveType:   in.LeaveType,
		StartDate:   start,
		EndDate:     end,
		DocumentURL: in.DocumentURL,
		Status:      string(domain.InitialStatus()),
	}

	// regras de lead time / anexo / intervalo; sem cruzamento com a
	// agenda de consultas
	if err := domain.Validate(lr, uc.now()); err != nil {
		return nil, err
	}

	if err := uc.repo.CreateLeaveRequest(ctx, lr); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorUserID,
		Action:   "leave_requested",
		Entity:   "leave_request",
		EntityID: &lr.ID,
	})

	return lr, nil
}

package leave

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/leave"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// DecideLeaveRequest: approve/reject, só pelo admin, só em pendente.
type DecideLeaveRequest struct {
	repo  domain.Repository
	audit *audit.Dispatcher
}

func NewDecideLeaveRequest(
	repo domain.Repository,
	audit *audit.Dispatcher,
) *DecideLeaveRequest {
	return &DecideLeaveRequest{
		repo:  repo,
		audit: audit,
	}
}

func (uc *DecideLeaveRequest) Execute(
	ctx context.Context,
	leaveID uint,
	approve bool,
	actorUserID uint,
) (*models.LeaveRequest, error) {

	lr, err := uc.repo.GetLeaveRequestByID(ctx, leaveID)
	if err != nil {
		return nil, httperr.ErrBusiness("leave_not_found")
	}

	if err := domain.CanDecide(domain.Status(lr.Status)); err != nil {
		return nil, err
	}

	status := domain.StatusRejected
	action := "leave_rejected"
	if approve {
		status = domain.StatusApproved
		action = "leave_approved"
	}

	if err := uc.repo.UpdateLeaveStatus(ctx, lr.ID, string(status)); err != nil {
		return nil, err
	}
	lr.Status = string(status)

	uc.audit.Dispatch(audit.Event{
		UserID:   &actorUserID,
		Action:   action,
		Entity:   "leave_request",
		EntityID: &lr.ID,
	})

	return lr, nil
}

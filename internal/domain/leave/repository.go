package leave

import (
	"context"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type Repository interface {
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	CreateLeaveRequest(
		ctx context.Context,
		lr *models.LeaveRequest,
	) error

	GetLeaveRequestByID(
		ctx context.Context,
		id uint,
	) (*models.LeaveRequest, error)

	UpdateLeaveStatus(
		ctx context.Context,
		id uint,
		status string,
	) error

	ListForDoctor(
		ctx context.Context,
		doctorID uint,
	) ([]models.LeaveRequest, error)

	ListAll(
		ctx context.Context,
	) ([]models.LeaveRequest, error)
}

package leave

import (
	"context"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/leave"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type ListLeaveRequests struct {
	repo domain.Repository
}

func NewListLeaveRequests(repo domain.Repository) *ListLeaveRequests {
	return &ListLeaveRequests{repo: repo}
}

// ExecuteForDoctor lista os pedidos do próprio médico.
func (uc *ListLeaveRequests) ExecuteForDoctor(
	ctx context.Context,
	doctorID uint,
) ([]dto.LeaveRequestDTO, error) {

	lrs, err := uc.repo.ListForDoctor(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	return toDTOs(lrs), nil
}

// ExecuteAll lista tudo, para o painel do admin.
func (uc *ListLeaveRequests) ExecuteAll(
	ctx context.Context,
) ([]dto.LeaveRequestDTO, error) {

	lrs, err := uc.repo.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	return toDTOs(lrs), nil
}

func toDTOs(lrs []models.LeaveRequest) []dto.LeaveRequestDTO {
	out := make([]dto.LeaveRequestDTO, 0, len(lrs))
	for _, lr := range lrs {
		name := ""
		if lr.Doctor.ID != 0 {
			name = lr.Doctor.DisplayName()
		}

		out = append(out, dto.LeaveRequestDTO{
			ID:          lr.ID,
			DoctorName:  name,
			LeaveType:   lr.LeaveType,
			StartDate:   lr.StartDate,
			EndDate:     lr.EndDate,
			DocumentURL: lr.DocumentURL,
			Status:      lr.Status,
			CreatedAt:   lr.CreatedAt,
		})
	}
	return out
}

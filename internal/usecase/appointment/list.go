package appointment

import (
	"context"
	"time"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/dto"
	"github.com/BruksfildServices01/clinic-scheduler/internal/timezone"
)

type ListAppointmentsInput struct {
	PatientID *uint
	DoctorID  *uint
	Status    string

	// Dashboards mostram só o que ainda vai acontecer.
	UpcomingOnly bool
}

type ListAppointments struct {
	repo domain.Repository
	now  func() time.Time
}

func NewListAppointments(repo domain.Repository) *ListAppointments {
	return &ListAppointments{
		repo: repo,
		now:  timezone.Now,
	}
}

func (uc *ListAppointments) Execute(
	ctx context.Context,
	in ListAppointmentsInput,
) ([]dto.AppointmentListDTO, error) {

	filter := domain.ListFilter{
		PatientID: in.PatientID,
		DoctorID:  in.DoctorID,
		Status:    in.Status,
	}

	if in.UpcomingOnly {
		now := uc.now()
		filter.UpcomingFrom = &now
	}

	appointments, err := uc.repo.ListAppointments(ctx, filter)
	if err != nil {
		return nil, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(appointments))
	for _, ap := range appointments {
		doctorName := "não atribuído"
		if ap.Doctor != nil {
			doctorName = ap.Doctor.DisplayName()
		}

		out = append(out, dto.AppointmentListDTO{
			ID:             ap.ID,
			Date:           ap.Date,
			Time:           ap.Time,
			Status:         ap.Status,
			PatientName:    ap.Patient.FirstName + " " + ap.Patient.LastName,
			DoctorName:     doctorName,
			Specialization: ap.Specialization.Name,
			TypeName:       ap.Type.Name,
			Notes:          ap.Notes,
		})
	}

	return out, nil
}

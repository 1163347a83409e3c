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

type AdminEditAppointmentInput struct {
	ActorUserID   uint
	AppointmentID uint

	PatientID        uint
	DoctorID         *uint
	SpecializationID uint
	TypeID           uint

	Date  string
	Time  string
	Notes string
}

// AdminEditAppointment ignora o lock de 24h, mas reconfronta os novos
// valores excluindo a própria consulta do choque consigo mesma.
type AdminEditAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots domain.SlotConfig
	now   func() time.Time
}

func NewAdminEditAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slots domain.SlotConfig,
) *AdminEditAppointment {
	return &AdminEditAppointment{
		repo:  repo,
		audit: audit,
		slots: slots,
		now:   timezone.Now,
	}
}

func (uc *AdminEditAppointment) Execute(
	ctx context.Context,
	in AdminEditAppointmentInput,
) (*models.Appointment, error) {

	ap, err := uc.repo.GetAppointmentByID(ctx, in.AppointmentID)
	if err != nil {
		return nil, httperr.ErrBusiness("appointment_not_found")
	}

	date, err := time.ParseInLocation("2006-01-02", in.Date, uc.now().Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	if !uc.slots.Contains(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	if _, err := uc.repo.GetPatientByID(ctx, in.PatientID); err != nil {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	if in.DoctorID != nil {
		doctor, err := uc.repo.GetDoctorByID(ctx, *in.DoctorID)
		if err != nil {
			return nil, httperr.ErrBusiness("doctor_not_found")
		}
		if doctor.SpecializationID != in.SpecializationID {
			return nil, httperr.ErrBusiness("doctor_specialization_mismatch")
		}
	}

	ap.PatientID = in.PatientID
	ap.DoctorID = in.DoctorID
	ap.SpecializationID = in.SpecializationID
	ap.TypeID = in.TypeID
	ap.Date = date
	ap.Time = in.Time
	ap.Notes = in.Notes

	// associações pré-carregadas ficariam inconsistentes no Save
	ap.Patient = models.Patient{}
	ap.Doctor = nil

	if err := uc.repo.RescheduleAppointment(ctx, ap); err != nil {
		return nil, err
	}

	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorUserID,
		Action:   "appointment_edited",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

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

// ======================================================
// INPUT
// ======================================================

// O paciente é sempre explícito: sessão autenticada ou seleção do
// admin, quem resolve é o caller.
type CreateAppointmentInput struct {
	ActorUserID uint

	PatientID        uint
	DoctorID         *uint
	SpecializationID uint
	TypeID           uint

	Date  string // "2006-01-02"
	Time  string // "15:04"
	Notes string
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo  domain.Repository
	audit *audit.Dispatcher
	slots domain.SlotConfig
	now   func() time.Time
}

func NewCreateAppointment(
	repo domain.Repository,
	audit *audit.Dispatcher,
	slots domain.SlotConfig,
) *CreateAppointment {
	return &CreateAppointment{
		repo:  repo,
		audit: audit,
		slots: slots,
		now:   timezone.Now,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Data / horário no fuso da clínica
	// --------------------------------------------------
	date, err := time.ParseInLocation("2006-01-02", in.Date, uc.now().Location())
	if err != nil {
		return nil, httperr.ErrBusiness("invalid_date")
	}

	// só horários do catálogo são válidos
	if !uc.slots.Contains(in.Time) {
		return nil, httperr.ErrBusiness("invalid_time")
	}

	// --------------------------------------------------
	// 2️⃣ Paciente
	// --------------------------------------------------
	patient, err := uc.repo.GetPatientByID(ctx, in.PatientID)
	if err != nil {
		return nil, httperr.ErrBusiness("patient_not_found")
	}

	// --------------------------------------------------
	// 3️⃣ Médico (opcional) + especialização coerente
	// --------------------------------------------------
	if in.DoctorID != nil {
		doctor, err := uc.repo.GetDoctorByID(ctx, *in.DoctorID)
		if err != nil {
			return nil, httperr.ErrBusiness("doctor_not_found")
		}
		if doctor.SpecializationID != in.SpecializationID {
			return nil, httperr.ErrBusiness("doctor_specialization_mismatch")
		}
	}

	// --------------------------------------------------
	// 4️⃣ Criação (confronto roda dentro da transação)
	// --------------------------------------------------
	ap := &models.Appointment{
		PatientID:        patient.ID,
		DoctorID:         in.DoctorID,
		SpecializationID: in.SpecializationID,
		TypeID:           in.TypeID,
		Date:             date,
		Time:             in.Time,
		Status:           string(domain.InitialStatus()),
		Notes:            in.Notes,
	}

	if err := uc.repo.CreateAppointment(ctx, ap); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Auditoria
	// --------------------------------------------------
	uc.audit.Dispatch(audit.Event{
		UserID:   &in.ActorUserID,
		Action:   "appointment_created",
		Entity:   "appointment",
		EntityID: &ap.ID,
	})

	return ap, nil
}

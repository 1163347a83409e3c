package appointment

import (
	"context"
	"time"

	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

// ListFilter espelha os filtros dos dashboards: por médico, por
// paciente, por dia, por status, ou só o que ainda vai acontecer.
type ListFilter struct {
	DoctorID  *uint
	PatientID *uint
	Date      *time.Time
	Status    string

	// Quando setado, devolve apenas consultas a partir deste instante
	// (data futura, ou mesmo dia com horário >= agora).
	UpcomingFrom *time.Time
}

type Repository interface {
	// -------- Roster --------
	GetDoctorByID(
		ctx context.Context,
		id uint,
	) (*models.Doctor, error)

	GetPatientByID(
		ctx context.Context,
		id uint,
	) (*models.Patient, error)

	ListDoctorsBySpecialization(
		ctx context.Context,
		specializationID uint,
	) ([]models.Doctor, error)

	// -------- Appointment (read) --------
	ListAppointments(
		ctx context.Context,
		filter ListFilter,
	) ([]models.Appointment, error)

	GetAppointmentByID(
		ctx context.Context,
		id uint,
	) (*models.Appointment, error)

	GetAppointmentForPatient(
		ctx context.Context,
		appointmentID uint,
		patientID uint,
	) (*models.Appointment, error)

	GetAppointmentForDoctor(
		ctx context.Context,
		appointmentID uint,
		doctorID uint,
	) (*models.Appointment, error)

	// -------- Appointment (write) --------

	// CreateAppointment roda CheckConflicts e o insert na mesma
	// transação, com lock nas linhas concorrentes.
	CreateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// RescheduleAppointment é o CreateAppointment da edição: mesmo
	// confronto, excluindo a própria consulta.
	RescheduleAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	// SaveAppointment persiste mudança de status sem reconfronto.
	SaveAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uint,
	) error

	// -------- Visit summary --------
	HasVisitSummary(
		ctx context.Context,
		appointmentID uint,
	) (bool, error)

	// CompleteWithSummary cria o resumo e grava o novo status na mesma
	// transação.
	CompleteWithSummary(
		ctx context.Context,
		ap *models.Appointment,
		summary *models.VisitSummary,
	) error
}

package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/httperr"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

type AppointmentGormRepository struct {
	db *gorm.DB
}

func NewAppointmentGormRepository(db *gorm.DB) *AppointmentGormRepository {
	return &AppointmentGormRepository{db: db}
}

const dateLayout = "2006-01-02"

// --------------------------------------------------
// Roster
// --------------------------------------------------

func (r *AppointmentGormRepository) GetDoctorByID(
	ctx context.Context,
	id uint,
) (*models.Doctor, error) {

	var doc models.Doctor
	if err := r.db.WithContext(ctx).
		Preload("Specialization").
		First(&doc, id).Error; err != nil {
		return nil, err
	}
	return &doc, nil
}

func (r *AppointmentGormRepository) GetPatientByID(
	ctx context.Context,
	id uint,
) (*models.Patient, error) {

	var p models.Patient
	if err := r.db.WithContext(ctx).First(&p, id).Error; err != nil {
		return nil, err
	}
	return &p, nil
}

func (r *AppointmentGormRepository) ListDoctorsBySpecialization(
	ctx context.Context,
	specializationID uint,
) ([]models.Doctor, error) {

	var docs []models.Doctor
	if err := r.db.WithContext(ctx).
		Where("specialization_id = ?", specializationID).
		Order("last_name ASC, first_name ASC").
		Find(&docs).Error; err != nil {
		return nil, err
	}
	return docs, nil
}

// --------------------------------------------------
// Appointment (read)
// --------------------------------------------------

func (r *AppointmentGormRepository) ListAppointments(
	ctx context.Context,
	filter domain.ListFilter,
) ([]models.Appointment, error) {

	q := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		Preload("Specialization").
		Preload("Type").
		Preload("Summary")

	if filter.DoctorID != nil {
		q = q.Where("doctor_id = ?", *filter.DoctorID)
	}
	if filter.PatientID != nil {
		q = q.Where("patient_id = ?", *filter.PatientID)
	}
	if filter.Date != nil {
		q = q.Where("date = ?", filter.Date.Format(dateLayout))
	}
	if filter.Status != "" {
		q = q.Where("status = ?", filter.Status)
	}
	if filter.UpcomingFrom != nil {
		day := filter.UpcomingFrom.Format(dateLayout)
		q = q.Where(
			"date > ? OR (date = ? AND time >= ?)",
			day, day, filter.UpcomingFrom.Format("15:04"),
		)
	}

	var aps []models.Appointment
	if err := q.Order("date ASC, time ASC").Find(&aps).Error; err != nil {
		return nil, err
	}
	return aps, nil
}

func (r *AppointmentGormRepository) GetAppointmentByID(
	ctx context.Context,
	id uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Preload("Patient").
		Preload("Doctor").
		First(&ap, id).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentForPatient(
	ctx context.Context,
	appointmentID uint,
	patientID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND patient_id = ?", appointmentID, patientID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

func (r *AppointmentGormRepository) GetAppointmentForDoctor(
	ctx context.Context,
	appointmentID uint,
	doctorID uint,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ? AND doctor_id = ?", appointmentID, doctorID).
		First(&ap).Error; err != nil {
		return nil, err
	}
	return &ap, nil
}

// --------------------------------------------------
// Appointment (write)
// --------------------------------------------------

// createChecked roda o confronto e o write na mesma transação,
// travando as linhas concorrentes do dia (médico e paciente).
// O índice único (doctor_id, date, time) fica de backstop para a
// corrida de inserts simultâneos em conjunto vazio.
func (r *AppointmentGormRepository) createChecked(
	ctx context.Context,
	ap *models.Appointment,
	excludeID uint,
	write func(tx *gorm.DB) error,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {

		q := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("date = ?", ap.Date.Format(dateLayout))

		if ap.DoctorID != nil {
			q = q.Where(
				"doctor_id = ? OR patient_id = ?",
				*ap.DoctorID, ap.PatientID,
			)
		} else {
			q = q.Where("patient_id = ?", ap.PatientID)
		}

		var existing []models.Appointment
		if err := q.Find(&existing).Error; err != nil {
			return err
		}

		if err := domain.CheckConflicts(existing, ap, excludeID); err != nil {
			return err
		}

		if err := write(tx); err != nil {
			if httperr.IsConstraintConflict(err) {
				return httperr.ErrBusiness("doctor_time_conflict")
			}
			return err
		}
		return nil
	})
}

func (r *AppointmentGormRepository) CreateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.createChecked(ctx, ap, 0, func(tx *gorm.DB) error {
		return tx.Create(ap).Error
	})
}

func (r *AppointmentGormRepository) RescheduleAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.createChecked(ctx, ap, ap.ID, func(tx *gorm.DB) error {
		return tx.Save(ap).Error
	})
}

func (r *AppointmentGormRepository) SaveAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return r.db.WithContext(ctx).Save(ap).Error
}

func (r *AppointmentGormRepository) DeleteAppointment(
	ctx context.Context,
	id uint,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("appointment_id = ?", id).
			Delete(&models.VisitSummary{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.Appointment{}, id).Error
	})
}

// --------------------------------------------------
// Visit summary
// --------------------------------------------------

func (r *AppointmentGormRepository) HasVisitSummary(
	ctx context.Context,
	appointmentID uint,
) (bool, error) {

	var count int64
	if err := r.db.WithContext(ctx).
		Model(&models.VisitSummary{}).
		Where("appointment_id = ?", appointmentID).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *AppointmentGormRepository) CompleteWithSummary(
	ctx context.Context,
	ap *models.Appointment,
	summary *models.VisitSummary,
) error {

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(summary).Error; err != nil {
			// índice único em appointment_id garante o one-to-one
			if httperr.IsConstraintConflict(err) {
				return httperr.ErrBusiness("summary_already_exists")
			}
			return err
		}
		return tx.Save(ap).Error
	})
}

// Compile-time check
var _ domain.Repository = (*AppointmentGormRepository)(nil)

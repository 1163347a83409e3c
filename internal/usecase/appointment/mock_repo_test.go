package appointment

import (
	"context"
	"errors"

	domain "github.com/BruksfildServices01/clinic-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/clinic-scheduler/internal/models"
)

var errNotFound = errors.New("not found")

// mockRepo guarda tudo em memória e reproduz o confronto transacional
// do repositório real: Create/Reschedule validam contra o que já existe.
type mockRepo struct {
	doctors      map[uint]models.Doctor
	patients     map[uint]models.Patient
	appointments []models.Appointment
	summaries    map[uint]bool

	nextID uint

	saved       *models.Appointment
	deletedID   uint
	completedAp *models.Appointment
	summary     *models.VisitSummary
}

func newMockRepo() *mockRepo {
	return &mockRepo{
		doctors:   map[uint]models.Doctor{},
		patients:  map[uint]models.Patient{},
		summaries: map[uint]bool{},
		nextID:    1,
	}
}

var _ domain.Repository = (*mockRepo)(nil)

func (r *mockRepo) GetDoctorByID(_ context.Context, id uint) (*models.Doctor, error) {
	d, ok := r.doctors[id]
	if !ok {
		return nil, errNotFound
	}
	return &d, nil
}

func (r *mockRepo) GetPatientByID(_ context.Context, id uint) (*models.Patient, error) {
	p, ok := r.patients[id]
	if !ok {
		return nil, errNotFound
	}
	return &p, nil
}

func (r *mockRepo) ListDoctorsBySpecialization(_ context.Context, specID uint) ([]models.Doctor, error) {
	var out []models.Doctor
	for _, d := range r.doctors {
		if d.SpecializationID == specID {
			out = append(out, d)
		}
	}
	return out, nil
}

func (r *mockRepo) ListAppointments(_ context.Context, filter domain.ListFilter) ([]models.Appointment, error) {
	var out []models.Appointment
	for _, ap := range r.appointments {
		if filter.DoctorID != nil && (ap.DoctorID == nil || *ap.DoctorID != *filter.DoctorID) {
			continue
		}
		if filter.PatientID != nil && ap.PatientID != *filter.PatientID {
			continue
		}
		if filter.Status != "" && ap.Status != filter.Status {
			continue
		}
		if filter.Date != nil {
			d := *filter.Date
			if ap.Date.Year() != d.Year() || ap.Date.Month() != d.Month() || ap.Date.Day() != d.Day() {
				continue
			}
		}
		out = append(out, ap)
	}
	return out, nil
}

func (r *mockRepo) GetAppointmentByID(_ context.Context, id uint) (*models.Appointment, error) {
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			ap := r.appointments[i]
			return &ap, nil
		}
	}
	return nil, errNotFound
}

func (r *mockRepo) GetAppointmentForPatient(_ context.Context, id, patientID uint) (*models.Appointment, error) {
	for i := range r.appointments {
		if r.appointments[i].ID == id && r.appointments[i].PatientID == patientID {
			ap := r.appointments[i]
			return &ap, nil
		}
	}
	return nil, errNotFound
}

func (r *mockRepo) GetAppointmentForDoctor(_ context.Context, id, doctorID uint) (*models.Appointment, error) {
	for i := range r.appointments {
		ap := r.appointments[i]
		if ap.ID == id && ap.DoctorID != nil && *ap.DoctorID == doctorID {
			return &ap, nil
		}
	}
	return nil, errNotFound
}

func (r *mockRepo) CreateAppointment(_ context.Context, ap *models.Appointment) error {
	if err := domain.CheckConflicts(r.appointments, ap, 0); err != nil {
		return err
	}
	ap.ID = r.nextID
	r.nextID++
	r.appointments = append(r.appointments, *ap)
	return nil
}

func (r *mockRepo) RescheduleAppointment(_ context.Context, ap *models.Appointment) error {
	if err := domain.CheckConflicts(r.appointments, ap, ap.ID); err != nil {
		return err
	}
	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return errNotFound
}

func (r *mockRepo) SaveAppointment(_ context.Context, ap *models.Appointment) error {
	r.saved = ap
	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return errNotFound
}

func (r *mockRepo) DeleteAppointment(_ context.Context, id uint) error {
	r.deletedID = id
	for i := range r.appointments {
		if r.appointments[i].ID == id {
			r.appointments = append(r.appointments[:i], r.appointments[i+1:]...)
			return nil
		}
	}
	return errNotFound
}

func (r *mockRepo) HasVisitSummary(_ context.Context, appointmentID uint) (bool, error) {
	return r.summaries[appointmentID], nil
}

func (r *mockRepo) CompleteWithSummary(_ context.Context, ap *models.Appointment, summary *models.VisitSummary) error {
	r.completedAp = ap
	r.summary = summary
	r.summaries[ap.ID] = true
	for i := range r.appointments {
		if r.appointments[i].ID == ap.ID {
			r.appointments[i] = *ap
			return nil
		}
	}
	return errNotFound
}

func uintPtr(v uint) *uint { return &v }

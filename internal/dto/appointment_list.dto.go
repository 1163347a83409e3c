package dto

import "time"

type AppointmentListDTO struct {
	ID             uint      `json:"id"`
	Date           time.Time `json:"date"`
	Time           string    `json:"time"`
	Status         string    `json:"status"`
	PatientName    string    `json:"patient_name"`
	DoctorName     string    `json:"doctor_name"`
	Specialization string    `json:"specialization"`
	TypeName       string    `json:"type_name"`
	Notes          string    `json:"notes"`
}

type DoctorOptionDTO struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
}

type LeaveRequestDTO struct {
	ID          uint      `json:"id"`
	DoctorName  string    `json:"doctor_name"`
	LeaveType   string    `json:"leave_type"`
	StartDate   time.Time `json:"start_date"`
	EndDate     time.Time `json:"end_date"`
	DocumentURL string    `json:"document_url,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
}

package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	PatientID uint    `gorm:"not null" json:"patient_id"`
	Patient   Patient `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"patient"`

	// Pode ficar sem médico atribuído até a triagem.
	DoctorID *uint   `gorm:"uniqueIndex:idx_doctor_slot,priority:1" json:"doctor_id"`
	Doctor   *Doctor `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"doctor"`

	SpecializationID uint           `gorm:"not null" json:"specialization_id"`
	Specialization   Specialization `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"specialization"`

	TypeID uint            `gorm:"not null" json:"type_id"`
	Type   AppointmentType `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"type"`

	Date time.Time `gorm:"type:date;uniqueIndex:idx_doctor_slot,priority:2" json:"date"`
	Time string    `gorm:"size:5;uniqueIndex:idx_doctor_slot,priority:3" json:"time"`

	Status string `gorm:"size:20;default:'scheduled'" json:"status"`

	Notes       string     `gorm:"size:255" json:"notes"`
	CanceledAt  *time.Time `json:"canceled_at"`
	CompletedAt *time.Time `json:"completed_at"`

	Summary *VisitSummary `gorm:"foreignKey:AppointmentID" json:"summary,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

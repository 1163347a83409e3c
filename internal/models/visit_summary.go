package models

import "time"

// Uma consulta concluída tem exatamente um resumo.
type VisitSummary struct {
	ID uint `gorm:"primaryKey" json:"id"`

	AppointmentID uint `gorm:"uniqueIndex;not null" json:"appointment_id"`

	Prescription    string `gorm:"type:text" json:"prescription"`
	Recommendations string `gorm:"type:text" json:"recommendations"`

	CreatedAt time.Time `json:"created_at"`
}

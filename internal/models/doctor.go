package models

import "time"

type Doctor struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Pesel     string `gorm:"size:11;uniqueIndex;not null" json:"pesel"`
	FirstName string `gorm:"size:50;not null" json:"first_name"`
	LastName  string `gorm:"size:50;not null" json:"last_name"`
	Phone     string `gorm:"size:20" json:"phone"`

	SpecializationID uint           `gorm:"not null" json:"specialization_id"`
	Specialization   Specialization `gorm:"constraint:OnUpdate:CASCADE,OnDelete:RESTRICT;" json:"specialization"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (d *Doctor) DisplayName() string {
	return "Dr " + d.FirstName + " " + d.LastName
}

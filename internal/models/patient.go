package models

import "time"

type Patient struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	UserID uint `gorm:"uniqueIndex" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"-"`

	Pesel     string     `gorm:"size:11;uniqueIndex;not null" json:"pesel"`
	FirstName string     `gorm:"size:50;not null" json:"first_name"`
	LastName  string     `gorm:"size:50" json:"last_name"`
	BirthDate *time.Time `gorm:"type:date" json:"birth_date"`
	Phone     string     `gorm:"size:20" json:"phone"`
	Address   string     `gorm:"size:255" json:"address"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

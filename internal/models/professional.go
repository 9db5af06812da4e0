package models

import "time"

type HealthcareProfessional struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	SpecialtyID uint      `json:"specialty_id"`
	Specialty   Specialty `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"specialty"`

	Name string `gorm:"size:100;not null" json:"name"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

package models

import "time"

type Appointment struct {
	ID uint `gorm:"primaryKey" json:"id"`

	UserID uint `gorm:"index" json:"user_id"`
	User   User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	HealthcareProfessionalID uint                   `gorm:"index:idx_appointments_professional_date" json:"healthcare_professional_id"`
	HealthcareProfessional   HealthcareProfessional `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"-"`

	// Calendar date of the appointment; start/end are minute-precision
	// times of day within the clinic's reference zone.
	Date      time.Time `gorm:"type:date;index:idx_appointments_professional_date" json:"-"`
	StartTime string    `gorm:"size:5;not null" json:"appointment_start_time"`
	EndTime   string    `gorm:"size:5;not null" json:"appointment_end_time"`

	Status string `gorm:"size:20;default:'booked'" json:"status"`

	CancelledAt *time.Time `json:"cancelled_at,omitempty"`
	CompletedAt *time.Time `json:"completed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// DateString renders the calendar date the way the API exposes it.
func (a *Appointment) DateString() string {
	return a.Date.Format("2006-01-02")
}

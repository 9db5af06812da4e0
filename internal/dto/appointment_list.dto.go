package dto

type AppointmentListDTO struct {
	ID                       uint   `json:"id"`
	UserID                   uint   `json:"user_id"`
	HealthcareProfessionalID uint   `json:"healthcare_professional_id"`
	Date                     string `json:"date"`
	StartTime                string `json:"appointment_start_time"`
	EndTime                  string `json:"appointment_end_time"`
	Status                   string `json:"status"`

	// Denormalized counterpart fields. The patient view carries the
	// professional's specialty name, the professional view the patient's
	// name.
	UserName         string `json:"user_name,omitempty"`
	ProfessionalName string `json:"professional_name,omitempty"`
}

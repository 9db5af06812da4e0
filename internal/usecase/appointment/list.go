package appointment

import (
	"context"

	domain "github.com/BruksfildServices01/healthcare-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/dto"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/models"
)

// AllStatuses is the default listing filter.
var AllStatuses = []domain.Status{
	domain.StatusBooked,
	domain.StatusCancelled,
	domain.StatusCompleted,
}

type ListPatientAppointments struct {
	repo domain.Repository
}

func NewListPatientAppointments(repo domain.Repository) *ListPatientAppointments {
	return &ListPatientAppointments{repo: repo}
}

func (uc *ListPatientAppointments) Execute(
	ctx context.Context,
	patientID uint,
	statuses []domain.Status,
	page int,
	pageSize int,
) ([]dto.AppointmentListDTO, int64, error) {

	if len(statuses) == 0 {
		statuses = AllStatuses
	}

	apps, total, err := uc.repo.ListForPatient(ctx, patientID, statuses, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		row := toListDTO(ap)
		// The patient sees the counterpart by specialty, not by name.
		row.ProfessionalName = ap.HealthcareProfessional.Specialty.Name
		out = append(out, row)
	}

	return out, total, nil
}

type ListProfessionalAppointments struct {
	repo domain.Repository
}

func NewListProfessionalAppointments(repo domain.Repository) *ListProfessionalAppointments {
	return &ListProfessionalAppointments{repo: repo}
}

func (uc *ListProfessionalAppointments) Execute(
	ctx context.Context,
	professionalUserID uint,
	statuses []domain.Status,
	page int,
	pageSize int,
) ([]dto.AppointmentListDTO, int64, error) {

	if len(statuses) == 0 {
		statuses = AllStatuses
	}

	pro, err := uc.repo.GetProfessionalByUserID(ctx, professionalUserID)
	if err != nil {
		return nil, 0, domain.ErrNotFound
	}

	apps, total, err := uc.repo.ListForProfessional(ctx, pro.ID, statuses, page, pageSize)
	if err != nil {
		return nil, 0, err
	}

	out := make([]dto.AppointmentListDTO, 0, len(apps))
	for _, ap := range apps {
		row := toListDTO(ap)
		row.UserName = ap.User.Name
		out = append(out, row)
	}

	return out, total, nil
}

func toListDTO(ap models.Appointment) dto.AppointmentListDTO {
	return dto.AppointmentListDTO{
		ID:                       ap.ID,
		UserID:                   ap.UserID,
		HealthcareProfessionalID: ap.HealthcareProfessionalID,
		Date:                     ap.DateString(),
		StartTime:                ap.StartTime,
		EndTime:                  ap.EndTime,
		Status:                   ap.Status,
	}
}

package handlers

import (
	"errors"
	"log"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/healthcare-scheduler/internal/config"
	domain "github.com/BruksfildServices01/healthcare-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/httperr"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/messages"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/timezone"
	ucAppointment "github.com/BruksfildServices01/healthcare-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type PatientHandler struct {
	bookUC      *ucAppointment.Book
	cancelUC    *ucAppointment.Cancel
	listUC      *ucAppointment.ListPatientAppointments
	directoryUC *ucAppointment.ListProfessionals
	cfg         *config.Config
	loc         *time.Location
}

func NewPatientHandler(
	bookUC *ucAppointment.Book,
	cancelUC *ucAppointment.Cancel,
	listUC *ucAppointment.ListPatientAppointments,
	directoryUC *ucAppointment.ListProfessionals,
	cfg *config.Config,
) *PatientHandler {
	return &PatientHandler{
		bookUC:      bookUC,
		cancelUC:    cancelUC,
		listUC:      listUC,
		directoryUC: directoryUC,
		cfg:         cfg,
		loc:         timezone.Location(cfg.Timezone),
	}
}

// ======================================================
// REQUESTS
// ======================================================

type BookAppointmentRequest struct {
	HealthcareProfessionalID uint   `json:"healthcare_professional_id" binding:"required"`
	Date                     string `json:"date" binding:"required"`
	StartTime                string `json:"appointment_start_time" binding:"required"`
	EndTime                  string `json:"appointment_end_time" binding:"required"`
}

var bookMessages = map[string]string{
	"HealthcareProfessionalID.required": "Please select a healthcare professional.",
	"Date.required":                     "The appointment date is required.",
	"StartTime.required":                "Appointment start time is required.",
	"EndTime.required":                  "Appointment end time is required.",
}

// ======================================================
// BOOK
// ======================================================

func (h *PatientHandler) Book(c *gin.Context) {
	patientID, ok := requireSubject(c, "user_id")
	if !ok {
		return
	}

	var req BookAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.ValidationFailed(c, validators.Format(err, bookMessages))
		return
	}

	if errs := h.validateBookRequest(&req); len(errs) > 0 {
		httperr.ValidationFailed(c, errs)
		return
	}

	ap, err := h.bookUC.Execute(c.Request.Context(), ucAppointment.BookInput{
		ProfessionalID: req.HealthcareProfessionalID,
		Date:           req.Date,
		StartTime:      req.StartTime,
		EndTime:        req.EndTime,
	}, patientID)

	if err != nil {
		var conflict *domain.ConflictError
		switch {
		case errors.As(err, &conflict):
			httperr.WriteWithData(c, 400, messages.SlotUnavailable, conflict)
		case httperr.IsBusiness(err, "slot_unavailable"):
			httperr.BadRequest(c, messages.SlotUnavailable)
		case httperr.IsBusiness(err, "max_duration_exceeded"):
			httperr.BadRequest(c, messages.MaxDurationExceeded)
		case httperr.IsBusiness(err, "invalid_range"):
			httperr.ValidationFailed(c, map[string]string{
				"EndTime": "End time must be after the start time.",
			})
		case httperr.IsBusiness(err, "data_not_found"):
			httperr.ValidationFailed(c, map[string]string{
				"HealthcareProfessionalID": "Selected healthcare professional does not exist.",
			})
		default:
			log.Println("book appointment error:", err)
			httperr.Internal(c, messages.SomethingWentWrong)
		}
		return
	}

	httpresp.Created(c, messages.AppointmentSuccess, gin.H{"id": ap.ID})
}

func (h *PatientHandler) validateBookRequest(req *BookAppointmentRequest) map[string]string {
	errs := map[string]string{}

	date, err := time.ParseInLocation("2006-01-02", req.Date, h.loc)
	if err != nil {
		errs["Date"] = "The appointment date must be a valid date."
	} else {
		now := timezone.NowIn(h.cfg.Timezone)
		today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, h.loc)
		if date.Before(today) {
			errs["Date"] = "Appointment date cannot be in the past. Please select today or a future date."
		}
	}

	if !isHHMM(req.StartTime) {
		errs["StartTime"] = "Start time must be in the format HH:MM."
	}

	if !isHHMM(req.EndTime) {
		errs["EndTime"] = "End time must be in the format HH:MM."
	} else if isHHMM(req.StartTime) && req.EndTime <= req.StartTime {
		errs["EndTime"] = "End time must be after the start time."
	}

	return errs
}

// ======================================================
// LIST
// ======================================================

func (h *PatientHandler) List(c *gin.Context) {
	patientID, ok := requireSubject(c, "user_id")
	if !ok {
		return
	}

	statuses, ok := parseStatusFilter(c)
	if !ok {
		httperr.ValidationFailed(c, map[string]string{"status": "Invalid status type."})
		return
	}

	page, pageSize := parsePagination(c, h.cfg.DefaultPageSize)

	rows, total, err := h.listUC.Execute(c.Request.Context(), patientID, statuses, page, pageSize)
	if err != nil {
		log.Println("appointment list error:", err)
		httperr.Internal(c, messages.SomethingWentWrong)
		return
	}

	httpresp.Paged(c, messages.AppointmentList, rows, page, pageSize, total)
}

// ======================================================
// CANCEL
// ======================================================

func (h *PatientHandler) Cancel(c *gin.Context) {
	patientID, ok := requireSubject(c, "user_id")
	if !ok {
		return
	}

	appointmentID, ok := paramUint(c, "appointment_id")
	if !ok {
		httperr.NotFound(c, messages.DataNotFound)
		return
	}

	_, err := h.cancelUC.Execute(c.Request.Context(), patientID, appointmentID)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "appointment_already_cancelled"):
			httperr.NotFound(c, messages.AlreadyCancelled)
		case httperr.IsBusiness(err, "data_not_found"):
			httperr.NotFound(c, messages.DataNotFound)
		case httperr.IsBusiness(err, "do_not_cancelled"):
			httperr.BadRequest(c, messages.DoNotCancelled)
		default:
			log.Println("cancel appointment error:", err)
			httperr.Internal(c, messages.SomethingWentWrong)
		}
		return
	}

	httpresp.OK(c, messages.AppointmentCancelled, gin.H{})
}

// ======================================================
// PROFESSIONAL DIRECTORY
// ======================================================

func (h *PatientHandler) Directory(c *gin.Context) {
	page, pageSize := parsePagination(c, h.cfg.DefaultPageSize)

	pros, total, err := h.directoryUC.Execute(c.Request.Context(), page, pageSize)
	if err != nil {
		log.Println("doctor list error:", err)
		httperr.Internal(c, messages.SomethingWentWrong)
		return
	}

	message := messages.DoctorDetails
	if len(pros) == 0 {
		message = messages.DataNotFound
	}

	httpresp.Paged(c, message, pros, page, pageSize, total)
}

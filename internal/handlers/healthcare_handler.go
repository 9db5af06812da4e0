package handlers

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/BruksfildServices01/healthcare-scheduler/internal/config"
	domain "github.com/BruksfildServices01/healthcare-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/httperr"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/httpresp"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/messages"
	ucAppointment "github.com/BruksfildServices01/healthcare-scheduler/internal/usecase/appointment"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/validators"
)

// ======================================================
// HANDLER
// ======================================================

type HealthcareHandler struct {
	resolveUC *ucAppointment.Resolve
	listUC    *ucAppointment.ListProfessionalAppointments
	cfg       *config.Config
}

func NewHealthcareHandler(
	resolveUC *ucAppointment.Resolve,
	listUC *ucAppointment.ListProfessionalAppointments,
	cfg *config.Config,
) *HealthcareHandler {
	return &HealthcareHandler{
		resolveUC: resolveUC,
		listUC:    listUC,
		cfg:       cfg,
	}
}

// ======================================================
// REQUESTS
// ======================================================

type ResolveAppointmentRequest struct {
	Status string `json:"status" binding:"required,oneof=completed cancelled"`
}

var resolveMessages = map[string]string{
	"Status.required": "Status is required.",
	"Status.oneof":    "Invalid status type.",
}

// ======================================================
// LIST
// ======================================================

func (h *HealthcareHandler) List(c *gin.Context) {
	professionalUserID, ok := requireSubject(c, "user_id")
	if !ok {
		return
	}

	statuses, ok := parseStatusFilter(c)
	if !ok {
		httperr.ValidationFailed(c, map[string]string{"status": "Invalid status type."})
		return
	}

	page, pageSize := parsePagination(c, h.cfg.DefaultPageSize)

	rows, total, err := h.listUC.Execute(c.Request.Context(), professionalUserID, statuses, page, pageSize)
	if err != nil {
		if httperr.IsBusiness(err, "data_not_found") {
			httperr.NotFound(c, messages.DataNotFound)
			return
		}
		log.Println("list appointments error:", err)
		httperr.Internal(c, messages.SomethingWentWrong)
		return
	}

	httpresp.Paged(c, messages.AppointmentList, rows, page, pageSize, total)
}

// ======================================================
// RESOLVE (COMPLETE / CANCEL)
// ======================================================

func (h *HealthcareHandler) Resolve(c *gin.Context) {
	professionalUserID, ok := requireSubject(c, "user_id")
	if !ok {
		return
	}

	appointmentID, ok := paramUint(c, "id")
	if !ok {
		httperr.NotFound(c, messages.DataNotFound)
		return
	}

	var req ResolveAppointmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.ValidationFailed(c, validators.Format(err, resolveMessages))
		return
	}

	ap, err := h.resolveUC.Execute(c.Request.Context(), professionalUserID, appointmentID, req.Status)
	if err != nil {
		switch {
		case httperr.IsBusiness(err, "already_mark_as_completed"):
			httperr.BadRequest(c, messages.AlreadyCompleted)
		case httperr.IsBusiness(err, "data_not_found"):
			httperr.NotFound(c, messages.DataNotFound)
		case httperr.IsBusiness(err, "invalid_status"):
			httperr.ValidationFailed(c, map[string]string{"Status": "Invalid status type."})
		default:
			log.Println("mark completed error:", err)
			httperr.Internal(c, messages.SomethingWentWrong)
		}
		return
	}

	message := messages.AppointmentCompleted
	if domain.Status(ap.Status) == domain.StatusCancelled {
		message = messages.AppointmentCancelled
	}

	httpresp.OK(c, message, gin.H{})
}

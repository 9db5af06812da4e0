package handlers

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/healthcare-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/httperr"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/messages"
	"github.com/BruksfildServices01/healthcare-scheduler/internal/middleware"
)

func paramUint(c *gin.Context, name string) (uint, bool) {
	raw := c.Param(name)
	v, err := strconv.ParseUint(raw, 10, 64)
	if err != nil {
		return 0, false
	}
	return uint(v), true
}

// requireSubject enforces that the path's subject id is the authenticated
// caller. Mismatches return the generic internal error on purpose, leaking
// nothing about why the request failed.
func requireSubject(c *gin.Context, param string) (uint, bool) {
	authID := c.MustGet(middleware.ContextUserID).(uint)

	subject, ok := paramUint(c, param)
	if !ok || subject != authID {
		httperr.Internal(c, messages.SomethingWentWrong)
		return 0, false
	}

	return authID, true
}

func parsePagination(c *gin.Context, defaultSize int) (page int, pageSize int) {
	page = 1
	if raw := c.Query("page"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			page = v
		}
	}

	pageSize = defaultSize
	if raw := c.Query("page_size"); raw != "" {
		if v, err := strconv.Atoi(raw); err == nil && v > 0 {
			pageSize = v
		}
	}

	return page, pageSize
}

// parseStatusFilter reads the optional ?status= query. Absent means all
// statuses.
func parseStatusFilter(c *gin.Context) ([]domain.Status, bool) {
	raw := c.Query("status")
	if raw == "" {
		return nil, true
	}

	switch domain.Status(raw) {
	case domain.StatusBooked, domain.StatusCancelled, domain.StatusCompleted:
		return []domain.Status{domain.Status(raw)}, true
	default:
		return nil, false
	}
}

func isHHMM(s string) bool {
	if len(s) != 5 {
		return false
	}
	_, err := time.Parse("15:04", s)
	return err == nil
}

package httperr

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type HTTPError struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data,omitempty"`
}

func Write(c *gin.Context, status int, message string) {
	c.JSON(status, HTTPError{
		Success: false,
		Message: message,
	})
}

// WriteWithData attaches an error payload, used by the booking conflict
// response which carries the day's booked and free slots.
func WriteWithData(c *gin.Context, status int, message string, data any) {
	c.JSON(status, HTTPError{
		Success: false,
		Message: message,
		Data:    data,
	})
}

func BadRequest(c *gin.Context, message string) {
	Write(c, http.StatusBadRequest, message)
}

func NotFound(c *gin.Context, message string) {
	Write(c, http.StatusNotFound, message)
}

func Internal(c *gin.Context, message string) {
	Write(c, http.StatusInternalServerError, message)
}

func Unauthorized(c *gin.Context, message string) {
	Write(c, http.StatusUnauthorized, message)
}

func Forbidden(c *gin.Context, message string) {
	Write(c, http.StatusForbidden, message)
}

// ValidationFailed returns the field-level error list produced by request
// binding.
func ValidationFailed(c *gin.Context, errs map[string]string) {
	c.JSON(http.StatusUnprocessableEntity, gin.H{"errors": errs})
}

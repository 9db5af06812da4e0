package httpresp

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Data    any    `json:"data"`
}

type PagedResponse struct {
	Success     bool   `json:"success"`
	Message     string `json:"message"`
	CurrentPage int    `json:"current_page"`
	LastPage    int    `json:"last_page"`
	PerPage     int    `json:"per_page"`
	Total       int64  `json:"total"`
	Data        any    `json:"data"`
}

func OK(c *gin.Context, message string, data any) {
	c.JSON(http.StatusOK, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Created(c *gin.Context, message string, data any) {
	c.JSON(http.StatusCreated, Response{
		Success: true,
		Message: message,
		Data:    data,
	})
}

func Paged(c *gin.Context, message string, data any, page, pageSize int, total int64) {
	lastPage := int((total + int64(pageSize) - 1) / int64(pageSize))
	if lastPage < 1 {
		lastPage = 1
	}

	c.JSON(http.StatusOK, PagedResponse{
		Success:     true,
		Message:     message,
		CurrentPage: page,
		LastPage:    lastPage,
		PerPage:     pageSize,
		Total:       total,
		Data:        data,
	})
}

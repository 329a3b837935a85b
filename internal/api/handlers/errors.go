package handlers

import (
	"net/http"

	apperrors "pokemon-teams-backend/internal/errors"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	StatusCode int    `json:"statusCode" example:"404"`
	Message    string `json:"message" example:"This team does not exist."`
	Error      string `json:"error" example:"Not Found"`
}

// respondError writes err with the status its class maps to
func respondError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case apperrors.IsNotFound(err):
		status = http.StatusNotFound
	}
	abortWithError(c, status, apperrors.PublicMessage(err))
}

func abortWithError(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, ErrorResponse{
		StatusCode: status,
		Message:    message,
		Error:      http.StatusText(status),
	})
}

// NoRoute answers unknown paths with the standard 404 body
func NoRoute(c *gin.Context) {
	abortWithError(c, http.StatusNotFound, "Cannot "+c.Request.Method+" "+c.Request.URL.Path)
}

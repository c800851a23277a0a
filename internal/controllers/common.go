package controllers

import (
	"errors"
	"net/http"

	"fittrack/internal/apperrors"

	"github.com/gin-gonic/gin"
)

// respondError maps core error kinds onto HTTP status codes:
// ValidationError -> 400, ErrNotFound -> 404, ErrConstraintViolation -> 409,
// anything else -> 500.
func respondError(c *gin.Context, message string, err error) {
	status := http.StatusInternalServerError
	switch {
	case apperrors.IsValidation(err):
		status = http.StatusBadRequest
	case errors.Is(err, apperrors.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, apperrors.ErrConstraintViolation):
		status = http.StatusConflict
	}

	c.JSON(status, gin.H{
		"status":  "error",
		"message": message,
		"error":   err.Error(),
	})
}

package controllers

import (
	"errors"
	"net/http"

	"github.com/rikuto-mikado/fitness-tracker/apperror"

	"github.com/gin-gonic/gin"
)

// respondError maps service-layer errors onto HTTP statuses. Anything that is
// not a typed application error becomes an opaque 500.
func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		status := http.StatusInternalServerError
		switch {
		case errors.Is(err, apperror.ErrValidation):
			status = http.StatusBadRequest
		case errors.Is(err, apperror.ErrNotFound):
			status = http.StatusNotFound
		case errors.Is(err, apperror.ErrConflict):
			status = http.StatusConflict
		case errors.Is(err, apperror.ErrStorageUnavailable):
			status = http.StatusServiceUnavailable
		}
		c.JSON(status, gin.H{"error": appErr.Message})
		return
	}

	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

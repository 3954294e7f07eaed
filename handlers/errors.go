package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/linskybing/gpu-reserve-go/aiclient"
	"github.com/linskybing/gpu-reserve-go/response"
	"github.com/linskybing/gpu-reserve-go/services"
)

// writeServiceError maps the service error taxonomy onto HTTP statuses.
func writeServiceError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, services.ErrValidation),
		errors.Is(err, aiclient.ErrInterpretationFailed),
		errors.Is(err, services.ErrServerUnavailable):
		c.JSON(http.StatusBadRequest, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, response.ErrorResponse{Error: err.Error()})
	case errors.Is(err, services.ErrInvalidState),
		errors.Is(err, services.ErrConcurrencyConflict):
		c.JSON(http.StatusConflict, response.ErrorResponse{Error: err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, response.ErrorResponse{Error: err.Error()})
	}
}

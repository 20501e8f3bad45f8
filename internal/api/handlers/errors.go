package handlers

import (
	"errors"

	"hydraulic-press-sim/internal/api/models"
	"hydraulic-press-sim/internal/model"

	"github.com/gin-gonic/gin"
)

// engineErrorCode maps an engine validation error to its API code. ok is false for anything else.
func engineErrorCode(err error) (code string, ok bool) {
	switch {
	case errors.Is(err, model.ErrInvalidGeometry):
		return "INVALID_GEOMETRY", true
	case errors.Is(err, model.ErrInvalidPhaseDuration):
		return "INVALID_PHASE_DURATION", true
	case errors.Is(err, model.ErrInvalidEfficiency):
		return "INVALID_EFFICIENCY", true
	case errors.Is(err, model.ErrInvalidParameter):
		return "INVALID_PARAMETER", true
	}
	return "", false
}

func errorDetail(err error) models.ErrorDetail {
	code, ok := engineErrorCode(err)
	if !ok {
		code = "SIMULATION_ERROR"
	}
	return models.ErrorDetail{Code: code, Message: err.Error()}
}

func respondError(c *gin.Context, status int, code, message string) {
	c.JSON(status, models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    code,
			Message: message,
		},
	})
}

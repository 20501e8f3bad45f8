package handlers

import (
	"errors"
	"log"
	"net/http"

	"hydraulic-press-sim/internal/api/models"
	"hydraulic-press-sim/internal/classifier"
	"hydraulic-press-sim/internal/store"

	"github.com/gin-gonic/gin"
)

// ClassifyHandler forwards stored runs to the remote classification service
type ClassifyHandler struct {
	client *classifier.Client
	store  store.Store
}

// NewClassifyHandler creates a new classify handler
func NewClassifyHandler(client *classifier.Client, st store.Store) *ClassifyHandler {
	return &ClassifyHandler{
		client: client,
		store:  st,
	}
}

// Classify handles POST /api/v1/simulations/:id/classify
func (h *ClassifyHandler) Classify(c *gin.Context) {
	run, ok := loadRun(c, h.store)
	if !ok {
		return
	}

	payload := classifier.BuildPayload(run.Inputs, run.Result, run.Summary)
	result, err := h.client.Classify(c.Request.Context(), payload)
	if err != nil {
		var se *classifier.ServiceError
		if errors.As(err, &se) {
			statusCode := http.StatusBadGateway
			switch se.Code {
			case "RATE_LIMIT_EXCEEDED":
				statusCode = http.StatusTooManyRequests
			case "SERVICE_UNAVAILABLE":
				statusCode = http.StatusServiceUnavailable
			}
			c.JSON(statusCode, models.ErrorResponse{
				Error: models.ErrorDetail{
					Code:    se.Code,
					Message: se.Message,
					Details: map[string]interface{}{
						"status_code": se.StatusCode,
						"retry_after": se.RetryAfter,
					},
				},
			})
			return
		}
		log.Printf("[Classify] Run %s: %v", run.ID, err)
		respondError(c, http.StatusBadGateway, "CLASSIFIER_ERROR", err.Error())
		return
	}

	c.JSON(http.StatusOK, models.ClassifyResponse{ID: run.ID, Result: result})
}

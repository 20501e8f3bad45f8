package middleware

import (
	"fmt"
	"log"
	"net/http"

	"hydraulic-press-sim/internal/api/models"

	"github.com/gin-gonic/gin"
)

// ErrorHandler converts panics into INTERNAL_ERROR responses
func ErrorHandler() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		log.Printf("[API] panic on %s %s: %v", c.Request.Method, c.Request.URL.Path, recovered)
		message := "An unexpected error occurred"
		switch v := recovered.(type) {
		case string:
			message = v
		case error:
			message = v.Error()
		default:
			if recovered != nil {
				message = fmt.Sprint(recovered)
			}
		}
		c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "INTERNAL_ERROR",
				Message: message,
			},
		})
	})
}

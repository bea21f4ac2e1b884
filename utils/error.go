package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// FailureResponse is the envelope every failed request returns.
type FailureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ErrorHandler is a middleware to catch panics and return structured errors
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if err := recover(); err != nil {
				Logger := GetLogger()
				Logger.Error("Unhandled panic", zap.Any("error", err))

				c.JSON(http.StatusInternalServerError, FailureResponse{
					Message: "An unexpected error occurred. Please try again later.",
				})
				c.Abort()
			}
		}()
		c.Next()
	}
}

// JSONError sends a standardized JSON failure response. The message is the
// taxonomy's own wording; raw provider or database error text never reaches
// the client.
func JSONError(c *gin.Context, status int, message string) {
	c.JSON(status, FailureResponse{Success: false, Message: message})
}

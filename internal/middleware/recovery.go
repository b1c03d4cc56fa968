package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"gruenderai_backend/internal/util"
	"gruenderai_backend/pkg/logger"
)

// Recovery turns panics into 500 responses with the standard error shape.
func Recovery() gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		logger.Log.Error("Panic recovered",
			zap.Any("panic", recovered),
			zap.String("path", c.Request.URL.Path),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, util.ErrorResponse{
			Error:      true,
			Message:    "Internal server error",
			StatusCode: http.StatusInternalServerError,
		})
	})
}

package middleware

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Recovery is the transport-level fault barrier. Handlers convert their own
// failures into envelopes; anything that still panics is logged here and
// answered with a generic JSON error body instead of an empty reply.
func Recovery(l *zap.Logger) gin.HandlerFunc {
	return gin.CustomRecovery(func(c *gin.Context, recovered interface{}) {
		l.Error("panic recovered",
			zap.String("method", c.Request.Method),
			zap.String("path", c.Request.URL.Path),
			zap.Any("panic", recovered),
		)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"statusCode": http.StatusInternalServerError,
			"message":    "internal server error",
			"detail":     fmt.Sprint(recovered),
		})
	})
}

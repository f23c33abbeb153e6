package middleware

import (
	"time"

	"github.com/gin-gonic/gin"

	"demandsurvey/internal/shared/constants"
	"demandsurvey/internal/shared/logger"
)

// Logger writes one structured line per request. Health probes are only
// logged when they fail.
func Logger(log logger.Interface) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		status := c.Writer.Status()
		path := c.FullPath()
		if path == "" {
			path = c.Request.URL.Path
		}
		if path == "/health" && status < 400 {
			return
		}

		args := []any{
			"method", c.Request.Method,
			"path", path,
			"status", status,
			"duration_ms", time.Since(start).Milliseconds(),
			"client_ip", c.ClientIP(),
		}
		if id := c.GetString(constants.ContextKeyRequestID); id != "" {
			args = append(args, "request_id", id)
		}
		if userID := c.GetString(constants.ContextKeyUserID); userID != "" {
			args = append(args, "user_id", userID)
		}
		if len(c.Errors) > 0 {
			args = append(args, "error", c.Errors.String())
		}

		switch {
		case status >= 500:
			log.Errorw("HTTP request", args...)
		case status >= 400:
			log.Warnw("HTTP request", args...)
		default:
			log.Infow("HTTP request", args...)
		}
	}
}

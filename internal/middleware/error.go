package middleware

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// ErrorHandler is a backstop for errors attached to the gin context that
// no handler translated to a response.
func ErrorHandler(log zerolog.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if len(c.Errors) == 0 || c.Writer.Written() {
			return
		}

		last := c.Errors.Last()
		log.Error().
			Err(last.Err).
			Str("request_id", c.GetString(ContextRequestID)).
			Str("path", c.Request.URL.Path).
			Str("method", c.Request.Method).
			Msg("unhandled request error")

		status := http.StatusInternalServerError
		if coded, ok := last.Err.(interface{ StatusCode() int }); ok {
			status = coded.StatusCode()
		}
		c.JSON(status, gin.H{"error": last.Err.Error()})
	}
}

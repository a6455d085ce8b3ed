package middleware

import (
	"log/slog"
	"net/http"

	"feedbackpro/internal/handler/httperr"

	"github.com/gin-gonic/gin"
)

// ErrorHandler renders errors that were attached to the context without a response
// being written. The most recent public error wins; anything else becomes a 500.
func ErrorHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Next()

		if c.Writer.Written() {
			return
		}

		if public := c.Errors.ByType(gin.ErrorTypePublic); len(public) > 0 {
			if resp, ok := public.Last().Meta.(httperr.Response); ok {
				c.JSON(resp.Status, resp)
				return
			}
		}

		if len(c.Errors) == 0 {
			// handlers that only set a status (204, 304) still need the header flushed
			if status := c.Writer.Status(); status != http.StatusOK {
				c.Writer.WriteHeaderNow()
				return
			}
		}

		slog.Error("request ended without a response",
			"path", c.FullPath(),
			"errors", c.Errors.String())
		c.JSON(http.StatusInternalServerError, httperr.NewResponse(http.StatusInternalServerError, httperr.InternalMessage, nil))
	}
}

// CustomRecovery turns a panic into the standard 500 envelope.
func CustomRecovery() gin.HandlerFunc {
	return func(c *gin.Context) {
		defer func() {
			if rec := recover(); rec != nil {
				slog.Error("recovered from panic",
					"panic", rec,
					"method", c.Request.Method,
					"path", c.Request.URL.Path)
				c.AbortWithStatusJSON(http.StatusInternalServerError,
					httperr.NewResponse(http.StatusInternalServerError, httperr.InternalMessage, nil))
			}
		}()
		c.Next()
	}
}

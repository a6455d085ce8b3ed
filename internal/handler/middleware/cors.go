package middleware

import (
	"log/slog"
	"slices"

	"feedbackpro/internal/pkg/config"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewCORSMiddleware lets the dashboard and the respondent pages call the API
// with cookies. A "*" origin cannot be combined with credentials, so it turns
// credentials off instead of failing every browser request.
func NewCORSMiddleware(cfg config.CORSConfig) gin.HandlerFunc {
	allowAll := slices.Contains(cfg.AllowOrigins, "*")
	credentials := cfg.AllowCredentials && !allowAll
	if cfg.AllowCredentials && allowAll {
		slog.Warn("CORS wildcard origin disables credentialed requests")
	}

	exposed := cfg.ExposeHeaders
	if !slices.Contains(exposed, requestIDHeader) {
		exposed = append(slices.Clone(exposed), requestIDHeader)
	}

	corsCfg := cors.Config{
		AllowAllOrigins:  allowAll,
		AllowMethods:     cfg.AllowMethods,
		AllowHeaders:     cfg.AllowHeaders,
		ExposeHeaders:    exposed,
		AllowCredentials: credentials,
		MaxAge:           cfg.MaxAge,
	}
	if !allowAll {
		corsCfg.AllowOrigins = cfg.AllowOrigins
	}
	return cors.New(corsCfg)
}

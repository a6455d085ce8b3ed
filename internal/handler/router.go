package handler

import (
	"context"
	"net/http"
	"time"

	"feedbackpro/internal/handler/api"
	"feedbackpro/internal/handler/httperr"
	"feedbackpro/internal/handler/middleware"
	"feedbackpro/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Pinger is the database check behind /health.
type Pinger interface {
	Ping(ctx context.Context) error
}

// Deps is everything the router mounts.
type Deps struct {
	Config   config.Config
	Logger   *middleware.Logger
	Auth     *middleware.AuthMiddleware
	Limiter  middleware.RateLimiter
	DB       Pinger
	AuthAPI  *api.AuthHandler
	Survey   *api.SurveyHandler
	Public   *api.PublicHandler
	Feedback *api.FeedbackHandler
	Discount *api.DiscountHandler
}

func NewRouter(engine *gin.Engine, d Deps) {
	// recovery is outermost so it also covers the other middleware
	engine.Use(
		middleware.CustomRecovery(),
		middleware.NewCORSMiddleware(d.Config.CORS),
		d.Logger.LoggingMiddleware(),
		middleware.ErrorHandler(),
	)

	engine.GET("/health", health(d.DB))
	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	limited := d.Limiter.Middleware()
	requireAuth := d.Auth.RequireAuth()
	root := engine.Group("/api")

	auth := root.Group("/auth")
	auth.POST("/register", limited, d.AuthAPI.Register)
	auth.POST("/login", limited, d.AuthAPI.Login)
	auth.POST("/refresh", d.AuthAPI.Refresh)
	auth.POST("/logout", requireAuth, d.AuthAPI.Logout)
	auth.GET("/me", requireAuth, d.AuthAPI.Me)

	// respondents have no account; the link itself is the credential
	root.GET("/feedback/:responseEntityId", d.Feedback.GetForm)
	root.POST("/feedback", limited, d.Feedback.Submit)
	root.GET("/public/surveys/:id", d.Public.GetSurvey)
	root.POST("/public/surveys/:id/responses", limited, d.Public.StartResponse)

	surveys := root.Group("/surveys", requireAuth)
	surveys.POST("", d.Survey.Create)
	surveys.GET("", d.Survey.List)
	surveys.GET("/:id", d.Survey.Get)
	surveys.PATCH("/:id", d.Survey.Update)
	surveys.DELETE("/:id", d.Survey.Delete)
	surveys.GET("/:id/responses", d.Survey.ListResponses)
	surveys.GET("/:id/public-link", d.Survey.PublicLink)
	surveys.POST("/:id/sms-invites", d.Survey.SendSmsInvite)

	codes := root.Group("/businesses/:businessId/discount-codes", requireAuth)
	codes.GET("", d.Discount.List)
	codes.POST("", d.Discount.Issue)
	codes.POST("/redeem", d.Discount.Redeem)
}

// @Summary Health check
// @Description Reports whether the API can reach its database
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} httperr.Response
// @Router /health [get]
func health(db Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
		defer cancel()
		if err := db.Ping(ctx); err != nil {
			httperr.AbortWithError(c, http.StatusServiceUnavailable, err, "Database unavailable", nil)
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	}
}

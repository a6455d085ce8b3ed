package components

import (
	"context"

	"feedbackpro/internal/handler"
	"feedbackpro/internal/handler/api"
	"feedbackpro/internal/handler/middleware"
	"feedbackpro/internal/infra/redisstore"
	"feedbackpro/internal/pkg/clock"
	"feedbackpro/internal/pkg/config"
	"feedbackpro/internal/pkg/jwt"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewAuthHandler,
		api.NewSurveyHandler,
		api.NewPublicHandler,
		api.NewFeedbackHandler,
		api.NewDiscountHandler,
		func(s *jwt.Service) middleware.TokenValidator { return s },
		middleware.NewAuthMiddleware,
		newRateLimiter,
	),
	fx.Invoke(mountRoutes),
)

type routerParams struct {
	fx.In

	Engine   *gin.Engine
	Config   config.Config
	Logger   *middleware.Logger
	Auth     *middleware.AuthMiddleware
	Limiter  middleware.RateLimiter
	Pool     *pgxpool.Pool
	AuthAPI  *api.AuthHandler
	Survey   *api.SurveyHandler
	Public   *api.PublicHandler
	Feedback *api.FeedbackHandler
	Discount *api.DiscountHandler
}

func mountRoutes(p routerParams) {
	handler.NewRouter(p.Engine, handler.Deps{
		Config:   p.Config,
		Logger:   p.Logger,
		Auth:     p.Auth,
		Limiter:  p.Limiter,
		DB:       p.Pool,
		AuthAPI:  p.AuthAPI,
		Survey:   p.Survey,
		Public:   p.Public,
		Feedback: p.Feedback,
		Discount: p.Discount,
	})
}

// newRateLimiter picks the shared Redis counters when an address is configured
// and the in-process buckets otherwise.
func newRateLimiter(lc fx.Lifecycle, cfg config.Config, clk clock.Clock) (middleware.RateLimiter, error) {
	if cfg.RateLimit.RedisAddr == "" {
		rl := middleware.NewIPRateLimiter(cfg.RateLimit)
		lc.Append(fx.StopHook(rl.Stop))
		return rl, nil
	}

	client, err := redisstore.Connect(context.Background(), cfg.RateLimit)
	if err != nil {
		return nil, err
	}
	lc.Append(fx.StopHook(client.Close))
	return middleware.NewRedisRateLimiter(client, cfg.RateLimit, clk), nil
}

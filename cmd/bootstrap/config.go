package bootstrap

import (
	"log/slog"

	"feedbackpro/internal/handler/middleware"
	"feedbackpro/internal/pkg/config"
	"feedbackpro/internal/pkg/jwt"

	"go.uber.org/fx"
)

// ConfigModule loads and validates the environment once. Everything downstream
// receives the same Config value.
var ConfigModule = fx.Module("config",
	fx.Provide(config.LoadConfig),
	fx.Invoke(logEffectiveConfig),
)

var LoggerModule = fx.Module("logger",
	fx.Provide(
		func(cfg config.Config) *middleware.Logger { return middleware.NewLogger(cfg.Log) },
		func(l *middleware.Logger) *slog.Logger { return l.Slog() },
	),
)

var JWTModule = fx.Module("jwt",
	fx.Provide(func(cfg config.Config) *jwt.Service {
		return jwt.NewService(cfg.JWT.Secret, cfg.JWT.AccessTokenDuration, cfg.JWT.RefreshTokenDuration)
	}),
)

// logEffectiveConfig records the reward and exposure settings an operator is
// most likely to ask about. Secrets and credentials are never logged.
func logEffectiveConfig(cfg config.Config, logger *slog.Logger) {
	logger.Info("configuration loaded",
		"base_url", cfg.App.BaseURL,
		"db_host", cfg.DB.Host,
		"reward_delivery_types", cfg.Reward.QualifyingTypes,
		"reward_discount", cfg.Reward.DiscountType+":"+cfg.Reward.DiscountValue,
		"reward_validity", cfg.Reward.Validity,
		"public_rpm", cfg.RateLimit.PublicRequestsPerMinute,
		"cors_origins", cfg.CORS.AllowOrigins)
}

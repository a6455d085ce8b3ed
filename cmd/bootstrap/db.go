package bootstrap

import (
	"context"
	"log/slog"

	"feedbackpro/internal/infra/db"
	"feedbackpro/internal/pkg/config"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var DBModule = fx.Module("db",
	fx.Provide(NewDB),
)

// NewDB connects eagerly so a bad DSN fails fx.New rather than the first
// request. The pool closes after the HTTP server has drained.
func NewDB(lc fx.Lifecycle, cfg config.Config, logger *slog.Logger) (*pgxpool.Pool, error) {
	pool, closePool, err := db.Connect(cfg.DB)
	if err != nil {
		return nil, err
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			stat := pool.Stat()
			logger.Info("database pool ready",
				"max_conns", stat.MaxConns(),
				"idle_conns", stat.IdleConns())
			return nil
		},
		OnStop: func(_ context.Context) error {
			closePool()
			return nil
		},
	})
	return pool, nil
}

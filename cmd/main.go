package main

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"

	"feedbackpro/cmd/bootstrap"
	"feedbackpro/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"go.uber.org/fx"
	"go.uber.org/fx/fxevent"
)

// @title           FeedbackPro API
// @version         1.0
// @description     Surveys, single-use feedback links and discount code rewards.

// @BasePath  /
// @schemes http https
// @securityDefinitions.apikey CookieAuth
// @in cookie
// @name access_token
func main() {
	// debug mode must be opted into explicitly
	gin.SetMode(gin.ReleaseMode)
	if mode := os.Getenv("GIN_MODE"); mode != "" {
		gin.SetMode(mode)
	}
	gin.EnableJsonDecoderDisallowUnknownFields()

	var cfg config.Config
	app := fx.New(
		bootstrap.Module,
		fx.Provide(func() *gin.Engine { return gin.New() }),
		fx.WithLogger(func(logger *slog.Logger) fxevent.Logger {
			return &fxevent.SlogLogger{Logger: logger.With("component", "fx")}
		}),
		fx.Populate(&cfg),
		fx.Invoke(serveHTTP),
	)
	if err := app.Err(); err != nil {
		slog.Error("failed to build application", "error", err)
		os.Exit(1)
	}

	startCtx, cancelStart := context.WithTimeout(context.Background(), app.StartTimeout())
	defer cancelStart()
	if err := app.Start(startCtx); err != nil {
		slog.Error("failed to start application", "error", err)
		os.Exit(1)
	}

	sig := <-app.Wait()
	slog.Info("shutting down", "signal", sig.Signal.String())

	stopCtx, cancelStop := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancelStop()
	if err := app.Stop(stopCtx); err != nil {
		slog.Error("shutdown did not complete cleanly", "error", err)
		os.Exit(1)
	}
}

// serveHTTP binds the port during OnStart so a port clash aborts startup
// instead of surfacing later from the serving goroutine.
func serveHTTP(lc fx.Lifecycle, sd fx.Shutdowner, engine *gin.Engine, cfg config.Config, logger *slog.Logger) {
	srv := &http.Server{
		Addr:              ":" + cfg.Server.Port,
		Handler:           engine,
		ReadHeaderTimeout: cfg.Server.ReadHeaderTimeout,
	}

	lc.Append(fx.Hook{
		OnStart: func(_ context.Context) error {
			ln, err := net.Listen("tcp", srv.Addr)
			if err != nil {
				return err
			}
			logger.Info("http server listening", "address", ln.Addr().String(), "mode", gin.Mode())
			go func() {
				if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
					logger.Error("http server stopped", "error", err)
					_ = sd.Shutdown(fx.ExitCode(1))
				}
			}()
			return nil
		},
		OnStop: func(ctx context.Context) error {
			return srv.Shutdown(ctx)
		},
	})
}

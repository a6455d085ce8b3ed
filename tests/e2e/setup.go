//go:build e2e

// Package e2e runs the real fx graph against Postgres in a container. Each
// suite gets its own database on a container shared by the test binary, and
// every subtest starts from truncated tables.
package e2e

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"

	"feedbackpro/cmd/bootstrap"
	"feedbackpro/cmd/bootstrap/components"
	"feedbackpro/internal/infra/db"
	"feedbackpro/internal/pkg/config"
	"feedbackpro/tests/common/dbtest"

	"github.com/docker/go-connections/nat"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"
	"go.uber.org/fx"
)

const (
	pgUser     = "feedbackpro"
	pgPassword = "feedbackpro"
	pgPort     = nat.Port("5432/tcp")
)

type pgEndpoint struct {
	host string
	port string
}

func (e pgEndpoint) dsn(database string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, e.host, e.port, database)
}

var (
	containerOnce sync.Once
	container     pgEndpoint
	containerErr  error
)

// sharedPostgres starts one postgres per test binary. Ryuk reaps it when the
// binary exits, so suites never terminate it themselves.
func sharedPostgres(t *testing.T) pgEndpoint {
	t.Helper()
	containerOnce.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		c, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			Started: true,
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				// durability is irrelevant for throwaway data
				Cmd: []string{"postgres",
					"-c", "fsync=off",
					"-c", "full_page_writes=off",
					"-c", "synchronous_commit=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return pgEndpoint{host: host, port: port.Port()}.dsn("postgres")
				}).WithStartupTimeout(time.Minute),
				Labels: map[string]string{"app": "feedbackpro", "purpose": "e2e"},
			},
		})
		if err != nil {
			containerErr = err
			return
		}

		host, err := c.Host(ctx)
		if err != nil {
			containerErr = err
			return
		}
		port, err := c.MappedPort(ctx, pgPort)
		if err != nil {
			containerErr = err
			return
		}
		container = pgEndpoint{host: host, port: port.Port()}
	})
	require.NoError(t, containerErr, "start postgres container")
	return container
}

// createDatabase makes a uniquely named database and drops it when t ends.
func createDatabase(t *testing.T, pg pgEndpoint) string {
	t.Helper()
	name := "feedback_" + strings.ReplaceAll(uuid.NewString(), "-", "")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	admin, err := pgxpool.New(ctx, pg.dsn("postgres"))
	require.NoError(t, err)
	defer admin.Close()

	// CREATE DATABASE fails while template1 is busy with a concurrent create
	var createErr error
	for attempt := range 5 {
		if _, createErr = admin.Exec(ctx, "CREATE DATABASE "+name); createErr == nil {
			break
		}
		slog.Warn("create database failed, retrying", "attempt", attempt+1, "error", createErr)
		time.Sleep(time.Duration(attempt+1) * 500 * time.Millisecond)
	}
	require.NoError(t, createErr, "create test database")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		admin, err := pgxpool.New(ctx, pg.dsn("postgres"))
		if err != nil {
			return
		}
		defer admin.Close()
		if _, err := admin.Exec(ctx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop test database", "database", name, "error", err)
		}
	})
	return name
}

// migrate applies every migrations/*.sql in name order.
func migrate(ctx context.Context, pool *pgxpool.Pool) error {
	dir, err := migrationsDir()
	if err != nil {
		return err
	}
	files, err := filepath.Glob(filepath.Join(dir, "*.sql"))
	if err != nil {
		return err
	}
	sort.Strings(files)
	for _, f := range files {
		sqlText, err := os.ReadFile(f)
		if err != nil {
			return err
		}
		if _, err := pool.Exec(ctx, string(sqlText)); err != nil {
			return fmt.Errorf("apply %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// migrationsDir walks up from the package directory go test runs in.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, "go.mod")); err == nil {
			return filepath.Join(dir, "migrations"), nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("go.mod not found above working directory")
		}
		dir = parent
	}
}

// startApp builds the production graph minus config loading, the DB module
// and the HTTP listener. Tests drive the returned engine in-process.
func startApp(t *testing.T, cfg config.Config, pool *pgxpool.Pool) *gin.Engine {
	t.Helper()

	var engine *gin.Engine
	app := fx.New(
		fx.Supply(cfg, pool),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&engine),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")

	t.Cleanup(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := app.Stop(ctx); err != nil {
			slog.Warn("stop fx app", "error", err)
		}
	})
	return engine
}

// SharedSuite is embedded by every e2e suite.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)

	pg := sharedPostgres(t)

	cfg := config.NewTestConfig()
	cfg.DB.Host = pg.host
	cfg.DB.Port = pg.port
	cfg.DB.User = pgUser
	cfg.DB.Password = pgPassword
	cfg.DB.DBName = createDatabase(t, pg)

	pool, closePool, err := db.Connect(cfg.DB)
	require.NoError(t, err, "connect test database")
	t.Cleanup(closePool)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, migrate(ctx, pool), "migrate test database")

	s.Config = cfg
	s.DB = pool
	s.Router = startApp(t, cfg, pool)
}

func (s *SharedSuite) SetupSubTest() {
	require.NoError(s.T(), dbtest.ResetDB(s.DB), "reset database")
}

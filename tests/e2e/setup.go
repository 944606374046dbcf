//go:build e2e

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

	"dryclean-api/cmd/bootstrap"
	"dryclean-api/cmd/bootstrap/components"
	"dryclean-api/internal/infra/db"
	"dryclean-api/internal/pkg/config"
	"dryclean-api/tests/common/dbtest"

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
	pgUser     = "test"
	pgPassword = "testpass"
	pgPort     = nat.Port("5432/tcp")
)

// postgres is shared by every suite in one test binary.
var postgres struct {
	once      sync.Once
	container testcontainers.Container
	host      string
	port      string
	err       error
}

func dsn(host, port, dbName string) string {
	return fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", pgUser, pgPassword, host, port, dbName)
}

func startPostgres(t *testing.T) {
	postgres.once.Do(func() {
		ctx, cancel := context.WithTimeout(context.Background(), 3*time.Minute)
		defer cancel()

		postgres.container, postgres.err = testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
			Started: true,
			ContainerRequest: testcontainers.ContainerRequest{
				Image:        "postgres:17",
				Name:         "dryclean-postgres-e2e",
				Labels:       map[string]string{"purpose": "dryclean-e2e"},
				ExposedPorts: []string{string(pgPort)},
				Env: map[string]string{
					"POSTGRES_USER":     pgUser,
					"POSTGRES_PASSWORD": pgPassword,
					"POSTGRES_DB":       "postgres",
				},
				Tmpfs: map[string]string{"/var/lib/postgresql/data": "rw,size=512m"},
				Cmd: []string{"postgres",
					"-c", "fsync=off",
					"-c", "synchronous_commit=off",
					"-c", "full_page_writes=off",
					"-c", "max_connections=200",
				},
				WaitingFor: wait.ForSQL(pgPort, "pgx", func(host string, port nat.Port) string {
					return dsn(host, port.Port(), "postgres")
				}).WithStartupTimeout(time.Minute),
			},
		})
		if postgres.err != nil {
			return
		}

		mapped, err := postgres.container.MappedPort(ctx, pgPort)
		if err != nil {
			postgres.err = err
			return
		}
		host, err := postgres.container.Host(ctx)
		if err != nil {
			postgres.err = err
			return
		}
		postgres.host, postgres.port = host, mapped.Port()

		// Ryuk normally reaps the container; this covers runs where it is disabled
		t.Cleanup(func() {
			stopCtx, stop := context.WithTimeout(context.Background(), 10*time.Second)
			defer stop()
			if err := postgres.container.Terminate(stopCtx); err != nil {
				slog.Warn("terminate postgres container", "error", err)
			}
		})
	})
	require.NoError(t, postgres.err, "start postgres container")
}

// createDatabase makes a throwaway database per suite and drops it on cleanup.
func createDatabase(t *testing.T) config.DBConfig {
	t.Helper()

	name := "dryclean_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	adminDSN := dsn(postgres.host, postgres.port, "postgres")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	admin, err := pgxpool.New(ctx, adminDSN)
	require.NoError(t, err, "admin connection")
	defer admin.Close()

	// concurrent CREATE DATABASE from parallel packages can collide on template1
	for attempt := 1; ; attempt++ {
		_, err = admin.Exec(ctx, "CREATE DATABASE "+name)
		if err == nil || attempt == 5 {
			break
		}
		backoff := min(time.Duration(attempt)*500*time.Millisecond, 3*time.Second)
		slog.Warn("create test database", "attempt", attempt, "retry_in", backoff, "error", err)
		time.Sleep(backoff)
	}
	require.NoError(t, err, "create test database")

	t.Cleanup(func() {
		dropCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		p, err := pgxpool.New(dropCtx, adminDSN)
		if err != nil {
			slog.Warn("drop test database", "database", name, "error", err)
			return
		}
		defer p.Close()
		if _, err := p.Exec(dropCtx, "DROP DATABASE IF EXISTS "+name+" WITH (FORCE)"); err != nil {
			slog.Warn("drop test database", "database", name, "error", err)
		}
	})

	return config.DBConfig{
		Host:     postgres.host,
		Port:     postgres.port,
		User:     pgUser,
		Password: pgPassword,
		DBName:   name,
		SSLMode:  "disable",
		TimeZone: "Europe/Istanbul",
		MaxConns: 5,

		TxMaxRetries: 1,
	}
}

// migrationsDir walks up from the package directory until it finds migrations/.
func migrationsDir() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	for {
		candidate := filepath.Join(dir, "migrations")
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("migrations directory not found above %s", dir)
		}
		dir = parent
	}
}

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
			return fmt.Errorf("read %s: %w", filepath.Base(f), err)
		}
		if _, err := pool.Exec(ctx, string(sqlText)); err != nil {
			return fmt.Errorf("apply %s: %w", filepath.Base(f), err)
		}
	}
	return nil
}

// startApp runs the production fx graph with the test pool and config supplied in place of
// ConfigModule and DBModule. Redis, Kafka and SMTP are left unset so the local fallbacks serve.
func startApp(t *testing.T, pool *pgxpool.Pool, cfg config.Config) *gin.Engine {
	t.Helper()

	var router *gin.Engine
	app := fx.New(
		fx.Supply(pool, cfg),
		fx.Provide(func() *gin.Engine { return gin.New() }),
		bootstrap.LoggerModule,
		bootstrap.JWTModule,
		bootstrap.IntegrationsModule,
		components.PersistenceModule,
		components.UseCaseModule,
		components.HandlerModule,
		fx.Populate(&router),
		fx.NopLogger,
	)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	require.NoError(t, app.Start(ctx), "start fx app")

	t.Cleanup(func() {
		stopCtx, stop := context.WithTimeout(context.Background(), 5*time.Second)
		defer stop()
		if err := app.Stop(stopCtx); err != nil {
			slog.Warn("stop fx app", "error", err)
		}
	})
	return router
}

// SharedSuite is embedded by every e2e suite. Each subtest starts from a truncated,
// reseeded database.
type SharedSuite struct {
	suite.Suite
	Router *gin.Engine
	DB     *pgxpool.Pool
	Config config.Config
}

func (s *SharedSuite) SetupSuite() {
	t := s.T()
	gin.SetMode(gin.TestMode)
	startPostgres(t)

	s.Config = config.NewTestConfig()
	s.Config.DB = createDatabase(t)

	pool, closePool, err := db.Connect(context.Background(), s.Config.DB)
	require.NoError(t, err, "connect test database")
	t.Cleanup(closePool)
	s.DB = pool

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	require.NoError(t, migrate(ctx, pool), "apply migrations")
	require.NoError(t, dbtest.SeedReferenceData(pool), "seed reference data")

	s.Router = startApp(t, pool, s.Config)
	slog.Info("e2e environment ready", "database", s.Config.DB.DBName, "port", postgres.port)
}

func (s *SharedSuite) SetupSubTest() {
	s.Require().NoError(dbtest.ResetDB(s.DB), "reset database")
}

package testutils

import (
	"context"
	"database/sql"
	"fmt"
	"sync"
	"testing"
	"time"

	"kubera-backend/internal/config"
	"kubera-backend/internal/database"
	"kubera-backend/internal/database/models"
	"kubera-backend/internal/tenant"

	_ "github.com/jackc/pgx/v5/stdlib" // database/sql driver for readiness ping
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

const (
	pgUser     = "kubera"
	pgPassword = "kubera-test"
	pgDatabase = "kubera_test"
)

// One Postgres container serves every integration suite in the process.
var (
	sharedOnce     sync.Once
	sharedInitErr  error
	sharedPool     *dockertest.Pool
	sharedResource *dockertest.Resource
	sharedDB       *gorm.DB
	sharedConfig   *config.Config
)

// BaseTestSuite gives integration suites a migrated database with the shared
// schema in place and no tenant schemas.
type BaseTestSuite struct {
	suite.Suite
	DB     *gorm.DB
	Config *config.Config
}

// SetupTestSuite starts the shared container on first use.
func SetupTestSuite(t *testing.T) *BaseTestSuite {
	sharedOnce.Do(func() { sharedInitErr = startPostgres() })
	if sharedInitErr != nil {
		t.Fatalf("failed to initialize shared test container: %v", sharedInitErr)
	}
	return &BaseTestSuite{DB: sharedDB, Config: sharedConfig}
}

// CleanupSharedContainer closes the pool and purges the container. Called
// from TestMain.
func CleanupSharedContainer() {
	if sharedDB != nil {
		if sqlDB, err := sharedDB.DB(); err == nil {
			_ = sqlDB.Close()
		}
		sharedDB = nil
	}
	if sharedPool == nil || sharedResource == nil {
		return
	}
	if err := sharedPool.Purge(sharedResource); err != nil {
		logrus.WithError(err).Warn("Could not purge test container")
	} else {
		logrus.WithField("container", sharedResource.Container.Name).Debug("Purged test container")
	}
	sharedResource = nil
	sharedPool = nil
}

func (s *BaseTestSuite) SetupTest()    { s.CleanTestDB() }
func (s *BaseTestSuite) TearDownTest() { s.CleanTestDB() }

// CleanTestDB drops every tenant schema and empties the shared tenant table.
func (s *BaseTestSuite) CleanTestDB() {
	if s.DB == nil {
		return
	}
	ctx := context.Background()
	migrator := database.NewMigrator(s.DB)
	if schemas, err := migrator.ListTenantSchemas(ctx); err == nil {
		for _, schema := range schemas {
			_ = migrator.DropTenantSchema(ctx, schema)
		}
	}
	s.DB.Exec(`TRUNCATE TABLE public.tenants RESTART IDENTITY CASCADE`)
}

// CreateTenantSchema provisions a fresh tenant schema and returns the Info
// that tenant-scoped code needs to reach it. No tenants row is written.
func (s *BaseTestSuite) CreateTenantSchema(t *testing.T, subdomain string) *tenant.Info {
	t.Helper()
	schema := tenant.SchemaNameFor(subdomain)
	if err := database.NewMigrator(s.DB).CreateTenantSchema(context.Background(), schema); err != nil {
		t.Fatalf("create tenant schema %s: %v", schema, err)
	}
	return &tenant.Info{
		Subdomain:  subdomain,
		SchemaName: schema,
		Status:     models.TenantStatusActive,
	}
}

func startPostgres() error {
	pool, err := dockertest.NewPool("")
	if err != nil {
		return fmt.Errorf("could not connect to docker: %w", err)
	}
	sharedPool = pool

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "16-alpine",
		Env: []string{
			"POSTGRES_USER=" + pgUser,
			"POSTGRES_PASSWORD=" + pgPassword,
			"POSTGRES_DB=" + pgDatabase,
		},
	}, func(hc *docker.HostConfig) {
		hc.AutoRemove = true
		hc.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	if err != nil {
		return fmt.Errorf("could not start postgres: %w", err)
	}
	sharedResource = resource

	hostPort := resource.GetPort("5432/tcp")
	dsn := fmt.Sprintf("postgres://%s:%s@127.0.0.1:%s/%s?sslmode=disable", pgUser, pgPassword, hostPort, pgDatabase)

	pool.MaxWait = 2 * time.Minute
	if err := pool.Retry(func() error {
		std, err := sql.Open("pgx", dsn)
		if err != nil {
			return err
		}
		defer std.Close()
		if err := std.Ping(); err != nil {
			return err
		}

		gdb, err := database.Initialize(dsn, &database.Options{InitShared: true})
		if err != nil {
			return err
		}
		sharedDB = gdb
		return nil
	}); err != nil {
		return fmt.Errorf("could not connect to docker database: %w", err)
	}

	sharedConfig = &config.Config{
		DatabaseURL:           dsn,
		Port:                  "8080",
		LogLevel:              "debug",
		Environment:           "test",
		JWTSecret:             "integration-signing-key-0123456789abcdef",
		AccessTokenTTLMinutes: 30,
		AppDomain:             "kubera.test",
		InvitationTTLHours:    72,
		SessionRetentionDays:  30,
	}

	logrus.WithField("port", hostPort).Info("Shared Postgres ready")
	return nil
}

// Command tenantctl administers tenants: the shared schema, tenant
// provisioning and lifecycle, exports and session cleanup.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"kubera-backend/internal/api/routes"
	"kubera-backend/internal/cache"
	"kubera-backend/internal/config"
	"kubera-backend/internal/database"
	"kubera-backend/internal/logger"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// app holds what every subcommand needs, built lazily so --help works offline.
type app struct {
	cfg      *config.Config
	db       *gorm.DB
	rdb      *redis.Client
	services *routes.Services
}

func newApp() (*app, error) {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logger.Setup(cfg.LogLevel, os.Stderr)

	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{MaxOpenConns: 4, MaxIdleConns: 2})
	if err != nil {
		return nil, err
	}
	a := &app{cfg: cfg, db: db}
	tenantCache, rdb, err := openTenantCache(cfg)
	if err != nil {
		a.Close()
		return nil, err
	}
	a.rdb = rdb

	a.services, err = routes.NewServices(db, cfg, tenantCache)
	if err != nil {
		a.Close()
		return nil, err
	}
	return a, nil
}

// openTenantCache connects the tenant cache the API servers read, so that
// status changes made here evict their cached lookups. Returns a nil cache
// when REDIS_URL is unset.
func openTenantCache(cfg *config.Config) (cache.TenantCache, *redis.Client, error) {
	if cfg.RedisURL == "" {
		return nil, nil, nil
	}
	rdb, err := cache.Connect(cfg.RedisURL)
	if err != nil {
		return nil, nil, fmt.Errorf("tenant cache: %w", err)
	}
	return cache.NewRedisTenantCache(rdb, cfg.TenantCacheTTL()), rdb, nil
}

func (a *app) Close() {
	if a.rdb != nil {
		_ = a.rdb.Close()
	}
	if sqlDB, err := a.db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

// withApp wraps a RunE body with application setup and teardown.
func withApp(fn func(ctx context.Context, a *app, cmd *cobra.Command, args []string) error) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		a, err := newApp()
		if err != nil {
			return err
		}
		defer a.Close()
		return fn(cmd.Context(), a, cmd, args)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "tenantctl",
		Short:         "Administer kubera tenants",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(newSchemaCommand(), newTenantCommand(), newSessionsCommand())
	return cmd
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCommand().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

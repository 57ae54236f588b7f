package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"kubera-backend/internal/api/handlers"
	"kubera-backend/internal/api/routes"
	"kubera-backend/internal/cache"
	"kubera-backend/internal/config"
	"kubera-backend/internal/database"
	"kubera-backend/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	gormlogger "gorm.io/gorm/logger"
)

//	@title			Kubera Backend API
//	@version		1.0
//	@description	Multi-tenant contract management API. Each tenant is reached through its own subdomain and stored in its own schema.

//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	// Initialize configuration
	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel, os.Stdout)

	dbLogLevel := gormlogger.Error
	if cfg.LogLevel == "debug" {
		dbLogLevel = gormlogger.Info
	}

	// Initialize database; shared tables are created when missing
	db, err := database.Initialize(cfg.DatabaseURL, &database.Options{
		LogLevel:     dbLogLevel,
		MaxOpenConns: cfg.DatabaseMaxOpenConns,
		InitShared:   true,
	})
	if err != nil {
		logrus.Fatal("Failed to initialize database: ", err)
	}

	// Tenant lookups are cached in Redis when configured
	var tenantCache cache.TenantCache
	checks := make(map[string]handlers.HealthCheck)
	if cfg.RedisURL != "" {
		rdb, err := cache.Connect(cfg.RedisURL)
		if err != nil {
			logrus.WithError(err).Warn("Tenant cache unavailable, continuing without it")
		} else {
			defer rdb.Close()
			tenantCache = cache.NewRedisTenantCache(rdb, cfg.TenantCacheTTL())
			checks["tenant_cache"] = func(ctx context.Context) error { return rdb.Ping(ctx).Err() }
		}
	}

	services, err := routes.NewServices(db, cfg, tenantCache)
	if err != nil {
		logrus.Fatal("Failed to initialize services: ", err)
	}

	// Set Gin mode
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go services.Reaper.Start(ctx)

	port := cfg.Port
	if port == "" {
		port = "8000"
	}
	server := &http.Server{
		Addr:              ":" + port,
		Handler:           routes.SetupRoutes(db, cfg, services, checks),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logrus.Infof("Starting server on port %s", port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logrus.Fatal("Failed to start server: ", err)
		}
	}()

	<-ctx.Done()
	logrus.Info("Shutting down server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logrus.WithError(err).Error("Graceful shutdown failed")
	}
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}

package routes

import (
	"kubera-backend/internal/api/handlers"
	"kubera-backend/internal/api/middleware"
	"kubera-backend/internal/auth"
	"kubera-backend/internal/cache"
	"kubera-backend/internal/config"
	"kubera-backend/internal/database"
	"kubera-backend/internal/logger"
	"kubera-backend/internal/repository"
	"kubera-backend/internal/service"
	"kubera-backend/internal/tenant"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// Services is the wired application graph shared by the HTTP server and the CLI.
type Services struct {
	Gate        *tenant.Gate
	Migrator    *database.Migrator
	Tenants     *service.TenantService
	Sessions    *service.SessionService
	Audit       *service.AuditService
	Users       *service.TenantUserService
	Invitations *service.InvitationService
	Tags        *service.TagService
	Contracts   *service.ContractService
	Auth        *auth.AuthService
	Reaper      *service.SessionReaper
}

// NewServices builds repositories and services on top of db.
// A nil tenantCache disables caching.
func NewServices(db *gorm.DB, cfg *config.Config, tenantCache cache.TenantCache) (*Services, error) {
	validator := validator.New()

	authConfig := auth.NewAuthConfig(cfg)
	if err := authConfig.ValidateConfig(); err != nil {
		return nil, err
	}
	tokens, err := auth.NewTokenService(authConfig.JWTSecret, authConfig.AccessTokenTTL)
	if err != nil {
		return nil, err
	}
	hasher := auth.NewBcryptHasher(authConfig.BcryptCost)

	// Initialize repositories
	gate := tenant.NewGate(db)
	migrator := database.NewMigrator(db)
	tenantRepo := repository.NewTenantRepository(db)
	userRepo := repository.NewTenantUserRepository()
	sessionRepo := repository.NewSessionRepository()
	invitationRepo := repository.NewInvitationRepository()
	tagRepo := repository.NewTagRepository()
	contractRepo := repository.NewContractRepository()
	linkRepo := repository.NewTagContractRepository()
	auditRepo := repository.NewAuditLogRepository()

	// Initialize services
	tenants := service.NewTenantService(tenantRepo, migrator, tenantCache, validator)
	sessions := service.NewSessionService(gate, sessionRepo)
	audit := service.NewAuditService(gate, auditRepo)

	return &Services{
		Gate:        gate,
		Migrator:    migrator,
		Tenants:     tenants,
		Sessions:    sessions,
		Audit:       audit,
		Users:       service.NewTenantUserService(gate, userRepo, sessionRepo, audit, hasher, validator),
		Invitations: service.NewInvitationService(gate, invitationRepo, userRepo, audit, hasher, validator, cfg.InvitationTTL()),
		Tags:        service.NewTagService(gate, tagRepo, linkRepo, audit, validator),
		Contracts:   service.NewContractService(gate, contractRepo, tagRepo, linkRepo, audit, validator),
		Auth:        auth.NewAuthService(tenants, gate, userRepo, sessions, audit, tokens, hasher, validator),
		Reaper:      service.NewSessionReaper(tenants, sessions, cfg.SessionReaperInterval(), cfg.SessionRetentionDays),
	}, nil
}

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config, svc *Services, checks map[string]handlers.HealthCheck) *gin.Engine {
	// Create router
	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.New().WithError(err).Warn("Invalid TRUSTED_PROXIES, trusting no proxies")
		_ = router.SetTrustedProxies(nil)
	}

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db, checks)
	authHandler := auth.NewAuthHandler(svc.Auth)
	authMiddleware := auth.NewAuthMiddleware(svc.Auth)
	sessionHandler := handlers.NewSessionHandler(svc.Sessions)
	userHandler := handlers.NewUserHandler(svc.Users)
	invitationHandler := handlers.NewInvitationHandler(svc.Invitations, svc.Tenants)
	auditHandler := handlers.NewAuditHandler(svc.Audit)
	tagHandler := handlers.NewTagHandler(svc.Tags)
	contractHandler := handlers.NewContractHandler(svc.Contracts)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	v1 := router.Group("/api/v1")

	// Routes reachable before authentication; the tenant comes from the host
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/invitations/accept/:token", invitationHandler.GetInvitation)
	v1.POST("/invitations/accept", invitationHandler.AcceptInvitation)

	protected := v1.Group("", authMiddleware.RequireAuth())
	{
		authRoutes := protected.Group("/auth")
		{
			authRoutes.POST("/logout", authHandler.Logout)
			authRoutes.GET("/me", authHandler.Me)
			authRoutes.POST("/password", authHandler.ChangePassword)
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("", sessionHandler.ListSessions)
			sessions.GET("/:id", sessionHandler.GetSession)
			sessions.DELETE("/:id", sessionHandler.RevokeSession)
			sessions.POST("/revoke-all", sessionHandler.RevokeAllSessions)
		}

		users := protected.Group("/users", authMiddleware.RequireAdmin())
		{
			users.GET("", userHandler.ListUsers)
			users.POST("", userHandler.CreateUser)
			users.GET("/:id", userHandler.GetUser)
			users.PATCH("/:id", userHandler.UpdateUser)
			users.DELETE("/:id", userHandler.DeleteUser)
		}

		invitations := protected.Group("/invitations", authMiddleware.RequireAdmin())
		{
			invitations.GET("", invitationHandler.ListInvitations)
			invitations.POST("", invitationHandler.CreateInvitation)
			invitations.DELETE("/:id", invitationHandler.RevokeInvitation)
		}

		protected.GET("/audit-logs", authMiddleware.RequireAdmin(), auditHandler.ListAuditLogs)

		tags := protected.Group("/tags")
		{
			tags.GET("", tagHandler.ListTags)
			tags.GET("/:id", tagHandler.GetTag)
			tags.POST("", authMiddleware.RequireWrite(), tagHandler.CreateTag)
			tags.PATCH("/:id", authMiddleware.RequireWrite(), tagHandler.UpdateTag)
			tags.DELETE("/:id", authMiddleware.RequireWrite(), tagHandler.DeleteTag)
		}

		contracts := protected.Group("/contracts")
		{
			contracts.GET("", contractHandler.ListContracts)
			contracts.GET("/:id", contractHandler.GetContract)
			contracts.POST("", authMiddleware.RequireWrite(), contractHandler.CreateContract)
			contracts.PATCH("/:id", authMiddleware.RequireWrite(), contractHandler.UpdateContract)
			contracts.DELETE("/:id", authMiddleware.RequireWrite(), contractHandler.DeleteContract)
			contracts.POST("/:id/tags/:tagId", authMiddleware.RequireWrite(), contractHandler.LinkTag)
			contracts.DELETE("/:id/tags/:tagId", authMiddleware.RequireWrite(), contractHandler.UnlinkTag)
		}
	}

	return router
}

package handlers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Version is reported by the health endpoint.
const Version = "1.0.0"

// HealthCheck pings one dependency.
type HealthCheck func(ctx context.Context) error

// HealthHandler handles health check endpoints
type HealthHandler struct {
	db     *gorm.DB
	checks map[string]HealthCheck
}

// NewHealthHandler creates a new health handler. The database is always
// checked; extra checks cover optional dependencies such as the tenant cache.
func NewHealthHandler(db *gorm.DB, checks map[string]HealthCheck) *HealthHandler {
	if checks == nil {
		checks = make(map[string]HealthCheck)
	}
	return &HealthHandler{
		db:     db,
		checks: checks,
	}
}

// HealthResponse represents the health check response
type HealthResponse struct {
	Status    string            `json:"status"`
	Timestamp time.Time         `json:"timestamp"`
	Version   string            `json:"version"`
	Services  map[string]string `json:"services"`
}

func (h *HealthHandler) pingDatabase(ctx context.Context) error {
	if h.db == nil {
		return errors.New("not configured")
	}
	sqlDB, err := h.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

// runChecks runs every check, returning per-service results and whether all passed.
func (h *HealthHandler) runChecks(ctx context.Context, okLabel, failLabel string) (map[string]string, bool) {
	ctx, cancel := context.WithTimeout(ctx, 3*time.Second)
	defer cancel()

	healthy := true
	services := make(map[string]string, len(h.checks)+1)

	if err := h.pingDatabase(ctx); err != nil {
		healthy = false
		services["database"] = failLabel + ": " + err.Error()
	} else {
		services["database"] = okLabel
	}

	for name, check := range h.checks {
		if err := check(ctx); err != nil {
			healthy = false
			services[name] = failLabel + ": " + err.Error()
			continue
		}
		services[name] = okLabel
	}
	return services, healthy
}

// Health returns the health status of the application
// @Summary Health check
// @Description Get the overall health status of the application including database connectivity
// @Tags health
// @Produce json
// @Success 200 {object} HealthResponse "Application is healthy"
// @Failure 503 {object} HealthResponse "Application is unhealthy"
// @Router /health [get]
func (h *HealthHandler) Health(c *gin.Context) {
	services, healthy := h.runChecks(c.Request.Context(), "healthy", "error")
	response := HealthResponse{
		Status:    "healthy",
		Timestamp: time.Now(),
		Version:   Version,
		Services:  services,
	}

	statusCode := http.StatusOK
	if !healthy {
		response.Status = "unhealthy"
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, response)
}

// Ready returns the readiness status of the application
// @Summary Readiness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is ready"
// @Failure 503 {object} map[string]interface{} "Application is not ready"
// @Router /health/ready [get]
func (h *HealthHandler) Ready(c *gin.Context) {
	services, ready := h.runChecks(c.Request.Context(), "ready", "not ready")

	statusCode := http.StatusOK
	if !ready {
		statusCode = http.StatusServiceUnavailable
	}

	c.JSON(statusCode, map[string]interface{}{
		"ready":     ready,
		"timestamp": time.Now(),
		"services":  services,
	})
}

// Live returns the liveness status of the application
// @Summary Liveness check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "Application is alive"
// @Router /health/live [get]
func (h *HealthHandler) Live(c *gin.Context) {
	c.JSON(http.StatusOK, map[string]interface{}{
		"alive":     true,
		"timestamp": time.Now(),
	})
}

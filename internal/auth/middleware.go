package auth

import (
	"context"
	"net/http"
	"strings"

	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/logger"
	"kubera-backend/internal/tenant"

	"github.com/gin-gonic/gin"
)

// ContextKeyBaseContext is the gin context key holding the *tenant.BaseContext.
const ContextKeyBaseContext = "base_context"

// Authenticator turns a bearer token into a request context
type Authenticator interface {
	Authenticate(ctx context.Context, token string, meta ClientMeta) (*tenant.BaseContext, error)
}

// AuthMiddleware provides JWT authentication middleware
type AuthMiddleware struct {
	authenticator Authenticator
}

// NewAuthMiddleware creates a new authentication middleware
func NewAuthMiddleware(authenticator Authenticator) *AuthMiddleware {
	return &AuthMiddleware{authenticator: authenticator}
}

// RequireAuth validates the bearer token, assembles the BaseContext and binds
// it to both the gin context and the request context.
func (m *AuthMiddleware) RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		if authHeader == "" || tokenString == authHeader || strings.TrimSpace(tokenString) == "" {
			abortWithError(c, apperrors.ErrMissingAuthHeader)
			return
		}

		bc, err := m.authenticator.Authenticate(c.Request.Context(), strings.TrimSpace(tokenString), MetaFromRequest(c))
		if err != nil {
			if apperrors.StatusCode(err) < http.StatusInternalServerError {
				logger.WithContext(c.Request.Context()).WithError(err).Debug("Authentication rejected")
			}
			abortWithError(c, err)
			return
		}

		ctx := tenant.WithBaseContext(c.Request.Context(), bc)
		ctx = logger.ContextWithIdentity(ctx, bc.User.Tenant.Subdomain, bc.User.Email)
		c.Request = c.Request.WithContext(ctx)
		c.Set(ContextKeyBaseContext, bc)

		c.Next()
	}
}

// RequireAdmin rejects callers without admin rights. Must run after RequireAuth.
func (m *AuthMiddleware) RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		bc, ok := GetBaseContext(c)
		if !ok {
			abortWithError(c, apperrors.ErrMissingAuthHeader)
			return
		}
		if !bc.Authorization.CanAdmin {
			abortWithError(c, apperrors.ErrAdminRequired)
			return
		}
		c.Next()
	}
}

// RequireWrite rejects read-only callers. Must run after RequireAuth.
func (m *AuthMiddleware) RequireWrite() gin.HandlerFunc {
	return func(c *gin.Context) {
		bc, ok := GetBaseContext(c)
		if !ok {
			abortWithError(c, apperrors.ErrMissingAuthHeader)
			return
		}
		if !bc.Authorization.CanWrite {
			abortWithError(c, apperrors.ErrWriteRequired)
			return
		}
		c.Next()
	}
}

// GetBaseContext is a helper function to extract the request context assembled by RequireAuth
func GetBaseContext(c *gin.Context) (*tenant.BaseContext, bool) {
	value, exists := c.Get(ContextKeyBaseContext)
	if !exists {
		return nil, false
	}
	bc, ok := value.(*tenant.BaseContext)
	return bc, ok && bc != nil
}

// MetaFromRequest collects host, client IP and user agent for a request.
// The IP honours X-Forwarded-For only from the router's trusted proxies.
func MetaFromRequest(c *gin.Context) ClientMeta {
	return ClientMeta{
		Host:      tenant.HostFromRequest(c.Request),
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

func abortWithError(c *gin.Context, err error) {
	status, msg := apperrors.PublicMessage(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Authentication failed")
	}
	c.AbortWithStatusJSON(status, gin.H{"error": msg})
}

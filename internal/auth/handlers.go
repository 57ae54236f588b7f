package auth

import (
	"net/http"

	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/logger"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles HTTP requests for authentication
type AuthHandler struct {
	service *AuthService
}

// NewAuthHandler creates a new authentication handler
func NewAuthHandler(service *AuthService) *AuthHandler {
	return &AuthHandler{service: service}
}

// MeResponse describes the authenticated caller
type MeResponse struct {
	User          interface{} `json:"user"`
	Authorization interface{} `json:"authorization"`
}

// Login handles POST /api/v1/auth/login
// @Summary Sign in to a tenant
// @Description Verify email and password in the tenant named by the request host and open a session
// @Tags authentication
// @Accept json
// @Produce json
// @Param credentials body LoginRequest true "Credentials"
// @Success 200 {object} TokenResponse
// @Failure 400 {object} map[string]interface{} "Missing tenant subdomain or invalid body"
// @Failure 401 {object} map[string]interface{} "Incorrect email or password"
// @Failure 403 {object} map[string]interface{} "Tenant is not active"
// @Router /api/v1/auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	resp, err := h.service.Login(c.Request.Context(), &req, MetaFromRequest(c))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// Logout handles POST /api/v1/auth/logout
// @Summary Sign out
// @Description Revoke the session behind the presented token
// @Tags authentication
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/v1/auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	bc, ok := GetBaseContext(c)
	if !ok {
		respondError(c, apperrors.ErrMissingAuthHeader)
		return
	}

	if err := h.service.Logout(c.Request.Context(), bc); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

// Me handles GET /api/v1/auth/me
// @Summary Current user
// @Tags authentication
// @Produce json
// @Success 200 {object} MeResponse
// @Security BearerAuth
// @Router /api/v1/auth/me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	bc, ok := GetBaseContext(c)
	if !ok {
		respondError(c, apperrors.ErrMissingAuthHeader)
		return
	}
	c.JSON(http.StatusOK, MeResponse{User: bc.User, Authorization: bc.Authorization})
}

// ChangePassword handles POST /api/v1/auth/password
// @Summary Change password
// @Description Replace the caller's password and revoke their other sessions
// @Tags authentication
// @Accept json
// @Produce json
// @Param body body ChangePasswordRequest true "Current and new password"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 401 {object} map[string]interface{}
// @Security BearerAuth
// @Router /api/v1/auth/password [post]
func (h *AuthHandler) ChangePassword(c *gin.Context) {
	bc, ok := GetBaseContext(c)
	if !ok {
		respondError(c, apperrors.ErrMissingAuthHeader)
		return
	}

	var req ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request body"})
		return
	}

	revoked, err := h.service.ChangePassword(c.Request.Context(), bc, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":          "Password changed",
		"revoked_sessions": revoked,
	})
}

func respondError(c *gin.Context, err error) {
	status, msg := apperrors.PublicMessage(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Auth request failed")
	}
	c.JSON(status, gin.H{"error": msg})
}

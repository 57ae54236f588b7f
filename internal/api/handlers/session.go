package handlers

import (
	"net/http"
	"strconv"

	"kubera-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// SessionHandler lets users inspect and revoke their own sessions
type SessionHandler struct {
	sessionService service.SessionServiceInterface
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionService service.SessionServiceInterface) *SessionHandler {
	return &SessionHandler{
		sessionService: sessionService,
	}
}

// ListSessions handles GET /sessions
// @Summary List my sessions
// @Tags sessions
// @Produce json
// @Param active_only query bool false "Only active sessions" default(true)
// @Success 200 {object} service.SessionListResponse
// @Security BearerAuth
// @Router /sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}

	activeOnly, err := strconv.ParseBool(c.DefaultQuery("active_only", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "active_only must be a boolean"})
		return
	}

	resp, err := h.sessionService.ListSessions(c.Request.Context(), bc, activeOnly)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetSession handles GET /sessions/:id
// @Summary Get one of my sessions
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID (UUID)"
// @Success 200 {object} service.SessionResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session ID"})
		return
	}

	resp, err := h.sessionService.GetSession(c.Request.Context(), bc, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// RevokeSession handles DELETE /sessions/:id
// @Summary Revoke one of my sessions
// @Tags sessions
// @Param id path string true "Session ID (UUID)"
// @Success 204
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /sessions/{id} [delete]
func (h *SessionHandler) RevokeSession(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid session ID"})
		return
	}

	if err := h.sessionService.RevokeSession(c.Request.Context(), bc, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// RevokeAllSessions handles POST /sessions/revoke-all
// @Summary Revoke all my sessions
// @Tags sessions
// @Produce json
// @Param except_current query bool false "Keep the calling session" default(true)
// @Success 200 {object} map[string]interface{}
// @Security BearerAuth
// @Router /sessions/revoke-all [post]
func (h *SessionHandler) RevokeAllSessions(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}

	exceptCurrent, err := strconv.ParseBool(c.DefaultQuery("except_current", "true"))
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "except_current must be a boolean"})
		return
	}

	count, err := h.sessionService.RevokeAllSessions(c.Request.Context(), bc, exceptCurrent)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message":       "Sessions revoked",
		"revoked_count": count,
	})
}

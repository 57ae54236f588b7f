package handlers

import (
	"net/http"
	"strconv"

	"kubera-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// AuditHandler exposes the tenant audit trail
type AuditHandler struct {
	auditService service.AuditServiceInterface
}

// NewAuditHandler creates a new audit handler
func NewAuditHandler(auditService service.AuditServiceInterface) *AuditHandler {
	return &AuditHandler{
		auditService: auditService,
	}
}

// ListAuditLogs handles GET /audit-logs
// @Summary List audit log entries
// @Tags audit
// @Produce json
// @Param user_id query int false "Filter by acting user"
// @Param action query string false "Filter by action, e.g. user.login"
// @Param resource_type query string false "Filter by resource type"
// @Param resource_id query string false "Filter by resource id"
// @Param since_hours query int false "Only entries from the last N hours"
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.AuditLogListResponse
// @Security BearerAuth
// @Router /audit-logs [get]
func (h *AuditHandler) ListAuditLogs(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}

	query := service.AuditLogQuery{
		Action:       c.Query("action"),
		ResourceType: c.Query("resource_type"),
		ResourceID:   c.Query("resource_id"),
	}
	query.Limit, query.Offset = pagination(c)

	if raw := c.Query("user_id"); raw != "" {
		userID, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user_id"})
			return
		}
		query.UserID = &userID
	}
	if raw := c.Query("since_hours"); raw != "" {
		hours, err := strconv.Atoi(raw)
		if err != nil || hours < 0 {
			c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid since_hours"})
			return
		}
		query.SinceHours = hours
	}

	resp, err := h.auditService.List(c.Request.Context(), bc, query)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

package handlers

import (
	"net/http"

	"kubera-backend/internal/database/models"
	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/service"
	"kubera-backend/internal/tenant"

	"github.com/gin-gonic/gin"
)

// InvitationHandler handles HTTP requests for tenant invitations
type InvitationHandler struct {
	invitationService service.InvitationServiceInterface
	tenantService     service.TenantServiceInterface
}

// NewInvitationHandler creates a new invitation handler. The tenant service
// resolves the tenant for the unauthenticated accept endpoints.
func NewInvitationHandler(invitationService service.InvitationServiceInterface, tenantService service.TenantServiceInterface) *InvitationHandler {
	return &InvitationHandler{
		invitationService: invitationService,
		tenantService:     tenantService,
	}
}

// hostTenant resolves the tenant named by the request host for pre-auth flows.
func (h *InvitationHandler) hostTenant(c *gin.Context) (*tenant.Info, bool) {
	subdomain := tenant.ResolveRequest(c.Request)
	if subdomain == tenant.Public {
		respondError(c, apperrors.ErrTenantSubdomainRequired)
		return nil, false
	}

	t, err := h.tenantService.GetBySubdomain(c.Request.Context(), subdomain)
	if err != nil {
		respondError(c, err)
		return nil, false
	}
	if !t.Status.CanAuthenticate() {
		respondError(c, apperrors.ErrTenantInactive)
		return nil, false
	}
	return tenant.InfoFromModel(t), true
}

// ListInvitations handles GET /invitations
// @Summary List invitations
// @Tags invitations
// @Produce json
// @Param status query string false "pending, accepted or revoked"
// @Success 200 {array} service.InvitationResponse
// @Failure 400 {object} ErrorResponse "Unknown status"
// @Security BearerAuth
// @Router /invitations [get]
func (h *InvitationHandler) ListInvitations(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}

	var status *models.InvitationStatus
	if raw := c.Query("status"); raw != "" {
		s := models.InvitationStatus(raw)
		status = &s
	}

	resp, err := h.invitationService.List(c.Request.Context(), bc, status)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateInvitation handles POST /invitations
// @Summary Invite a user
// @Tags invitations
// @Accept json
// @Produce json
// @Param invitation body service.CreateInvitationRequest true "Invitee"
// @Success 201 {object} service.InvitationResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "User already exists"
// @Security BearerAuth
// @Router /invitations [post]
func (h *InvitationHandler) CreateInvitation(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}

	var req service.CreateInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.invitationService.Create(c.Request.Context(), bc.Tenant(), bc, &req, bc.User.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// RevokeInvitation handles DELETE /invitations/:id
// @Summary Revoke a pending invitation
// @Tags invitations
// @Param id path int true "Invitation ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Invitation is not pending"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /invitations/{id} [delete]
func (h *InvitationHandler) RevokeInvitation(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	if err := h.invitationService.Revoke(c.Request.Context(), bc, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// GetInvitation handles GET /invitations/accept/:token
// @Summary Look up an invitation by token
// @Description Unauthenticated; the tenant comes from the request host
// @Tags invitations
// @Produce json
// @Param token path string true "Invitation token"
// @Success 200 {object} service.InvitationResponse
// @Failure 404 {object} ErrorResponse
// @Router /invitations/accept/{token} [get]
func (h *InvitationHandler) GetInvitation(c *gin.Context) {
	info, ok := h.hostTenant(c)
	if !ok {
		return
	}

	resp, err := h.invitationService.GetByToken(c.Request.Context(), info, c.Param("token"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// AcceptInvitation handles POST /invitations/accept
// @Summary Accept an invitation
// @Description Unauthenticated; creates the user in the tenant named by the request host
// @Tags invitations
// @Accept json
// @Produce json
// @Param body body service.AcceptInvitationRequest true "Token and new credentials"
// @Success 201 {object} service.UserResponse
// @Failure 400 {object} ErrorResponse "Invitation expired or already used"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "User already exists"
// @Router /invitations/accept [post]
func (h *InvitationHandler) AcceptInvitation(c *gin.Context) {
	var req service.AcceptInvitationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	info, ok := h.hostTenant(c)
	if !ok {
		return
	}

	user, err := h.invitationService.Accept(c.Request.Context(), info, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, service.ToUserResponse(user))
}

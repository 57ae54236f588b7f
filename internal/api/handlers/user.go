package handlers

import (
	"net/http"

	"kubera-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// UserHandler handles HTTP requests for tenant user administration
type UserHandler struct {
	userService service.TenantUserServiceInterface
}

// NewUserHandler creates a new user handler
func NewUserHandler(userService service.TenantUserServiceInterface) *UserHandler {
	return &UserHandler{
		userService: userService,
	}
}

// ListUsers handles GET /users
// @Summary List users of the caller's tenant
// @Tags users
// @Produce json
// @Param limit query int false "Page size" default(100)
// @Param offset query int false "Offset" default(0)
// @Success 200 {object} service.UsersListResponse
// @Security BearerAuth
// @Router /users [get]
func (h *UserHandler) ListUsers(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}

	limit, offset := pagination(c)
	resp, err := h.userService.List(c.Request.Context(), bc, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetUser handles GET /users/:id
// @Summary Get a user
// @Tags users
// @Produce json
// @Param id path int true "User ID"
// @Success 200 {object} service.UserResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [get]
func (h *UserHandler) GetUser(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	resp, err := h.userService.Get(c.Request.Context(), bc, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateUser handles POST /users
// @Summary Create a user
// @Tags users
// @Accept json
// @Produce json
// @Param user body service.CreateUserRequest true "User data"
// @Success 201 {object} service.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Email already registered"
// @Security BearerAuth
// @Router /users [post]
func (h *UserHandler) CreateUser(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}

	var req service.CreateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.userService.Create(c.Request.Context(), bc, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateUser handles PATCH /users/:id
// @Summary Update a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path int true "User ID"
// @Param user body service.UpdateUserRequest true "Fields to change"
// @Success 200 {object} service.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [patch]
func (h *UserHandler) UpdateUser(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	var req service.UpdateUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.userService.Update(c.Request.Context(), bc, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteUser handles DELETE /users/:id
// @Summary Delete a user
// @Tags users
// @Param id path int true "User ID"
// @Success 204
// @Failure 400 {object} ErrorResponse "Cannot delete yourself or the owner"
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /users/{id} [delete]
func (h *UserHandler) DeleteUser(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	if err := h.userService.Delete(c.Request.Context(), bc, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"kubera-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// TagHandler handles HTTP requests for tag operations
type TagHandler struct {
	tagService service.TagServiceInterface
}

// NewTagHandler creates a new tag handler
func NewTagHandler(tagService service.TagServiceInterface) *TagHandler {
	return &TagHandler{
		tagService: tagService,
	}
}

// ListTags handles GET /tags
// @Summary List tags
// @Tags tags
// @Produce json
// @Success 200 {object} service.TagListResponse
// @Security BearerAuth
// @Router /tags [get]
func (h *TagHandler) ListTags(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}

	limit, offset := pagination(c)
	resp, err := h.tagService.List(c.Request.Context(), bc, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetTag handles GET /tags/:id
// @Summary Get a tag
// @Tags tags
// @Produce json
// @Param id path int true "Tag ID"
// @Success 200 {object} models.Tag
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /tags/{id} [get]
func (h *TagHandler) GetTag(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	tag, err := h.tagService.Get(c.Request.Context(), bc, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}

// CreateTag handles POST /tags
// @Summary Create a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param tag body service.CreateTagRequest true "Tag data"
// @Success 201 {object} models.Tag
// @Failure 409 {object} ErrorResponse "Name already taken"
// @Security BearerAuth
// @Router /tags [post]
func (h *TagHandler) CreateTag(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}

	var req service.CreateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	tag, err := h.tagService.Create(c.Request.Context(), bc, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, tag)
}

// UpdateTag handles PATCH /tags/:id
// @Summary Update a tag
// @Tags tags
// @Accept json
// @Produce json
// @Param id path int true "Tag ID"
// @Param tag body service.UpdateTagRequest true "Fields to change"
// @Success 200 {object} models.Tag
// @Security BearerAuth
// @Router /tags/{id} [patch]
func (h *TagHandler) UpdateTag(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	var req service.UpdateTagRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	tag, err := h.tagService.Update(c.Request.Context(), bc, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, tag)
}

// DeleteTag handles DELETE /tags/:id
// @Summary Delete a tag and its contract links
// @Tags tags
// @Param id path int true "Tag ID"
// @Success 204
// @Security BearerAuth
// @Router /tags/{id} [delete]
func (h *TagHandler) DeleteTag(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	if err := h.tagService.Delete(c.Request.Context(), bc, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"

	"kubera-backend/internal/service"

	"github.com/gin-gonic/gin"
)

// ContractHandler handles HTTP requests for contracts and their tags
type ContractHandler struct {
	contractService service.ContractServiceInterface
}

// NewContractHandler creates a new contract handler
func NewContractHandler(contractService service.ContractServiceInterface) *ContractHandler {
	return &ContractHandler{
		contractService: contractService,
	}
}

// ListContracts handles GET /contracts
// @Summary List contracts with their tags
// @Tags contracts
// @Produce json
// @Success 200 {object} service.ContractListResponse
// @Security BearerAuth
// @Router /contracts [get]
func (h *ContractHandler) ListContracts(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}

	limit, offset := pagination(c)
	resp, err := h.contractService.List(c.Request.Context(), bc, limit, offset)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// GetContract handles GET /contracts/:id
// @Summary Get a contract with its tags
// @Tags contracts
// @Produce json
// @Param id path int true "Contract ID"
// @Success 200 {object} service.ContractWithTags
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /contracts/{id} [get]
func (h *ContractHandler) GetContract(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	resp, err := h.contractService.Get(c.Request.Context(), bc, id)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// CreateContract handles POST /contracts
// @Summary Create a contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param contract body service.CreateContractRequest true "Contract data"
// @Success 201 {object} service.ContractWithTags
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Reference number already used"
// @Security BearerAuth
// @Router /contracts [post]
func (h *ContractHandler) CreateContract(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}

	var req service.CreateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.contractService.Create(c.Request.Context(), bc, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, resp)
}

// UpdateContract handles PATCH /contracts/:id
// @Summary Update a contract
// @Tags contracts
// @Accept json
// @Produce json
// @Param id path int true "Contract ID"
// @Param contract body service.UpdateContractRequest true "Fields to change"
// @Success 200 {object} service.ContractWithTags
// @Security BearerAuth
// @Router /contracts/{id} [patch]
func (h *ContractHandler) UpdateContract(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	var req service.UpdateContractRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
		return
	}

	resp, err := h.contractService.Update(c.Request.Context(), bc, id, &req)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// DeleteContract handles DELETE /contracts/:id
// @Summary Delete a contract and its tag links
// @Tags contracts
// @Param id path int true "Contract ID"
// @Success 204
// @Security BearerAuth
// @Router /contracts/{id} [delete]
func (h *ContractHandler) DeleteContract(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}
	id, ok := int64Param(c, "id")
	if !ok {
		return
	}

	if err := h.contractService.Delete(c.Request.Context(), bc, id); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// LinkTag handles POST /contracts/:id/tags/:tagId
// @Summary Tag a contract
// @Tags contracts
// @Param id path int true "Contract ID"
// @Param tagId path int true "Tag ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Contract or tag not found"
// @Failure 409 {object} ErrorResponse "Already tagged"
// @Security BearerAuth
// @Router /contracts/{id}/tags/{tagId} [post]
func (h *ContractHandler) LinkTag(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}
	contractID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	tagID, ok := int64Param(c, "tagId")
	if !ok {
		return
	}

	if err := h.contractService.LinkTag(c.Request.Context(), bc, contractID, tagID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

// UnlinkTag handles DELETE /contracts/:id/tags/:tagId
// @Summary Remove a tag from a contract
// @Tags contracts
// @Param id path int true "Contract ID"
// @Param tagId path int true "Tag ID"
// @Success 204
// @Failure 404 {object} ErrorResponse "Link not found"
// @Security BearerAuth
// @Router /contracts/{id}/tags/{tagId} [delete]
func (h *ContractHandler) UnlinkTag(c *gin.Context) {
	bc, ok := requireContext(c)
	if !ok {
		return
	}
	contractID, ok := int64Param(c, "id")
	if !ok {
		return
	}
	tagID, ok := int64Param(c, "tagId")
	if !ok {
		return
	}

	if err := h.contractService.UnlinkTag(c.Request.Context(), bc, contractID, tagID); err != nil {
		respondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"net/http"
	"strconv"

	"kubera-backend/internal/auth"
	apperrors "kubera-backend/internal/errors"
	"kubera-backend/internal/logger"
	"kubera-backend/internal/tenant"

	"github.com/gin-gonic/gin"
)

// ErrorResponse represents a standard API error response
type ErrorResponse struct {
	Error string `json:"error" example:"error message"`
}

// respondError writes err with the status from the error taxonomy. Server
// side failures are logged and reported without internals.
func respondError(c *gin.Context, err error) {
	status, msg := apperrors.PublicMessage(err)
	if status >= http.StatusInternalServerError {
		logger.WithContext(c.Request.Context()).WithError(err).Error("Request failed")
	}
	c.JSON(status, ErrorResponse{Error: msg})
}

// requireContext returns the caller's BaseContext, answering 401 when the
// route was mounted without authentication.
func requireContext(c *gin.Context) (*tenant.BaseContext, bool) {
	bc, ok := auth.GetBaseContext(c)
	if !ok {
		respondError(c, apperrors.ErrMissingAuthHeader)
		return nil, false
	}
	return bc, true
}

// int64Param parses a positive integer path parameter.
func int64Param(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid " + name})
		return 0, false
	}
	return id, true
}

// pagination reads limit and offset query parameters; services clamp them.
func pagination(c *gin.Context) (int, int) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "100"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))
	return limit, offset
}

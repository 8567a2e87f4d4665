package handlers

import (
	"errors"
	"net/http"

	apperrors "assignment-engine/internal/errors"
	"assignment-engine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentDefaultHandler handles HTTP requests for tenant assignment defaults
type AssignmentDefaultHandler struct {
	defaultService service.AssignmentDefaultServiceInterface
}

// NewAssignmentDefaultHandler creates a new assignment default handler
func NewAssignmentDefaultHandler(defaultService service.AssignmentDefaultServiceInterface) *AssignmentDefaultHandler {
	return &AssignmentDefaultHandler{
		defaultService: defaultService,
	}
}

// GetDefaults handles GET /tenants/:tenantId/assignment-defaults
// @Summary Get tenant assignment defaults
// @Description Get the tenant's fallback configuration, creating it lazily on first access
// @Tags assignment-defaults
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID (UUID)"
// @Success 200 {object} service.AssignmentDefaultResponse "Successfully retrieved defaults"
// @Failure 400 {object} ErrorResponse "Invalid tenant ID"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenants/{tenantId}/assignment-defaults [get]
func (h *AssignmentDefaultHandler) GetDefaults(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return
	}

	defaults, err := h.defaultService.GetForTenant(tenantID)
	if err != nil {
		if errors.Is(err, apperrors.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, defaults)
}

// UpdateDefaults handles PUT /tenants/:tenantId/assignment-defaults
// @Summary Update tenant assignment defaults
// @Description Update the tenant's fallback user/team, round-robin flag and the automatic assignment switch
// @Tags assignment-defaults
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID (UUID)"
// @Param defaults body service.UpdateAssignmentDefaultRequest true "Defaults data"
// @Success 200 {object} service.AssignmentDefaultResponse "Successfully updated defaults"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Tenant, team or member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenants/{tenantId}/assignment-defaults [put]
func (h *AssignmentDefaultHandler) UpdateDefaults(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return
	}

	var req service.UpdateAssignmentDefaultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	defaults, err := h.defaultService.Update(tenantID, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, defaults)
}

package handlers

import (
	"errors"
	"net/http"

	apperrors "assignment-engine/internal/errors"
	"assignment-engine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentCounterHandler handles admin HTTP requests for round-robin counters
type AssignmentCounterHandler struct {
	counterService service.AssignmentCounterServiceInterface
}

// NewAssignmentCounterHandler creates a new assignment counter handler
func NewAssignmentCounterHandler(counterService service.AssignmentCounterServiceInterface) *AssignmentCounterHandler {
	return &AssignmentCounterHandler{
		counterService: counterService,
	}
}

// ResetCounterRequest identifies the counter scope to reset
type ResetCounterRequest struct {
	TeamID *uuid.UUID `json:"team_id,omitempty"`
	UserID *uuid.UUID `json:"user_id,omitempty"`
}

// ListCounters handles GET /tenants/:tenantId/assignment-counters
// @Summary List round-robin counters for a tenant
// @Description Get all counter rows for a tenant for rotation inspection
// @Tags assignment-counters
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID (UUID)"
// @Success 200 {array} service.AssignmentCounterResponse "Successfully retrieved counters"
// @Failure 400 {object} ErrorResponse "Invalid tenant ID"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenants/{tenantId}/assignment-counters [get]
func (h *AssignmentCounterHandler) ListCounters(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return
	}

	counters, err := h.counterService.GetByTenant(tenantID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, counters)
}

// ResetCounter handles POST /tenants/:tenantId/assignment-counters/reset
// @Summary Reset a round-robin counter
// @Description Zero the counter for a (tenant, team) or (tenant, user) scope. Restarts the rotation; explicit admin action only.
// @Tags assignment-counters
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID (UUID)"
// @Param scope body ResetCounterRequest true "Counter scope"
// @Success 204 "Counter reset"
// @Failure 400 {object} ErrorResponse "Invalid tenant ID or body"
// @Failure 404 {object} ErrorResponse "Counter not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenants/{tenantId}/assignment-counters/reset [post]
func (h *AssignmentCounterHandler) ResetCounter(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return
	}

	var req ResetCounterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	teamID := uuid.Nil
	if req.TeamID != nil {
		teamID = *req.TeamID
	}
	userID := uuid.Nil
	if req.UserID != nil {
		userID = *req.UserID
	}

	if err := h.counterService.Reset(tenantID, teamID, userID); err != nil {
		if errors.Is(err, apperrors.ErrAssignmentCounterNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"errors"
	"net/http"
	"strconv"

	apperrors "assignment-engine/internal/errors"
	"assignment-engine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentRuleHandler handles HTTP requests for assignment rule operations
type AssignmentRuleHandler struct {
	ruleService service.AssignmentRuleServiceInterface
}

// NewAssignmentRuleHandler creates a new assignment rule handler
func NewAssignmentRuleHandler(ruleService service.AssignmentRuleServiceInterface) *AssignmentRuleHandler {
	return &AssignmentRuleHandler{
		ruleService: ruleService,
	}
}

// CreateRule handles POST /assignment-rules
// @Summary Create a new assignment rule
// @Description Create a tenant-scoped assignment rule with criteria and action
// @Tags assignment-rules
// @Accept json
// @Produce json
// @Param rule body service.CreateAssignmentRuleRequest true "Rule data"
// @Success 201 {object} service.AssignmentRuleResponse "Successfully created rule"
// @Failure 400 {object} ErrorResponse "Invalid request body or criteria"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assignment-rules [post]
func (h *AssignmentRuleHandler) CreateRule(c *gin.Context) {
	var req service.CreateAssignmentRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := h.ruleService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidCriteria) || errors.Is(err, apperrors.ErrInvalidAssignmentAction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, rule)
}

// GetRule handles GET /assignment-rules/:id
// @Summary Get assignment rule by ID
// @Description Get a specific assignment rule by its UUID
// @Tags assignment-rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Success 200 {object} service.AssignmentRuleResponse "Successfully retrieved rule"
// @Failure 400 {object} ErrorResponse "Invalid rule ID"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assignment-rules/{id} [get]
func (h *AssignmentRuleHandler) GetRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	rule, err := h.ruleService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssignmentRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rule)
}

// ListRules handles GET /tenants/:tenantId/assignment-rules
// @Summary List assignment rules for a tenant
// @Description Get a tenant's assignment rules ordered by priority, with pagination
// @Tags assignment-rules
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.AssignmentRuleListResponse "Successfully retrieved rules"
// @Failure 400 {object} ErrorResponse "Invalid tenant ID or pagination"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenants/{tenantId}/assignment-rules [get]
func (h *AssignmentRuleHandler) ListRules(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return
	}

	page, pageSize := paginationParams(c)

	rules, err := h.ruleService.GetByTenant(tenantID, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPaginationParams) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rules)
}

// UpdateRule handles PUT /assignment-rules/:id
// @Summary Update an assignment rule
// @Description Update an assignment rule's name, priority, criteria, action or active flag
// @Tags assignment-rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Param rule body service.UpdateAssignmentRuleRequest true "Rule data"
// @Success 200 {object} service.AssignmentRuleResponse "Successfully updated rule"
// @Failure 400 {object} ErrorResponse "Invalid request body or criteria"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assignment-rules/{id} [put]
func (h *AssignmentRuleHandler) UpdateRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	var req service.UpdateAssignmentRuleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	rule, err := h.ruleService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrAssignmentRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidCriteria) || errors.Is(err, apperrors.ErrInvalidAssignmentAction) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, rule)
}

// DeleteRule handles DELETE /assignment-rules/:id
// @Summary Delete an assignment rule
// @Description Delete an assignment rule by its UUID
// @Tags assignment-rules
// @Accept json
// @Produce json
// @Param id path string true "Rule ID (UUID)"
// @Success 204 "Successfully deleted rule"
// @Failure 400 {object} ErrorResponse "Invalid rule ID"
// @Failure 404 {object} ErrorResponse "Rule not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assignment-rules/{id} [delete]
func (h *AssignmentRuleHandler) DeleteRule(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid rule ID"})
		return
	}

	if err := h.ruleService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrAssignmentRuleNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

// paginationParams extracts page/page_size query parameters with defaults
func paginationParams(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil {
		page = 1
	}
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", "20"))
	if err != nil {
		pageSize = 20
	}
	return page, pageSize
}

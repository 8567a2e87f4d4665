package handlers

import (
	"errors"
	"net/http"

	apperrors "assignment-engine/internal/errors"
	"assignment-engine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// AssignmentAuditHandler handles HTTP requests for the assignment audit trail
type AssignmentAuditHandler struct {
	auditService service.AssignmentAuditServiceInterface
}

// NewAssignmentAuditHandler creates a new assignment audit handler
func NewAssignmentAuditHandler(auditService service.AssignmentAuditServiceInterface) *AssignmentAuditHandler {
	return &AssignmentAuditHandler{
		auditService: auditService,
	}
}

// ListAudits handles GET /tenants/:tenantId/assignment-audits
// @Summary List assignment audits for a tenant
// @Description Get a tenant's assignment audit trail, newest first, with pagination. Optional record_type and record_id filters narrow to one record's history.
// @Tags assignment-audits
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID (UUID)"
// @Param record_type query string false "Record type filter (requires record_id)"
// @Param record_id query string false "Record ID filter (requires record_type)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.AssignmentAuditListResponse "Successfully retrieved audits"
// @Failure 400 {object} ErrorResponse "Invalid tenant ID or pagination"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenants/{tenantId}/assignment-audits [get]
func (h *AssignmentAuditHandler) ListAudits(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return
	}

	page, pageSize := paginationParams(c)

	recordType := c.Query("record_type")
	recordID := c.Query("record_id")

	var audits *service.AssignmentAuditListResponse
	if recordType != "" && recordID != "" {
		audits, err = h.auditService.GetByRecord(tenantID, recordType, recordID, page, pageSize)
	} else {
		audits, err = h.auditService.GetByTenant(tenantID, page, pageSize)
	}
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPaginationParams) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, audits)
}

// GetAudit handles GET /assignment-audits/:id
// @Summary Get assignment audit by ID
// @Description Get a single assignment audit row by its UUID
// @Tags assignment-audits
// @Accept json
// @Produce json
// @Param id path string true "Audit ID (UUID)"
// @Success 200 {object} service.AssignmentAuditResponse "Successfully retrieved audit"
// @Failure 400 {object} ErrorResponse "Invalid audit ID"
// @Failure 404 {object} ErrorResponse "Audit not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /assignment-audits/{id} [get]
func (h *AssignmentAuditHandler) GetAudit(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid audit ID"})
		return
	}

	audit, err := h.auditService.GetByID(id)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, audit)
}

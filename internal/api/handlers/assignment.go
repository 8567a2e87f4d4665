package handlers

import (
	"net/http"

	"assignment-engine/internal/service"

	"github.com/gin-gonic/gin"
)

// AssignmentHandler handles HTTP requests for assignment decisions
type AssignmentHandler struct {
	assignmentService service.AssignmentServiceInterface
}

// NewAssignmentHandler creates a new assignment handler
func NewAssignmentHandler(assignmentService service.AssignmentServiceInterface) *AssignmentHandler {
	return &AssignmentHandler{
		assignmentService: assignmentService,
	}
}

// AssignRecord handles POST /assignments/evaluate
// @Summary Run one assignment decision for a record
// @Description Evaluate the tenant's assignment rules against the record fields, apply the first match or the configured fallback, persist the assignment and write an audit row. The whole decision is atomic.
// @Tags assignments
// @Accept json
// @Produce json
// @Param request body service.AssignRecordRequest true "Record reference and field map"
// @Success 200 {object} service.AssignmentResult "Decision outcome (assigned or left unassigned)"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 500 {object} ErrorResponse "Assignment transaction failed"
// @Router /assignments/evaluate [post]
func (h *AssignmentHandler) AssignRecord(c *gin.Context) {
	var req service.AssignRecordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	result, err := h.assignmentService.Assign(&req)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, result)
}

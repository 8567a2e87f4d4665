package handlers

import (
	"errors"
	"net/http"

	apperrors "assignment-engine/internal/errors"
	"assignment-engine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// MemberHandler handles HTTP requests for member operations
type MemberHandler struct {
	memberService service.MemberServiceInterface
}

// NewMemberHandler creates a new member handler
func NewMemberHandler(memberService service.MemberServiceInterface) *MemberHandler {
	return &MemberHandler{
		memberService: memberService,
	}
}

// CreateMember handles POST /members
// @Summary Create a new member
// @Description Create a new member within a tenant, optionally attached to a team
// @Tags members
// @Accept json
// @Produce json
// @Param member body service.CreateMemberRequest true "Member data"
// @Success 201 {object} service.MemberResponse "Successfully created member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Tenant or team not found"
// @Failure 409 {object} ErrorResponse "Member already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members [post]
func (h *MemberHandler) CreateMember(c *gin.Context) {
	var req service.CreateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.Create(&req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrMemberExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, member)
}

// GetMember handles GET /members/:memberId
// @Summary Get member by ID
// @Description Get a specific member by its UUID
// @Tags members
// @Accept json
// @Produce json
// @Param memberId path string true "Member ID (UUID)"
// @Success 200 {object} service.MemberResponse "Successfully retrieved member"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members/{memberId} [get]
func (h *MemberHandler) GetMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member ID"})
		return
	}

	member, err := h.memberService.GetByID(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, member)
}

// ListMembers handles GET /tenants/:tenantId/members
// @Summary List members for a tenant
// @Description Get all members belonging to a tenant with pagination
// @Tags members
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.MemberListResponse "Successfully retrieved members"
// @Failure 400 {object} ErrorResponse "Invalid tenant ID or pagination"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenants/{tenantId}/members [get]
func (h *MemberHandler) ListMembers(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return
	}

	page, pageSize := paginationParams(c)

	members, err := h.memberService.GetByTenant(tenantID, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPaginationParams) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, members)
}

// UpdateMember handles PUT /members/:memberId
// @Summary Update a member
// @Description Update a member's team, name, role or active state
// @Tags members
// @Accept json
// @Produce json
// @Param memberId path string true "Member ID (UUID)"
// @Param member body service.UpdateMemberRequest true "Member data"
// @Success 200 {object} service.MemberResponse "Successfully updated member"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members/{memberId} [put]
func (h *MemberHandler) UpdateMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member ID"})
		return
	}

	var req service.UpdateMemberRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	member, err := h.memberService.Update(id, &req)
	if err != nil {
		if apperrors.IsNotFound(err) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, member)
}

// DeleteMember handles DELETE /members/:memberId
// @Summary Delete a member
// @Description Delete a member by its UUID
// @Tags members
// @Accept json
// @Produce json
// @Param memberId path string true "Member ID (UUID)"
// @Success 204 "Successfully deleted member"
// @Failure 400 {object} ErrorResponse "Invalid member ID"
// @Failure 404 {object} ErrorResponse "Member not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /members/{memberId} [delete]
func (h *MemberHandler) DeleteMember(c *gin.Context) {
	id, err := uuid.Parse(c.Param("memberId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid member ID"})
		return
	}

	if err := h.memberService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrMemberNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}

package handlers

import (
	"errors"
	"net/http"

	apperrors "assignment-engine/internal/errors"
	"assignment-engine/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// TeamHandler handles HTTP requests for team operations
type TeamHandler struct {
	teamService service.TeamServiceInterface
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(teamService service.TeamServiceInterface) *TeamHandler {
	return &TeamHandler{
		teamService: teamService,
	}
}

// CreateTeam handles POST /teams
// @Summary Create a new team
// @Description Create a new team within a tenant
// @Tags teams
// @Accept json
// @Produce json
// @Param team body service.CreateTeamRequest true "Team data"
// @Success 201 {object} service.TeamResponse "Successfully created team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Tenant not found"
// @Failure 409 {object} ErrorResponse "Team already exists"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams [post]
func (h *TeamHandler) CreateTeam(c *gin.Context) {
	var req service.CreateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Create(&req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTenantNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrTeamExists) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusCreated, team)
}

// GetTeam handles GET /teams/:teamId
// @Summary Get team by ID
// @Description Get a specific team, including its member roster
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 200 {object} service.TeamWithMembersResponse "Successfully retrieved team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId} [get]
func (h *TeamHandler) GetTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	team, err := h.teamService.GetWithMembers(id)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, team)
}

// ListTeams handles GET /tenants/:tenantId/teams
// @Summary List teams for a tenant
// @Description Get all teams belonging to a tenant with pagination
// @Tags teams
// @Accept json
// @Produce json
// @Param tenantId path string true "Tenant ID (UUID)"
// @Param page query int false "Page number" default(1)
// @Param page_size query int false "Page size" default(20)
// @Success 200 {object} service.TeamListResponse "Successfully retrieved teams"
// @Failure 400 {object} ErrorResponse "Invalid tenant ID or pagination"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /tenants/{tenantId}/teams [get]
func (h *TeamHandler) ListTeams(c *gin.Context) {
	tenantID, err := uuid.Parse(c.Param("tenantId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid tenant ID"})
		return
	}

	page, pageSize := paginationParams(c)

	teams, err := h.teamService.GetByTenant(tenantID, page, pageSize)
	if err != nil {
		if errors.Is(err, apperrors.ErrInvalidPaginationParams) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, teams)
}

// UpdateTeam handles PUT /teams/:teamId
// @Summary Update a team
// @Description Update a team's display name, description or status
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Param team body service.UpdateTeamRequest true "Team data"
// @Success 200 {object} service.TeamResponse "Successfully updated team"
// @Failure 400 {object} ErrorResponse "Invalid request body"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId} [put]
func (h *TeamHandler) UpdateTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	var req service.UpdateTeamRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	team, err := h.teamService.Update(id, &req)
	if err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		if errors.Is(err, apperrors.ErrInvalidStatus) {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, team)
}

// DeleteTeam handles DELETE /teams/:teamId
// @Summary Delete a team
// @Description Delete a team by its UUID
// @Tags teams
// @Accept json
// @Produce json
// @Param teamId path string true "Team ID (UUID)"
// @Success 204 "Successfully deleted team"
// @Failure 400 {object} ErrorResponse "Invalid team ID"
// @Failure 404 {object} ErrorResponse "Team not found"
// @Failure 500 {object} ErrorResponse "Internal server error"
// @Router /teams/{teamId} [delete]
func (h *TeamHandler) DeleteTeam(c *gin.Context) {
	id, err := uuid.Parse(c.Param("teamId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid team ID"})
		return
	}

	if err := h.teamService.Delete(id); err != nil {
		if errors.Is(err, apperrors.ErrTeamNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.Status(http.StatusNoContent)
}
